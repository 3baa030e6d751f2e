package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/deckelbot/internal/config"
	"github.com/GlebRadaev/deckelbot/internal/repo"
	"github.com/GlebRadaev/deckelbot/internal/service/botservice"
)

func testConfig() *config.Config {
	return &config.Config{
		PayloadSecret:    "payload",
		Currency:         "EUR",
		MaxDamageAllowed: 1499,
		MaxUnitPrice:     200,
		DefaultUnitPrice: 150,
		PriceChoices:     []int64{50, 100, 150, 200},
		Timezone:         "Europe/Berlin",
		ForwardWorkers:   2,
		ForwardTimeout:   time.Second,
	}
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services, err := New(testConfig(), repo.NewMemory(), botservice.NewMockSender(ctrl), nil)
	require.NoError(t, err)

	assert.NotNil(t, services.BotService)
	assert.NotNil(t, services.SettlementService)
	services.Close()
}

func TestNew_InvalidTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	cfg.Timezone = "Nowhere/Special"

	_, err := New(cfg, repo.NewMemory(), botservice.NewMockSender(ctrl), nil)
	assert.Error(t, err)
}
