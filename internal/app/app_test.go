package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/deckelbot/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_CleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestInitRepositories_Memory() {
	s.app.cfg = &config.Config{}

	s.Require().NoError(s.app.initRepositories(context.Background()))
	s.NotNil(s.app.repo)
	s.Nil(s.app.pool)
}

func (s *ApplicationSuite) TestNewProvider() {
	s.Nil(newProvider(&config.Config{}))
	s.NotNil(newProvider(&config.Config{
		StripeAddress:     "https://api.stripe.com",
		StripeToken:       "sk_test",
		StripeDestination: "acct_1",
	}))
}

func (s *ApplicationSuite) TestWebhookLink() {
	cfg := &config.Config{WebhookURL: "https://bot.example.org/", WebhookSecret: "s3cret"}
	s.Equal("https://bot.example.org/webhook/s3cret", webhookLink(cfg))

	cfg.WebhookURL = "https://bot.example.org"
	s.Equal("https://bot.example.org/webhook/s3cret", webhookLink(cfg))
}

func (s *ApplicationSuite) TestRegisterWebhook_Disabled() {
	s.app.cfg = &config.Config{}
	s.NoError(s.app.registerWebhook())
}
