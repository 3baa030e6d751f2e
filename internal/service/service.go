package service

import (
	"fmt"

	"github.com/GlebRadaev/deckelbot/internal/composer"
	"github.com/GlebRadaev/deckelbot/internal/config"
	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/handlers/admin"
	"github.com/GlebRadaev/deckelbot/internal/handlers/webhook"
	"github.com/GlebRadaev/deckelbot/internal/intent"
	"github.com/GlebRadaev/deckelbot/internal/repo"
	"github.com/GlebRadaev/deckelbot/internal/service/botservice"
	"github.com/GlebRadaev/deckelbot/internal/service/settlementservice"
	"github.com/GlebRadaev/deckelbot/internal/service/tabservice"
	"github.com/GlebRadaev/deckelbot/pkg/auth"
)

const queuePerWorker = 16

type Services struct {
	BotService        webhook.Service
	SettlementService admin.Service

	workerPool settlementservice.WorkerPoolI
}

// New wires the bot. A nil provider keeps settled funds with the platform account.
func New(cfg *config.Config, repos *repo.Repositories, sender botservice.Sender, provider settlementservice.Provider) (*Services, error) {
	menus := intent.NewMenus(cfg.PriceChoices)
	comp, err := composer.New(cfg, menus)
	if err != nil {
		return nil, fmt.Errorf("can't build composer: %w", err)
	}

	workers := max(cfg.ForwardWorkers, 1)
	workerPool := settlementservice.NewWorkerPool(workers, workers*queuePerWorker)
	settlementService := settlementservice.New(
		cfg,
		repos.AccountRepo,
		repos.SettlementRepo,
		repos.TxManager,
		auth.NewPayloadSigner(cfg.PayloadSecret),
		provider,
		workerPool,
	)
	tabService := tabservice.New(
		repos.AccountRepo,
		repos.TxManager,
		settlementService,
		domain.Limits{MaxDamage: cfg.MaxDamageAllowed, MaxUnitPrice: cfg.MaxUnitPrice},
		cfg.DefaultUnitPrice,
	)

	return &Services{
		BotService:        botservice.New(tabService, settlementService, comp, sender, menus),
		SettlementService: settlementService,
		workerPool:        workerPool,
	}, nil
}

// Close waits for queued forwarding to finish.
func (s *Services) Close() {
	if s.workerPool != nil {
		s.workerPool.Close()
	}
}
