package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deckelbot/internal/config"
	"github.com/GlebRadaev/deckelbot/internal/handlers"
	"github.com/GlebRadaev/deckelbot/internal/pg"
	"github.com/GlebRadaev/deckelbot/internal/repo"
	"github.com/GlebRadaev/deckelbot/internal/service"
	"github.com/GlebRadaev/deckelbot/internal/service/settlementservice"
	"github.com/GlebRadaev/deckelbot/internal/stripe"
	"github.com/GlebRadaev/deckelbot/internal/telegram"
	"github.com/GlebRadaev/deckelbot/pkg/clients"
	"github.com/GlebRadaev/deckelbot/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	sender *telegram.Sender
	pool   *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	if err = a.initRepositories(ctx); err != nil {
		return err
	}

	bot, err := telegram.NewBotAPI(cfg.BotToken, clients.NewHTTPClient())
	if err != nil {
		zap.L().Error("telegram login failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to telegram: %w", err)
	}
	a.sender = telegram.New(bot, cfg.ProviderToken)

	a.srv, err = service.New(cfg, a.repo, a.sender, newProvider(cfg))
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	a.api = handlers.New(a.srv, cfg)

	if err = a.registerWebhook(); err != nil {
		return err
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) initRepositories(ctx context.Context) error {
	if a.cfg.Database == "" {
		zap.L().Warn("DATABASE_URI is empty, tabs are kept in memory only")
		a.repo = repo.NewMemory()
		return nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	return nil
}

func newProvider(cfg *config.Config) settlementservice.Provider {
	if !cfg.ForwardingEnabled() {
		zap.L().Info("Stripe forwarding disabled, settled funds stay on the platform account")
		return nil
	}
	return stripe.New(cfg, clients.NewHTTPClient())
}

func (a *Application) registerWebhook() error {
	if a.cfg.WebhookURL == "" {
		zap.L().Info("Webhook setup disabled")
		return nil
	}
	if err := a.sender.RegisterWebhook(webhookLink(a.cfg)); err != nil {
		zap.L().Error("webhook registration failed: ", zap.Error(err))
		return fmt.Errorf("can't register webhook: %w", err)
	}
	zap.L().Info("webhook registered", zap.String("url", a.cfg.WebhookURL))
	return nil
}

func webhookLink(cfg *config.Config) string {
	return strings.TrimRight(cfg.WebhookURL, "/") + "/webhook/" + cfg.WebhookSecret
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.srv.Close()
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
