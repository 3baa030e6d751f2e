package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/deckelbot/docs"
	"github.com/GlebRadaev/deckelbot/internal/config"
	"github.com/GlebRadaev/deckelbot/internal/dto"
	adminhandlers "github.com/GlebRadaev/deckelbot/internal/handlers/admin"
	webhookhandlers "github.com/GlebRadaev/deckelbot/internal/handlers/webhook"
	"github.com/GlebRadaev/deckelbot/internal/service"
	"github.com/GlebRadaev/deckelbot/pkg/auth"
	"github.com/GlebRadaev/deckelbot/pkg/utils"
)

type WebhookHandler interface {
	Receive(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetPending(w http.ResponseWriter, r *http.Request)
	Forward(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WebhookHandler WebhookHandler
	AdminHandler   AdminHandler
	adminTokenHash string
	hasher         auth.TokenHasher
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		WebhookHandler: webhookhandlers.New(s.BotService, cfg.WebhookSecret),
		AdminHandler:   adminhandlers.New(s.SettlementService),
		adminTokenHash: cfg.AdminTokenHash,
		hasher:         &auth.BcryptHasher{},
	}
}

// Health godoc
//
//	@Summary		Health check
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	dto.HealthResponseDTO	"Service is up"
//	@Router			/ [get]
func Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/", Health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Post("/webhook/{secret}", h.WebhookHandler.Receive)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AdminMiddleware(h.adminTokenHash, h.hasher))
		r.Route("/settlements", func(r chi.Router) {
			r.Get("/pending", h.AdminHandler.GetPending)
			r.Post("/forward", h.AdminHandler.Forward)
		})
	})

	return r
}
