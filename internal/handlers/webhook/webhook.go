package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deckelbot/pkg/utils"
)

type Service interface {
	HandleUpdate(ctx context.Context, u tgbotapi.Update) error
}

type WebhookHandler struct {
	botService Service
	secret     []byte
}

func New(botService Service, secret string) *WebhookHandler {
	return &WebhookHandler{
		botService: botService,
		secret:     []byte(secret),
	}
}

// Receive godoc
//
//	@Summary		Receive a Telegram update
//	@Description	Entry point registered with Telegram. Every update is processed synchronously; a 5xx makes Telegram redeliver it.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			secret	path		string	true	"Webhook secret"
//	@Success		200		{string}	string	"Update processed"
//	@Failure		400		{object}	utils.Response	"Malformed update"
//	@Failure		404		{object}	utils.Response	"Unknown webhook"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/webhook/{secret} [post]
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	secret := []byte(chi.URLParam(r, "secret"))
	if len(h.secret) == 0 || subtle.ConstantTimeCompare(secret, h.secret) != 1 {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid update")
		return
	}

	if err := h.botService.HandleUpdate(r.Context(), update); err != nil {
		zap.L().Error("update failed, asking for redelivery", zap.Int("update_id", update.UpdateID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "ok")
}
