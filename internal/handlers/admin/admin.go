package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/dto"
	"github.com/GlebRadaev/deckelbot/internal/service/settlementservice"
	"github.com/GlebRadaev/deckelbot/pkg/utils"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

type Service interface {
	Pending(ctx context.Context, limit int) ([]domain.Settlement, error)
	RetryForwarding(ctx context.Context, limit int) (int, error)
}

type AdminHandler struct {
	settlementService Service
}

func New(settlementService Service) *AdminHandler {
	return &AdminHandler{
		settlementService: settlementService,
	}
}

func parseLimit(raw string) (int, bool) {
	if raw == "" {
		return defaultLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, false
	}
	return limit, true
}

// GetPending godoc
//
//	@Summary		List unforwarded settlements
//	@Description	Settlements whose funds have not been moved to the connected account yet, oldest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int								false	"Maximum number of records (1-1000)"
//	@Success		200		{array}		dto.SettlementResponseDTO		"Pending settlements"
//	@Success		204		{object}	utils.Response					"Nothing pending"
//	@Failure		400		{object}	utils.Response					"Invalid limit"
//	@Failure		401		{object}	utils.Response					"Unauthorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/settlements/pending [get]
func (h *AdminHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r.URL.Query().Get("limit"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	settlements, err := h.settlementService.Pending(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(settlements) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Nothing pending")
		return
	}

	response := make([]dto.SettlementResponseDTO, len(settlements))
	for i, s := range settlements {
		response[i] = dto.SettlementResponseDTO{
			ID:               s.ID,
			AccountID:        s.AccountID,
			ReceiptID:        s.ReceiptID,
			TelegramChargeID: s.TelegramChargeID,
			Amount:           s.Amount,
			Fee:              s.Fee,
			SettledAt:        s.SettledAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Forward godoc
//
//	@Summary		Retry forwarding
//	@Description	Queue unforwarded settlements for another forwarding attempt.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ForwardRequestDTO	false	"Optional limit"
//	@Success		202		{object}	dto.ForwardResponseDTO	"Settlements queued"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Unauthorized"
//	@Failure		409		{object}	utils.Response			"Forwarding disabled"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/settlements/forward [post]
func (h *AdminHandler) Forward(w http.ResponseWriter, r *http.Request) {
	var req dto.ForwardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 || limit > maxLimit {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	queued, err := h.settlementService.RetryForwarding(r.Context(), limit)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrForwardingDisabled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.ForwardResponseDTO{Queued: queued})
}
