package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// HistoryGetter defines the interface that the service must implement.
type HistoryGetter interface {
	GetHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
}

// WithdrawalHistoryResponse lists recent withdrawals
// swagger:model WithdrawalHistoryResponse
type WithdrawalHistoryResponse struct {
	Success      bool                 `json:"success"`
	Transactions []models.Transaction `json:"transactions"`
}

// NewWithdrawalHistoryHandler returns an HTTP handler for recent
// withdrawal history. The limit query parameter defaults to 5 and is
// capped server-side.
// @Summary Get withdrawal history
// @Description Returns the user's most recent withdrawals, newest first.
// @Tags withdrawals
// @Produce json
// @Param limit query int false "Maximum number of transactions" default(5)
// @Success 200 {object} handlers.WithdrawalHistoryResponse "Recent withdrawals"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /withdrawals/history/ [get]
// @Security BearerAuth
func NewWithdrawalHistoryHandler(
	svc HistoryGetter,
	tokenGetter WithdrawalTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid limit")
				return
			}
			limit = parsed
		}

		txns, err := svc.GetHistory(ctx, claims.UserID, limit)
		if err != nil {
			logger.Log.Errorw("failed to get withdrawal history", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if txns == nil {
			txns = []models.Transaction{}
		}

		writeJSON(w, http.StatusOK, WithdrawalHistoryResponse{
			Success:      true,
			Transactions: txns,
		})
	}
}
