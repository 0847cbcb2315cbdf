package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// MethodsGetter defines the interface that the service must implement.
type MethodsGetter interface {
	GetMethods(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalMethod, error)
}

// WithdrawalMethodsResponse lists saved payout destinations
// swagger:model WithdrawalMethodsResponse
type WithdrawalMethodsResponse struct {
	Success bool                      `json:"success"`
	Methods []models.WithdrawalMethod `json:"methods"`
}

// NewWithdrawalMethodsHandler returns an HTTP handler listing the user's
// saved withdrawal methods. Addresses are read-only here; they are managed
// from settings.
// @Summary List withdrawal methods
// @Description Returns the user's saved payout destinations.
// @Tags withdrawals
// @Produce json
// @Success 200 {object} handlers.WithdrawalMethodsResponse "Saved methods"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /withdrawals/methods/ [get]
// @Security BearerAuth
func NewWithdrawalMethodsHandler(
	svc MethodsGetter,
	tokenGetter WithdrawalTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		methods, err := svc.GetMethods(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get withdrawal methods", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if methods == nil {
			methods = []models.WithdrawalMethod{}
		}

		writeJSON(w, http.StatusOK, WithdrawalMethodsResponse{
			Success: true,
			Methods: methods,
		})
	}
}
