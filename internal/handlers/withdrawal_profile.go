package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/jwt"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// WithdrawalTokener defines only the methods needed by the withdrawal handlers.
type WithdrawalTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (models.WalletProfile, error)
}

// WithdrawalProfileResponse carries the withdrawable balance
// swagger:model WithdrawalProfileResponse
type WithdrawalProfileResponse struct {
	Success bool                 `json:"success"`
	User    models.WalletProfile `json:"user"`
}

// NewWithdrawalProfileHandler returns an HTTP handler for the withdrawable
// balance. The returned balance is the value the withdrawal flow validates
// amounts against.
// @Summary Get withdrawal profile
// @Description Returns the user's withdrawable balance.
// @Tags withdrawals
// @Produce json
// @Success 200 {object} handlers.WithdrawalProfileResponse "Wallet profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /withdrawals/profile/ [get]
// @Security BearerAuth
func NewWithdrawalProfileHandler(
	svc ProfileGetter,
	tokenGetter WithdrawalTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet profile", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalProfileResponse{
			Success: true,
			User:    profile,
		})
	}
}

// authorize resolves the request's claims, writing the 401 itself when the
// token is missing or invalid.
func authorize(ctx context.Context, w http.ResponseWriter, r *http.Request, tokenGetter WithdrawalTokener) (*jwt.Claims, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	return claims, true
}
