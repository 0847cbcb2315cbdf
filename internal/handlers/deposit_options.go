package handlers

import (
	"context"
	"net/http"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/jwt"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// OptionsTokener defines only the methods needed by this handler.
type OptionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// OptionsLister defines the interface that the service must implement.
type OptionsLister interface {
	ListOptions(ctx context.Context) ([]models.WalletOption, error)
}

// DepositOptionsResponse lists the fundable currencies
// swagger:model DepositOptionsResponse
type DepositOptionsResponse struct {
	Success bool `json:"success"`

	// Fundable currency options; may be empty
	Wallets []models.WalletOption `json:"wallets"`
}

// NewDepositOptionsHandler returns an HTTP handler listing wallet options.
// An empty list is a valid response: the deposit flow renders a
// "no options" state for it.
// @Summary List deposit options
// @Description Returns the fundable currencies with their USD rates and receiving addresses.
// @Tags deposits
// @Produce json
// @Success 200 {object} handlers.DepositOptionsResponse "Wallet options"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /deposits/options/ [get]
// @Security BearerAuth
func NewDepositOptionsHandler(
	svc OptionsLister,
	tokenGetter OptionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		options, err := svc.ListOptions(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list wallet options", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if options == nil {
			options = []models.WalletOption{}
		}

		writeJSON(w, http.StatusOK, DepositOptionsResponse{
			Success: true,
			Wallets: options,
		})
	}
}
