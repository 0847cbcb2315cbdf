package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/services"
)

// WithdrawalCreator defines the interface that the service must implement.
type WithdrawalCreator interface {
	CreateWithdrawal(ctx context.Context, userID uuid.UUID, methodType string, amount float64, address string) (models.WithdrawalReceipt, error)
}

// WithdrawalCreateRequest represents the JSON body for a withdrawal
// swagger:model WithdrawalCreateRequest
type WithdrawalCreateRequest struct {
	// Method type of a saved payout destination
	// required: true
	// default: btc
	MethodType string `json:"method_type"`

	// Amount in USD
	// required: true
	// default: 100
	Amount string `json:"amount"`

	// Address on file for the method; the server resolves it when empty
	Address string `json:"withdrawal_address"`
}

// WithdrawalCreateResponse represents a successful withdrawal
// swagger:model WithdrawalCreateResponse
type WithdrawalCreateResponse struct {
	Success     bool                     `json:"success"`
	Transaction models.WithdrawalReceipt `json:"transaction"`
}

// NewWithdrawalCreateHandler returns an HTTP handler for withdrawal
// submission. The response's new_balance is authoritative; clients replace
// their cached balance with it instead of subtracting locally.
// @Summary Submit a withdrawal
// @Description Debits the balance atomically and returns the reference with the new balance.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawalCreateRequest true "Withdrawal request"
// @Success 200 {object} handlers.WithdrawalCreateResponse "Withdrawal recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /withdrawals/create/ [post]
// @Security BearerAuth
func NewWithdrawalCreateHandler(
	svc WithdrawalCreator,
	tokenGetter WithdrawalTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req WithdrawalCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.MethodType == "" {
			writeError(w, http.StatusBadRequest, "Please select a withdrawal method")
			return
		}

		amount, err := strconv.ParseFloat(req.Amount, 64)
		if err != nil || amount <= 0 {
			logger.Log.Warnw("invalid withdrawal amount", "amount", req.Amount)
			writeError(w, http.StatusBadRequest, "Please enter a valid amount")
			return
		}

		receipt, err := svc.CreateWithdrawal(ctx, claims.UserID, req.MethodType, amount, req.Address)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownMethod):
				writeError(w, http.StatusBadRequest, "Unknown withdrawal method")
			case errors.Is(err, services.ErrInsufficientFunds):
				writeError(w, http.StatusBadRequest, "Insufficient funds")
			default:
				logger.Log.Errorw("failed to create withdrawal", "userID", claims.UserID, "amount", amount, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalCreateResponse{
			Success:     true,
			Transaction: receipt,
		})
	}
}
