package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/jwt"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/services"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/storage"
)

// DepositTokener defines only the methods needed by this handler.
type DepositTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// DepositCreator defines the interface that the service must implement.
type DepositCreator interface {
	CreateDeposit(ctx context.Context, userID uuid.UUID, currency string, dollarAmount float64, currencyUnit string, receipt models.ReceiptFile) (string, error)
}

// DepositTransaction carries the server-issued reference for a deposit.
// swagger:model DepositTransaction
type DepositTransaction struct {
	// Opaque reference shown to the user
	Reference string `json:"reference"`
}

// DepositCreateResponse represents a successful deposit submission
// swagger:model DepositCreateResponse
type DepositCreateResponse struct {
	Success     bool               `json:"success"`
	Transaction DepositTransaction `json:"transaction"`
}

// receipts cap at 10MB, leave headroom for the text fields.
const depositFormMaxMemory = storage.MaxReceiptSize + 1<<20

// NewDepositCreateHandler returns an HTTP handler for deposit submission.
// The payload is multipart form data because it carries the receipt image:
// fields currency, dollar_amount, currency_unit and file receipt.
// @Summary Submit a deposit
// @Description Records a pending deposit with its receipt image and returns a server-issued reference.
// @Tags deposits
// @Accept mpfd
// @Produce json
// @Param currency formData string true "Currency code"
// @Param dollar_amount formData string true "USD amount"
// @Param currency_unit formData string true "Converted amount, 8 decimal places"
// @Param receipt formData file true "Payment receipt image"
// @Success 200 {object} handlers.DepositCreateResponse "Deposit recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, currency or receipt"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /deposits/create/ [post]
// @Security BearerAuth
func NewDepositCreateHandler(
	svc DepositCreator,
	tokenGetter DepositTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := r.ParseMultipartForm(depositFormMaxMemory); err != nil {
			logger.Log.Errorw("failed to parse deposit form", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		currency := r.FormValue("currency")
		dollarAmountStr := r.FormValue("dollar_amount")
		currencyUnit := r.FormValue("currency_unit")

		dollarAmount, err := strconv.ParseFloat(dollarAmountStr, 64)
		if err != nil || dollarAmount <= 0 {
			logger.Log.Warnw("invalid deposit amount", "dollar_amount", dollarAmountStr)
			writeError(w, http.StatusBadRequest, "Invalid amount or currency")
			return
		}
		if currency == "" || currencyUnit == "" {
			logger.Log.Warnw("missing deposit fields", "currency", currency, "currency_unit", currencyUnit)
			writeError(w, http.StatusBadRequest, "Invalid amount or currency")
			return
		}

		file, header, err := r.FormFile("receipt")
		if err != nil {
			logger.Log.Warnw("missing deposit receipt", "error", err)
			writeError(w, http.StatusBadRequest, "Please upload your payment receipt")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, storage.MaxReceiptSize+1))
		if err != nil {
			logger.Log.Errorw("failed to read receipt", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		receipt := models.ReceiptFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        int64(len(data)),
			Data:        data,
		}

		reference, err := svc.CreateDeposit(ctx, claims.UserID, currency, dollarAmount, currencyUnit, receipt)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotAnImage):
				writeError(w, http.StatusBadRequest, "Please upload an image file")
			case errors.Is(err, storage.ErrTooLarge):
				writeError(w, http.StatusBadRequest, "Image must be 10MB or smaller")
			case errors.Is(err, services.ErrCurrencyUnavailable):
				writeError(w, http.StatusBadRequest, "Invalid amount or currency")
			default:
				logger.Log.Errorw("failed to create deposit", "userID", claims.UserID, "currency", currency, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, DepositCreateResponse{
			Success:     true,
			Transaction: DepositTransaction{Reference: reference},
		})
	}
}
