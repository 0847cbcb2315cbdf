package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

var (
	// ErrCurrencyUnavailable is returned when a deposit names a currency
	// with no active wallet option.
	ErrCurrencyUnavailable = errors.New("currency is not available for deposit")
)

// WalletOptionsReader defines read operations for fundable-currency options.
type WalletOptionsReader interface {
	GetActive(ctx context.Context) ([]models.WalletOptionDB, error)
	GetByCurrency(ctx context.Context, currency string) (*models.WalletOptionDB, error)
}

// RateCacheReader retrieves cached USD conversion rates.
type RateCacheReader interface {
	GetRate(ctx context.Context, currency string) (float64, error)
}

// ReceiptSaver persists receipt images and returns their stored names.
type ReceiptSaver interface {
	Save(name, contentType string, data []byte) (string, error)
}

// TransactionSaver persists transactions.
type TransactionSaver interface {
	Save(ctx context.Context, txn models.TransactionDB) (uuid.UUID, error)
}

// DepositService handles wallet option listing and deposit submission.
type DepositService struct {
	options     WalletOptionsReader
	rateCache   RateCacheReader
	receipts    ReceiptSaver
	txns        TransactionSaver
	kafkaWriter KafkaWriter
}

// NewDepositService creates a new DepositService.
func NewDepositService(
	options WalletOptionsReader,
	rateCache RateCacheReader,
	receipts ReceiptSaver,
	txns TransactionSaver,
	kafkaWriter KafkaWriter,
) *DepositService {
	return &DepositService{
		options:     options,
		rateCache:   rateCache,
		receipts:    receipts,
		txns:        txns,
		kafkaWriter: kafkaWriter,
	}
}

// ListOptions returns every active wallet option, preferring the cached
// rate when one is fresher than the stored one. An empty slice is a valid
// answer: the client renders a "no options" state, not an error.
func (s *DepositService) ListOptions(ctx context.Context) ([]models.WalletOption, error) {
	rows, err := s.options.GetActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list wallet options", "error", err)
		return nil, err
	}

	options := make([]models.WalletOption, 0, len(rows))
	for _, row := range rows {
		option := row.ToWire()
		if s.rateCache != nil {
			if rate, err := s.rateCache.GetRate(ctx, row.Currency); err == nil && rate > 0 {
				option.Rate = rate
			}
		}
		options = append(options, option)
	}

	return options, nil
}

// CreateDeposit stores the receipt, records a pending deposit transaction
// with a server-issued reference, and publishes the event. The submitted
// currency unit is stored as received; it is the client's quote and is not
// recomputed here.
func (s *DepositService) CreateDeposit(
	ctx context.Context,
	userID uuid.UUID,
	currency string,
	dollarAmount float64,
	currencyUnit string,
	receipt models.ReceiptFile,
) (string, error) {
	option, err := s.options.GetByCurrency(ctx, currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrCurrencyUnavailable
		}
		logger.Log.Errorw("failed to look up wallet option", "currency", currency, "error", err)
		return "", err
	}
	if !option.IsActive {
		return "", ErrCurrencyUnavailable
	}

	receiptPath, err := s.receipts.Save(receipt.Name, receipt.ContentType, receipt.Data)
	if err != nil {
		logger.Log.Errorw("failed to store receipt", "currency", currency, "error", err)
		return "", err
	}

	reference := newReference("DEP")
	txn := models.TransactionDB{
		TransactionID:   uuid.New(),
		UserID:          userID,
		Reference:       reference,
		TransactionType: models.TransactionTypeDeposit,
		Amount:          dollarAmount,
		Currency:        currency,
		Unit:            currencyUnit,
		Status:          models.StatusPending,
		ReceiptPath:     &receiptPath,
	}

	if _, err := s.txns.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save deposit", "userID", userID, "amount", dollarAmount, "currency", currency, "error", err)
		return "", err
	}

	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		Reference:     reference,
		Timestamp:     time.Now().Unix(),
		Amount:        dollarAmount,
		Currency:      currency,
		UserID:        userID.String(),
		Operation:     models.TransactionTypeDeposit,
	})

	return reference, nil
}
