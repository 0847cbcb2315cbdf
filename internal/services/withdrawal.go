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
	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownMethod is returned when no saved method matches the request.
	ErrUnknownMethod = errors.New("unknown withdrawal method")
)

// ProfileReader reads withdrawable balances.
type ProfileReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (float64, error)
}

// ProfileDebiter subtracts from a balance atomically. sql.ErrNoRows means
// the balance was insufficient.
type ProfileDebiter interface {
	Debit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
}

// MethodsReader reads saved payout destinations.
type MethodsReader interface {
	GetByUser(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalMethodDB, error)
	GetByUserAndType(ctx context.Context, userID uuid.UUID, methodType string) (*models.WithdrawalMethodDB, error)
}

// TransactionHistoryReader reads recent transactions.
type TransactionHistoryReader interface {
	GetRecentByUser(ctx context.Context, userID uuid.UUID, transactionType string, limit int) ([]models.TransactionDB, error)
}

// History limits for GET /withdrawals/history/.
const (
	DefaultHistoryLimit = 5
	MaxHistoryLimit     = 50
)

// WithdrawalService handles the withdrawal flow's three reads and its
// single write.
type WithdrawalService struct {
	profiles    ProfileReader
	debiter     ProfileDebiter
	methods     MethodsReader
	txnWriter   TransactionSaver
	txnReader   TransactionHistoryReader
	kafkaWriter KafkaWriter
}

// NewWithdrawalService creates a new WithdrawalService.
func NewWithdrawalService(
	profiles ProfileReader,
	debiter ProfileDebiter,
	methods MethodsReader,
	txnWriter TransactionSaver,
	txnReader TransactionHistoryReader,
	kafkaWriter KafkaWriter,
) *WithdrawalService {
	return &WithdrawalService{
		profiles:    profiles,
		debiter:     debiter,
		methods:     methods,
		txnWriter:   txnWriter,
		txnReader:   txnReader,
		kafkaWriter: kafkaWriter,
	}
}

// GetProfile returns the user's withdrawable balance.
func (s *WithdrawalService) GetProfile(ctx context.Context, userID uuid.UUID) (models.WalletProfile, error) {
	balance, err := s.profiles.GetBalance(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get balance", "userID", userID, "error", err)
		return models.WalletProfile{}, err
	}
	return models.WalletProfile{
		Balance:          balance,
		FormattedBalance: FormatUSD(balance),
	}, nil
}

// GetMethods returns the user's saved withdrawal methods.
func (s *WithdrawalService) GetMethods(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalMethod, error) {
	rows, err := s.methods.GetByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get withdrawal methods", "userID", userID, "error", err)
		return nil, err
	}

	methods := make([]models.WithdrawalMethod, 0, len(rows))
	for _, row := range rows {
		methods = append(methods, row.ToWire())
	}
	return methods, nil
}

// GetHistory returns the user's most recent withdrawals, newest first.
// A non-positive limit falls back to the default; oversized limits are capped.
func (s *WithdrawalService) GetHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	rows, err := s.txnReader.GetRecentByUser(ctx, userID, models.TransactionTypeWithdrawal, limit)
	if err != nil {
		logger.Log.Errorw("failed to get withdrawal history", "userID", userID, "error", err)
		return nil, err
	}

	txns := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, row.ToWire())
	}
	return txns, nil
}

// CreateWithdrawal debits the balance and records the withdrawal in one
// guarded step, then publishes the event. The returned balance is the
// post-debit value from the database and is authoritative: clients must
// replace their cached balance with it rather than subtracting locally.
func (s *WithdrawalService) CreateWithdrawal(
	ctx context.Context,
	userID uuid.UUID,
	methodType string,
	amount float64,
	address string,
) (models.WithdrawalReceipt, error) {
	method, err := s.methods.GetByUserAndType(ctx, userID, methodType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WithdrawalReceipt{}, ErrUnknownMethod
		}
		logger.Log.Errorw("failed to look up withdrawal method", "userID", userID, "methodType", methodType, "error", err)
		return models.WithdrawalReceipt{}, err
	}

	// The address on file wins over whatever the client echoed back.
	if address == "" {
		address = method.Address
	}

	newBalance, err := s.debiter.Debit(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WithdrawalReceipt{}, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit balance", "userID", userID, "amount", amount, "error", err)
		return models.WithdrawalReceipt{}, err
	}

	reference := newReference("WD")
	txn := models.TransactionDB{
		TransactionID:   uuid.New(),
		UserID:          userID,
		Reference:       reference,
		TransactionType: models.TransactionTypeWithdrawal,
		Amount:          amount,
		Currency:        methodType,
		Status:          models.StatusPending,
		Address:         &address,
	}

	if _, err := s.txnWriter.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save withdrawal", "userID", userID, "amount", amount, "error", err)
		return models.WithdrawalReceipt{}, err
	}

	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		Reference:     reference,
		Timestamp:     time.Now().Unix(),
		Amount:        amount,
		Currency:      methodType,
		UserID:        userID.String(),
		Operation:     models.TransactionTypeWithdrawal,
	})

	return models.WithdrawalReceipt{
		Reference:           reference,
		NewBalance:          newBalance,
		FormattedNewBalance: FormatUSD(newBalance),
	}, nil
}
