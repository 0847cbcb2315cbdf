package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// TransactionWriteRepository persists deposit and withdrawal transactions.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a transaction row and returns its generated identifier.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.TransactionDB) (uuid.UUID, error) {
	query := `
		INSERT INTO transactions
			(transaction_id, user_id, reference, transaction_type, amount, currency, unit, status, receipt_path, withdrawal_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING transaction_id
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	id := txn.TransactionID
	if id == uuid.Nil {
		id = uuid.New()
	}

	args := []any{id, txn.UserID, txn.Reference, txn.TransactionType, txn.Amount, txn.Currency, txn.Unit, txn.Status, txn.ReceiptPath, txn.Address}

	var insertedID uuid.UUID
	err := sqlx.GetContext(ctx, executor, &insertedID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", insertedID,
		"error", err,
	)

	return insertedID, err
}

// TransactionReadRepository reads transaction history.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetRecentByUser returns the newest transactions of the given type for a
// user, newest first, capped at limit.
func (r *TransactionReadRepository) GetRecentByUser(ctx context.Context, userID uuid.UUID, transactionType string, limit int) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, reference, transaction_type, amount, currency, unit, status, receipt_path, withdrawal_address, created_at
		FROM transactions
		WHERE user_id = $1 AND transaction_type = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID, transactionType, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, transactionType, limit},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
