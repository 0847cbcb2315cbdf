package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
)

// ProfileReadRepository reads the withdrawable balance of a user.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetBalance returns the user's withdrawable balance. A missing profile row
// reads as a zero balance.
func (r *ProfileReadRepository) GetBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	const query = `
		SELECT COALESCE(
			(SELECT balance FROM wallet_profiles WHERE user_id = $1),
			0
		) AS balance
	`

	var balance float64
	err := r.db.GetContext(ctx, &balance, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// ProfileWriteRepository mutates the withdrawable balance of a user.
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// Debit subtracts amount from the user's balance in a single guarded
// UPDATE and returns the new balance. sql.ErrNoRows means the balance was
// insufficient (or the profile does not exist) and nothing was changed.
func (r *ProfileWriteRepository) Debit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	query := `
		UPDATE wallet_profiles
		SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var balance float64
	err := sqlx.GetContext(ctx, executor, &balance, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// Credit adds amount to the user's balance, creating the profile row on
// first use.
func (r *ProfileWriteRepository) Credit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	query := `
		INSERT INTO wallet_profiles (user_id, balance, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET balance = wallet_profiles.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var balance float64
	err := sqlx.GetContext(ctx, executor, &balance, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}
