package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// WithdrawalMethodsReadRepository reads saved payout destinations.
type WithdrawalMethodsReadRepository struct {
	db *sqlx.DB
}

func NewWithdrawalMethodsReadRepository(db *sqlx.DB) *WithdrawalMethodsReadRepository {
	return &WithdrawalMethodsReadRepository{db: db}
}

// GetByUser returns every saved withdrawal method for a user.
func (r *WithdrawalMethodsReadRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalMethodDB, error) {
	const query = `
		SELECT method_id, user_id, method_type, display_name, address, created_at, updated_at
		FROM withdrawal_methods
		WHERE user_id = $1
		ORDER BY method_type
	`

	var methods []models.WithdrawalMethodDB
	err := r.db.SelectContext(ctx, &methods, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(methods),
		"error", err,
	)

	return methods, err
}

// GetByUserAndType returns the user's saved method for a method type,
// nil when none is on file. One address per method type.
func (r *WithdrawalMethodsReadRepository) GetByUserAndType(ctx context.Context, userID uuid.UUID, methodType string) (*models.WithdrawalMethodDB, error) {
	const query = `
		SELECT method_id, user_id, method_type, display_name, address, created_at, updated_at
		FROM withdrawal_methods
		WHERE user_id = $1 AND method_type = $2
		LIMIT 1
	`

	var method models.WithdrawalMethodDB
	err := r.db.GetContext(ctx, &method, query, userID, methodType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, methodType},
		"result", method,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &method, nil
}
