package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// WalletOptionsReadRepository reads fundable-currency options.
type WalletOptionsReadRepository struct {
	db *sqlx.DB
}

func NewWalletOptionsReadRepository(db *sqlx.DB) *WalletOptionsReadRepository {
	return &WalletOptionsReadRepository{db: db}
}

// GetActive returns every option open for deposits, ordered by currency.
// An empty result is a valid answer, not an error.
func (r *WalletOptionsReadRepository) GetActive(ctx context.Context) ([]models.WalletOptionDB, error) {
	const query = `
		SELECT option_id, currency, currency_display, rate, address, qr_code_url, is_active, created_at, updated_at
		FROM wallet_options
		WHERE is_active = TRUE
		ORDER BY currency
	`

	var options []models.WalletOptionDB
	err := r.db.SelectContext(ctx, &options, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(options),
		"error", err,
	)

	return options, err
}

// GetByCurrency returns a single option by currency code, nil when absent.
func (r *WalletOptionsReadRepository) GetByCurrency(ctx context.Context, currency string) (*models.WalletOptionDB, error) {
	const query = `
		SELECT option_id, currency, currency_display, rate, address, qr_code_url, is_active, created_at, updated_at
		FROM wallet_options
		WHERE currency = $1
		LIMIT 1
	`

	var option models.WalletOptionDB
	err := r.db.GetContext(ctx, &option, query, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{currency},
		"result", option,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &option, nil
}

// WalletOptionsWriteRepository updates option conversion rates.
type WalletOptionsWriteRepository struct {
	db *sqlx.DB
}

func NewWalletOptionsWriteRepository(db *sqlx.DB) *WalletOptionsWriteRepository {
	return &WalletOptionsWriteRepository{db: db}
}

// UpdateRate overwrites the USD-per-unit rate for a currency. Rows for
// unknown currencies are left untouched.
func (r *WalletOptionsWriteRepository) UpdateRate(ctx context.Context, currency string, rate float64) error {
	query := `
		UPDATE wallet_options
		SET rate = $2, updated_at = NOW()
		WHERE currency = $1
	`
	args := []any{currency, rate}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
