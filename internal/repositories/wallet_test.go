package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS wallet_options (
			option_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			currency VARCHAR(20) NOT NULL UNIQUE,
			currency_display VARCHAR(50) NOT NULL,
			rate NUMERIC(20,8) NOT NULL DEFAULT 0,
			address VARCHAR(255) NOT NULL,
			qr_code_url VARCHAR(255),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS wallet_profiles (
			user_id UUID PRIMARY KEY REFERENCES users(user_id) ON DELETE CASCADE,
			balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS withdrawal_methods (
			method_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
			method_type VARCHAR(20) NOT NULL,
			display_name VARCHAR(50) NOT NULL,
			address VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, method_type)
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
			reference VARCHAR(50) NOT NULL UNIQUE,
			transaction_type VARCHAR(20) NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			currency VARCHAR(20) NOT NULL,
			unit VARCHAR(50) NOT NULL,
			status VARCHAR(20) NOT NULL,
			receipt_path VARCHAR(255),
			withdrawal_address VARCHAR(255),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func insertUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	userID := uuid.New()
	_, err := db.Exec(`INSERT INTO users (user_id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		userID, username, username+"@example.com", "hash")
	assert.NoError(t, err)
	return userID
}

func insertOption(t *testing.T, db *sqlx.DB, currency, display string, rate float64, active bool) {
	_, err := db.Exec(`INSERT INTO wallet_options (currency, currency_display, rate, address, is_active) VALUES ($1, $2, $3, $4, $5)`,
		currency, display, rate, "addr-"+currency, active)
	assert.NoError(t, err)
}

func getProfileBalance(t *testing.T, db *sqlx.DB, userID uuid.UUID) float64 {
	var balance float64
	err := db.Get(&balance, `SELECT balance FROM wallet_profiles WHERE user_id=$1`, userID)
	assert.NoError(t, err)
	return balance
}

// --- Wallet options tests ---
func TestWalletOptionsReadRepository_GetActive(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertOption(t, db, "eth", "Ethereum", 3500, true)
	insertOption(t, db, "btc", "Bitcoin", 65000, true)
	insertOption(t, db, "xrp", "Ripple", 0.5, false)

	repo := NewWalletOptionsReadRepository(db)

	options, err := repo.GetActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, options, 2)

	// Ordered by currency, inactive rows excluded.
	assert.Equal(t, "btc", options[0].Currency)
	assert.Equal(t, "eth", options[1].Currency)
	assert.Equal(t, 65000.0, options[0].Rate)
	assert.Equal(t, "addr-btc", options[0].Address)
}

func TestWalletOptionsReadRepository_GetByCurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertOption(t, db, "btc", "Bitcoin", 65000, true)

	repo := NewWalletOptionsReadRepository(db)

	t.Run("Found", func(t *testing.T) {
		option, err := repo.GetByCurrency(ctx, "btc")
		assert.NoError(t, err)
		assert.NotNil(t, option)
		assert.Equal(t, "Bitcoin", option.CurrencyDisplay)
		assert.True(t, option.IsActive)
	})

	t.Run("NotFound", func(t *testing.T) {
		option, err := repo.GetByCurrency(ctx, "doge")
		assert.Error(t, err)
		assert.Nil(t, option)
	})
}

func TestWalletOptionsWriteRepository_UpdateRate(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertOption(t, db, "btc", "Bitcoin", 65000, true)

	repo := NewWalletOptionsWriteRepository(db)

	err := repo.UpdateRate(ctx, "btc", 67123.45)
	assert.NoError(t, err)

	var rate float64
	err = db.Get(&rate, `SELECT rate FROM wallet_options WHERE currency=$1`, "btc")
	assert.NoError(t, err)
	assert.Equal(t, 67123.45, rate)

	// Unknown currency is a no-op, not an error.
	err = repo.UpdateRate(ctx, "doge", 0.1)
	assert.NoError(t, err)
}

// --- Profile tests ---
func TestProfileReadRepository_GetBalance(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "alice")

	repo := NewProfileReadRepository(db)

	t.Run("NoProfileRow", func(t *testing.T) {
		balance, err := repo.GetBalance(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, balance)
	})

	t.Run("WithBalance", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO wallet_profiles (user_id, balance) VALUES ($1, $2)`, userID, 1250.50)
		assert.NoError(t, err)

		balance, err := repo.GetBalance(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 1250.50, balance)
	})
}

func TestProfileWriteRepository_Credit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "bob")

	repo := NewProfileWriteRepository(db, nil)

	balance, err := repo.Credit(ctx, userID, 100)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, balance)
	assert.Equal(t, 100.0, getProfileBalance(t, db, userID))

	balance, err = repo.Credit(ctx, userID, 50)
	assert.NoError(t, err)
	assert.Equal(t, 150.0, balance)
	assert.Equal(t, 150.0, getProfileBalance(t, db, userID))
}

func TestProfileWriteRepository_Debit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "carol")

	repo := NewProfileWriteRepository(db, nil)

	_, err := repo.Credit(ctx, userID, 200)
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		balance, err := repo.Debit(ctx, userID, 50)
		assert.NoError(t, err)
		assert.Equal(t, 150.0, balance)
		assert.Equal(t, 150.0, getProfileBalance(t, db, userID))
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		_, err := repo.Debit(ctx, userID, 1000)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Equal(t, 150.0, getProfileBalance(t, db, userID))
	})

	t.Run("ExactBalance", func(t *testing.T) {
		balance, err := repo.Debit(ctx, userID, 150)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, balance)
	})

	t.Run("NoProfileRow", func(t *testing.T) {
		_, err := repo.Debit(ctx, uuid.New(), 10)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

// --- Withdrawal methods tests ---
func TestWithdrawalMethodsReadRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "dina")
	otherID := insertUser(t, db, "erik")

	seed := []struct {
		userID      uuid.UUID
		methodType  string
		displayName string
		address     string
	}{
		{userID, models.MethodETH, "Ethereum", "0xabc"},
		{userID, models.MethodBTC, "Bitcoin", "bc1qxyz"},
		{otherID, models.MethodBTC, "Bitcoin", "bc1qother"},
	}
	for _, s := range seed {
		_, err := db.Exec(`INSERT INTO withdrawal_methods (user_id, method_type, display_name, address) VALUES ($1, $2, $3, $4)`,
			s.userID, s.methodType, s.displayName, s.address)
		assert.NoError(t, err)
	}

	repo := NewWithdrawalMethodsReadRepository(db)

	t.Run("GetByUser", func(t *testing.T) {
		methods, err := repo.GetByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, methods, 2)

		// Ordered by method type, other users excluded.
		assert.Equal(t, models.MethodBTC, methods[0].MethodType)
		assert.Equal(t, "bc1qxyz", methods[0].Address)
		assert.Equal(t, models.MethodETH, methods[1].MethodType)
	})

	t.Run("GetByUserAndType", func(t *testing.T) {
		method, err := repo.GetByUserAndType(ctx, userID, models.MethodETH)
		assert.NoError(t, err)
		assert.NotNil(t, method)
		assert.Equal(t, "0xabc", method.Address)
	})

	t.Run("GetByUserAndTypeNotFound", func(t *testing.T) {
		method, err := repo.GetByUserAndType(ctx, userID, models.MethodUSDTTRC20)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, method)
	})
}

// --- Transaction tests ---
func TestTransactionWriteRepository_Save(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "frank")

	repo := NewTransactionWriteRepository(db, nil)

	t.Run("Deposit", func(t *testing.T) {
		receiptPath := "receipts/abc.png"
		id, err := repo.Save(ctx, models.TransactionDB{
			UserID:          userID,
			Reference:       "DEP-1A2B3C4D5E",
			TransactionType: models.TransactionTypeDeposit,
			Amount:          100,
			Currency:        "btc",
			Unit:            "0.00153846",
			Status:          models.StatusPending,
			ReceiptPath:     &receiptPath,
		})
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		var saved models.TransactionDB
		err = db.Get(&saved, `SELECT transaction_id, user_id, reference, transaction_type, amount, currency, unit, status, receipt_path, withdrawal_address, created_at FROM transactions WHERE transaction_id=$1`, id)
		assert.NoError(t, err)
		assert.Equal(t, "DEP-1A2B3C4D5E", saved.Reference)
		assert.Equal(t, models.TransactionTypeDeposit, saved.TransactionType)
		assert.NotNil(t, saved.ReceiptPath)
		assert.Equal(t, receiptPath, *saved.ReceiptPath)
		assert.Nil(t, saved.Address)
	})

	t.Run("Withdrawal", func(t *testing.T) {
		address := "bc1qxyz"
		id, err := repo.Save(ctx, models.TransactionDB{
			UserID:          userID,
			Reference:       "WD-9F8E7D6C5B",
			TransactionType: models.TransactionTypeWithdrawal,
			Amount:          50,
			Currency:        "btc",
			Unit:            "0.00076923",
			Status:          models.StatusPending,
			Address:         &address,
		})
		assert.NoError(t, err)

		var saved models.TransactionDB
		err = db.Get(&saved, `SELECT transaction_id, user_id, reference, transaction_type, amount, currency, unit, status, receipt_path, withdrawal_address, created_at FROM transactions WHERE transaction_id=$1`, id)
		assert.NoError(t, err)
		assert.Nil(t, saved.ReceiptPath)
		assert.NotNil(t, saved.Address)
		assert.Equal(t, address, *saved.Address)
	})
}

func TestTransactionReadRepository_GetRecentByUser(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "grace")

	writer := NewTransactionWriteRepository(db, nil)

	for i := 0; i < 7; i++ {
		_, err := writer.Save(ctx, models.TransactionDB{
			UserID:          userID,
			Reference:       fmt.Sprintf("WD-%010d", i),
			TransactionType: models.TransactionTypeWithdrawal,
			Amount:          float64(10 * (i + 1)),
			Currency:        "usd",
			Unit:            "",
			Status:          models.StatusCompleted,
		})
		assert.NoError(t, err)
		// created_at drives ordering
		_, err = db.Exec(`UPDATE transactions SET created_at = NOW() + ($1 || ' seconds')::interval WHERE reference=$2`,
			fmt.Sprint(i), fmt.Sprintf("WD-%010d", i))
		assert.NoError(t, err)
	}
	_, err := writer.Save(ctx, models.TransactionDB{
		UserID:          userID,
		Reference:       "DEP-0000000001",
		TransactionType: models.TransactionTypeDeposit,
		Amount:          500,
		Currency:        "btc",
		Unit:            "0.00769230",
		Status:          models.StatusCompleted,
	})
	assert.NoError(t, err)

	repo := NewTransactionReadRepository(db)

	txns, err := repo.GetRecentByUser(ctx, userID, models.TransactionTypeWithdrawal, 5)
	assert.NoError(t, err)
	assert.Len(t, txns, 5)

	// Newest first, deposits filtered out.
	assert.Equal(t, "WD-0000000006", txns[0].Reference)
	assert.Equal(t, "WD-0000000002", txns[4].Reference)
	for _, txn := range txns {
		assert.Equal(t, models.TransactionTypeWithdrawal, txn.TransactionType)
	}
}
