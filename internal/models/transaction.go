package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
)

// Transaction statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

var transactionTypeDisplay = map[string]string{
	TransactionTypeDeposit:    "Deposit",
	TransactionTypeWithdrawal: "Withdrawal",
}

var statusDisplay = map[string]string{
	StatusPending:   "Pending",
	StatusCompleted: "Completed",
	StatusRejected:  "Rejected",
}

// TransactionDB represents a deposit or withdrawal row in the database.
type TransactionDB struct {
	TransactionID   uuid.UUID `db:"transaction_id"`
	UserID          uuid.UUID `db:"user_id"`
	Reference       string    `db:"reference"`        // Opaque server-issued reference
	TransactionType string    `db:"transaction_type"` // deposit or withdrawal
	Amount          float64   `db:"amount"`           // USD amount
	Currency        string    `db:"currency"`         // Currency code
	Unit            string    `db:"unit"`             // Currency-unit amount, 8-decimal string
	Status          string    `db:"status"`
	ReceiptPath     *string   `db:"receipt_path"`       // Stored receipt image, deposits only
	Address         *string   `db:"withdrawal_address"` // Payout address, withdrawals only
	CreatedAt       time.Time `db:"created_at"`
}

// Transaction is the shared wire shape used by history lists.
type Transaction struct {
	ID                     string  `json:"id"`
	Reference              string  `json:"reference"`
	TransactionType        string  `json:"transaction_type"`
	TransactionTypeDisplay string  `json:"transaction_type_display"`
	Amount                 float64 `json:"amount"`
	Currency               string  `json:"currency"`
	Unit                   string  `json:"unit"`
	Status                 string  `json:"status"`
	StatusDisplay          string  `json:"status_display"`
	CreatedAt              string  `json:"created_at"`
	ReceiptURL             *string `json:"receipt_url,omitempty"`
}

// ToWire converts a database row into its wire representation.
func (t TransactionDB) ToWire() Transaction {
	return Transaction{
		ID:                     t.TransactionID.String(),
		Reference:              t.Reference,
		TransactionType:        t.TransactionType,
		TransactionTypeDisplay: transactionTypeDisplay[t.TransactionType],
		Amount:                 t.Amount,
		Currency:               t.Currency,
		Unit:                   t.Unit,
		Status:                 t.Status,
		StatusDisplay:          statusDisplay[t.Status],
		CreatedAt:              t.CreatedAt.Format(time.RFC3339),
		ReceiptURL:             t.ReceiptPath,
	}
}

// TransactionEvent is the Kafka payload published for every created
// deposit or withdrawal.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"` // Unique identifier for the transaction
	Reference     string  `json:"reference"`      // User-facing reference
	Timestamp     int64   `json:"timestamp"`      // Unix timestamp (seconds)
	Amount        float64 `json:"amount"`         // USD amount
	Currency      string  `json:"currency"`       // Currency code
	UserID        string  `json:"user_id"`        // Initiating user
	Operation     string  `json:"operation"`      // "deposit" or "withdrawal"
}
