package models

import (
	"time"

	"github.com/google/uuid"
)

// Withdrawal method types
const (
	MethodBTC       = "btc"
	MethodETH       = "eth"
	MethodUSDTTRC20 = "usdt_trc20"
)

// WithdrawalMethodDB represents a saved payout destination in the database.
// One address per method type; addresses are managed from settings, the
// withdrawal flow only reads them.
type WithdrawalMethodDB struct {
	MethodID    uuid.UUID `db:"method_id"`
	UserID      uuid.UUID `db:"user_id"`
	MethodType  string    `db:"method_type"`
	DisplayName string    `db:"display_name"`
	Address     string    `db:"address"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// WithdrawalMethod is the wire representation of a saved payout destination.
type WithdrawalMethod struct {
	ID          string `json:"id"`
	MethodType  string `json:"method_type"`
	DisplayName string `json:"display_name"`
	Address     string `json:"address"`
}

// ToWire converts a database row into its wire representation.
func (m WithdrawalMethodDB) ToWire() WithdrawalMethod {
	return WithdrawalMethod{
		ID:          m.MethodID.String(),
		MethodType:  m.MethodType,
		DisplayName: m.DisplayName,
		Address:     m.Address,
	}
}

// WalletProfile is the withdrawable-balance view of a user. The server is
// the only writer; clients replace their cached copy wholesale.
type WalletProfile struct {
	Balance          float64 `json:"balance"`
	FormattedBalance string  `json:"formatted_balance"`
}

// WithdrawalSubmission is the client-constructed withdrawal request body.
type WithdrawalSubmission struct {
	MethodType string `json:"method_type"`
	Amount     string `json:"amount"`
	Address    string `json:"withdrawal_address"`
}

// WithdrawalReceipt is the server's answer to a successful withdrawal.
// NewBalance is authoritative and already accounts for any server-side
// fees or rounding.
type WithdrawalReceipt struct {
	Reference           string  `json:"reference"`
	NewBalance          float64 `json:"new_balance"`
	FormattedNewBalance string  `json:"formatted_new_balance"`
}
