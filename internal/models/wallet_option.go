package models

import (
	"time"

	"github.com/google/uuid"
)

// WalletOptionDB represents a fundable-currency row in the database.
type WalletOptionDB struct {
	OptionID        uuid.UUID `db:"option_id"`        // Unique option identifier
	Currency        string    `db:"currency"`         // Currency code (e.g., BTC, ETH)
	CurrencyDisplay string    `db:"currency_display"` // Human-readable name
	Rate            float64   `db:"rate"`             // USD per currency unit
	Address         string    `db:"address"`          // Receiving address
	QRCodeURL       *string   `db:"qr_code_url"`      // Optional QR code image URL
	IsActive        bool      `db:"is_active"`        // Whether deposits are open
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// WalletOption is the wire representation of a fundable currency as
// returned by GET /deposits/options/.
type WalletOption struct {
	ID              string  `json:"id"`
	Currency        string  `json:"currency"`
	CurrencyDisplay string  `json:"currency_display"`
	Rate            float64 `json:"rate"`
	Address         string  `json:"address"`
	QRCodeURL       *string `json:"qr_code_url"`
	IsActive        bool    `json:"is_active"`
}

// ToWire converts a database row into its wire representation.
func (o WalletOptionDB) ToWire() WalletOption {
	return WalletOption{
		ID:              o.OptionID.String(),
		Currency:        o.Currency,
		CurrencyDisplay: o.CurrencyDisplay,
		Rate:            o.Rate,
		Address:         o.Address,
		QRCodeURL:       o.QRCodeURL,
		IsActive:        o.IsActive,
	}
}
