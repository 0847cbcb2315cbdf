// Package flows implements the deposit and withdrawal wizards as state
// machines over the wallet gateway API, plus the supporting amount
// conversion, receipt validation, and notification polling.
package flows

import (
	"context"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// WalletAPI is the slice of the gateway the wizards call. *client.Client
// satisfies it.
type WalletAPI interface {
	DepositOptions(ctx context.Context) ([]models.WalletOption, error)
	CreateDeposit(ctx context.Context, sub models.DepositSubmission) (models.DepositReceipt, error)
	WithdrawalProfile(ctx context.Context) (models.WalletProfile, error)
	WithdrawalMethods(ctx context.Context) ([]models.WithdrawalMethod, error)
	WithdrawalHistory(ctx context.Context, limit int) ([]models.Transaction, error)
	CreateWithdrawal(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error)
}
