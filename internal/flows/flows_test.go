package flows

import (
	"context"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// stubAPI implements WalletAPI with overridable functions. Unset methods
// return zero values.
type stubAPI struct {
	depositOptions    func(ctx context.Context) ([]models.WalletOption, error)
	createDeposit     func(ctx context.Context, sub models.DepositSubmission) (models.DepositReceipt, error)
	withdrawalProfile func(ctx context.Context) (models.WalletProfile, error)
	withdrawalMethods func(ctx context.Context) ([]models.WithdrawalMethod, error)
	withdrawalHistory func(ctx context.Context, limit int) ([]models.Transaction, error)
	createWithdrawal  func(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error)
}

func (s *stubAPI) DepositOptions(ctx context.Context) ([]models.WalletOption, error) {
	if s.depositOptions == nil {
		return nil, nil
	}
	return s.depositOptions(ctx)
}

func (s *stubAPI) CreateDeposit(ctx context.Context, sub models.DepositSubmission) (models.DepositReceipt, error) {
	if s.createDeposit == nil {
		return models.DepositReceipt{}, nil
	}
	return s.createDeposit(ctx, sub)
}

func (s *stubAPI) WithdrawalProfile(ctx context.Context) (models.WalletProfile, error) {
	if s.withdrawalProfile == nil {
		return models.WalletProfile{}, nil
	}
	return s.withdrawalProfile(ctx)
}

func (s *stubAPI) WithdrawalMethods(ctx context.Context) ([]models.WithdrawalMethod, error) {
	if s.withdrawalMethods == nil {
		return nil, nil
	}
	return s.withdrawalMethods(ctx)
}

func (s *stubAPI) WithdrawalHistory(ctx context.Context, limit int) ([]models.Transaction, error) {
	if s.withdrawalHistory == nil {
		return nil, nil
	}
	return s.withdrawalHistory(ctx, limit)
}

func (s *stubAPI) CreateWithdrawal(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error) {
	if s.createWithdrawal == nil {
		return models.WithdrawalReceipt{}, nil
	}
	return s.createWithdrawal(ctx, sub)
}
