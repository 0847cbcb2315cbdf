package flows

import (
	"context"
	"testing"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
	"github.com/stretchr/testify/assert"
)

func withdrawalMethodsFixture() []models.WithdrawalMethod {
	return []models.WithdrawalMethod{
		{
			ID:          "m-btc",
			MethodType:  models.MethodBTC,
			DisplayName: "Bitcoin",
			Address:     "bc1qexampleaddress",
		},
		{
			ID:          "m-usdt",
			MethodType:  models.MethodUSDTTRC20,
			DisplayName: "USDT (TRC20)",
			Address:     "",
		},
	}
}

// openedWithdrawFlow returns a flow with a loaded profile and methods.
func openedWithdrawFlow(t *testing.T, api *stubAPI) *WithdrawFlow {
	t.Helper()
	if api.withdrawalProfile == nil {
		api.withdrawalProfile = func(ctx context.Context) (models.WalletProfile, error) {
			return models.WalletProfile{Balance: 1000, FormattedBalance: "$1,000.00"}, nil
		}
	}
	if api.withdrawalMethods == nil {
		api.withdrawalMethods = func(ctx context.Context) ([]models.WithdrawalMethod, error) {
			return withdrawalMethodsFixture(), nil
		}
	}
	f := NewWithdrawFlow(api)
	f.Open(context.Background())
	return f
}

func TestWithdrawFlowOpen(t *testing.T) {
	t.Run("loads all three sections", func(t *testing.T) {
		api := &stubAPI{
			withdrawalHistory: func(ctx context.Context, limit int) ([]models.Transaction, error) {
				assert.Equal(t, historyLimit, limit)
				return []models.Transaction{{Reference: "WD-1A2B3C4D5E"}}, nil
			},
		}
		f := openedWithdrawFlow(t, api)

		assert.Equal(t, WithdrawStepForm, f.Step())
		assert.True(t, f.ProfileLoaded())
		assert.Equal(t, 1000.0, f.Profile().Balance)
		assert.Len(t, f.Methods(), 2)
		assert.Len(t, f.History(), 1)

		profileErr, methodsErr, historyErr := f.SectionErrors()
		assert.Empty(t, profileErr)
		assert.Empty(t, methodsErr)
		assert.Empty(t, historyErr)
	})

	t.Run("one section failing degrades only itself", func(t *testing.T) {
		api := &stubAPI{
			withdrawalHistory: func(ctx context.Context, limit int) ([]models.Transaction, error) {
				return nil, assert.AnError
			},
		}
		f := openedWithdrawFlow(t, api)

		assert.True(t, f.ProfileLoaded())
		assert.Len(t, f.Methods(), 2)
		assert.Empty(t, f.History())

		profileErr, methodsErr, historyErr := f.SectionErrors()
		assert.Empty(t, profileErr)
		assert.Empty(t, methodsErr)
		assert.Equal(t, "Failed to load recent withdrawals", historyErr)
	})

	t.Run("responses after close are discarded", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		api := &stubAPI{
			withdrawalProfile: func(ctx context.Context) (models.WalletProfile, error) {
				close(started)
				<-release
				return models.WalletProfile{Balance: 1000}, nil
			},
			withdrawalMethods: func(ctx context.Context) ([]models.WithdrawalMethod, error) {
				return withdrawalMethodsFixture(), nil
			},
		}
		f := NewWithdrawFlow(api)

		done := make(chan struct{})
		go func() {
			f.Open(context.Background())
			close(done)
		}()

		<-started
		f.Close()
		close(release)
		<-done

		assert.False(t, f.ProfileLoaded())
		assert.Equal(t, 0.0, f.Profile().Balance)
	})
}

func TestWithdrawFlowSelectMethod(t *testing.T) {
	f := openedWithdrawFlow(t, &stubAPI{})

	assert.NoError(t, f.SelectMethod("m-btc"))
	assert.Equal(t, models.MethodBTC, f.Selected().MethodType)
	assert.Equal(t, "bc1qexampleaddress", f.Address(), "address auto-populates from the saved method")

	assert.ErrorIs(t, f.SelectMethod("m-paypal"), ErrUnknownMethod)
}

func TestWithdrawFlowValidationOrder(t *testing.T) {
	// Every check below leaves the server untouched.
	called := false
	api := &stubAPI{
		createWithdrawal: func(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error) {
			called = true
			return models.WithdrawalReceipt{}, nil
		},
	}

	tests := []struct {
		name           string
		setup          func(f *WithdrawFlow)
		expectedErr    error
		expectedErrMsg string
	}{
		{
			name:           "no method selected",
			setup:          func(f *WithdrawFlow) { f.SetAmount("100") },
			expectedErr:    ErrNoMethod,
			expectedErrMsg: "Please select a withdrawal method",
		},
		{
			name: "missing amount",
			setup: func(f *WithdrawFlow) {
				assert.NoError(t, f.SelectMethod("m-btc"))
			},
			expectedErr:    ErrInvalidAmount,
			expectedErrMsg: "Please enter a valid amount",
		},
		{
			name: "non numeric amount",
			setup: func(f *WithdrawFlow) {
				assert.NoError(t, f.SelectMethod("m-btc"))
				f.SetAmount("abc")
			},
			expectedErr:    ErrInvalidAmount,
			expectedErrMsg: "Please enter a valid amount",
		},
		{
			name: "zero amount",
			setup: func(f *WithdrawFlow) {
				assert.NoError(t, f.SelectMethod("m-btc"))
				f.SetAmount("0")
			},
			expectedErr:    ErrInvalidAmount,
			expectedErrMsg: "Please enter a valid amount",
		},
		{
			name: "no address on file",
			setup: func(f *WithdrawFlow) {
				assert.NoError(t, f.SelectMethod("m-usdt"))
				f.SetAmount("100")
			},
			expectedErr:    ErrNoAddress,
			expectedErrMsg: "No withdrawal address on file",
		},
		{
			name: "amount exceeds balance",
			setup: func(f *WithdrawFlow) {
				assert.NoError(t, f.SelectMethod("m-btc"))
				f.SetAmount("1000.01")
			},
			expectedErr:    ErrExceedsBalance,
			expectedErrMsg: "Amount exceeds available balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := openedWithdrawFlow(t, api)
			tt.setup(f)

			assert.ErrorIs(t, f.Submit(context.Background()), tt.expectedErr)
			assert.Equal(t, tt.expectedErrMsg, f.Err())
			assert.False(t, called, "validation failures must not reach the server")
			assert.Equal(t, WithdrawStepForm, f.Step())
		})
	}
}

func TestWithdrawFlowSubmit(t *testing.T) {
	t.Run("success replaces balance with the server value", func(t *testing.T) {
		var got models.WithdrawalSubmission
		api := &stubAPI{
			createWithdrawal: func(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error) {
				got = sub
				// A server-side fee makes new_balance differ from
				// balance minus amount.
				return models.WithdrawalReceipt{
					Reference:           "WD-1A2B3C4D5E",
					NewBalance:          895.5,
					FormattedNewBalance: "$895.50",
				}, nil
			},
		}
		f := openedWithdrawFlow(t, api)
		assert.NoError(t, f.SelectMethod("m-btc"))
		f.SetAmount("100")

		assert.NoError(t, f.Submit(context.Background()))

		assert.Equal(t, WithdrawStepSuccess, f.Step())
		assert.Equal(t, "WD-1A2B3C4D5E", f.Reference())
		assert.Equal(t, 895.5, f.Profile().Balance, "cached balance is the server's, not local subtraction")
		assert.Equal(t, "$895.50", f.Profile().FormattedBalance)

		assert.Equal(t, models.MethodBTC, got.MethodType)
		assert.Equal(t, "100", got.Amount)
		assert.Equal(t, "bc1qexampleaddress", got.Address)
	})

	t.Run("exact balance is allowed", func(t *testing.T) {
		api := &stubAPI{
			createWithdrawal: func(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error) {
				return models.WithdrawalReceipt{Reference: "WD-1A2B3C4D5E"}, nil
			},
		}
		f := openedWithdrawFlow(t, api)
		assert.NoError(t, f.SelectMethod("m-btc"))
		f.SetAmount("1000")

		assert.NoError(t, f.Submit(context.Background()))
		assert.Equal(t, WithdrawStepSuccess, f.Step())
	})

	t.Run("failure keeps the form for retry", func(t *testing.T) {
		api := &stubAPI{
			createWithdrawal: func(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error) {
				return models.WithdrawalReceipt{}, assert.AnError
			},
		}
		f := openedWithdrawFlow(t, api)
		assert.NoError(t, f.SelectMethod("m-btc"))
		f.SetAmount("100")

		assert.Error(t, f.Submit(context.Background()))
		assert.Equal(t, WithdrawStepForm, f.Step())
		assert.Equal(t, "Withdrawal failed. Please try again.", f.Err())
		assert.Equal(t, "100", f.Amount())
		assert.Equal(t, 1000.0, f.Profile().Balance, "a failed withdrawal must not touch the balance")
		assert.False(t, f.Submitting())
	})

	t.Run("second submit while in flight is rejected", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		api := &stubAPI{
			createWithdrawal: func(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error) {
				close(started)
				<-release
				return models.WithdrawalReceipt{Reference: "WD-1A2B3C4D5E"}, nil
			},
		}
		f := openedWithdrawFlow(t, api)
		assert.NoError(t, f.SelectMethod("m-btc"))
		f.SetAmount("100")

		done := make(chan error, 1)
		go func() { done <- f.Submit(context.Background()) }()

		<-started
		assert.True(t, f.Submitting())
		assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitInFlight)

		close(release)
		assert.NoError(t, <-done)
	})

	t.Run("response after close is discarded", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		api := &stubAPI{
			createWithdrawal: func(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error) {
				close(started)
				<-release
				return models.WithdrawalReceipt{Reference: "WD-1A2B3C4D5E", NewBalance: 900}, nil
			},
		}
		f := openedWithdrawFlow(t, api)
		assert.NoError(t, f.SelectMethod("m-btc"))
		f.SetAmount("100")

		done := make(chan error, 1)
		go func() { done <- f.Submit(context.Background()) }()

		<-started
		f.Close()
		close(release)
		assert.NoError(t, <-done)

		assert.Equal(t, WithdrawStepForm, f.Step())
		assert.Empty(t, f.Reference())
		assert.Equal(t, 0.0, f.Profile().Balance)
	})
}

func TestWithdrawFlowClose(t *testing.T) {
	api := &stubAPI{
		createWithdrawal: func(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error) {
			return models.WithdrawalReceipt{Reference: "WD-1A2B3C4D5E", NewBalance: 900}, nil
		},
	}
	f := openedWithdrawFlow(t, api)
	assert.NoError(t, f.SelectMethod("m-btc"))
	f.SetAmount("100")
	assert.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, WithdrawStepSuccess, f.Step())

	f.Close()

	assert.Equal(t, WithdrawStepForm, f.Step())
	assert.False(t, f.ProfileLoaded())
	assert.Empty(t, f.Methods())
	assert.Empty(t, f.History())
	assert.Nil(t, f.Selected())
	assert.Empty(t, f.Amount())
	assert.Empty(t, f.Address())
	assert.Empty(t, f.Reference(), "the success-step reference must not leak into a reopened flow")
	assert.Empty(t, f.Err())
}
