package flows

import (
	"context"
	"errors"
	"sync"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// WithdrawStep is a state of the withdrawal wizard.
type WithdrawStep string

// Withdrawal wizard states. The flow is single-step: form, then success.
const (
	WithdrawStepForm    WithdrawStep = "form"
	WithdrawStepSuccess WithdrawStep = "success"
)

// historyLimit is how many recent withdrawals the form shows.
const historyLimit = 5

// Withdrawal validation errors, in checking order. The messages are shown
// to the user as-is.
var (
	ErrNoMethod       = errors.New("Please select a withdrawal method")
	ErrInvalidAmount  = errors.New("Please enter a valid amount")
	ErrNoAddress      = errors.New("No withdrawal address on file")
	ErrExceedsBalance = errors.New("Amount exceeds available balance")
	ErrUnknownMethod  = errors.New("unknown withdrawal method")
)

// WithdrawFlow drives the withdrawal wizard. The cached balance is only
// ever written from server responses: the profile fetch and the
// new_balance of a successful withdrawal. No local arithmetic touches it.
type WithdrawFlow struct {
	api WalletAPI

	mu  sync.Mutex
	gen uint64

	step WithdrawStep

	profile       models.WalletProfile
	profileLoaded bool
	profileErr    string

	methods    []models.WithdrawalMethod
	methodsErr string

	history    []models.Transaction
	historyErr string

	selected   *models.WithdrawalMethod
	amount     string
	address    string
	reference  string
	errMsg     string
	submitting bool
}

// NewWithdrawFlow creates a closed withdrawal wizard over the given API.
func NewWithdrawFlow(api WalletAPI) *WithdrawFlow {
	return &WithdrawFlow{
		api:  api,
		step: WithdrawStepForm,
	}
}

// Open fires the profile, methods, and history fetches concurrently. The
// three are independent: one failing degrades its own section and leaves
// the other two rendered.
func (f *WithdrawFlow) Open(ctx context.Context) {
	f.mu.Lock()
	gen := f.gen
	f.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		profile, err := f.api.WithdrawalProfile(ctx)
		f.apply(gen, func() {
			if err != nil {
				f.profileErr = "Failed to load balance"
				return
			}
			f.profile = profile
			f.profileLoaded = true
			f.profileErr = ""
		})
	}()

	go func() {
		defer wg.Done()
		methods, err := f.api.WithdrawalMethods(ctx)
		f.apply(gen, func() {
			if err != nil {
				f.methodsErr = "Failed to load withdrawal methods"
				return
			}
			f.methods = methods
			f.methodsErr = ""
		})
	}()

	go func() {
		defer wg.Done()
		history, err := f.api.WithdrawalHistory(ctx, historyLimit)
		f.apply(gen, func() {
			if err != nil {
				f.historyErr = "Failed to load recent withdrawals"
				return
			}
			f.history = history
			f.historyErr = ""
		})
	}()

	wg.Wait()
}

// apply runs fn under the lock unless the flow was closed since gen was
// captured, in which case the response is discarded.
func (f *WithdrawFlow) apply(gen uint64, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return
	}
	fn()
}

// Step returns the current wizard state.
func (f *WithdrawFlow) Step() WithdrawStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Profile returns the cached wallet profile.
func (f *WithdrawFlow) Profile() models.WalletProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile
}

// ProfileLoaded reports whether the balance fetch has succeeded.
func (f *WithdrawFlow) ProfileLoaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profileLoaded
}

// Methods returns the fetched withdrawal methods.
func (f *WithdrawFlow) Methods() []models.WithdrawalMethod {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.methods
}

// History returns the fetched recent withdrawals.
func (f *WithdrawFlow) History() []models.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.history
}

// SectionErrors returns the degraded-state messages for the profile,
// methods, and history sections, empty strings when each loaded.
func (f *WithdrawFlow) SectionErrors() (profile, methods, history string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profileErr, f.methodsErr, f.historyErr
}

// Selected returns the chosen method, nil before selection.
func (f *WithdrawFlow) Selected() *models.WithdrawalMethod {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected
}

// Amount returns the entered withdrawal amount.
func (f *WithdrawFlow) Amount() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.amount
}

// Address returns the read-only withdrawal address resolved from the
// selected method. It is maintained from settings, never edited here.
func (f *WithdrawFlow) Address() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.address
}

// Reference returns the server-issued reference after a successful submit.
func (f *WithdrawFlow) Reference() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reference
}

// Err returns the current user-facing error message, empty when none.
func (f *WithdrawFlow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Submitting reports whether a submission is in flight.
func (f *WithdrawFlow) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// SelectMethod picks a saved method and auto-populates its address.
func (f *WithdrawFlow) SelectMethod(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.methods {
		if f.methods[i].ID == id {
			method := f.methods[i]
			f.selected = &method
			f.address = method.Address
			f.errMsg = ""
			return nil
		}
	}
	return ErrUnknownMethod
}

// SetAmount records the entered withdrawal amount.
func (f *WithdrawFlow) SetAmount(amount string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.amount = amount
}

// validate runs the pre-submission checks in order, short-circuiting at
// the first failure: method, amount, address, balance.
func (f *WithdrawFlow) validate() error {
	if f.selected == nil {
		return ErrNoMethod
	}

	amount, err := decimal.NewFromString(f.amount)
	if err != nil || !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if f.address == "" {
		return ErrNoAddress
	}

	// When the profile section degraded there is no balance to check
	// against; the server still enforces sufficiency.
	if f.profileLoaded {
		balance := decimal.NewFromFloat(f.profile.Balance)
		if amount.GreaterThan(balance) {
			return ErrExceedsBalance
		}
	}

	return nil
}

// Submit validates and sends the withdrawal. Validation failures never
// reach the server. On success the cached balance is replaced wholesale by
// the server's new_balance: fees or rounding applied server-side must not
// be double-counted by local subtraction.
func (f *WithdrawFlow) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.step != WithdrawStepForm {
		f.mu.Unlock()
		return ErrInvalidStep
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if err := f.validate(); err != nil {
		f.errMsg = err.Error()
		f.mu.Unlock()
		return err
	}

	sub := models.WithdrawalSubmission{
		MethodType: f.selected.MethodType,
		Amount:     f.amount,
		Address:    f.address,
	}
	f.submitting = true
	gen := f.gen
	f.mu.Unlock()

	receipt, err := f.api.CreateWithdrawal(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return nil
	}
	f.submitting = false

	if err != nil {
		f.errMsg = "Withdrawal failed. Please try again."
		return err
	}

	f.profile.Balance = receipt.NewBalance
	f.profile.FormattedBalance = receipt.FormattedNewBalance
	f.step = WithdrawStepSuccess
	f.reference = receipt.Reference
	f.errMsg = ""
	return nil
}

// Close resets the wizard, including the success-step reference, so
// reopening starts clean.
func (f *WithdrawFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gen++
	f.step = WithdrawStepForm
	f.profile = models.WalletProfile{}
	f.profileLoaded = false
	f.profileErr = ""
	f.methods = nil
	f.methodsErr = ""
	f.history = nil
	f.historyErr = ""
	f.selected = nil
	f.amount = ""
	f.address = ""
	f.reference = ""
	f.errMsg = ""
	f.submitting = false
}
