package flows

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// DepositStep is a state of the deposit wizard.
type DepositStep string

// Deposit wizard states. Forward order is select, amount, details,
// success; no transition skips a state.
const (
	DepositStepSelect  DepositStep = "select"
	DepositStepAmount  DepositStep = "amount"
	DepositStepDetails DepositStep = "details"
	DepositStepSuccess DepositStep = "success"
)

// QuoteWindowSeconds is the advisory payment window armed on every entry
// into the details step. Reaching zero takes no action.
const QuoteWindowSeconds = 7200

// Deposit wizard errors with user-facing messages.
var (
	ErrNoReceipt         = errors.New("Please upload your payment receipt")
	ErrInvalidStep       = errors.New("action not available in this step")
	ErrSubmitInFlight    = errors.New("submission already in progress")
	ErrReceiptAttached   = errors.New("Remove the current receipt before uploading another")
	ErrUnknownOption     = errors.New("unknown wallet option")
	ErrAmountNotPositive = errors.New("Please enter an amount greater than zero")
)

// DepositFlow drives the deposit wizard. All exported methods are safe for
// concurrent use; a server response resolving after Close is discarded.
type DepositFlow struct {
	api WalletAPI
	now func() time.Time

	mu             sync.Mutex
	gen            uint64 // bumped on Close; stale responses check it
	step           DepositStep
	options        []models.WalletOption
	selected       *models.WalletOption
	dollarAmount   string
	currencyAmount string
	receipt        *models.ReceiptFile
	reference      string
	errMsg         string
	submitting     bool
	detailsEntered time.Time
}

// NewDepositFlow creates a closed deposit wizard over the given API.
func NewDepositFlow(api WalletAPI) *DepositFlow {
	return &DepositFlow{
		api:  api,
		now:  time.Now,
		step: DepositStepSelect,
	}
}

// Open fetches the wallet option list for the select step. An empty list
// is a valid outcome the caller renders as a "no options" state. A fetch
// failure records the error and leaves the step unchanged so the user can
// retry.
func (f *DepositFlow) Open(ctx context.Context) error {
	f.mu.Lock()
	gen := f.gen
	f.mu.Unlock()

	options, err := f.api.DepositOptions(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		// Closed while the fetch was in flight; drop the result.
		return nil
	}

	if err != nil {
		f.errMsg = "Failed to load deposit options"
		return err
	}

	f.options = options
	f.errMsg = ""
	return nil
}

// Step returns the current wizard state.
func (f *DepositFlow) Step() DepositStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Options returns the fetched wallet options.
func (f *DepositFlow) Options() []models.WalletOption {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.options
}

// Selected returns the chosen wallet option, nil before selection.
func (f *DepositFlow) Selected() *models.WalletOption {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected
}

// DollarAmount returns the entered USD amount.
func (f *DepositFlow) DollarAmount() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dollarAmount
}

// CurrencyAmount returns the live-converted currency-unit amount, empty
// whenever the USD amount or the rate is invalid.
func (f *DepositFlow) CurrencyAmount() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currencyAmount
}

// Receipt returns the accepted receipt, nil when none is attached.
func (f *DepositFlow) Receipt() *models.ReceiptFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.receipt
}

// Reference returns the server-issued reference after a successful submit.
func (f *DepositFlow) Reference() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reference
}

// Err returns the current user-facing error message, empty when none.
func (f *DepositFlow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Submitting reports whether a submission is in flight.
func (f *DepositFlow) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// SelectOption picks a wallet option and advances select → amount.
func (f *DepositFlow) SelectOption(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != DepositStepSelect {
		return ErrInvalidStep
	}

	for i := range f.options {
		if f.options[i].ID == id {
			option := f.options[i]
			f.selected = &option
			f.step = DepositStepAmount
			f.currencyAmount = ConvertAmount(f.dollarAmount, option.Rate)
			f.errMsg = ""
			return nil
		}
	}

	return ErrUnknownOption
}

// SetDollarAmount records a keystroke in the amount step and live-converts
// it at the selected option's rate.
func (f *DepositFlow) SetDollarAmount(amount string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dollarAmount = amount
	if f.selected != nil {
		f.currencyAmount = ConvertAmount(amount, f.selected.Rate)
	} else {
		f.currencyAmount = ""
	}
}

// CanContinue reports whether the amount step can advance: the entered
// USD amount must be a number greater than zero.
func (f *DepositFlow) CanContinue() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return amountPositive(f.dollarAmount)
}

// Continue advances amount → details and arms a fresh quote window. Each
// entry into details restarts the full window: re-entering via back and
// forward is a new quote, not a resumed one.
func (f *DepositFlow) Continue() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != DepositStepAmount {
		return ErrInvalidStep
	}
	if !amountPositive(f.dollarAmount) {
		f.errMsg = ErrAmountNotPositive.Error()
		return ErrAmountNotPositive
	}

	f.step = DepositStepDetails
	f.detailsEntered = f.now()
	f.errMsg = ""
	return nil
}

// Back steps details → amount or amount → select. Entered values are kept
// so the user does not retype them.
func (f *DepositFlow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case DepositStepAmount:
		f.step = DepositStepSelect
	case DepositStepDetails:
		f.step = DepositStepAmount
	default:
		return ErrInvalidStep
	}
	f.errMsg = ""
	return nil
}

// CountdownRemaining returns the seconds left in the quote window, zero
// outside the details step and never negative. The countdown is advisory:
// expiry cancels nothing.
func (f *DepositFlow) CountdownRemaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != DepositStepDetails {
		return 0
	}

	elapsed := int(f.now().Sub(f.detailsEntered).Seconds())
	remaining := QuoteWindowSeconds - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AttachReceipt validates and accepts a receipt image. A rejected file
// surfaces an inline error and never displaces an already-accepted one;
// replacing an accepted file requires RemoveReceipt first.
func (f *DepositFlow) AttachReceipt(file models.ReceiptFile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != DepositStepDetails {
		return ErrInvalidStep
	}

	if err := ValidateReceipt(file); err != nil {
		f.errMsg = err.Error()
		return err
	}

	if f.receipt != nil {
		f.errMsg = ErrReceiptAttached.Error()
		return ErrReceiptAttached
	}

	f.receipt = &file
	f.errMsg = ""
	return nil
}

// RemoveReceipt discards the attached receipt.
func (f *DepositFlow) RemoveReceipt() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipt = nil
}

// Submit sends the deposit. It refuses to call the server without a
// receipt or while another submission is in flight. On failure the wizard
// stays in details with every field intact so the user can retry.
func (f *DepositFlow) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.step != DepositStepDetails {
		f.mu.Unlock()
		return ErrInvalidStep
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if f.receipt == nil {
		f.errMsg = ErrNoReceipt.Error()
		f.mu.Unlock()
		return ErrNoReceipt
	}
	if !amountPositive(f.dollarAmount) {
		f.errMsg = ErrAmountNotPositive.Error()
		f.mu.Unlock()
		return ErrAmountNotPositive
	}

	sub := models.DepositSubmission{
		Currency:     f.selected.Currency,
		DollarAmount: f.dollarAmount,
		CurrencyUnit: f.currencyAmount,
		Receipt:      *f.receipt,
	}
	f.submitting = true
	gen := f.gen
	f.mu.Unlock()

	receipt, err := f.api.CreateDeposit(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		// Closed mid-request; the response no longer has a home.
		return nil
	}
	f.submitting = false

	if err != nil {
		f.errMsg = "Deposit submission failed. Please try again."
		return err
	}

	f.step = DepositStepSuccess
	f.reference = receipt.Reference
	f.errMsg = ""
	return nil
}

// Close resets the wizard to its initial state. Reopening never shows
// stale fields from a previous attempt.
func (f *DepositFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gen++
	f.step = DepositStepSelect
	f.options = nil
	f.selected = nil
	f.dollarAmount = ""
	f.currencyAmount = ""
	f.receipt = nil
	f.reference = ""
	f.errMsg = ""
	f.submitting = false
	f.detailsEntered = time.Time{}
}

// amountPositive reports whether s parses as a number greater than zero.
func amountPositive(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && d.IsPositive()
}
