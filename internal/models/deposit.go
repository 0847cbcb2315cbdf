package models

// ReceiptFile is an in-memory payment receipt image captured by the
// deposit flow before submission.
type ReceiptFile struct {
	Name        string // Original file name
	ContentType string // MIME type, must be image/*
	Size        int64  // Size in bytes
	Data        []byte
}

// DepositSubmission is the client-constructed deposit payload. CurrencyUnit
// is DollarAmount divided by the option rate, rounded to 8 decimal places at
// submission time and never recomputed afterwards.
type DepositSubmission struct {
	Currency     string
	DollarAmount string
	CurrencyUnit string
	Receipt      ReceiptFile
}

// DepositReceipt is the server's answer to a successful deposit submission.
type DepositReceipt struct {
	Reference string `json:"reference"`
}
