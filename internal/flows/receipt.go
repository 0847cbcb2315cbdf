package flows

import (
	"errors"
	"strings"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/storage"
)

// Receipt validation errors. The messages are shown to the user as-is.
var (
	ErrReceiptNotImage = errors.New("Please upload an image file")
	ErrReceiptTooLarge = errors.New("Image must be 10MB or smaller")
)

// ValidateReceipt gates a captured file before it is accepted into the
// deposit flow. Drag-and-drop and the file picker both funnel through it.
// The 10MB cap matches the server-side enforcement.
func ValidateReceipt(f models.ReceiptFile) error {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return ErrReceiptNotImage
	}
	if f.Size > storage.MaxReceiptSize || int64(len(f.Data)) > storage.MaxReceiptSize {
		return ErrReceiptTooLarge
	}
	return nil
}
