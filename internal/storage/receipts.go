package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
)

// MaxReceiptSize is the upload cap for receipt images, enforced both here
// and in the deposit flow.
const MaxReceiptSize = 10 << 20 // 10MB

var (
	// ErrNotAnImage is returned for files without an image MIME type.
	ErrNotAnImage = errors.New("receipt must be an image file")
	// ErrTooLarge is returned for files over MaxReceiptSize.
	ErrTooLarge = errors.New("receipt exceeds the 10MB limit")
)

// ReceiptStore writes receipt images to a directory on disk and hands back
// relative paths suitable for receipt_url fields.
type ReceiptStore struct {
	dir string
}

// NewReceiptStore creates the backing directory if needed.
func NewReceiptStore(dir string) (*ReceiptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt dir: %w", err)
	}
	return &ReceiptStore{dir: dir}, nil
}

// Save validates and persists a receipt image, returning its relative path.
func (s *ReceiptStore) Save(name, contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if int64(len(data)) > MaxReceiptSize {
		return "", ErrTooLarge
	}

	ext := filepath.Ext(name)
	if ext == "" {
		ext = ".bin"
	}
	fileName := uuid.NewString() + ext

	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Log.Errorw("failed to write receipt", "path", path, "error", err)
		return "", err
	}

	logger.Log.Infow("receipt stored", "path", path, "size", len(data))
	return fileName, nil
}

// Open returns the absolute path for a stored receipt, or an error if the
// name escapes the store directory.
func (s *ReceiptStore) Open(fileName string) (string, error) {
	if fileName != filepath.Base(fileName) {
		return "", fmt.Errorf("invalid receipt name %q", fileName)
	}
	path := filepath.Join(s.dir, fileName)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
