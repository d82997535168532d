// Package blob stores attachment content under opaque keys.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

//go:generate mockgen -source=blob.go -destination=../mocks/blob.go -package=mocks -mock_names=Store=MockBlobStore

// ErrNotFound is returned when no blob exists under a key
var ErrNotFound = errors.New("blob not found")

// Store defines the interface for blob storage backends
type Store interface {
	// Put stores size bytes read from r under key, replacing any existing blob
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Get opens the blob stored under key. The caller must close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the blob stored under key
	Delete(ctx context.Context, key string) error
}

// ValidateKey rejects keys that are empty or could escape the storage root
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("blob key is empty")
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") || strings.HasPrefix(key, ".") {
		return fmt.Errorf("invalid blob key %q", key)
	}
	return nil
}
