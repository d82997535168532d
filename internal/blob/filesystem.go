package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/feral-file/ff-guarantees/internal/adapter"
)

// FileStore keeps blobs as files in a single directory.
// Writes go to a temp file which is fsynced and atomically renamed into place.
type FileStore struct {
	dir string
	fs  adapter.FileSystem
}

// NewFileStore creates a file store rooted at dir, creating the directory if needed
func NewFileStore(dir string, fileSystem adapter.FileSystem) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := fileSystem.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, fs: fileSystem}, nil
}

// Put stores the content of r under key
func (s *FileStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpPath := filepath.Join(s.dir, fmt.Sprintf(".tmp-%s", uuid.NewString()))
	f, err := s.fs.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	if size >= 0 && written != size {
		_ = f.Close()
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("short write for blob %s: wrote %d of %d bytes", key, written, size)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to sync blob %s: %w", key, err)
	}

	if err := f.Close(); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to close blob %s: %w", key, err)
	}

	if err := s.fs.Rename(tmpPath, filepath.Join(s.dir, key)); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to move blob %s into place: %w", key, err)
	}

	return nil
}

// Get opens the blob stored under key
func (s *FileStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	rc, err := s.fs.Open(filepath.Join(s.dir, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to open blob %s: %w", key, err)
	}
	return rc, nil
}

// Delete removes the blob stored under key
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := s.fs.Remove(filepath.Join(s.dir, key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
