// Package attachment binds uploaded PDF documents to history records.
//
// An attachment is created in two phases: the row is inserted first to obtain
// its id, then the content is stored under the key {id}.pdf and the key is
// recorded on the row.
package attachment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/alitto/pond/v2"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ff-guarantees/internal/blob"
	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/logger"
	"github.com/feral-file/ff-guarantees/internal/store"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

const (
	// MaxFileNameLength is the longest accepted display name, in characters
	MaxFileNameLength = 128
	// DefaultDeleteConcurrency bounds the number of concurrent blob deletions
	DefaultDeleteConcurrency = 4
)

// Upload is one document submitted by a caller
type Upload struct {
	// FileName is the display name given by the uploader
	FileName string
	// ContentType is the declared MIME type
	ContentType string
	// Content is the full document
	Content []byte
}

// Size returns the content length in bytes
func (u Upload) Size() int64 {
	return int64(len(u.Content))
}

// Validate checks every upload and reports all failures at once, keyed files[i]
func Validate(uploads []Upload) error {
	verr := &domain.ValidationError{}
	for i, u := range uploads {
		field := fmt.Sprintf("files[%d]", i)
		for _, msg := range check(u) {
			verr.Add(field, msg)
		}
	}
	return verr.Err()
}

func check(u Upload) []string {
	var problems []string

	name := DisplayName(u.FileName)
	if name == "" {
		problems = append(problems, "file name is required")
	} else if utf8.RuneCountInString(name) > MaxFileNameLength {
		problems = append(problems, fmt.Sprintf("file name must be at most %d characters", MaxFileNameLength))
	}
	if !strings.EqualFold(path.Ext(name), domain.AttachmentExtension) {
		problems = append(problems, "only .pdf files are accepted")
	}

	mediaType, _, err := mime.ParseMediaType(u.ContentType)
	if err != nil || mediaType != domain.AttachmentContentType {
		problems = append(problems, fmt.Sprintf("declared content type must be %s", domain.AttachmentContentType))
	}

	switch size := u.Size(); {
	case size == 0:
		problems = append(problems, "file is empty")
	case size > domain.MaxAttachmentSize:
		problems = append(problems, fmt.Sprintf("file exceeds the maximum size of %d MB", domain.MaxAttachmentSize/(1024*1024)))
	default:
		if !mimetype.Detect(u.Content).Is(domain.AttachmentContentType) {
			problems = append(problems, "file content is not a PDF document")
		}
	}

	return problems
}

// DisplayName strips any client supplied directory from a file name
func DisplayName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	if name == "" {
		return ""
	}
	base := path.Base(name)
	if base == "/" || base == "." {
		return ""
	}
	return base
}

// BlobKey returns the storage key of the attachment with the given id
func BlobKey(fileID int64) string {
	return fmt.Sprintf("%d%s", fileID, domain.AttachmentExtension)
}

// Manager stores and removes attachment content
type Manager struct {
	blobs blob.Store
	pool  pond.Pool
}

// NewManager creates an attachment manager. concurrency bounds cascade blob deletions.
func NewManager(blobs blob.Store, concurrency int) *Manager {
	if concurrency <= 0 {
		concurrency = DefaultDeleteConcurrency
	}
	return &Manager{
		blobs: blobs,
		pool:  pond.NewPool(concurrency),
	}
}

// Close waits for in-flight deletions and stops the worker pool
func (m *Manager) Close() {
	m.pool.StopAndWait()
}

// Attach validates uploads, then creates one attachment per upload on the history record.
// Nothing is written when any upload is invalid.
//
// tx must be bound to the caller's transaction. When the blob write of an
// attachment fails its row is deleted and the error returned. The returned
// files always hold the attachments whose blob was written, including on
// error, so the caller can discard them when the transaction rolls back.
func (m *Manager) Attach(ctx context.Context, tx store.Store, historyID int64, uploads []Upload, principal string) ([]schema.File, error) {
	if err := Validate(uploads); err != nil {
		return nil, err
	}

	files := make([]schema.File, 0, len(uploads))
	for _, u := range uploads {
		file, err := m.attachOne(ctx, tx, historyID, u, principal)
		if err != nil {
			return files, err
		}
		files = append(files, *file)
	}
	return files, nil
}

func (m *Manager) attachOne(ctx context.Context, tx store.Store, historyID int64, u Upload, principal string) (*schema.File, error) {
	file := &schema.File{
		HistoryID: historyID,
		FileName:  DisplayName(u.FileName),
		Audit:     schema.NewAudit(principal),
	}
	if err := tx.CreateFile(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to create file row: %w", err)
	}

	key := BlobKey(file.ID)
	if err := m.blobs.Put(ctx, key, bytes.NewReader(u.Content), u.Size(), domain.AttachmentContentType); err != nil {
		if derr := tx.DeleteFile(ctx, file.ID); derr != nil {
			logger.WarnCtx(ctx, "Failed to delete file row after blob write failure",
				zap.Int64("file_id", file.ID), zap.Error(derr))
		}
		return nil, fmt.Errorf("failed to store blob %s: %w", key, err)
	}

	if err := tx.SetFileBlobKey(ctx, file.ID, key, u.Size()); err != nil {
		// the blob is written, so hand it back for discarding
		file.BlobKey = &key
		return file, fmt.Errorf("failed to record blob key: %w", err)
	}
	file.BlobKey = &key
	file.Size = u.Size()

	logger.DebugCtx(ctx, "Stored attachment",
		zap.Int64("file_id", file.ID),
		zap.Int64("history_id", historyID),
		zap.String("blob_key", key),
		zap.Int64("size", file.Size))
	return file, nil
}

// Remove deletes one attachment: the blob first, best effort, then the row
func (m *Manager) Remove(ctx context.Context, tx store.Store, file *schema.File) error {
	if file.BlobKey != nil {
		m.deleteBlob(ctx, *file.BlobKey)
	}
	if err := tx.DeleteFile(ctx, file.ID); err != nil {
		return err
	}
	return nil
}

// DeleteBlobs removes the blobs of files concurrently, best effort.
// It returns once every deletion has finished.
func (m *Manager) DeleteBlobs(ctx context.Context, files []schema.File) {
	keys := make([]string, 0, len(files))
	for _, f := range files {
		if f.BlobKey != nil {
			keys = append(keys, *f.BlobKey)
		}
	}
	if len(keys) == 0 {
		return
	}

	group := m.pool.NewGroup()
	for _, key := range keys {
		group.Submit(func() {
			m.deleteBlob(ctx, key)
		})
	}
	_ = group.Wait()
}

// Discard removes blobs written by a transaction that rolled back
func (m *Manager) Discard(ctx context.Context, files []schema.File) {
	if len(files) == 0 {
		return
	}
	keys := make([]string, 0, len(files))
	for _, f := range files {
		if f.BlobKey != nil {
			keys = append(keys, *f.BlobKey)
		}
	}
	logger.WarnCtx(ctx, "Discarding blobs of a rolled back transaction", zap.Strings("blob_keys", keys))
	m.DeleteBlobs(ctx, files)
}

// Open returns an attachment row and a reader over its content.
// The caller must close the reader.
func (m *Manager) Open(ctx context.Context, s store.Store, fileID int64) (*schema.File, io.ReadCloser, error) {
	file, err := s.GetFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file.BlobKey == nil {
		return nil, nil, domain.NewNotFoundError("content of warranty file", fileID)
	}

	r, err := m.blobs.Get(ctx, *file.BlobKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil, nil, domain.NewNotFoundError("content of warranty file", fileID)
		}
		return nil, nil, fmt.Errorf("failed to open blob %s: %w", *file.BlobKey, err)
	}
	return file, r, nil
}

// deleteBlob deletes a blob and logs, without returning, any failure other than a missing blob.
// A failure leaves an orphaned blob behind.
func (m *Manager) deleteBlob(ctx context.Context, key string) {
	err := m.blobs.Delete(ctx, key)
	if err == nil || errors.Is(err, blob.ErrNotFound) {
		return
	}
	logger.WarnCtx(ctx, "Failed to delete blob, leaving an orphan",
		zap.String("blob_key", key), zap.Error(err))
}
