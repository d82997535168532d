// Package guarantee implements the lifecycle of letters of guarantee.
//
// A guarantee accrues an append-only chain of history records. The record with
// the greatest id is the current one and carries the status of the guarantee.
// Every mutation runs in a single transaction that starts by locking the
// guarantee row, so reading the current record, validating and writing is
// serialized per guarantee.
package guarantee

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-guarantees/internal/attachment"
	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/logger"
	"github.com/feral-file/ff-guarantees/internal/store"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

// CreateInput creates a guarantee together with its issuance record
type CreateInput struct {
	ObjectID     int64
	LetterTypeID int64
	ContractorID int64
	History      HistoryFields
	Files        []attachment.Upload
}

// RenewInput appends a renewal record
type RenewInput struct {
	GuaranteeID int64
	History     HistoryFields
	Files       []attachment.Upload
}

// CloseInput appends a return or execution record
type CloseInput struct {
	GuaranteeID       int64
	IssueDate         *time.Time
	ReferenceDocument *string
	Comments          *string
	Files             []attachment.Upload
}

// AmendInput changes the current record in place.
// LetterTypeID and ContractorID update the guarantee and are only accepted when amending the issuance record.
type AmendInput struct {
	History       HistoryFields
	LetterTypeID  *int64
	ContractorID  *int64
	Files         []attachment.Upload
	RemoveFileIDs []int64
}

// UpdateInput changes the references of a guarantee
type UpdateInput struct {
	ObjectID     *int64
	LetterTypeID *int64
	ContractorID *int64
}

// DeleteResult describes the outcome of deleting a history record
type DeleteResult struct {
	GuaranteeID int64 `json:"warranty_id"`
	// GuaranteeDeleted is set when the record was the only one and the guarantee went with it
	GuaranteeDeleted bool `json:"warranty_deleted"`
	// CurrentHistoryID is the record that became current, 0 when the guarantee was deleted
	CurrentHistoryID int64 `json:"current_history_id"`
}

// Summary pairs a guarantee with its current record
type Summary struct {
	Guarantee schema.Guarantee
	Current   *schema.History
}

// Service runs the lifecycle operations of guarantees
type Service struct {
	store       store.Store
	attachments *attachment.Manager
}

// NewService creates a guarantee service
func NewService(s store.Store, attachments *attachment.Manager) *Service {
	return &Service{store: s, attachments: attachments}
}

// changes tracks the blobs touched by a transaction
type changes struct {
	// written blobs must be discarded if the transaction rolls back
	written []schema.File
	// released blobs belong to rows deleted by the transaction and are deleted after commit
	released []schema.File
}

// mutate runs fn in a transaction and settles the blobs it touched
func (s *Service) mutate(ctx context.Context, operation string, fn func(tx store.Store, c *changes) error) error {
	c := &changes{}
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		return fn(tx, c)
	})
	observe(operation, err)
	if err != nil {
		s.attachments.Discard(ctx, c.written)
		return err
	}
	s.attachments.DeleteBlobs(ctx, c.released)
	return nil
}

// attach stores uploads on a history record and records the written blobs
func (s *Service) attach(ctx context.Context, tx store.Store, c *changes, historyID int64, uploads []attachment.Upload, principal string) error {
	if len(uploads) == 0 {
		return nil
	}
	files, err := s.attachments.Attach(ctx, tx, historyID, uploads, principal)
	c.written = append(c.written, files...)
	return err
}

// Create creates a guarantee and its issuance record, with optional attachments, atomically
func (s *Service) Create(ctx context.Context, principal string, in CreateInput) (*schema.Guarantee, error) {
	verr := &domain.ValidationError{}
	requireID(verr, "warranty_object_id", in.ObjectID)
	requireID(verr, "letter_type_id", in.LetterTypeID)
	requireID(verr, "contractor_id", in.ContractorID)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	record := &schema.History{StatusID: int64(domain.StatusIssuance)}
	in.History.applyTo(record)
	if err := validateRecord(record, domain.StatusIssuance); err != nil {
		return nil, err
	}
	if err := attachment.Validate(in.Files); err != nil {
		return nil, err
	}

	g := &schema.Guarantee{
		ObjectID:     in.ObjectID,
		LetterTypeID: in.LetterTypeID,
		ContractorID: in.ContractorID,
		Audit:        schema.NewAudit(principal),
	}
	err := s.mutate(ctx, "create", func(tx store.Store, c *changes) error {
		if err := tx.CreateGuarantee(ctx, g); err != nil {
			return err
		}
		record.GuaranteeID = g.ID
		record.Audit = schema.NewAudit(principal)
		if err := tx.CreateHistory(ctx, record); err != nil {
			return err
		}
		return s.attach(ctx, tx, c, record.ID, in.Files, principal)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Created warranty",
		zap.Int64("warranty_id", g.ID),
		zap.Int64("history_id", record.ID),
		zap.Int("files", len(in.Files)))
	return s.store.GetGuarantee(ctx, g.ID, true)
}

// Renew appends a renewal record to a guarantee whose current status is active
func (s *Service) Renew(ctx context.Context, principal string, in RenewInput) (*schema.History, error) {
	if in.GuaranteeID <= 0 {
		return nil, domain.NewValidationError("warranty_id", "is required")
	}
	record := &schema.History{GuaranteeID: in.GuaranteeID, StatusID: int64(domain.StatusRenewal)}
	in.History.applyTo(record)
	if err := validateRecord(record, domain.StatusRenewal); err != nil {
		return nil, err
	}
	if err := attachment.Validate(in.Files); err != nil {
		return nil, err
	}

	err := s.mutate(ctx, "renew", func(tx store.Store, c *changes) error {
		if err := s.lockAppendable(ctx, tx, in.GuaranteeID); err != nil {
			return err
		}
		record.Audit = schema.NewAudit(principal)
		if err := tx.CreateHistory(ctx, record); err != nil {
			return err
		}
		return s.attach(ctx, tx, c, record.ID, in.Files, principal)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Renewed warranty",
		zap.Int64("warranty_id", in.GuaranteeID),
		zap.Int64("history_id", record.ID))
	return s.store.GetHistory(ctx, record.ID)
}

// Return appends a return record
func (s *Service) Return(ctx context.Context, principal string, in CloseInput) (*schema.History, error) {
	return s.close(ctx, principal, domain.StatusReturn, in)
}

// Execute appends an execution record
func (s *Service) Execute(ctx context.Context, principal string, in CloseInput) (*schema.History, error) {
	return s.close(ctx, principal, domain.StatusExecution, in)
}

// close appends a record that carries no commitment. The financial entity is inherited
// from the most recent record of the guarantee that has one.
func (s *Service) close(ctx context.Context, principal string, status domain.StatusID, in CloseInput) (*schema.History, error) {
	if in.GuaranteeID <= 0 {
		return nil, domain.NewValidationError("warranty_id", "is required")
	}
	record := &schema.History{GuaranteeID: in.GuaranteeID, StatusID: int64(status)}
	HistoryFields{
		IssueDate:         in.IssueDate,
		ReferenceDocument: in.ReferenceDocument,
		Comments:          in.Comments,
	}.applyTo(record)
	if err := validateRecord(record, status); err != nil {
		return nil, err
	}
	if err := attachment.Validate(in.Files); err != nil {
		return nil, err
	}

	operation := "return"
	if status == domain.StatusExecution {
		operation = "execute"
	}

	err := s.mutate(ctx, operation, func(tx store.Store, c *changes) error {
		if err := s.lockAppendable(ctx, tx, in.GuaranteeID); err != nil {
			return err
		}

		inherited, err := tx.FindInheritableFinancialEntity(ctx, in.GuaranteeID)
		if err != nil {
			return err
		}
		clearCommitment(record)
		if inherited != nil {
			record.FinancialEntityID = inherited.FinancialEntityID
			record.FinancialEntityAddress = inherited.FinancialEntityAddress
		}

		record.Audit = schema.NewAudit(principal)
		if err := tx.CreateHistory(ctx, record); err != nil {
			return err
		}
		return s.attach(ctx, tx, c, record.ID, in.Files, principal)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Closed warranty",
		zap.String("operation", operation),
		zap.Int64("warranty_id", in.GuaranteeID),
		zap.Int64("history_id", record.ID))
	return s.store.GetHistory(ctx, record.ID)
}

// lockAppendable locks the guarantee and checks that its current status accepts a new record
func (s *Service) lockAppendable(ctx context.Context, tx store.Store, guaranteeID int64) error {
	if err := tx.LockGuarantee(ctx, guaranteeID); err != nil {
		return err
	}
	current, err := tx.GetCurrentHistory(ctx, guaranteeID)
	if err != nil {
		return err
	}
	return CheckAppend(current)
}

// Amend changes the current record of a guarantee in place. Only the fields present in
// the input change; the merged record is validated as a whole.
func (s *Service) Amend(ctx context.Context, principal string, kind domain.AmendKind, historyID int64, in AmendInput) (*schema.History, error) {
	if !kind.Valid() {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown amend kind %q", kind))
	}
	if err := checkAmendFields(kind, in); err != nil {
		return nil, err
	}
	if err := attachment.Validate(in.Files); err != nil {
		return nil, err
	}

	err := s.mutate(ctx, "amend_"+string(kind), func(tx store.Store, c *changes) error {
		record, err := lockedHistory(ctx, tx, historyID)
		if err != nil {
			return err
		}
		currentID, err := tx.GetCurrentHistoryID(ctx, record.GuaranteeID)
		if err != nil {
			return err
		}
		if err := CheckAmend(kind, record, currentID); err != nil {
			return err
		}

		in.History.applyTo(record)
		if err := validateRecord(record, kind.ExpectedStatus()); err != nil {
			return err
		}

		fields := in.History.columns(record)
		if len(fields) > 0 || len(in.Files) > 0 || len(in.RemoveFileIDs) > 0 {
			fields["updated_by"] = principal
			if err := tx.UpdateHistory(ctx, record.ID, fields); err != nil {
				return err
			}
		}

		refs := map[string]any{}
		if in.LetterTypeID != nil {
			refs["letter_type_id"] = *in.LetterTypeID
		}
		if in.ContractorID != nil {
			refs["contractor_id"] = *in.ContractorID
		}
		if len(refs) > 0 {
			refs["updated_by"] = principal
			if err := tx.UpdateGuarantee(ctx, record.GuaranteeID, refs); err != nil {
				return err
			}
		}

		for _, fileID := range in.RemoveFileIDs {
			file, err := ownedFile(ctx, tx, record.ID, fileID)
			if err != nil {
				return err
			}
			if err := tx.DeleteFile(ctx, file.ID); err != nil {
				return err
			}
			c.released = append(c.released, *file)
		}

		return s.attach(ctx, tx, c, record.ID, in.Files, principal)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Amended warranty history",
		zap.String("kind", string(kind)),
		zap.Int64("history_id", historyID))
	return s.store.GetHistory(ctx, historyID)
}

// lockedHistory locks the guarantee of a record and reads the record again under the lock
func lockedHistory(ctx context.Context, tx store.Store, historyID int64) (*schema.History, error) {
	record, err := tx.GetHistory(ctx, historyID)
	if err != nil {
		return nil, err
	}
	if err := tx.LockGuarantee(ctx, record.GuaranteeID); err != nil {
		return nil, err
	}
	return tx.GetHistory(ctx, historyID)
}

// ownedFile returns an attachment of the record, rejecting ids of other records
func ownedFile(ctx context.Context, tx store.Store, historyID, fileID int64) (*schema.File, error) {
	file, err := tx.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file.HistoryID != historyID {
		return nil, domain.NewValidationError("remove_file_ids", fmt.Sprintf("file %d does not belong to history %d", fileID, historyID))
	}
	return file, nil
}

// DeleteHistory deletes the current record of a guarantee with its attachments.
// When it is the only record the guarantee is deleted too.
func (s *Service) DeleteHistory(ctx context.Context, historyID int64) (*DeleteResult, error) {
	result := &DeleteResult{}
	err := s.mutate(ctx, "delete_history", func(tx store.Store, c *changes) error {
		record, err := tx.GetHistory(ctx, historyID)
		if err != nil {
			return err
		}
		result.GuaranteeID = record.GuaranteeID

		if err := tx.LockGuarantee(ctx, record.GuaranteeID); err != nil {
			return err
		}
		currentID, err := tx.GetCurrentHistoryID(ctx, record.GuaranteeID)
		if err != nil {
			return err
		}
		if err := CheckDelete(record, currentID); err != nil {
			return err
		}

		count, err := tx.CountHistories(ctx, record.GuaranteeID)
		if err != nil {
			return err
		}

		files, err := tx.ListFilesByHistory(ctx, record.ID)
		if err != nil {
			return err
		}
		c.released = files

		if count <= 1 {
			result.GuaranteeDeleted = true
			return tx.DeleteGuarantee(ctx, record.GuaranteeID)
		}

		if err := tx.DeleteHistory(ctx, record.ID); err != nil {
			return err
		}
		result.CurrentHistoryID, err = tx.GetCurrentHistoryID(ctx, record.GuaranteeID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Deleted warranty history",
		zap.Int64("history_id", historyID),
		zap.Int64("warranty_id", result.GuaranteeID),
		zap.Bool("warranty_deleted", result.GuaranteeDeleted))
	return result, nil
}

// DeleteGuarantee deletes a guarantee with its full history and attachments
func (s *Service) DeleteGuarantee(ctx context.Context, guaranteeID int64) error {
	err := s.mutate(ctx, "delete_warranty", func(tx store.Store, c *changes) error {
		if err := tx.LockGuarantee(ctx, guaranteeID); err != nil {
			return err
		}
		files, err := tx.ListFilesByGuarantee(ctx, guaranteeID)
		if err != nil {
			return err
		}
		c.released = files
		return tx.DeleteGuarantee(ctx, guaranteeID)
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Deleted warranty", zap.Int64("warranty_id", guaranteeID))
	return nil
}

// Update changes the object, letter type or contractor of a guarantee
func (s *Service) Update(ctx context.Context, principal string, guaranteeID int64, in UpdateInput) (*schema.Guarantee, error) {
	fields := map[string]any{}
	if in.ObjectID != nil {
		fields["warranty_object_id"] = *in.ObjectID
	}
	if in.LetterTypeID != nil {
		fields["letter_type_id"] = *in.LetterTypeID
	}
	if in.ContractorID != nil {
		fields["contractor_id"] = *in.ContractorID
	}

	if len(fields) > 0 {
		fields["updated_by"] = principal
		err := s.mutate(ctx, "update_warranty", func(tx store.Store, _ *changes) error {
			if err := tx.LockGuarantee(ctx, guaranteeID); err != nil {
				return err
			}
			return tx.UpdateGuarantee(ctx, guaranteeID, fields)
		})
		if err != nil {
			return nil, err
		}
	}
	return s.store.GetGuarantee(ctx, guaranteeID, true)
}

// DeleteFile removes one attachment of the current record of a guarantee.
// The blob is deleted first, best effort, then the row.
func (s *Service) DeleteFile(ctx context.Context, fileID int64) error {
	return s.mutate(ctx, "delete_file", func(tx store.Store, _ *changes) error {
		file, err := tx.GetFile(ctx, fileID)
		if err != nil {
			return err
		}
		record, err := tx.GetHistory(ctx, file.HistoryID)
		if err != nil {
			return err
		}
		if err := tx.LockGuarantee(ctx, record.GuaranteeID); err != nil {
			return err
		}
		currentID, err := tx.GetCurrentHistoryID(ctx, record.GuaranteeID)
		if err != nil {
			return err
		}
		if record.ID != currentID {
			return domain.NewConflictError("only attachments of the current record can be deleted", map[string]any{
				"file_id":            fileID,
				"history_id":         record.ID,
				"current_history_id": currentID,
			})
		}
		return s.attachments.Remove(ctx, tx, file)
	})
}

// Get returns a guarantee with its full history and attachments
func (s *Service) Get(ctx context.Context, guaranteeID int64) (*schema.Guarantee, error) {
	return s.store.GetGuarantee(ctx, guaranteeID, true)
}

// List returns a page of guarantees
func (s *Service) List(ctx context.Context, q store.GuaranteeQuery) ([]schema.Guarantee, int64, error) {
	return s.store.ListGuarantees(ctx, q)
}

// GetHistory returns a history record with its attachments
func (s *Service) GetHistory(ctx context.Context, historyID int64) (*schema.History, error) {
	return s.store.GetHistory(ctx, historyID)
}

// IsLatest reports whether a record is the current record of its guarantee, with the current record id
func (s *Service) IsLatest(ctx context.Context, historyID int64) (bool, int64, error) {
	record, err := s.store.GetHistory(ctx, historyID)
	if err != nil {
		return false, 0, err
	}
	currentID, err := s.store.GetCurrentHistoryID(ctx, record.GuaranteeID)
	if err != nil {
		return false, 0, err
	}
	return record.ID == currentID, currentID, nil
}

// Search finds guarantees by one attribute and returns each with its current record
func (s *Service) Search(ctx context.Context, field store.SearchField, value string) ([]Summary, error) {
	if !field.Valid() {
		return nil, domain.NewValidationError("filter_type", fmt.Sprintf("unknown filter type %q", field))
	}
	if value == "" {
		return nil, domain.NewValidationError("filter_value", "is required")
	}

	guarantees, err := s.store.SearchGuarantees(ctx, field, value)
	if err != nil {
		return nil, err
	}
	if len(guarantees) == 0 {
		return []Summary{}, nil
	}

	ids := make([]int64, 0, len(guarantees))
	for _, g := range guarantees {
		ids = append(ids, g.ID)
	}
	currents, err := s.store.ListCurrentHistories(ctx, store.CurrentFilter{
		GuaranteeFilter: store.GuaranteeFilter{GuaranteeIDs: ids},
	})
	if err != nil {
		return nil, err
	}
	byGuarantee := make(map[int64]*schema.History, len(currents))
	for i := range currents {
		byGuarantee[currents[i].GuaranteeID] = &currents[i]
	}

	summaries := make([]Summary, 0, len(guarantees))
	for _, g := range guarantees {
		summaries = append(summaries, Summary{Guarantee: g, Current: byGuarantee[g.ID]})
	}
	return summaries, nil
}

func requireID(verr *domain.ValidationError, field string, id int64) {
	if id <= 0 {
		verr.Add(field, "is required")
	}
}
