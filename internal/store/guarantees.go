package store

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

var guaranteeOrdering = map[string]string{
	"id":         "warranties.id",
	"created_at": "warranties.created_at",
	"updated_at": "warranties.updated_at",
}

// withGuaranteeRefs preloads the object, letter type and contractor of a guarantee
func withGuaranteeRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Object").Preload("LetterType").Preload("Contractor")
}

// withHistoryChain preloads the ordered history chain of a guarantee and its references
func withHistoryChain(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Histories", func(db *gorm.DB) *gorm.DB { return db.Order("warranty_histories.id ASC") }).
		Preload("Histories.Status").
		Preload("Histories.FinancialEntity").
		Preload("Histories.CurrencyType").
		Preload("Histories.Files", func(db *gorm.DB) *gorm.DB { return db.Order("warranty_files.id ASC") })
}

// withHistoryRefs preloads the references of a history record
func withHistoryRefs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Status").
		Preload("FinancialEntity").
		Preload("CurrencyType").
		Preload("Guarantee").
		Preload("Guarantee.Object").
		Preload("Guarantee.LetterType").
		Preload("Guarantee.Contractor")
}

// scopeGuarantees restricts a query on the warranties table
func scopeGuarantees(db *gorm.DB, f GuaranteeFilter) *gorm.DB {
	if len(f.GuaranteeIDs) > 0 {
		db = db.Where("warranties.id IN ?", f.GuaranteeIDs)
	}
	if f.ObjectID != nil {
		db = db.Where("warranties.warranty_object_id = ?", *f.ObjectID)
	}
	if f.LetterTypeID != nil {
		db = db.Where("warranties.letter_type_id = ?", *f.LetterTypeID)
	}
	if f.ContractorID != nil {
		db = db.Where("warranties.contractor_id = ?", *f.ContractorID)
	}
	if f.FinancialEntityID != nil {
		db = db.Where("EXISTS (SELECT 1 FROM warranty_histories h WHERE h.warranty_id = warranties.id AND h.financial_entity_id = ?)", *f.FinancialEntityID)
	}
	return db
}

// =============================================================================
// Guarantees
// =============================================================================

// CreateGuarantee inserts a guarantee row
func (s *pgStore) CreateGuarantee(ctx context.Context, g *schema.Guarantee) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(g).Error
	return translateWriteError(err, "warranty")
}

// GetGuarantee retrieves a guarantee with its references
func (s *pgStore) GetGuarantee(ctx context.Context, id int64, withHistory bool) (*schema.Guarantee, error) {
	query := withGuaranteeRefs(s.primary(ctx))
	if withHistory {
		query = withHistoryChain(query)
	}

	var g schema.Guarantee
	if err := query.Where("warranties.id = ?", id).First(&g).Error; err != nil {
		return nil, translateReadError(err, "warranty", id)
	}
	return &g, nil
}

// LockGuarantee takes a row lock on the guarantee until the end of the transaction
func (s *pgStore) LockGuarantee(ctx context.Context, id int64) error {
	var g schema.Guarantee
	err := lockForUpdate(s.db.WithContext(ctx)).
		Select("id").
		Where("id = ?", id).
		First(&g).Error
	if err != nil {
		return translateReadError(err, "warranty", id)
	}
	return nil
}

// UpdateGuarantee applies a partial update to a guarantee
func (s *pgStore) UpdateGuarantee(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	values := maps.Clone(fields)
	values["updated_at"] = time.Now().UTC()

	result := s.db.WithContext(ctx).Model(&schema.Guarantee{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return translateWriteError(result.Error, "warranty")
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("warranty", id)
	}
	return nil
}

// DeleteGuarantee deletes a guarantee; history and attachment rows cascade
func (s *pgStore) DeleteGuarantee(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Guarantee{})
	if result.Error != nil {
		return translateDeleteError(result.Error, "warranty", id)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("warranty", id)
	}
	return nil
}

// ListGuarantees returns a page of guarantees and the total count
func (s *pgStore) ListGuarantees(ctx context.Context, q GuaranteeQuery) ([]schema.Guarantee, int64, error) {
	order, err := orderBy(q.Ordering, guaranteeOrdering, "warranties.created_at DESC, warranties.id DESC", "warranties.id")
	if err != nil {
		return nil, 0, err
	}

	base := func() (*gorm.DB, error) {
		db := scopeGuarantees(s.db.WithContext(ctx).Model(&schema.Guarantee{}), q.GuaranteeFilter)
		for field, value := range q.Filters {
			switch field {
			case "cui":
				db = db.Where("warranties.warranty_object_id IN (SELECT id FROM warranty_objects WHERE cui = ?)", value)
			default:
				return nil, domain.NewValidationError(field, "is not a filterable field")
			}
		}
		if term := strings.TrimSpace(q.Search); term != "" {
			pattern := likePattern(term)
			db = db.Where(`(
				warranties.warranty_object_id IN (SELECT id FROM warranty_objects WHERE description ILIKE ? OR cui ILIKE ?)
				OR warranties.contractor_id IN (SELECT id FROM contractors WHERE business_name ILIKE ? OR ruc ILIKE ?)
				OR EXISTS (SELECT 1 FROM warranty_histories h WHERE h.warranty_id = warranties.id AND h.letter_number ILIKE ?)
			)`, pattern, pattern, pattern, pattern, pattern)
		}
		return db, nil
	}

	countQuery, err := base()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count warranties: %w", err)
	}

	listQuery, err := base()
	if err != nil {
		return nil, 0, err
	}
	listQuery = withGuaranteeRefs(listQuery)
	if q.WithHistory {
		listQuery = withHistoryChain(listQuery)
	}
	limit, offset := clampPage(q.Limit, q.Offset)
	guarantees := []schema.Guarantee{}
	if err := listQuery.Order(order).Limit(limit).Offset(offset).Find(&guarantees).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list warranties: %w", err)
	}

	return guarantees, total, nil
}

// SearchGuarantees finds guarantees whose field partially matches value
func (s *pgStore) SearchGuarantees(ctx context.Context, field SearchField, value string) ([]schema.Guarantee, error) {
	pattern := likePattern(strings.TrimSpace(value))

	query := withGuaranteeRefs(s.db.WithContext(ctx).Model(&schema.Guarantee{}))
	switch field {
	case SearchByCUI:
		query = query.Where("warranties.warranty_object_id IN (SELECT id FROM warranty_objects WHERE cui ILIKE ?)", pattern)
	case SearchByDescription:
		query = query.Where("warranties.warranty_object_id IN (SELECT id FROM warranty_objects WHERE description ILIKE ?)", pattern)
	case SearchByLetterNumber:
		query = query.Where("EXISTS (SELECT 1 FROM warranty_histories h WHERE h.warranty_id = warranties.id AND h.letter_number ILIKE ?)", pattern)
	case SearchByContractorRUC:
		query = query.Where("warranties.contractor_id IN (SELECT id FROM contractors WHERE ruc ILIKE ?)", pattern)
	case SearchByContractorName:
		query = query.Where("warranties.contractor_id IN (SELECT id FROM contractors WHERE business_name ILIKE ?)", pattern)
	default:
		return nil, domain.NewValidationError("filter_type", fmt.Sprintf("unknown filter type %q", field))
	}

	guarantees := []schema.Guarantee{}
	if err := query.Order("warranties.id DESC").Limit(MaxListLimit).Find(&guarantees).Error; err != nil {
		return nil, fmt.Errorf("failed to search warranties: %w", err)
	}
	return guarantees, nil
}

// =============================================================================
// History
// =============================================================================

// CreateHistory inserts a history record
func (s *pgStore) CreateHistory(ctx context.Context, h *schema.History) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(h).Error
	return translateWriteError(err, "warranty history")
}

// GetHistory retrieves a history record with its references and files
func (s *pgStore) GetHistory(ctx context.Context, id int64) (*schema.History, error) {
	query := withHistoryRefs(s.primary(ctx)).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("warranty_files.id ASC") })

	var h schema.History
	if err := query.Where("warranty_histories.id = ?", id).First(&h).Error; err != nil {
		return nil, translateReadError(err, "warranty history", id)
	}
	return &h, nil
}

// GetCurrentHistory retrieves the record with the greatest id of a guarantee
func (s *pgStore) GetCurrentHistory(ctx context.Context, guaranteeID int64) (*schema.History, error) {
	query := withHistoryRefs(s.primary(ctx)).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("warranty_files.id ASC") })

	var h schema.History
	err := query.
		Where("warranty_histories.warranty_id = ?", guaranteeID).
		Order("warranty_histories.id DESC").
		First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("current history of warranty", guaranteeID)
		}
		return nil, fmt.Errorf("failed to get current history: %w", err)
	}
	return &h, nil
}

// GetCurrentHistoryID returns the greatest history id of a guarantee, 0 when it has none
func (s *pgStore) GetCurrentHistoryID(ctx context.Context, guaranteeID int64) (int64, error) {
	var id int64
	err := s.primary(ctx).
		Model(&schema.History{}).
		Select("COALESCE(MAX(id), 0)").
		Where("warranty_id = ?", guaranteeID).
		Scan(&id).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get current history id: %w", err)
	}
	return id, nil
}

// CountHistories returns the number of history records of a guarantee
func (s *pgStore) CountHistories(ctx context.Context, guaranteeID int64) (int64, error) {
	var count int64
	err := s.primary(ctx).
		Model(&schema.History{}).
		Where("warranty_id = ?", guaranteeID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count histories: %w", err)
	}
	return count, nil
}

// UpdateHistory applies a partial update to a history record
func (s *pgStore) UpdateHistory(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	values := maps.Clone(fields)
	values["updated_at"] = time.Now().UTC()

	result := s.db.WithContext(ctx).Model(&schema.History{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return translateWriteError(result.Error, "warranty history")
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("warranty history", id)
	}
	return nil
}

// DeleteHistory deletes a history record; attachment rows cascade
func (s *pgStore) DeleteHistory(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.History{})
	if result.Error != nil {
		return translateDeleteError(result.Error, "warranty history", id)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("warranty history", id)
	}
	return nil
}

// FindInheritableFinancialEntity returns the most recent record with a non-null financial entity
func (s *pgStore) FindInheritableFinancialEntity(ctx context.Context, guaranteeID int64) (*schema.History, error) {
	var h schema.History
	err := s.primary(ctx).
		Where("warranty_id = ? AND financial_entity_id IS NOT NULL", guaranteeID).
		Order("id DESC").
		First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find financial entity to inherit: %w", err)
	}
	return &h, nil
}

// =============================================================================
// Files
// =============================================================================

// CreateFile inserts an attachment row without blob key
func (s *pgStore) CreateFile(ctx context.Context, f *schema.File) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(f).Error
	return translateWriteError(err, "warranty file")
}

// SetFileBlobKey records the blob key and size of an attachment
func (s *pgStore) SetFileBlobKey(ctx context.Context, id int64, key string, size int64) error {
	result := s.db.WithContext(ctx).
		Model(&schema.File{}).
		Where("id = ?", id).
		Updates(map[string]any{"blob_key": key, "size": size, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return translateWriteError(result.Error, "warranty file")
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("warranty file", id)
	}
	return nil
}

// GetFile retrieves an attachment row
func (s *pgStore) GetFile(ctx context.Context, id int64) (*schema.File, error) {
	var f schema.File
	if err := s.primary(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, translateReadError(err, "warranty file", id)
	}
	return &f, nil
}

// ListFilesByHistory returns the attachments of a history record
func (s *pgStore) ListFilesByHistory(ctx context.Context, historyID int64) ([]schema.File, error) {
	files := []schema.File{}
	err := s.primary(ctx).
		Where("warranty_history_id = ?", historyID).
		Order("id ASC").
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// ListFilesByGuarantee returns the attachments of every record of a guarantee
func (s *pgStore) ListFilesByGuarantee(ctx context.Context, guaranteeID int64) ([]schema.File, error) {
	files := []schema.File{}
	err := s.primary(ctx).
		Joins("JOIN warranty_histories ON warranty_histories.id = warranty_files.warranty_history_id").
		Where("warranty_histories.warranty_id = ?", guaranteeID).
		Order("warranty_files.id ASC").
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list files of warranty: %w", err)
	}
	return files, nil
}

// DeleteFile deletes an attachment row
func (s *pgStore) DeleteFile(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.File{})
	if result.Error != nil {
		return translateDeleteError(result.Error, "warranty file", id)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("warranty file", id)
	}
	return nil
}
