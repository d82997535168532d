package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

// currentRecordCondition keeps only the record with the greatest id of each guarantee
const currentRecordCondition = "warranty_histories.id IN (SELECT MAX(id) FROM warranty_histories GROUP BY warranty_id)"

// scopeHistories restricts a query on the warranty_histories table
func scopeHistories(db *gorm.DB, f GuaranteeFilter) *gorm.DB {
	if len(f.GuaranteeIDs) > 0 {
		db = db.Where("warranty_histories.warranty_id IN ?", f.GuaranteeIDs)
	}
	if f.ObjectID != nil {
		db = db.Where("warranty_histories.warranty_id IN (SELECT id FROM warranties WHERE warranty_object_id = ?)", *f.ObjectID)
	}
	if f.LetterTypeID != nil {
		db = db.Where("warranty_histories.warranty_id IN (SELECT id FROM warranties WHERE letter_type_id = ?)", *f.LetterTypeID)
	}
	if f.ContractorID != nil {
		db = db.Where("warranty_histories.warranty_id IN (SELECT id FROM warranties WHERE contractor_id = ?)", *f.ContractorID)
	}
	if f.FinancialEntityID != nil {
		db = db.Where("warranty_histories.financial_entity_id = ?", *f.FinancialEntityID)
	}
	return db
}

// currentHistories builds the query over the current records matching f
func currentHistories(db *gorm.DB, f CurrentFilter) *gorm.DB {
	db = scopeHistories(db.Model(&schema.History{}).Where(currentRecordCondition), f.GuaranteeFilter)
	if f.ActiveOnly {
		db = db.Where("warranty_histories.warranty_status_id IN (SELECT id FROM warranty_statuses WHERE is_active)")
	}
	if f.EndBefore != nil {
		db = db.Where("warranty_histories.validity_end < ?", civilDate(*f.EndBefore))
	}
	if f.EndAfter != nil {
		db = db.Where("warranty_histories.validity_end > ?", civilDate(*f.EndAfter))
	}
	if f.EndUntil != nil {
		db = db.Where("warranty_histories.validity_end <= ?", civilDate(*f.EndUntil))
	}
	return db
}

// ListCurrentHistories returns the current record of every guarantee matching the filter
func (s *pgStore) ListCurrentHistories(ctx context.Context, f CurrentFilter) ([]schema.History, error) {
	histories := []schema.History{}
	err := withHistoryRefs(currentHistories(s.db.WithContext(ctx), f)).
		Order("warranty_histories.validity_end ASC NULLS LAST, warranty_histories.id ASC").
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list current histories: %w", err)
	}
	return histories, nil
}

// CountCurrentHistories counts the current records matching the filter
func (s *pgStore) CountCurrentHistories(ctx context.Context, f CurrentFilter) (int64, error) {
	var count int64
	if err := currentHistories(s.db.WithContext(ctx), f).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count current histories: %w", err)
	}
	return count, nil
}

// ListValidAt returns every record whose validity window contains target
func (s *pgStore) ListValidAt(ctx context.Context, target time.Time, f GuaranteeFilter) ([]schema.History, error) {
	day := civilDate(target)
	histories := []schema.History{}
	err := withHistoryRefs(scopeHistories(s.db.WithContext(ctx).Model(&schema.History{}), f)).
		Where("warranty_histories.validity_start <= ? AND warranty_histories.validity_end >= ?", day, day).
		Order("warranty_histories.validity_end ASC, warranty_histories.id ASC").
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list histories valid at %s: %w", day.Format(time.DateOnly), err)
	}
	return histories, nil
}

// ListByStatusInPeriod returns every record with the status and an issue date in [from, to]
func (s *pgStore) ListByStatusInPeriod(ctx context.Context, statusID int64, from, to time.Time, f GuaranteeFilter) ([]schema.History, error) {
	histories := []schema.History{}
	err := withHistoryRefs(scopeHistories(s.db.WithContext(ctx).Model(&schema.History{}), f)).
		Where("warranty_histories.warranty_status_id = ?", statusID).
		Where("warranty_histories.issue_date BETWEEN ? AND ?", civilDate(from), civilDate(to)).
		Order("warranty_histories.issue_date ASC, warranty_histories.id ASC").
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list histories by status in period: %w", err)
	}
	return histories, nil
}

// FindPreviousHistories returns, for each history id, the nearest earlier record id of the same guarantee
func (s *pgStore) FindPreviousHistories(ctx context.Context, historyIDs []int64) ([]PreviousRecord, error) {
	if len(historyIDs) == 0 {
		return []PreviousRecord{}, nil
	}

	records := []PreviousRecord{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT h.id AS history_id,
			(SELECT MAX(p.id) FROM warranty_histories p WHERE p.warranty_id = h.warranty_id AND p.id < h.id) AS previous_id
		FROM warranty_histories h
		WHERE h.id IN ?
		ORDER BY h.id`, historyIDs).
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find previous histories: %w", err)
	}
	return records, nil
}

// GetHistoriesByIDs retrieves history records with their references preloaded
func (s *pgStore) GetHistoriesByIDs(ctx context.Context, ids []int64) ([]schema.History, error) {
	if len(ids) == 0 {
		return []schema.History{}, nil
	}

	histories := []schema.History{}
	err := withHistoryRefs(s.db.WithContext(ctx)).
		Where("warranty_histories.id IN ?", ids).
		Order("warranty_histories.id ASC").
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get histories by ids: %w", err)
	}
	return histories, nil
}

// civilDate drops the time of day so the value binds as a calendar date
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
