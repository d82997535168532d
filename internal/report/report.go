// Package report answers the expiration and history queries over guarantees.
//
// The expiration reports look at the current record of each guarantee only.
// The valid-at and closed-in-period reports scan every record.
package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-guarantees/internal/adapter"
	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/expiry"
	"github.com/feral-file/ff-guarantees/internal/logger"
	"github.com/feral-file/ff-guarantees/internal/store"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

// Service runs the reports
type Service struct {
	store store.Store
	clock adapter.Clock
}

// NewService creates the report service
func NewService(s store.Store, clock adapter.Clock) *Service {
	return &Service{store: s, clock: clock}
}

// Today returns the current calendar date
func (s *Service) Today() time.Time {
	return domain.TruncateDate(s.clock.Now())
}

// Expired returns the active current records whose validity ended before target,
// ordered by validity end
func (s *Service) Expired(ctx context.Context, target time.Time) ([]ExpiredLetter, error) {
	target = domain.TruncateDate(target)
	histories, err := s.store.ListCurrentHistories(ctx, store.CurrentFilter{
		ActiveOnly: true,
		EndBefore:  &target,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]ExpiredLetter, 0, len(histories))
	for i := range histories {
		l := newLetter(&histories[i])
		if l.end == nil {
			continue
		}
		rows = append(rows, ExpiredLetter{Letter: l, Expired: expiry.Elapsed(*l.end, target)})
	}
	logger.DebugCtx(ctx, "Computed expired report", zap.Time("target", target), zap.Int("rows", len(rows)))
	return rows, nil
}

// Expiring returns the active current records expiring after target and within the expiring window
func (s *Service) Expiring(ctx context.Context, target time.Time) ([]ExpiringLetter, error) {
	target = domain.TruncateDate(target)
	until := expiry.ExpiringUntil(target)
	histories, err := s.store.ListCurrentHistories(ctx, store.CurrentFilter{
		ActiveOnly: true,
		EndAfter:   &target,
		EndUntil:   &until,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]ExpiringLetter, 0, len(histories))
	for i := range histories {
		l := newLetter(&histories[i])
		if l.end == nil {
			continue
		}
		rows = append(rows, ExpiringLetter{Letter: l, Remaining: expiry.Remaining(*l.end, target)})
	}
	logger.DebugCtx(ctx, "Computed expiring report", zap.Time("target", target), zap.Int("rows", len(rows)))
	return rows, nil
}

// ValidCount counts the active current records whose validity ends after the expiring window
func (s *Service) ValidCount(ctx context.Context, target time.Time) (int64, error) {
	until := expiry.ExpiringUntil(target)
	return s.store.CountCurrentHistories(ctx, store.CurrentFilter{
		ActiveOnly: true,
		EndAfter:   &until,
	})
}

// ValidAt returns every record, current or not, whose validity window contains target
func (s *Service) ValidAt(ctx context.Context, target time.Time, f store.GuaranteeFilter) ([]ValidLetter, error) {
	target = domain.TruncateDate(target)
	histories, err := s.store.ListValidAt(ctx, target, f)
	if err != nil {
		return nil, err
	}

	rows := make([]ValidLetter, 0, len(histories))
	for i := range histories {
		l := newLetter(&histories[i])
		if l.end == nil {
			continue
		}
		rows = append(rows, ValidLetter{Letter: l, Remaining: expiry.Remaining(*l.end, target)})
	}
	return rows, nil
}

// ClosedInPeriod returns the return or execution records issued within [from, to],
// each paired with the record it closed
func (s *Service) ClosedInPeriod(ctx context.Context, status domain.StatusID, from, to time.Time, f store.GuaranteeFilter) ([]ClosedLetter, error) {
	if status != domain.StatusReturn && status != domain.StatusExecution {
		return nil, domain.NewValidationError("warranty_status_id", "must be a return or execution status")
	}
	from = domain.TruncateDate(from)
	to = domain.TruncateDate(to)
	if to.Before(from) {
		return nil, domain.NewValidationError("fecha_fin", "must not be before fecha_inicio")
	}

	histories, err := s.store.ListByStatusInPeriod(ctx, int64(status), from, to, f)
	if err != nil {
		return nil, err
	}
	if len(histories) == 0 {
		return []ClosedLetter{}, nil
	}

	ids := make([]int64, len(histories))
	for i, h := range histories {
		ids[i] = h.ID
	}
	previous, err := s.store.FindPreviousHistories(ctx, ids)
	if err != nil {
		return nil, err
	}

	previousOf := make(map[int64]int64, len(previous))
	originalIDs := make([]int64, 0, len(previous))
	for _, p := range previous {
		if p.PreviousID == nil {
			continue
		}
		previousOf[p.HistoryID] = *p.PreviousID
		originalIDs = append(originalIDs, *p.PreviousID)
	}

	originals := map[int64]*schema.History{}
	if len(originalIDs) > 0 {
		records, err := s.store.GetHistoriesByIDs(ctx, originalIDs)
		if err != nil {
			return nil, err
		}
		for i := range records {
			originals[records[i].ID] = &records[i]
		}
	}

	rows := make([]ClosedLetter, 0, len(histories))
	for i := range histories {
		var original *schema.History
		if id, ok := previousOf[histories[i].ID]; ok {
			original = originals[id]
		}
		rows = append(rows, newClosedLetter(&histories[i], original))
	}
	logger.DebugCtx(ctx, "Computed closed in period report",
		zap.Int64("statusID", int64(status)),
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("rows", len(rows)))
	return rows, nil
}

// Letters returns the current record of every guarantee matching the filter,
// classified against target
func (s *Service) Letters(ctx context.Context, f store.GuaranteeFilter, target time.Time) ([]ClassifiedLetter, error) {
	target = domain.TruncateDate(target)
	histories, err := s.store.ListCurrentHistories(ctx, store.CurrentFilter{GuaranteeFilter: f})
	if err != nil {
		return nil, err
	}

	rows := make([]ClassifiedLetter, 0, len(histories))
	for i := range histories {
		l := newLetter(&histories[i])
		row := ClassifiedLetter{Letter: l, Classification: expiry.Classify(l.active, l.end, target)}
		switch row.Classification {
		case expiry.StatusExpired:
			span := expiry.Elapsed(*l.end, target)
			row.Span = &span
		case expiry.StatusDueToday, expiry.StatusExpiring, expiry.StatusValid:
			span := expiry.Remaining(*l.end, target)
			row.Span = &span
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Certification returns every guarantee of an object, optionally narrowed to one contractor,
// with its full chronological history
func (s *Service) Certification(ctx context.Context, objectID int64, contractorID *int64) ([]schema.Guarantee, error) {
	guarantees, _, err := s.store.ListGuarantees(ctx, store.GuaranteeQuery{
		ListQuery: store.ListQuery{Ordering: "id", Limit: store.MaxListLimit},
		GuaranteeFilter: store.GuaranteeFilter{
			ObjectID:     &objectID,
			ContractorID: contractorID,
		},
		WithHistory: true,
	})
	if err != nil {
		return nil, err
	}
	return guarantees, nil
}
