package executor

import (
	"context"
	"io"
	"time"

	"github.com/feral-file/ff-guarantees/internal/api/shared/dto"
	"github.com/feral-file/ff-guarantees/internal/attachment"
	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/guarantee"
	"github.com/feral-file/ff-guarantees/internal/reference"
	"github.com/feral-file/ff-guarantees/internal/report"
	"github.com/feral-file/ff-guarantees/internal/store"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// Ping checks the database connection
	Ping(ctx context.Context) error
	// References returns the lookup table service
	References() *reference.Service

	// ListGuarantees retrieves a page of guarantees with their current record
	ListGuarantees(ctx context.Context, q store.GuaranteeQuery) (*dto.ListResponse[dto.GuaranteeResponse], error)
	// GetGuarantee retrieves a guarantee with its full history and attachments
	GetGuarantee(ctx context.Context, id int64) (*dto.GuaranteeResponse, error)
	// CreateGuarantee creates a guarantee with its issuance record and attachments
	CreateGuarantee(ctx context.Context, principal string, in guarantee.CreateInput) (*dto.GuaranteeResponse, error)
	// UpdateGuarantee changes the references of a guarantee
	UpdateGuarantee(ctx context.Context, principal string, id int64, in guarantee.UpdateInput) (*dto.GuaranteeResponse, error)
	// DeleteGuarantee deletes a guarantee with its history and attachments
	DeleteGuarantee(ctx context.Context, id int64) error
	// SearchGuarantees finds guarantees by one attribute
	SearchGuarantees(ctx context.Context, field store.SearchField, value string) (*dto.ListResponse[dto.GuaranteeResponse], error)

	// GetHistory retrieves a history record
	GetHistory(ctx context.Context, id int64) (*dto.HistoryResponse, error)
	// IsLatestHistory tells whether a record is the current record of its guarantee
	IsLatestHistory(ctx context.Context, id int64) (*dto.IsLatestResponse, error)
	// RenewGuarantee appends a renewal record
	RenewGuarantee(ctx context.Context, principal string, in guarantee.RenewInput) (*dto.HistoryResponse, error)
	// ReturnGuarantee appends a return record
	ReturnGuarantee(ctx context.Context, principal string, in guarantee.CloseInput) (*dto.HistoryResponse, error)
	// ExecuteGuarantee appends an execution record
	ExecuteGuarantee(ctx context.Context, principal string, in guarantee.CloseInput) (*dto.HistoryResponse, error)
	// AmendHistory changes the current record in place
	AmendHistory(ctx context.Context, principal string, kind domain.AmendKind, id int64, in guarantee.AmendInput) (*dto.HistoryResponse, error)
	// DeleteHistory deletes the current record, and the guarantee with it when it was the only one
	DeleteHistory(ctx context.Context, id int64) (*guarantee.DeleteResult, error)

	// OpenFile opens the blob of an attachment. The caller closes the reader.
	OpenFile(ctx context.Context, id int64) (*dto.FileResponse, io.ReadCloser, error)
	// DeleteFile removes an attachment of a current record
	DeleteFile(ctx context.Context, id int64) error

	// Today returns the current calendar date, the default report target
	Today() time.Time
	ExpiredReport(ctx context.Context, target time.Time) ([]report.ExpiredLetter, error)
	ExpiringReport(ctx context.Context, target time.Time) ([]report.ExpiringLetter, error)
	ValidCount(ctx context.Context, target time.Time) (int64, error)
	ValidAtReport(ctx context.Context, target time.Time, f store.GuaranteeFilter) ([]report.ValidLetter, error)
	ClosedInPeriodReport(ctx context.Context, status domain.StatusID, from, to time.Time, f store.GuaranteeFilter) ([]report.ClosedLetter, error)
	LettersReport(ctx context.Context, f store.GuaranteeFilter, target time.Time) ([]report.ClassifiedLetter, error)
	CertificationReport(ctx context.Context, objectID int64, contractorID *int64) ([]dto.GuaranteeResponse, error)
}

type executor struct {
	store       store.Store
	guarantees  *guarantee.Service
	references  *reference.Service
	reports     *report.Service
	attachments *attachment.Manager
}

// NewExecutor creates the executor over the domain services
func NewExecutor(s store.Store, guarantees *guarantee.Service, references *reference.Service, reports *report.Service, attachments *attachment.Manager) Executor {
	return &executor{
		store:       s,
		guarantees:  guarantees,
		references:  references,
		reports:     reports,
		attachments: attachments,
	}
}

func (e *executor) Ping(ctx context.Context) error {
	return e.store.Ping(ctx)
}

func (e *executor) References() *reference.Service {
	return e.references
}

func (e *executor) ListGuarantees(ctx context.Context, q store.GuaranteeQuery) (*dto.ListResponse[dto.GuaranteeResponse], error) {
	guarantees, total, err := e.guarantees.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(guarantees) == 0 {
		return dto.NewListResponse([]dto.GuaranteeResponse{}, total), nil
	}

	ids := make([]int64, 0, len(guarantees))
	for _, g := range guarantees {
		ids = append(ids, g.ID)
	}
	currents, err := e.store.ListCurrentHistories(ctx, store.CurrentFilter{
		GuaranteeFilter: store.GuaranteeFilter{GuaranteeIDs: ids},
	})
	if err != nil {
		return nil, err
	}
	current := make(map[int64]int, len(currents))
	for i := range currents {
		current[currents[i].GuaranteeID] = i
	}

	results := make([]dto.GuaranteeResponse, 0, len(guarantees))
	for i := range guarantees {
		g := &guarantees[i]
		if idx, ok := current[g.ID]; ok {
			results = append(results, dto.MapSummaryToDTO(g, &currents[idx]))
		} else {
			results = append(results, dto.MapSummaryToDTO(g, nil))
		}
	}
	return dto.NewListResponse(results, total), nil
}

func (e *executor) GetGuarantee(ctx context.Context, id int64) (*dto.GuaranteeResponse, error) {
	g, err := e.guarantees.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.MapGuaranteeToDTO(g)
	return &resp, nil
}

func (e *executor) CreateGuarantee(ctx context.Context, principal string, in guarantee.CreateInput) (*dto.GuaranteeResponse, error) {
	g, err := e.guarantees.Create(ctx, principal, in)
	if err != nil {
		return nil, err
	}
	resp := dto.MapGuaranteeToDTO(g)
	return &resp, nil
}

func (e *executor) UpdateGuarantee(ctx context.Context, principal string, id int64, in guarantee.UpdateInput) (*dto.GuaranteeResponse, error) {
	g, err := e.guarantees.Update(ctx, principal, id, in)
	if err != nil {
		return nil, err
	}
	resp := dto.MapGuaranteeToDTO(g)
	return &resp, nil
}

func (e *executor) DeleteGuarantee(ctx context.Context, id int64) error {
	return e.guarantees.DeleteGuarantee(ctx, id)
}

func (e *executor) SearchGuarantees(ctx context.Context, field store.SearchField, value string) (*dto.ListResponse[dto.GuaranteeResponse], error) {
	summaries, err := e.guarantees.Search(ctx, field, value)
	if err != nil {
		return nil, err
	}
	results := make([]dto.GuaranteeResponse, 0, len(summaries))
	for i := range summaries {
		results = append(results, dto.MapSummaryToDTO(&summaries[i].Guarantee, summaries[i].Current))
	}
	return dto.NewListResponse(results, 0), nil
}

func (e *executor) GetHistory(ctx context.Context, id int64) (*dto.HistoryResponse, error) {
	h, err := e.guarantees.GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.MapHistoryToDTO(h)
	return &resp, nil
}

func (e *executor) IsLatestHistory(ctx context.Context, id int64) (*dto.IsLatestResponse, error) {
	latest, currentID, err := e.guarantees.IsLatest(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.IsLatestResponse{HistoryID: id, IsLatest: latest, CurrentHistoryID: currentID}, nil
}

func (e *executor) RenewGuarantee(ctx context.Context, principal string, in guarantee.RenewInput) (*dto.HistoryResponse, error) {
	h, err := e.guarantees.Renew(ctx, principal, in)
	return historyResponse(h, err)
}

func (e *executor) ReturnGuarantee(ctx context.Context, principal string, in guarantee.CloseInput) (*dto.HistoryResponse, error) {
	h, err := e.guarantees.Return(ctx, principal, in)
	return historyResponse(h, err)
}

func (e *executor) ExecuteGuarantee(ctx context.Context, principal string, in guarantee.CloseInput) (*dto.HistoryResponse, error) {
	h, err := e.guarantees.Execute(ctx, principal, in)
	return historyResponse(h, err)
}

func (e *executor) AmendHistory(ctx context.Context, principal string, kind domain.AmendKind, id int64, in guarantee.AmendInput) (*dto.HistoryResponse, error) {
	h, err := e.guarantees.Amend(ctx, principal, kind, id, in)
	return historyResponse(h, err)
}

func (e *executor) DeleteHistory(ctx context.Context, id int64) (*guarantee.DeleteResult, error) {
	return e.guarantees.DeleteHistory(ctx, id)
}

func (e *executor) OpenFile(ctx context.Context, id int64) (*dto.FileResponse, io.ReadCloser, error) {
	f, r, err := e.attachments.Open(ctx, e.store, id)
	if err != nil {
		return nil, nil, err
	}
	resp := dto.MapFileToDTO(f)
	return &resp, r, nil
}

func (e *executor) DeleteFile(ctx context.Context, id int64) error {
	return e.guarantees.DeleteFile(ctx, id)
}

func (e *executor) Today() time.Time {
	return e.reports.Today()
}

func (e *executor) ExpiredReport(ctx context.Context, target time.Time) ([]report.ExpiredLetter, error) {
	return e.reports.Expired(ctx, target)
}

func (e *executor) ExpiringReport(ctx context.Context, target time.Time) ([]report.ExpiringLetter, error) {
	return e.reports.Expiring(ctx, target)
}

func (e *executor) ValidCount(ctx context.Context, target time.Time) (int64, error) {
	return e.reports.ValidCount(ctx, target)
}

func (e *executor) ValidAtReport(ctx context.Context, target time.Time, f store.GuaranteeFilter) ([]report.ValidLetter, error) {
	return e.reports.ValidAt(ctx, target, f)
}

func (e *executor) ClosedInPeriodReport(ctx context.Context, status domain.StatusID, from, to time.Time, f store.GuaranteeFilter) ([]report.ClosedLetter, error) {
	return e.reports.ClosedInPeriod(ctx, status, from, to, f)
}

func (e *executor) LettersReport(ctx context.Context, f store.GuaranteeFilter, target time.Time) ([]report.ClassifiedLetter, error) {
	return e.reports.Letters(ctx, f, target)
}

func (e *executor) CertificationReport(ctx context.Context, objectID int64, contractorID *int64) ([]dto.GuaranteeResponse, error) {
	guarantees, err := e.reports.Certification(ctx, objectID, contractorID)
	if err != nil {
		return nil, err
	}
	results := make([]dto.GuaranteeResponse, 0, len(guarantees))
	for i := range guarantees {
		results = append(results, dto.MapGuaranteeToDTO(&guarantees[i]))
	}
	return results, nil
}

func historyResponse(h *schema.History, err error) (*dto.HistoryResponse, error) {
	if err != nil {
		return nil, err
	}
	resp := dto.MapHistoryToDTO(h)
	return &resp, nil
}
