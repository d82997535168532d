package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

// ListResponse is the envelope of every list and report response
type ListResponse[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}

// NewListResponse wraps results, reporting count as the total when it is positive
func NewListResponse[T any](results []T, total int64) *ListResponse[T] {
	if results == nil {
		results = []T{}
	}
	if total <= 0 {
		total = int64(len(results))
	}
	return &ListResponse[T]{Count: total, Results: results}
}

// CountResponse carries a bare count
type CountResponse struct {
	Count int64 `json:"count"`
}

// FileResponse represents an attachment of a history record
type FileResponse struct {
	ID          int64     `json:"id"`
	HistoryID   int64     `json:"warranty_history_id"`
	FileName    string    `json:"file_name"`
	Size        int64     `json:"size"`
	DownloadURL string    `json:"download_url"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// HistoryResponse represents one record of the history of a guarantee
type HistoryResponse struct {
	ID                     int64                   `json:"id"`
	WarrantyID             int64                   `json:"warranty_id"`
	WarrantyStatusID       int64                   `json:"warranty_status_id"`
	WarrantyStatus         *schema.GuaranteeStatus `json:"warranty_status,omitempty"`
	LetterNumber           *string                 `json:"letter_number"`
	FinancialEntityID      *int64                  `json:"financial_entity_id"`
	FinancialEntity        *schema.FinancialEntity `json:"financial_entity,omitempty"`
	FinancialEntityAddress *string                 `json:"financial_entity_address"`
	IssueDate              *string                 `json:"issue_date"`
	ValidityStart          *string                 `json:"validity_start"`
	ValidityEnd            *string                 `json:"validity_end"`
	CurrencyTypeID         *int64                  `json:"currency_type_id"`
	CurrencyType           *schema.CurrencyType    `json:"currency_type,omitempty"`
	Amount                 decimal.NullDecimal     `json:"amount"`
	ReferenceDocument      *string                 `json:"reference_document"`
	Comments               *string                 `json:"comments"`
	Files                  []FileResponse          `json:"files"`
	schema.Audit
}

// GuaranteeResponse represents a guarantee.
// Histories is set on detail reads; CurrentHistory on list and search results.
type GuaranteeResponse struct {
	ID               int64                   `json:"id"`
	WarrantyObjectID int64                   `json:"warranty_object_id"`
	WarrantyObject   *schema.GuaranteeObject `json:"warranty_object,omitempty"`
	LetterTypeID     int64                   `json:"letter_type_id"`
	LetterType       *schema.LetterType      `json:"letter_type,omitempty"`
	ContractorID     int64                   `json:"contractor_id"`
	Contractor       *schema.Contractor      `json:"contractor,omitempty"`
	Histories        []HistoryResponse       `json:"histories,omitempty"`
	CurrentHistory   *HistoryResponse        `json:"current_history,omitempty"`
	schema.Audit
}

// IsLatestResponse tells whether a history record is the current record of its guarantee
type IsLatestResponse struct {
	HistoryID        int64 `json:"history_id"`
	IsLatest         bool  `json:"is_latest"`
	CurrentHistoryID int64 `json:"current_history_id"`
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// MapFileToDTO maps an attachment row
func MapFileToDTO(f *schema.File) FileResponse {
	return FileResponse{
		ID:          f.ID,
		HistoryID:   f.HistoryID,
		FileName:    f.FileName,
		Size:        f.Size,
		DownloadURL: fmt.Sprintf("/api/v1/warranty-files/%d/download", f.ID),
		CreatedBy:   f.CreatedBy,
		CreatedAt:   f.CreatedAt,
	}
}

// MapHistoryToDTO maps a history record and its preloaded associations
func MapHistoryToDTO(h *schema.History) HistoryResponse {
	files := make([]FileResponse, 0, len(h.Files))
	for i := range h.Files {
		files = append(files, MapFileToDTO(&h.Files[i]))
	}

	return HistoryResponse{
		ID:                     h.ID,
		WarrantyID:             h.GuaranteeID,
		WarrantyStatusID:       h.StatusID,
		WarrantyStatus:         h.Status,
		LetterNumber:           h.LetterNumber,
		FinancialEntityID:      h.FinancialEntityID,
		FinancialEntity:        h.FinancialEntity,
		FinancialEntityAddress: h.FinancialEntityAddress,
		IssueDate:              formatDate(h.IssueDate),
		ValidityStart:          formatDate(h.ValidityStart),
		ValidityEnd:            formatDate(h.ValidityEnd),
		CurrencyTypeID:         h.CurrencyTypeID,
		CurrencyType:           h.CurrencyType,
		Amount:                 h.Amount,
		ReferenceDocument:      h.ReferenceDocument,
		Comments:               h.Comments,
		Files:                  files,
		Audit:                  h.Audit,
	}
}

// MapGuaranteeToDTO maps a guarantee and, when preloaded, its history chain
func MapGuaranteeToDTO(g *schema.Guarantee) GuaranteeResponse {
	resp := GuaranteeResponse{
		ID:               g.ID,
		WarrantyObjectID: g.ObjectID,
		WarrantyObject:   g.Object,
		LetterTypeID:     g.LetterTypeID,
		LetterType:       g.LetterType,
		ContractorID:     g.ContractorID,
		Contractor:       g.Contractor,
		Audit:            g.Audit,
	}
	if len(g.Histories) > 0 {
		resp.Histories = make([]HistoryResponse, 0, len(g.Histories))
		for i := range g.Histories {
			resp.Histories = append(resp.Histories, MapHistoryToDTO(&g.Histories[i]))
		}
	}
	return resp
}

// MapSummaryToDTO maps a guarantee with its current record
func MapSummaryToDTO(g *schema.Guarantee, current *schema.History) GuaranteeResponse {
	resp := MapGuaranteeToDTO(g)
	if current != nil {
		h := MapHistoryToDTO(current)
		resp.CurrentHistory = &h
	}
	return resp
}

func formatDate(d *datatypes.Date) *string {
	t := schema.TimeFromDate(d)
	if t == nil {
		return nil
	}
	s := domain.FormatDate(*t)
	return &s
}
