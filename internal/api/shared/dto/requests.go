package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-guarantees/internal/attachment"
	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/guarantee"
)

// HistoryRequest carries the attributes of a history record. Absent fields are null.
type HistoryRequest struct {
	LetterNumber           *string          `json:"letter_number"`
	FinancialEntityID      *int64           `json:"financial_entity_id"`
	FinancialEntityAddress *string          `json:"financial_entity_address"`
	IssueDate              *string          `json:"issue_date"`
	ValidityStart          *string          `json:"validity_start"`
	ValidityEnd            *string          `json:"validity_end"`
	CurrencyTypeID         *int64           `json:"currency_type_id"`
	Amount                 *decimal.Decimal `json:"amount"`
	ReferenceDocument      *string          `json:"reference_document"`
	Comments               *string          `json:"comments"`
}

// Fields parses the request into history fields, collecting malformed dates
func (r *HistoryRequest) Fields() (guarantee.HistoryFields, error) {
	verr := &domain.ValidationError{}
	f := guarantee.HistoryFields{
		LetterNumber:           r.LetterNumber,
		FinancialEntityID:      r.FinancialEntityID,
		FinancialEntityAddress: r.FinancialEntityAddress,
		IssueDate:              parseDate(verr, guarantee.FieldIssueDate, r.IssueDate),
		ValidityStart:          parseDate(verr, guarantee.FieldValidityStart, r.ValidityStart),
		ValidityEnd:            parseDate(verr, guarantee.FieldValidityEnd, r.ValidityEnd),
		CurrencyTypeID:         r.CurrencyTypeID,
		Amount:                 r.Amount,
		ReferenceDocument:      r.ReferenceDocument,
		Comments:               r.Comments,
	}
	return f, verr.Err()
}

// CreateGuaranteeRequest creates a guarantee with its issuance record
type CreateGuaranteeRequest struct {
	WarrantyObjectID int64          `json:"warranty_object_id"`
	LetterTypeID     int64          `json:"letter_type_id"`
	ContractorID     int64          `json:"contractor_id"`
	InitialHistory   HistoryRequest `json:"initial_history"`
}

// ToInput converts the request into the lifecycle input
func (r *CreateGuaranteeRequest) ToInput(files []attachment.Upload) (guarantee.CreateInput, error) {
	fields, err := r.InitialHistory.Fields()
	if err != nil {
		return guarantee.CreateInput{}, err
	}
	return guarantee.CreateInput{
		ObjectID:     r.WarrantyObjectID,
		LetterTypeID: r.LetterTypeID,
		ContractorID: r.ContractorID,
		History:      fields,
		Files:        files,
	}, nil
}

// UpdateGuaranteeRequest changes the references of a guarantee
type UpdateGuaranteeRequest struct {
	WarrantyObjectID *int64 `json:"warranty_object_id"`
	LetterTypeID     *int64 `json:"letter_type_id"`
	ContractorID     *int64 `json:"contractor_id"`
}

// ToInput converts the request into the lifecycle input
func (r *UpdateGuaranteeRequest) ToInput() guarantee.UpdateInput {
	return guarantee.UpdateInput{
		ObjectID:     r.WarrantyObjectID,
		LetterTypeID: r.LetterTypeID,
		ContractorID: r.ContractorID,
	}
}

// RenewRequest appends a renewal record
type RenewRequest struct {
	WarrantyID int64 `json:"warranty_id"`
	HistoryRequest
}

// ToInput converts the request into the lifecycle input
func (r *RenewRequest) ToInput(files []attachment.Upload) (guarantee.RenewInput, error) {
	fields, err := r.HistoryRequest.Fields()
	if err != nil {
		return guarantee.RenewInput{}, err
	}
	return guarantee.RenewInput{GuaranteeID: r.WarrantyID, History: fields, Files: files}, nil
}

// CloseRequest appends a return or execution record
type CloseRequest struct {
	WarrantyID        int64   `json:"warranty_id"`
	IssueDate         *string `json:"issue_date"`
	ReferenceDocument *string `json:"reference_document"`
	Comments          *string `json:"comments"`
}

// ToInput converts the request into the lifecycle input
func (r *CloseRequest) ToInput(files []attachment.Upload) (guarantee.CloseInput, error) {
	verr := &domain.ValidationError{}
	issueDate := parseDate(verr, guarantee.FieldIssueDate, r.IssueDate)
	if err := verr.Err(); err != nil {
		return guarantee.CloseInput{}, err
	}
	return guarantee.CloseInput{
		GuaranteeID:       r.WarrantyID,
		IssueDate:         issueDate,
		ReferenceDocument: r.ReferenceDocument,
		Comments:          r.Comments,
		Files:             files,
	}, nil
}

// AmendRequest changes the current record in place. Absent fields keep their values.
type AmendRequest struct {
	HistoryRequest
	LetterTypeID  *int64  `json:"letter_type_id"`
	ContractorID  *int64  `json:"contractor_id"`
	RemoveFileIDs []int64 `json:"remove_file_ids"`
}

// ToInput converts the request into the lifecycle input
func (r *AmendRequest) ToInput(files []attachment.Upload) (guarantee.AmendInput, error) {
	fields, err := r.HistoryRequest.Fields()
	if err != nil {
		return guarantee.AmendInput{}, err
	}
	return guarantee.AmendInput{
		History:       fields,
		LetterTypeID:  r.LetterTypeID,
		ContractorID:  r.ContractorID,
		Files:         files,
		RemoveFileIDs: r.RemoveFileIDs,
	}, nil
}

func parseDate(verr *domain.ValidationError, field string, value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := domain.ParseDate(*value)
	if err != nil {
		verr.Add(field, "must be a date formatted as YYYY-MM-DD")
		return nil
	}
	return &t
}
