package guarantee

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

const (
	maxLetterNumberLength      = 50
	maxAddressLength           = 50
	maxReferenceDocumentLength = 50
	maxCommentsLength          = 1024
	// numeric(18,2) leaves 16 integer digits
	maxAmountIntegerDigits = 16
)

// Field names as exposed to callers
const (
	FieldLetterNumber           = "letter_number"
	FieldFinancialEntityID      = "financial_entity_id"
	FieldFinancialEntityAddress = "financial_entity_address"
	FieldIssueDate              = "issue_date"
	FieldValidityStart          = "validity_start"
	FieldValidityEnd            = "validity_end"
	FieldCurrencyTypeID         = "currency_type_id"
	FieldAmount                 = "amount"
	FieldReferenceDocument      = "reference_document"
	FieldComments               = "comments"
)

// HistoryFields are the caller supplied attributes of a history record.
// A nil field is absent: creation treats it as unset, amend leaves the stored value unchanged.
// Dates are calendar dates; any time of day is dropped.
type HistoryFields struct {
	LetterNumber           *string
	FinancialEntityID      *int64
	FinancialEntityAddress *string
	IssueDate              *time.Time
	ValidityStart          *time.Time
	ValidityEnd            *time.Time
	CurrencyTypeID         *int64
	Amount                 *decimal.Decimal
	ReferenceDocument      *string
	Comments               *string
}

// Present returns the names of the fields that are set
func (f HistoryFields) Present() []string {
	var names []string
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(f.LetterNumber != nil, FieldLetterNumber)
	add(f.FinancialEntityID != nil, FieldFinancialEntityID)
	add(f.FinancialEntityAddress != nil, FieldFinancialEntityAddress)
	add(f.IssueDate != nil, FieldIssueDate)
	add(f.ValidityStart != nil, FieldValidityStart)
	add(f.ValidityEnd != nil, FieldValidityEnd)
	add(f.CurrencyTypeID != nil, FieldCurrencyTypeID)
	add(f.Amount != nil, FieldAmount)
	add(f.ReferenceDocument != nil, FieldReferenceDocument)
	add(f.Comments != nil, FieldComments)
	return names
}

// applyTo copies the present fields onto h
func (f HistoryFields) applyTo(h *schema.History) {
	if f.LetterNumber != nil {
		h.LetterNumber = optionalString(*f.LetterNumber)
	}
	if f.FinancialEntityID != nil {
		h.FinancialEntityID = f.FinancialEntityID
	}
	if f.FinancialEntityAddress != nil {
		h.FinancialEntityAddress = optionalString(*f.FinancialEntityAddress)
	}
	if f.IssueDate != nil {
		h.IssueDate = schema.DateFromTime(f.IssueDate)
	}
	if f.ValidityStart != nil {
		h.ValidityStart = schema.DateFromTime(f.ValidityStart)
	}
	if f.ValidityEnd != nil {
		h.ValidityEnd = schema.DateFromTime(f.ValidityEnd)
	}
	if f.CurrencyTypeID != nil {
		h.CurrencyTypeID = f.CurrencyTypeID
	}
	if f.Amount != nil {
		h.Amount = decimal.NullDecimal{Decimal: *f.Amount, Valid: true}
	}
	if f.ReferenceDocument != nil {
		h.ReferenceDocument = optionalString(*f.ReferenceDocument)
	}
	if f.Comments != nil {
		h.Comments = optionalString(*f.Comments)
	}
}

// columns returns the column values of the present fields, read back from the merged record h
func (f HistoryFields) columns(h *schema.History) map[string]any {
	values := map[string]any{}
	if f.LetterNumber != nil {
		values["letter_number"] = h.LetterNumber
	}
	if f.FinancialEntityID != nil {
		values["financial_entity_id"] = h.FinancialEntityID
	}
	if f.FinancialEntityAddress != nil {
		values["financial_entity_address"] = h.FinancialEntityAddress
	}
	if f.IssueDate != nil {
		values["issue_date"] = dateValue(h.IssueDate)
	}
	if f.ValidityStart != nil {
		values["validity_start"] = dateValue(h.ValidityStart)
	}
	if f.ValidityEnd != nil {
		values["validity_end"] = dateValue(h.ValidityEnd)
	}
	if f.CurrencyTypeID != nil {
		values["currency_type_id"] = h.CurrencyTypeID
	}
	if f.Amount != nil {
		values["amount"] = h.Amount
	}
	if f.ReferenceDocument != nil {
		values["reference_document"] = h.ReferenceDocument
	}
	if f.Comments != nil {
		values["comments"] = h.Comments
	}
	return values
}

// validateRecord checks a complete record of the given status
func validateRecord(h *schema.History, status domain.StatusID) error {
	verr := &domain.ValidationError{}

	if status.CarriesCommitment() {
		validateCommitment(h, verr)
	} else if h.IssueDate == nil {
		verr.Add(FieldIssueDate, "is required")
	}

	checkLength(verr, FieldReferenceDocument, h.ReferenceDocument, maxReferenceDocumentLength)
	checkLength(verr, FieldComments, h.Comments, maxCommentsLength)

	return verr.Err()
}

func validateCommitment(h *schema.History, verr *domain.ValidationError) {
	if h.LetterNumber == nil {
		verr.Add(FieldLetterNumber, "is required")
	}
	checkLength(verr, FieldLetterNumber, h.LetterNumber, maxLetterNumberLength)

	if h.FinancialEntityID == nil {
		verr.Add(FieldFinancialEntityID, "is required")
	}
	if h.FinancialEntityAddress == nil {
		verr.Add(FieldFinancialEntityAddress, "is required")
	}
	checkLength(verr, FieldFinancialEntityAddress, h.FinancialEntityAddress, maxAddressLength)

	if h.IssueDate == nil {
		verr.Add(FieldIssueDate, "is required")
	}
	if h.ValidityStart == nil {
		verr.Add(FieldValidityStart, "is required")
	}
	if h.ValidityEnd == nil {
		verr.Add(FieldValidityEnd, "is required")
	}
	if h.ValidityStart != nil && h.ValidityEnd != nil &&
		time.Time(*h.ValidityEnd).Before(time.Time(*h.ValidityStart)) {
		verr.Add(FieldValidityEnd, "must not be earlier than validity_start")
	}
	if h.IssueDate != nil && h.ValidityStart != nil &&
		time.Time(*h.IssueDate).After(time.Time(*h.ValidityStart)) {
		verr.Add(FieldIssueDate, "must not be later than validity_start")
	}

	if h.CurrencyTypeID == nil {
		verr.Add(FieldCurrencyTypeID, "is required")
	}
	switch {
	case !h.Amount.Valid:
		verr.Add(FieldAmount, "is required")
	case !h.Amount.Decimal.IsPositive():
		verr.Add(FieldAmount, "must be greater than zero")
	case !h.Amount.Decimal.Equal(h.Amount.Decimal.Round(2)):
		verr.Add(FieldAmount, "must have at most 2 decimal places")
	case len(h.Amount.Decimal.Truncate(0).String()) > maxAmountIntegerDigits:
		verr.Add(FieldAmount, "is too large")
	}
}

func checkLength(verr *domain.ValidationError, field string, value *string, max int) {
	if value != nil && len([]rune(*value)) > max {
		verr.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// clearCommitment nulls the fields that only records carrying a commitment hold
func clearCommitment(h *schema.History) {
	h.LetterNumber = nil
	h.ValidityStart = nil
	h.ValidityEnd = nil
	h.CurrencyTypeID = nil
	h.Amount = decimal.NullDecimal{}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func dateValue(d *datatypes.Date) any {
	if d == nil {
		return nil
	}
	return time.Time(*d)
}
