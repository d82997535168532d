package report

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/expiry"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

// Letter is the flattened view of one history record shared by every report
type Letter struct {
	MaxWarrantyHistory         int64               `json:"max_warranty_history"`
	WarrantyID                 int64               `json:"warranty_id"`
	WarrantyObjectID           int64               `json:"warranty_object_id"`
	WarrantyObjectDescription  string              `json:"warranty_object_description"`
	CUI                        *string             `json:"cui"`
	LetterTypeID               int64               `json:"letter_type_id"`
	LetterTypeDescription      string              `json:"letter_type_description"`
	ContractorID               int64               `json:"contractor_id"`
	ContractorBusinessName     string              `json:"contractor_business_name"`
	ContractorRUC              string              `json:"contractor_ruc"`
	WarrantyStatusID           int64               `json:"warranty_status_id"`
	WarrantyStatusDescription  string              `json:"warranty_status_description"`
	LetterNumber               *string             `json:"letter_number"`
	FinancialEntityID          *int64              `json:"financial_entity_id"`
	FinancialEntityDescription *string             `json:"financial_entity_description"`
	FinancialEntityAddress     *string             `json:"financial_entity_address"`
	IssueDate                  *string             `json:"issue_date"`
	ValidityStart              *string             `json:"validity_start"`
	ValidityEnd                *string             `json:"validity_end"`
	CurrencyTypeID             *int64              `json:"currency_type_id"`
	CurrencyCode               *string             `json:"currency_code"`
	CurrencySymbol             *string             `json:"currency_symbol"`
	Amount                     decimal.NullDecimal `json:"amount"`
	ReferenceDocument          *string             `json:"reference_document"`
	Comments                   *string             `json:"comments"`

	active bool
	end    *time.Time
}

// ExpiredLetter is a current record past its validity end
type ExpiredLetter struct {
	Letter
	Expired expiry.Span `json:"expired"`
}

// ExpiringLetter is a current record within the expiring window
type ExpiringLetter struct {
	Letter
	Remaining expiry.Span `json:"remaining"`
}

// ValidLetter is a record, current or not, whose validity window contains the target date
type ValidLetter struct {
	Letter
	Remaining expiry.Span `json:"remaining"`
}

// ClassifiedLetter is a current record with its classification against the target date.
// Span is the remaining time for outstanding letters and the elapsed time for expired ones;
// it is null for closed letters and letters without a validity end.
type ClassifiedLetter struct {
	Letter
	Classification expiry.Status `json:"classification"`
	Span           *expiry.Span  `json:"span"`
}

// ClosedLetter is a return or execution record together with the letter it closed.
// The Original* fields come from the nearest earlier record of the guarantee and are
// null when there is none.
type ClosedLetter struct {
	Letter
	OriginalHistoryID                  *int64              `json:"original_history_id"`
	OriginalStatusID                   *int64              `json:"original_status_id"`
	OriginalLetterNumber               *string             `json:"original_letter_number"`
	OriginalValidityStart              *string             `json:"original_validity_start"`
	OriginalValidityEnd                *string             `json:"original_validity_end"`
	OriginalAmount                     decimal.NullDecimal `json:"original_amount"`
	OriginalCurrencyCode               *string             `json:"original_currency_code"`
	OriginalFinancialEntityID          *int64              `json:"original_financial_entity_id"`
	OriginalFinancialEntityDescription *string             `json:"original_financial_entity_description"`
}

func newLetter(h *schema.History) Letter {
	l := Letter{
		MaxWarrantyHistory:     h.ID,
		WarrantyID:             h.GuaranteeID,
		WarrantyStatusID:       h.StatusID,
		LetterNumber:           h.LetterNumber,
		FinancialEntityID:      h.FinancialEntityID,
		FinancialEntityAddress: h.FinancialEntityAddress,
		IssueDate:              dateString(h.IssueDate),
		ValidityStart:          dateString(h.ValidityStart),
		ValidityEnd:            dateString(h.ValidityEnd),
		CurrencyTypeID:         h.CurrencyTypeID,
		Amount:                 h.Amount,
		ReferenceDocument:      h.ReferenceDocument,
		Comments:               h.Comments,
		end:                    schema.TimeFromDate(h.ValidityEnd),
	}

	if g := h.Guarantee; g != nil {
		l.WarrantyObjectID = g.ObjectID
		l.LetterTypeID = g.LetterTypeID
		l.ContractorID = g.ContractorID
		if g.Object != nil {
			l.WarrantyObjectDescription = g.Object.Description
			l.CUI = g.Object.CUI
		}
		if g.LetterType != nil {
			l.LetterTypeDescription = g.LetterType.Description
		}
		if g.Contractor != nil {
			l.ContractorBusinessName = g.Contractor.BusinessName
			l.ContractorRUC = g.Contractor.RUC
		}
	}
	if h.Status != nil {
		l.WarrantyStatusDescription = h.Status.Description
		l.active = h.Status.IsActive
	}
	if h.FinancialEntity != nil {
		l.FinancialEntityDescription = &h.FinancialEntity.Description
	}
	if h.CurrencyType != nil {
		l.CurrencyCode = &h.CurrencyType.Code
		l.CurrencySymbol = &h.CurrencyType.Symbol
	}
	return l
}

func newClosedLetter(h *schema.History, original *schema.History) ClosedLetter {
	c := ClosedLetter{Letter: newLetter(h)}
	if original == nil {
		return c
	}
	o := newLetter(original)
	c.OriginalHistoryID = &o.MaxWarrantyHistory
	c.OriginalStatusID = &o.WarrantyStatusID
	c.OriginalLetterNumber = o.LetterNumber
	c.OriginalValidityStart = o.ValidityStart
	c.OriginalValidityEnd = o.ValidityEnd
	c.OriginalAmount = o.Amount
	c.OriginalCurrencyCode = o.CurrencyCode
	c.OriginalFinancialEntityID = o.FinancialEntityID
	c.OriginalFinancialEntityDescription = o.FinancialEntityDescription
	return c
}

func dateString(d *datatypes.Date) *string {
	t := schema.TimeFromDate(d)
	if t == nil {
		return nil
	}
	s := domain.FormatDate(*t)
	return &s
}
