package reference

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

// Input is the caller supplied body of a create or update of one lookup table.
// Nil fields are absent.
type Input[T any] interface {
	// Normalize validates the input and canonicalizes present values in place.
	// A partial input may omit required fields.
	Normalize(partial bool) error
	// Row builds a new row stamped with principal
	Row(principal string) *T
	// Columns returns the column values of the present fields
	Columns() map[string]any
}

// LetterTypeInput creates or updates a letter type
type LetterTypeInput struct {
	Description *string `json:"description"`
}

func (in *LetterTypeInput) Normalize(partial bool) error {
	verr := &domain.ValidationError{}
	in.Description = requiredText(verr, "description", in.Description, 255, partial)
	return verr.Err()
}

func (in *LetterTypeInput) Row(principal string) *schema.LetterType {
	return &schema.LetterType{Description: deref(in.Description), Audit: schema.NewAudit(principal)}
}

func (in *LetterTypeInput) Columns() map[string]any {
	cols := map[string]any{}
	setColumn(cols, "description", in.Description)
	return cols
}

// FinancialEntityInput creates or updates a financial entity
type FinancialEntityInput struct {
	Description *string `json:"description"`
}

func (in *FinancialEntityInput) Normalize(partial bool) error {
	verr := &domain.ValidationError{}
	in.Description = requiredText(verr, "description", in.Description, 255, partial)
	return verr.Err()
}

func (in *FinancialEntityInput) Row(principal string) *schema.FinancialEntity {
	return &schema.FinancialEntity{Description: deref(in.Description), Audit: schema.NewAudit(principal)}
}

func (in *FinancialEntityInput) Columns() map[string]any {
	cols := map[string]any{}
	setColumn(cols, "description", in.Description)
	return cols
}

// ContractorInput creates or updates a contractor
type ContractorInput struct {
	BusinessName *string `json:"business_name"`
	RUC          *string `json:"ruc"`
}

func (in *ContractorInput) Normalize(partial bool) error {
	verr := &domain.ValidationError{}
	in.BusinessName = requiredText(verr, "business_name", in.BusinessName, 255, partial)

	switch {
	case in.RUC != nil:
		ruc := strings.TrimSpace(*in.RUC)
		if err := domain.ValidateTaxID(ruc); err != nil {
			mergeInto(verr, err)
		}
		in.RUC = &ruc
	case !partial:
		verr.Add("ruc", "is required")
	}
	return verr.Err()
}

func (in *ContractorInput) Row(principal string) *schema.Contractor {
	return &schema.Contractor{
		BusinessName: deref(in.BusinessName),
		RUC:          deref(in.RUC),
		Audit:        schema.NewAudit(principal),
	}
}

func (in *ContractorInput) Columns() map[string]any {
	cols := map[string]any{}
	setColumn(cols, "business_name", in.BusinessName)
	setColumn(cols, "ruc", in.RUC)
	return cols
}

// CurrencyTypeInput creates or updates a currency type
type CurrencyTypeInput struct {
	Description *string `json:"description"`
	Code        *string `json:"code"`
	Symbol      *string `json:"symbol"`
}

func (in *CurrencyTypeInput) Normalize(partial bool) error {
	verr := &domain.ValidationError{}
	in.Description = requiredText(verr, "description", in.Description, 100, partial)
	in.Symbol = requiredText(verr, "symbol", in.Symbol, 5, partial)

	switch {
	case in.Code != nil:
		code, err := domain.NormalizeCurrencyCode(*in.Code)
		if err != nil {
			mergeInto(verr, err)
		} else {
			in.Code = &code
		}
	case !partial:
		verr.Add("code", "is required")
	}
	return verr.Err()
}

func (in *CurrencyTypeInput) Row(principal string) *schema.CurrencyType {
	return &schema.CurrencyType{
		Description: deref(in.Description),
		Code:        deref(in.Code),
		Symbol:      deref(in.Symbol),
		Audit:       schema.NewAudit(principal),
	}
}

func (in *CurrencyTypeInput) Columns() map[string]any {
	cols := map[string]any{}
	setColumn(cols, "description", in.Description)
	setColumn(cols, "code", in.Code)
	setColumn(cols, "symbol", in.Symbol)
	return cols
}

// GuaranteeStatusInput creates or updates a warranty status
type GuaranteeStatusInput struct {
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (in *GuaranteeStatusInput) Normalize(partial bool) error {
	verr := &domain.ValidationError{}
	in.Description = requiredText(verr, "description", in.Description, 100, partial)
	return verr.Err()
}

func (in *GuaranteeStatusInput) Row(principal string) *schema.GuaranteeStatus {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &schema.GuaranteeStatus{
		Description: deref(in.Description),
		IsActive:    active,
		Audit:       schema.NewAudit(principal),
	}
}

func (in *GuaranteeStatusInput) Columns() map[string]any {
	cols := map[string]any{}
	setColumn(cols, "description", in.Description)
	if in.IsActive != nil {
		cols["is_active"] = *in.IsActive
	}
	return cols
}

// GuaranteeObjectInput creates or updates a warranty object
type GuaranteeObjectInput struct {
	Description *string `json:"description"`
	// CUI is optional; an empty value clears it
	CUI *string `json:"cui"`
}

func (in *GuaranteeObjectInput) Normalize(partial bool) error {
	verr := &domain.ValidationError{}
	in.Description = requiredText(verr, "description", in.Description, 512, partial)
	if in.CUI != nil {
		cui := strings.TrimSpace(*in.CUI)
		if utf8.RuneCountInString(cui) > 10 {
			verr.Add("cui", "must be at most 10 characters")
		}
		in.CUI = &cui
	}
	return verr.Err()
}

func (in *GuaranteeObjectInput) Row(principal string) *schema.GuaranteeObject {
	return &schema.GuaranteeObject{
		Description: deref(in.Description),
		CUI:         nullable(in.CUI),
		Audit:       schema.NewAudit(principal),
	}
}

func (in *GuaranteeObjectInput) Columns() map[string]any {
	cols := map[string]any{}
	setColumn(cols, "description", in.Description)
	if in.CUI != nil {
		cols["cui"] = nullable(in.CUI)
	}
	return cols
}

// requiredText trims a text field and checks presence and length
func requiredText(verr *domain.ValidationError, field string, value *string, max int, partial bool) *string {
	if value == nil {
		if !partial {
			verr.Add(field, "is required")
		}
		return nil
	}
	v := strings.TrimSpace(*value)
	switch {
	case v == "":
		verr.Add(field, "must not be blank")
	case utf8.RuneCountInString(v) > max:
		verr.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return &v
}

func mergeInto(verr *domain.ValidationError, err error) {
	if other, ok := err.(*domain.ValidationError); ok {
		verr.Fields = append(verr.Fields, other.Fields...)
	}
}

func setColumn(cols map[string]any, column string, value *string) {
	if value != nil {
		cols[column] = *value
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
