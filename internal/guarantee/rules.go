package guarantee

import (
	"fmt"

	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

// amendableFields lists, per amend kind, the history fields the operation may change
var amendableFields = map[domain.AmendKind]map[string]bool{
	domain.AmendIssuance:  commitmentFields,
	domain.AmendRenewal:   commitmentFields,
	domain.AmendReturn:    closingFields,
	domain.AmendExecution: closingFields,
}

var commitmentFields = map[string]bool{
	FieldLetterNumber:           true,
	FieldFinancialEntityID:      true,
	FieldFinancialEntityAddress: true,
	FieldIssueDate:              true,
	FieldValidityStart:          true,
	FieldValidityEnd:            true,
	FieldCurrencyTypeID:         true,
	FieldAmount:                 true,
	FieldReferenceDocument:      true,
	FieldComments:               true,
}

var closingFields = map[string]bool{
	FieldIssueDate:         true,
	FieldReferenceDocument: true,
	FieldComments:          true,
}

// CheckAppend rejects appending onto a guarantee whose current record has an inactive status.
// current must have its Status loaded.
func CheckAppend(current *schema.History) error {
	if current.Status == nil {
		return fmt.Errorf("status of history %d is not loaded", current.ID)
	}
	if current.Status.IsActive {
		return nil
	}
	return domain.NewConflictError("the current status of the warranty is not active", map[string]any{
		"warranty_id":         current.GuaranteeID,
		"current_history_id":  current.ID,
		"current_status_id":   current.StatusID,
		"current_status_name": current.Status.Description,
	})
}

// CheckAmend rejects amending a record that is not the current one or does not have the status kind expects
func CheckAmend(kind domain.AmendKind, record *schema.History, currentID int64) error {
	expected := kind.ExpectedStatus()
	if domain.StatusID(record.StatusID) != expected {
		return domain.NewConflictError(fmt.Sprintf("only records with status %d can be amended as %s", expected, kind), map[string]any{
			"history_id":         record.ID,
			"status_id":          record.StatusID,
			"expected_status_id": int64(expected),
		})
	}
	if record.ID != currentID {
		return domain.NewConflictError("only the current record of a warranty can be amended", map[string]any{
			"history_id":         record.ID,
			"warranty_id":        record.GuaranteeID,
			"current_history_id": currentID,
		})
	}
	return nil
}

// CheckDelete rejects deleting a record that is not the current one
func CheckDelete(record *schema.History, currentID int64) error {
	if record.ID != currentID {
		return domain.NewConflictError("only the current record of a warranty can be deleted", map[string]any{
			"history_id":         record.ID,
			"warranty_id":        record.GuaranteeID,
			"current_history_id": currentID,
		})
	}
	return nil
}

// checkAmendFields rejects fields the amend kind may not change
func checkAmendFields(kind domain.AmendKind, in AmendInput) error {
	verr := &domain.ValidationError{}
	allowed := amendableFields[kind]
	for _, field := range in.History.Present() {
		if !allowed[field] {
			verr.Add(field, fmt.Sprintf("cannot be changed when amending a %s record", kind))
		}
	}
	if kind != domain.AmendIssuance {
		if in.LetterTypeID != nil {
			verr.Add("letter_type_id", "can only be changed when amending the issuance record")
		}
		if in.ContractorID != nil {
			verr.Add("contractor_id", "can only be changed when amending the issuance record")
		}
	}
	return verr.Err()
}
