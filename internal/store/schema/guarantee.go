package schema

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Guarantee represents the warranties table - the stable identity a history accrues against
type Guarantee struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ObjectID references the procured object
	ObjectID int64 `gorm:"column:warranty_object_id;not null;index"`
	// LetterTypeID references the letter type
	LetterTypeID int64 `gorm:"column:letter_type_id;not null;index"`
	// ContractorID references the contractor on whose behalf the letter is issued
	ContractorID int64 `gorm:"column:contractor_id;not null;index"`
	Audit

	// Associations
	Object     *GuaranteeObject `gorm:"foreignKey:ObjectID"`
	LetterType *LetterType      `gorm:"foreignKey:LetterTypeID"`
	Contractor *Contractor      `gorm:"foreignKey:ContractorID"`
	Histories  []History        `gorm:"foreignKey:GuaranteeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Guarantee model
func (Guarantee) TableName() string {
	return "warranties"
}

// History represents the warranty_histories table - one event in the lifecycle of a guarantee.
//
// Rows are ordered by ID: the row with the greatest ID of a guarantee is its current record.
// Records with a return or execution status carry no letter number, validity window,
// currency or amount.
type History struct {
	// ID is the internal database primary key, monotonically increasing with insertion order
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// GuaranteeID references the owning guarantee
	GuaranteeID int64 `gorm:"column:warranty_id;not null;index:idx_warranty_histories_warranty_id_id,priority:1"`
	// StatusID references the status of this record
	StatusID int64 `gorm:"column:warranty_status_id;not null"`
	// LetterNumber is the number printed on the letter
	LetterNumber *string `gorm:"column:letter_number;type:varchar(50)"`
	// FinancialEntityID references the issuing bank or insurer
	FinancialEntityID *int64 `gorm:"column:financial_entity_id"`
	// FinancialEntityAddress is the branch address of the issuer
	FinancialEntityAddress *string `gorm:"column:financial_entity_address;type:varchar(50)"`
	// IssueDate is the date the letter (or the return/execution act) was issued
	IssueDate *datatypes.Date `gorm:"column:issue_date;type:date"`
	// ValidityStart and ValidityEnd bound the inclusive validity window
	ValidityStart *datatypes.Date `gorm:"column:validity_start;type:date"`
	ValidityEnd   *datatypes.Date `gorm:"column:validity_end;type:date;index"`
	// CurrencyTypeID references the currency of Amount
	CurrencyTypeID *int64 `gorm:"column:currency_type_id"`
	// Amount is the guaranteed amount, numeric(18,2)
	Amount decimal.NullDecimal `gorm:"column:amount;type:numeric(18,2)"`
	// ReferenceDocument is the administrative document backing this record
	ReferenceDocument *string `gorm:"column:reference_document;type:varchar(50)"`
	// Comments is free text
	Comments *string `gorm:"column:comments;type:varchar(1024)"`
	Audit

	// Associations
	Guarantee       *Guarantee       `gorm:"foreignKey:GuaranteeID"`
	Status          *GuaranteeStatus `gorm:"foreignKey:StatusID"`
	FinancialEntity *FinancialEntity `gorm:"foreignKey:FinancialEntityID"`
	CurrencyType    *CurrencyType    `gorm:"foreignKey:CurrencyTypeID"`
	Files           []File           `gorm:"foreignKey:HistoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the History model
func (History) TableName() string {
	return "warranty_histories"
}

// File represents the warranty_files table - a PDF attached to a history record.
// BlobKey is empty between the row insert and the blob write.
type File struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// HistoryID references the owning history record
	HistoryID int64 `gorm:"column:warranty_history_id;not null;index"`
	// FileName is the display name given by the uploader
	FileName string `gorm:"column:file_name;not null;type:varchar(128)"`
	// BlobKey is the key of the stored blob, {id}.pdf
	BlobKey *string `gorm:"column:blob_key;type:varchar(255)"`
	// Size is the blob size in bytes
	Size int64 `gorm:"column:size;not null;default:0"`
	Audit
}

// TableName specifies the table name for the File model
func (File) TableName() string {
	return "warranty_files"
}
