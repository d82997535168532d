package schema

// LetterType represents the letter_types table (fiel cumplimiento, adelanto directo, ...)
type LetterType struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"column:description;not null;type:varchar(255)" json:"description"`
	Audit
}

// TableName specifies the table name for the LetterType model
func (LetterType) TableName() string {
	return "letter_types"
}

// FinancialEntity represents the financial_entities table - the banks and insurers issuing letters
type FinancialEntity struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"column:description;not null;type:varchar(255)" json:"description"`
	Audit
}

// TableName specifies the table name for the FinancialEntity model
func (FinancialEntity) TableName() string {
	return "financial_entities"
}

// Contractor represents the contractors table
type Contractor struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BusinessName string `gorm:"column:business_name;not null;type:varchar(255)" json:"business_name"`
	// RUC is the 11 digit tax id, unique across contractors
	RUC string `gorm:"column:ruc;not null;uniqueIndex;type:varchar(11)" json:"ruc"`
	Audit
}

// TableName specifies the table name for the Contractor model
func (Contractor) TableName() string {
	return "contractors"
}

// CurrencyType represents the currency_types table
type CurrencyType struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"column:description;not null;type:varchar(100)" json:"description"`
	// Code is the upper-case ISO 4217 code, unique across currencies
	Code   string `gorm:"column:code;not null;uniqueIndex;type:varchar(3)" json:"code"`
	Symbol string `gorm:"column:symbol;not null;type:varchar(5)" json:"symbol"`
	Audit
}

// TableName specifies the table name for the CurrencyType model
func (CurrencyType) TableName() string {
	return "currency_types"
}

// GuaranteeStatus represents the warranty_statuses table.
// IsActive marks statuses whose guarantees are still outstanding and count in expiration reports.
type GuaranteeStatus struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"column:description;not null;type:varchar(100)" json:"description"`
	IsActive    bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`
	Audit
}

// TableName specifies the table name for the GuaranteeStatus model
func (GuaranteeStatus) TableName() string {
	return "warranty_statuses"
}

// GuaranteeObject represents the warranty_objects table - the procured work or service
type GuaranteeObject struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"column:description;not null;type:varchar(512)" json:"description"`
	// CUI is the optional public investment code
	CUI *string `gorm:"column:cui;type:varchar(10)" json:"cui"`
	Audit
}

// TableName specifies the table name for the GuaranteeObject model
func (GuaranteeObject) TableName() string {
	return "warranty_objects"
}
