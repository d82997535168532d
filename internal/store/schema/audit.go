package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Audit holds the audit stamps shared by every table.
// CreatedBy/CreatedAt are written once; UpdatedBy/UpdatedAt on every write.
type Audit struct {
	// CreatedBy is the principal that created the row
	CreatedBy string `gorm:"column:created_by;not null;type:text" json:"created_by"`
	// CreatedAt is the creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();autoCreateTime" json:"created_at"`
	// UpdatedBy is the principal that last modified the row
	UpdatedBy string `gorm:"column:updated_by;not null;type:text" json:"updated_by"`
	// UpdatedAt is the timestamp of the last modification
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();autoUpdateTime" json:"updated_at"`
}

// NewAudit returns the stamps of a row created by principal
func NewAudit(principal string) Audit {
	return Audit{CreatedBy: principal, UpdatedBy: principal}
}

// DateFromTime converts an optional calendar date into a date column value
func DateFromTime(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	date := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &date
}

// TimeFromDate converts an optional date column value into a calendar date
func TimeFromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	y, m, day := time.Time(*d).Date()
	t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return &t
}
