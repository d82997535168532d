package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

const (
	// DefaultListLimit is the page size used when a list query sets no limit
	DefaultListLimit = 100
	// MaxListLimit caps the page size of list queries
	MaxListLimit = 1000
)

// ListQuery is a paginated, searchable and orderable listing request.
// Filters and Ordering keys are API field names; each repository whitelists them.
type ListQuery struct {
	// Search is matched case-insensitively against the searchable columns
	Search string
	// Filters holds exact-match filters, keyed by field name
	Filters map[string]any
	// Ordering is a field name, prefixed with "-" for descending order
	Ordering string
	Limit    int
	Offset   int
}

// GuaranteeFilter narrows guarantee and history queries
type GuaranteeFilter struct {
	GuaranteeIDs      []int64
	ObjectID          *int64
	LetterTypeID      *int64
	ContractorID      *int64
	FinancialEntityID *int64
}

// GuaranteeQuery lists guarantees
type GuaranteeQuery struct {
	ListQuery
	GuaranteeFilter
	// WithHistory preloads the full history chain and its attachments
	WithHistory bool
}

// SearchField names the attribute matched by SearchGuarantees
type SearchField string

const (
	SearchByCUI            SearchField = "cui"
	SearchByDescription    SearchField = "description"
	SearchByLetterNumber   SearchField = "letter_number"
	SearchByContractorRUC  SearchField = "contractor_ruc"
	SearchByContractorName SearchField = "contractor_name"
)

// Valid reports whether f is a known search field
func (f SearchField) Valid() bool {
	switch f {
	case SearchByCUI, SearchByDescription, SearchByLetterNumber, SearchByContractorRUC, SearchByContractorName:
		return true
	}
	return false
}

// CurrentFilter selects the current record of each guarantee.
// The Validity* bounds compare against validity_end.
type CurrentFilter struct {
	GuaranteeFilter
	// ActiveOnly keeps records whose status is flagged active
	ActiveOnly bool
	// EndBefore keeps validity_end < EndBefore
	EndBefore *time.Time
	// EndAfter keeps validity_end > EndAfter
	EndAfter *time.Time
	// EndUntil keeps validity_end <= EndUntil
	EndUntil *time.Time
}

// PreviousRecord pairs a history id with the nearest earlier record of the same guarantee
type PreviousRecord struct {
	HistoryID  int64
	PreviousID *int64
}

// ReferenceRepository is the keyed CRUD surface of one lookup table
type ReferenceRepository[T any] interface {
	// List returns a page of rows and the total count matching the query
	List(ctx context.Context, q ListQuery) ([]T, int64, error)
	// Get returns the row with the given id or a NotFoundError
	Get(ctx context.Context, id int64) (*T, error)
	// Exists reports whether a row with the given id exists
	Exists(ctx context.Context, id int64) (bool, error)
	// Create inserts a new row, translating uniqueness violations into IntegrityError
	Create(ctx context.Context, row *T) error
	// Update applies a partial update keyed by column name and returns the updated row
	Update(ctx context.Context, id int64, fields map[string]any) (*T, error)
	// Delete removes a row; rows still referenced produce a ConflictError
	Delete(ctx context.Context, id int64) error
}

// Store defines the interface for database operations
type Store interface {
	// Transaction runs fn inside a single database transaction.
	// The Store passed to fn is bound to the transaction; returning an error rolls back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
	// Ping checks the database connection
	Ping(ctx context.Context) error

	// Reference data
	LetterTypes() ReferenceRepository[schema.LetterType]
	FinancialEntities() ReferenceRepository[schema.FinancialEntity]
	Contractors() ReferenceRepository[schema.Contractor]
	CurrencyTypes() ReferenceRepository[schema.CurrencyType]
	GuaranteeStatuses() ReferenceRepository[schema.GuaranteeStatus]
	GuaranteeObjects() ReferenceRepository[schema.GuaranteeObject]

	// CreateGuarantee inserts a guarantee row
	CreateGuarantee(ctx context.Context, g *schema.Guarantee) error
	// GetGuarantee retrieves a guarantee with its object, letter type and contractor.
	// WithHistory additionally preloads the history chain ordered by id.
	GetGuarantee(ctx context.Context, id int64, withHistory bool) (*schema.Guarantee, error)
	// LockGuarantee takes a row lock on the guarantee until the end of the transaction
	LockGuarantee(ctx context.Context, id int64) error
	// UpdateGuarantee applies a partial update to a guarantee
	UpdateGuarantee(ctx context.Context, id int64, fields map[string]any) error
	// DeleteGuarantee deletes a guarantee; its history and attachment rows cascade
	DeleteGuarantee(ctx context.Context, id int64) error
	// ListGuarantees returns a page of guarantees and the total count
	ListGuarantees(ctx context.Context, q GuaranteeQuery) ([]schema.Guarantee, int64, error)
	// SearchGuarantees finds guarantees whose field matches value (case-insensitive, partial)
	SearchGuarantees(ctx context.Context, field SearchField, value string) ([]schema.Guarantee, error)

	// CreateHistory inserts a history record
	CreateHistory(ctx context.Context, h *schema.History) error
	// GetHistory retrieves a history record with its status, entity, currency, files and guarantee
	GetHistory(ctx context.Context, id int64) (*schema.History, error)
	// GetCurrentHistory retrieves the record with the greatest id of a guarantee
	GetCurrentHistory(ctx context.Context, guaranteeID int64) (*schema.History, error)
	// GetCurrentHistoryID returns the greatest history id of a guarantee, 0 when it has none
	GetCurrentHistoryID(ctx context.Context, guaranteeID int64) (int64, error)
	// CountHistories returns the number of history records of a guarantee
	CountHistories(ctx context.Context, guaranteeID int64) (int64, error)
	// UpdateHistory applies a partial update to a history record
	UpdateHistory(ctx context.Context, id int64, fields map[string]any) error
	// DeleteHistory deletes a history record; its attachment rows cascade
	DeleteHistory(ctx context.Context, id int64) error
	// FindInheritableFinancialEntity returns the most recent record of a guarantee
	// with a non-null financial entity, or nil when there is none
	FindInheritableFinancialEntity(ctx context.Context, guaranteeID int64) (*schema.History, error)

	// CreateFile inserts an attachment row without blob key
	CreateFile(ctx context.Context, f *schema.File) error
	// SetFileBlobKey records the blob key and size of an attachment
	SetFileBlobKey(ctx context.Context, id int64, key string, size int64) error
	// GetFile retrieves an attachment row
	GetFile(ctx context.Context, id int64) (*schema.File, error)
	// ListFilesByHistory returns the attachments of a history record ordered by id
	ListFilesByHistory(ctx context.Context, historyID int64) ([]schema.File, error)
	// ListFilesByGuarantee returns the attachments of every record of a guarantee
	ListFilesByGuarantee(ctx context.Context, guaranteeID int64) ([]schema.File, error)
	// DeleteFile deletes an attachment row
	DeleteFile(ctx context.Context, id int64) error

	// ListCurrentHistories returns the current record of every guarantee matching the filter,
	// ordered by validity_end then id
	ListCurrentHistories(ctx context.Context, f CurrentFilter) ([]schema.History, error)
	// CountCurrentHistories counts the current records matching the filter
	CountCurrentHistories(ctx context.Context, f CurrentFilter) (int64, error)
	// ListValidAt returns every record, current or not, whose validity window contains target
	ListValidAt(ctx context.Context, target time.Time, f GuaranteeFilter) ([]schema.History, error)
	// ListByStatusInPeriod returns every record with the status and an issue date in [from, to]
	ListByStatusInPeriod(ctx context.Context, statusID int64, from, to time.Time, f GuaranteeFilter) ([]schema.History, error)
	// FindPreviousHistories returns, for each history id, the nearest earlier record id of the same guarantee
	FindPreviousHistories(ctx context.Context, historyIDs []int64) ([]PreviousRecord, error)
	// GetHistoriesByIDs retrieves history records with their references preloaded
	GetHistoriesByIDs(ctx context.Context, ids []int64) ([]schema.History, error)
}
