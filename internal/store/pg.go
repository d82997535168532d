package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// Zero settings fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// UseReadReplica routes read queries of db to the replica described by replicaDialector.
// Writes and transactions keep using the primary.
func UseReadReplica(db *gorm.DB, replicaDialector gorm.Dialector) error {
	err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{replicaDialector},
		Policy:   dbresolver.RandomPolicy{},
	}))
	if err != nil {
		return fmt.Errorf("failed to register read replica: %w", err)
	}
	return nil
}

// primary returns a session pinned to the primary when a read replica is configured.
// Used for reads that must observe writes made by the same request.
func (s *pgStore) primary(ctx context.Context) *gorm.DB {
	db := s.db.WithContext(ctx)
	if hasDBResolver(s.db) {
		db = db.Clauses(dbresolver.Write)
	}
	return db
}

// Transaction runs fn inside a single database transaction
func (s *pgStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	db := s.db.WithContext(ctx)
	if hasDBResolver(s.db) {
		db = db.Clauses(dbresolver.Write)
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// LetterTypes returns the letter type repository
func (s *pgStore) LetterTypes() ReferenceRepository[schema.LetterType] {
	return &referenceRepository[schema.LetterType]{db: s.db, table: letterTypeTable}
}

// FinancialEntities returns the financial entity repository
func (s *pgStore) FinancialEntities() ReferenceRepository[schema.FinancialEntity] {
	return &referenceRepository[schema.FinancialEntity]{db: s.db, table: financialEntityTable}
}

// Contractors returns the contractor repository
func (s *pgStore) Contractors() ReferenceRepository[schema.Contractor] {
	return &referenceRepository[schema.Contractor]{db: s.db, table: contractorTable}
}

// CurrencyTypes returns the currency type repository
func (s *pgStore) CurrencyTypes() ReferenceRepository[schema.CurrencyType] {
	return &referenceRepository[schema.CurrencyType]{db: s.db, table: currencyTypeTable}
}

// GuaranteeStatuses returns the guarantee status repository
func (s *pgStore) GuaranteeStatuses() ReferenceRepository[schema.GuaranteeStatus] {
	return &referenceRepository[schema.GuaranteeStatus]{db: s.db, table: guaranteeStatusTable}
}

// GuaranteeObjects returns the guarantee object repository
func (s *pgStore) GuaranteeObjects() ReferenceRepository[schema.GuaranteeObject] {
	return &referenceRepository[schema.GuaranteeObject]{db: s.db, table: guaranteeObjectTable}
}

// lockForUpdate adds SELECT ... FOR UPDATE to a query
func lockForUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// clampPage normalizes limit and offset of a list query
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
