package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/feral-file/ff-guarantees/internal/domain"
)

// PostgreSQL error codes translated into domain errors
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateWriteError maps an insert or update failure onto the domain error taxonomy
func translateWriteError(err error, resource string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &domain.IntegrityError{
				Field:      constraintField(pgErr.TableName, pgErr.ConstraintName),
				Constraint: pgErr.ConstraintName,
			}
		case pgForeignKeyViolation:
			return domain.NewValidationError(
				constraintField(pgErr.TableName, pgErr.ConstraintName),
				"references a row that does not exist")
		case pgCheckViolation:
			return domain.NewValidationError(
				constraintField(pgErr.TableName, pgErr.ConstraintName),
				fmt.Sprintf("violates constraint %s", pgErr.ConstraintName))
		}
	}
	return fmt.Errorf("failed to write %s: %w", resource, err)
}

// translateDeleteError maps a delete failure onto the domain error taxonomy.
// A foreign key violation means the row is still referenced.
func translateDeleteError(err error, resource string, id int64) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return domain.NewConflictError(fmt.Sprintf("%s is still referenced", resource), map[string]any{
			"id":            id,
			"referenced_by": pgErr.TableName,
		})
	}
	return fmt.Errorf("failed to delete %s: %w", resource, err)
}

// translateReadError maps gorm.ErrRecordNotFound onto a NotFoundError
func translateReadError(err error, resource string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError(resource, id)
	}
	return fmt.Errorf("failed to get %s: %w", resource, err)
}

// constraintField derives the column name from a constraint name such as
// contractors_ruc_key or warranties_contractor_id_fkey
func constraintField(table, constraint string) string {
	field := constraint
	if table != "" {
		field = strings.TrimPrefix(field, table+"_")
	}
	for _, suffix := range []string{"_fkey", "_key", "_check", "_positive", "_digits"} {
		if strings.HasSuffix(field, suffix) {
			field = strings.TrimSuffix(field, suffix)
			break
		}
	}
	return field
}
