package store

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/feral-file/ff-guarantees/internal/domain"
)

// referenceTable describes the listing surface of one lookup table.
// Field names are the API names; values are column names.
type referenceTable struct {
	resource     string
	search       []string
	filters      map[string]string
	ordering     map[string]string
	defaultOrder string
}

var (
	letterTypeTable = referenceTable{
		resource:     "letter type",
		search:       []string{"description"},
		ordering:     map[string]string{"id": "id", "description": "description", "created_at": "created_at"},
		defaultOrder: "description ASC, id ASC",
	}
	financialEntityTable = referenceTable{
		resource:     "financial entity",
		search:       []string{"description"},
		ordering:     map[string]string{"id": "id", "description": "description", "created_at": "created_at"},
		defaultOrder: "description ASC, id ASC",
	}
	contractorTable = referenceTable{
		resource:     "contractor",
		search:       []string{"business_name", "ruc"},
		filters:      map[string]string{"ruc": "ruc"},
		ordering:     map[string]string{"id": "id", "business_name": "business_name", "ruc": "ruc", "created_at": "created_at"},
		defaultOrder: "business_name ASC, id ASC",
	}
	currencyTypeTable = referenceTable{
		resource:     "currency type",
		search:       []string{"description", "code"},
		filters:      map[string]string{"code": "code"},
		ordering:     map[string]string{"id": "id", "description": "description", "code": "code"},
		defaultOrder: "description ASC, id ASC",
	}
	guaranteeStatusTable = referenceTable{
		resource:     "warranty status",
		search:       []string{"description"},
		filters:      map[string]string{"is_active": "is_active"},
		ordering:     map[string]string{"id": "id", "description": "description"},
		defaultOrder: "description ASC, id ASC",
	}
	guaranteeObjectTable = referenceTable{
		resource:     "warranty object",
		search:       []string{"description", "cui"},
		filters:      map[string]string{"cui": "cui"},
		ordering:     map[string]string{"id": "id", "description": "description", "cui": "cui", "created_at": "created_at"},
		defaultOrder: "created_at DESC, id DESC",
	}
)

// where applies the exact filters and the search term of q
func (s referenceTable) where(db *gorm.DB, q ListQuery) (*gorm.DB, error) {
	for field, value := range q.Filters {
		column, ok := s.filters[field]
		if !ok {
			return nil, domain.NewValidationError(field, "is not a filterable field")
		}
		db = db.Where(fmt.Sprintf("%s = ?", column), value)
	}
	if term := strings.TrimSpace(q.Search); term != "" && len(s.search) > 0 {
		pattern := likePattern(term)
		conds := make([]string, 0, len(s.search))
		args := make([]any, 0, len(s.search))
		for _, column := range s.search {
			conds = append(conds, fmt.Sprintf("%s ILIKE ?", column))
			args = append(args, pattern)
		}
		db = db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return db, nil
}

// orderBy resolves an ordering expression such as "-created_at", breaking ties on idColumn
func orderBy(ordering string, columns map[string]string, fallback, idColumn string) (string, error) {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		return fallback, nil
	}
	direction := "ASC"
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		ordering = ordering[1:]
	}
	column, ok := columns[ordering]
	if !ok {
		return "", domain.NewValidationError("ordering", fmt.Sprintf("cannot order by %q", ordering))
	}
	if column == idColumn {
		return fmt.Sprintf("%s %s", column, direction), nil
	}
	return fmt.Sprintf("%s %s, %s %s", column, direction, idColumn, direction), nil
}

// likePattern wraps term for a partial ILIKE match, escaping wildcards
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}

type referenceRepository[T any] struct {
	db   *gorm.DB
	table referenceTable
}

// List returns a page of rows and the total count matching the query
func (r *referenceRepository[T]) List(ctx context.Context, q ListQuery) ([]T, int64, error) {
	order, err := orderBy(q.Ordering, r.table.ordering, r.table.defaultOrder, "id")
	if err != nil {
		return nil, 0, err
	}

	base := func() (*gorm.DB, error) {
		return r.table.where(r.db.WithContext(ctx).Model(new(T)), q)
	}

	countQuery, err := base()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s rows: %w", r.table.resource, err)
	}

	listQuery, err := base()
	if err != nil {
		return nil, 0, err
	}
	limit, offset := clampPage(q.Limit, q.Offset)
	rows := []T{}
	if err := listQuery.Order(order).Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list %s rows: %w", r.table.resource, err)
	}

	return rows, total, nil
}

// Get returns the row with the given id
func (r *referenceRepository[T]) Get(ctx context.Context, id int64) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, translateReadError(err, r.table.resource, id)
	}
	return &row, nil
}

// Exists reports whether a row with the given id exists
func (r *referenceRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check %s %d: %w", r.table.resource, id, err)
	}
	return count > 0, nil
}

// Create inserts a new row
func (r *referenceRepository[T]) Create(ctx context.Context, row *T) error {
	err := r.db.WithContext(ctx).Create(row).Error
	return translateWriteError(err, r.table.resource)
}

// Update applies a partial update keyed by column name
func (r *referenceRepository[T]) Update(ctx context.Context, id int64, fields map[string]any) (*T, error) {
	if len(fields) > 0 {
		values := maps.Clone(fields)
		values["updated_at"] = time.Now().UTC()

		result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return nil, translateWriteError(result.Error, r.table.resource)
		}
		if result.RowsAffected == 0 {
			return nil, domain.NewNotFoundError(r.table.resource, id)
		}
	}
	return r.Get(ctx, id)
}

// Delete removes a row
func (r *referenceRepository[T]) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return translateDeleteError(result.Error, r.table.resource, id)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError(r.table.resource, id)
	}
	return nil
}
