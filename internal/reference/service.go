// Package reference manages the lookup tables guarantees point to.
package reference

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/logger"
	"github.com/feral-file/ff-guarantees/internal/store"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

// FilterParser converts a raw query value into the value compared against the column
type FilterParser func(value string) (any, error)

// Resource exposes the CRUD operations of one lookup table
type Resource[T any, I Input[T]] struct {
	name    string
	store   store.Store
	repo    func(store.Store) store.ReferenceRepository[T]
	filters map[string]FilterParser
}

// Name returns the resource name used in messages and logs
func (r *Resource[T, I]) Name() string {
	return r.name
}

// ParseFilters converts raw exact-match filters. Fields the resource does not filter on are rejected.
func (r *Resource[T, I]) ParseFilters(raw map[string]string) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	filters := make(map[string]any, len(raw))
	verr := &domain.ValidationError{}
	for field, value := range raw {
		parse, ok := r.filters[field]
		if !ok {
			verr.Add(field, "is not a filterable field")
			continue
		}
		v, err := parse(value)
		if err != nil {
			verr.Add(field, err.Error())
			continue
		}
		filters[field] = v
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}
	return filters, nil
}

// List returns a page of rows and the total count
func (r *Resource[T, I]) List(ctx context.Context, q store.ListQuery) ([]T, int64, error) {
	return r.repo(r.store).List(ctx, q)
}

// Get returns one row
func (r *Resource[T, I]) Get(ctx context.Context, id int64) (*T, error) {
	return r.repo(r.store).Get(ctx, id)
}

// Create validates the input and inserts a row stamped with principal
func (r *Resource[T, I]) Create(ctx context.Context, principal string, in I) (*T, error) {
	if err := in.Normalize(false); err != nil {
		return nil, err
	}
	row := in.Row(principal)
	if err := r.repo(r.store).Create(ctx, row); err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Created reference row", zap.String("resource", r.name))
	return row, nil
}

// Update replaces (partial=false) or patches (partial=true) a row
func (r *Resource[T, I]) Update(ctx context.Context, principal string, id int64, in I, partial bool) (*T, error) {
	if err := in.Normalize(partial); err != nil {
		return nil, err
	}
	cols := in.Columns()
	if len(cols) == 0 {
		return r.repo(r.store).Get(ctx, id)
	}
	cols["updated_by"] = principal
	return r.repo(r.store).Update(ctx, id, cols)
}

// Delete removes a row. Rows still referenced are kept and a ConflictError is returned.
func (r *Resource[T, I]) Delete(ctx context.Context, id int64) error {
	if err := r.repo(r.store).Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Deleted reference row", zap.String("resource", r.name), zap.Int64("id", id))
	return nil
}

// Service groups the lookup tables
type Service struct {
	LetterTypes       *Resource[schema.LetterType, *LetterTypeInput]
	FinancialEntities *Resource[schema.FinancialEntity, *FinancialEntityInput]
	Contractors       *Resource[schema.Contractor, *ContractorInput]
	CurrencyTypes     *Resource[schema.CurrencyType, *CurrencyTypeInput]
	GuaranteeStatuses *Resource[schema.GuaranteeStatus, *GuaranteeStatusInput]
	GuaranteeObjects  *Resource[schema.GuaranteeObject, *GuaranteeObjectInput]
}

// NewService creates the reference data service
func NewService(s store.Store) *Service {
	return &Service{
		LetterTypes: &Resource[schema.LetterType, *LetterTypeInput]{
			name:  "letter type",
			store: s,
			repo:  store.Store.LetterTypes,
		},
		FinancialEntities: &Resource[schema.FinancialEntity, *FinancialEntityInput]{
			name:  "financial entity",
			store: s,
			repo:  store.Store.FinancialEntities,
		},
		Contractors: &Resource[schema.Contractor, *ContractorInput]{
			name:    "contractor",
			store:   s,
			repo:    store.Store.Contractors,
			filters: map[string]FilterParser{"ruc": parseText},
		},
		CurrencyTypes: &Resource[schema.CurrencyType, *CurrencyTypeInput]{
			name:    "currency type",
			store:   s,
			repo:    store.Store.CurrencyTypes,
			filters: map[string]FilterParser{"code": parseCurrencyCode},
		},
		GuaranteeStatuses: &Resource[schema.GuaranteeStatus, *GuaranteeStatusInput]{
			name:    "warranty status",
			store:   s,
			repo:    store.Store.GuaranteeStatuses,
			filters: map[string]FilterParser{"is_active": parseBool},
		},
		GuaranteeObjects: &Resource[schema.GuaranteeObject, *GuaranteeObjectInput]{
			name:    "warranty object",
			store:   s,
			repo:    store.Store.GuaranteeObjects,
			filters: map[string]FilterParser{"cui": parseText},
		},
	}
}

func parseText(value string) (any, error) {
	return strings.TrimSpace(value), nil
}

func parseCurrencyCode(value string) (any, error) {
	return strings.ToUpper(strings.TrimSpace(value)), nil
}

func parseBool(value string) (any, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("must be true or false")
	}
	return b, nil
}
