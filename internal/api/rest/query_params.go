package rest

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/store"
)

const (
	// FormatXLSX selects the spreadsheet rendition of a report
	FormatXLSX = "xlsx"

	dateMessage = "must be a date formatted as YYYY-MM-DD"
)

// listParams are the query parameters shared by every list endpoint.
// Any other parameter is treated as an exact-match filter.
var listParams = map[string]bool{
	"search":   true,
	"ordering": true,
	"limit":    true,
	"offset":   true,
	"format":   true,
}

// parseID parses a positive integer path parameter
func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// ParseListQuery reads search, ordering and pagination, returning the remaining parameters as raw filters
func ParseListQuery(c *gin.Context) (store.ListQuery, map[string]string, error) {
	verr := &domain.ValidationError{}
	q := store.ListQuery{
		Search:   strings.TrimSpace(c.Query("search")),
		Ordering: strings.TrimSpace(c.Query("ordering")),
		Limit:    store.DefaultListLimit,
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			verr.Add("limit", "must be a positive integer")
		} else {
			q.Limit = min(limit, store.MaxListLimit)
		}
	}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			verr.Add("offset", "must be a non-negative integer")
		} else {
			q.Offset = offset
		}
	}

	raw := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if listParams[key] || len(values) == 0 {
			continue
		}
		raw[key] = values[0]
	}

	return q, raw, verr.Err()
}

// ParseGuaranteeFilter reads the optional reference filters of guarantee reports.
// Parsed keys are removed from raw when it is non-nil.
func ParseGuaranteeFilter(c *gin.Context, raw map[string]string) (store.GuaranteeFilter, error) {
	verr := &domain.ValidationError{}
	f := store.GuaranteeFilter{
		LetterTypeID:      optionalID(c, verr, "letter_type_id"),
		FinancialEntityID: optionalID(c, verr, "financial_entity_id"),
		ContractorID:      optionalID(c, verr, "contractor_id"),
		ObjectID:          optionalID(c, verr, "warranty_object_id"),
	}
	for _, key := range []string{"letter_type_id", "financial_entity_id", "contractor_id", "warranty_object_id"} {
		delete(raw, key)
	}
	return f, verr.Err()
}

// ParseDate reads a YYYY-MM-DD query parameter, falling back to def when absent
func ParseDate(c *gin.Context, name string, def time.Time) (time.Time, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return def, nil
	}
	t, err := domain.ParseDate(v)
	if err != nil {
		return time.Time{}, domain.NewValidationError(name, dateMessage)
	}
	return t, nil
}

// ParseRequiredDate reads a mandatory YYYY-MM-DD query parameter
func ParseRequiredDate(c *gin.Context, name string) (time.Time, error) {
	if strings.TrimSpace(c.Query(name)) == "" {
		return time.Time{}, domain.NewValidationError(name, "is required")
	}
	return ParseDate(c, name, time.Time{})
}

// wantsXLSX reports whether the caller asked for the spreadsheet rendition
func wantsXLSX(c *gin.Context) bool {
	return strings.EqualFold(c.Query("format"), FormatXLSX)
}

func optionalID(c *gin.Context, verr *domain.ValidationError, name string) *int64 {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		verr.Add(name, "must be a positive integer")
		return nil
	}
	return &id
}
