package rest

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-guarantees/internal/api/middleware"
	"github.com/feral-file/ff-guarantees/internal/api/shared/dto"
	"github.com/feral-file/ff-guarantees/internal/api/shared/executor"
	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/guarantee"
	"github.com/feral-file/ff-guarantees/internal/logger"
	"github.com/feral-file/ff-guarantees/internal/reference"
	"github.com/feral-file/ff-guarantees/internal/store"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// RegisterReferenceRoutes mounts the CRUD endpoints of every lookup table
	// GET|POST /api/v1/<table>, GET|PUT|PATCH|DELETE /api/v1/<table>/:id
	RegisterReferenceRoutes(rg *gin.RouterGroup)

	// ListGuarantees lists guarantees with their current record
	// GET /api/v1/warranties?search=&cui=&warranty_object_id=&letter_type_id=&contractor_id=&financial_entity_id=&ordering=&limit=&offset=
	ListGuarantees(c *gin.Context)

	// GetGuarantee retrieves a guarantee with its full history and attachments
	// GET /api/v1/warranties/:id
	GetGuarantee(c *gin.Context)

	// CreateGuarantee creates a guarantee with its issuance record
	// POST /api/v1/warranties (JSON, or multipart with "data" and "files")
	CreateGuarantee(c *gin.Context)

	// UpdateGuarantee changes the object, letter type or contractor of a guarantee
	// PATCH /api/v1/warranties/:id
	UpdateGuarantee(c *gin.Context)

	// DeleteGuarantee deletes a guarantee with its history and attachments
	// DELETE /api/v1/warranties/:id
	DeleteGuarantee(c *gin.Context)

	// SearchGuarantees finds guarantees by one attribute
	// GET /api/v1/warranty-objects/buscar?filter_type=cui|description|letter_number|contractor_ruc|contractor_name&filter_value=
	SearchGuarantees(c *gin.Context)

	// GetHistory retrieves a history record
	// GET /api/v1/warranty-histories/:id
	GetHistory(c *gin.Context)

	// IsLatestHistory tells whether a record is the current record of its guarantee
	// GET /api/v1/warranty-histories/:id/is-latest
	IsLatestHistory(c *gin.Context)

	// RenewGuarantee appends a renewal record
	// POST /api/v1/warranty-histories/renovar
	RenewGuarantee(c *gin.Context)

	// ReturnGuarantee appends a return record
	// POST /api/v1/warranty-histories/devolver
	ReturnGuarantee(c *gin.Context)

	// ExecuteGuarantee appends an execution record
	// POST /api/v1/warranty-histories/ejecutar
	ExecuteGuarantee(c *gin.Context)

	// AmendHistory returns the handler amending the current record with the given kind
	// POST /api/v1/warranty-histories/:id/modificar-<kind>
	AmendHistory(kind domain.AmendKind) gin.HandlerFunc

	// DeleteHistory deletes the current record
	// DELETE /api/v1/warranty-histories/:id/eliminar
	DeleteHistory(c *gin.Context)

	// DownloadFile streams an attachment
	// GET /api/v1/warranty-files/:id/download
	DownloadFile(c *gin.Context)

	// DeleteFile removes an attachment of a current record
	// DELETE /api/v1/warranty-files/:id
	DeleteFile(c *gin.Context)

	// ExpiredReport lists active letters whose validity ended before fecha
	// GET /api/v1/warranties/vencidas?fecha=&format=xlsx
	ExpiredReport(c *gin.Context)

	// ExpiringReport lists active letters ending within the 30 days after fecha
	// GET /api/v1/warranties/por-vencer?fecha=&format=xlsx
	ExpiringReport(c *gin.Context)

	// ValidCount counts active letters ending more than 30 days after fecha
	// GET /api/v1/warranties/vigentes?fecha=
	ValidCount(c *gin.Context)

	// ValidAtReport lists letters whose validity window contains fecha
	// GET /api/v1/warranties/vigentes-por-fecha?fecha=&letter_type_id=&financial_entity_id=&contractor_id=&warranty_object_id=&format=xlsx
	ValidAtReport(c *gin.Context)

	// ClosedInPeriodReport returns the handler listing letters closed with status within a period
	// GET /api/v1/warranties/ejecutadas-por-periodo|devueltas-por-periodo?fecha_inicio=&fecha_fin=&format=xlsx
	ClosedInPeriodReport(status domain.StatusID) gin.HandlerFunc

	// CertificationReport lists every guarantee of an object with its full history
	// GET /api/v1/warranties/certificacion?warranty_object_id=&contractor_id=
	CertificationReport(c *gin.Context)

	// LettersReport returns the handler classifying the letters of one contractor, entity or object
	// GET /api/v1/contractors|financial-entities|warranty-objects/:id/reporte-cartas?fecha=&format=xlsx
	LettersReport(scope LetterScope) gin.HandlerFunc

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

func (h *handler) RegisterReferenceRoutes(rg *gin.RouterGroup) {
	refs := h.executor.References()
	registerReference(rg, "/letter-types", refs.LetterTypes, func() *reference.LetterTypeInput { return &reference.LetterTypeInput{} })
	registerReference(rg, "/financial-entities", refs.FinancialEntities, func() *reference.FinancialEntityInput { return &reference.FinancialEntityInput{} })
	registerReference(rg, "/contractors", refs.Contractors, func() *reference.ContractorInput { return &reference.ContractorInput{} })
	registerReference(rg, "/currency-types", refs.CurrencyTypes, func() *reference.CurrencyTypeInput { return &reference.CurrencyTypeInput{} })
	registerReference(rg, "/warranty-statuses", refs.GuaranteeStatuses, func() *reference.GuaranteeStatusInput { return &reference.GuaranteeStatusInput{} })
	registerReference(rg, "/warranty-objects", refs.GuaranteeObjects, func() *reference.GuaranteeObjectInput { return &reference.GuaranteeObjectInput{} })
}

// ListGuarantees lists guarantees with their current record
func (h *handler) ListGuarantees(c *gin.Context) {
	q, raw, err := ParseListQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}
	filter, err := ParseGuaranteeFilter(c, raw)
	if err != nil {
		respondError(c, err, "Invalid filters")
		return
	}
	if len(raw) > 0 {
		q.Filters = make(map[string]any, len(raw))
		for k, v := range raw {
			q.Filters[k] = v
		}
	}

	response, err := h.executor.ListGuarantees(c.Request.Context(), store.GuaranteeQuery{ListQuery: q, GuaranteeFilter: filter})
	if err != nil {
		respondError(c, err, "Failed to list warranties")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetGuarantee retrieves a guarantee with its full history
func (h *handler) GetGuarantee(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid warranty id")
		return
	}

	response, err := h.executor.GetGuarantee(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get warranty", zap.Int64("warranty_id", id))
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateGuarantee creates a guarantee with its issuance record
func (h *handler) CreateGuarantee(c *gin.Context) {
	var req dto.CreateGuaranteeRequest
	files, err := bindBody(c, &req)
	if err != nil {
		respondError(c, err, "Invalid request body")
		return
	}
	in, err := req.ToInput(files)
	if err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.CreateGuarantee(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		respondError(c, err, "Failed to create warranty")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// UpdateGuarantee changes the references of a guarantee
func (h *handler) UpdateGuarantee(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid warranty id")
		return
	}
	var req dto.UpdateGuaranteeRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.UpdateGuarantee(c.Request.Context(), middleware.PrincipalFrom(c), id, req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to update warranty", zap.Int64("warranty_id", id))
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteGuarantee deletes a guarantee with its history and attachments
func (h *handler) DeleteGuarantee(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid warranty id")
		return
	}

	if err := h.executor.DeleteGuarantee(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete warranty", zap.Int64("warranty_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchGuarantees finds guarantees by one attribute
func (h *handler) SearchGuarantees(c *gin.Context) {
	field := store.SearchField(strings.TrimSpace(c.Query("filter_type")))
	if !field.Valid() {
		respondValidationError(c, "filter_type", "must be one of cui, description, letter_number, contractor_ruc, contractor_name")
		return
	}
	value := strings.TrimSpace(c.Query("filter_value"))
	if value == "" {
		respondValidationError(c, "filter_value", "is required")
		return
	}

	response, err := h.executor.SearchGuarantees(c.Request.Context(), field, value)
	if err != nil {
		respondError(c, err, "Failed to search warranties", zap.String("filter_type", string(field)))
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetHistory retrieves a history record
func (h *handler) GetHistory(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid history id")
		return
	}

	response, err := h.executor.GetHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get warranty history", zap.Int64("history_id", id))
		return
	}

	c.JSON(http.StatusOK, response)
}

// IsLatestHistory tells whether a record is the current record of its guarantee
func (h *handler) IsLatestHistory(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid history id")
		return
	}

	response, err := h.executor.IsLatestHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to check warranty history", zap.Int64("history_id", id))
		return
	}

	c.JSON(http.StatusOK, response)
}

// RenewGuarantee appends a renewal record
func (h *handler) RenewGuarantee(c *gin.Context) {
	var req dto.RenewRequest
	files, err := bindBody(c, &req)
	if err != nil {
		respondError(c, err, "Invalid request body")
		return
	}
	in, err := req.ToInput(files)
	if err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.RenewGuarantee(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		respondError(c, err, "Failed to renew warranty", zap.Int64("warranty_id", in.GuaranteeID))
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ReturnGuarantee appends a return record
func (h *handler) ReturnGuarantee(c *gin.Context) {
	h.closeGuarantee(c, "return", h.executor.ReturnGuarantee)
}

// ExecuteGuarantee appends an execution record
func (h *handler) ExecuteGuarantee(c *gin.Context) {
	h.closeGuarantee(c, "execute", h.executor.ExecuteGuarantee)
}

type closeFunc func(ctx context.Context, principal string, in guarantee.CloseInput) (*dto.HistoryResponse, error)

func (h *handler) closeGuarantee(c *gin.Context, action string, fn closeFunc) {
	var req dto.CloseRequest
	files, err := bindBody(c, &req)
	if err != nil {
		respondError(c, err, "Invalid request body")
		return
	}
	in, err := req.ToInput(files)
	if err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := fn(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		respondError(c, err, "Failed to "+action+" warranty", zap.Int64("warranty_id", in.GuaranteeID))
		return
	}

	c.JSON(http.StatusCreated, response)
}

// AmendHistory returns the handler amending the current record with the given kind
func (h *handler) AmendHistory(kind domain.AmendKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			respondError(c, err, "Invalid history id")
			return
		}
		var req dto.AmendRequest
		files, err := bindBody(c, &req)
		if err != nil {
			respondError(c, err, "Invalid request body")
			return
		}
		in, err := req.ToInput(files)
		if err != nil {
			respondError(c, err, "Invalid request body")
			return
		}

		response, err := h.executor.AmendHistory(c.Request.Context(), middleware.PrincipalFrom(c), kind, id, in)
		if err != nil {
			respondError(c, err, "Failed to amend warranty history",
				zap.Int64("history_id", id),
				zap.String("kind", string(kind)),
			)
			return
		}

		c.JSON(http.StatusOK, response)
	}
}

// DeleteHistory deletes the current record
func (h *handler) DeleteHistory(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid history id")
		return
	}

	response, err := h.executor.DeleteHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete warranty history", zap.Int64("history_id", id))
		return
	}

	c.JSON(http.StatusOK, response)
}

// DownloadFile streams an attachment with its display name
func (h *handler) DownloadFile(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid file id")
		return
	}

	file, content, err := h.executor.OpenFile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to open warranty file", zap.Int64("file_id", id))
		return
	}
	defer content.Close()

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	c.Header("Content-Type", domain.AttachmentContentType)
	if file.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(file.Size, 10))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, content); err != nil {
		logger.WarnCtx(c.Request.Context(), "Failed to stream warranty file",
			zap.Error(err),
			zap.Int64("file_id", id),
		)
	}
}

// DeleteFile removes an attachment of a current record
func (h *handler) DeleteFile(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid file id")
		return
	}

	if err := h.executor.DeleteFile(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete warranty file", zap.Int64("file_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.executor.Ping(c.Request.Context()); err != nil {
		logger.ErrorCtx(c.Request.Context(), fmt.Errorf("health check failed: %w", err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unhealthy", Database: "unreachable"})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Database: "ok"})
}
