package rest

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-guarantees/internal/api/shared/dto"
	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/reference"
	"github.com/feral-file/ff-guarantees/internal/report"
	"github.com/feral-file/ff-guarantees/internal/store"
)

// xlsxContentType is the media type of spreadsheet exports
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LetterScope binds a letter report to one lookup table
type LetterScope struct {
	name   string
	filter func(id int64) store.GuaranteeFilter
	exists func(ctx context.Context, refs *reference.Service, id int64) error
}

var (
	contractorScope = LetterScope{
		name:   "contractor",
		filter: func(id int64) store.GuaranteeFilter { return store.GuaranteeFilter{ContractorID: &id} },
		exists: func(ctx context.Context, refs *reference.Service, id int64) error {
			_, err := refs.Contractors.Get(ctx, id)
			return err
		},
	}
	financialEntityScope = LetterScope{
		name:   "financial_entity",
		filter: func(id int64) store.GuaranteeFilter { return store.GuaranteeFilter{FinancialEntityID: &id} },
		exists: func(ctx context.Context, refs *reference.Service, id int64) error {
			_, err := refs.FinancialEntities.Get(ctx, id)
			return err
		},
	}
	objectScope = LetterScope{
		name:   "warranty_object",
		filter: func(id int64) store.GuaranteeFilter { return store.GuaranteeFilter{ObjectID: &id} },
		exists: func(ctx context.Context, refs *reference.Service, id int64) error {
			_, err := refs.GuaranteeObjects.Get(ctx, id)
			return err
		},
	}
)

// ExpiredReport lists active letters whose validity ended before fecha
func (h *handler) ExpiredReport(c *gin.Context) {
	target, err := ParseDate(c, "fecha", h.executor.Today())
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}

	rows, err := h.executor.ExpiredReport(c.Request.Context(), target)
	if err != nil {
		respondError(c, err, "Failed to build expired report")
		return
	}

	if wantsXLSX(c) {
		respondXLSX(c, "vencidas_"+domain.FormatDate(target), report.ExpiredTable(rows))
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(rows, 0))
}

// ExpiringReport lists active letters ending within the window after fecha
func (h *handler) ExpiringReport(c *gin.Context) {
	target, err := ParseDate(c, "fecha", h.executor.Today())
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}

	rows, err := h.executor.ExpiringReport(c.Request.Context(), target)
	if err != nil {
		respondError(c, err, "Failed to build expiring report")
		return
	}

	if wantsXLSX(c) {
		respondXLSX(c, "por_vencer_"+domain.FormatDate(target), report.ExpiringTable(rows))
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(rows, 0))
}

// ValidCount counts active letters ending after the expiring window
func (h *handler) ValidCount(c *gin.Context) {
	target, err := ParseDate(c, "fecha", h.executor.Today())
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}

	count, err := h.executor.ValidCount(c.Request.Context(), target)
	if err != nil {
		respondError(c, err, "Failed to count valid letters")
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// ValidAtReport lists letters whose validity window contains fecha
func (h *handler) ValidAtReport(c *gin.Context) {
	target, err := ParseDate(c, "fecha", h.executor.Today())
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}
	filter, err := ParseGuaranteeFilter(c, nil)
	if err != nil {
		respondError(c, err, "Invalid filters")
		return
	}

	rows, err := h.executor.ValidAtReport(c.Request.Context(), target, filter)
	if err != nil {
		respondError(c, err, "Failed to build valid letters report")
		return
	}

	if wantsXLSX(c) {
		respondXLSX(c, "vigentes_"+domain.FormatDate(target), report.ValidTable(rows))
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(rows, 0))
}

// ClosedInPeriodReport returns the handler listing letters closed with status within a period
func (h *handler) ClosedInPeriodReport(status domain.StatusID) gin.HandlerFunc {
	sheet, prefix := "Devueltas", "devueltas_"
	if status == domain.StatusExecution {
		sheet, prefix = "Ejecutadas", "ejecutadas_"
	}

	return func(c *gin.Context) {
		from, err := ParseRequiredDate(c, "fecha_inicio")
		if err != nil {
			respondError(c, err, "Invalid period")
			return
		}
		to, err := ParseRequiredDate(c, "fecha_fin")
		if err != nil {
			respondError(c, err, "Invalid period")
			return
		}
		filter, err := ParseGuaranteeFilter(c, nil)
		if err != nil {
			respondError(c, err, "Invalid filters")
			return
		}

		rows, err := h.executor.ClosedInPeriodReport(c.Request.Context(), status, from, to, filter)
		if err != nil {
			respondError(c, err, "Failed to build closed letters report", zap.Int64("status_id", int64(status)))
			return
		}

		if wantsXLSX(c) {
			respondXLSX(c, prefix+domain.FormatDate(from)+"_"+domain.FormatDate(to), report.ClosedTable(sheet, rows))
			return
		}
		c.JSON(http.StatusOK, dto.NewListResponse(rows, 0))
	}
}

// CertificationReport lists every guarantee of an object with its full history
func (h *handler) CertificationReport(c *gin.Context) {
	filter, err := ParseGuaranteeFilter(c, nil)
	if err != nil {
		respondError(c, err, "Invalid filters")
		return
	}
	if filter.ObjectID == nil {
		respondValidationError(c, "warranty_object_id", "is required")
		return
	}

	rows, err := h.executor.CertificationReport(c.Request.Context(), *filter.ObjectID, filter.ContractorID)
	if err != nil {
		respondError(c, err, "Failed to build certification report", zap.Int64("warranty_object_id", *filter.ObjectID))
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(rows, 0))
}

// LettersReport returns the handler classifying the letters of one lookup row
func (h *handler) LettersReport(scope LetterScope) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			respondError(c, err, "Invalid id")
			return
		}
		target, err := ParseDate(c, "fecha", h.executor.Today())
		if err != nil {
			respondError(c, err, "Invalid date")
			return
		}
		if err := scope.exists(c.Request.Context(), h.executor.References(), id); err != nil {
			respondError(c, err, "Failed to get "+scope.name, zap.Int64("id", id))
			return
		}

		rows, err := h.executor.LettersReport(c.Request.Context(), scope.filter(id), target)
		if err != nil {
			respondError(c, err, "Failed to build letters report", zap.String("scope", scope.name), zap.Int64("id", id))
			return
		}

		if wantsXLSX(c) {
			respondXLSX(c, fmt.Sprintf("cartas_%s_%d", scope.name, id), report.LettersTable(rows))
			return
		}
		c.JSON(http.StatusOK, dto.NewListResponse(rows, 0))
	}
}

// respondXLSX renders table into memory first so a rendering failure still yields a JSON error
func respondXLSX(c *gin.Context, name string, table report.Table) {
	var buf bytes.Buffer
	if err := table.WriteXLSX(&buf); err != nil {
		respondError(c, err, "Failed to export report", zap.String("report", name))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
