package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-guarantees/internal/api/middleware"
	"github.com/feral-file/ff-guarantees/internal/api/shared/dto"
	"github.com/feral-file/ff-guarantees/internal/reference"
)

// referenceHandler serves the CRUD endpoints of one lookup table
type referenceHandler[T any, I reference.Input[T]] struct {
	resource *reference.Resource[T, I]
	newInput func() I
}

// registerReference mounts the CRUD endpoints of a lookup table under path
func registerReference[T any, I reference.Input[T]](rg *gin.RouterGroup, path string, resource *reference.Resource[T, I], newInput func() I) {
	h := &referenceHandler[T, I]{resource: resource, newInput: newInput}

	group := rg.Group(path)
	group.GET("", h.list)
	group.GET("/:id", h.get)
	group.POST("", h.create)
	group.PUT("/:id", h.update(false))
	group.PATCH("/:id", h.update(true))
	group.DELETE("/:id", h.delete)
}

func (h *referenceHandler[T, I]) list(c *gin.Context) {
	q, raw, err := ParseListQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}
	q.Filters, err = h.resource.ParseFilters(raw)
	if err != nil {
		respondError(c, err, "Invalid filters")
		return
	}

	rows, total, err := h.resource.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Failed to list "+h.resource.Name(), zap.String("resource", h.resource.Name()))
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(rows, total))
}

func (h *referenceHandler[T, I]) get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid id")
		return
	}

	row, err := h.resource.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get "+h.resource.Name(), zap.Int64("id", id))
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *referenceHandler[T, I]) create(c *gin.Context) {
	in := h.newInput()
	if err := bindJSON(c, in); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	row, err := h.resource.Create(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		respondError(c, err, "Failed to create "+h.resource.Name())
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (h *referenceHandler[T, I]) update(partial bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			respondError(c, err, "Invalid id")
			return
		}
		in := h.newInput()
		if err := bindJSON(c, in); err != nil {
			respondError(c, err, "Invalid request body")
			return
		}

		row, err := h.resource.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, in, partial)
		if err != nil {
			respondError(c, err, "Failed to update "+h.resource.Name(), zap.Int64("id", id))
			return
		}

		c.JSON(http.StatusOK, row)
	}
}

func (h *referenceHandler[T, I]) delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err, "Invalid id")
		return
	}

	if err := h.resource.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete "+h.resource.Name(), zap.Int64("id", id))
		return
	}

	c.Status(http.StatusNoContent)
}
