package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-guarantees/internal/api/shared/errors"
	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.ErrorResponse{Error: apierrors.NewBadRequestError(message, details...)})
}

// respondValidationError responds with a validation error on a single field
func respondValidationError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, apierrors.ErrorResponse{
		Error: apierrors.NewValidationError([]domain.FieldError{{Field: field, Message: message}}),
	})
}

// respondTooLarge responds with a request too large error
func respondTooLarge(c *gin.Context, message string) {
	c.JSON(http.StatusRequestEntityTooLarge, apierrors.ErrorResponse{Error: apierrors.NewTooLargeError(message)})
}

// respondError maps err onto its status and error body.
// Errors outside the domain taxonomy are logged and answered with a 500.
func respondError(c *gin.Context, err error, message string, fields ...zap.Field) {
	if errors.Is(err, errTooLarge) {
		respondTooLarge(c, fmt.Sprintf("Request body exceeds %d MB", MaxRequestBodySize>>20))
		return
	}
	status, apiErr, ok := apierrors.FromDomain(err)
	if !ok {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("message", message))...)
		apiErr.Message = message
	}
	c.JSON(status, apierrors.ErrorResponse{Error: apiErr})
}
