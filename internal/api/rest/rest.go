package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feral-file/ff-guarantees/internal/api/middleware"
	"github.com/feral-file/ff-guarantees/internal/domain"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health and metrics endpoints (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes, every one authenticated so mutations carry a principal
	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		// Reports and search
		v1.GET("/warranties/vencidas", handler.ExpiredReport)
		v1.GET("/warranties/por-vencer", handler.ExpiringReport)
		v1.GET("/warranties/vigentes", handler.ValidCount)
		v1.GET("/warranties/vigentes-por-fecha", handler.ValidAtReport)
		v1.GET("/warranties/ejecutadas-por-periodo", handler.ClosedInPeriodReport(domain.StatusExecution))
		v1.GET("/warranties/devueltas-por-periodo", handler.ClosedInPeriodReport(domain.StatusReturn))
		v1.GET("/warranties/certificacion", handler.CertificationReport)
		v1.GET("/warranty-objects/buscar", handler.SearchGuarantees)
		v1.GET("/contractors/:id/reporte-cartas", handler.LettersReport(contractorScope))
		v1.GET("/financial-entities/:id/reporte-cartas", handler.LettersReport(financialEntityScope))
		v1.GET("/warranty-objects/:id/reporte-cartas", handler.LettersReport(objectScope))

		// Lookup tables
		handler.RegisterReferenceRoutes(v1)

		// Guarantees
		v1.GET("/warranties", handler.ListGuarantees)
		v1.GET("/warranties/:id", handler.GetGuarantee)
		v1.POST("/warranties", handler.CreateGuarantee)
		v1.PATCH("/warranties/:id", handler.UpdateGuarantee)
		v1.DELETE("/warranties/:id", handler.DeleteGuarantee)

		// History records
		v1.GET("/warranty-histories/:id", handler.GetHistory)
		v1.GET("/warranty-histories/:id/is-latest", handler.IsLatestHistory)
		v1.POST("/warranty-histories/renovar", handler.RenewGuarantee)
		v1.POST("/warranty-histories/devolver", handler.ReturnGuarantee)
		v1.POST("/warranty-histories/ejecutar", handler.ExecuteGuarantee)
		for _, kind := range []domain.AmendKind{domain.AmendIssuance, domain.AmendRenewal, domain.AmendReturn, domain.AmendExecution} {
			v1.POST("/warranty-histories/:id/modificar-"+string(kind), handler.AmendHistory(kind))
		}
		v1.DELETE("/warranty-histories/:id/eliminar", handler.DeleteHistory)

		// Attachments
		v1.GET("/warranty-files/:id/download", handler.DownloadFile)
		v1.DELETE("/warranty-files/:id", handler.DeleteFile)
	}
}
