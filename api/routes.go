// Route registration for the reconstruction API.
package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)

	plans := e.Group("/api/plans")
	plans.POST("", h.HandleUploadPlan)
	plans.GET("/:id/scene", h.HandleGetScene)
	plans.POST("/:id/highlight", h.HandleHighlight)
	plans.POST("/:id/pick", h.HandlePick)
}
