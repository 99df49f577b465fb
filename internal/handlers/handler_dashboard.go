package handlers

import (
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the financial summary and the sidebar counts.
type dashboardHandler struct {
	dashboardService *services.DashboardService
}

func newDashboardHandler(ds *services.DashboardService) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService *services.DashboardService) {
	h := newDashboardHandler(dashboardService)

	rg.GET("/dashboard/summary", h.getSummary)
	rg.GET("/counts", h.getCounts)
}

func (h *dashboardHandler) getSummary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *dashboardHandler) getCounts(c *gin.Context) {
	counts, err := h.dashboardService.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
