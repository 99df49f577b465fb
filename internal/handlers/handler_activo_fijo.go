package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// activoFijoHandler handles HTTP requests related to fixed assets.
type activoFijoHandler struct {
	activoService *services.ActivoFijoService
}

func newActivoFijoHandler(as *services.ActivoFijoService) *activoFijoHandler {
	return &activoFijoHandler{activoService: as}
}

func registerActivoFijoRoutes(rg *gin.RouterGroup, activoService *services.ActivoFijoService) {
	h := newActivoFijoHandler(activoService)

	activos := rg.Group("/activos-fijos")
	{
		activos.GET("", h.listActivos)
		activos.POST("", h.createActivo)
	}
}

func (h *activoFijoHandler) listActivos(c *gin.Context) {
	activos, err := h.activoService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToActivoFijoResponses(activos))
}

func (h *activoFijoHandler) createActivo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateActivoFijoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createActivo", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.activoService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Activo fijo creado exitosamente"})
}
