package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// proveedorHandler handles HTTP requests related to suppliers.
type proveedorHandler struct {
	proveedorService *services.ProveedorService
}

func newProveedorHandler(ps *services.ProveedorService) *proveedorHandler {
	return &proveedorHandler{proveedorService: ps}
}

func registerProveedorRoutes(rg *gin.RouterGroup, proveedorService *services.ProveedorService) {
	h := newProveedorHandler(proveedorService)

	proveedores := rg.Group("/proveedores")
	{
		proveedores.GET("", h.listProveedores)
		proveedores.POST("", h.createProveedor)
	}
}

func (h *proveedorHandler) listProveedores(c *gin.Context) {
	proveedores, err := h.proveedorService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProveedorResponses(proveedores))
}

func (h *proveedorHandler) createProveedor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProveedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProveedor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.proveedorService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Proveedor creado exitosamente"})
}
