package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// articuloHandler handles HTTP requests related to inventory items.
type articuloHandler struct {
	articuloService *services.ArticuloService
}

func newArticuloHandler(as *services.ArticuloService) *articuloHandler {
	return &articuloHandler{articuloService: as}
}

func registerArticuloRoutes(rg *gin.RouterGroup, articuloService *services.ArticuloService) {
	h := newArticuloHandler(articuloService)

	articulos := rg.Group("/articulos")
	{
		articulos.GET("", h.listArticulos)
		articulos.POST("", h.createArticulo)
	}
}

func (h *articuloHandler) listArticulos(c *gin.Context) {
	articulos, err := h.articuloService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToArticuloResponses(articulos))
}

func (h *articuloHandler) createArticulo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateArticuloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createArticulo", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.articuloService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Artículo creado exitosamente"})
}
