package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// asientoHandler handles HTTP requests for journal entries.
type asientoHandler struct {
	asientoService *services.AsientoService
}

func newAsientoHandler(as *services.AsientoService) *asientoHandler {
	return &asientoHandler{asientoService: as}
}

func registerAsientoRoutes(rg *gin.RouterGroup, asientoService *services.AsientoService) {
	h := newAsientoHandler(asientoService)

	asientos := rg.Group("/asientos-contables")
	{
		asientos.GET("", h.listAsientos)
		asientos.POST("", h.createAsiento)
		asientos.GET("/periodos", h.listPeriodos)
	}
}

// queryIntParam parses an optional integer query parameter. A missing or
// malformed value is treated as absent, matching how the filters behaved
// before validation existed.
func queryIntParam(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func (h *asientoHandler) listAsientos(c *gin.Context) {
	mes := queryIntParam(c, "mes")
	anio := queryIntParam(c, "anio")

	asientos, err := h.asientoService.Listar(c.Request.Context(), mes, anio)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAsientoResponses(asientos))
}

func (h *asientoHandler) createAsiento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAsientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAsiento", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asiento, err := h.asientoService.CrearManual(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": asiento.ID, "folio": asiento.Folio, "message": "Asiento contable creado exitosamente"})
}

func (h *asientoHandler) listPeriodos(c *gin.Context) {
	periodos, err := h.asientoService.ListarPeriodos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, periodos)
}
