package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// nominaHandler handles HTTP requests for payroll receipts.
type nominaHandler struct {
	nominaService *services.NominaService
}

func newNominaHandler(ns *services.NominaService) *nominaHandler {
	return &nominaHandler{nominaService: ns}
}

func registerNominaRoutes(rg *gin.RouterGroup, nominaService *services.NominaService) {
	h := newNominaHandler(nominaService)

	recibos := rg.Group("/recibos-nomina")
	{
		recibos.GET("", h.listRecibosNomina)
		recibos.POST("", h.createReciboNomina)
	}
}

func (h *nominaHandler) listRecibosNomina(c *gin.Context) {
	recibos, err := h.nominaService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReciboNominaResponses(recibos))
}

func (h *nominaHandler) createReciboNomina(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReciboNominaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createReciboNomina", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	recibo, err := h.nominaService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": recibo.ID, "folio": recibo.Folio, "message": "Recibo de nómina creado exitosamente"})
}
