package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pagoHandler handles HTTP requests for supplier payments.
type pagoHandler struct {
	pagoService *services.PagoService
}

func newPagoHandler(ps *services.PagoService) *pagoHandler {
	return &pagoHandler{pagoService: ps}
}

func registerPagoRoutes(rg *gin.RouterGroup, pagoService *services.PagoService) {
	h := newPagoHandler(pagoService)

	pagos := rg.Group("/pagos")
	{
		pagos.GET("", h.listPagos)
		pagos.POST("", h.createPago)
	}
}

func (h *pagoHandler) listPagos(c *gin.Context) {
	pagos, err := h.pagoService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPagoResponses(pagos))
}

func (h *pagoHandler) createPago(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPago", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pago, err := h.pagoService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": pago.ID, "folio": pago.Folio, "message": "Pago creado exitosamente"})
}
