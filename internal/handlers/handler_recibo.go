package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reciboHandler handles HTTP requests for client receipts.
type reciboHandler struct {
	reciboService *services.ReciboService
}

func newReciboHandler(rs *services.ReciboService) *reciboHandler {
	return &reciboHandler{reciboService: rs}
}

func registerReciboRoutes(rg *gin.RouterGroup, reciboService *services.ReciboService) {
	h := newReciboHandler(reciboService)

	recibos := rg.Group("/recibos")
	{
		recibos.GET("", h.listRecibos)
		recibos.POST("", h.createRecibo)
	}
}

func (h *reciboHandler) listRecibos(c *gin.Context) {
	recibos, err := h.reciboService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReciboResponses(recibos))
}

func (h *reciboHandler) createRecibo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReciboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRecibo", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	recibo, err := h.reciboService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": recibo.ID, "folio": recibo.Folio, "message": "Recibo creado exitosamente"})
}
