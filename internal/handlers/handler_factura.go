package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// facturaHandler handles HTTP requests for sales and purchase invoices.
type facturaHandler struct {
	ventaService  *services.FacturaVentaService
	compraService *services.FacturaCompraService
}

func newFacturaHandler(vs *services.FacturaVentaService, cs *services.FacturaCompraService) *facturaHandler {
	return &facturaHandler{ventaService: vs, compraService: cs}
}

func registerFacturaRoutes(rg *gin.RouterGroup, ventaService *services.FacturaVentaService, compraService *services.FacturaCompraService) {
	h := newFacturaHandler(ventaService, compraService)

	ventas := rg.Group("/facturas-venta")
	{
		ventas.GET("", h.listFacturasVenta)
		ventas.POST("", h.createFacturaVenta)
	}
	compras := rg.Group("/facturas-compra")
	{
		compras.GET("", h.listFacturasCompra)
		compras.POST("", h.createFacturaCompra)
	}
}

func (h *facturaHandler) listFacturasVenta(c *gin.Context) {
	facturas, err := h.ventaService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFacturaVentaResponses(facturas))
}

func (h *facturaHandler) createFacturaVenta(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFacturaVentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createFacturaVenta", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	factura, asientoID, err := h.ventaService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateFacturaResponse{
		ID:        factura.ID,
		Folio:     factura.Folio,
		Message:   "Factura de venta creada exitosamente",
		AsientoID: asientoID,
	})
}

func (h *facturaHandler) listFacturasCompra(c *gin.Context) {
	facturas, err := h.compraService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFacturaCompraResponses(facturas))
}

func (h *facturaHandler) createFacturaCompra(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFacturaCompraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createFacturaCompra", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	factura, asientoID, err := h.compraService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateFacturaResponse{
		ID:        factura.ID,
		Folio:     factura.Folio,
		Message:   "Factura de compra creada exitosamente",
		AsientoID: asientoID,
	})
}
