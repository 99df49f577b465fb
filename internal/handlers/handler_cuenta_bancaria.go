package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cuentaBancariaHandler handles HTTP requests related to bank accounts.
type cuentaBancariaHandler struct {
	cuentaService *services.CuentaBancariaService
}

func newCuentaBancariaHandler(cs *services.CuentaBancariaService) *cuentaBancariaHandler {
	return &cuentaBancariaHandler{cuentaService: cs}
}

func registerCuentaBancariaRoutes(rg *gin.RouterGroup, cuentaService *services.CuentaBancariaService) {
	h := newCuentaBancariaHandler(cuentaService)

	cuentas := rg.Group("/cuentas-bancarias")
	{
		cuentas.GET("", h.listCuentas)
		cuentas.POST("", h.createCuenta)
	}
}

func (h *cuentaBancariaHandler) listCuentas(c *gin.Context) {
	cuentas, err := h.cuentaService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCuentaBancariaResponses(cuentas))
}

func (h *cuentaBancariaHandler) createCuenta(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCuentaBancariaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCuenta", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.cuentaService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Cuenta bancaria creada exitosamente"})
}
