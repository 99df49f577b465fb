package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clienteHandler handles HTTP requests related to customers.
type clienteHandler struct {
	clienteService *services.ClienteService
}

func newClienteHandler(cs *services.ClienteService) *clienteHandler {
	return &clienteHandler{clienteService: cs}
}

// registerClienteRoutes registers routes related to customers.
func registerClienteRoutes(rg *gin.RouterGroup, clienteService *services.ClienteService) {
	h := newClienteHandler(clienteService)

	clientes := rg.Group("/clientes")
	{
		clientes.GET("", h.listClientes)
		clientes.POST("", h.createCliente)
	}
}

func (h *clienteHandler) listClientes(c *gin.Context) {
	clientes, err := h.clienteService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClienteResponses(clientes))
}

func (h *clienteHandler) createCliente(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCliente", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.clienteService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Cliente creado exitosamente"})
}
