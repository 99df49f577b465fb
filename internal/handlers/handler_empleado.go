package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/gin-gonic/gin"
)

// empleadoHandler handles HTTP requests related to employees.
type empleadoHandler struct {
	empleadoService *services.EmpleadoService
}

func newEmpleadoHandler(es *services.EmpleadoService) *empleadoHandler {
	return &empleadoHandler{empleadoService: es}
}

func registerEmpleadoRoutes(rg *gin.RouterGroup, empleadoService *services.EmpleadoService) {
	h := newEmpleadoHandler(empleadoService)

	empleados := rg.Group("/empleados")
	{
		empleados.GET("", h.listEmpleados)
		empleados.POST("", h.createEmpleado)
	}
}

func (h *empleadoHandler) listEmpleados(c *gin.Context) {
	empleados, err := h.empleadoService.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmpleadoResponses(empleados))
}

func (h *empleadoHandler) createEmpleado(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmpleadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEmpleado", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.empleadoService.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Empleado creado exitosamente"})
}
