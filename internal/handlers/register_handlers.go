package handlers

import (
	"errors"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/apperrors"
	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting the services.
func RegisterRoutes(r *gin.Engine, svcs *services.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := r.Group("/api")

	registerClienteRoutes(api, svcs.Cliente)
	registerProveedorRoutes(api, svcs.Proveedor)
	registerCuentaBancariaRoutes(api, svcs.CuentaBancaria)
	registerArticuloRoutes(api, svcs.Articulo)
	registerEmpleadoRoutes(api, svcs.Empleado)
	registerActivoFijoRoutes(api, svcs.ActivoFijo)
	registerFacturaRoutes(api, svcs.FacturaVenta, svcs.FacturaCompra)
	registerReciboRoutes(api, svcs.Recibo)
	registerPagoRoutes(api, svcs.Pago)
	registerNominaRoutes(api, svcs.Nomina)
	registerAsientoRoutes(api, svcs.Asiento)
	registerDashboardRoutes(api, svcs.Dashboard)
}

// respondError maps service errors onto HTTP responses. AppErrors carry their
// own status code; anything else is a 500 with the underlying message.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
