package dto

import (
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type CreateCuentaBancariaRequest struct {
	Nombre       string          `json:"nombre" binding:"required"`
	Banco        string          `json:"banco" binding:"required"`
	NumeroCuenta string          `json:"numero_cuenta" binding:"required"`
	SaldoInicial decimal.Decimal `json:"saldo_inicial"`
}

type CuentaBancariaResponse struct {
	ID            int64   `json:"id"`
	Nombre        string  `json:"nombre"`
	Banco         string  `json:"banco"`
	NumeroCuenta  string  `json:"numero_cuenta"`
	SaldoActual   float64 `json:"saldo_actual"`
	FechaApertura string  `json:"fecha_apertura"`
}

func ToCuentaBancariaResponses(cuentas []models.CuentaBancaria) []CuentaBancariaResponse {
	res := make([]CuentaBancariaResponse, len(cuentas))
	for i, c := range cuentas {
		res[i] = CuentaBancariaResponse{
			ID:            c.ID,
			Nombre:        c.Nombre,
			Banco:         c.Banco,
			NumeroCuenta:  c.NumeroCuenta,
			SaldoActual:   c.SaldoActual.InexactFloat64(),
			FechaApertura: formatTimestamp(c.FechaApertura),
		}
	}
	return res
}
