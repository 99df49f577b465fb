package models

import "time"

// Cliente is a customer the business sells to.
type Cliente struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	RFC           *string   `json:"rfc"` // Unique tax ID, nullable
	Direccion     *string   `json:"direccion"`
	Telefono      *string   `json:"telefono"`
	Email         *string   `json:"email"`
	FechaRegistro time.Time `json:"fecha_registro"`
}
