package models

import "time"

// Proveedor is a supplier the business purchases from.
type Proveedor struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	RFC           *string   `json:"rfc"`
	Direccion     *string   `json:"direccion"`
	Telefono      *string   `json:"telefono"`
	Email         *string   `json:"email"`
	FechaRegistro time.Time `json:"fecha_registro"`
}
