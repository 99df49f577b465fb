package dto

import "github.com/dennysh/Sistema-Contable/internal/models"

type CreateProveedorRequest struct {
	Nombre    string  `json:"nombre" binding:"required"`
	RFC       *string `json:"rfc"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
}

type ProveedorResponse struct {
	ID            int64   `json:"id"`
	Nombre        string  `json:"nombre"`
	RFC           *string `json:"rfc"`
	Direccion     *string `json:"direccion"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email"`
	FechaRegistro string  `json:"fecha_registro"`
}

func ToProveedorResponses(proveedores []models.Proveedor) []ProveedorResponse {
	res := make([]ProveedorResponse, len(proveedores))
	for i, p := range proveedores {
		res[i] = ProveedorResponse{
			ID:            p.ID,
			Nombre:        p.Nombre,
			RFC:           p.RFC,
			Direccion:     p.Direccion,
			Telefono:      p.Telefono,
			Email:         p.Email,
			FechaRegistro: formatTimestamp(p.FechaRegistro),
		}
	}
	return res
}
