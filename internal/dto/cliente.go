package dto

import "github.com/dennysh/Sistema-Contable/internal/models"

type CreateClienteRequest struct {
	Nombre    string  `json:"nombre" binding:"required"`
	RFC       *string `json:"rfc"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
}

type ClienteResponse struct {
	ID            int64   `json:"id"`
	Nombre        string  `json:"nombre"`
	RFC           *string `json:"rfc"`
	Direccion     *string `json:"direccion"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email"`
	FechaRegistro string  `json:"fecha_registro"`
}

func ToClienteResponse(c *models.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		RFC:           c.RFC,
		Direccion:     c.Direccion,
		Telefono:      c.Telefono,
		Email:         c.Email,
		FechaRegistro: formatTimestamp(c.FechaRegistro),
	}
}

func ToClienteResponses(clientes []models.Cliente) []ClienteResponse {
	res := make([]ClienteResponse, len(clientes))
	for i := range clientes {
		res[i] = ToClienteResponse(&clientes[i])
	}
	return res
}
