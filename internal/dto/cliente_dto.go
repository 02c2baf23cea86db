package dto

import "github.com/Andreskammerath/BKK-procurement-system/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	RazonSocial      *string `json:"razon_social"`
	Localizacion     string  `json:"localizacion"`
	CUIT             *string `json:"cuit"`
	WebPage          string  `json:"web_page"`
	Telefono         string  `json:"telefono"`
	Email            string  `json:"email"             validate:"omitempty,email"`
	ContactoNombre   string  `json:"contacto_nombre"`
	ContactoTelefono string  `json:"contacto_telefono"`
	ContactoEmail    string  `json:"contacto_email"    validate:"omitempty,email"`
}

type ActualizarClienteRequest = CrearClienteRequest

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID               string  `json:"id"`
	RazonSocial      *string `json:"razon_social,omitempty"`
	Localizacion     string  `json:"localizacion,omitempty"`
	CUIT             *string `json:"cuit,omitempty"`
	Status           string  `json:"status"`
	WebPage          string  `json:"web_page,omitempty"`
	Telefono         string  `json:"telefono,omitempty"`
	Email            string  `json:"email,omitempty"`
	ContactoNombre   string  `json:"contacto_nombre,omitempty"`
	ContactoTelefono string  `json:"contacto_telefono,omitempty"`
	ContactoEmail    string  `json:"contacto_email,omitempty"`
	Eliminado        bool    `json:"eliminado,omitempty"`
}

func ClienteResponseDe(c *model.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:               c.ID.String(),
		RazonSocial:      c.RazonSocial,
		Localizacion:     c.Localizacion,
		CUIT:             c.CUIT,
		Status:           c.Status,
		WebPage:          c.WebPage,
		Telefono:         c.Telefono,
		Email:            c.Email,
		ContactoNombre:   c.ContactoNombre,
		ContactoTelefono: c.ContactoTelefono,
		ContactoEmail:    c.ContactoEmail,
		Eliminado:        c.DeletedAt.Valid,
	}
}

func ClientesResponseDe(clientes []model.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, ClienteResponseDe(&clientes[i]))
	}
	return out
}
