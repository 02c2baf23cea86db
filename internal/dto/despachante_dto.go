package dto

import "github.com/Andreskammerath/BKK-procurement-system/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearDespachanteRequest struct {
	RazonSocial        string  `json:"razon_social"        validate:"required,min=2"`
	CUIT               *string `json:"cuit"`
	Direccion          string  `json:"direccion"`
	Telefono           string  `json:"telefono"`
	TelefonoSecundario string  `json:"telefono_secundario"`
	Email              string  `json:"email"               validate:"omitempty,email"`
	EmailSecundario    string  `json:"email_secundario"    validate:"omitempty,email"`
	ContactoNombre     string  `json:"contacto_nombre"`
}

type ActualizarDespachanteRequest = CrearDespachanteRequest

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DespachanteResponse struct {
	ID                 string  `json:"id"`
	RazonSocial        string  `json:"razon_social"`
	CUIT               *string `json:"cuit,omitempty"`
	Direccion          string  `json:"direccion,omitempty"`
	Telefono           string  `json:"telefono,omitempty"`
	TelefonoSecundario string  `json:"telefono_secundario,omitempty"`
	Email              string  `json:"email,omitempty"`
	EmailSecundario    string  `json:"email_secundario,omitempty"`
	ContactoNombre     string  `json:"contacto_nombre,omitempty"`
	Eliminado          bool    `json:"eliminado,omitempty"`
}

func DespachanteResponseDe(d *model.Despachante) DespachanteResponse {
	return DespachanteResponse{
		ID:                 d.ID.String(),
		RazonSocial:        d.RazonSocial,
		CUIT:               d.CUIT,
		Direccion:          d.Direccion,
		Telefono:           d.Telefono,
		TelefonoSecundario: d.TelefonoSecundario,
		Email:              d.Email,
		EmailSecundario:    d.EmailSecundario,
		ContactoNombre:     d.ContactoNombre,
		Eliminado:          d.DeletedAt.Valid,
	}
}

func DespachantesResponseDe(despachantes []model.Despachante) []DespachanteResponse {
	out := make([]DespachanteResponse, 0, len(despachantes))
	for i := range despachantes {
		out = append(out, DespachanteResponseDe(&despachantes[i]))
	}
	return out
}
