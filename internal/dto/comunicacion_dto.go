package dto

import (
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearComunicacionRequest struct {
	Contenido   string  `json:"contenido"    validate:"required"`
	EntidadTipo *string `json:"entidad_tipo"`
	EntidadID   *string `json:"entidad_id"   validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ComunicacionResponse struct {
	ID          string    `json:"id"`
	UsuarioID   string    `json:"usuario_id"`
	Email       string    `json:"email,omitempty"`
	Contenido   string    `json:"contenido"`
	EntidadTipo *string   `json:"entidad_tipo,omitempty"`
	EntidadID   *string   `json:"entidad_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ComunicacionResponseDe(c *model.Comunicacion) ComunicacionResponse {
	resp := ComunicacionResponse{
		ID:          c.ID.String(),
		UsuarioID:   c.UsuarioID.String(),
		Contenido:   c.Contenido,
		EntidadTipo: c.EntidadTipo,
		CreatedAt:   c.CreatedAt,
	}
	if c.Usuario != nil {
		resp.Email = c.Usuario.Email
	}
	if c.EntidadID != nil {
		s := c.EntidadID.String()
		resp.EntidadID = &s
	}
	return resp
}

func ComunicacionesResponseDe(comunicaciones []model.Comunicacion) []ComunicacionResponse {
	out := make([]ComunicacionResponse, 0, len(comunicaciones))
	for i := range comunicaciones {
		out = append(out, ComunicacionResponseDe(&comunicaciones[i]))
	}
	return out
}
