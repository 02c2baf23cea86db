package dto

import (
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
)

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ActividadResponse struct {
	ID          string         `json:"id"`
	UsuarioID   *string        `json:"usuario_id,omitempty"`
	Fecha       time.Time      `json:"fecha"`
	Tipo        string         `json:"tipo"`
	EntidadTipo string         `json:"entidad_tipo"`
	EntidadID   string         `json:"entidad_id"`
	Data        map[string]any `json:"data,omitempty"`
}

func ActividadResponseDe(a *model.Actividad) ActividadResponse {
	resp := ActividadResponse{
		ID:          a.ID.String(),
		Fecha:       a.Fecha,
		Tipo:        a.Tipo,
		EntidadTipo: a.EntidadTipo,
		EntidadID:   a.EntidadID.String(),
		Data:        a.Data,
	}
	if a.UsuarioID != nil {
		s := a.UsuarioID.String()
		resp.UsuarioID = &s
	}
	return resp
}

func ActividadesResponseDe(actividades []model.Actividad) []ActividadResponse {
	out := make([]ActividadResponse, 0, len(actividades))
	for i := range actividades {
		out = append(out, ActividadResponseDe(&actividades[i]))
	}
	return out
}
