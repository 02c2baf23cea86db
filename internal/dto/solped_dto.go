package dto

import (
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AgregarDetalleSolpedRequest struct {
	ArticuloID     string          `json:"articulo_id"     validate:"required,uuid"`
	CantidadValor  decimal.Decimal `json:"cantidad_valor"  validate:"required"`
	CantidadUnidad string          `json:"cantidad_unidad" validate:"required,oneof=UNIDAD CAJA PALLET KG LITRO METRO M2 M3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleSolpedResponse struct {
	ID             string          `json:"id"`
	ArticuloID     string          `json:"articulo_id"`
	Descripcion    string          `json:"descripcion,omitempty"`
	CantidadValor  decimal.Decimal `json:"cantidad_valor"`
	CantidadUnidad string          `json:"cantidad_unidad"`
	Eliminado      bool            `json:"eliminado,omitempty"`
}

type SolpedResponse struct {
	ID        string                  `json:"id"`
	NroSolped int                     `json:"nro_solped"`
	Status    string                  `json:"status"`
	Eliminado bool                    `json:"eliminado,omitempty"`
	Detalles  []DetalleSolpedResponse `json:"detalles,omitempty"`
}

func DetalleSolpedResponseDe(d *model.DetalleSolped) DetalleSolpedResponse {
	resp := DetalleSolpedResponse{
		ID:             d.ID.String(),
		ArticuloID:     d.ArticuloID.String(),
		CantidadValor:  d.CantidadValor,
		CantidadUnidad: d.CantidadUnidad,
		Eliminado:      d.DeletedAt.Valid,
	}
	if d.Articulo != nil {
		resp.Descripcion = d.Articulo.Descripcion
	}
	return resp
}

func SolpedResponseDe(s *model.Solped) SolpedResponse {
	resp := SolpedResponse{
		ID:        s.ID.String(),
		NroSolped: s.NroSolped,
		Status:    s.Status,
		Eliminado: s.DeletedAt.Valid,
	}
	for i := range s.Detalles {
		resp.Detalles = append(resp.Detalles, DetalleSolpedResponseDe(&s.Detalles[i]))
	}
	return resp
}

func SolpedsResponseDe(solpeds []model.Solped) []SolpedResponse {
	out := make([]SolpedResponse, 0, len(solpeds))
	for i := range solpeds {
		out = append(out, SolpedResponseDe(&solpeds[i]))
	}
	return out
}
