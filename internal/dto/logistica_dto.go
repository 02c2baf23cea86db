package dto

import (
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearRemitoRequest struct {
	DestinatarioID       string  `json:"destinatario_id"        validate:"required,uuid"`
	NumeroRemito         *string `json:"numero_remito"          validate:"omitempty,max=50"`
	FechaEnvio           string  `json:"fecha_envio"            validate:"omitempty,datetime=2006-01-02"`
	FechaEntregaEstimada string  `json:"fecha_entrega_estimada" validate:"omitempty,datetime=2006-01-02"`
}

type AgregarDetalleRemitoRequest struct {
	ArticuloID     string          `json:"articulo_id"     validate:"required,uuid"`
	CantidadValor  decimal.Decimal `json:"cantidad_valor"  validate:"required"`
	CantidadUnidad string          `json:"cantidad_unidad" validate:"required,oneof=UNIDAD CAJA PALLET KG LITRO METRO M2 M3"`
}

type CrearEnvioRequest struct {
	RemitoID          string  `json:"remito_id"          validate:"required,uuid"`
	DespachanteID     string  `json:"despachante_id"     validate:"required,uuid"`
	NumeroSeguimiento *string `json:"numero_seguimiento"`
	FechaEnvio        string  `json:"fecha_envio"        validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleRemitoResponse struct {
	ID             string          `json:"id"`
	ArticuloID     string          `json:"articulo_id"`
	Descripcion    string          `json:"descripcion,omitempty"`
	CantidadValor  decimal.Decimal `json:"cantidad_valor"`
	CantidadUnidad string          `json:"cantidad_unidad"`
}

type RemitoResponse struct {
	ID                   string                  `json:"id"`
	DestinatarioID       string                  `json:"destinatario_id"`
	Destinatario         *ClienteResponse        `json:"destinatario,omitempty"`
	NumeroRemito         *string                 `json:"numero_remito,omitempty"`
	Status               string                  `json:"status"`
	FechaEnvio           string                  `json:"fecha_envio,omitempty"`
	FechaEntregaEstimada string                  `json:"fecha_entrega_estimada,omitempty"`
	Detalles             []DetalleRemitoResponse `json:"detalles,omitempty"`
	Eliminado            bool                    `json:"eliminado,omitempty"`
}

type EnvioResponse struct {
	ID                string               `json:"id"`
	RemitoID          string               `json:"remito_id"`
	DespachanteID     string               `json:"despachante_id"`
	Despachante       *DespachanteResponse `json:"despachante,omitempty"`
	NumeroSeguimiento *string              `json:"numero_seguimiento,omitempty"`
	Status            string               `json:"status"`
	FechaEnvio        string               `json:"fecha_envio,omitempty"`
	FechaEntregaReal  string               `json:"fecha_entrega_real,omitempty"`
	Eliminado         bool                 `json:"eliminado,omitempty"`
}

func RemitoResponseDe(r *model.Remito) RemitoResponse {
	resp := RemitoResponse{
		ID:                   r.ID.String(),
		DestinatarioID:       r.DestinatarioID.String(),
		NumeroRemito:         r.NumeroRemito,
		Status:               r.Status,
		FechaEnvio:           fechaISO(r.FechaEnvio),
		FechaEntregaEstimada: fechaISO(r.FechaEntregaEstimada),
		Eliminado:            r.DeletedAt.Valid,
	}
	if r.Destinatario != nil {
		c := ClienteResponseDe(r.Destinatario)
		resp.Destinatario = &c
	}
	for i := range r.Detalles {
		d := &r.Detalles[i]
		dr := DetalleRemitoResponse{
			ID:             d.ID.String(),
			ArticuloID:     d.ArticuloID.String(),
			CantidadValor:  d.CantidadValor,
			CantidadUnidad: d.CantidadUnidad,
		}
		if d.Articulo != nil {
			dr.Descripcion = d.Articulo.Descripcion
		}
		resp.Detalles = append(resp.Detalles, dr)
	}
	return resp
}

func RemitosResponseDe(remitos []model.Remito) []RemitoResponse {
	out := make([]RemitoResponse, 0, len(remitos))
	for i := range remitos {
		out = append(out, RemitoResponseDe(&remitos[i]))
	}
	return out
}

func EnvioResponseDe(e *model.Envio) EnvioResponse {
	resp := EnvioResponse{
		ID:                e.ID.String(),
		RemitoID:          e.RemitoID.String(),
		DespachanteID:     e.DespachanteID.String(),
		NumeroSeguimiento: e.NumeroSeguimiento,
		Status:            e.Status,
		FechaEnvio:        fechaISO(e.FechaEnvio),
		FechaEntregaReal:  fechaISO(e.FechaEntregaReal),
		Eliminado:         e.DeletedAt.Valid,
	}
	if e.Despachante != nil {
		d := DespachanteResponseDe(e.Despachante)
		resp.Despachante = &d
	}
	return resp
}

func EnviosResponseDe(envios []model.Envio) []EnvioResponse {
	out := make([]EnvioResponse, 0, len(envios))
	for i := range envios {
		out = append(out, EnvioResponseDe(&envios[i]))
	}
	return out
}
