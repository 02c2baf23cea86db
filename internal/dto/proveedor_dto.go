package dto

import "github.com/Andreskammerath/BKK-procurement-system/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	RazonSocial         string  `json:"razon_social"          validate:"required,min=2"`
	Localizacion        string  `json:"localizacion"`
	CUIT                *string `json:"cuit"`
	EsProveedorNacional bool    `json:"es_proveedor_nacional"`
}

type ActualizarProveedorRequest struct {
	RazonSocial         string  `json:"razon_social"          validate:"required,min=2"`
	Localizacion        string  `json:"localizacion"`
	CUIT                *string `json:"cuit"`
	EsProveedorNacional bool    `json:"es_proveedor_nacional"`
}

type CrearFormaEntregaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2"`
	Descripcion string `json:"descripcion"`
}

type VincularFormaEntregaRequest struct {
	FormaEntregaID string `json:"forma_entrega_id" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FormaEntregaResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

type ProveedorResponse struct {
	ID                  string                 `json:"id"`
	RazonSocial         string                 `json:"razon_social"`
	Localizacion        string                 `json:"localizacion,omitempty"`
	CUIT                *string                `json:"cuit,omitempty"`
	Status              string                 `json:"status"`
	EsProveedorNacional bool                   `json:"es_proveedor_nacional"`
	Eliminado           bool                   `json:"eliminado,omitempty"`
	FormasEntrega       []FormaEntregaResponse `json:"formas_entrega,omitempty"`
}

func FormaEntregaResponseDe(fe *model.FormaDeEntrega) FormaEntregaResponse {
	return FormaEntregaResponse{
		ID:          fe.ID.String(),
		Nombre:      fe.Nombre,
		Descripcion: fe.Descripcion,
	}
}

func ProveedorResponseDe(p *model.Proveedor) ProveedorResponse {
	resp := ProveedorResponse{
		ID:                  p.ID.String(),
		RazonSocial:         p.RazonSocial,
		Localizacion:        p.Localizacion,
		CUIT:                p.CUIT,
		Status:              p.Status,
		EsProveedorNacional: p.EsProveedorNacional,
		Eliminado:           p.DeletedAt.Valid,
	}
	for _, v := range p.FormasEntrega {
		if v.FormaEntrega != nil {
			resp.FormasEntrega = append(resp.FormasEntrega, FormaEntregaResponseDe(v.FormaEntrega))
		}
	}
	return resp
}

func ProveedoresResponseDe(proveedores []model.Proveedor) []ProveedorResponse {
	out := make([]ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, ProveedorResponseDe(&proveedores[i]))
	}
	return out
}
