package dto

import (
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPedidoCotizacionRequest struct {
	ClienteID        string `json:"cliente_id"        validate:"required,uuid"`
	FechaVencimiento string `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
}

type CrearPedidoCotizacionProveedorRequest struct {
	ProveedorID      string `json:"proveedor_id"      validate:"required,uuid"`
	FechaVencimiento string `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
}

type AgregarDetallePedidoRequest struct {
	ArticuloID     string          `json:"articulo_id"     validate:"required,uuid"`
	CantidadValor  decimal.Decimal `json:"cantidad_valor"  validate:"required"`
	CantidadUnidad string          `json:"cantidad_unidad" validate:"required,oneof=UNIDAD CAJA PALLET KG LITRO METRO M2 M3"`
}

type VincularSolpedRequest struct {
	SolpedID string `json:"solped_id" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoCotizacionResponse struct {
	ID               string           `json:"id"`
	ClienteID        string           `json:"cliente_id"`
	Cliente          *ClienteResponse `json:"cliente,omitempty"`
	Status           string           `json:"status"`
	FechaVencimiento string           `json:"fecha_vencimiento,omitempty"`
	SolpedIDs        []string         `json:"solped_ids,omitempty"`
	Eliminado        bool             `json:"eliminado,omitempty"`
}

type DetallePedidoProveedorResponse struct {
	ID             string          `json:"id"`
	ArticuloID     string          `json:"articulo_id"`
	Descripcion    string          `json:"descripcion,omitempty"`
	CantidadValor  decimal.Decimal `json:"cantidad_valor"`
	CantidadUnidad string          `json:"cantidad_unidad"`
}

type PedidoCotizacionProveedorResponse struct {
	ID               string                           `json:"id"`
	ProveedorID      string                           `json:"proveedor_id"`
	Proveedor        *ProveedorResponse               `json:"proveedor,omitempty"`
	Status           string                           `json:"status"`
	FechaVencimiento string                           `json:"fecha_vencimiento,omitempty"`
	Detalles         []DetallePedidoProveedorResponse `json:"detalles,omitempty"`
	Eliminado        bool                             `json:"eliminado,omitempty"`
}

func fechaISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func PedidoCotizacionResponseDe(p *model.PedidoDeCotizacion) PedidoCotizacionResponse {
	resp := PedidoCotizacionResponse{
		ID:               p.ID.String(),
		ClienteID:        p.ClienteID.String(),
		Status:           p.Status,
		FechaVencimiento: fechaISO(p.FechaVencimiento),
		Eliminado:        p.DeletedAt.Valid,
	}
	if p.Cliente != nil {
		c := ClienteResponseDe(p.Cliente)
		resp.Cliente = &c
	}
	for _, v := range p.Solpeds {
		resp.SolpedIDs = append(resp.SolpedIDs, v.SolpedID.String())
	}
	return resp
}

func PedidosCotizacionResponseDe(pedidos []model.PedidoDeCotizacion) []PedidoCotizacionResponse {
	out := make([]PedidoCotizacionResponse, 0, len(pedidos))
	for i := range pedidos {
		out = append(out, PedidoCotizacionResponseDe(&pedidos[i]))
	}
	return out
}

func PedidoCotizacionProveedorResponseDe(p *model.PedidoCotizacionProveedor) PedidoCotizacionProveedorResponse {
	resp := PedidoCotizacionProveedorResponse{
		ID:               p.ID.String(),
		ProveedorID:      p.ProveedorID.String(),
		Status:           p.Status,
		FechaVencimiento: fechaISO(p.FechaVencimiento),
		Eliminado:        p.DeletedAt.Valid,
	}
	if p.Proveedor != nil {
		pr := ProveedorResponseDe(p.Proveedor)
		resp.Proveedor = &pr
	}
	for i := range p.Detalles {
		d := &p.Detalles[i]
		dr := DetallePedidoProveedorResponse{
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

func PedidosCotizacionProveedorResponseDe(pedidos []model.PedidoCotizacionProveedor) []PedidoCotizacionProveedorResponse {
	out := make([]PedidoCotizacionProveedorResponse, 0, len(pedidos))
	for i := range pedidos {
		out = append(out, PedidoCotizacionProveedorResponseDe(&pedidos[i]))
	}
	return out
}
