package dto

import (
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearOrdenCompraProveedorRequest struct {
	ProveedorID          string  `json:"proveedor_id"           validate:"required,uuid"`
	NumeroOrden          *string `json:"numero_orden"           validate:"omitempty,max=50"`
	FechaEntregaEstimada string  `json:"fecha_entrega_estimada" validate:"omitempty,datetime=2006-01-02"`
}

type CrearOrdenCompraClienteRequest struct {
	ClienteID            string  `json:"cliente_id"             validate:"required,uuid"`
	NumeroOrden          *string `json:"numero_orden"           validate:"omitempty,max=50"`
	FechaEntregaEstimada string  `json:"fecha_entrega_estimada" validate:"omitempty,datetime=2006-01-02"`
}

type AgregarDetalleOrdenRequest struct {
	ArticuloID     string          `json:"articulo_id"     validate:"required,uuid"`
	CantidadValor  decimal.Decimal `json:"cantidad_valor"  validate:"required"`
	CantidadUnidad string          `json:"cantidad_unidad" validate:"required,oneof=UNIDAD CAJA PALLET KG LITRO METRO M2 M3"`
	PrecioValor    decimal.Decimal `json:"precio_valor"    validate:"required"`
	PrecioMoneda   string          `json:"precio_moneda"   validate:"required,len=3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleOrdenResponse struct {
	ID             string          `json:"id"`
	ArticuloID     string          `json:"articulo_id"`
	Descripcion    string          `json:"descripcion,omitempty"`
	CantidadValor  decimal.Decimal `json:"cantidad_valor"`
	CantidadUnidad string          `json:"cantidad_unidad"`
	PrecioValor    decimal.Decimal `json:"precio_valor"`
	PrecioMoneda   string          `json:"precio_moneda"`
}

type OrdenCompraProveedorResponse struct {
	ID                   string                 `json:"id"`
	ProveedorID          string                 `json:"proveedor_id"`
	Proveedor            *ProveedorResponse     `json:"proveedor,omitempty"`
	NumeroOrden          *string                `json:"numero_orden,omitempty"`
	Status               string                 `json:"status"`
	FechaEntregaEstimada string                 `json:"fecha_entrega_estimada,omitempty"`
	Detalles             []DetalleOrdenResponse `json:"detalles,omitempty"`
	Eliminado            bool                   `json:"eliminado,omitempty"`
}

type OrdenCompraClienteResponse struct {
	ID                   string                 `json:"id"`
	ClienteID            string                 `json:"cliente_id"`
	Cliente              *ClienteResponse       `json:"cliente,omitempty"`
	NumeroOrden          *string                `json:"numero_orden,omitempty"`
	Status               string                 `json:"status"`
	FechaEntregaEstimada string                 `json:"fecha_entrega_estimada,omitempty"`
	Detalles             []DetalleOrdenResponse `json:"detalles,omitempty"`
	Eliminado            bool                   `json:"eliminado,omitempty"`
}

func OrdenCompraProveedorResponseDe(o *model.OrdenCompraProveedor) OrdenCompraProveedorResponse {
	resp := OrdenCompraProveedorResponse{
		ID:                   o.ID.String(),
		ProveedorID:          o.ProveedorID.String(),
		NumeroOrden:          o.NumeroOrden,
		Status:               o.Status,
		FechaEntregaEstimada: fechaISO(o.FechaEntregaEstimada),
		Eliminado:            o.DeletedAt.Valid,
	}
	if o.Proveedor != nil {
		p := ProveedorResponseDe(o.Proveedor)
		resp.Proveedor = &p
	}
	for i := range o.Detalles {
		d := &o.Detalles[i]
		dr := DetalleOrdenResponse{
			ID:             d.ID.String(),
			ArticuloID:     d.ArticuloID.String(),
			CantidadValor:  d.CantidadValor,
			CantidadUnidad: d.CantidadUnidad,
			PrecioValor:    d.PrecioUnitarioValor,
			PrecioMoneda:   d.PrecioUnitarioMoneda,
		}
		if d.Articulo != nil {
			dr.Descripcion = d.Articulo.Descripcion
		}
		resp.Detalles = append(resp.Detalles, dr)
	}
	return resp
}

func OrdenesCompraProveedorResponseDe(ordenes []model.OrdenCompraProveedor) []OrdenCompraProveedorResponse {
	out := make([]OrdenCompraProveedorResponse, 0, len(ordenes))
	for i := range ordenes {
		out = append(out, OrdenCompraProveedorResponseDe(&ordenes[i]))
	}
	return out
}

func OrdenCompraClienteResponseDe(o *model.OrdenCompraCliente) OrdenCompraClienteResponse {
	resp := OrdenCompraClienteResponse{
		ID:                   o.ID.String(),
		ClienteID:            o.ClienteID.String(),
		NumeroOrden:          o.NumeroOrden,
		Status:               o.Status,
		FechaEntregaEstimada: fechaISO(o.FechaEntregaEstimada),
		Eliminado:            o.DeletedAt.Valid,
	}
	if o.Cliente != nil {
		c := ClienteResponseDe(o.Cliente)
		resp.Cliente = &c
	}
	for i := range o.Detalles {
		d := &o.Detalles[i]
		dr := DetalleOrdenResponse{
			ID:             d.ID.String(),
			ArticuloID:     d.ArticuloID.String(),
			CantidadValor:  d.CantidadValor,
			CantidadUnidad: d.CantidadUnidad,
			PrecioValor:    d.PrecioValor,
			PrecioMoneda:   d.PrecioMoneda,
		}
		if d.Articulo != nil {
			dr.Descripcion = d.Articulo.Descripcion
		}
		resp.Detalles = append(resp.Detalles, dr)
	}
	return resp
}

func OrdenesCompraClienteResponseDe(ordenes []model.OrdenCompraCliente) []OrdenCompraClienteResponse {
	out := make([]OrdenCompraClienteResponse, 0, len(ordenes))
	for i := range ordenes {
		out = append(out, OrdenCompraClienteResponseDe(&ordenes[i]))
	}
	return out
}
