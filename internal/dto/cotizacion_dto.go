package dto

import (
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCotizacionProveedorRequest struct {
	ProveedorID                 string  `json:"proveedor_id"                   validate:"required,uuid"`
	PedidoCotizacionProveedorID *string `json:"pedido_cotizacion_proveedor_id" validate:"omitempty,uuid"`
	FechaVencimiento            string  `json:"fecha_vencimiento"              validate:"omitempty,datetime=2006-01-02"`
}

type AgregarDetalleCotizacionRequest struct {
	ArticuloID           string          `json:"articulo_id"            validate:"required,uuid"`
	CantidadValor        decimal.Decimal `json:"cantidad_valor"         validate:"required"`
	CantidadUnidad       string          `json:"cantidad_unidad"        validate:"required,oneof=UNIDAD CAJA PALLET KG LITRO METRO M2 M3"`
	PrecioUnitarioValor  decimal.Decimal `json:"precio_unitario_valor"  validate:"required"`
	PrecioUnitarioMoneda string          `json:"precio_unitario_moneda" validate:"required,len=3"`
}

type CrearCotizacionRequest struct {
	ClienteID        string           `json:"cliente_id"        validate:"required,uuid"`
	Margen           *decimal.Decimal `json:"margen"`
	FechaVencimiento string           `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
}

type SeleccionarGanadorRequest struct {
	DetalleCotizacionProveedorID string `json:"detalle_cotizacion_proveedor_id" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleCotizacionProveedorResponse struct {
	ID                   string          `json:"id"`
	ArticuloID           string          `json:"articulo_id"`
	Descripcion          string          `json:"descripcion,omitempty"`
	CantidadValor        decimal.Decimal `json:"cantidad_valor"`
	CantidadUnidad       string          `json:"cantidad_unidad"`
	PrecioUnitarioValor  decimal.Decimal `json:"precio_unitario_valor"`
	PrecioUnitarioMoneda string          `json:"precio_unitario_moneda"`
}

type CotizacionProveedorResponse struct {
	ID                          string                               `json:"id"`
	ProveedorID                 string                               `json:"proveedor_id"`
	Proveedor                   *ProveedorResponse                   `json:"proveedor,omitempty"`
	PedidoCotizacionProveedorID *string                              `json:"pedido_cotizacion_proveedor_id,omitempty"`
	Status                      string                               `json:"status"`
	FechaVencimiento            string                               `json:"fecha_vencimiento,omitempty"`
	Detalles                    []DetalleCotizacionProveedorResponse `json:"detalles,omitempty"`
	Eliminado                   bool                                 `json:"eliminado,omitempty"`
}

type GanadorResponse struct {
	ID                           string                              `json:"id"`
	DetalleCotizacionProveedorID string                              `json:"detalle_cotizacion_proveedor_id"`
	Detalle                      *DetalleCotizacionProveedorResponse `json:"detalle,omitempty"`
}

type CotizacionResponse struct {
	ID               string            `json:"id"`
	ClienteID        string            `json:"cliente_id"`
	Cliente          *ClienteResponse  `json:"cliente,omitempty"`
	Margen           *decimal.Decimal  `json:"margen,omitempty"`
	Status           string            `json:"status"`
	FechaVencimiento string            `json:"fecha_vencimiento,omitempty"`
	SolpedIDs        []string          `json:"solped_ids,omitempty"`
	Ganadores        []GanadorResponse `json:"ganadores,omitempty"`
	Eliminado        bool              `json:"eliminado,omitempty"`
}

func DetalleCotizacionProveedorResponseDe(d *model.DetalleCotizacionProveedor) DetalleCotizacionProveedorResponse {
	resp := DetalleCotizacionProveedorResponse{
		ID:                   d.ID.String(),
		ArticuloID:           d.ArticuloID.String(),
		CantidadValor:        d.CantidadValor,
		CantidadUnidad:       d.CantidadUnidad,
		PrecioUnitarioValor:  d.PrecioUnitarioValor,
		PrecioUnitarioMoneda: d.PrecioUnitarioMoneda,
	}
	if d.Articulo != nil {
		resp.Descripcion = d.Articulo.Descripcion
	}
	return resp
}

func CotizacionProveedorResponseDe(c *model.CotizacionProveedor) CotizacionProveedorResponse {
	resp := CotizacionProveedorResponse{
		ID:               c.ID.String(),
		ProveedorID:      c.ProveedorID.String(),
		Status:           c.Status,
		FechaVencimiento: fechaISO(c.FechaVencimiento),
		Eliminado:        c.DeletedAt.Valid,
	}
	if c.PedidoCotizacionProveedorID != nil {
		s := c.PedidoCotizacionProveedorID.String()
		resp.PedidoCotizacionProveedorID = &s
	}
	if c.Proveedor != nil {
		p := ProveedorResponseDe(c.Proveedor)
		resp.Proveedor = &p
	}
	for i := range c.Detalles {
		resp.Detalles = append(resp.Detalles, DetalleCotizacionProveedorResponseDe(&c.Detalles[i]))
	}
	return resp
}

func CotizacionesProveedorResponseDe(cotizaciones []model.CotizacionProveedor) []CotizacionProveedorResponse {
	out := make([]CotizacionProveedorResponse, 0, len(cotizaciones))
	for i := range cotizaciones {
		out = append(out, CotizacionProveedorResponseDe(&cotizaciones[i]))
	}
	return out
}

func GanadorResponseDe(g *model.CotizacionGanador) GanadorResponse {
	resp := GanadorResponse{
		ID:                           g.ID.String(),
		DetalleCotizacionProveedorID: g.DetalleCotizacionProveedorID.String(),
	}
	if g.DetalleCotizacionProveedor != nil {
		d := DetalleCotizacionProveedorResponseDe(g.DetalleCotizacionProveedor)
		resp.Detalle = &d
	}
	return resp
}

func GanadoresResponseDe(ganadores []model.CotizacionGanador) []GanadorResponse {
	out := make([]GanadorResponse, 0, len(ganadores))
	for i := range ganadores {
		out = append(out, GanadorResponseDe(&ganadores[i]))
	}
	return out
}

func CotizacionResponseDe(c *model.Cotizacion) CotizacionResponse {
	resp := CotizacionResponse{
		ID:               c.ID.String(),
		ClienteID:        c.ClienteID.String(),
		Margen:           c.Margen,
		Status:           c.Status,
		FechaVencimiento: fechaISO(c.FechaVencimiento),
		Eliminado:        c.DeletedAt.Valid,
	}
	if c.Cliente != nil {
		cl := ClienteResponseDe(c.Cliente)
		resp.Cliente = &cl
	}
	for _, v := range c.Solpeds {
		resp.SolpedIDs = append(resp.SolpedIDs, v.SolpedID.String())
	}
	for i := range c.Ganadores {
		resp.Ganadores = append(resp.Ganadores, GanadorResponseDe(&c.Ganadores[i]))
	}
	return resp
}

func CotizacionesResponseDe(cotizaciones []model.Cotizacion) []CotizacionResponse {
	out := make([]CotizacionResponse, 0, len(cotizaciones))
	for i := range cotizaciones {
		out = append(out, CotizacionResponseDe(&cotizaciones[i]))
	}
	return out
}
