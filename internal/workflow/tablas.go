package workflow

import (
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
)

// Transition tables, one per document type. These encode business policy:
// change them here, not in the services that evaluate them.

// TablaSolped: BORRADOR → ENVIADA → {APROBADA, RECHAZADA};
// APROBADA → EN_PROCESO → COMPLETADA.
var TablaSolped = Tabla{
	model.EstadoSolpedBorrador:   {model.EstadoSolpedEnviada},
	model.EstadoSolpedEnviada:    {model.EstadoSolpedAprobada, model.EstadoSolpedRechazada},
	model.EstadoSolpedAprobada:   {model.EstadoSolpedEnProceso},
	model.EstadoSolpedEnProceso:  {model.EstadoSolpedCompletada},
	model.EstadoSolpedRechazada:  {},
	model.EstadoSolpedCompletada: {},
}

// TablaPedidoCotizacion covers both PedidoDeCotizacion and
// PedidoCotizacionProveedor (same estado vocabulary). Any non-terminal
// estado may expire or be cancelled.
var TablaPedidoCotizacion = Tabla{
	model.EstadoPedidoBorrador: {
		model.EstadoPedidoEnviado, model.EstadoPedidoVencido, model.EstadoPedidoCancelado,
	},
	model.EstadoPedidoEnviado: {
		model.EstadoPedidoPendienteRespuesta, model.EstadoPedidoRespondido,
		model.EstadoPedidoVencido, model.EstadoPedidoCancelado,
	},
	model.EstadoPedidoPendienteRespuesta: {
		model.EstadoPedidoRespondido, model.EstadoPedidoVencido, model.EstadoPedidoCancelado,
	},
	model.EstadoPedidoRespondido: {},
	model.EstadoPedidoVencido:    {},
	model.EstadoPedidoCancelado:  {},
}

// TablaCotizacion covers both Cotizacion and CotizacionProveedor:
// BORRADOR → ENVIADA → RECIBIDA → EVALUADA → {ACEPTADA, RECHAZADA};
// any non-terminal estado may move to VENCIDA once expired.
var TablaCotizacion = Tabla{
	model.EstadoCotizacionBorrador: {model.EstadoCotizacionEnviada, model.EstadoCotizacionVencida},
	model.EstadoCotizacionEnviada:  {model.EstadoCotizacionRecibida, model.EstadoCotizacionVencida},
	model.EstadoCotizacionRecibida: {model.EstadoCotizacionEvaluada, model.EstadoCotizacionVencida},
	model.EstadoCotizacionEvaluada: {
		model.EstadoCotizacionAceptada, model.EstadoCotizacionRechazada, model.EstadoCotizacionVencida,
	},
	model.EstadoCotizacionAceptada:  {},
	model.EstadoCotizacionRechazada: {},
	model.EstadoCotizacionVencida:   {},
}

// TablaOrdenCompra covers both supplier and client orders. Any non-terminal
// estado may be cancelled.
var TablaOrdenCompra = Tabla{
	model.EstadoOrdenBorrador:   {model.EstadoOrdenEnviada, model.EstadoOrdenCancelada},
	model.EstadoOrdenEnviada:    {model.EstadoOrdenConfirmada, model.EstadoOrdenCancelada},
	model.EstadoOrdenConfirmada: {model.EstadoOrdenEnProceso, model.EstadoOrdenCancelada},
	model.EstadoOrdenEnProceso:  {model.EstadoOrdenCompletada, model.EstadoOrdenCancelada},
	model.EstadoOrdenCompletada: {},
	model.EstadoOrdenCancelada:  {},
}

var TablaRemito = Tabla{
	model.EstadoRemitoBorrador:   {model.EstadoRemitoEnviado},
	model.EstadoRemitoEnviado:    {model.EstadoRemitoEnTransito},
	model.EstadoRemitoEnTransito: {model.EstadoRemitoEntregado, model.EstadoRemitoDevuelto},
	model.EstadoRemitoEntregado:  {},
	model.EstadoRemitoDevuelto:   {},
}

var TablaEnvio = Tabla{
	model.EstadoEnvioPreparando: {model.EstadoEnvioEnTransito},
	model.EstadoEnvioEnTransito: {
		model.EstadoEnvioEntregado, model.EstadoEnvioDemorado,
		model.EstadoEnvioDevuelto, model.EstadoEnvioPerdido,
	},
	model.EstadoEnvioDemorado: {
		model.EstadoEnvioEnTransito, model.EstadoEnvioEntregado,
		model.EstadoEnvioDevuelto, model.EstadoEnvioPerdido,
	},
	model.EstadoEnvioEntregado: {},
	model.EstadoEnvioDevuelto:  {},
	model.EstadoEnvioPerdido:   {},
}

// TablaEntidad governs the status of Proveedor and Cliente master records.
// No estado is terminal: a suspended or inactive party can always come back.
var TablaEntidad = Tabla{
	model.EstadoEntidadPendienteAprobacion: {model.EstadoEntidadActivo, model.EstadoEntidadInactivo},
	model.EstadoEntidadActivo:              {model.EstadoEntidadInactivo, model.EstadoEntidadSuspendido},
	model.EstadoEntidadSuspendido:          {model.EstadoEntidadActivo, model.EstadoEntidadInactivo},
	model.EstadoEntidadInactivo:            {model.EstadoEntidadActivo},
}

// TablaArticulo adds the DESCONTINUADO terminal to the master-record graph.
var TablaArticulo = Tabla{
	model.EstadoEntidadPendienteAprobacion: {model.EstadoEntidadActivo, model.EstadoEntidadInactivo},
	model.EstadoEntidadActivo: {
		model.EstadoEntidadInactivo, model.EstadoEntidadSuspendido, model.EstadoArticuloDescontinuado,
	},
	model.EstadoEntidadSuspendido: {
		model.EstadoEntidadActivo, model.EstadoEntidadInactivo, model.EstadoArticuloDescontinuado,
	},
	model.EstadoEntidadInactivo:       {model.EstadoEntidadActivo, model.EstadoArticuloDescontinuado},
	model.EstadoArticuloDescontinuado: {},
}

// PorEntidad resolves the transition table for a workflow-managed entity
// type. Entity types absent here (despachantes, formas de entrega, line
// items, junctions) have no status field and accept no transitions.
var PorEntidad = map[string]Tabla{
	model.EntidadProveedor:                 TablaEntidad,
	model.EntidadCliente:                   TablaEntidad,
	model.EntidadArticulo:                  TablaArticulo,
	model.EntidadSolped:                    TablaSolped,
	model.EntidadPedidoCotizacion:          TablaPedidoCotizacion,
	model.EntidadPedidoCotizacionProveedor: TablaPedidoCotizacion,
	model.EntidadCotizacion:                TablaCotizacion,
	model.EntidadCotizacionProveedor:       TablaCotizacion,
	model.EntidadOrdenCompraProveedor:      TablaOrdenCompra,
	model.EntidadOrdenCompraCliente:        TablaOrdenCompra,
	model.EntidadRemito:                    TablaRemito,
	model.EntidadEnvio:                     TablaEnvio,
}

// EstadoVencido returns the expired estado for an expirable document type,
// or false for types that do not expire.
func EstadoVencido(entidadTipo string) (string, bool) {
	switch entidadTipo {
	case model.EntidadPedidoCotizacion, model.EntidadPedidoCotizacionProveedor:
		return model.EstadoPedidoVencido, true
	case model.EntidadCotizacion, model.EntidadCotizacionProveedor:
		return model.EstadoCotizacionVencida, true
	default:
		return "", false
	}
}

// EntidadesExpirables lists the document types swept by the expiration cron.
var EntidadesExpirables = []string{
	model.EntidadPedidoCotizacion,
	model.EntidadPedidoCotizacionProveedor,
	model.EntidadCotizacion,
	model.EntidadCotizacionProveedor,
}
