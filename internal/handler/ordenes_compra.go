package handler

import (
	"net/http"

	"github.com/Andreskammerath/BKK-procurement-system/internal/config"
	"github.com/Andreskammerath/BKK-procurement-system/internal/dto"
	"github.com/Andreskammerath/BKK-procurement-system/internal/infra"
	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdenesCompraHandler struct {
	svc service.OrdenCompraService
	cfg *config.Config
}

func NewOrdenesCompraHandler(svc service.OrdenCompraService, cfg *config.Config) *OrdenesCompraHandler {
	return &OrdenesCompraHandler{svc: svc, cfg: cfg}
}

// ─── Supplier-side orders ────────────────────────────────────────────────────

func (h *OrdenesCompraHandler) CrearProveedor(c *gin.Context) {
	var req dto.CrearOrdenCompraProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedorID, _ := uuid.Parse(req.ProveedorID)
	o := &model.OrdenCompraProveedor{
		ProveedorID:          proveedorID,
		NumeroOrden:          req.NumeroOrden,
		FechaEntregaEstimada: parseFecha(req.FechaEntregaEstimada),
	}
	if err := h.svc.CrearProveedor(c.Request.Context(), middleware.ActorID(c), o); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OrdenCompraProveedorResponseDe(o))
}

func (h *OrdenesCompraHandler) ObtenerProveedor(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	o, err := h.svc.ObtenerProveedor(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrdenCompraProveedorResponseDe(o))
}

func filtroOrdenes(c *gin.Context, contraparte string) repository.OrdenCompraFiltro {
	return repository.OrdenCompraFiltro{
		Status:            c.Query("status"),
		ContraparteID:     queryUUID(c, contraparte),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
}

func (h *OrdenesCompraHandler) ListarProveedor(c *gin.Context) {
	ordenes, total, err := h.svc.ListarProveedor(c.Request.Context(), filtroOrdenes(c, "proveedor_id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.OrdenesCompraProveedorResponseDe(ordenes)})
}

func (h *OrdenesCompraHandler) AgregarDetalleProveedor(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarDetalleOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	articuloID, _ := uuid.Parse(req.ArticuloID)
	d := &model.DetalleOrdenCompraProveedor{
		OrdenCompraProveedorID: id,
		ArticuloID:             articuloID,
		CantidadValor:          req.CantidadValor,
		CantidadUnidad:         req.CantidadUnidad,
		PrecioUnitarioValor:    req.PrecioValor,
		PrecioUnitarioMoneda:   req.PrecioMoneda,
	}
	if err := h.svc.AgregarDetalleProveedor(c.Request.Context(), middleware.ActorID(c), d); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": d.ID})
}

// PDFProveedor renders the purchase order as a PDF document.
func (h *OrdenesCompraHandler) PDFProveedor(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	o, err := h.svc.ObtenerProveedor(c.Request.Context(), middleware.ActorID(c), id, false)
	if err != nil {
		responderError(c, err)
		return
	}
	ruta, err := infra.GenerarOrdenCompraPDF(o, h.cfg.PDFStoragePath)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(ruta)
}

// ─── Client-side orders ──────────────────────────────────────────────────────

func (h *OrdenesCompraHandler) CrearCliente(c *gin.Context) {
	var req dto.CrearOrdenCompraClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	clienteID, _ := uuid.Parse(req.ClienteID)
	o := &model.OrdenCompraCliente{
		ClienteID:            clienteID,
		NumeroOrden:          req.NumeroOrden,
		FechaEntregaEstimada: parseFecha(req.FechaEntregaEstimada),
	}
	if err := h.svc.CrearCliente(c.Request.Context(), middleware.ActorID(c), o); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OrdenCompraClienteResponseDe(o))
}

func (h *OrdenesCompraHandler) ObtenerCliente(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	o, err := h.svc.ObtenerCliente(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrdenCompraClienteResponseDe(o))
}

func (h *OrdenesCompraHandler) ListarCliente(c *gin.Context) {
	ordenes, total, err := h.svc.ListarCliente(c.Request.Context(), filtroOrdenes(c, "cliente_id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.OrdenesCompraClienteResponseDe(ordenes)})
}

func (h *OrdenesCompraHandler) AgregarDetalleCliente(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarDetalleOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	articuloID, _ := uuid.Parse(req.ArticuloID)
	d := &model.DetalleOrdenCompraCliente{
		OrdenCompraClienteID: id,
		ArticuloID:           articuloID,
		CantidadValor:        req.CantidadValor,
		CantidadUnidad:       req.CantidadUnidad,
		PrecioValor:          req.PrecioValor,
		PrecioMoneda:         req.PrecioMoneda,
	}
	if err := h.svc.AgregarDetalleCliente(c.Request.Context(), middleware.ActorID(c), d); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": d.ID})
}
