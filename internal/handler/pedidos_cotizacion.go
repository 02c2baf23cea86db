package handler

import (
	"net/http"

	"github.com/Andreskammerath/BKK-procurement-system/internal/dto"
	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidosCotizacionHandler struct {
	svc service.PedidoCotizacionService
}

func NewPedidosCotizacionHandler(svc service.PedidoCotizacionService) *PedidosCotizacionHandler {
	return &PedidosCotizacionHandler{svc: svc}
}

func (h *PedidosCotizacionHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	clienteID, _ := uuid.Parse(req.ClienteID)
	p := &model.PedidoDeCotizacion{
		ClienteID:        clienteID,
		FechaVencimiento: parseFecha(req.FechaVencimiento),
	}
	if err := h.svc.Crear(c.Request.Context(), middleware.ActorID(c), p); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.PedidoCotizacionResponseDe(p))
}

func (h *PedidosCotizacionHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Obtener(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PedidoCotizacionResponseDe(p))
}

func (h *PedidosCotizacionHandler) Listar(c *gin.Context) {
	f := repository.PedidoCotizacionFiltro{
		Status:            c.Query("status"),
		ClienteID:         queryUUID(c, "cliente_id"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
	pedidos, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.PedidosCotizacionResponseDe(pedidos)})
}

func (h *PedidosCotizacionHandler) VincularSolped(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.VincularSolpedRequest
	if !bindAndValidate(c, &req) {
		return
	}
	solpedID, _ := uuid.Parse(req.SolpedID)
	if err := h.svc.VincularSolped(c.Request.Context(), middleware.ActorID(c), id, solpedID); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PedidosCotizacionHandler) CrearProveedor(c *gin.Context) {
	var req dto.CrearPedidoCotizacionProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedorID, _ := uuid.Parse(req.ProveedorID)
	p := &model.PedidoCotizacionProveedor{
		ProveedorID:      proveedorID,
		FechaVencimiento: parseFecha(req.FechaVencimiento),
	}
	if err := h.svc.CrearProveedor(c.Request.Context(), middleware.ActorID(c), p); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.PedidoCotizacionProveedorResponseDe(p))
}

func (h *PedidosCotizacionHandler) ObtenerProveedor(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.ObtenerProveedor(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PedidoCotizacionProveedorResponseDe(p))
}

func (h *PedidosCotizacionHandler) ListarProveedor(c *gin.Context) {
	f := repository.PedidoCotizacionProveedorFiltro{
		Status:            c.Query("status"),
		ProveedorID:       queryUUID(c, "proveedor_id"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
	pedidos, total, err := h.svc.ListarProveedor(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.PedidosCotizacionProveedorResponseDe(pedidos)})
}

func (h *PedidosCotizacionHandler) AgregarDetalleProveedor(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarDetallePedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	articuloID, _ := uuid.Parse(req.ArticuloID)
	d := &model.DetallePedidoCotizacionProveedor{
		PedidoCotizacionProveedorID: id,
		ArticuloID:                  articuloID,
		CantidadValor:               req.CantidadValor,
		CantidadUnidad:              req.CantidadUnidad,
	}
	if err := h.svc.AgregarDetalleProveedor(c.Request.Context(), middleware.ActorID(c), d); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": d.ID})
}
