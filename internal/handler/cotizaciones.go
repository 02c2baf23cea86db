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

type CotizacionesHandler struct{ svc service.CotizacionService }

func NewCotizacionesHandler(svc service.CotizacionService) *CotizacionesHandler {
	return &CotizacionesHandler{svc: svc}
}

// ─── Supplier quotes ─────────────────────────────────────────────────────────

func (h *CotizacionesHandler) CrearProveedor(c *gin.Context) {
	var req dto.CrearCotizacionProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedorID, _ := uuid.Parse(req.ProveedorID)
	cot := &model.CotizacionProveedor{
		ProveedorID:      proveedorID,
		FechaVencimiento: parseFecha(req.FechaVencimiento),
	}
	if req.PedidoCotizacionProveedorID != nil {
		if pedidoID, err := uuid.Parse(*req.PedidoCotizacionProveedorID); err == nil {
			cot.PedidoCotizacionProveedorID = &pedidoID
		}
	}
	if err := h.svc.CrearProveedor(c.Request.Context(), middleware.ActorID(c), cot); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CotizacionProveedorResponseDe(cot))
}

func (h *CotizacionesHandler) ObtenerProveedor(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	cot, err := h.svc.ObtenerProveedor(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CotizacionProveedorResponseDe(cot))
}

func (h *CotizacionesHandler) ListarProveedor(c *gin.Context) {
	f := repository.CotizacionProveedorFiltro{
		Status:            c.Query("status"),
		ProveedorID:       queryUUID(c, "proveedor_id"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
	cotizaciones, total, err := h.svc.ListarProveedor(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.CotizacionesProveedorResponseDe(cotizaciones)})
}

func (h *CotizacionesHandler) AgregarDetalleProveedor(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarDetalleCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	articuloID, _ := uuid.Parse(req.ArticuloID)
	d := &model.DetalleCotizacionProveedor{
		CotizacionProveedorID: id,
		ArticuloID:            articuloID,
		CantidadValor:         req.CantidadValor,
		CantidadUnidad:        req.CantidadUnidad,
		PrecioUnitarioValor:   req.PrecioUnitarioValor,
		PrecioUnitarioMoneda:  req.PrecioUnitarioMoneda,
	}
	if err := h.svc.AgregarDetalleProveedor(c.Request.Context(), middleware.ActorID(c), d); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.DetalleCotizacionProveedorResponseDe(d))
}

// ─── Final quotations ────────────────────────────────────────────────────────

func (h *CotizacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	clienteID, _ := uuid.Parse(req.ClienteID)
	cot := &model.Cotizacion{
		ClienteID:        clienteID,
		Margen:           req.Margen,
		FechaVencimiento: parseFecha(req.FechaVencimiento),
	}
	if err := h.svc.Crear(c.Request.Context(), middleware.ActorID(c), cot); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CotizacionResponseDe(cot))
}

func (h *CotizacionesHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	cot, err := h.svc.Obtener(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CotizacionResponseDe(cot))
}

func (h *CotizacionesHandler) Listar(c *gin.Context) {
	f := repository.CotizacionFiltro{
		Status:            c.Query("status"),
		ClienteID:         queryUUID(c, "cliente_id"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
	cotizaciones, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.CotizacionesResponseDe(cotizaciones)})
}

func (h *CotizacionesHandler) VincularSolped(c *gin.Context) {
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

func (h *CotizacionesHandler) SeleccionarGanador(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.SeleccionarGanadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	detalleID, _ := uuid.Parse(req.DetalleCotizacionProveedorID)
	if err := h.svc.SeleccionarGanador(c.Request.Context(), middleware.ActorID(c), id, detalleID); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *CotizacionesHandler) ListarGanadores(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	ganadores, err := h.svc.ListarGanadores(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GanadoresResponseDe(ganadores))
}
