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

type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p := &model.Proveedor{
		RazonSocial:         req.RazonSocial,
		Localizacion:        req.Localizacion,
		CUIT:                req.CUIT,
		EsProveedorNacional: req.EsProveedorNacional,
	}
	if err := h.svc.Crear(c.Request.Context(), middleware.ActorID(c), p); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ProveedorResponseDe(p))
}

func (h *ProveedoresHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Obtener(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProveedorResponseDe(p))
}

func (h *ProveedoresHandler) Listar(c *gin.Context) {
	f := repository.ProveedorFiltro{
		Status:            c.Query("status"),
		RazonSocial:       c.Query("razon_social"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
	if s := c.Query("nacional"); s != "" {
		v := s == "true" || s == "1"
		f.Nacional = &v
	}
	proveedores, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.ProveedoresResponseDe(proveedores)})
}

func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.ActorID(c)
	p, err := h.svc.Obtener(c.Request.Context(), actor, id, false)
	if err != nil {
		responderError(c, err)
		return
	}
	p.RazonSocial = req.RazonSocial
	p.Localizacion = req.Localizacion
	p.CUIT = req.CUIT
	p.EsProveedorNacional = req.EsProveedorNacional
	if err := h.svc.Actualizar(c.Request.Context(), actor, p); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProveedorResponseDe(p))
}

func (h *ProveedoresHandler) CrearFormaEntrega(c *gin.Context) {
	var req dto.CrearFormaEntregaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	fe := &model.FormaDeEntrega{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := h.svc.CrearFormaEntrega(c.Request.Context(), middleware.ActorID(c), fe); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FormaEntregaResponseDe(fe))
}

func (h *ProveedoresHandler) ListarFormasEntrega(c *gin.Context) {
	formas, err := h.svc.ListarFormasEntrega(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	items := make([]dto.FormaEntregaResponse, 0, len(formas))
	for i := range formas {
		items = append(items, dto.FormaEntregaResponseDe(&formas[i]))
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProveedoresHandler) VincularFormaEntrega(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.VincularFormaEntregaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	formaID, _ := uuid.Parse(req.FormaEntregaID)
	if err := h.svc.VincularFormaEntrega(c.Request.Context(), middleware.ActorID(c), id, formaID); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
