package handler

import (
	"net/http"

	"github.com/Andreskammerath/BKK-procurement-system/internal/dto"
	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"

	"github.com/gin-gonic/gin"
)

type DespachantesHandler struct{ svc service.DespachanteService }

func NewDespachantesHandler(svc service.DespachanteService) *DespachantesHandler {
	return &DespachantesHandler{svc: svc}
}

func aplicarDespachante(d *model.Despachante, req *dto.CrearDespachanteRequest) {
	d.RazonSocial = req.RazonSocial
	d.CUIT = req.CUIT
	d.Direccion = req.Direccion
	d.Telefono = req.Telefono
	d.TelefonoSecundario = req.TelefonoSecundario
	d.Email = req.Email
	d.EmailSecundario = req.EmailSecundario
	d.ContactoNombre = req.ContactoNombre
}

func (h *DespachantesHandler) Crear(c *gin.Context) {
	var req dto.CrearDespachanteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d := &model.Despachante{}
	aplicarDespachante(d, &req)
	if err := h.svc.Crear(c.Request.Context(), middleware.ActorID(c), d); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.DespachanteResponseDe(d))
}

func (h *DespachantesHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.Obtener(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DespachanteResponseDe(d))
}

func (h *DespachantesHandler) Listar(c *gin.Context) {
	despachantes, total, err := h.svc.Listar(c.Request.Context(),
		queryIncluirEliminados(c), queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.DespachantesResponseDe(despachantes)})
}

func (h *DespachantesHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarDespachanteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.ActorID(c)
	d, err := h.svc.Obtener(c.Request.Context(), actor, id, false)
	if err != nil {
		responderError(c, err)
		return
	}
	aplicarDespachante(d, &req)
	if err := h.svc.Actualizar(c.Request.Context(), actor, d); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DespachanteResponseDe(d))
}
