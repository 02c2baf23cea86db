package handler

import (
	"net/http"

	"github.com/Andreskammerath/BKK-procurement-system/internal/dto"
	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func aplicarCliente(c *model.Cliente, req *dto.CrearClienteRequest) {
	c.RazonSocial = req.RazonSocial
	c.Localizacion = req.Localizacion
	c.CUIT = req.CUIT
	c.WebPage = req.WebPage
	c.Telefono = req.Telefono
	c.Email = req.Email
	c.ContactoNombre = req.ContactoNombre
	c.ContactoTelefono = req.ContactoTelefono
	c.ContactoEmail = req.ContactoEmail
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente := &model.Cliente{}
	aplicarCliente(cliente, &req)
	if err := h.svc.Crear(c.Request.Context(), middleware.ActorID(c), cliente); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ClienteResponseDe(cliente))
}

func (h *ClientesHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	cliente, err := h.svc.Obtener(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ClienteResponseDe(cliente))
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	f := repository.ClienteFiltro{
		Status:            c.Query("status"),
		RazonSocial:       c.Query("razon_social"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
	clientes, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.ClientesResponseDe(clientes)})
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.ActorID(c)
	cliente, err := h.svc.Obtener(c.Request.Context(), actor, id, false)
	if err != nil {
		responderError(c, err)
		return
	}
	aplicarCliente(cliente, &req)
	if err := h.svc.Actualizar(c.Request.Context(), actor, cliente); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ClienteResponseDe(cliente))
}
