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

type ComunicacionesHandler struct{ svc service.ComunicacionService }

func NewComunicacionesHandler(svc service.ComunicacionService) *ComunicacionesHandler {
	return &ComunicacionesHandler{svc: svc}
}

func (h *ComunicacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearComunicacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	com := &model.Comunicacion{
		Contenido:   req.Contenido,
		EntidadTipo: req.EntidadTipo,
	}
	if req.EntidadID != nil {
		if id, err := uuid.Parse(*req.EntidadID); err == nil {
			com.EntidadID = &id
		}
	}
	if err := h.svc.Crear(c.Request.Context(), middleware.ActorID(c), com); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ComunicacionResponseDe(com))
}

func (h *ComunicacionesHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	com, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ComunicacionResponseDe(com))
}

func (h *ComunicacionesHandler) Listar(c *gin.Context) {
	f := repository.ComunicacionFiltro{
		EntidadTipo: c.Query("entidad_tipo"),
		EntidadID:   queryUUID(c, "entidad_id"),
		UsuarioID:   queryUUID(c, "usuario_id"),
		Limit:       queryInt(c, "limit", 0),
		Offset:      queryInt(c, "offset", 0),
	}
	comunicaciones, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.ComunicacionesResponseDe(comunicaciones)})
}
