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

type SolpedsHandler struct{ svc service.SolpedService }

func NewSolpedsHandler(svc service.SolpedService) *SolpedsHandler {
	return &SolpedsHandler{svc: svc}
}

func (h *SolpedsHandler) Crear(c *gin.Context) {
	s, err := h.svc.Crear(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SolpedResponseDe(s))
}

func (h *SolpedsHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	s, err := h.svc.Obtener(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SolpedResponseDe(s))
}

func (h *SolpedsHandler) Listar(c *gin.Context) {
	f := repository.SolpedFiltro{
		Status:            c.Query("status"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
	solpeds, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.SolpedsResponseDe(solpeds)})
}

func (h *SolpedsHandler) AgregarDetalle(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarDetalleSolpedRequest
	if !bindAndValidate(c, &req) {
		return
	}
	articuloID, _ := uuid.Parse(req.ArticuloID)
	d := &model.DetalleSolped{
		SolpedID:       id,
		ArticuloID:     articuloID,
		CantidadValor:  req.CantidadValor,
		CantidadUnidad: req.CantidadUnidad,
	}
	if err := h.svc.AgregarDetalle(c.Request.Context(), middleware.ActorID(c), d); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.DetalleSolpedResponseDe(d))
}

func (h *SolpedsHandler) QuitarDetalle(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	detalleID, ok := parseUUID(c, "detalleId")
	if !ok {
		return
	}
	if err := h.svc.QuitarDetalle(c.Request.Context(), middleware.ActorID(c), id, detalleID); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
