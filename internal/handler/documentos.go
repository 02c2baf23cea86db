package handler

import (
	"net/http"

	"github.com/Andreskammerath/BKK-procurement-system/internal/dto"
	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentosHandler exposes the operations shared by every document kind:
// status transitions, successor listing, soft delete and restore. Each route
// group binds the handlers with its own entidad tag.
type DocumentosHandler struct {
	transiciones service.TransicionService
	bajas        service.BajaService
}

func NewDocumentosHandler(transiciones service.TransicionService, bajas service.BajaService) *DocumentosHandler {
	return &DocumentosHandler{transiciones: transiciones, bajas: bajas}
}

func (h *DocumentosHandler) Transicionar(entidadTipo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUID(c, "id")
		if !ok {
			return
		}
		var req dto.TransicionRequest
		if !bindAndValidate(c, &req) {
			return
		}
		actor := middleware.ActorID(c)
		if err := h.transiciones.Transicionar(c.Request.Context(), &actor, entidadTipo, id, req.Status); err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": req.Status})
	}
}

func (h *DocumentosHandler) Estados(entidadTipo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUID(c, "id")
		if !ok {
			return
		}
		actual, sucesores, err := h.transiciones.EstadosPosibles(c.Request.Context(), entidadTipo, id)
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.EstadosResponse{Status: actual, Sucesores: sucesores})
	}
}

func (h *DocumentosHandler) Eliminar(entidadTipo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUID(c, "id")
		if !ok {
			return
		}
		if err := h.bajas.Eliminar(c.Request.Context(), middleware.ActorID(c), entidadTipo, id); err != nil {
			responderError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *DocumentosHandler) Restaurar(entidadTipo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUID(c, "id")
		if !ok {
			return
		}
		if err := h.bajas.Restaurar(c.Request.Context(), middleware.ActorID(c), entidadTipo, id); err != nil {
			responderError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
