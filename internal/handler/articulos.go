package handler

import (
	"net/http"

	"github.com/Andreskammerath/BKK-procurement-system/internal/dto"
	"github.com/Andreskammerath/BKK-procurement-system/internal/infra"
	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ArticulosHandler struct{ svc service.ArticuloService }

func NewArticulosHandler(svc service.ArticuloService) *ArticulosHandler {
	return &ArticulosHandler{svc: svc}
}

func (h *ArticulosHandler) Crear(c *gin.Context) {
	var req dto.CrearArticuloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	a := dto.ArticuloDe(&req)
	if err := h.svc.Crear(c.Request.Context(), middleware.ActorID(c), a); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ArticuloResponseDe(a))
}

func (h *ArticulosHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.Obtener(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArticuloResponseDe(a))
}

func filtroArticulos(c *gin.Context) repository.ArticuloFiltro {
	return repository.ArticuloFiltro{
		Status:            c.Query("status"),
		Familia:           c.Query("familia"),
		CategoriaLvl1:     c.Query("categoria_lvl1"),
		Marca:             c.Query("marca"),
		Buscar:            c.Query("buscar"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
}

func (h *ArticulosHandler) Listar(c *gin.Context) {
	articulos, total, err := h.svc.Listar(c.Request.Context(), filtroArticulos(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.ArticulosResponseDe(articulos)})
}

func (h *ArticulosHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarArticuloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.ActorID(c)
	actual, err := h.svc.Obtener(c.Request.Context(), actor, id, false)
	if err != nil {
		responderError(c, err)
		return
	}
	a := dto.ArticuloDe(&req)
	a.ID = actual.ID
	a.Status = actual.Status
	a.Auditoria = actual.Auditoria
	if err := h.svc.Actualizar(c.Request.Context(), actor, a); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArticuloResponseDe(a))
}

// Exportar streams the filtered catalogue as an xlsx download.
func (h *ArticulosHandler) Exportar(c *gin.Context) {
	f := filtroArticulos(c)
	f.Limit = 500
	articulos, _, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	archivo, err := infra.ExportarArticulos(articulos)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="articulos.xlsx"`)
	if err := archivo.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("exportar articulos: escritura interrumpida")
	}
}
