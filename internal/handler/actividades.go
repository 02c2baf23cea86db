package handler

import (
	"net/http"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/dto"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"

	"github.com/gin-gonic/gin"
)

type ActividadesHandler struct{ svc service.ActividadService }

func NewActividadesHandler(svc service.ActividadService) *ActividadesHandler {
	return &ActividadesHandler{svc: svc}
}

func (h *ActividadesHandler) Listar(c *gin.Context) {
	f := repository.ActividadFiltro{
		EntidadTipo: c.Query("entidad_tipo"),
		EntidadID:   queryUUID(c, "entidad_id"),
		UsuarioID:   queryUUID(c, "usuario_id"),
		Tipo:        c.Query("tipo"),
		Limit:       queryInt(c, "limit", 0),
		Offset:      queryInt(c, "offset", 0),
	}
	if s := c.Query("desde"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			f.Desde = &t
		}
	}
	if s := c.Query("hasta"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			f.Hasta = &t
		}
	}
	actividades, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.ActividadesResponseDe(actividades)})
}
