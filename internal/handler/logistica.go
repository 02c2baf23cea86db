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

type LogisticaHandler struct{ svc service.LogisticaService }

func NewLogisticaHandler(svc service.LogisticaService) *LogisticaHandler {
	return &LogisticaHandler{svc: svc}
}

// ─── Remitos ─────────────────────────────────────────────────────────────────

func (h *LogisticaHandler) CrearRemito(c *gin.Context) {
	var req dto.CrearRemitoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	destinatarioID, _ := uuid.Parse(req.DestinatarioID)
	r := &model.Remito{
		DestinatarioID:       destinatarioID,
		NumeroRemito:         req.NumeroRemito,
		FechaEnvio:           parseFecha(req.FechaEnvio),
		FechaEntregaEstimada: parseFecha(req.FechaEntregaEstimada),
	}
	if err := h.svc.CrearRemito(c.Request.Context(), middleware.ActorID(c), r); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.RemitoResponseDe(r))
}

func (h *LogisticaHandler) ObtenerRemito(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	r, err := h.svc.ObtenerRemito(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RemitoResponseDe(r))
}

func (h *LogisticaHandler) ListarRemitos(c *gin.Context) {
	f := repository.RemitoFiltro{
		Status:            c.Query("status"),
		DestinatarioID:    queryUUID(c, "destinatario_id"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
	remitos, total, err := h.svc.ListarRemitos(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.RemitosResponseDe(remitos)})
}

func (h *LogisticaHandler) AgregarDetalleRemito(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarDetalleRemitoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	articuloID, _ := uuid.Parse(req.ArticuloID)
	d := &model.DetalleRemito{
		RemitoID:       id,
		ArticuloID:     articuloID,
		CantidadValor:  req.CantidadValor,
		CantidadUnidad: req.CantidadUnidad,
	}
	if err := h.svc.AgregarDetalleRemito(c.Request.Context(), middleware.ActorID(c), d); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": d.ID})
}

// ─── Envios ──────────────────────────────────────────────────────────────────

func (h *LogisticaHandler) CrearEnvio(c *gin.Context) {
	var req dto.CrearEnvioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	remitoID, _ := uuid.Parse(req.RemitoID)
	despachanteID, _ := uuid.Parse(req.DespachanteID)
	e := &model.Envio{
		RemitoID:          remitoID,
		DespachanteID:     despachanteID,
		NumeroSeguimiento: req.NumeroSeguimiento,
		FechaEnvio:        parseFecha(req.FechaEnvio),
	}
	if err := h.svc.CrearEnvio(c.Request.Context(), middleware.ActorID(c), e); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.EnvioResponseDe(e))
}

func (h *LogisticaHandler) ObtenerEnvio(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	e, err := h.svc.ObtenerEnvio(c.Request.Context(), middleware.ActorID(c), id, queryIncluirEliminados(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EnvioResponseDe(e))
}

func (h *LogisticaHandler) ListarEnvios(c *gin.Context) {
	f := repository.EnvioFiltro{
		Status:            c.Query("status"),
		RemitoID:          queryUUID(c, "remito_id"),
		DespachanteID:     queryUUID(c, "despachante_id"),
		IncluirEliminados: queryIncluirEliminados(c),
		Limit:             queryInt(c, "limit", 0),
		Offset:            queryInt(c, "offset", 0),
	}
	envios, total, err := h.svc.ListarEnvios(c.Request.Context(), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: dto.EnviosResponseDe(envios)})
}

// Rastrear looks a shipment up by its carrier tracking number.
func (h *LogisticaHandler) Rastrear(c *gin.Context) {
	numero := c.Param("numero")
	e, err := h.svc.RastrearEnvio(c.Request.Context(), numero)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EnvioResponseDe(e))
}
