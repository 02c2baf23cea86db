package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoTransicionService(docs *stubDocumentoRepo, eventos *stubActividadRepo, ahora time.Time) *transicionService {
	return &transicionService{
		docs:        docs,
		actividades: NewActividadService(eventos, nil),
		ahora:       func() time.Time { return ahora },
	}
}

func TestTransicionarValida(t *testing.T) {
	docs := newStubDocumentoRepo()
	eventos := &stubActividadRepo{}
	svc := nuevoTransicionService(docs, eventos, time.Now())

	id := uuid.New()
	actor := uuid.New()
	docs.agregar(model.EntidadSolped, id, model.EstadoSolpedEnviada)

	err := svc.Transicionar(context.Background(), &actor, model.EntidadSolped, id, model.EstadoSolpedAprobada)
	require.NoError(t, err)

	estado, err := docs.ObtenerEstado(context.Background(), model.EntidadSolped, id)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoSolpedAprobada, estado)

	ev := eventos.ultimo()
	require.NotNil(t, ev)
	assert.Equal(t, model.ActividadApprove, ev.Tipo)
	assert.Equal(t, model.EntidadSolped, ev.EntidadTipo)
	assert.Equal(t, id, ev.EntidadID)
	require.NotNil(t, ev.UsuarioID)
	assert.Equal(t, actor, *ev.UsuarioID)
	assert.Equal(t, model.EstadoSolpedEnviada, ev.Data["de"])
	assert.Equal(t, model.EstadoSolpedAprobada, ev.Data["a"])
}

func TestTransicionarRechazoRegistraReject(t *testing.T) {
	docs := newStubDocumentoRepo()
	eventos := &stubActividadRepo{}
	svc := nuevoTransicionService(docs, eventos, time.Now())

	id := uuid.New()
	actor := uuid.New()
	docs.agregar(model.EntidadSolped, id, model.EstadoSolpedEnviada)

	err := svc.Transicionar(context.Background(), &actor, model.EntidadSolped, id, model.EstadoSolpedRechazada)
	require.NoError(t, err)
	require.NotNil(t, eventos.ultimo())
	assert.Equal(t, model.ActividadReject, eventos.ultimo().Tipo)
}

func TestTransicionarInvalidaNoDejaRastro(t *testing.T) {
	docs := newStubDocumentoRepo()
	eventos := &stubActividadRepo{}
	svc := nuevoTransicionService(docs, eventos, time.Now())

	id := uuid.New()
	actor := uuid.New()
	docs.agregar(model.EntidadSolped, id, model.EstadoSolpedBorrador)

	err := svc.Transicionar(context.Background(), &actor, model.EntidadSolped, id, model.EstadoSolpedCompletada)
	var invalida *workflow.ErrTransicionInvalida
	require.True(t, errors.As(err, &invalida))
	assert.Equal(t, model.EstadoSolpedBorrador, invalida.De)
	assert.Equal(t, model.EstadoSolpedCompletada, invalida.A)

	estado, _ := docs.ObtenerEstado(context.Background(), model.EntidadSolped, id)
	assert.Equal(t, model.EstadoSolpedBorrador, estado)
	assert.Empty(t, eventos.eventos)
}

func TestTransicionarEntidadSinWorkflow(t *testing.T) {
	svc := nuevoTransicionService(newStubDocumentoRepo(), &stubActividadRepo{}, time.Now())
	actor := uuid.New()

	err := svc.Transicionar(context.Background(), &actor, model.EntidadDespachante, uuid.New(), "ACTIVO")
	var validacion *workflow.ErrValidacion
	require.True(t, errors.As(err, &validacion))
	assert.Contains(t, validacion.Campos, "entidad_tipo")
}

func TestTransicionarNoEncontrado(t *testing.T) {
	svc := nuevoTransicionService(newStubDocumentoRepo(), &stubActividadRepo{}, time.Now())
	actor := uuid.New()

	err := svc.Transicionar(context.Background(), &actor, model.EntidadSolped, uuid.New(), model.EstadoSolpedEnviada)
	var noEncontrado *workflow.ErrNoEncontrado
	require.True(t, errors.As(err, &noEncontrado))
}

func TestTransicionarAVencidoExigeFechaPasada(t *testing.T) {
	ahora := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	actor := uuid.New()

	t.Run("sin fecha de vencimiento", func(t *testing.T) {
		docs := newStubDocumentoRepo()
		svc := nuevoTransicionService(docs, &stubActividadRepo{}, ahora)
		id := uuid.New()
		docs.agregar(model.EntidadPedidoCotizacion, id, model.EstadoPedidoEnviado)

		err := svc.Transicionar(context.Background(), &actor, model.EntidadPedidoCotizacion, id, model.EstadoPedidoVencido)
		var validacion *workflow.ErrValidacion
		require.True(t, errors.As(err, &validacion))
		assert.Contains(t, validacion.Campos, "fecha_vencimiento")
	})

	t.Run("fecha futura", func(t *testing.T) {
		docs := newStubDocumentoRepo()
		svc := nuevoTransicionService(docs, &stubActividadRepo{}, ahora)
		id := uuid.New()
		futuro := ahora.Add(48 * time.Hour)
		docs.agregar(model.EntidadPedidoCotizacion, id, model.EstadoPedidoEnviado).fechaVencimiento = &futuro

		err := svc.Transicionar(context.Background(), &actor, model.EntidadPedidoCotizacion, id, model.EstadoPedidoVencido)
		var validacion *workflow.ErrValidacion
		require.True(t, errors.As(err, &validacion))
	})

	t.Run("fecha pasada", func(t *testing.T) {
		docs := newStubDocumentoRepo()
		eventos := &stubActividadRepo{}
		svc := nuevoTransicionService(docs, eventos, ahora)
		id := uuid.New()
		pasado := ahora.Add(-48 * time.Hour)
		docs.agregar(model.EntidadPedidoCotizacion, id, model.EstadoPedidoEnviado).fechaVencimiento = &pasado

		err := svc.Transicionar(context.Background(), &actor, model.EntidadPedidoCotizacion, id, model.EstadoPedidoVencido)
		require.NoError(t, err)

		estado, _ := docs.ObtenerEstado(context.Background(), model.EntidadPedidoCotizacion, id)
		assert.Equal(t, model.EstadoPedidoVencido, estado)
		assert.Equal(t, model.ActividadUpdate, eventos.ultimo().Tipo)
	})
}

func TestEstadosPosibles(t *testing.T) {
	docs := newStubDocumentoRepo()
	svc := nuevoTransicionService(docs, &stubActividadRepo{}, time.Now())

	id := uuid.New()
	docs.agregar(model.EntidadSolped, id, model.EstadoSolpedEnviada)

	de, sucesores, err := svc.EstadosPosibles(context.Background(), model.EntidadSolped, id)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoSolpedEnviada, de)
	assert.ElementsMatch(t, workflow.TablaSolped[model.EstadoSolpedEnviada], sucesores)

	// Terminal estado has no successors but still answers.
	idTerminal := uuid.New()
	docs.agregar(model.EntidadSolped, idTerminal, model.EstadoSolpedCompletada)
	de, sucesores, err = svc.EstadosPosibles(context.Background(), model.EntidadSolped, idTerminal)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoSolpedCompletada, de)
	assert.Empty(t, sucesores)
}
