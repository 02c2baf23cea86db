package service

import (
	"context"
	"testing"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarVistaEncola(t *testing.T) {
	eventos := &stubActividadRepo{}
	cola := &stubEncolador{}
	svc := NewActividadService(eventos, cola)

	actor := uuid.New()
	id := uuid.New()
	svc.RegistrarVista(context.Background(), actor, model.EntidadProveedor, id)

	require.Len(t, cola.encolados, 1)
	assert.Empty(t, eventos.eventos, "la vista encolada no toca la tabla en forma directa")

	a := cola.encolados[0]
	assert.Equal(t, model.ActividadView, a.Tipo)
	assert.Equal(t, model.EntidadProveedor, a.EntidadTipo)
	assert.Equal(t, id, a.EntidadID)
	require.NotNil(t, a.UsuarioID)
	assert.Equal(t, actor, *a.UsuarioID)
}

func TestRegistrarVistaColaCaidaEscribeSincrono(t *testing.T) {
	eventos := &stubActividadRepo{}
	cola := &stubEncolador{fallaCon: errCola}
	svc := NewActividadService(eventos, cola)

	svc.RegistrarVista(context.Background(), uuid.New(), model.EntidadArticulo, uuid.New())

	assert.Empty(t, cola.encolados)
	require.Len(t, eventos.eventos, 1)
	assert.Equal(t, model.ActividadView, eventos.eventos[0].Tipo)
}

func TestRegistrarVistaSinCola(t *testing.T) {
	eventos := &stubActividadRepo{}
	svc := NewActividadService(eventos, nil)

	svc.RegistrarVista(context.Background(), uuid.New(), model.EntidadCliente, uuid.New())

	require.Len(t, eventos.eventos, 1)
	assert.Equal(t, model.ActividadView, eventos.eventos[0].Tipo)
}

func TestRegistrarVistaNuncaFalla(t *testing.T) {
	eventos := &stubActividadRepo{fallaCon: errCola}
	svc := NewActividadService(eventos, nil)

	// Must not panic nor surface the error to the read it decorates.
	svc.RegistrarVista(context.Background(), uuid.New(), model.EntidadCliente, uuid.New())
	assert.Empty(t, eventos.eventos)
}

func TestRegistrarConActorNil(t *testing.T) {
	eventos := &stubActividadRepo{}
	svc := NewActividadService(eventos, nil)

	id := uuid.New()
	err := svc.Registrar(context.Background(), nil, model.ActividadUpdate, model.EntidadEnvio, id, model.JSONB{"a": "ENTREGADO"})
	require.NoError(t, err)

	ev := eventos.ultimo()
	require.NotNil(t, ev)
	assert.Nil(t, ev.UsuarioID)
	assert.False(t, ev.Fecha.IsZero())
}
