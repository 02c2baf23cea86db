package service

import (
	"context"
	"testing"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoVencimientoService(docs *stubDocumentoRepo, eventos *stubActividadRepo, ahora time.Time) *vencimientoService {
	return &vencimientoService{
		docs:        docs,
		actividades: NewActividadService(eventos, nil),
		ahora:       func() time.Time { return ahora },
	}
}

func TestBarrerVenceSoloLoVencido(t *testing.T) {
	ahora := time.Date(2026, 6, 1, 3, 0, 0, 0, time.UTC)
	pasado := ahora.Add(-24 * time.Hour)
	futuro := ahora.Add(24 * time.Hour)

	docs := newStubDocumentoRepo()
	eventos := &stubActividadRepo{}
	svc := nuevoVencimientoService(docs, eventos, ahora)

	vencible := uuid.New()
	docs.agregar(model.EntidadPedidoCotizacion, vencible, model.EstadoPedidoEnviado).fechaVencimiento = &pasado
	// Not yet due.
	docs.agregar(model.EntidadPedidoCotizacion, uuid.New(), model.EstadoPedidoEnviado).fechaVencimiento = &futuro
	// No expiry date at all.
	docs.agregar(model.EntidadCotizacion, uuid.New(), model.EstadoCotizacionEnviada)
	// Already terminal.
	docs.agregar(model.EntidadCotizacion, uuid.New(), model.EstadoCotizacionAceptada).fechaVencimiento = &pasado

	n, err := svc.Barrer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	estado, err := docs.ObtenerEstado(context.Background(), model.EntidadPedidoCotizacion, vencible)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoPedidoVencido, estado)

	ev := eventos.ultimo()
	require.NotNil(t, ev)
	assert.Equal(t, model.ActividadUpdate, ev.Tipo)
	assert.Nil(t, ev.UsuarioID, "el barrido actua por cuenta propia")
	assert.Equal(t, "vencimiento", ev.Data["motivo"])
	assert.Equal(t, model.EstadoPedidoVencido, ev.Data["a"])
}

func TestBarrerEsIdempotente(t *testing.T) {
	ahora := time.Date(2026, 6, 1, 3, 0, 0, 0, time.UTC)
	pasado := ahora.Add(-time.Hour)

	docs := newStubDocumentoRepo()
	eventos := &stubActividadRepo{}
	svc := nuevoVencimientoService(docs, eventos, ahora)

	docs.agregar(model.EntidadCotizacionProveedor, uuid.New(), model.EstadoCotizacionRecibida).fechaVencimiento = &pasado

	n, err := svc.Barrer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.Barrer(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, eventos.eventos, 1)
}

func TestBarrerCubreLasCuatroFamilias(t *testing.T) {
	ahora := time.Date(2026, 6, 1, 3, 0, 0, 0, time.UTC)
	pasado := ahora.Add(-time.Hour)

	docs := newStubDocumentoRepo()
	svc := nuevoVencimientoService(docs, &stubActividadRepo{}, ahora)

	docs.agregar(model.EntidadPedidoCotizacion, uuid.New(), model.EstadoPedidoBorrador).fechaVencimiento = &pasado
	docs.agregar(model.EntidadPedidoCotizacionProveedor, uuid.New(), model.EstadoPedidoPendienteRespuesta).fechaVencimiento = &pasado
	docs.agregar(model.EntidadCotizacion, uuid.New(), model.EstadoCotizacionBorrador).fechaVencimiento = &pasado
	docs.agregar(model.EntidadCotizacionProveedor, uuid.New(), model.EstadoCotizacionEvaluada).fechaVencimiento = &pasado

	n, err := svc.Barrer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
