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

func nuevoBajaService(docs *stubDocumentoRepo, eventos *stubActividadRepo, ahora time.Time) *bajaService {
	return &bajaService{
		docs:        docs,
		actividades: NewActividadService(eventos, nil),
		ahora:       func() time.Time { return ahora },
	}
}

func TestEliminarMarcaLoteCompleto(t *testing.T) {
	ahora := time.Date(2026, 5, 2, 9, 30, 0, 123456789, time.UTC)
	docs := newStubDocumentoRepo()
	eventos := &stubActividadRepo{}
	svc := nuevoBajaService(docs, eventos, ahora)

	id := uuid.New()
	actor := uuid.New()
	doc := docs.agregar(model.EntidadSolped, id, model.EstadoSolpedBorrador)
	doc.dependientesVivos = 3

	require.NoError(t, svc.Eliminar(context.Background(), actor, model.EntidadSolped, id))

	// Batch timestamp is stored at microsecond precision, nanoseconds dropped.
	require.NotNil(t, doc.deletedAt)
	assert.Equal(t, ahora.Truncate(time.Microsecond), *doc.deletedAt)
	assert.Zero(t, doc.dependientesVivos)
	assert.Equal(t, int64(3), doc.dependientesEliminados[*doc.deletedAt])

	ev := eventos.ultimo()
	require.NotNil(t, ev)
	assert.Equal(t, model.ActividadDelete, ev.Tipo)
	assert.Equal(t, int64(3), ev.Data["dependientes"])
}

func TestEliminarEntidadDesconocida(t *testing.T) {
	svc := nuevoBajaService(newStubDocumentoRepo(), &stubActividadRepo{}, time.Now())

	err := svc.Eliminar(context.Background(), uuid.New(), "FACTURA", uuid.New())
	var validacion *workflow.ErrValidacion
	require.True(t, errors.As(err, &validacion))
	assert.Contains(t, validacion.Campos, "entidad_tipo")
}

func TestRestaurarRecuperaSoloElLote(t *testing.T) {
	ahora := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	docs := newStubDocumentoRepo()
	eventos := &stubActividadRepo{}
	svc := nuevoBajaService(docs, eventos, ahora)

	id := uuid.New()
	actor := uuid.New()
	doc := docs.agregar(model.EntidadPedidoCotizacion, id, model.EstadoPedidoBorrador)
	doc.dependientesVivos = 2
	// A line item removed in an earlier, separate deletion must stay deleted.
	lotePrevio := ahora.Add(-24 * time.Hour)
	doc.dependientesEliminados[lotePrevio] = 1

	require.NoError(t, svc.Eliminar(context.Background(), actor, model.EntidadPedidoCotizacion, id))
	require.NoError(t, svc.Restaurar(context.Background(), actor, model.EntidadPedidoCotizacion, id))

	assert.Nil(t, doc.deletedAt)
	assert.Equal(t, int64(2), doc.dependientesVivos)
	assert.Equal(t, int64(1), doc.dependientesEliminados[lotePrevio])

	ev := eventos.ultimo()
	require.NotNil(t, ev)
	assert.Equal(t, model.ActividadUpdate, ev.Tipo)
	assert.Equal(t, "restauracion", ev.Data["accion"])
	assert.Equal(t, int64(2), ev.Data["dependientes"])
}

func TestRestaurarNoEliminado(t *testing.T) {
	docs := newStubDocumentoRepo()
	svc := nuevoBajaService(docs, &stubActividadRepo{}, time.Now())

	id := uuid.New()
	docs.agregar(model.EntidadSolped, id, model.EstadoSolpedBorrador)

	err := svc.Restaurar(context.Background(), uuid.New(), model.EntidadSolped, id)
	var noEncontrado *workflow.ErrNoEncontrado
	require.True(t, errors.As(err, &noEncontrado))
}
