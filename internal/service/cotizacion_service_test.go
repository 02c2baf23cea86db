package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubCotizacionRepo keeps quotations and supplier quotes in memory. Winner
// inserts honor the unique (cotizacion, detalle) pair like the real table.
type stubCotizacionRepo struct {
	cotizaciones map[uuid.UUID]*model.Cotizacion
	proveedores  map[uuid.UUID]*model.CotizacionProveedor
	detalles     map[uuid.UUID]*model.DetalleCotizacionProveedor
	ganadores    []model.CotizacionGanador
	vinculos     []model.CotizacionSolped
}

func newStubCotizacionRepo() *stubCotizacionRepo {
	return &stubCotizacionRepo{
		cotizaciones: make(map[uuid.UUID]*model.Cotizacion),
		proveedores:  make(map[uuid.UUID]*model.CotizacionProveedor),
		detalles:     make(map[uuid.UUID]*model.DetalleCotizacionProveedor),
	}
}

func (r *stubCotizacionRepo) WithTx(_ *gorm.DB) repository.CotizacionRepository { return r }

func (r *stubCotizacionRepo) CrearProveedor(_ context.Context, c *model.CotizacionProveedor) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.proveedores[c.ID] = c
	return nil
}

func (r *stubCotizacionRepo) ObtenerProveedorPorID(_ context.Context, id uuid.UUID, _ bool) (*model.CotizacionProveedor, error) {
	c, ok := r.proveedores[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadCotizacionProveedor, ID: id.String()}
	}
	return c, nil
}

func (r *stubCotizacionRepo) ListarProveedor(_ context.Context, _ repository.CotizacionProveedorFiltro) ([]model.CotizacionProveedor, int64, error) {
	return nil, 0, nil
}

func (r *stubCotizacionRepo) AgregarDetalleProveedor(_ context.Context, d *model.DetalleCotizacionProveedor) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detalles[d.ID] = d
	return nil
}

func (r *stubCotizacionRepo) ObtenerDetalleProveedor(_ context.Context, id uuid.UUID) (*model.DetalleCotizacionProveedor, error) {
	d, ok := r.detalles[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadCotizacionProveedor, ID: id.String()}
	}
	d.CotizacionProveedor = r.proveedores[d.CotizacionProveedorID]
	return d, nil
}

func (r *stubCotizacionRepo) Crear(_ context.Context, c *model.Cotizacion) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.cotizaciones[c.ID] = c
	return nil
}

func (r *stubCotizacionRepo) ObtenerPorID(_ context.Context, id uuid.UUID, _ bool) (*model.Cotizacion, error) {
	c, ok := r.cotizaciones[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadCotizacion, ID: id.String()}
	}
	return c, nil
}

func (r *stubCotizacionRepo) Listar(_ context.Context, _ repository.CotizacionFiltro) ([]model.Cotizacion, int64, error) {
	return nil, 0, nil
}

func (r *stubCotizacionRepo) Actualizar(_ context.Context, c *model.Cotizacion) error {
	r.cotizaciones[c.ID] = c
	return nil
}

func (r *stubCotizacionRepo) VincularSolped(_ context.Context, v *model.CotizacionSolped) error {
	for _, existente := range r.vinculos {
		if existente.CotizacionID == v.CotizacionID && existente.SolpedID == v.SolpedID {
			return &workflow.ErrConflictoUnicidad{Campo: "solped", Valor: v.SolpedID.String()}
		}
	}
	r.vinculos = append(r.vinculos, *v)
	return nil
}

func (r *stubCotizacionRepo) CrearGanadorTx(_ *gorm.DB, g *model.CotizacionGanador) error {
	for _, existente := range r.ganadores {
		if existente.CotizacionID == g.CotizacionID &&
			existente.DetalleCotizacionProveedorID == g.DetalleCotizacionProveedorID {
			return &workflow.ErrConflictoUnicidad{
				Campo: "detalle_cotizacion_proveedor",
				Valor: g.DetalleCotizacionProveedorID.String(),
			}
		}
	}
	r.ganadores = append(r.ganadores, *g)
	return nil
}

func (r *stubCotizacionRepo) ListarGanadores(_ context.Context, cotizacionID uuid.UUID) ([]model.CotizacionGanador, error) {
	var out []model.CotizacionGanador
	for _, g := range r.ganadores {
		if g.CotizacionID == cotizacionID {
			out = append(out, g)
		}
	}
	return out, nil
}

var _ repository.CotizacionRepository = (*stubCotizacionRepo)(nil)

type escenarioGanador struct {
	repo         *stubCotizacionRepo
	docs         *stubDocumentoRepo
	eventos      *stubActividadRepo
	svc          CotizacionService
	cotizacionID uuid.UUID
	detalleID    uuid.UUID
	articuloID   uuid.UUID
}

// armarEscenarioGanador builds a quotation plus one supplier quote line in
// the given supplier-quote estado, backed by one live catalogue article.
func armarEscenarioGanador(t *testing.T, estadoProveedor string) *escenarioGanador {
	t.Helper()
	repo := newStubCotizacionRepo()
	docs := newStubDocumentoRepo()
	eventos := &stubActividadRepo{}
	svc := NewCotizacionService(repo, docs, NewActividadService(eventos, nil))

	articuloID := uuid.New()
	docs.agregar(model.EntidadArticulo, articuloID, model.EstadoEntidadActivo)

	cotizacion := &model.Cotizacion{ID: uuid.New(), ClienteID: uuid.New(), Status: model.EstadoCotizacionEvaluada}
	repo.cotizaciones[cotizacion.ID] = cotizacion

	cp := &model.CotizacionProveedor{ID: uuid.New(), ProveedorID: uuid.New(), Status: estadoProveedor}
	repo.proveedores[cp.ID] = cp

	detalle := &model.DetalleCotizacionProveedor{
		ID:                    uuid.New(),
		CotizacionProveedorID: cp.ID,
		ArticuloID:            articuloID,
		CantidadValor:         decimal.NewFromInt(10),
		CantidadUnidad:        "UNIDAD",
		PrecioUnitarioValor:   decimal.NewFromFloat(125.50),
		PrecioUnitarioMoneda:  "ARS",
	}
	repo.detalles[detalle.ID] = detalle

	return &escenarioGanador{
		repo:         repo,
		docs:         docs,
		eventos:      eventos,
		svc:          svc,
		cotizacionID: cotizacion.ID,
		detalleID:    detalle.ID,
		articuloID:   articuloID,
	}
}

func TestSeleccionarGanador(t *testing.T) {
	e := armarEscenarioGanador(t, model.EstadoCotizacionRecibida)
	actor := uuid.New()

	err := e.svc.SeleccionarGanador(context.Background(), actor, e.cotizacionID, e.detalleID)
	require.NoError(t, err)

	ganadores, err := e.svc.ListarGanadores(context.Background(), e.cotizacionID)
	require.NoError(t, err)
	require.Len(t, ganadores, 1)
	assert.Equal(t, e.detalleID, ganadores[0].DetalleCotizacionProveedorID)

	ev := e.eventos.ultimo()
	require.NotNil(t, ev)
	assert.Equal(t, "seleccion_ganador", ev.Data["accion"])
}

func TestSeleccionarGanadorDuplicado(t *testing.T) {
	e := armarEscenarioGanador(t, model.EstadoCotizacionRecibida)
	actor := uuid.New()

	require.NoError(t, e.svc.SeleccionarGanador(context.Background(), actor, e.cotizacionID, e.detalleID))

	err := e.svc.SeleccionarGanador(context.Background(), actor, e.cotizacionID, e.detalleID)
	var unicidad *workflow.ErrConflictoUnicidad
	require.True(t, errors.As(err, &unicidad))
	assert.Len(t, e.repo.ganadores, 1)
}

func TestSeleccionarGanadorProveedorInelegible(t *testing.T) {
	for _, estado := range []string{model.EstadoCotizacionRechazada, model.EstadoCotizacionVencida} {
		t.Run(estado, func(t *testing.T) {
			e := armarEscenarioGanador(t, estado)

			err := e.svc.SeleccionarGanador(context.Background(), uuid.New(), e.cotizacionID, e.detalleID)
			var validacion *workflow.ErrValidacion
			require.True(t, errors.As(err, &validacion))
			assert.Contains(t, validacion.Campos, "detalle_cotizacion_proveedor")
			assert.Empty(t, e.repo.ganadores)
		})
	}
}

func TestSeleccionarGanadorCotizacionInexistente(t *testing.T) {
	e := armarEscenarioGanador(t, model.EstadoCotizacionRecibida)

	err := e.svc.SeleccionarGanador(context.Background(), uuid.New(), uuid.New(), e.detalleID)
	var noEncontrado *workflow.ErrNoEncontrado
	require.True(t, errors.As(err, &noEncontrado))
}

func TestAgregarDetalleProveedorValidaciones(t *testing.T) {
	e := armarEscenarioGanador(t, model.EstadoCotizacionBorrador)
	actor := uuid.New()

	cpID := e.repo.detalles[e.detalleID].CotizacionProveedorID

	t.Run("cantidad no positiva", func(t *testing.T) {
		err := e.svc.AgregarDetalleProveedor(context.Background(), actor, &model.DetalleCotizacionProveedor{
			CotizacionProveedorID: cpID,
			CantidadValor:         decimal.Zero,
			PrecioUnitarioValor:   decimal.NewFromInt(10),
		})
		var validacion *workflow.ErrValidacion
		require.True(t, errors.As(err, &validacion))
		assert.Contains(t, validacion.Campos, "cantidad_valor")
	})

	t.Run("precio negativo", func(t *testing.T) {
		err := e.svc.AgregarDetalleProveedor(context.Background(), actor, &model.DetalleCotizacionProveedor{
			CotizacionProveedorID: cpID,
			CantidadValor:         decimal.NewFromInt(1),
			PrecioUnitarioValor:   decimal.NewFromInt(-1),
		})
		var validacion *workflow.ErrValidacion
		require.True(t, errors.As(err, &validacion))
		assert.Contains(t, validacion.Campos, "precio_unitario_valor")
	})

	t.Run("alta valida en borrador", func(t *testing.T) {
		d := &model.DetalleCotizacionProveedor{
			CotizacionProveedorID: cpID,
			ArticuloID:            e.articuloID,
			CantidadValor:         decimal.NewFromInt(5),
			CantidadUnidad:        "CAJA",
			PrecioUnitarioValor:   decimal.NewFromInt(200),
			PrecioUnitarioMoneda:  "USD",
		}
		require.NoError(t, e.svc.AgregarDetalleProveedor(context.Background(), actor, d))
		assert.Equal(t, "alta_detalle", e.eventos.ultimo().Data["accion"])
	})
}

func TestAgregarDetalleProveedorFueraDeBorrador(t *testing.T) {
	e := armarEscenarioGanador(t, model.EstadoCotizacionEnviada)

	err := e.svc.AgregarDetalleProveedor(context.Background(), uuid.New(), &model.DetalleCotizacionProveedor{
		CotizacionProveedorID: e.repo.detalles[e.detalleID].CotizacionProveedorID,
		CantidadValor:         decimal.NewFromInt(1),
		PrecioUnitarioValor:   decimal.NewFromInt(10),
	})
	var validacion *workflow.ErrValidacion
	require.True(t, errors.As(err, &validacion))
	assert.Contains(t, validacion.Campos, "status")
}

func TestVincularSolpedDuplicado(t *testing.T) {
	repo := newStubCotizacionRepo()
	docs := newStubDocumentoRepo()
	svc := NewCotizacionService(repo, docs, NewActividadService(&stubActividadRepo{}, nil))

	cotizacion := &model.Cotizacion{ID: uuid.New(), ClienteID: uuid.New(), Status: model.EstadoCotizacionBorrador}
	repo.cotizaciones[cotizacion.ID] = cotizacion
	solpedID := uuid.New()
	docs.agregar(model.EntidadSolped, solpedID, model.EstadoSolpedAprobada)

	actor := uuid.New()
	require.NoError(t, svc.VincularSolped(context.Background(), actor, cotizacion.ID, solpedID))

	err := svc.VincularSolped(context.Background(), actor, cotizacion.ID, solpedID)
	var unicidad *workflow.ErrConflictoUnicidad
	require.True(t, errors.As(err, &unicidad))
}

func TestCrearCotizacionMargenNegativo(t *testing.T) {
	svc := NewCotizacionService(newStubCotizacionRepo(), newStubDocumentoRepo(), NewActividadService(&stubActividadRepo{}, nil))

	margen := decimal.NewFromInt(-5)
	err := svc.Crear(context.Background(), uuid.New(), &model.Cotizacion{ClienteID: uuid.New(), Margen: &margen})
	var validacion *workflow.ErrValidacion
	require.True(t, errors.As(err, &validacion))
	assert.Contains(t, validacion.Campos, "margen")
}
