package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Stubs for the remaining document repos, used to drive the line-item paths.

type stubSolpedRepo struct {
	solpeds  map[uuid.UUID]*model.Solped
	detalles []model.DetalleSolped
}

func newStubSolpedRepo() *stubSolpedRepo {
	return &stubSolpedRepo{solpeds: make(map[uuid.UUID]*model.Solped)}
}

func (r *stubSolpedRepo) WithTx(_ *gorm.DB) repository.SolpedRepository { return r }

func (r *stubSolpedRepo) Crear(_ context.Context, s *model.Solped) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.solpeds[s.ID] = s
	return nil
}

func (r *stubSolpedRepo) CrearTx(_ *gorm.DB, s *model.Solped) error {
	return r.Crear(context.Background(), s)
}

func (r *stubSolpedRepo) ObtenerPorID(_ context.Context, id uuid.UUID, _ bool) (*model.Solped, error) {
	s, ok := r.solpeds[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadSolped, ID: id.String()}
	}
	return s, nil
}

func (r *stubSolpedRepo) Listar(_ context.Context, _ repository.SolpedFiltro) ([]model.Solped, int64, error) {
	return nil, 0, nil
}

func (r *stubSolpedRepo) ProximoNumero(_ context.Context) (int, error) {
	return len(r.solpeds) + 1, nil
}

func (r *stubSolpedRepo) AgregarDetalle(_ context.Context, d *model.DetalleSolped) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detalles = append(r.detalles, *d)
	return nil
}

func (r *stubSolpedRepo) QuitarDetalle(_ context.Context, _, _ uuid.UUID, _ uuid.UUID) error {
	return nil
}

var _ repository.SolpedRepository = (*stubSolpedRepo)(nil)

type stubRemitoRepo struct {
	remitos  map[uuid.UUID]*model.Remito
	detalles []model.DetalleRemito
}

func newStubRemitoRepo() *stubRemitoRepo {
	return &stubRemitoRepo{remitos: make(map[uuid.UUID]*model.Remito)}
}

func (r *stubRemitoRepo) WithTx(_ *gorm.DB) repository.RemitoRepository { return r }

func (r *stubRemitoRepo) Crear(_ context.Context, rem *model.Remito) error {
	if rem.ID == uuid.Nil {
		rem.ID = uuid.New()
	}
	r.remitos[rem.ID] = rem
	return nil
}

func (r *stubRemitoRepo) ObtenerPorID(_ context.Context, id uuid.UUID, _ bool) (*model.Remito, error) {
	rem, ok := r.remitos[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadRemito, ID: id.String()}
	}
	return rem, nil
}

func (r *stubRemitoRepo) Listar(_ context.Context, _ repository.RemitoFiltro) ([]model.Remito, int64, error) {
	return nil, 0, nil
}

func (r *stubRemitoRepo) Actualizar(_ context.Context, rem *model.Remito) error {
	r.remitos[rem.ID] = rem
	return nil
}

func (r *stubRemitoRepo) AgregarDetalle(_ context.Context, d *model.DetalleRemito) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detalles = append(r.detalles, *d)
	return nil
}

var _ repository.RemitoRepository = (*stubRemitoRepo)(nil)

type stubOrdenCompraRepo struct {
	proveedor         map[uuid.UUID]*model.OrdenCompraProveedor
	cliente           map[uuid.UUID]*model.OrdenCompraCliente
	detallesProveedor []model.DetalleOrdenCompraProveedor
	detallesCliente   []model.DetalleOrdenCompraCliente
}

func newStubOrdenCompraRepo() *stubOrdenCompraRepo {
	return &stubOrdenCompraRepo{
		proveedor: make(map[uuid.UUID]*model.OrdenCompraProveedor),
		cliente:   make(map[uuid.UUID]*model.OrdenCompraCliente),
	}
}

func (r *stubOrdenCompraRepo) WithTx(_ *gorm.DB) repository.OrdenCompraRepository { return r }

func (r *stubOrdenCompraRepo) CrearProveedor(_ context.Context, o *model.OrdenCompraProveedor) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.proveedor[o.ID] = o
	return nil
}

func (r *stubOrdenCompraRepo) ObtenerProveedorPorID(_ context.Context, id uuid.UUID, _ bool) (*model.OrdenCompraProveedor, error) {
	o, ok := r.proveedor[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadOrdenCompraProveedor, ID: id.String()}
	}
	return o, nil
}

func (r *stubOrdenCompraRepo) ListarProveedor(_ context.Context, _ repository.OrdenCompraFiltro) ([]model.OrdenCompraProveedor, int64, error) {
	return nil, 0, nil
}

func (r *stubOrdenCompraRepo) ActualizarProveedor(_ context.Context, o *model.OrdenCompraProveedor) error {
	r.proveedor[o.ID] = o
	return nil
}

func (r *stubOrdenCompraRepo) AgregarDetalleProveedor(_ context.Context, d *model.DetalleOrdenCompraProveedor) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detallesProveedor = append(r.detallesProveedor, *d)
	return nil
}

func (r *stubOrdenCompraRepo) CrearCliente(_ context.Context, o *model.OrdenCompraCliente) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.cliente[o.ID] = o
	return nil
}

func (r *stubOrdenCompraRepo) ObtenerClientePorID(_ context.Context, id uuid.UUID, _ bool) (*model.OrdenCompraCliente, error) {
	o, ok := r.cliente[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadOrdenCompraCliente, ID: id.String()}
	}
	return o, nil
}

func (r *stubOrdenCompraRepo) ListarCliente(_ context.Context, _ repository.OrdenCompraFiltro) ([]model.OrdenCompraCliente, int64, error) {
	return nil, 0, nil
}

func (r *stubOrdenCompraRepo) ActualizarCliente(_ context.Context, o *model.OrdenCompraCliente) error {
	r.cliente[o.ID] = o
	return nil
}

func (r *stubOrdenCompraRepo) AgregarDetalleCliente(_ context.Context, d *model.DetalleOrdenCompraCliente) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detallesCliente = append(r.detallesCliente, *d)
	return nil
}

var _ repository.OrdenCompraRepository = (*stubOrdenCompraRepo)(nil)

type stubPedidoCotizacionRepo struct {
	pedidos     map[uuid.UUID]*model.PedidoDeCotizacion
	proveedores map[uuid.UUID]*model.PedidoCotizacionProveedor
	detalles    []model.DetallePedidoCotizacionProveedor
}

func newStubPedidoCotizacionRepo() *stubPedidoCotizacionRepo {
	return &stubPedidoCotizacionRepo{
		pedidos:     make(map[uuid.UUID]*model.PedidoDeCotizacion),
		proveedores: make(map[uuid.UUID]*model.PedidoCotizacionProveedor),
	}
}

func (r *stubPedidoCotizacionRepo) WithTx(_ *gorm.DB) repository.PedidoCotizacionRepository {
	return r
}

func (r *stubPedidoCotizacionRepo) Crear(_ context.Context, p *model.PedidoDeCotizacion) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoCotizacionRepo) ObtenerPorID(_ context.Context, id uuid.UUID, _ bool) (*model.PedidoDeCotizacion, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadPedidoCotizacion, ID: id.String()}
	}
	return p, nil
}

func (r *stubPedidoCotizacionRepo) Listar(_ context.Context, _ repository.PedidoCotizacionFiltro) ([]model.PedidoDeCotizacion, int64, error) {
	return nil, 0, nil
}

func (r *stubPedidoCotizacionRepo) Actualizar(_ context.Context, p *model.PedidoDeCotizacion) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoCotizacionRepo) VincularSolped(_ context.Context, _ *model.PedidoCotizacionSolped) error {
	return nil
}

func (r *stubPedidoCotizacionRepo) CrearProveedor(_ context.Context, p *model.PedidoCotizacionProveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubPedidoCotizacionRepo) ObtenerProveedorPorID(_ context.Context, id uuid.UUID, _ bool) (*model.PedidoCotizacionProveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadPedidoCotizacionProveedor, ID: id.String()}
	}
	return p, nil
}

func (r *stubPedidoCotizacionRepo) ListarProveedor(_ context.Context, _ repository.PedidoCotizacionProveedorFiltro) ([]model.PedidoCotizacionProveedor, int64, error) {
	return nil, 0, nil
}

func (r *stubPedidoCotizacionRepo) AgregarDetalleProveedor(_ context.Context, d *model.DetallePedidoCotizacionProveedor) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detalles = append(r.detalles, *d)
	return nil
}

var _ repository.PedidoCotizacionRepository = (*stubPedidoCotizacionRepo)(nil)

// catalogoDePrueba registers one live article and one soft-deleted article.
func catalogoDePrueba(docs *stubDocumentoRepo) (vivo, eliminado uuid.UUID) {
	vivo = uuid.New()
	docs.agregar(model.EntidadArticulo, vivo, model.EstadoEntidadActivo)

	eliminado = uuid.New()
	momento := time.Now().UTC()
	docs.agregar(model.EntidadArticulo, eliminado, model.EstadoEntidadActivo).deletedAt = &momento
	return vivo, eliminado
}

func TestAgregarDetalleSolpedVerificaArticulo(t *testing.T) {
	docs := newStubDocumentoRepo()
	vivo, eliminado := catalogoDePrueba(docs)
	repo := newStubSolpedRepo()
	eventos := &stubActividadRepo{}
	svc := NewSolpedService(repo, docs, NewActividadService(eventos, nil))

	actor := uuid.New()
	sol := &model.Solped{ID: uuid.New(), NroSolped: 1, Status: model.EstadoSolpedBorrador}
	repo.solpeds[sol.ID] = sol

	linea := func(articuloID uuid.UUID) *model.DetalleSolped {
		return &model.DetalleSolped{
			SolpedID:       sol.ID,
			ArticuloID:     articuloID,
			CantidadValor:  decimal.NewFromInt(3),
			CantidadUnidad: "UNIDAD",
		}
	}

	require.NoError(t, svc.AgregarDetalle(context.Background(), actor, linea(vivo)))
	require.Len(t, repo.detalles, 1)

	var noEncontrado *workflow.ErrNoEncontrado
	err := svc.AgregarDetalle(context.Background(), actor, linea(eliminado))
	require.True(t, errors.As(err, &noEncontrado))
	assert.Equal(t, model.EntidadArticulo, noEncontrado.Entidad)

	err = svc.AgregarDetalle(context.Background(), actor, linea(uuid.New()))
	require.True(t, errors.As(err, &noEncontrado))

	// The rejected lines left neither rows nor audit events behind.
	assert.Len(t, repo.detalles, 1)
	assert.Len(t, eventos.eventos, 1)
}

func TestAgregarDetalleRemitoVerificaArticulo(t *testing.T) {
	docs := newStubDocumentoRepo()
	vivo, eliminado := catalogoDePrueba(docs)
	repo := newStubRemitoRepo()
	svc := NewLogisticaService(repo, nil, docs, NewActividadService(&stubActividadRepo{}, nil))

	actor := uuid.New()
	rem := &model.Remito{ID: uuid.New(), DestinatarioID: uuid.New(), Status: model.EstadoRemitoBorrador}
	repo.remitos[rem.ID] = rem

	linea := func(articuloID uuid.UUID) *model.DetalleRemito {
		return &model.DetalleRemito{
			RemitoID:       rem.ID,
			ArticuloID:     articuloID,
			CantidadValor:  decimal.NewFromInt(2),
			CantidadUnidad: "CAJA",
		}
	}

	require.NoError(t, svc.AgregarDetalleRemito(context.Background(), actor, linea(vivo)))

	var noEncontrado *workflow.ErrNoEncontrado
	err := svc.AgregarDetalleRemito(context.Background(), actor, linea(eliminado))
	require.True(t, errors.As(err, &noEncontrado))
	assert.Len(t, repo.detalles, 1)
}

func TestAgregarDetalleOrdenVerificaArticulo(t *testing.T) {
	docs := newStubDocumentoRepo()
	vivo, eliminado := catalogoDePrueba(docs)
	repo := newStubOrdenCompraRepo()
	svc := NewOrdenCompraService(repo, docs, NewActividadService(&stubActividadRepo{}, nil))
	actor := uuid.New()

	t.Run("proveedor", func(t *testing.T) {
		o := &model.OrdenCompraProveedor{ID: uuid.New(), ProveedorID: uuid.New(), Status: model.EstadoOrdenBorrador}
		repo.proveedor[o.ID] = o

		linea := func(articuloID uuid.UUID) *model.DetalleOrdenCompraProveedor {
			return &model.DetalleOrdenCompraProveedor{
				OrdenCompraProveedorID: o.ID,
				ArticuloID:             articuloID,
				CantidadValor:          decimal.NewFromInt(4),
				CantidadUnidad:         "UNIDAD",
				PrecioUnitarioValor:    decimal.NewFromInt(150),
				PrecioUnitarioMoneda:   "ARS",
			}
		}

		require.NoError(t, svc.AgregarDetalleProveedor(context.Background(), actor, linea(vivo)))

		var noEncontrado *workflow.ErrNoEncontrado
		err := svc.AgregarDetalleProveedor(context.Background(), actor, linea(eliminado))
		require.True(t, errors.As(err, &noEncontrado))
		assert.Len(t, repo.detallesProveedor, 1)
	})

	t.Run("cliente", func(t *testing.T) {
		o := &model.OrdenCompraCliente{ID: uuid.New(), ClienteID: uuid.New(), Status: model.EstadoOrdenBorrador}
		repo.cliente[o.ID] = o

		linea := func(articuloID uuid.UUID) *model.DetalleOrdenCompraCliente {
			return &model.DetalleOrdenCompraCliente{
				OrdenCompraClienteID: o.ID,
				ArticuloID:           articuloID,
				CantidadValor:        decimal.NewFromInt(4),
				CantidadUnidad:       "UNIDAD",
				PrecioValor:          decimal.NewFromInt(180),
				PrecioMoneda:         "ARS",
			}
		}

		require.NoError(t, svc.AgregarDetalleCliente(context.Background(), actor, linea(vivo)))

		var noEncontrado *workflow.ErrNoEncontrado
		err := svc.AgregarDetalleCliente(context.Background(), actor, linea(uuid.New()))
		require.True(t, errors.As(err, &noEncontrado))
		assert.Len(t, repo.detallesCliente, 1)
	})
}

func TestAgregarDetallePedidoProveedorVerificaArticulo(t *testing.T) {
	docs := newStubDocumentoRepo()
	vivo, eliminado := catalogoDePrueba(docs)
	repo := newStubPedidoCotizacionRepo()
	svc := NewPedidoCotizacionService(repo, docs, NewActividadService(&stubActividadRepo{}, nil))

	actor := uuid.New()
	p := &model.PedidoCotizacionProveedor{ID: uuid.New(), ProveedorID: uuid.New(), Status: model.EstadoPedidoBorrador}
	repo.proveedores[p.ID] = p

	linea := func(articuloID uuid.UUID) *model.DetallePedidoCotizacionProveedor {
		return &model.DetallePedidoCotizacionProveedor{
			PedidoCotizacionProveedorID: p.ID,
			ArticuloID:                  articuloID,
			CantidadValor:               decimal.NewFromInt(6),
			CantidadUnidad:              "KG",
		}
	}

	require.NoError(t, svc.AgregarDetalleProveedor(context.Background(), actor, linea(vivo)))

	var noEncontrado *workflow.ErrNoEncontrado
	err := svc.AgregarDetalleProveedor(context.Background(), actor, linea(eliminado))
	require.True(t, errors.As(err, &noEncontrado))
	assert.Len(t, repo.detalles, 1)
}

func TestAgregarDetalleCotizacionProveedorVerificaArticulo(t *testing.T) {
	e := armarEscenarioGanador(t, model.EstadoCotizacionBorrador)
	actor := uuid.New()
	cpID := e.repo.detalles[e.detalleID].CotizacionProveedorID

	eliminado := uuid.New()
	momento := time.Now().UTC()
	e.docs.agregar(model.EntidadArticulo, eliminado, model.EstadoEntidadActivo).deletedAt = &momento

	err := e.svc.AgregarDetalleProveedor(context.Background(), actor, &model.DetalleCotizacionProveedor{
		CotizacionProveedorID: cpID,
		ArticuloID:            eliminado,
		CantidadValor:         decimal.NewFromInt(1),
		PrecioUnitarioValor:   decimal.NewFromInt(10),
	})
	var noEncontrado *workflow.ErrNoEncontrado
	require.True(t, errors.As(err, &noEncontrado))
	assert.Equal(t, model.EntidadArticulo, noEncontrado.Entidad)
}
