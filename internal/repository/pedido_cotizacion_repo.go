package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoCotizacionFiltro struct {
	Status            string
	ClienteID         *uuid.UUID
	IncluirEliminados bool
	Limit             int
	Offset            int
}

type PedidoCotizacionProveedorFiltro struct {
	Status            string
	ProveedorID       *uuid.UUID
	IncluirEliminados bool
	Limit             int
	Offset            int
}

// PedidoCotizacionRepository covers both the client-side quote request and
// its per-supplier counterparts.
type PedidoCotizacionRepository interface {
	WithTx(tx *gorm.DB) PedidoCotizacionRepository
	Crear(ctx context.Context, p *model.PedidoDeCotizacion) error
	ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.PedidoDeCotizacion, error)
	Listar(ctx context.Context, f PedidoCotizacionFiltro) ([]model.PedidoDeCotizacion, int64, error)
	Actualizar(ctx context.Context, p *model.PedidoDeCotizacion) error
	VincularSolped(ctx context.Context, v *model.PedidoCotizacionSolped) error

	CrearProveedor(ctx context.Context, p *model.PedidoCotizacionProveedor) error
	ObtenerProveedorPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.PedidoCotizacionProveedor, error)
	ListarProveedor(ctx context.Context, f PedidoCotizacionProveedorFiltro) ([]model.PedidoCotizacionProveedor, int64, error)
	AgregarDetalleProveedor(ctx context.Context, d *model.DetallePedidoCotizacionProveedor) error
}

type pedidoCotizacionRepository struct {
	db *gorm.DB
}

func NewPedidoCotizacionRepository(db *gorm.DB) PedidoCotizacionRepository {
	return &pedidoCotizacionRepository{db: db}
}

func (r *pedidoCotizacionRepository) WithTx(tx *gorm.DB) PedidoCotizacionRepository {
	if tx == nil {
		return r
	}
	return &pedidoCotizacionRepository{db: tx}
}

func (r *pedidoCotizacionRepository) Crear(ctx context.Context, p *model.PedidoDeCotizacion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoCotizacionRepository) ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.PedidoDeCotizacion, error) {
	var p model.PedidoDeCotizacion
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Preload("Cliente").
		Preload("Solpeds").
		Where("id = ?", id).
		Take(&p).Error
	if err != nil {
		return nil, traducir(err, model.EntidadPedidoCotizacion, id.String(), "")
	}
	return &p, nil
}

func (r *pedidoCotizacionRepository) Listar(ctx context.Context, f PedidoCotizacionFiltro) ([]model.PedidoDeCotizacion, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.PedidoDeCotizacion{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ClienteID != nil {
		q = q.Where("cliente_id = ?", *f.ClienteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var pedidos []model.PedidoDeCotizacion
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&pedidos).Error
	return pedidos, total, err
}

func (r *pedidoCotizacionRepository) Actualizar(ctx context.Context, p *model.PedidoDeCotizacion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pedidoCotizacionRepository) VincularSolped(ctx context.Context, v *model.PedidoCotizacionSolped) error {
	err := r.db.WithContext(ctx).Create(v).Error
	return traducir(err, model.EntidadPedidoCotizacion, v.PedidoCotizacionID.String(), "solped")
}

func (r *pedidoCotizacionRepository) CrearProveedor(ctx context.Context, p *model.PedidoCotizacionProveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoCotizacionRepository) ObtenerProveedorPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.PedidoCotizacionProveedor, error) {
	var p model.PedidoCotizacionProveedor
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Preload("Proveedor").
		Preload("Detalles").
		Where("id = ?", id).
		Take(&p).Error
	if err != nil {
		return nil, traducir(err, model.EntidadPedidoCotizacionProveedor, id.String(), "")
	}
	return &p, nil
}

func (r *pedidoCotizacionRepository) ListarProveedor(ctx context.Context, f PedidoCotizacionProveedorFiltro) ([]model.PedidoCotizacionProveedor, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.PedidoCotizacionProveedor{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ProveedorID != nil {
		q = q.Where("proveedor_id = ?", *f.ProveedorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var pedidos []model.PedidoCotizacionProveedor
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&pedidos).Error
	return pedidos, total, err
}

func (r *pedidoCotizacionRepository) AgregarDetalleProveedor(ctx context.Context, d *model.DetallePedidoCotizacionProveedor) error {
	return r.db.WithContext(ctx).Create(d).Error
}
