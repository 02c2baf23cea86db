package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrdenCompraFiltro struct {
	Status            string
	ContraparteID     *uuid.UUID // proveedor or cliente according to the side
	IncluirEliminados bool
	Limit             int
	Offset            int
}

// OrdenCompraRepository covers both sides of purchasing: orders placed with
// suppliers and orders received from clients.
type OrdenCompraRepository interface {
	WithTx(tx *gorm.DB) OrdenCompraRepository
	CrearProveedor(ctx context.Context, o *model.OrdenCompraProveedor) error
	ObtenerProveedorPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.OrdenCompraProveedor, error)
	ListarProveedor(ctx context.Context, f OrdenCompraFiltro) ([]model.OrdenCompraProveedor, int64, error)
	ActualizarProveedor(ctx context.Context, o *model.OrdenCompraProveedor) error
	AgregarDetalleProveedor(ctx context.Context, d *model.DetalleOrdenCompraProveedor) error

	CrearCliente(ctx context.Context, o *model.OrdenCompraCliente) error
	ObtenerClientePorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.OrdenCompraCliente, error)
	ListarCliente(ctx context.Context, f OrdenCompraFiltro) ([]model.OrdenCompraCliente, int64, error)
	ActualizarCliente(ctx context.Context, o *model.OrdenCompraCliente) error
	AgregarDetalleCliente(ctx context.Context, d *model.DetalleOrdenCompraCliente) error
}

type ordenCompraRepository struct {
	db *gorm.DB
}

func NewOrdenCompraRepository(db *gorm.DB) OrdenCompraRepository {
	return &ordenCompraRepository{db: db}
}

func (r *ordenCompraRepository) WithTx(tx *gorm.DB) OrdenCompraRepository {
	if tx == nil {
		return r
	}
	return &ordenCompraRepository{db: tx}
}

func (r *ordenCompraRepository) CrearProveedor(ctx context.Context, o *model.OrdenCompraProveedor) error {
	err := r.db.WithContext(ctx).Create(o).Error
	return traducir(err, model.EntidadOrdenCompraProveedor, "", "numero_orden")
}

func (r *ordenCompraRepository) ObtenerProveedorPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.OrdenCompraProveedor, error) {
	var o model.OrdenCompraProveedor
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Preload("Proveedor").
		Preload("Detalles.Articulo").
		Where("id = ?", id).
		Take(&o).Error
	if err != nil {
		return nil, traducir(err, model.EntidadOrdenCompraProveedor, id.String(), "")
	}
	return &o, nil
}

func (r *ordenCompraRepository) ListarProveedor(ctx context.Context, f OrdenCompraFiltro) ([]model.OrdenCompraProveedor, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.OrdenCompraProveedor{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ContraparteID != nil {
		q = q.Where("proveedor_id = ?", *f.ContraparteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var ordenes []model.OrdenCompraProveedor
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&ordenes).Error
	return ordenes, total, err
}

func (r *ordenCompraRepository) ActualizarProveedor(ctx context.Context, o *model.OrdenCompraProveedor) error {
	err := r.db.WithContext(ctx).Save(o).Error
	return traducir(err, model.EntidadOrdenCompraProveedor, o.ID.String(), "numero_orden")
}

func (r *ordenCompraRepository) AgregarDetalleProveedor(ctx context.Context, d *model.DetalleOrdenCompraProveedor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *ordenCompraRepository) CrearCliente(ctx context.Context, o *model.OrdenCompraCliente) error {
	err := r.db.WithContext(ctx).Create(o).Error
	return traducir(err, model.EntidadOrdenCompraCliente, "", "numero_orden")
}

func (r *ordenCompraRepository) ObtenerClientePorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.OrdenCompraCliente, error) {
	var o model.OrdenCompraCliente
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Preload("Cliente").
		Preload("Detalles.Articulo").
		Where("id = ?", id).
		Take(&o).Error
	if err != nil {
		return nil, traducir(err, model.EntidadOrdenCompraCliente, id.String(), "")
	}
	return &o, nil
}

func (r *ordenCompraRepository) ListarCliente(ctx context.Context, f OrdenCompraFiltro) ([]model.OrdenCompraCliente, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.OrdenCompraCliente{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ContraparteID != nil {
		q = q.Where("cliente_id = ?", *f.ContraparteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var ordenes []model.OrdenCompraCliente
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&ordenes).Error
	return ordenes, total, err
}

func (r *ordenCompraRepository) ActualizarCliente(ctx context.Context, o *model.OrdenCompraCliente) error {
	err := r.db.WithContext(ctx).Save(o).Error
	return traducir(err, model.EntidadOrdenCompraCliente, o.ID.String(), "numero_orden")
}

func (r *ordenCompraRepository) AgregarDetalleCliente(ctx context.Context, d *model.DetalleOrdenCompraCliente) error {
	return r.db.WithContext(ctx).Create(d).Error
}
