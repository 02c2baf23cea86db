package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProveedorFiltro narrows supplier listings.
type ProveedorFiltro struct {
	Status            string
	RazonSocial       string
	Nacional          *bool
	IncluirEliminados bool
	Limit             int
	Offset            int
}

type ProveedorRepository interface {
	WithTx(tx *gorm.DB) ProveedorRepository
	Crear(ctx context.Context, p *model.Proveedor) error
	ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Proveedor, error)
	Listar(ctx context.Context, f ProveedorFiltro) ([]model.Proveedor, int64, error)
	Actualizar(ctx context.Context, p *model.Proveedor) error

	CrearFormaEntrega(ctx context.Context, fe *model.FormaDeEntrega) error
	ListarFormasEntrega(ctx context.Context) ([]model.FormaDeEntrega, error)
	ObtenerFormaEntrega(ctx context.Context, id uuid.UUID) (*model.FormaDeEntrega, error)
	VincularFormaEntrega(ctx context.Context, v *model.ProveedorFormaEntrega) error
}

type proveedorRepository struct {
	db *gorm.DB
}

func NewProveedorRepository(db *gorm.DB) ProveedorRepository {
	return &proveedorRepository{db: db}
}

func (r *proveedorRepository) WithTx(tx *gorm.DB) ProveedorRepository {
	if tx == nil {
		return r
	}
	return &proveedorRepository{db: tx}
}

func (r *proveedorRepository) Crear(ctx context.Context, p *model.Proveedor) error {
	err := r.db.WithContext(ctx).Create(p).Error
	return traducir(err, model.EntidadProveedor, "", "cuit")
}

func (r *proveedorRepository) ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Proveedor, error) {
	var p model.Proveedor
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Preload("FormasEntrega.FormaEntrega").
		Where("id = ?", id).
		Take(&p).Error
	if err != nil {
		return nil, traducir(err, model.EntidadProveedor, id.String(), "")
	}
	return &p, nil
}

func (r *proveedorRepository) Listar(ctx context.Context, f ProveedorFiltro) ([]model.Proveedor, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.Proveedor{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RazonSocial != "" {
		q = q.Where("razon_social ILIKE ?", "%"+f.RazonSocial+"%")
	}
	if f.Nacional != nil {
		q = q.Where("es_proveedor_nacional = ?", *f.Nacional)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var proveedores []model.Proveedor
	err := q.Order("razon_social ASC").Limit(limit).Offset(f.Offset).Find(&proveedores).Error
	return proveedores, total, err
}

func (r *proveedorRepository) Actualizar(ctx context.Context, p *model.Proveedor) error {
	err := r.db.WithContext(ctx).Save(p).Error
	return traducir(err, model.EntidadProveedor, p.ID.String(), "cuit")
}

func (r *proveedorRepository) CrearFormaEntrega(ctx context.Context, fe *model.FormaDeEntrega) error {
	return r.db.WithContext(ctx).Create(fe).Error
}

func (r *proveedorRepository) ListarFormasEntrega(ctx context.Context) ([]model.FormaDeEntrega, error) {
	var formas []model.FormaDeEntrega
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&formas).Error
	return formas, err
}

func (r *proveedorRepository) ObtenerFormaEntrega(ctx context.Context, id uuid.UUID) (*model.FormaDeEntrega, error) {
	var fe model.FormaDeEntrega
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&fe).Error
	if err != nil {
		return nil, traducir(err, model.EntidadFormaEntrega, id.String(), "")
	}
	return &fe, nil
}

func (r *proveedorRepository) VincularFormaEntrega(ctx context.Context, v *model.ProveedorFormaEntrega) error {
	err := r.db.WithContext(ctx).Create(v).Error
	return traducir(err, model.EntidadProveedor, v.ProveedorID.String(), "forma_entrega")
}
