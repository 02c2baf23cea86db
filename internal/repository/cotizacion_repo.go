package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CotizacionFiltro struct {
	Status            string
	ClienteID         *uuid.UUID
	IncluirEliminados bool
	Limit             int
	Offset            int
}

type CotizacionProveedorFiltro struct {
	Status            string
	ProveedorID       *uuid.UUID
	IncluirEliminados bool
	Limit             int
	Offset            int
}

// CotizacionRepository covers supplier quotes, final quotations and the
// winner bindings between them.
type CotizacionRepository interface {
	WithTx(tx *gorm.DB) CotizacionRepository
	CrearProveedor(ctx context.Context, c *model.CotizacionProveedor) error
	ObtenerProveedorPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.CotizacionProveedor, error)
	ListarProveedor(ctx context.Context, f CotizacionProveedorFiltro) ([]model.CotizacionProveedor, int64, error)
	AgregarDetalleProveedor(ctx context.Context, d *model.DetalleCotizacionProveedor) error
	ObtenerDetalleProveedor(ctx context.Context, id uuid.UUID) (*model.DetalleCotizacionProveedor, error)

	Crear(ctx context.Context, c *model.Cotizacion) error
	ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Cotizacion, error)
	Listar(ctx context.Context, f CotizacionFiltro) ([]model.Cotizacion, int64, error)
	Actualizar(ctx context.Context, c *model.Cotizacion) error
	VincularSolped(ctx context.Context, v *model.CotizacionSolped) error

	CrearGanadorTx(tx *gorm.DB, g *model.CotizacionGanador) error
	ListarGanadores(ctx context.Context, cotizacionID uuid.UUID) ([]model.CotizacionGanador, error)
}

type cotizacionRepository struct {
	db *gorm.DB
}

func NewCotizacionRepository(db *gorm.DB) CotizacionRepository {
	return &cotizacionRepository{db: db}
}

func (r *cotizacionRepository) WithTx(tx *gorm.DB) CotizacionRepository {
	if tx == nil {
		return r
	}
	return &cotizacionRepository{db: tx}
}

func (r *cotizacionRepository) CrearProveedor(ctx context.Context, c *model.CotizacionProveedor) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cotizacionRepository) ObtenerProveedorPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.CotizacionProveedor, error) {
	var c model.CotizacionProveedor
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Preload("Proveedor").
		Preload("Detalles").
		Where("id = ?", id).
		Take(&c).Error
	if err != nil {
		return nil, traducir(err, model.EntidadCotizacionProveedor, id.String(), "")
	}
	return &c, nil
}

func (r *cotizacionRepository) ListarProveedor(ctx context.Context, f CotizacionProveedorFiltro) ([]model.CotizacionProveedor, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.CotizacionProveedor{})

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

	var cotizaciones []model.CotizacionProveedor
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&cotizaciones).Error
	return cotizaciones, total, err
}

func (r *cotizacionRepository) AgregarDetalleProveedor(ctx context.Context, d *model.DetalleCotizacionProveedor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *cotizacionRepository) ObtenerDetalleProveedor(ctx context.Context, id uuid.UUID) (*model.DetalleCotizacionProveedor, error) {
	var d model.DetalleCotizacionProveedor
	err := r.db.WithContext(ctx).
		Preload("CotizacionProveedor").
		Where("id = ?", id).
		Take(&d).Error
	if err != nil {
		return nil, traducir(err, model.EntidadCotizacionProveedor, id.String(), "")
	}
	return &d, nil
}

func (r *cotizacionRepository) Crear(ctx context.Context, c *model.Cotizacion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cotizacionRepository) ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Cotizacion, error) {
	var c model.Cotizacion
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Preload("Cliente").
		Preload("Ganadores.DetalleCotizacionProveedor").
		Preload("Solpeds").
		Where("id = ?", id).
		Take(&c).Error
	if err != nil {
		return nil, traducir(err, model.EntidadCotizacion, id.String(), "")
	}
	return &c, nil
}

func (r *cotizacionRepository) Listar(ctx context.Context, f CotizacionFiltro) ([]model.Cotizacion, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.Cotizacion{})

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

	var cotizaciones []model.Cotizacion
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&cotizaciones).Error
	return cotizaciones, total, err
}

func (r *cotizacionRepository) Actualizar(ctx context.Context, c *model.Cotizacion) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cotizacionRepository) VincularSolped(ctx context.Context, v *model.CotizacionSolped) error {
	err := r.db.WithContext(ctx).Create(v).Error
	return traducir(err, model.EntidadCotizacion, v.CotizacionID.String(), "solped")
}

func (r *cotizacionRepository) CrearGanadorTx(tx *gorm.DB, g *model.CotizacionGanador) error {
	err := tx.Create(g).Error
	return traducir(err, model.EntidadCotizacion, g.CotizacionID.String(), "detalle_cotizacion_proveedor")
}

func (r *cotizacionRepository) ListarGanadores(ctx context.Context, cotizacionID uuid.UUID) ([]model.CotizacionGanador, error) {
	var ganadores []model.CotizacionGanador
	err := r.db.WithContext(ctx).
		Preload("DetalleCotizacionProveedor.Articulo").
		Where("cotizacion_id = ?", cotizacionID).
		Find(&ganadores).Error
	return ganadores, err
}
