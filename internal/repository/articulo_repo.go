package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticuloFiltro struct {
	Status            string
	Familia           string
	CategoriaLvl1     string
	Marca             string
	Buscar            string
	IncluirEliminados bool
	Limit             int
	Offset            int
}

type ArticuloRepository interface {
	WithTx(tx *gorm.DB) ArticuloRepository
	Crear(ctx context.Context, a *model.Articulo) error
	ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Articulo, error)
	Listar(ctx context.Context, f ArticuloFiltro) ([]model.Articulo, int64, error)
	Actualizar(ctx context.Context, a *model.Articulo) error
}

type articuloRepository struct {
	db *gorm.DB
}

func NewArticuloRepository(db *gorm.DB) ArticuloRepository {
	return &articuloRepository{db: db}
}

func (r *articuloRepository) WithTx(tx *gorm.DB) ArticuloRepository {
	if tx == nil {
		return r
	}
	return &articuloRepository{db: tx}
}

func (r *articuloRepository) Crear(ctx context.Context, a *model.Articulo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *articuloRepository) ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Articulo, error) {
	var a model.Articulo
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Where("id = ?", id).
		Take(&a).Error
	if err != nil {
		return nil, traducir(err, model.EntidadArticulo, id.String(), "")
	}
	return &a, nil
}

func (r *articuloRepository) Listar(ctx context.Context, f ArticuloFiltro) ([]model.Articulo, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.Articulo{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Familia != "" {
		q = q.Where("familia = ?", f.Familia)
	}
	if f.CategoriaLvl1 != "" {
		q = q.Where("categoria_lvl1 = ?", f.CategoriaLvl1)
	}
	if f.Marca != "" {
		q = q.Where("marca = ?", f.Marca)
	}
	if f.Buscar != "" {
		patron := "%" + f.Buscar + "%"
		q = q.Where("descripcion ILIKE ? OR modelo ILIKE ? OR codigo_fabricante ILIKE ?", patron, patron, patron)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	var articulos []model.Articulo
	err := q.Order("descripcion ASC").Limit(limit).Offset(f.Offset).Find(&articulos).Error
	return articulos, total, err
}

func (r *articuloRepository) Actualizar(ctx context.Context, a *model.Articulo) error {
	return r.db.WithContext(ctx).Save(a).Error
}
