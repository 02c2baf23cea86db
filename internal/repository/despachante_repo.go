package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DespachanteRepository interface {
	WithTx(tx *gorm.DB) DespachanteRepository
	Crear(ctx context.Context, d *model.Despachante) error
	ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Despachante, error)
	Listar(ctx context.Context, incluirEliminados bool, limit, offset int) ([]model.Despachante, int64, error)
	Actualizar(ctx context.Context, d *model.Despachante) error
}

type despachanteRepository struct {
	db *gorm.DB
}

func NewDespachanteRepository(db *gorm.DB) DespachanteRepository {
	return &despachanteRepository{db: db}
}

func (r *despachanteRepository) WithTx(tx *gorm.DB) DespachanteRepository {
	if tx == nil {
		return r
	}
	return &despachanteRepository{db: tx}
}

func (r *despachanteRepository) Crear(ctx context.Context, d *model.Despachante) error {
	err := r.db.WithContext(ctx).Create(d).Error
	return traducir(err, model.EntidadDespachante, "", "cuit")
}

func (r *despachanteRepository) ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Despachante, error) {
	var d model.Despachante
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Where("id = ?", id).
		Take(&d).Error
	if err != nil {
		return nil, traducir(err, model.EntidadDespachante, id.String(), "")
	}
	return &d, nil
}

func (r *despachanteRepository) Listar(ctx context.Context, incluirEliminados bool, limit, offset int) ([]model.Despachante, int64, error) {
	q := alcance(r.db.WithContext(ctx), incluirEliminados).Model(&model.Despachante{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var despachantes []model.Despachante
	err := q.Order("razon_social ASC").Limit(limit).Offset(offset).Find(&despachantes).Error
	return despachantes, total, err
}

func (r *despachanteRepository) Actualizar(ctx context.Context, d *model.Despachante) error {
	err := r.db.WithContext(ctx).Save(d).Error
	return traducir(err, model.EntidadDespachante, d.ID.String(), "cuit")
}
