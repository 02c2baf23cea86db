package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RemitoFiltro struct {
	Status            string
	DestinatarioID    *uuid.UUID
	IncluirEliminados bool
	Limit             int
	Offset            int
}

type RemitoRepository interface {
	WithTx(tx *gorm.DB) RemitoRepository
	Crear(ctx context.Context, rem *model.Remito) error
	ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Remito, error)
	Listar(ctx context.Context, f RemitoFiltro) ([]model.Remito, int64, error)
	Actualizar(ctx context.Context, rem *model.Remito) error
	AgregarDetalle(ctx context.Context, d *model.DetalleRemito) error
}

type remitoRepository struct {
	db *gorm.DB
}

func NewRemitoRepository(db *gorm.DB) RemitoRepository {
	return &remitoRepository{db: db}
}

func (r *remitoRepository) WithTx(tx *gorm.DB) RemitoRepository {
	if tx == nil {
		return r
	}
	return &remitoRepository{db: tx}
}

func (r *remitoRepository) Crear(ctx context.Context, rem *model.Remito) error {
	err := r.db.WithContext(ctx).Create(rem).Error
	return traducir(err, model.EntidadRemito, "", "numero_remito")
}

func (r *remitoRepository) ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Remito, error) {
	var rem model.Remito
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Preload("Destinatario").
		Preload("Detalles.Articulo").
		Where("id = ?", id).
		Take(&rem).Error
	if err != nil {
		return nil, traducir(err, model.EntidadRemito, id.String(), "")
	}
	return &rem, nil
}

func (r *remitoRepository) Listar(ctx context.Context, f RemitoFiltro) ([]model.Remito, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.Remito{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.DestinatarioID != nil {
		q = q.Where("destinatario_id = ?", *f.DestinatarioID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var remitos []model.Remito
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&remitos).Error
	return remitos, total, err
}

func (r *remitoRepository) Actualizar(ctx context.Context, rem *model.Remito) error {
	err := r.db.WithContext(ctx).Save(rem).Error
	return traducir(err, model.EntidadRemito, rem.ID.String(), "numero_remito")
}

func (r *remitoRepository) AgregarDetalle(ctx context.Context, d *model.DetalleRemito) error {
	return r.db.WithContext(ctx).Create(d).Error
}
