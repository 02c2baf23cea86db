package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnvioFiltro struct {
	Status            string
	RemitoID          *uuid.UUID
	DespachanteID     *uuid.UUID
	IncluirEliminados bool
	Limit             int
	Offset            int
}

type EnvioRepository interface {
	WithTx(tx *gorm.DB) EnvioRepository
	Crear(ctx context.Context, e *model.Envio) error
	ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Envio, error)
	ObtenerPorSeguimiento(ctx context.Context, numero string) (*model.Envio, error)
	Listar(ctx context.Context, f EnvioFiltro) ([]model.Envio, int64, error)
	Actualizar(ctx context.Context, e *model.Envio) error
}

type envioRepository struct {
	db *gorm.DB
}

func NewEnvioRepository(db *gorm.DB) EnvioRepository {
	return &envioRepository{db: db}
}

func (r *envioRepository) WithTx(tx *gorm.DB) EnvioRepository {
	if tx == nil {
		return r
	}
	return &envioRepository{db: tx}
}

func (r *envioRepository) Crear(ctx context.Context, e *model.Envio) error {
	err := r.db.WithContext(ctx).Create(e).Error
	return traducir(err, model.EntidadEnvio, "", "numero_seguimiento")
}

func (r *envioRepository) ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Envio, error) {
	var e model.Envio
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Preload("Remito").
		Preload("Despachante").
		Where("id = ?", id).
		Take(&e).Error
	if err != nil {
		return nil, traducir(err, model.EntidadEnvio, id.String(), "")
	}
	return &e, nil
}

func (r *envioRepository) ObtenerPorSeguimiento(ctx context.Context, numero string) (*model.Envio, error) {
	var e model.Envio
	err := r.db.WithContext(ctx).
		Preload("Remito").
		Preload("Despachante").
		Where("numero_seguimiento = ?", numero).
		Take(&e).Error
	if err != nil {
		return nil, traducir(err, model.EntidadEnvio, numero, "")
	}
	return &e, nil
}

func (r *envioRepository) Listar(ctx context.Context, f EnvioFiltro) ([]model.Envio, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.Envio{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RemitoID != nil {
		q = q.Where("remito_id = ?", *f.RemitoID)
	}
	if f.DespachanteID != nil {
		q = q.Where("despachante_id = ?", *f.DespachanteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var envios []model.Envio
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&envios).Error
	return envios, total, err
}

func (r *envioRepository) Actualizar(ctx context.Context, e *model.Envio) error {
	err := r.db.WithContext(ctx).Save(e).Error
	return traducir(err, model.EntidadEnvio, e.ID.String(), "numero_seguimiento")
}
