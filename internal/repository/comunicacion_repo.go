package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComunicacionFiltro struct {
	EntidadTipo string
	EntidadID   *uuid.UUID
	UsuarioID   *uuid.UUID
	Limit       int
	Offset      int
}

type ComunicacionRepository interface {
	WithTx(tx *gorm.DB) ComunicacionRepository
	Crear(ctx context.Context, c *model.Comunicacion) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Comunicacion, error)
	Listar(ctx context.Context, f ComunicacionFiltro) ([]model.Comunicacion, int64, error)
}

type comunicacionRepository struct {
	db *gorm.DB
}

func NewComunicacionRepository(db *gorm.DB) ComunicacionRepository {
	return &comunicacionRepository{db: db}
}

func (r *comunicacionRepository) WithTx(tx *gorm.DB) ComunicacionRepository {
	if tx == nil {
		return r
	}
	return &comunicacionRepository{db: tx}
}

func (r *comunicacionRepository) Crear(ctx context.Context, c *model.Comunicacion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *comunicacionRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Comunicacion, error) {
	var c model.Comunicacion
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("id = ?", id).
		Take(&c).Error
	if err != nil {
		return nil, traducir(err, model.EntidadComunicacion, id.String(), "")
	}
	return &c, nil
}

func (r *comunicacionRepository) Listar(ctx context.Context, f ComunicacionFiltro) ([]model.Comunicacion, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Comunicacion{})

	if f.EntidadTipo != "" {
		q = q.Where("entidad_tipo = ?", f.EntidadTipo)
	}
	if f.EntidadID != nil {
		q = q.Where("entidad_id = ?", *f.EntidadID)
	}
	if f.UsuarioID != nil {
		q = q.Where("usuario_id = ?", *f.UsuarioID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var comunicaciones []model.Comunicacion
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&comunicaciones).Error
	return comunicaciones, total, err
}
