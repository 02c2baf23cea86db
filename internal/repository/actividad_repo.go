package repository

import (
	"context"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActividadFiltro narrows an audit trail query. Zero values mean "any".
type ActividadFiltro struct {
	EntidadTipo string
	EntidadID   *uuid.UUID
	UsuarioID   *uuid.UUID
	Tipo        string
	Desde       *time.Time
	Hasta       *time.Time
	Limit       int
	Offset      int
}

// ActividadRepository persists audit events. Events are append-only: there is
// no update or delete on this surface.
type ActividadRepository interface {
	Crear(ctx context.Context, a *model.Actividad) error
	CrearTx(tx *gorm.DB, a *model.Actividad) error
	Listar(ctx context.Context, f ActividadFiltro) ([]model.Actividad, int64, error)
}

type actividadRepository struct {
	db *gorm.DB
}

func NewActividadRepository(db *gorm.DB) ActividadRepository {
	return &actividadRepository{db: db}
}

func (r *actividadRepository) Crear(ctx context.Context, a *model.Actividad) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *actividadRepository) CrearTx(tx *gorm.DB, a *model.Actividad) error {
	return tx.Create(a).Error
}

func (r *actividadRepository) Listar(ctx context.Context, f ActividadFiltro) ([]model.Actividad, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Actividad{})

	if f.EntidadTipo != "" {
		q = q.Where("entidad_tipo = ?", f.EntidadTipo)
	}
	if f.EntidadID != nil {
		q = q.Where("entidad_id = ?", *f.EntidadID)
	}
	if f.UsuarioID != nil {
		q = q.Where("usuario_id = ?", *f.UsuarioID)
	}
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}
	if f.Desde != nil {
		q = q.Where("fecha >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		q = q.Where("fecha <= ?", *f.Hasta)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var actividades []model.Actividad
	err := q.Order("fecha DESC, id DESC").
		Limit(limit).
		Offset(f.Offset).
		Find(&actividades).Error
	return actividades, total, err
}
