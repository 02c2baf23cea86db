package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SolpedFiltro struct {
	Status            string
	IncluirEliminados bool
	Limit             int
	Offset            int
}

type SolpedRepository interface {
	WithTx(tx *gorm.DB) SolpedRepository
	Crear(ctx context.Context, s *model.Solped) error
	CrearTx(tx *gorm.DB, s *model.Solped) error
	ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Solped, error)
	Listar(ctx context.Context, f SolpedFiltro) ([]model.Solped, int64, error)
	ProximoNumero(ctx context.Context) (int, error)
	AgregarDetalle(ctx context.Context, d *model.DetalleSolped) error
	QuitarDetalle(ctx context.Context, solpedID, detalleID uuid.UUID, actor uuid.UUID) error
}

type solpedRepository struct {
	db *gorm.DB
}

func NewSolpedRepository(db *gorm.DB) SolpedRepository {
	return &solpedRepository{db: db}
}

func (r *solpedRepository) WithTx(tx *gorm.DB) SolpedRepository {
	if tx == nil {
		return r
	}
	return &solpedRepository{db: tx}
}

func (r *solpedRepository) Crear(ctx context.Context, s *model.Solped) error {
	err := r.db.WithContext(ctx).Create(s).Error
	return traducir(err, model.EntidadSolped, "", "nro_solped")
}

func (r *solpedRepository) CrearTx(tx *gorm.DB, s *model.Solped) error {
	err := tx.Create(s).Error
	return traducir(err, model.EntidadSolped, "", "nro_solped")
}

func (r *solpedRepository) ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Solped, error) {
	var s model.Solped
	q := alcance(r.db.WithContext(ctx), incluirEliminados)
	if incluirEliminados {
		q = q.Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })
	} else {
		q = q.Preload("Detalles")
	}
	err := q.Where("id = ?", id).Take(&s).Error
	if err != nil {
		return nil, traducir(err, model.EntidadSolped, id.String(), "")
	}
	return &s, nil
}

func (r *solpedRepository) Listar(ctx context.Context, f SolpedFiltro) ([]model.Solped, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.Solped{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var solpeds []model.Solped
	err := q.Order("nro_solped DESC").Limit(limit).Offset(f.Offset).Find(&solpeds).Error
	return solpeds, total, err
}

// ProximoNumero allocates the next visible Solped number. Numbers of deleted
// Solpeds are never reused, so the max runs over all rows including deleted.
func (r *solpedRepository) ProximoNumero(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Unscoped().Model(&model.Solped{}).
		Select("MAX(nro_solped)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1001, nil
	}
	return *max + 1, nil
}

func (r *solpedRepository) AgregarDetalle(ctx context.Context, d *model.DetalleSolped) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *solpedRepository) QuitarDetalle(ctx context.Context, solpedID, detalleID uuid.UUID, actor uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.DetalleSolped{}).
		Where("id = ? AND solped_id = ?", detalleID, solpedID).
		Updates(map[string]any{"deleted_at": gorm.Expr("NOW()"), "deleted_by": actor})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &workflow.ErrNoEncontrado{Entidad: model.EntidadSolped, ID: detalleID.String()}
	}
	return nil
}
