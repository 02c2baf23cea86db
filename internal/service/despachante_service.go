package service

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DespachanteService interface {
	Crear(ctx context.Context, actor uuid.UUID, d *model.Despachante) error
	Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Despachante, error)
	Listar(ctx context.Context, incluirEliminados bool, limit, offset int) ([]model.Despachante, int64, error)
	Actualizar(ctx context.Context, actor uuid.UUID, d *model.Despachante) error
}

type despachanteService struct {
	repo        repository.DespachanteRepository
	actividades ActividadService
	db          *gorm.DB
}

func NewDespachanteService(repo repository.DespachanteRepository, actividades ActividadService, db *gorm.DB) DespachanteService {
	return &despachanteService{repo: repo, actividades: actividades, db: db}
}

func (s *despachanteService) Crear(ctx context.Context, actor uuid.UUID, d *model.Despachante) error {
	if d.RazonSocial == "" {
		return workflow.Validacion("razon_social", "obligatoria")
	}
	if err := validarCUIT(d.CUIT); err != nil {
		return err
	}
	d.CreatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Crear(ctx, d); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadDespachante, d.ID, nil)
	})
}

func (s *despachanteService) Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Despachante, error) {
	d, err := s.repo.ObtenerPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadDespachante, id)
	return d, nil
}

func (s *despachanteService) Listar(ctx context.Context, incluirEliminados bool, limit, offset int) ([]model.Despachante, int64, error) {
	return s.repo.Listar(ctx, incluirEliminados, limit, offset)
}

func (s *despachanteService) Actualizar(ctx context.Context, actor uuid.UUID, d *model.Despachante) error {
	if err := validarCUIT(d.CUIT); err != nil {
		return err
	}
	d.UpdatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Actualizar(ctx, d); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadDespachante, d.ID, nil)
	})
}
