package service

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SolpedService interface {
	// Crear allocates the next Solped number and opens the document in
	// BORRADOR. Numbers are never reused, not even those of deleted Solpeds.
	Crear(ctx context.Context, actor uuid.UUID) (*model.Solped, error)
	Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Solped, error)
	Listar(ctx context.Context, f repository.SolpedFiltro) ([]model.Solped, int64, error)
	AgregarDetalle(ctx context.Context, actor uuid.UUID, d *model.DetalleSolped) error
	QuitarDetalle(ctx context.Context, actor uuid.UUID, solpedID, detalleID uuid.UUID) error
}

type solpedService struct {
	repo        repository.SolpedRepository
	docs        repository.DocumentoRepository
	actividades ActividadService
}

func NewSolpedService(repo repository.SolpedRepository, docs repository.DocumentoRepository, actividades ActividadService) SolpedService {
	return &solpedService{repo: repo, docs: docs, actividades: actividades}
}

func (s *solpedService) Crear(ctx context.Context, actor uuid.UUID) (*model.Solped, error) {
	sol := &model.Solped{Status: model.EstadoSolpedBorrador}
	sol.CreatedBy = &actor

	err := runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		nro, err := s.repo.WithTx(tx).ProximoNumero(ctx)
		if err != nil {
			return err
		}
		sol.NroSolped = nro
		if err := s.repo.WithTx(tx).CrearTx(tx, sol); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadSolped, sol.ID,
			model.JSONB{"nro_solped": sol.NroSolped})
	})
	if err != nil {
		return nil, err
	}
	return sol, nil
}

func (s *solpedService) Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Solped, error) {
	sol, err := s.repo.ObtenerPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadSolped, id)
	return sol, nil
}

func (s *solpedService) Listar(ctx context.Context, f repository.SolpedFiltro) ([]model.Solped, int64, error) {
	return s.repo.Listar(ctx, f)
}

func (s *solpedService) AgregarDetalle(ctx context.Context, actor uuid.UUID, d *model.DetalleSolped) error {
	if d.CantidadValor.LessThanOrEqual(decimal.Zero) {
		return workflow.Validacion("cantidad_valor", "debe ser mayor a cero")
	}
	sol, err := s.repo.ObtenerPorID(ctx, d.SolpedID, false)
	if err != nil {
		return err
	}
	if sol.Status != model.EstadoSolpedBorrador {
		return workflow.Validacion("status", "solo se agregan lineas en BORRADOR")
	}
	if err := verificarArticulo(ctx, s.docs, d.ArticuloID); err != nil {
		return err
	}
	d.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).AgregarDetalle(ctx, d); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadSolped, sol.ID,
			model.JSONB{"detalle": d.ID.String(), "accion": "alta_detalle"})
	})
}

func (s *solpedService) QuitarDetalle(ctx context.Context, actor uuid.UUID, solpedID, detalleID uuid.UUID) error {
	sol, err := s.repo.ObtenerPorID(ctx, solpedID, false)
	if err != nil {
		return err
	}
	if sol.Status != model.EstadoSolpedBorrador {
		return workflow.Validacion("status", "solo se quitan lineas en BORRADOR")
	}
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).QuitarDetalle(ctx, solpedID, detalleID, actor); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadSolped, solpedID,
			model.JSONB{"detalle": detalleID.String(), "accion": "baja_detalle"})
	})
}
