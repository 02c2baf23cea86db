package service

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticuloService interface {
	Crear(ctx context.Context, actor uuid.UUID, a *model.Articulo) error
	Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Articulo, error)
	Listar(ctx context.Context, f repository.ArticuloFiltro) ([]model.Articulo, int64, error)
	Actualizar(ctx context.Context, actor uuid.UUID, a *model.Articulo) error
}

type articuloService struct {
	repo        repository.ArticuloRepository
	actividades ActividadService
	db          *gorm.DB
}

func NewArticuloService(repo repository.ArticuloRepository, actividades ActividadService, db *gorm.DB) ArticuloService {
	return &articuloService{repo: repo, actividades: actividades, db: db}
}

// validarMedidas enforces that value and unit of each dimension come paired.
func validarMedidas(a *model.Articulo) error {
	medidas := map[string]model.Medida{
		"peso":  a.Peso,
		"largo": a.Largo,
		"alto":  a.Alto,
		"ancho": a.Ancho,
	}
	for nombre, m := range medidas {
		if (m.Valor == nil) != (m.Unidad == nil) {
			return workflow.Validacion(nombre, "valor y unidad se informan juntos")
		}
	}
	return nil
}

func (s *articuloService) Crear(ctx context.Context, actor uuid.UUID, a *model.Articulo) error {
	if a.Descripcion == "" {
		return workflow.Validacion("descripcion", "obligatoria")
	}
	if err := validarMedidas(a); err != nil {
		return err
	}
	a.CreatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Crear(ctx, a); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadArticulo, a.ID, nil)
	})
}

func (s *articuloService) Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Articulo, error) {
	a, err := s.repo.ObtenerPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadArticulo, id)
	return a, nil
}

func (s *articuloService) Listar(ctx context.Context, f repository.ArticuloFiltro) ([]model.Articulo, int64, error) {
	return s.repo.Listar(ctx, f)
}

func (s *articuloService) Actualizar(ctx context.Context, actor uuid.UUID, a *model.Articulo) error {
	if err := validarMedidas(a); err != nil {
		return err
	}
	a.UpdatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Actualizar(ctx, a); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadArticulo, a.ID, nil)
	})
}
