package service

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComunicacionService attaches free-text notes to entities.
type ComunicacionService interface {
	Crear(ctx context.Context, actor uuid.UUID, c *model.Comunicacion) error
	Obtener(ctx context.Context, id uuid.UUID) (*model.Comunicacion, error)
	Listar(ctx context.Context, f repository.ComunicacionFiltro) ([]model.Comunicacion, int64, error)
}

type comunicacionService struct {
	repo        repository.ComunicacionRepository
	actividades ActividadService
	db          *gorm.DB
}

func NewComunicacionService(repo repository.ComunicacionRepository, actividades ActividadService, db *gorm.DB) ComunicacionService {
	return &comunicacionService{repo: repo, actividades: actividades, db: db}
}

func (s *comunicacionService) Crear(ctx context.Context, actor uuid.UUID, c *model.Comunicacion) error {
	if c.Contenido == "" {
		return workflow.Validacion("contenido", "obligatorio")
	}
	// The polymorphic target comes as a pair or not at all, and the tipo
	// must belong to the closed entity set.
	if (c.EntidadTipo == nil) != (c.EntidadID == nil) {
		return workflow.Validacion("entidad", "tipo e id se informan juntos")
	}
	if c.EntidadTipo != nil && !repository.EntidadConocida(*c.EntidadTipo) {
		return workflow.Validacion("entidad_tipo", "desconocido")
	}
	c.UsuarioID = actor
	c.CreatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Crear(ctx, c); err != nil {
			return err
		}
		if c.EntidadTipo == nil {
			return nil
		}
		// A note on an entity is part of that entity's history.
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, *c.EntidadTipo, *c.EntidadID,
			model.JSONB{"comunicacion": c.ID.String(), "accion": "alta_comunicacion"})
	})
}

func (s *comunicacionService) Obtener(ctx context.Context, id uuid.UUID) (*model.Comunicacion, error) {
	return s.repo.ObtenerPorID(ctx, id)
}

func (s *comunicacionService) Listar(ctx context.Context, f repository.ComunicacionFiltro) ([]model.Comunicacion, int64, error) {
	return s.repo.Listar(ctx, f)
}
