package service

import (
	"context"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// VistaEncolador pushes read-audit events onto the async queue. The worker
// pool drains it into the actividades table.
type VistaEncolador interface {
	EncolarVista(ctx context.Context, a model.Actividad) error
}

// ActividadService records and queries the audit trail. Mutation audits are
// written in the same transaction as the mutation; view audits go through the
// queue so reads stay cheap.
type ActividadService interface {
	Registrar(ctx context.Context, actor *uuid.UUID, tipo, entidadTipo string, entidadID uuid.UUID, data model.JSONB) error
	RegistrarTx(tx *gorm.DB, actor *uuid.UUID, tipo, entidadTipo string, entidadID uuid.UUID, data model.JSONB) error
	RegistrarVista(ctx context.Context, actor uuid.UUID, entidadTipo string, entidadID uuid.UUID)
	Listar(ctx context.Context, f repository.ActividadFiltro) ([]model.Actividad, int64, error)
}

type actividadService struct {
	repo   repository.ActividadRepository
	vistas VistaEncolador
}

// NewActividadService builds the audit recorder. vistas may be nil; view
// audits are then written synchronously.
func NewActividadService(repo repository.ActividadRepository, vistas VistaEncolador) ActividadService {
	return &actividadService{repo: repo, vistas: vistas}
}

func evento(actor *uuid.UUID, tipo, entidadTipo string, entidadID uuid.UUID, data model.JSONB) *model.Actividad {
	return &model.Actividad{
		UsuarioID:   actor,
		Fecha:       time.Now().UTC(),
		Tipo:        tipo,
		EntidadTipo: entidadTipo,
		EntidadID:   entidadID,
		Data:        data,
	}
}

func (s *actividadService) Registrar(ctx context.Context, actor *uuid.UUID, tipo, entidadTipo string, entidadID uuid.UUID, data model.JSONB) error {
	return s.repo.Crear(ctx, evento(actor, tipo, entidadTipo, entidadID, data))
}

func (s *actividadService) RegistrarTx(tx *gorm.DB, actor *uuid.UUID, tipo, entidadTipo string, entidadID uuid.UUID, data model.JSONB) error {
	return s.repo.CrearTx(tx, evento(actor, tipo, entidadTipo, entidadID, data))
}

// RegistrarVista never fails the read it decorates: queue errors fall back to
// a synchronous write, and a failure there is only logged.
func (s *actividadService) RegistrarVista(ctx context.Context, actor uuid.UUID, entidadTipo string, entidadID uuid.UUID) {
	a := evento(&actor, model.ActividadView, entidadTipo, entidadID, nil)

	if s.vistas != nil {
		if err := s.vistas.EncolarVista(ctx, *a); err == nil {
			return
		} else {
			log.Warn().Err(err).
				Str("entidad_tipo", entidadTipo).
				Str("entidad_id", entidadID.String()).
				Msg("no se pudo encolar la vista, registrando en forma sincrona")
		}
	}

	if err := s.repo.Crear(ctx, a); err != nil {
		log.Error().Err(err).
			Str("entidad_tipo", entidadTipo).
			Str("entidad_id", entidadID.String()).
			Msg("no se pudo registrar la actividad de vista")
	}
}

func (s *actividadService) Listar(ctx context.Context, f repository.ActividadFiltro) ([]model.Actividad, int64, error) {
	return s.repo.Listar(ctx, f)
}
