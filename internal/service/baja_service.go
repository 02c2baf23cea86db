package service

import (
	"context"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BajaService implements soft delete and restore. A delete stamps the record
// and its line items / junction rows with one shared timestamp; restore
// brings back exactly the rows of that deletion batch.
type BajaService interface {
	Eliminar(ctx context.Context, actor uuid.UUID, entidadTipo string, id uuid.UUID) error
	Restaurar(ctx context.Context, actor uuid.UUID, entidadTipo string, id uuid.UUID) error
}

type bajaService struct {
	docs        repository.DocumentoRepository
	actividades ActividadService
	ahora       func() time.Time
}

func NewBajaService(docs repository.DocumentoRepository, actividades ActividadService) BajaService {
	return &bajaService{docs: docs, actividades: actividades, ahora: time.Now}
}

func (s *bajaService) Eliminar(ctx context.Context, actor uuid.UUID, entidadTipo string, id uuid.UUID) error {
	if !repository.EntidadConocida(entidadTipo) {
		return workflow.Validacion("entidad_tipo", "desconocido")
	}

	// Postgres stores timestamps at microsecond precision; the batch
	// timestamp must round-trip exactly for restore to find its rows.
	momento := s.ahora().UTC().Truncate(time.Microsecond)

	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.docs.MarcarEliminadoTx(tx, entidadTipo, id, actor, momento); err != nil {
			return err
		}
		dependientes, err := s.docs.MarcarDependientesEliminadosTx(tx, entidadTipo, id, actor, momento)
		if err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadDelete, entidadTipo, id,
			model.JSONB{"dependientes": dependientes})
	})
}

func (s *bajaService) Restaurar(ctx context.Context, actor uuid.UUID, entidadTipo string, id uuid.UUID) error {
	if !repository.EntidadConocida(entidadTipo) {
		return workflow.Validacion("entidad_tipo", "desconocido")
	}

	momento, err := s.docs.ObtenerMomentoEliminacion(ctx, entidadTipo, id)
	if err != nil {
		return err
	}

	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.docs.RestaurarTx(tx, entidadTipo, id, momento); err != nil {
			return err
		}
		dependientes, err := s.docs.RestaurarDependientesTx(tx, entidadTipo, id, momento)
		if err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, entidadTipo, id,
			model.JSONB{"accion": "restauracion", "dependientes": dependientes})
	})
}
