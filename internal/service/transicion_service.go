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

// TransicionService applies status transitions against the per-document
// tables. Every accepted transition writes its audit event in the same
// transaction; a rejected one leaves no trace.
type TransicionService interface {
	Transicionar(ctx context.Context, actor *uuid.UUID, entidadTipo string, id uuid.UUID, destino string) error
	EstadosPosibles(ctx context.Context, entidadTipo string, id uuid.UUID) (string, []string, error)
}

type transicionService struct {
	docs        repository.DocumentoRepository
	actividades ActividadService
	ahora       func() time.Time
}

func NewTransicionService(docs repository.DocumentoRepository, actividades ActividadService) TransicionService {
	return &transicionService{docs: docs, actividades: actividades, ahora: time.Now}
}

func (s *transicionService) Transicionar(ctx context.Context, actor *uuid.UUID, entidadTipo string, id uuid.UUID, destino string) error {
	tabla, ok := workflow.PorEntidad[entidadTipo]
	if !ok {
		return workflow.Validacion("entidad_tipo", "no admite transiciones de estado")
	}

	de, err := s.docs.ObtenerEstado(ctx, entidadTipo, id)
	if err != nil {
		return err
	}

	if err := tabla.Validar(entidadTipo, de, destino); err != nil {
		return err
	}

	// Moving a document to its expired estado requires the expiry date to
	// have actually passed; VENCIDO is a fact, not a choice.
	if vencido, expira := workflow.EstadoVencido(entidadTipo); expira && destino == vencido {
		fv, err := s.docs.ObtenerFechaVencimiento(ctx, entidadTipo, id)
		if err != nil {
			return err
		}
		if fv == nil || !fv.Before(s.ahora().UTC()) {
			return workflow.Validacion("fecha_vencimiento", "todavia no vencio")
		}
	}

	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.docs.ActualizarEstadoTx(tx, entidadTipo, id, de, destino, actor); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, actor, workflow.TipoActividad(destino), entidadTipo, id,
			model.JSONB{"de": de, "a": destino})
	})
}

// EstadosPosibles returns the current estado and its allowed successors.
func (s *transicionService) EstadosPosibles(ctx context.Context, entidadTipo string, id uuid.UUID) (string, []string, error) {
	tabla, ok := workflow.PorEntidad[entidadTipo]
	if !ok {
		return "", nil, workflow.Validacion("entidad_tipo", "no admite transiciones de estado")
	}
	de, err := s.docs.ObtenerEstado(ctx, entidadTipo, id)
	if err != nil {
		return "", nil, err
	}
	sucesores := make([]string, 0, len(tabla[de]))
	sucesores = append(sucesores, tabla[de]...)
	return de, sucesores, nil
}
