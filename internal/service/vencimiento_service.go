package service

import (
	"context"
	"errors"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const loteVencimiento = 500

// VencimientoService sweeps quote requests and quotes past their expiry date
// into their VENCIDO/VENCIDA estado. The sweep is idempotent: documents
// already expired or terminal are never picked up again.
type VencimientoService interface {
	Barrer(ctx context.Context) (int, error)
}

type vencimientoService struct {
	docs        repository.DocumentoRepository
	actividades ActividadService
	ahora       func() time.Time
}

func NewVencimientoService(docs repository.DocumentoRepository, actividades ActividadService) VencimientoService {
	return &vencimientoService{docs: docs, actividades: actividades, ahora: time.Now}
}

// Barrer returns how many documents it expired. Per-document races lost to
// concurrent writers are skipped, not failed: the next pass settles them.
func (s *vencimientoService) Barrer(ctx context.Context) (int, error) {
	corte := s.ahora().UTC()
	var vencidos int

	for _, entidadTipo := range workflow.EntidadesExpirables {
		ids, err := s.docs.ListarVencibles(ctx, entidadTipo, corte, loteVencimiento)
		if err != nil {
			return vencidos, err
		}
		for _, id := range ids {
			if err := s.vencer(ctx, entidadTipo, id); err != nil {
				var conflicto *workflow.ErrConflicto
				var noEncontrado *workflow.ErrNoEncontrado
				if errors.As(err, &conflicto) || errors.As(err, &noEncontrado) {
					log.Debug().
						Str("entidad_tipo", entidadTipo).
						Str("entidad_id", id.String()).
						Msg("documento movido por otro escritor durante el barrido")
					continue
				}
				return vencidos, err
			}
			vencidos++
		}
	}
	return vencidos, nil
}

func (s *vencimientoService) vencer(ctx context.Context, entidadTipo string, id uuid.UUID) error {
	destino, _ := workflow.EstadoVencido(entidadTipo)
	tabla := workflow.PorEntidad[entidadTipo]

	de, err := s.docs.ObtenerEstado(ctx, entidadTipo, id)
	if err != nil {
		return err
	}
	if err := tabla.Validar(entidadTipo, de, destino); err != nil {
		// Already terminal or already expired: nothing to do.
		return nil
	}

	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.docs.ActualizarEstadoTx(tx, entidadTipo, id, de, destino, nil); err != nil {
			return err
		}
		// Actor nil: the sweep acts on its own, not on behalf of a user.
		return s.actividades.RegistrarTx(tx, nil, model.ActividadUpdate, entidadTipo, id,
			model.JSONB{"de": de, "a": destino, "motivo": "vencimiento"})
	})
}
