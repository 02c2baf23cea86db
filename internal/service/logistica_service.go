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

// LogisticaService covers delivery receipts (remitos) and the physical
// shipments that carry them.
type LogisticaService interface {
	CrearRemito(ctx context.Context, actor uuid.UUID, r *model.Remito) error
	ObtenerRemito(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Remito, error)
	ListarRemitos(ctx context.Context, f repository.RemitoFiltro) ([]model.Remito, int64, error)
	AgregarDetalleRemito(ctx context.Context, actor uuid.UUID, d *model.DetalleRemito) error

	CrearEnvio(ctx context.Context, actor uuid.UUID, e *model.Envio) error
	ObtenerEnvio(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Envio, error)
	RastrearEnvio(ctx context.Context, numeroSeguimiento string) (*model.Envio, error)
	ListarEnvios(ctx context.Context, f repository.EnvioFiltro) ([]model.Envio, int64, error)
}

type logisticaService struct {
	remitos     repository.RemitoRepository
	envios      repository.EnvioRepository
	docs        repository.DocumentoRepository
	actividades ActividadService
}

func NewLogisticaService(remitos repository.RemitoRepository, envios repository.EnvioRepository, docs repository.DocumentoRepository, actividades ActividadService) LogisticaService {
	return &logisticaService{remitos: remitos, envios: envios, docs: docs, actividades: actividades}
}

func (s *logisticaService) CrearRemito(ctx context.Context, actor uuid.UUID, r *model.Remito) error {
	r.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.remitos.WithTx(tx).Crear(ctx, r); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadRemito, r.ID, nil)
	})
}

func (s *logisticaService) ObtenerRemito(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Remito, error) {
	r, err := s.remitos.ObtenerPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadRemito, id)
	return r, nil
}

func (s *logisticaService) ListarRemitos(ctx context.Context, f repository.RemitoFiltro) ([]model.Remito, int64, error) {
	return s.remitos.Listar(ctx, f)
}

func (s *logisticaService) AgregarDetalleRemito(ctx context.Context, actor uuid.UUID, d *model.DetalleRemito) error {
	if d.CantidadValor.LessThanOrEqual(decimal.Zero) {
		return workflow.Validacion("cantidad_valor", "debe ser mayor a cero")
	}
	r, err := s.remitos.ObtenerPorID(ctx, d.RemitoID, false)
	if err != nil {
		return err
	}
	if r.Status != model.EstadoRemitoBorrador {
		return workflow.Validacion("status", "solo se agregan lineas en BORRADOR")
	}
	if err := verificarArticulo(ctx, s.docs, d.ArticuloID); err != nil {
		return err
	}
	d.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.remitos.WithTx(tx).AgregarDetalle(ctx, d); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadRemito, r.ID,
			model.JSONB{"detalle": d.ID.String(), "accion": "alta_detalle"})
	})
}

func (s *logisticaService) CrearEnvio(ctx context.Context, actor uuid.UUID, e *model.Envio) error {
	// A shipment always starts from an existing remito.
	if _, err := s.remitos.ObtenerPorID(ctx, e.RemitoID, false); err != nil {
		return err
	}
	e.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.envios.WithTx(tx).Crear(ctx, e); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadEnvio, e.ID, nil)
	})
}

func (s *logisticaService) ObtenerEnvio(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Envio, error) {
	e, err := s.envios.ObtenerPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadEnvio, id)
	return e, nil
}

func (s *logisticaService) RastrearEnvio(ctx context.Context, numeroSeguimiento string) (*model.Envio, error) {
	return s.envios.ObtenerPorSeguimiento(ctx, numeroSeguimiento)
}

func (s *logisticaService) ListarEnvios(ctx context.Context, f repository.EnvioFiltro) ([]model.Envio, int64, error) {
	return s.envios.Listar(ctx, f)
}
