package service

import (
	"context"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoCotizacionService manages client quote requests and their
// per-supplier counterparts.
type PedidoCotizacionService interface {
	Crear(ctx context.Context, actor uuid.UUID, p *model.PedidoDeCotizacion) error
	Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.PedidoDeCotizacion, error)
	Listar(ctx context.Context, f repository.PedidoCotizacionFiltro) ([]model.PedidoDeCotizacion, int64, error)
	VincularSolped(ctx context.Context, actor uuid.UUID, pedidoID, solpedID uuid.UUID) error

	CrearProveedor(ctx context.Context, actor uuid.UUID, p *model.PedidoCotizacionProveedor) error
	ObtenerProveedor(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.PedidoCotizacionProveedor, error)
	ListarProveedor(ctx context.Context, f repository.PedidoCotizacionProveedorFiltro) ([]model.PedidoCotizacionProveedor, int64, error)
	AgregarDetalleProveedor(ctx context.Context, actor uuid.UUID, d *model.DetallePedidoCotizacionProveedor) error
}

type pedidoCotizacionService struct {
	repo        repository.PedidoCotizacionRepository
	docs        repository.DocumentoRepository
	actividades ActividadService
	ahora       func() time.Time
}

func NewPedidoCotizacionService(repo repository.PedidoCotizacionRepository, docs repository.DocumentoRepository, actividades ActividadService) PedidoCotizacionService {
	return &pedidoCotizacionService{repo: repo, docs: docs, actividades: actividades, ahora: time.Now}
}

func (s *pedidoCotizacionService) validarVencimiento(fv *time.Time) error {
	if fv != nil && fv.Before(s.ahora().UTC().Truncate(24*time.Hour)) {
		return workflow.Validacion("fecha_vencimiento", "no puede estar en el pasado")
	}
	return nil
}

func (s *pedidoCotizacionService) Crear(ctx context.Context, actor uuid.UUID, p *model.PedidoDeCotizacion) error {
	if err := s.validarVencimiento(p.FechaVencimiento); err != nil {
		return err
	}
	p.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Crear(ctx, p); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadPedidoCotizacion, p.ID, nil)
	})
}

func (s *pedidoCotizacionService) Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.PedidoDeCotizacion, error) {
	p, err := s.repo.ObtenerPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadPedidoCotizacion, id)
	return p, nil
}

func (s *pedidoCotizacionService) Listar(ctx context.Context, f repository.PedidoCotizacionFiltro) ([]model.PedidoDeCotizacion, int64, error) {
	return s.repo.Listar(ctx, f)
}

func (s *pedidoCotizacionService) VincularSolped(ctx context.Context, actor uuid.UUID, pedidoID, solpedID uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, pedidoID, false); err != nil {
		return err
	}
	if _, err := s.docs.ObtenerEstado(ctx, model.EntidadSolped, solpedID); err != nil {
		return err
	}
	v := &model.PedidoCotizacionSolped{PedidoCotizacionID: pedidoID, SolpedID: solpedID}
	v.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).VincularSolped(ctx, v); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadPedidoCotizacion, pedidoID,
			model.JSONB{"solped": solpedID.String(), "accion": "vinculo_solped"})
	})
}

func (s *pedidoCotizacionService) CrearProveedor(ctx context.Context, actor uuid.UUID, p *model.PedidoCotizacionProveedor) error {
	if err := s.validarVencimiento(p.FechaVencimiento); err != nil {
		return err
	}
	p.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CrearProveedor(ctx, p); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadPedidoCotizacionProveedor, p.ID, nil)
	})
}

func (s *pedidoCotizacionService) ObtenerProveedor(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.PedidoCotizacionProveedor, error) {
	p, err := s.repo.ObtenerProveedorPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadPedidoCotizacionProveedor, id)
	return p, nil
}

func (s *pedidoCotizacionService) ListarProveedor(ctx context.Context, f repository.PedidoCotizacionProveedorFiltro) ([]model.PedidoCotizacionProveedor, int64, error) {
	return s.repo.ListarProveedor(ctx, f)
}

func (s *pedidoCotizacionService) AgregarDetalleProveedor(ctx context.Context, actor uuid.UUID, d *model.DetallePedidoCotizacionProveedor) error {
	if d.CantidadValor.LessThanOrEqual(decimal.Zero) {
		return workflow.Validacion("cantidad_valor", "debe ser mayor a cero")
	}
	p, err := s.repo.ObtenerProveedorPorID(ctx, d.PedidoCotizacionProveedorID, false)
	if err != nil {
		return err
	}
	if p.Status != model.EstadoPedidoBorrador {
		return workflow.Validacion("status", "solo se agregan lineas en BORRADOR")
	}
	if err := verificarArticulo(ctx, s.docs, d.ArticuloID); err != nil {
		return err
	}
	d.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).AgregarDetalleProveedor(ctx, d); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadPedidoCotizacionProveedor, p.ID,
			model.JSONB{"detalle": d.ID.String(), "accion": "alta_detalle"})
	})
}
