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

// OrdenCompraService manages purchase orders on both sides: placed with
// suppliers and received from clients.
type OrdenCompraService interface {
	CrearProveedor(ctx context.Context, actor uuid.UUID, o *model.OrdenCompraProveedor) error
	ObtenerProveedor(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.OrdenCompraProveedor, error)
	ListarProveedor(ctx context.Context, f repository.OrdenCompraFiltro) ([]model.OrdenCompraProveedor, int64, error)
	AgregarDetalleProveedor(ctx context.Context, actor uuid.UUID, d *model.DetalleOrdenCompraProveedor) error

	CrearCliente(ctx context.Context, actor uuid.UUID, o *model.OrdenCompraCliente) error
	ObtenerCliente(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.OrdenCompraCliente, error)
	ListarCliente(ctx context.Context, f repository.OrdenCompraFiltro) ([]model.OrdenCompraCliente, int64, error)
	AgregarDetalleCliente(ctx context.Context, actor uuid.UUID, d *model.DetalleOrdenCompraCliente) error
}

type ordenCompraService struct {
	repo        repository.OrdenCompraRepository
	docs        repository.DocumentoRepository
	actividades ActividadService
}

func NewOrdenCompraService(repo repository.OrdenCompraRepository, docs repository.DocumentoRepository, actividades ActividadService) OrdenCompraService {
	return &ordenCompraService{repo: repo, docs: docs, actividades: actividades}
}

func validarLinea(cantidad, precio decimal.Decimal) error {
	if cantidad.LessThanOrEqual(decimal.Zero) {
		return workflow.Validacion("cantidad_valor", "debe ser mayor a cero")
	}
	if precio.LessThan(decimal.Zero) {
		return workflow.Validacion("precio", "no puede ser negativo")
	}
	return nil
}

func (s *ordenCompraService) CrearProveedor(ctx context.Context, actor uuid.UUID, o *model.OrdenCompraProveedor) error {
	o.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CrearProveedor(ctx, o); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadOrdenCompraProveedor, o.ID, nil)
	})
}

func (s *ordenCompraService) ObtenerProveedor(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.OrdenCompraProveedor, error) {
	o, err := s.repo.ObtenerProveedorPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadOrdenCompraProveedor, id)
	return o, nil
}

func (s *ordenCompraService) ListarProveedor(ctx context.Context, f repository.OrdenCompraFiltro) ([]model.OrdenCompraProveedor, int64, error) {
	return s.repo.ListarProveedor(ctx, f)
}

func (s *ordenCompraService) AgregarDetalleProveedor(ctx context.Context, actor uuid.UUID, d *model.DetalleOrdenCompraProveedor) error {
	if err := validarLinea(d.CantidadValor, d.PrecioUnitarioValor); err != nil {
		return err
	}
	o, err := s.repo.ObtenerProveedorPorID(ctx, d.OrdenCompraProveedorID, false)
	if err != nil {
		return err
	}
	if o.Status != model.EstadoOrdenBorrador {
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
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadOrdenCompraProveedor, o.ID,
			model.JSONB{"detalle": d.ID.String(), "accion": "alta_detalle"})
	})
}

func (s *ordenCompraService) CrearCliente(ctx context.Context, actor uuid.UUID, o *model.OrdenCompraCliente) error {
	o.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CrearCliente(ctx, o); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadOrdenCompraCliente, o.ID, nil)
	})
}

func (s *ordenCompraService) ObtenerCliente(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.OrdenCompraCliente, error) {
	o, err := s.repo.ObtenerClientePorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadOrdenCompraCliente, id)
	return o, nil
}

func (s *ordenCompraService) ListarCliente(ctx context.Context, f repository.OrdenCompraFiltro) ([]model.OrdenCompraCliente, int64, error) {
	return s.repo.ListarCliente(ctx, f)
}

func (s *ordenCompraService) AgregarDetalleCliente(ctx context.Context, actor uuid.UUID, d *model.DetalleOrdenCompraCliente) error {
	if err := validarLinea(d.CantidadValor, d.PrecioValor); err != nil {
		return err
	}
	o, err := s.repo.ObtenerClientePorID(ctx, d.OrdenCompraClienteID, false)
	if err != nil {
		return err
	}
	if o.Status != model.EstadoOrdenBorrador {
		return workflow.Validacion("status", "solo se agregan lineas en BORRADOR")
	}
	if err := verificarArticulo(ctx, s.docs, d.ArticuloID); err != nil {
		return err
	}
	d.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).AgregarDetalleCliente(ctx, d); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadOrdenCompraCliente, o.ID,
			model.JSONB{"detalle": d.ID.String(), "accion": "alta_detalle"})
	})
}
