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

// CotizacionService manages supplier quotes, final quotations and the winner
// bindings between them.
type CotizacionService interface {
	CrearProveedor(ctx context.Context, actor uuid.UUID, c *model.CotizacionProveedor) error
	ObtenerProveedor(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.CotizacionProveedor, error)
	ListarProveedor(ctx context.Context, f repository.CotizacionProveedorFiltro) ([]model.CotizacionProveedor, int64, error)
	AgregarDetalleProveedor(ctx context.Context, actor uuid.UUID, d *model.DetalleCotizacionProveedor) error

	Crear(ctx context.Context, actor uuid.UUID, c *model.Cotizacion) error
	Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Cotizacion, error)
	Listar(ctx context.Context, f repository.CotizacionFiltro) ([]model.Cotizacion, int64, error)
	VincularSolped(ctx context.Context, actor uuid.UUID, cotizacionID, solpedID uuid.UUID) error

	// SeleccionarGanador binds one supplier quote line as a winner of the
	// final quotation. The same line cannot win the same quotation twice,
	// and lines of rejected or expired supplier quotes are not eligible.
	SeleccionarGanador(ctx context.Context, actor uuid.UUID, cotizacionID, detalleID uuid.UUID) error
	ListarGanadores(ctx context.Context, cotizacionID uuid.UUID) ([]model.CotizacionGanador, error)
}

type cotizacionService struct {
	repo        repository.CotizacionRepository
	docs        repository.DocumentoRepository
	actividades ActividadService
}

func NewCotizacionService(repo repository.CotizacionRepository, docs repository.DocumentoRepository, actividades ActividadService) CotizacionService {
	return &cotizacionService{repo: repo, docs: docs, actividades: actividades}
}

func (s *cotizacionService) CrearProveedor(ctx context.Context, actor uuid.UUID, c *model.CotizacionProveedor) error {
	c.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CrearProveedor(ctx, c); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadCotizacionProveedor, c.ID, nil)
	})
}

func (s *cotizacionService) ObtenerProveedor(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.CotizacionProveedor, error) {
	c, err := s.repo.ObtenerProveedorPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadCotizacionProveedor, id)
	return c, nil
}

func (s *cotizacionService) ListarProveedor(ctx context.Context, f repository.CotizacionProveedorFiltro) ([]model.CotizacionProveedor, int64, error) {
	return s.repo.ListarProveedor(ctx, f)
}

func (s *cotizacionService) AgregarDetalleProveedor(ctx context.Context, actor uuid.UUID, d *model.DetalleCotizacionProveedor) error {
	if d.CantidadValor.LessThanOrEqual(decimal.Zero) {
		return workflow.Validacion("cantidad_valor", "debe ser mayor a cero")
	}
	if d.PrecioUnitarioValor.LessThan(decimal.Zero) {
		return workflow.Validacion("precio_unitario_valor", "no puede ser negativo")
	}
	cp, err := s.repo.ObtenerProveedorPorID(ctx, d.CotizacionProveedorID, false)
	if err != nil {
		return err
	}
	if cp.Status != model.EstadoCotizacionBorrador {
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
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadCotizacionProveedor, cp.ID,
			model.JSONB{"detalle": d.ID.String(), "accion": "alta_detalle"})
	})
}

func (s *cotizacionService) Crear(ctx context.Context, actor uuid.UUID, c *model.Cotizacion) error {
	if c.Margen != nil && c.Margen.LessThan(decimal.Zero) {
		return workflow.Validacion("margen", "no puede ser negativo")
	}
	c.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Crear(ctx, c); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadCotizacion, c.ID, nil)
	})
}

func (s *cotizacionService) Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Cotizacion, error) {
	c, err := s.repo.ObtenerPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadCotizacion, id)
	return c, nil
}

func (s *cotizacionService) Listar(ctx context.Context, f repository.CotizacionFiltro) ([]model.Cotizacion, int64, error) {
	return s.repo.Listar(ctx, f)
}

func (s *cotizacionService) VincularSolped(ctx context.Context, actor uuid.UUID, cotizacionID, solpedID uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, cotizacionID, false); err != nil {
		return err
	}
	if _, err := s.docs.ObtenerEstado(ctx, model.EntidadSolped, solpedID); err != nil {
		return err
	}
	v := &model.CotizacionSolped{CotizacionID: cotizacionID, SolpedID: solpedID}
	v.CreatedBy = &actor
	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).VincularSolped(ctx, v); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadCotizacion, cotizacionID,
			model.JSONB{"solped": solpedID.String(), "accion": "vinculo_solped"})
	})
}

func (s *cotizacionService) SeleccionarGanador(ctx context.Context, actor uuid.UUID, cotizacionID, detalleID uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, cotizacionID, false); err != nil {
		return err
	}
	detalle, err := s.repo.ObtenerDetalleProveedor(ctx, detalleID)
	if err != nil {
		return err
	}
	if detalle.CotizacionProveedor != nil {
		switch detalle.CotizacionProveedor.Status {
		case model.EstadoCotizacionRechazada, model.EstadoCotizacionVencida:
			return workflow.Validacion("detalle_cotizacion_proveedor",
				"la cotizacion del proveedor esta "+detalle.CotizacionProveedor.Status)
		}
	}

	g := &model.CotizacionGanador{
		CotizacionID:                 cotizacionID,
		DetalleCotizacionProveedorID: detalleID,
	}
	g.CreatedBy = &actor

	return runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CrearGanadorTx(tx, g); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadCotizacion, cotizacionID,
			model.JSONB{"ganador": detalleID.String(), "accion": "seleccion_ganador"})
	})
}

func (s *cotizacionService) ListarGanadores(ctx context.Context, cotizacionID uuid.UUID) ([]model.CotizacionGanador, error) {
	if _, err := s.repo.ObtenerPorID(ctx, cotizacionID, false); err != nil {
		return nil, err
	}
	return s.repo.ListarGanadores(ctx, cotizacionID)
}
