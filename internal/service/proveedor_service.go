package service

import (
	"context"
	"regexp"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CUIT: 11 digits, optionally written XX-XXXXXXXX-X.
var cuitPattern = regexp.MustCompile(`^\d{2}-?\d{8}-?\d$`)

func validarCUIT(cuit *string) error {
	if cuit == nil || *cuit == "" {
		return nil
	}
	if !cuitPattern.MatchString(*cuit) {
		return workflow.Validacion("cuit", "formato invalido")
	}
	return nil
}

type ProveedorService interface {
	Crear(ctx context.Context, actor uuid.UUID, p *model.Proveedor) error
	Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Proveedor, error)
	Listar(ctx context.Context, f repository.ProveedorFiltro) ([]model.Proveedor, int64, error)
	Actualizar(ctx context.Context, actor uuid.UUID, p *model.Proveedor) error

	CrearFormaEntrega(ctx context.Context, actor uuid.UUID, fe *model.FormaDeEntrega) error
	ListarFormasEntrega(ctx context.Context) ([]model.FormaDeEntrega, error)
	VincularFormaEntrega(ctx context.Context, actor uuid.UUID, proveedorID, formaEntregaID uuid.UUID) error
}

type proveedorService struct {
	repo        repository.ProveedorRepository
	actividades ActividadService
	db          *gorm.DB
}

func NewProveedorService(repo repository.ProveedorRepository, actividades ActividadService, db *gorm.DB) ProveedorService {
	return &proveedorService{repo: repo, actividades: actividades, db: db}
}

func (s *proveedorService) Crear(ctx context.Context, actor uuid.UUID, p *model.Proveedor) error {
	if p.RazonSocial == "" {
		return workflow.Validacion("razon_social", "obligatoria")
	}
	if err := validarCUIT(p.CUIT); err != nil {
		return err
	}
	p.CreatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Crear(ctx, p); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadProveedor, p.ID, nil)
	})
}

func (s *proveedorService) Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Proveedor, error) {
	p, err := s.repo.ObtenerPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadProveedor, id)
	return p, nil
}

func (s *proveedorService) Listar(ctx context.Context, f repository.ProveedorFiltro) ([]model.Proveedor, int64, error) {
	return s.repo.Listar(ctx, f)
}

func (s *proveedorService) Actualizar(ctx context.Context, actor uuid.UUID, p *model.Proveedor) error {
	if err := validarCUIT(p.CUIT); err != nil {
		return err
	}
	p.UpdatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Actualizar(ctx, p); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadProveedor, p.ID, nil)
	})
}

func (s *proveedorService) CrearFormaEntrega(ctx context.Context, actor uuid.UUID, fe *model.FormaDeEntrega) error {
	if fe.Nombre == "" {
		return workflow.Validacion("nombre", "obligatorio")
	}
	fe.CreatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CrearFormaEntrega(ctx, fe); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadFormaEntrega, fe.ID, nil)
	})
}

func (s *proveedorService) ListarFormasEntrega(ctx context.Context) ([]model.FormaDeEntrega, error) {
	return s.repo.ListarFormasEntrega(ctx)
}

func (s *proveedorService) VincularFormaEntrega(ctx context.Context, actor uuid.UUID, proveedorID, formaEntregaID uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, proveedorID, false); err != nil {
		return err
	}
	if _, err := s.repo.ObtenerFormaEntrega(ctx, formaEntregaID); err != nil {
		return err
	}
	v := &model.ProveedorFormaEntrega{ProveedorID: proveedorID, FormaEntregaID: formaEntregaID}
	v.CreatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).VincularFormaEntrega(ctx, v); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadProveedor, proveedorID,
			model.JSONB{"forma_entrega": formaEntregaID.String(), "accion": "vinculo_forma_entrega"})
	})
}
