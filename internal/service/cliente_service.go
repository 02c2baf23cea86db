package service

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteService interface {
	Crear(ctx context.Context, actor uuid.UUID, c *model.Cliente) error
	Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Cliente, error)
	Listar(ctx context.Context, f repository.ClienteFiltro) ([]model.Cliente, int64, error)
	Actualizar(ctx context.Context, actor uuid.UUID, c *model.Cliente) error
}

type clienteService struct {
	repo        repository.ClienteRepository
	actividades ActividadService
	db          *gorm.DB
}

func NewClienteService(repo repository.ClienteRepository, actividades ActividadService, db *gorm.DB) ClienteService {
	return &clienteService{repo: repo, actividades: actividades, db: db}
}

func (s *clienteService) Crear(ctx context.Context, actor uuid.UUID, c *model.Cliente) error {
	if err := validarCUIT(c.CUIT); err != nil {
		return err
	}
	c.CreatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Crear(ctx, c); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadCliente, c.ID, nil)
	})
}

func (s *clienteService) Obtener(ctx context.Context, actor uuid.UUID, id uuid.UUID, incluirEliminados bool) (*model.Cliente, error) {
	c, err := s.repo.ObtenerPorID(ctx, id, incluirEliminados)
	if err != nil {
		return nil, err
	}
	s.actividades.RegistrarVista(ctx, actor, model.EntidadCliente, id)
	return c, nil
}

func (s *clienteService) Listar(ctx context.Context, f repository.ClienteFiltro) ([]model.Cliente, int64, error) {
	return s.repo.Listar(ctx, f)
}

func (s *clienteService) Actualizar(ctx context.Context, actor uuid.UUID, c *model.Cliente) error {
	if err := validarCUIT(c.CUIT); err != nil {
		return err
	}
	c.UpdatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Actualizar(ctx, c); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadCliente, c.ID, nil)
	})
}
