package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteFiltro struct {
	Status            string
	RazonSocial       string
	IncluirEliminados bool
	Limit             int
	Offset            int
}

type ClienteRepository interface {
	WithTx(tx *gorm.DB) ClienteRepository
	Crear(ctx context.Context, c *model.Cliente) error
	ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Cliente, error)
	Listar(ctx context.Context, f ClienteFiltro) ([]model.Cliente, int64, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
}

type clienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) WithTx(tx *gorm.DB) ClienteRepository {
	if tx == nil {
		return r
	}
	return &clienteRepository{db: tx}
}

func (r *clienteRepository) Crear(ctx context.Context, c *model.Cliente) error {
	err := r.db.WithContext(ctx).Create(c).Error
	return traducir(err, model.EntidadCliente, "", "cuit")
}

func (r *clienteRepository) ObtenerPorID(ctx context.Context, id uuid.UUID, incluirEliminados bool) (*model.Cliente, error) {
	var c model.Cliente
	err := alcance(r.db.WithContext(ctx), incluirEliminados).
		Where("id = ?", id).
		Take(&c).Error
	if err != nil {
		return nil, traducir(err, model.EntidadCliente, id.String(), "")
	}
	return &c, nil
}

func (r *clienteRepository) Listar(ctx context.Context, f ClienteFiltro) ([]model.Cliente, int64, error) {
	q := alcance(r.db.WithContext(ctx), f.IncluirEliminados).Model(&model.Cliente{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RazonSocial != "" {
		q = q.Where("razon_social ILIKE ?", "%"+f.RazonSocial+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var clientes []model.Cliente
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&clientes).Error
	return clientes, total, err
}

func (r *clienteRepository) Actualizar(ctx context.Context, c *model.Cliente) error {
	err := r.db.WithContext(ctx).Save(c).Error
	return traducir(err, model.EntidadCliente, c.ID.String(), "cuit")
}
