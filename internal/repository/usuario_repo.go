package repository

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	WithTx(tx *gorm.DB) UsuarioRepository
	Crear(ctx context.Context, u *model.Usuario) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error)
	Listar(ctx context.Context, limit, offset int) ([]model.Usuario, int64, error)
	Actualizar(ctx context.Context, u *model.Usuario) error
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) WithTx(tx *gorm.DB) UsuarioRepository {
	if tx == nil {
		return r
	}
	return &usuarioRepository{db: tx}
}

func (r *usuarioRepository) Crear(ctx context.Context, u *model.Usuario) error {
	err := r.db.WithContext(ctx).Create(u).Error
	return traducir(err, model.EntidadUsuario, "", "email")
}

func (r *usuarioRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error
	if err != nil {
		return nil, traducir(err, model.EntidadUsuario, id.String(), "")
	}
	return &u, nil
}

func (r *usuarioRepository) ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error
	if err != nil {
		return nil, traducir(err, model.EntidadUsuario, email, "")
	}
	return &u, nil
}

func (r *usuarioRepository) Listar(ctx context.Context, limit, offset int) ([]model.Usuario, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Usuario{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var usuarios []model.Usuario
	err := q.Order("email ASC").Limit(limit).Offset(offset).Find(&usuarios).Error
	return usuarios, total, err
}

func (r *usuarioRepository) Actualizar(ctx context.Context, u *model.Usuario) error {
	err := r.db.WithContext(ctx).Save(u).Error
	return traducir(err, model.EntidadUsuario, u.ID.String(), "email")
}
