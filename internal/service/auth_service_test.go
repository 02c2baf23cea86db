package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUsuarioRepo struct {
	porEmail map[string]*model.Usuario
	porID    map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{
		porEmail: make(map[string]*model.Usuario),
		porID:    make(map[uuid.UUID]*model.Usuario),
	}
}

func (r *stubUsuarioRepo) agregar(u *model.Usuario) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.porEmail[u.Email] = u
	r.porID[u.ID] = u
}

func (r *stubUsuarioRepo) WithTx(_ *gorm.DB) repository.UsuarioRepository { return r }

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return &workflow.ErrConflictoUnicidad{Campo: "email", Valor: u.Email}
	}
	r.agregar(u)
	return nil
}

func (r *stubUsuarioRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadUsuario, ID: id.String()}
	}
	return u, nil
}

func (r *stubUsuarioRepo) ObtenerPorEmail(_ context.Context, email string) (*model.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadUsuario, ID: email}
	}
	return u, nil
}

func (r *stubUsuarioRepo) Listar(_ context.Context, _, _ int) ([]model.Usuario, int64, error) {
	usuarios := make([]model.Usuario, 0, len(r.porID))
	for _, u := range r.porID {
		usuarios = append(usuarios, *u)
	}
	return usuarios, int64(len(usuarios)), nil
}

func (r *stubUsuarioRepo) Actualizar(_ context.Context, u *model.Usuario) error {
	r.porEmail[u.Email] = u
	r.porID[u.ID] = u
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func armarAuth(t *testing.T) (AuthService, *stubUsuarioRepo, *stubActividadRepo) {
	t.Helper()
	usuarios := newStubUsuarioRepo()
	eventos := &stubActividadRepo{}
	svc := NewAuthService(usuarios, NewActividadService(eventos, nil), nil, "secreto-de-prueba", time.Hour, 24*time.Hour)
	return svc, usuarios, eventos
}

func usuarioDePrueba(t *testing.T, email, password, rol string, activo bool) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.Usuario{Email: email, PasswordHash: string(hash), Rol: rol, Activo: activo}
}

func TestLogin(t *testing.T) {
	svc, usuarios, _ := armarAuth(t)
	usuarios.agregar(usuarioDePrueba(t, "vendedor@acme.com", "clave-fuerte", model.RolVendedor, true))

	access, refresh, u, err := svc.Login(context.Background(), "vendedor@acme.com", "clave-fuerte")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	claims, err := svc.ValidarToken(access)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, model.RolVendedor, claims.Rol)
}

func TestLoginRechazado(t *testing.T) {
	svc, usuarios, _ := armarAuth(t)
	usuarios.agregar(usuarioDePrueba(t, "vendedor@acme.com", "clave-fuerte", model.RolVendedor, true))
	usuarios.agregar(usuarioDePrueba(t, "baja@acme.com", "clave-fuerte", model.RolComprador, false))

	casos := map[string][2]string{
		"password incorrecta": {"vendedor@acme.com", "otra-clave"},
		"email inexistente":   {"nadie@acme.com", "clave-fuerte"},
		"usuario inactivo":    {"baja@acme.com", "clave-fuerte"},
	}
	for nombre, credenciales := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, _, _, err := svc.Login(context.Background(), credenciales[0], credenciales[1])
			assert.ErrorIs(t, err, ErrCredenciales)
		})
	}
}

func TestRefrescar(t *testing.T) {
	svc, usuarios, _ := armarAuth(t)
	u := usuarioDePrueba(t, "admin@acme.com", "clave-fuerte", model.RolAdministrador, true)
	usuarios.agregar(u)

	_, refresh, _, err := svc.Login(context.Background(), "admin@acme.com", "clave-fuerte")
	require.NoError(t, err)

	access, err := svc.Refrescar(context.Background(), refresh)
	require.NoError(t, err)
	claims, err := svc.ValidarToken(access)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)

	// A user deactivated after login cannot refresh.
	u.Activo = false
	_, err = svc.Refrescar(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestValidarTokenAjeno(t *testing.T) {
	svc, usuarios, _ := armarAuth(t)
	usuarios.agregar(usuarioDePrueba(t, "admin@acme.com", "clave-fuerte", model.RolAdministrador, true))
	access, _, _, err := svc.Login(context.Background(), "admin@acme.com", "clave-fuerte")
	require.NoError(t, err)

	otro := NewAuthService(usuarios, NewActividadService(&stubActividadRepo{}, nil), nil, "otro-secreto", time.Hour, 24*time.Hour)
	_, err = otro.ValidarToken(access)
	assert.ErrorIs(t, err, ErrCredenciales)

	_, err = svc.ValidarToken("no-es-un-jwt")
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestCrearUsuario(t *testing.T) {
	svc, _, eventos := armarAuth(t)
	actor := uuid.New()

	u, err := svc.CrearUsuario(context.Background(), actor, "nuevo@acme.com", "clave-fuerte", model.RolComprador)
	require.NoError(t, err)
	assert.True(t, u.Activo)
	assert.NotEqual(t, "clave-fuerte", u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("clave-fuerte")))

	ev := eventos.ultimo()
	require.NotNil(t, ev)
	assert.Equal(t, model.ActividadCreate, ev.Tipo)
	assert.Equal(t, model.EntidadUsuario, ev.EntidadTipo)
}

func TestCrearUsuarioInvalido(t *testing.T) {
	svc, _, _ := armarAuth(t)
	actor := uuid.New()

	_, err := svc.CrearUsuario(context.Background(), actor, "nuevo@acme.com", "clave-fuerte", "GERENTE")
	var validacion *workflow.ErrValidacion
	require.True(t, errors.As(err, &validacion))
	assert.Contains(t, validacion.Campos, "rol")

	_, err = svc.CrearUsuario(context.Background(), actor, "nuevo@acme.com", "corta", model.RolVendedor)
	require.True(t, errors.As(err, &validacion))
	assert.Contains(t, validacion.Campos, "password")
}

func TestCrearUsuarioEmailDuplicado(t *testing.T) {
	svc, usuarios, _ := armarAuth(t)
	usuarios.agregar(usuarioDePrueba(t, "vendedor@acme.com", "clave-fuerte", model.RolVendedor, true))

	_, err := svc.CrearUsuario(context.Background(), uuid.New(), "vendedor@acme.com", "clave-fuerte", model.RolVendedor)
	var unicidad *workflow.ErrConflictoUnicidad
	require.True(t, errors.As(err, &unicidad))
	assert.Equal(t, "email", unicidad.Campo)
}

func TestCambiarActivo(t *testing.T) {
	svc, usuarios, eventos := armarAuth(t)
	u := usuarioDePrueba(t, "vendedor@acme.com", "clave-fuerte", model.RolVendedor, true)
	usuarios.agregar(u)

	require.NoError(t, svc.CambiarActivo(context.Background(), uuid.New(), u.ID, false))
	assert.False(t, usuarios.porID[u.ID].Activo)
	assert.Equal(t, false, eventos.ultimo().Data["activo"])
}
