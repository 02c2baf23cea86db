package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
	formas      map[uuid.UUID]*model.FormaDeEntrega
	vinculos    []model.ProveedorFormaEntrega
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{
		proveedores: make(map[uuid.UUID]*model.Proveedor),
		formas:      make(map[uuid.UUID]*model.FormaDeEntrega),
	}
}

func (r *stubProveedorRepo) WithTx(_ *gorm.DB) repository.ProveedorRepository { return r }

func (r *stubProveedorRepo) Crear(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) ObtenerPorID(_ context.Context, id uuid.UUID, _ bool) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadProveedor, ID: id.String()}
	}
	return p, nil
}

func (r *stubProveedorRepo) Listar(_ context.Context, _ repository.ProveedorFiltro) ([]model.Proveedor, int64, error) {
	return nil, 0, nil
}

func (r *stubProveedorRepo) Actualizar(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) CrearFormaEntrega(_ context.Context, fe *model.FormaDeEntrega) error {
	if fe.ID == uuid.Nil {
		fe.ID = uuid.New()
	}
	r.formas[fe.ID] = fe
	return nil
}

func (r *stubProveedorRepo) ListarFormasEntrega(_ context.Context) ([]model.FormaDeEntrega, error) {
	formas := make([]model.FormaDeEntrega, 0, len(r.formas))
	for _, fe := range r.formas {
		formas = append(formas, *fe)
	}
	return formas, nil
}

func (r *stubProveedorRepo) ObtenerFormaEntrega(_ context.Context, id uuid.UUID) (*model.FormaDeEntrega, error) {
	fe, ok := r.formas[id]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: model.EntidadFormaEntrega, ID: id.String()}
	}
	return fe, nil
}

func (r *stubProveedorRepo) VincularFormaEntrega(_ context.Context, v *model.ProveedorFormaEntrega) error {
	r.vinculos = append(r.vinculos, *v)
	return nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

func TestValidarCUIT(t *testing.T) {
	validos := []string{"30-71234567-8", "30712345678", "3071234567-8"}
	for _, cuit := range validos {
		c := cuit
		assert.NoError(t, validarCUIT(&c), cuit)
	}

	invalidos := []string{"30-7123456-8", "abc", "30 71234567 8", "30-712345678-90"}
	for _, cuit := range invalidos {
		c := cuit
		err := validarCUIT(&c)
		var validacion *workflow.ErrValidacion
		require.True(t, errors.As(err, &validacion), cuit)
		assert.Contains(t, validacion.Campos, "cuit")
	}

	// Absent CUIT is acceptable, the field is optional.
	assert.NoError(t, validarCUIT(nil))
	vacio := ""
	assert.NoError(t, validarCUIT(&vacio))
}

func TestCrearProveedor(t *testing.T) {
	repo := newStubProveedorRepo()
	eventos := &stubActividadRepo{}
	svc := NewProveedorService(repo, NewActividadService(eventos, nil), nil)

	actor := uuid.New()
	cuit := "30-71234567-8"
	p := &model.Proveedor{RazonSocial: "Aceros del Sur SA", CUIT: &cuit}

	require.NoError(t, svc.Crear(context.Background(), actor, p))
	require.NotNil(t, p.CreatedBy)
	assert.Equal(t, actor, *p.CreatedBy)

	ev := eventos.ultimo()
	require.NotNil(t, ev)
	assert.Equal(t, model.ActividadCreate, ev.Tipo)
	assert.Equal(t, model.EntidadProveedor, ev.EntidadTipo)
}

func TestCrearProveedorInvalido(t *testing.T) {
	svc := NewProveedorService(newStubProveedorRepo(), NewActividadService(&stubActividadRepo{}, nil), nil)
	actor := uuid.New()

	err := svc.Crear(context.Background(), actor, &model.Proveedor{})
	var validacion *workflow.ErrValidacion
	require.True(t, errors.As(err, &validacion))
	assert.Contains(t, validacion.Campos, "razon_social")

	cuit := "no-es-cuit"
	err = svc.Crear(context.Background(), actor, &model.Proveedor{RazonSocial: "Aceros del Sur SA", CUIT: &cuit})
	require.True(t, errors.As(err, &validacion))
	assert.Contains(t, validacion.Campos, "cuit")
}

func TestVincularFormaEntrega(t *testing.T) {
	repo := newStubProveedorRepo()
	eventos := &stubActividadRepo{}
	svc := NewProveedorService(repo, NewActividadService(eventos, nil), nil)
	actor := uuid.New()

	p := &model.Proveedor{RazonSocial: "Aceros del Sur SA"}
	require.NoError(t, svc.Crear(context.Background(), actor, p))
	fe := &model.FormaDeEntrega{Nombre: "Retiro en planta"}
	require.NoError(t, svc.CrearFormaEntrega(context.Background(), actor, fe))

	require.NoError(t, svc.VincularFormaEntrega(context.Background(), actor, p.ID, fe.ID))
	require.Len(t, repo.vinculos, 1)
	assert.Equal(t, p.ID, repo.vinculos[0].ProveedorID)
	assert.Equal(t, "vinculo_forma_entrega", eventos.ultimo().Data["accion"])

	// Both ends must exist before the junction row is written.
	err := svc.VincularFormaEntrega(context.Background(), actor, p.ID, uuid.New())
	var noEncontrado *workflow.ErrNoEncontrado
	require.True(t, errors.As(err, &noEncontrado))
	assert.Len(t, repo.vinculos, 1)
}
