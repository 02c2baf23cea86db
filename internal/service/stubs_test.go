package service

import (
	"context"
	"errors"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type docKey struct {
	tipo string
	id   uuid.UUID
}

// docStub is one in-memory document with its dependent-row bookkeeping.
type docStub struct {
	estado                 string
	fechaVencimiento       *time.Time
	deletedAt              *time.Time
	dependientesVivos      int64
	dependientesEliminados map[time.Time]int64
}

// stubDocumentoRepo is an in-memory DocumentoRepository. It reproduces the
// optimistic-guard and batch-restore semantics of the real one.
type stubDocumentoRepo struct {
	docs map[docKey]*docStub
}

func newStubDocumentoRepo() *stubDocumentoRepo {
	return &stubDocumentoRepo{docs: make(map[docKey]*docStub)}
}

func (r *stubDocumentoRepo) agregar(tipo string, id uuid.UUID, estado string) *docStub {
	d := &docStub{estado: estado, dependientesEliminados: make(map[time.Time]int64)}
	r.docs[docKey{tipo, id}] = d
	return d
}

func (r *stubDocumentoRepo) DB() *gorm.DB { return nil }

func (r *stubDocumentoRepo) ObtenerEstado(_ context.Context, tipo string, id uuid.UUID) (string, error) {
	d, ok := r.docs[docKey{tipo, id}]
	if !ok || d.deletedAt != nil {
		return "", &workflow.ErrNoEncontrado{Entidad: tipo, ID: id.String()}
	}
	return d.estado, nil
}

func (r *stubDocumentoRepo) ObtenerFechaVencimiento(_ context.Context, tipo string, id uuid.UUID) (*time.Time, error) {
	d, ok := r.docs[docKey{tipo, id}]
	if !ok || d.deletedAt != nil {
		return nil, &workflow.ErrNoEncontrado{Entidad: tipo, ID: id.String()}
	}
	return d.fechaVencimiento, nil
}

func (r *stubDocumentoRepo) ActualizarEstadoTx(_ *gorm.DB, tipo string, id uuid.UUID, de, a string, _ *uuid.UUID) error {
	d, ok := r.docs[docKey{tipo, id}]
	if !ok || d.deletedAt != nil {
		return &workflow.ErrNoEncontrado{Entidad: tipo, ID: id.String()}
	}
	if d.estado != de {
		return &workflow.ErrConflicto{Entidad: tipo, ID: id.String()}
	}
	d.estado = a
	return nil
}

func (r *stubDocumentoRepo) MarcarEliminadoTx(_ *gorm.DB, tipo string, id uuid.UUID, _ uuid.UUID, momento time.Time) error {
	d, ok := r.docs[docKey{tipo, id}]
	if !ok {
		return &workflow.ErrNoEncontrado{Entidad: tipo, ID: id.String()}
	}
	d.deletedAt = &momento
	return nil
}

func (r *stubDocumentoRepo) MarcarDependientesEliminadosTx(_ *gorm.DB, tipo string, id uuid.UUID, _ uuid.UUID, momento time.Time) (int64, error) {
	d, ok := r.docs[docKey{tipo, id}]
	if !ok {
		return 0, nil
	}
	n := d.dependientesVivos
	d.dependientesVivos = 0
	d.dependientesEliminados[momento] += n
	return n, nil
}

func (r *stubDocumentoRepo) ObtenerMomentoEliminacion(_ context.Context, tipo string, id uuid.UUID) (time.Time, error) {
	d, ok := r.docs[docKey{tipo, id}]
	if !ok || d.deletedAt == nil {
		return time.Time{}, &workflow.ErrNoEncontrado{Entidad: tipo, ID: id.String()}
	}
	return *d.deletedAt, nil
}

func (r *stubDocumentoRepo) RestaurarTx(_ *gorm.DB, tipo string, id uuid.UUID, momento time.Time) error {
	d, ok := r.docs[docKey{tipo, id}]
	if !ok || d.deletedAt == nil || !d.deletedAt.Equal(momento) {
		return &workflow.ErrNoEncontrado{Entidad: tipo, ID: id.String()}
	}
	d.deletedAt = nil
	return nil
}

func (r *stubDocumentoRepo) RestaurarDependientesTx(_ *gorm.DB, tipo string, id uuid.UUID, momento time.Time) (int64, error) {
	d, ok := r.docs[docKey{tipo, id}]
	if !ok {
		return 0, nil
	}
	n := d.dependientesEliminados[momento]
	delete(d.dependientesEliminados, momento)
	d.dependientesVivos += n
	return n, nil
}

func (r *stubDocumentoRepo) ListarVencibles(_ context.Context, tipo string, corte time.Time, limite int) ([]uuid.UUID, error) {
	tabla := workflow.PorEntidad[tipo]
	vencible, ok := workflow.EstadoVencido(tipo)
	if !ok {
		return nil, nil
	}
	var ids []uuid.UUID
	for k, d := range r.docs {
		if k.tipo != tipo || d.deletedAt != nil || d.fechaVencimiento == nil {
			continue
		}
		if !d.fechaVencimiento.Before(corte) {
			continue
		}
		if tabla.EsTerminal(d.estado) || !tabla.Puede(d.estado, vencible) {
			continue
		}
		ids = append(ids, k.id)
		if len(ids) == limite {
			break
		}
	}
	return ids, nil
}

var _ repository.DocumentoRepository = (*stubDocumentoRepo)(nil)

// stubActividadRepo captures audit events for assertion.
type stubActividadRepo struct {
	eventos  []model.Actividad
	fallaCon error
}

func (r *stubActividadRepo) Crear(_ context.Context, a *model.Actividad) error {
	if r.fallaCon != nil {
		return r.fallaCon
	}
	r.eventos = append(r.eventos, *a)
	return nil
}

func (r *stubActividadRepo) CrearTx(_ *gorm.DB, a *model.Actividad) error {
	return r.Crear(context.Background(), a)
}

func (r *stubActividadRepo) Listar(_ context.Context, _ repository.ActividadFiltro) ([]model.Actividad, int64, error) {
	return r.eventos, int64(len(r.eventos)), nil
}

var _ repository.ActividadRepository = (*stubActividadRepo)(nil)

func (r *stubActividadRepo) ultimo() *model.Actividad {
	if len(r.eventos) == 0 {
		return nil
	}
	return &r.eventos[len(r.eventos)-1]
}

// stubEncolador simulates the async view-audit queue.
type stubEncolador struct {
	encolados []model.Actividad
	fallaCon  error
}

func (e *stubEncolador) EncolarVista(_ context.Context, a model.Actividad) error {
	if e.fallaCon != nil {
		return e.fallaCon
	}
	e.encolados = append(e.encolados, a)
	return nil
}

var errCola = errors.New("redis caido")
