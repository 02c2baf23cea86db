// Package workflow holds the procurement domain rules that sit between the
// HTTP layer and storage: the per-document transition tables, the generic
// state machine that evaluates them, and the typed errors every mutating
// operation reports.
package workflow

import (
	"fmt"
)

// ErrTransicionInvalida reports an illegal status change, naming the
// offending (from, to) pair. The document is left unchanged.
type ErrTransicionInvalida struct {
	Entidad string
	De      string
	A       string
}

func (e *ErrTransicionInvalida) Error() string {
	return fmt.Sprintf("transicion invalida para %s: de %q a %q", e.Entidad, e.De, e.A)
}

// ErrNoEncontrado reports a reference to a nonexistent or already
// soft-deleted record.
type ErrNoEncontrado struct {
	Entidad string
	ID      string
}

func (e *ErrNoEncontrado) Error() string {
	return fmt.Sprintf("%s %s no encontrado", e.Entidad, e.ID)
}

// ErrConflicto reports a lost concurrent-modification race: the record
// changed between read and write. The caller may retry.
type ErrConflicto struct {
	Entidad string
	ID      string
}

func (e *ErrConflicto) Error() string {
	return fmt.Sprintf("conflicto de concurrencia sobre %s %s", e.Entidad, e.ID)
}

// ErrConflictoUnicidad reports a duplicate value for a unique field
// (CUIT, numero de orden, numero de seguimiento, junction pair).
type ErrConflictoUnicidad struct {
	Campo string
	Valor string
}

func (e *ErrConflictoUnicidad) Error() string {
	if e.Valor == "" {
		return fmt.Sprintf("ya existe un registro con el mismo %s", e.Campo)
	}
	return fmt.Sprintf("ya existe un registro con %s %q", e.Campo, e.Valor)
}

// ErrValidacion reports malformed or missing input, field by field.
type ErrValidacion struct {
	Campos map[string]string
}

func (e *ErrValidacion) Error() string {
	for campo, motivo := range e.Campos {
		return fmt.Sprintf("validacion fallida: %s %s", campo, motivo)
	}
	return "validacion fallida"
}

// Validacion builds a single-field validation error.
func Validacion(campo, motivo string) *ErrValidacion {
	return &ErrValidacion{Campos: map[string]string{campo: motivo}}
}
