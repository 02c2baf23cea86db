package workflow

import (
	"sort"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
)

// Tabla is the allowed-successor set per estado for one document type.
// Terminal estados appear as keys with an empty successor list, so that an
// unknown estado can be told apart from a terminal one.
type Tabla map[string][]string

// Estados returns every estado the table knows, sorted for stable output.
func (t Tabla) Estados() []string {
	estados := make([]string, 0, len(t))
	for e := range t {
		estados = append(estados, e)
	}
	sort.Strings(estados)
	return estados
}

// Conoce reports whether estado is part of this table's vocabulary.
func (t Tabla) Conoce(estado string) bool {
	_, ok := t[estado]
	return ok
}

// EsTerminal reports whether estado accepts no further transitions.
func (t Tabla) EsTerminal(estado string) bool {
	sucesores, ok := t[estado]
	return ok && len(sucesores) == 0
}

// Puede reports whether the (de, a) transition is in the table.
func (t Tabla) Puede(de, a string) bool {
	for _, s := range t[de] {
		if s == a {
			return true
		}
	}
	return false
}

// Validar returns an ErrTransicionInvalida naming the offending pair when
// (de, a) is not allowed for the given entity type.
func (t Tabla) Validar(entidad, de, a string) error {
	if !t.Conoce(de) || !t.Conoce(a) || !t.Puede(de, a) {
		return &ErrTransicionInvalida{Entidad: entidad, De: de, A: a}
	}
	return nil
}

// TipoActividad maps a target estado to the audit action kind recorded for
// the transition: approval and rejection terminals get their own kinds,
// everything else is a plain UPDATE.
func TipoActividad(destino string) string {
	switch destino {
	case model.EstadoSolpedAprobada, model.EstadoCotizacionAceptada, model.EstadoOrdenConfirmada:
		return model.ActividadApprove
	case model.EstadoSolpedRechazada:
		return model.ActividadReject
	default:
		return model.ActividadUpdate
	}
}
