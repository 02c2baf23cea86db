package workflow

import (
	"errors"
	"testing"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablaPuedeYEsTerminal(t *testing.T) {
	assert.True(t, TablaSolped.Puede(model.EstadoSolpedBorrador, model.EstadoSolpedEnviada))
	assert.False(t, TablaSolped.Puede(model.EstadoSolpedBorrador, model.EstadoSolpedAprobada))
	assert.False(t, TablaSolped.Puede(model.EstadoSolpedCompletada, model.EstadoSolpedBorrador))

	assert.True(t, TablaSolped.EsTerminal(model.EstadoSolpedCompletada))
	assert.True(t, TablaSolped.EsTerminal(model.EstadoSolpedRechazada))
	assert.False(t, TablaSolped.EsTerminal(model.EstadoSolpedBorrador))
	// Unknown estado is not terminal, it is simply unknown.
	assert.False(t, TablaSolped.EsTerminal("INEXISTENTE"))
	assert.False(t, TablaSolped.Conoce("INEXISTENTE"))
}

func TestTablaValidar(t *testing.T) {
	err := TablaSolped.Validar(model.EntidadSolped, model.EstadoSolpedEnviada, model.EstadoSolpedAprobada)
	require.NoError(t, err)

	err = TablaSolped.Validar(model.EntidadSolped, model.EstadoSolpedBorrador, model.EstadoSolpedCompletada)
	var invalida *ErrTransicionInvalida
	require.True(t, errors.As(err, &invalida))
	assert.Equal(t, model.EntidadSolped, invalida.Entidad)
	assert.Equal(t, model.EstadoSolpedBorrador, invalida.De)
	assert.Equal(t, model.EstadoSolpedCompletada, invalida.A)

	// Unknown source estado is rejected, not treated as a free pass.
	err = TablaSolped.Validar(model.EntidadSolped, "INEXISTENTE", model.EstadoSolpedEnviada)
	require.Error(t, err)
}

func TestEstadosOrdenados(t *testing.T) {
	estados := TablaRemito.Estados()
	require.Len(t, estados, 5)
	for i := 1; i < len(estados); i++ {
		assert.Less(t, estados[i-1], estados[i])
	}
}

func TestPorEntidadCompartenTablas(t *testing.T) {
	// Client and supplier documents of the same family share one vocabulary.
	assert.Equal(t, PorEntidad[model.EntidadCotizacion], PorEntidad[model.EntidadCotizacionProveedor])
	assert.Equal(t, PorEntidad[model.EntidadOrdenCompraProveedor], PorEntidad[model.EntidadOrdenCompraCliente])

	_, ok := PorEntidad[model.EntidadDespachante]
	assert.False(t, ok, "despachantes carry no workflow status")
}

func TestEstadoVencido(t *testing.T) {
	for _, tipo := range EntidadesExpirables {
		estado, ok := EstadoVencido(tipo)
		require.True(t, ok, tipo)
		tabla := PorEntidad[tipo]
		assert.True(t, tabla.EsTerminal(estado), "estado vencido de %s debe ser terminal", tipo)
	}

	_, ok := EstadoVencido(model.EntidadSolped)
	assert.False(t, ok)
}

func TestTipoActividad(t *testing.T) {
	assert.Equal(t, model.ActividadApprove, TipoActividad(model.EstadoSolpedAprobada))
	assert.Equal(t, model.ActividadApprove, TipoActividad(model.EstadoCotizacionAceptada))
	assert.Equal(t, model.ActividadApprove, TipoActividad(model.EstadoOrdenConfirmada))
	assert.Equal(t, model.ActividadReject, TipoActividad(model.EstadoSolpedRechazada))
	assert.Equal(t, model.ActividadUpdate, TipoActividad(model.EstadoSolpedEnviada))
	assert.Equal(t, model.ActividadUpdate, TipoActividad(model.EstadoCotizacionVencida))
}

func TestTablasCerradasSobreSuVocabulario(t *testing.T) {
	for tipo, tabla := range PorEntidad {
		t.Run(tipo, func(t *testing.T) {
			estados := tabla.Estados()
			permitidos := make(map[string]map[string]bool, len(estados))
			for de, sucesores := range tabla {
				permitidos[de] = make(map[string]bool, len(sucesores))
				for _, a := range sucesores {
					// Every successor must itself be an estado the table knows.
					require.True(t, tabla.Conoce(a), "%s: sucesor %s de %s fuera del vocabulario", tipo, a, de)
					permitidos[de][a] = true
				}
			}

			for _, de := range estados {
				if tabla.EsTerminal(de) {
					for _, a := range estados {
						assert.Error(t, tabla.Validar(tipo, de, a),
							"%s: terminal %s no debe admitir salida hacia %s", tipo, de, a)
					}
					continue
				}
				for _, a := range estados {
					err := tabla.Validar(tipo, de, a)
					if permitidos[de][a] {
						assert.NoError(t, err, "%s: %s -> %s declarada pero rechazada", tipo, de, a)
						continue
					}
					var invalida *ErrTransicionInvalida
					require.True(t, errors.As(err, &invalida),
						"%s: %s -> %s no declarada pero aceptada", tipo, de, a)
					assert.Equal(t, tipo, invalida.Entidad)
					assert.Equal(t, de, invalida.De)
					assert.Equal(t, a, invalida.A)
				}
			}
		})
	}
}

func TestEntidadActivoNoEsTerminal(t *testing.T) {
	// Master records always have a way back.
	for _, e := range TablaEntidad.Estados() {
		assert.False(t, TablaEntidad.EsTerminal(e), e)
	}
	assert.True(t, TablaArticulo.EsTerminal(model.EstadoArticuloDescontinuado))
}
