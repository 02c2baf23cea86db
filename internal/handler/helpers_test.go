package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func contextoConRol(t *testing.T, rol, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/solpeds"+query, nil)
	c.Set(middleware.ClaimsKey, &middleware.JWTClaims{
		UserID: uuid.NewString(),
		Rol:    rol,
	})
	return c
}

func TestQueryIncluirEliminadosSoloSupervision(t *testing.T) {
	permitidos := []string{model.RolSupervisor, model.RolAdministrador}
	for _, rol := range permitidos {
		c := contextoConRol(t, rol, "?incluir_eliminados=true")
		assert.True(t, queryIncluirEliminados(c), rol)
	}

	denegados := []string{model.RolVendedor, model.RolComprador}
	for _, rol := range denegados {
		c := contextoConRol(t, rol, "?incluir_eliminados=true")
		assert.False(t, queryIncluirEliminados(c), rol)
	}
}

func TestQueryIncluirEliminadosSinFlag(t *testing.T) {
	c := contextoConRol(t, model.RolAdministrador, "")
	assert.False(t, queryIncluirEliminados(c))

	c = contextoConRol(t, model.RolAdministrador, "?incluir_eliminados=no-booleano")
	assert.False(t, queryIncluirEliminados(c))
}
