package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/apierror"
	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// responderError maps domain errors onto HTTP responses. Anything it does not
// recognize becomes a 500 and is recorded on the gin context for the logger.
func responderError(c *gin.Context, err error) {
	var (
		noEncontrado *workflow.ErrNoEncontrado
		transicion   *workflow.ErrTransicionInvalida
		conflicto    *workflow.ErrConflicto
		unicidad     *workflow.ErrConflictoUnicidad
		validacion   *workflow.ErrValidacion
	)
	switch {
	case errors.As(err, &noEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &transicion):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &conflicto):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &unicidad):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &validacion):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(validacion.Campos))
	case errors.Is(err, service.ErrCredenciales):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno"))
	}
}

// parseUUID reads a path parameter as a UUID; writes a 400 when invalid.
func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}

// parseFecha turns a YYYY-MM-DD string into a *time.Time. Empty means nil.
// The datetime validator tag runs first, so a parse failure here is a bug.
func parseFecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func queryBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}

// queryIncluirEliminados reads the ?incluir_eliminados flag. Soft-deleted rows
// are visible to supervision roles only; for everyone else the flag is a no-op.
func queryIncluirEliminados(c *gin.Context) bool {
	if !queryBool(c, "incluir_eliminados") {
		return false
	}
	claims := middleware.GetClaims(c)
	if claims == nil {
		return false
	}
	return claims.Rol == model.RolSupervisor || claims.Rol == model.RolAdministrador
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

func queryUUID(c *gin.Context, name string) *uuid.UUID {
	if s := c.Query(name); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			return &id
		}
	}
	return nil
}
