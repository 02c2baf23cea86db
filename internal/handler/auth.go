package handler

import (
	"net/http"

	"github.com/Andreskammerath/BKK-procurement-system/internal/dto"
	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	access, refresh, u, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      dto.UsuarioResponseDe(u),
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	access, err := h.svc.Refrescar(c.Request.Context(), req.RefreshToken)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: access})
}

// UsuariosHandler is the administration surface over user accounts.
type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	u, err := h.svc.CrearUsuario(c.Request.Context(), middleware.ActorID(c), req.Email, req.Password, req.Rol)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.UsuarioResponseDe(u))
}

func (h *UsuariosHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.ObtenerUsuario(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UsuarioResponseDe(u))
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	usuarios, total, err := h.svc.ListarUsuarios(c.Request.Context(), queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		responderError(c, err)
		return
	}
	items := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		items = append(items, dto.UsuarioResponseDe(&usuarios[i]))
	}
	c.JSON(http.StatusOK, dto.ListadoResponse{Total: total, Items: items})
}

func (h *UsuariosHandler) CambiarActivo(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CambiarActivoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CambiarActivo(c.Request.Context(), middleware.ActorID(c), id, *req.Activo); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
