package dto

import "github.com/Andreskammerath/BKK-procurement-system/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CrearUsuarioRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol"      validate:"required,oneof=VENDEDOR COMPRADOR ADMINISTRADOR SUPERVISOR"`
}

type CambiarActivoRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Usuario      UsuarioResponse `json:"usuario"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

func UsuarioResponseDe(u *model.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:     u.ID.String(),
		Email:  u.Email,
		Rol:    u.Rol,
		Activo: u.Activo,
	}
}
