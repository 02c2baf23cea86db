package model

import (
	"github.com/google/uuid"
)

// Roles de usuario
const (
	RolVendedor      = "VENDEDOR"
	RolComprador     = "COMPRADOR"
	RolAdministrador = "ADMINISTRADOR"
	RolSupervisor    = "SUPERVISOR"
)

// Usuario is identified by email and carries the role consumed by the
// RequireRole middleware. This core never authenticates beyond verifying
// the password hash at login.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null;default:'VENDEDOR';index"`
	Activo       bool      `gorm:"not null;default:true"`
	Auditoria
}

func (Usuario) TableName() string { return "usuarios" }
