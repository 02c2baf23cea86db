package model

import (
	"github.com/google/uuid"
)

// Cliente represents a client with contact data.
type Cliente struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazonSocial  *string
	Localizacion string
	CUIT         *string `gorm:"column:cuit;type:varchar(13);uniqueIndex"`
	Status       string  `gorm:"type:varchar(25);not null;default:'ACTIVO';index"`
	WebPage      string
	Telefono     string `gorm:"type:varchar(20)"`
	Email        string
	// Primary contact person
	ContactoNombre   string
	ContactoTelefono string `gorm:"type:varchar(20)"`
	ContactoEmail    string
	Auditoria
}

func (Cliente) TableName() string { return "clientes" }
