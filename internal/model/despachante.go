package model

import (
	"github.com/google/uuid"
)

// Despachante is a freight forwarder referenced by shipments.
type Despachante struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazonSocial        string    `gorm:"not null"`
	CUIT               *string   `gorm:"column:cuit;type:varchar(13);uniqueIndex"`
	Direccion          string
	Telefono           string `gorm:"type:varchar(20)"`
	TelefonoSecundario string `gorm:"type:varchar(20)"`
	Email              string
	EmailSecundario    string
	ContactoNombre     string
	Auditoria
}

func (Despachante) TableName() string { return "despachantes" }
