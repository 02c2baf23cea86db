package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de Envio
const (
	EstadoEnvioPreparando = "PREPARANDO"
	EstadoEnvioEnTransito = "EN_TRANSITO"
	EstadoEnvioEntregado  = "ENTREGADO"
	EstadoEnvioDevuelto   = "DEVUELTO"
	EstadoEnvioPerdido    = "PERDIDO"
	EstadoEnvioDemorado   = "DEMORADO"
)

// Envio is a physical shipment of one Remito through a Despachante.
type Envio struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RemitoID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	DespachanteID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	NumeroSeguimiento *string    `gorm:"uniqueIndex"`
	Status            string     `gorm:"type:varchar(20);not null;default:'PREPARANDO';index"`
	FechaEnvio        *time.Time `gorm:"type:date"`
	FechaEntregaReal  *time.Time `gorm:"type:date"`
	Auditoria

	Remito      *Remito      `gorm:"foreignKey:RemitoID"`
	Despachante *Despachante `gorm:"foreignKey:DespachanteID"`
}

func (Envio) TableName() string { return "envios" }
