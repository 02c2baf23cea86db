package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de Remito
const (
	EstadoRemitoBorrador   = "BORRADOR"
	EstadoRemitoEnviado    = "ENVIADO"
	EstadoRemitoEnTransito = "EN_TRANSITO"
	EstadoRemitoEntregado  = "ENTREGADO"
	EstadoRemitoDevuelto   = "DEVUELTO"
)

// Remito is a delivery receipt addressed to a client.
// NumeroRemito is globally unique when present.
type Remito struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DestinatarioID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	NumeroRemito         *string    `gorm:"type:varchar(50);uniqueIndex"`
	Status               string     `gorm:"type:varchar(20);not null;default:'BORRADOR';index"`
	FechaEnvio           *time.Time `gorm:"type:date"`
	FechaEntregaEstimada *time.Time `gorm:"type:date"`
	Auditoria

	Destinatario *Cliente        `gorm:"foreignKey:DestinatarioID"`
	Detalles     []DetalleRemito `gorm:"foreignKey:RemitoID"`
}

func (Remito) TableName() string { return "remitos" }

// DetalleRemito is a delivered article + quantity line.
type DetalleRemito struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RemitoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticuloID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CantidadValor  decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	CantidadUnidad string          `gorm:"type:varchar(10);not null"`
	Auditoria

	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
}

func (DetalleRemito) TableName() string { return "detalles_remito" }
