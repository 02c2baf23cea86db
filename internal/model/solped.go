package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de Solped
const (
	EstadoSolpedBorrador   = "BORRADOR"
	EstadoSolpedEnviada    = "ENVIADA"
	EstadoSolpedAprobada   = "APROBADA"
	EstadoSolpedRechazada  = "RECHAZADA"
	EstadoSolpedEnProceso  = "EN_PROCESO"
	EstadoSolpedCompletada = "COMPLETADA"
)

// Solped is an internal purchase request raised by staff.
type Solped struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NroSolped int       `gorm:"uniqueIndex;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'BORRADOR';index"`
	Auditoria

	Detalles []DetalleSolped `gorm:"foreignKey:SolpedID"`
}

func (Solped) TableName() string { return "solpeds" }

// DetalleSolped is a Solped line item referencing an Articulo.
type DetalleSolped struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SolpedID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticuloID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CantidadValor  decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	CantidadUnidad string          `gorm:"type:varchar(10);not null"`
	Auditoria

	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
}

func (DetalleSolped) TableName() string { return "detalles_solped" }
