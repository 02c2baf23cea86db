package model

import (
	"github.com/google/uuid"
)

// Estados de Proveedor / Cliente
const (
	EstadoEntidadActivo              = "ACTIVO"
	EstadoEntidadInactivo            = "INACTIVO"
	EstadoEntidadSuspendido          = "SUSPENDIDO"
	EstadoEntidadPendienteAprobacion = "PENDIENTE_APROBACION"
)

// Proveedor represents a supplier.
// CUIT is globally unique when present (nullable unique index).
type Proveedor struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazonSocial         string    `gorm:"not null"`
	Localizacion        string
	CUIT                *string `gorm:"column:cuit;type:varchar(13);uniqueIndex"`
	Status              string  `gorm:"type:varchar(25);not null;default:'PENDIENTE_APROBACION';index"`
	EsProveedorNacional bool    `gorm:"not null;default:false"`
	Auditoria

	FormasEntrega []ProveedorFormaEntrega `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }

// FormaDeEntrega is a delivery method a supplier can offer.
type FormaDeEntrega struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Descripcion string
	Auditoria
}

func (FormaDeEntrega) TableName() string { return "formas_de_entrega" }

// ProveedorFormaEntrega links a supplier to a delivery method.
// The (proveedor, forma_entrega) pair is unique.
type ProveedorFormaEntrega struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_proveedor_forma_entrega"`
	FormaEntregaID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_proveedor_forma_entrega"`
	Auditoria

	FormaEntrega *FormaDeEntrega `gorm:"foreignKey:FormaEntregaID"`
}

func (ProveedorFormaEntrega) TableName() string { return "proveedor_formas_entrega" }
