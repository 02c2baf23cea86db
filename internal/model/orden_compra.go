package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de OrdenCompra (proveedor y cliente)
const (
	EstadoOrdenBorrador   = "BORRADOR"
	EstadoOrdenEnviada    = "ENVIADA"
	EstadoOrdenConfirmada = "CONFIRMADA"
	EstadoOrdenEnProceso  = "EN_PROCESO"
	EstadoOrdenCompletada = "COMPLETADA"
	EstadoOrdenCancelada  = "CANCELADA"
)

// OrdenCompraProveedor is a purchase order placed with a supplier.
// NumeroOrden is globally unique when present.
type OrdenCompraProveedor struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	NumeroOrden          *string    `gorm:"type:varchar(50);uniqueIndex"`
	Status               string     `gorm:"type:varchar(20);not null;default:'BORRADOR';index"`
	FechaEntregaEstimada *time.Time `gorm:"type:date"`
	Auditoria

	Proveedor *Proveedor                    `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleOrdenCompraProveedor `gorm:"foreignKey:OrdenCompraProveedorID"`
}

func (OrdenCompraProveedor) TableName() string { return "ordenes_compra_proveedor" }

// DetalleOrdenCompraProveedor is a priced order line.
type DetalleOrdenCompraProveedor struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenCompraProveedorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticuloID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	CantidadValor          decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	CantidadUnidad         string          `gorm:"type:varchar(10);not null"`
	PrecioUnitarioValor    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PrecioUnitarioMoneda   string          `gorm:"type:varchar(3);not null;default:'ARS'"`
	Auditoria

	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
}

func (DetalleOrdenCompraProveedor) TableName() string { return "detalles_orden_compra_proveedor" }

// OrdenCompraCliente is a sales order received from a client.
type OrdenCompraCliente struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	NumeroOrden          *string    `gorm:"type:varchar(50);uniqueIndex"`
	Status               string     `gorm:"type:varchar(20);not null;default:'BORRADOR';index"`
	FechaEntregaEstimada *time.Time `gorm:"type:date"`
	Auditoria

	Cliente  *Cliente                    `gorm:"foreignKey:ClienteID"`
	Detalles []DetalleOrdenCompraCliente `gorm:"foreignKey:OrdenCompraClienteID"`
}

func (OrdenCompraCliente) TableName() string { return "ordenes_compra_cliente" }

// DetalleOrdenCompraCliente is a priced sales order line.
type DetalleOrdenCompraCliente struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenCompraClienteID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticuloID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CantidadValor        decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	CantidadUnidad       string          `gorm:"type:varchar(10);not null"`
	PrecioValor          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PrecioMoneda         string          `gorm:"type:varchar(3);not null;default:'ARS'"`
	Auditoria

	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
}

func (DetalleOrdenCompraCliente) TableName() string { return "detalles_orden_compra_cliente" }
