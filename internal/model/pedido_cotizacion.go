package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de PedidoDeCotizacion / PedidoCotizacionProveedor
const (
	EstadoPedidoPendienteRespuesta = "PENDIENTE DE RESPUESTA"
	EstadoPedidoBorrador           = "BORRADOR"
	EstadoPedidoEnviado            = "ENVIADO"
	EstadoPedidoRespondido         = "RESPONDIDO"
	EstadoPedidoVencido            = "VENCIDO"
	EstadoPedidoCancelado          = "CANCELADO"
)

// PedidoDeCotizacion is a client-side request for quotes.
type PedidoDeCotizacion struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status           string     `gorm:"type:varchar(25);not null;default:'BORRADOR';index"`
	FechaVencimiento *time.Time `gorm:"type:date"`
	Auditoria

	Cliente *Cliente                 `gorm:"foreignKey:ClienteID"`
	Solpeds []PedidoCotizacionSolped `gorm:"foreignKey:PedidoCotizacionID"`
}

func (PedidoDeCotizacion) TableName() string { return "pedidos_de_cotizacion" }

// PedidoCotizacionProveedor is a request for quotes sent to one supplier.
type PedidoCotizacionProveedor struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status           string     `gorm:"type:varchar(25);not null;default:'BORRADOR';index"`
	FechaVencimiento *time.Time `gorm:"type:date"`
	Auditoria

	Proveedor *Proveedor                         `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetallePedidoCotizacionProveedor `gorm:"foreignKey:PedidoCotizacionProveedorID"`
}

func (PedidoCotizacionProveedor) TableName() string { return "pedidos_cotizacion_proveedor" }

// DetallePedidoCotizacionProveedor is a requested article + quantity line.
type DetallePedidoCotizacionProveedor struct {
	ID                          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoCotizacionProveedorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticuloID                  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CantidadValor               decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	CantidadUnidad              string          `gorm:"type:varchar(10);not null"`
	Auditoria

	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
}

func (DetallePedidoCotizacionProveedor) TableName() string {
	return "detalles_pedido_cotizacion_proveedor"
}

// PedidoCotizacionSolped links a quote request to the Solped that motivated
// it. The (pedido_cotizacion, solped) pair is unique.
type PedidoCotizacionSolped struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoCotizacionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pedido_cotizacion_solped"`
	SolpedID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pedido_cotizacion_solped"`
	Auditoria
}

func (PedidoCotizacionSolped) TableName() string { return "pedido_cotizacion_solpeds" }
