package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de Cotizacion / CotizacionProveedor
const (
	EstadoCotizacionBorrador  = "BORRADOR"
	EstadoCotizacionEnviada   = "ENVIADA"
	EstadoCotizacionRecibida  = "RECIBIDA"
	EstadoCotizacionEvaluada  = "EVALUADA"
	EstadoCotizacionAceptada  = "ACEPTADA"
	EstadoCotizacionRechazada = "RECHAZADA"
	EstadoCotizacionVencida   = "VENCIDA"
)

// CotizacionProveedor holds a supplier's quoted prices, optionally answering
// a PedidoCotizacionProveedor.
type CotizacionProveedor struct {
	ID                          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID                 uuid.UUID  `gorm:"type:uuid;not null;index"`
	PedidoCotizacionProveedorID *uuid.UUID `gorm:"type:uuid"`
	Status                      string     `gorm:"type:varchar(20);not null;default:'BORRADOR';index"`
	FechaVencimiento            *time.Time `gorm:"type:date;index"`
	Auditoria

	Proveedor *Proveedor                   `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleCotizacionProveedor `gorm:"foreignKey:CotizacionProveedorID"`
}

func (CotizacionProveedor) TableName() string { return "cotizaciones_proveedor" }

// DetalleCotizacionProveedor is a quoted line: article, quantity, unit price.
type DetalleCotizacionProveedor struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CotizacionProveedorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticuloID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	CantidadValor         decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	CantidadUnidad        string          `gorm:"type:varchar(10);not null"`
	PrecioUnitarioValor   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PrecioUnitarioMoneda  string          `gorm:"type:varchar(3);not null;default:'ARS'"`
	Auditoria

	Articulo            *Articulo            `gorm:"foreignKey:ArticuloID"`
	CotizacionProveedor *CotizacionProveedor `gorm:"foreignKey:CotizacionProveedorID"`
}

func (DetalleCotizacionProveedor) TableName() string { return "detalles_cotizacion_proveedor" }

// Cotizacion is the margin-adjusted quotation presented to a client. Its
// winning supplier lines are the CotizacionGanador rows.
type Cotizacion struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Margen           *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Status           string           `gorm:"type:varchar(20);not null;default:'BORRADOR';index"`
	FechaVencimiento *time.Time       `gorm:"type:date;index"`
	Auditoria

	Cliente   *Cliente            `gorm:"foreignKey:ClienteID"`
	Ganadores []CotizacionGanador `gorm:"foreignKey:CotizacionID"`
	Solpeds   []CotizacionSolped  `gorm:"foreignKey:CotizacionID"`
}

func (Cotizacion) TableName() string { return "cotizaciones" }

// CotizacionSolped links a final quotation to a Solped. Unique pair.
type CotizacionSolped struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CotizacionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cotizacion_solped"`
	SolpedID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cotizacion_solped"`
	Auditoria
}

func (CotizacionSolped) TableName() string { return "cotizacion_solpeds" }

// CotizacionGanador binds a final quotation to a chosen supplier line item.
// A (cotizacion, detalle) pair is selected at most once.
type CotizacionGanador struct {
	ID                           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CotizacionID                 uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cotizacion_ganador"`
	DetalleCotizacionProveedorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cotizacion_ganador"`
	Auditoria

	DetalleCotizacionProveedor *DetalleCotizacionProveedor `gorm:"foreignKey:DetalleCotizacionProveedorID"`
}

func (CotizacionGanador) TableName() string { return "cotizacion_ganadores" }
