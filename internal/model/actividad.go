package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JSONB maps to a postgres jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("jsonb scan: unexpected type %T", value)
	}
	return json.Unmarshal(bytes, j)
}

// Tipos de actividad
const (
	ActividadCreate  = "CREATE"
	ActividadUpdate  = "UPDATE"
	ActividadDelete  = "DELETE"
	ActividadView    = "VIEW"
	ActividadApprove = "APPROVE"
	ActividadReject  = "REJECT"
)

// Tipos de entidad — the closed set of kinds a polymorphic reference
// (Actividad, Comunicacion) may point at. Every tag resolves to exactly one
// table through the lookup in repository.
const (
	EntidadUsuario                   = "USUARIO"
	EntidadProveedor                 = "PROVEEDOR"
	EntidadCliente                   = "CLIENTE"
	EntidadArticulo                  = "ARTICULO"
	EntidadDespachante               = "DESPACHANTE"
	EntidadFormaEntrega              = "FORMA_ENTREGA"
	EntidadSolped                    = "SOLPED"
	EntidadPedidoCotizacion          = "PEDIDO_COTIZACION"
	EntidadPedidoCotizacionProveedor = "PEDIDO_COTIZACION_PROVEEDOR"
	EntidadCotizacion                = "COTIZACION"
	EntidadCotizacionProveedor       = "COTIZACION_PROVEEDOR"
	EntidadOrdenCompraProveedor      = "ORDEN_COMPRA_PROVEEDOR"
	EntidadOrdenCompraCliente        = "ORDEN_COMPRA_CLIENTE"
	EntidadRemito                    = "REMITO"
	EntidadEnvio                     = "ENVIO"
)

// Actividad is an immutable audit event. It deliberately does NOT embed
// Auditoria: audit rows are never updated, never soft-deleted, and survive
// the deletion of the entity they describe.
// UsuarioID is nil when the action was performed by an automated process
// (e.g. the expiration sweep).
type Actividad struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID   *uuid.UUID `gorm:"type:uuid;index"`
	Fecha       time.Time  `gorm:"not null;index"`
	Tipo        string     `gorm:"type:varchar(20);not null;index"`
	EntidadTipo string     `gorm:"type:varchar(30);not null;index:idx_actividades_entidad"`
	EntidadID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_actividades_entidad"`
	Data        JSONB      `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

func (Actividad) TableName() string { return "actividades" }
