package model

import (
	"github.com/google/uuid"
)

// EntidadComunicacion names the comunicaciones table in error payloads.
// Notes point AT the Entidad* set but are not themselves a reference target,
// so the tag lives outside that closed set.
const EntidadComunicacion = "COMUNICACION"

// Comunicacion is a free-text note a user attaches to any entity through a
// (tipo, id) polymorphic reference over the closed Entidad* set.
type Comunicacion struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Contenido   string     `gorm:"not null"`
	EntidadTipo *string    `gorm:"type:varchar(30);index:idx_comunicaciones_entidad"`
	EntidadID   *uuid.UUID `gorm:"type:uuid;index:idx_comunicaciones_entidad"`
	Auditoria

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Comunicacion) TableName() string { return "comunicaciones" }
