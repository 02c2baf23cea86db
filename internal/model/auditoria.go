package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auditoria carries the audit columns shared by every soft-deletable entity.
// DeletedAt doubles as the soft-delete flag: GORM excludes marked rows from
// default queries, and Unscoped() is the "incluir eliminados" read mode.
// Records are never physically removed by normal flows.
type Auditoria struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy *uuid.UUID     `gorm:"type:uuid"`
	UpdatedBy *uuid.UUID     `gorm:"type:uuid"`
	DeletedBy *uuid.UUID     `gorm:"type:uuid"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
