package repository

import (
	"errors"

	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"gorm.io/gorm"
)

// alcance applies the read mode: by default soft-deleted rows are invisible,
// Unscoped() brings them back for "incluir eliminados" reads.
func alcance(db *gorm.DB, incluirEliminados bool) *gorm.DB {
	if incluirEliminados {
		return db.Unscoped()
	}
	return db
}

// traducir maps GORM storage errors onto the domain error taxonomy.
// campo names the unique field a duplicate-key error would be about
// (the DB enforces uniqueness, so races between concurrent inserts
// surface here rather than as silent overwrites).
func traducir(err error, entidad, id, campo string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &workflow.ErrNoEncontrado{Entidad: entidad, ID: id}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &workflow.ErrConflictoUnicidad{Campo: campo}
	default:
		return err
	}
}
