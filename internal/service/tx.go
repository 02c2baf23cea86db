package service

import (
	"context"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// runTx executes fn inside a database transaction. A nil db runs fn directly
// with a nil tx, which lets unit tests drive services through stub
// repositories without a database.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// verificarArticulo resolves the referenced article through the default scope.
// A missing or soft-deleted article surfaces as ErrNoEncontrado, so line items
// can never point at a dead catalogue entry.
func verificarArticulo(ctx context.Context, docs repository.DocumentoRepository, id uuid.UUID) error {
	_, err := docs.ObtenerEstado(ctx, model.EntidadArticulo, id)
	return err
}
