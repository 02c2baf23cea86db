package infra

import (
	"fmt"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate over the full schema. TranslateError turns driver duplicate-key
// errors into gorm.ErrDuplicatedKey so the repositories can map them onto the
// domain conflict errors.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates every table. gen_random_uuid defaults need
// pgcrypto on Postgres < 13, so the extension is ensured first.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Proveedor{},
		&model.FormaDeEntrega{},
		&model.ProveedorFormaEntrega{},
		&model.Cliente{},
		&model.Articulo{},
		&model.Despachante{},
		&model.Solped{},
		&model.DetalleSolped{},
		&model.PedidoDeCotizacion{},
		&model.PedidoCotizacionProveedor{},
		&model.DetallePedidoCotizacionProveedor{},
		&model.PedidoCotizacionSolped{},
		&model.CotizacionProveedor{},
		&model.DetalleCotizacionProveedor{},
		&model.Cotizacion{},
		&model.CotizacionSolped{},
		&model.CotizacionGanador{},
		&model.OrdenCompraProveedor{},
		&model.DetalleOrdenCompraProveedor{},
		&model.OrdenCompraCliente{},
		&model.DetalleOrdenCompraCliente{},
		&model.Remito{},
		&model.DetalleRemito{},
		&model.Envio{},
		&model.Comunicacion{},
		&model.Actividad{},
	)
}
