package repository

import (
	"context"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// protos maps an entity type tag to a zero value of its model, used to
// address the right table in generic status and soft-delete operations.
var protos = map[string]any{
	model.EntidadUsuario:                   &model.Usuario{},
	model.EntidadProveedor:                 &model.Proveedor{},
	model.EntidadCliente:                   &model.Cliente{},
	model.EntidadArticulo:                  &model.Articulo{},
	model.EntidadDespachante:               &model.Despachante{},
	model.EntidadFormaEntrega:              &model.FormaDeEntrega{},
	model.EntidadSolped:                    &model.Solped{},
	model.EntidadPedidoCotizacion:          &model.PedidoDeCotizacion{},
	model.EntidadPedidoCotizacionProveedor: &model.PedidoCotizacionProveedor{},
	model.EntidadCotizacion:                &model.Cotizacion{},
	model.EntidadCotizacionProveedor:       &model.CotizacionProveedor{},
	model.EntidadOrdenCompraProveedor:      &model.OrdenCompraProveedor{},
	model.EntidadOrdenCompraCliente:        &model.OrdenCompraCliente{},
	model.EntidadRemito:                    &model.Remito{},
	model.EntidadEnvio:                     &model.Envio{},
}

// EntidadConocida reports whether tipo resolves to a table.
func EntidadConocida(tipo string) bool {
	_, ok := protos[tipo]
	return ok
}

// cascada names one dependent table reached from a parent entity. where is
// the condition binding dependents to the parent id.
type cascada struct {
	proto any
	where string
}

// cascadas lists, per entity type, the dependent rows that follow the parent
// through soft delete and restore. Only line items and junction rows cascade;
// documents never drag other documents down with them.
var cascadas = map[string][]cascada{
	model.EntidadProveedor: {
		{&model.ProveedorFormaEntrega{}, "proveedor_id = ?"},
	},
	model.EntidadFormaEntrega: {
		{&model.ProveedorFormaEntrega{}, "forma_entrega_id = ?"},
	},
	model.EntidadSolped: {
		{&model.DetalleSolped{}, "solped_id = ?"},
		{&model.PedidoCotizacionSolped{}, "solped_id = ?"},
		{&model.CotizacionSolped{}, "solped_id = ?"},
	},
	model.EntidadPedidoCotizacion: {
		{&model.PedidoCotizacionSolped{}, "pedido_cotizacion_id = ?"},
	},
	model.EntidadPedidoCotizacionProveedor: {
		{&model.DetallePedidoCotizacionProveedor{}, "pedido_cotizacion_proveedor_id = ?"},
	},
	model.EntidadCotizacion: {
		{&model.CotizacionSolped{}, "cotizacion_id = ?"},
		{&model.CotizacionGanador{}, "cotizacion_id = ?"},
	},
	model.EntidadCotizacionProveedor: {
		{&model.DetalleCotizacionProveedor{}, "cotizacion_proveedor_id = ?"},
		{&model.CotizacionGanador{}, "detalle_cotizacion_proveedor_id IN (SELECT id FROM detalles_cotizacion_proveedor WHERE cotizacion_proveedor_id = ?)"},
	},
	model.EntidadOrdenCompraProveedor: {
		{&model.DetalleOrdenCompraProveedor{}, "orden_compra_proveedor_id = ?"},
	},
	model.EntidadOrdenCompraCliente: {
		{&model.DetalleOrdenCompraCliente{}, "orden_compra_cliente_id = ?"},
	},
	model.EntidadRemito: {
		{&model.DetalleRemito{}, "remito_id = ?"},
	},
}

// DocumentoRepository is the entity-agnostic persistence surface behind
// status transitions, soft delete / restore and the expiration sweep.
type DocumentoRepository interface {
	DB() *gorm.DB

	ObtenerEstado(ctx context.Context, entidadTipo string, id uuid.UUID) (string, error)
	ObtenerFechaVencimiento(ctx context.Context, entidadTipo string, id uuid.UUID) (*time.Time, error)

	// ActualizarEstadoTx moves id from estado de to estado a with an
	// optimistic guard on de. Returns ErrConflicto when the row moved
	// under us, ErrNoEncontrado when it does not exist (or is deleted).
	ActualizarEstadoTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, de, a string, actor *uuid.UUID) error

	MarcarEliminadoTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, actor uuid.UUID, momento time.Time) error
	MarcarDependientesEliminadosTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, actor uuid.UUID, momento time.Time) (int64, error)
	ObtenerMomentoEliminacion(ctx context.Context, entidadTipo string, id uuid.UUID) (time.Time, error)
	RestaurarTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, momento time.Time) error
	RestaurarDependientesTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, momento time.Time) (int64, error)

	// ListarVencibles returns ids of live documents whose fecha_vencimiento
	// is before corte and whose estado is still non-terminal.
	ListarVencibles(ctx context.Context, entidadTipo string, corte time.Time, limite int) ([]uuid.UUID, error)
}

type documentoRepository struct {
	db *gorm.DB
}

func NewDocumentoRepository(db *gorm.DB) DocumentoRepository {
	return &documentoRepository{db: db}
}

func (r *documentoRepository) DB() *gorm.DB {
	return r.db
}

func (r *documentoRepository) ObtenerEstado(ctx context.Context, entidadTipo string, id uuid.UUID) (string, error) {
	proto, ok := protos[entidadTipo]
	if !ok {
		return "", &workflow.ErrNoEncontrado{Entidad: entidadTipo, ID: id.String()}
	}
	var fila struct {
		Status string
	}
	err := r.db.WithContext(ctx).Model(proto).
		Select("status").
		Where("id = ?", id).
		Take(&fila).Error
	if err != nil {
		return "", traducir(err, entidadTipo, id.String(), "")
	}
	return fila.Status, nil
}

func (r *documentoRepository) ObtenerFechaVencimiento(ctx context.Context, entidadTipo string, id uuid.UUID) (*time.Time, error) {
	proto, ok := protos[entidadTipo]
	if !ok {
		return nil, &workflow.ErrNoEncontrado{Entidad: entidadTipo, ID: id.String()}
	}
	var fila struct {
		FechaVencimiento *time.Time
	}
	err := r.db.WithContext(ctx).Model(proto).
		Select("fecha_vencimiento").
		Where("id = ?", id).
		Take(&fila).Error
	if err != nil {
		return nil, traducir(err, entidadTipo, id.String(), "")
	}
	return fila.FechaVencimiento, nil
}

func (r *documentoRepository) ActualizarEstadoTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, de, a string, actor *uuid.UUID) error {
	proto := protos[entidadTipo]
	res := tx.Model(proto).
		Where("id = ? AND status = ?", id, de).
		Updates(map[string]any{"status": a, "updated_by": actor})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the row is gone or another writer moved it first.
		var n int64
		if err := tx.Model(proto).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return &workflow.ErrNoEncontrado{Entidad: entidadTipo, ID: id.String()}
		}
		return &workflow.ErrConflicto{Entidad: entidadTipo, ID: id.String()}
	}
	return nil
}

func (r *documentoRepository) MarcarEliminadoTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, actor uuid.UUID, momento time.Time) error {
	proto := protos[entidadTipo]
	res := tx.Model(proto).
		Where("id = ?", id).
		Updates(map[string]any{"deleted_at": momento, "deleted_by": actor})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &workflow.ErrNoEncontrado{Entidad: entidadTipo, ID: id.String()}
	}
	return nil
}

func (r *documentoRepository) MarcarDependientesEliminadosTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, actor uuid.UUID, momento time.Time) (int64, error) {
	var total int64
	for _, c := range cascadas[entidadTipo] {
		res := tx.Model(c.proto).
			Where(c.where, id).
			Updates(map[string]any{"deleted_at": momento, "deleted_by": actor})
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}

func (r *documentoRepository) ObtenerMomentoEliminacion(ctx context.Context, entidadTipo string, id uuid.UUID) (time.Time, error) {
	proto, ok := protos[entidadTipo]
	if !ok {
		return time.Time{}, &workflow.ErrNoEncontrado{Entidad: entidadTipo, ID: id.String()}
	}
	var fila struct {
		DeletedAt *time.Time
	}
	err := r.db.WithContext(ctx).Unscoped().Model(proto).
		Select("deleted_at").
		Where("id = ?", id).
		Take(&fila).Error
	if err != nil {
		return time.Time{}, traducir(err, entidadTipo, id.String(), "")
	}
	if fila.DeletedAt == nil {
		return time.Time{}, &workflow.ErrNoEncontrado{Entidad: entidadTipo, ID: id.String()}
	}
	return *fila.DeletedAt, nil
}

func (r *documentoRepository) RestaurarTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, momento time.Time) error {
	proto := protos[entidadTipo]
	res := tx.Unscoped().Model(proto).
		Where("id = ? AND deleted_at = ?", id, momento).
		Updates(map[string]any{"deleted_at": nil, "deleted_by": nil})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &workflow.ErrNoEncontrado{Entidad: entidadTipo, ID: id.String()}
	}
	return nil
}

func (r *documentoRepository) RestaurarDependientesTx(tx *gorm.DB, entidadTipo string, id uuid.UUID, momento time.Time) (int64, error) {
	var total int64
	for _, c := range cascadas[entidadTipo] {
		// Only rows stamped in the same deletion batch come back: a detalle
		// deleted on its own before the parent stays deleted after restore.
		res := tx.Unscoped().Model(c.proto).
			Where(c.where, id).
			Where("deleted_at = ?", momento).
			Updates(map[string]any{"deleted_at": nil, "deleted_by": nil})
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}

func (r *documentoRepository) ListarVencibles(ctx context.Context, entidadTipo string, corte time.Time, limite int) ([]uuid.UUID, error) {
	proto, ok := protos[entidadTipo]
	if !ok {
		return nil, nil
	}
	tabla, ok := workflow.PorEntidad[entidadTipo]
	if !ok {
		return nil, nil
	}
	vencible, ok := workflow.EstadoVencido(entidadTipo)
	if !ok {
		return nil, nil
	}
	var abiertos []string
	for _, e := range tabla.Estados() {
		if !tabla.EsTerminal(e) && tabla.Puede(e, vencible) {
			abiertos = append(abiertos, e)
		}
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(proto).
		Where("fecha_vencimiento IS NOT NULL AND fecha_vencimiento < ?", corte).
		Where("status IN ?", abiertos).
		Limit(limite).
		Pluck("id", &ids).Error
	return ids, err
}
