package infra

// pdf.go — purchase order PDF generation using go-pdf/fpdf.
// A4 document with the order header, supplier data, a line-item table and
// per-currency totals. The output file is saved to
// storagePath/orden_compra_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerarOrdenCompraPDF renders a supplier purchase order. Returns the
// absolute path to the generated file.
func GenerarOrdenCompraPDF(orden *model.OrdenCompraProveedor, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	nombre := orden.ID.String()
	if orden.NumeroOrden != nil && *orden.NumeroOrden != "" {
		nombre = *orden.NumeroOrden
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("orden_compra_%s.pdf", nombre))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ──
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Orden de Compra", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if orden.NumeroOrden != nil {
		pdf.CellFormat(contentW, 6, fmt.Sprintf("N° %s", *orden.NumeroOrden), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, orden.CreatedAt.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Supplier block ──
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Proveedor", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if orden.Proveedor != nil {
		pdf.CellFormat(contentW, 6, orden.Proveedor.RazonSocial, "", 1, "L", false, 0, "")
		if orden.Proveedor.CUIT != nil {
			pdf.CellFormat(contentW, 5, "CUIT: "+*orden.Proveedor.CUIT, "", 1, "L", false, 0, "")
		}
		if orden.Proveedor.Localizacion != "" {
			pdf.CellFormat(contentW, 5, orden.Proveedor.Localizacion, "", 1, "L", false, 0, "")
		}
	}
	if orden.FechaEntregaEstimada != nil {
		pdf.CellFormat(contentW, 5, "Entrega estimada: "+orden.FechaEntregaEstimada.Format("02/01/2006"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Item table ──
	col1 := contentW * 0.46 // article
	col2 := contentW * 0.18 // quantity
	col3 := contentW * 0.18 // unit price
	col4 := contentW * 0.18 // subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Articulo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cantidad", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "P. Unitario", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Subtotal", "B", 1, "R", false, 0, "")

	totales := map[string]decimal.Decimal{}

	pdf.SetFont("Helvetica", "", 9)
	for _, d := range orden.Detalles {
		descripcion := d.ArticuloID.String()
		if d.Articulo != nil {
			descripcion = d.Articulo.Descripcion
		}
		if len(descripcion) > 45 {
			descripcion = descripcion[:44] + "…"
		}
		subtotal := d.CantidadValor.Mul(d.PrecioUnitarioValor)
		totales[d.PrecioUnitarioMoneda] = totales[d.PrecioUnitarioMoneda].Add(subtotal)

		pdf.CellFormat(col1, 6, descripcion, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, d.CantidadValor.StringFixed(3)+" "+d.CantidadUnidad, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, d.PrecioUnitarioValor.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	for moneda, total := range totales {
		pdf.CellFormat(col1+col2+col3, 7, "Total "+moneda+":", "T", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 7, total.StringFixed(2), "T", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
