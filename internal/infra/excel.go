package infra

// excel.go — article catalogue export using excelize. One sheet, one row per
// article, streamed back to the HTTP response by the handler.

import (
	"strings"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/xuri/excelize/v2"
)

var columnasArticulos = []string{
	"ID", "Descripcion", "Marca", "Modelo", "Familia", "SubFamilia",
	"Categoria Nivel 1", "Codigo Fabricante", "Nivel de Uso", "Status",
	"Palabras Clave",
}

// ExportarArticulos builds an xlsx workbook with the given articles.
func ExportarArticulos(articulos []model.Articulo) (*excelize.File, error) {
	f := excelize.NewFile()
	const hoja = "Articulos"

	idx, err := f.NewSheet(hoja)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, titulo := range columnasArticulos {
		celda, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(hoja, celda, titulo); err != nil {
			return nil, err
		}
	}

	for fila, a := range articulos {
		nivelUso := ""
		if a.NivelUso != nil {
			nivelUso = *a.NivelUso
		}
		valores := []any{
			a.ID.String(), a.Descripcion, a.Marca, a.Modelo, a.Familia,
			a.SubFamilia, a.CategoriaLvl1, a.CodigoFabricante, nivelUso,
			a.Status, strings.Join(a.PalabrasClaves, ", "),
		}
		for col, v := range valores {
			celda, err := excelize.CoordinatesToCellName(col+1, fila+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(hoja, celda, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
