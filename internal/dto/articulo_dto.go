package dto

import (
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type MedidaInput struct {
	Valor  *decimal.Decimal `json:"valor"`
	Unidad *string          `json:"unidad"`
}

type CrearArticuloRequest struct {
	Descripcion           string         `json:"descripcion"            validate:"required,min=2"`
	Marca                 string         `json:"marca"`
	Modelo                string         `json:"modelo"`
	Tipo                  string         `json:"tipo"`
	PalabrasClaves        []string       `json:"palabras_claves"`
	Familia               string         `json:"familia"`
	SubFamilia            string         `json:"sub_familia"`
	MaterialPrincipal     string         `json:"material_principal"`
	MaterialSecundario    string         `json:"material_secundario"`
	CodigoFabricante      string         `json:"codigo_fabricante"`
	EspecificacionTecnica map[string]any `json:"especificacion_tecnica"`
	Tags                  []string       `json:"tags"`
	Industria             string         `json:"industria"`
	URLFichaTecnica       string         `json:"url_ficha_tecnica"      validate:"omitempty,url"`
	URLManualTecnico      string         `json:"url_manual_tecnico"     validate:"omitempty,url"`
	URLImagenPrincipal    string         `json:"url_imagen_principal"   validate:"omitempty,url"`
	NivelUso              *string        `json:"nivel_uso"              validate:"omitempty,oneof=DOMESTICO COMERCIAL INDUSTRIAL CRITICO"`
	Peso                  MedidaInput    `json:"peso"`
	Largo                 MedidaInput    `json:"largo"`
	Alto                  MedidaInput    `json:"alto"`
	Ancho                 MedidaInput    `json:"ancho"`
	CategoriaLvl1         string         `json:"categoria_lvl1"`
	CategoriaLvl2         string         `json:"categoria_lvl2"`
	CategoriaLvl3         string         `json:"categoria_lvl3"`
	CategoriaLvl4         string         `json:"categoria_lvl4"`
}

type ActualizarArticuloRequest = CrearArticuloRequest

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MedidaResponse struct {
	Valor  *decimal.Decimal `json:"valor,omitempty"`
	Unidad *string          `json:"unidad,omitempty"`
}

type ArticuloResponse struct {
	ID                    string         `json:"id"`
	Descripcion           string         `json:"descripcion"`
	Marca                 string         `json:"marca,omitempty"`
	Modelo                string         `json:"modelo,omitempty"`
	Tipo                  string         `json:"tipo,omitempty"`
	PalabrasClaves        []string       `json:"palabras_claves,omitempty"`
	Familia               string         `json:"familia,omitempty"`
	SubFamilia            string         `json:"sub_familia,omitempty"`
	MaterialPrincipal     string         `json:"material_principal,omitempty"`
	MaterialSecundario    string         `json:"material_secundario,omitempty"`
	CodigoFabricante      string         `json:"codigo_fabricante,omitempty"`
	EspecificacionTecnica map[string]any `json:"especificacion_tecnica,omitempty"`
	Tags                  []string       `json:"tags,omitempty"`
	Industria             string         `json:"industria,omitempty"`
	URLFichaTecnica       string         `json:"url_ficha_tecnica,omitempty"`
	URLManualTecnico      string         `json:"url_manual_tecnico,omitempty"`
	URLImagenPrincipal    string         `json:"url_imagen_principal,omitempty"`
	NivelUso              *string        `json:"nivel_uso,omitempty"`
	Status                string         `json:"status"`
	Peso                  MedidaResponse `json:"peso,omitempty"`
	Largo                 MedidaResponse `json:"largo,omitempty"`
	Alto                  MedidaResponse `json:"alto,omitempty"`
	Ancho                 MedidaResponse `json:"ancho,omitempty"`
	CategoriaLvl1         string         `json:"categoria_lvl1,omitempty"`
	CategoriaLvl2         string         `json:"categoria_lvl2,omitempty"`
	CategoriaLvl3         string         `json:"categoria_lvl3,omitempty"`
	CategoriaLvl4         string         `json:"categoria_lvl4,omitempty"`
	Eliminado             bool           `json:"eliminado,omitempty"`
}

// ArticuloDe maps a create/update request onto the model.
func ArticuloDe(req *CrearArticuloRequest) *model.Articulo {
	return &model.Articulo{
		Descripcion:           req.Descripcion,
		Marca:                 req.Marca,
		Modelo:                req.Modelo,
		Tipo:                  req.Tipo,
		PalabrasClaves:        req.PalabrasClaves,
		Familia:               req.Familia,
		SubFamilia:            req.SubFamilia,
		MaterialPrincipal:     req.MaterialPrincipal,
		MaterialSecundario:    req.MaterialSecundario,
		CodigoFabricante:      req.CodigoFabricante,
		EspecificacionTecnica: req.EspecificacionTecnica,
		Tags:                  req.Tags,
		Industria:             req.Industria,
		URLFichaTecnica:       req.URLFichaTecnica,
		URLManualTecnico:      req.URLManualTecnico,
		URLImagenPrincipal:    req.URLImagenPrincipal,
		NivelUso:              req.NivelUso,
		Peso:                  model.Medida{Valor: req.Peso.Valor, Unidad: req.Peso.Unidad},
		Largo:                 model.Medida{Valor: req.Largo.Valor, Unidad: req.Largo.Unidad},
		Alto:                  model.Medida{Valor: req.Alto.Valor, Unidad: req.Alto.Unidad},
		Ancho:                 model.Medida{Valor: req.Ancho.Valor, Unidad: req.Ancho.Unidad},
		CategoriaLvl1:         req.CategoriaLvl1,
		CategoriaLvl2:         req.CategoriaLvl2,
		CategoriaLvl3:         req.CategoriaLvl3,
		CategoriaLvl4:         req.CategoriaLvl4,
	}
}

func ArticuloResponseDe(a *model.Articulo) ArticuloResponse {
	return ArticuloResponse{
		ID:                    a.ID.String(),
		Descripcion:           a.Descripcion,
		Marca:                 a.Marca,
		Modelo:                a.Modelo,
		Tipo:                  a.Tipo,
		PalabrasClaves:        a.PalabrasClaves,
		Familia:               a.Familia,
		SubFamilia:            a.SubFamilia,
		MaterialPrincipal:     a.MaterialPrincipal,
		MaterialSecundario:    a.MaterialSecundario,
		CodigoFabricante:      a.CodigoFabricante,
		EspecificacionTecnica: a.EspecificacionTecnica,
		Tags:                  a.Tags,
		Industria:             a.Industria,
		URLFichaTecnica:       a.URLFichaTecnica,
		URLManualTecnico:      a.URLManualTecnico,
		URLImagenPrincipal:    a.URLImagenPrincipal,
		NivelUso:              a.NivelUso,
		Status:                a.Status,
		Peso:                  MedidaResponse{Valor: a.Peso.Valor, Unidad: a.Peso.Unidad},
		Largo:                 MedidaResponse{Valor: a.Largo.Valor, Unidad: a.Largo.Unidad},
		Alto:                  MedidaResponse{Valor: a.Alto.Valor, Unidad: a.Alto.Unidad},
		Ancho:                 MedidaResponse{Valor: a.Ancho.Valor, Unidad: a.Ancho.Unidad},
		CategoriaLvl1:         a.CategoriaLvl1,
		CategoriaLvl2:         a.CategoriaLvl2,
		CategoriaLvl3:         a.CategoriaLvl3,
		CategoriaLvl4:         a.CategoriaLvl4,
		Eliminado:             a.DeletedAt.Valid,
	}
}

func ArticulosResponseDe(articulos []model.Articulo) []ArticuloResponse {
	out := make([]ArticuloResponse, 0, len(articulos))
	for i := range articulos {
		out = append(out, ArticuloResponseDe(&articulos[i]))
	}
	return out
}
