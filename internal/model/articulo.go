package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estado exclusivo de Articulo; shares ACTIVO/INACTIVO/SUSPENDIDO/
// PENDIENTE_APROBACION with Proveedor/Cliente.
const EstadoArticuloDescontinuado = "DESCONTINUADO"

// Niveles de uso
const (
	NivelUsoDomestico  = "DOMESTICO"
	NivelUsoComercial  = "COMERCIAL"
	NivelUsoIndustrial = "INDUSTRIAL"
	NivelUsoCritico    = "CRITICO"
)

// Unidades de longitud
const (
	UnidadLongitudMM = "MM"
	UnidadLongitudCM = "CM"
	UnidadLongitudDM = "DM"
	UnidadLongitudM  = "M"
)

// Unidades de peso
const (
	UnidadPesoG   = "G"
	UnidadPesoKG  = "KG"
	UnidadPesoTON = "TON"
)

// Unidades de cantidad
const (
	UnidadCantidadUnidad = "UNIDAD"
	UnidadCantidadCaja   = "CAJA"
	UnidadCantidadPallet = "PALLET"
	UnidadCantidadKG     = "KG"
	UnidadCantidadLitro  = "LITRO"
	UnidadCantidadMetro  = "METRO"
	UnidadCantidadM2     = "M2"
	UnidadCantidadM3     = "M3"
)

// StringArray maps to a jsonb array of strings.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("string array scan: unexpected type %T", value)
	}
	return json.Unmarshal(bytes, a)
}

// Medida is a value + unit pair for a physical dimension.
// Both fields are optional but must be set together (validated at the service).
type Medida struct {
	Valor  *decimal.Decimal `gorm:"type:decimal(10,3)"`
	Unidad *string          `gorm:"type:varchar(10)"`
}

// Articulo is a catalogue article with classification and dimensions.
type Articulo struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion           string    `gorm:"not null"`
	Marca                 string
	Modelo                string
	Tipo                  string
	PalabrasClaves        StringArray `gorm:"type:jsonb"`
	Familia               string      `gorm:"index"`
	SubFamilia            string
	MaterialPrincipal     string
	MaterialSecundario    string
	CodigoFabricante      string
	EspecificacionTecnica JSONB       `gorm:"type:jsonb"`
	Tags                  StringArray `gorm:"type:jsonb"`
	Industria             string
	URLFichaTecnica       string  `gorm:"column:url_ficha_tecnica"`
	URLManualTecnico      string  `gorm:"column:url_manual_tecnico"`
	URLImagenPrincipal    string  `gorm:"column:url_imagen_principal"`
	NivelUso              *string `gorm:"type:varchar(20)"`
	Status                string  `gorm:"type:varchar(25);not null;default:'PENDIENTE_APROBACION';index"`

	Peso  Medida `gorm:"embedded;embeddedPrefix:peso_"`
	Largo Medida `gorm:"embedded;embeddedPrefix:largo_"`
	Alto  Medida `gorm:"embedded;embeddedPrefix:alto_"`
	Ancho Medida `gorm:"embedded;embeddedPrefix:ancho_"`

	CategoriaLvl1 string `gorm:"index"`
	CategoriaLvl2 string
	CategoriaLvl3 string
	CategoriaLvl4 string
	Auditoria
}

func (Articulo) TableName() string { return "articulos" }
