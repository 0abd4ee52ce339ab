package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Codigo       *string          `json:"codigo"         validate:"omitempty,max=50"`
	Nombre       string           `json:"nombre"         validate:"required,min=1,max=200"`
	Descripcion  *string          `json:"descripcion"`
	CategoriaID  int              `json:"id_categoria"   validate:"required,gt=0"`
	PrecioActual decimal.Decimal  `json:"precio_actual"  validate:"min=0"`
	PrecioCosto  *decimal.Decimal `json:"precio_costo"   validate:"omitempty,min=0"`
	StockMinimo  int              `json:"stock_minimo"   validate:"min=0"`
	Stock        int              `json:"stock"          validate:"min=0"`
	UnidadMedida string           `json:"unidad_medida"  validate:"omitempty,oneof=unidad kg litro metro caja"`
	Activo       *bool            `json:"activo"`
}

type ActualizarProductoRequest struct {
	Codigo       *string          `json:"codigo"         validate:"omitempty,max=50"`
	Nombre       *string          `json:"nombre"         validate:"omitempty,min=1,max=200"`
	Descripcion  *string          `json:"descripcion"`
	CategoriaID  *int             `json:"id_categoria"   validate:"omitempty,gt=0"`
	PrecioActual *decimal.Decimal `json:"precio_actual"  validate:"omitempty,min=0"`
	PrecioCosto  *decimal.Decimal `json:"precio_costo"   validate:"omitempty,min=0"`
	StockMinimo  *int             `json:"stock_minimo"   validate:"omitempty,min=0"`
	Stock        *int             `json:"stock"          validate:"omitempty,min=0"`
	UnidadMedida *string          `json:"unidad_medida"  validate:"omitempty,oneof=unidad kg litro metro caja"`
	Activo       *bool            `json:"activo"`
}

func (r ActualizarProductoRequest) Vacio() bool {
	return r.Codigo == nil && r.Nombre == nil && r.Descripcion == nil &&
		r.CategoriaID == nil && r.PrecioActual == nil && r.PrecioCosto == nil &&
		r.StockMinimo == nil && r.Stock == nil && r.UnidadMedida == nil &&
		r.Activo == nil
}

// ── Filter / Pagination ───────────────────────────────────────────────────────

type ProductoFilter struct {
	Nombre      string `form:"nombre"`
	CategoriaID int    `form:"id_categoria"`
	Codigo      string `form:"codigo"`
	Activo      *bool  `form:"activo"`
	StockBajo   bool   `form:"stock_bajo"`
	Paginacion
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID                 int                `json:"id_producto"`
	Codigo             *string            `json:"codigo"`
	Nombre             string             `json:"nombre"`
	Descripcion        *string            `json:"descripcion"`
	CategoriaID        int                `json:"id_categoria"`
	PrecioActual       decimal.Decimal    `json:"precio_actual"`
	PrecioCosto        *decimal.Decimal   `json:"precio_costo"`
	StockMinimo        int                `json:"stock_minimo"`
	Stock              int                `json:"stock"`
	UnidadMedida       string             `json:"unidad_medida"`
	Activo             bool               `json:"activo"`
	FechaCreacion      time.Time          `json:"fecha_creacion"`
	FechaActualizacion time.Time          `json:"fecha_actualizacion"`
	Categoria          *CategoriaResponse `json:"categoria,omitempty"`
}

// HistorialPrecioItem is one immutable price-change record.
type HistorialPrecioItem struct {
	ID             int              `json:"id_historial"`
	ProductoID     int              `json:"id_producto"`
	PrecioAnterior *decimal.Decimal `json:"precio_anterior"`
	PrecioNuevo    decimal.Decimal  `json:"precio_nuevo"`
	Motivo         *string          `json:"motivo"`
	FechaCambio    time.Time        `json:"fecha_cambio"`
}
