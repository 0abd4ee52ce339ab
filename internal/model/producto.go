package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado values shared by compras and ventas.
const (
	EstadoCompletada = "completada"
	EstadoCancelada  = "cancelada"
	EstadoPendiente  = "pendiente"
)

// Producto is the central catalog entity. Stock never goes negative through
// sale creation: the decrement is guarded at the storage layer.
type Producto struct {
	ID                 int     `gorm:"column:id_producto;primaryKey"`
	Codigo             *string `gorm:"uniqueIndex"`
	Nombre             string  `gorm:"index;not null"`
	Descripcion        *string
	CategoriaID        int              `gorm:"column:id_categoria;not null;index"`
	PrecioActual       decimal.Decimal  `gorm:"column:precio_actual;type:decimal(10,2);not null"`
	PrecioCosto        *decimal.Decimal `gorm:"column:precio_costo;type:decimal(10,2)"`
	StockMinimo        int              `gorm:"column:stock_minimo;not null;default:0"`
	Stock              int              `gorm:"not null;default:0"`
	UnidadMedida       string           `gorm:"column:unidad_medida;not null;default:'unidad'"`
	Activo             bool             `gorm:"not null;default:true"`
	FechaCreacion      time.Time        `gorm:"column:fecha_creacion;autoCreateTime"`
	FechaActualizacion time.Time        `gorm:"column:fecha_actualizacion;autoUpdateTime"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "producto" }
