package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistorialPrecio registra cada cambio de precio de un producto.
// Los registros son inmutables — nunca se eliminan ni modifican.
type HistorialPrecio struct {
	ID             int              `gorm:"column:id_historial;primaryKey"`
	ProductoID     int              `gorm:"column:id_producto;not null;index"`
	PrecioAnterior *decimal.Decimal `gorm:"column:precio_anterior;type:decimal(10,2)"`
	PrecioNuevo    decimal.Decimal  `gorm:"column:precio_nuevo;type:decimal(10,2);not null"`
	Motivo         *string
	FechaCambio    time.Time `gorm:"column:fecha_cambio;autoCreateTime"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (HistorialPrecio) TableName() string { return "historial_precio" }
