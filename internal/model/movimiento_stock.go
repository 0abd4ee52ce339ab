package model

import "time"

// MovimientoStock registra cada cambio de stock en un producto.
// Se crea automáticamente al descontar stock durante una venta.
type MovimientoStock struct {
	ID            int    `gorm:"column:id_movimiento;primaryKey"`
	ProductoID    int    `gorm:"column:id_producto;not null;index"`
	Tipo          string `gorm:"not null"` // "venta" | "ajuste_manual"
	Cantidad      int    `gorm:"not null"` // positive = entrada, negative = salida
	StockAnterior int    `gorm:"column:stock_anterior;not null"`
	StockNuevo    int    `gorm:"column:stock_nuevo;not null"`
	Motivo        string
	ReferenciaID  *int      `gorm:"column:id_referencia"` // id_venta when tipo = "venta"
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (MovimientoStock) TableName() string { return "movimiento_stock" }
