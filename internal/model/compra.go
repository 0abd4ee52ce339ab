package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra is the purchase header. Total is derived (sum of line subtotals)
// and written by the order-entry engine inside the same transaction that
// persists the lines.
type Compra struct {
	ID            int     `gorm:"column:id_compra;primaryKey"`
	NumeroFactura *string `gorm:"column:numero_factura"`
	ProveedorID   *int    `gorm:"column:id_proveedor;index"`
	Fecha         time.Time
	Observaciones *string
	Estado        string          `gorm:"not null;default:'completada'"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaCreacion time.Time       `gorm:"column:fecha_creacion;autoCreateTime"`

	Proveedor *Proveedor      `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleCompra `gorm:"foreignKey:CompraID"`
}

func (Compra) TableName() string { return "compra" }

// DetalleCompra is one purchase line. Immutable after creation.
type DetalleCompra struct {
	ID             int             `gorm:"column:id_detalle_compra;primaryKey"`
	CompraID       int             `gorm:"column:id_compra;not null;index"`
	ProductoID     int             `gorm:"column:id_producto;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"column:precio_unitario;type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleCompra) TableName() string { return "detalle_compra" }
