package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetodoPago values accepted on venta create/update.
const (
	MetodoEfectivo      = "efectivo"
	MetodoTarjeta       = "tarjeta"
	MetodoTransferencia = "transferencia"
	MetodoOtro          = "otro"
)

// Venta is the sale header. There is intentionally no cancel operation for
// sales; purchases have one, sales do not.
type Venta struct {
	ID            int     `gorm:"column:id_venta;primaryKey"`
	NumeroTicket  *string `gorm:"column:numero_ticket"`
	ClienteID     *int    `gorm:"column:id_cliente;index"`
	Fecha         time.Time
	MetodoPago    string `gorm:"column:metodo_pago;not null;default:'efectivo'"`
	Observaciones *string
	Estado        string          `gorm:"not null;default:'completada'"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaCreacion time.Time       `gorm:"column:fecha_creacion;autoCreateTime"`

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Detalles []DetalleVenta `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "venta" }

// DetalleVenta is one sale line. Subtotal = cantidad × precio_unitario − descuento.
type DetalleVenta struct {
	ID             int             `gorm:"column:id_detalle_venta;primaryKey"`
	VentaID        int             `gorm:"column:id_venta;not null;index"`
	ProductoID     int             `gorm:"column:id_producto;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"column:precio_unitario;type:decimal(10,2);not null"`
	Descuento      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleVenta) TableName() string { return "detalle_venta" }
