package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type DetalleVentaRequest struct {
	ProductoID     int             `json:"id_producto"     validate:"required,gt=0"`
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"min=0"`
	Descuento      decimal.Decimal `json:"descuento"       validate:"min=0"`
}

type CrearVentaRequest struct {
	NumeroTicket  *string               `json:"numero_ticket" validate:"omitempty,max=50"`
	ClienteID     *int                  `json:"id_cliente"    validate:"omitempty,gt=0"`
	Fecha         *time.Time            `json:"fecha"`
	MetodoPago    string                `json:"metodo_pago"   validate:"omitempty,oneof=efectivo tarjeta transferencia otro"`
	Observaciones *string               `json:"observaciones"`
	Estado        string                `json:"estado"        validate:"omitempty,oneof=completada cancelada pendiente"`
	Detalles      []DetalleVentaRequest `json:"detalles"      validate:"required,min=1,dive"`
}

type ActualizarVentaRequest struct {
	NumeroTicket  *string `json:"numero_ticket" validate:"omitempty,max=50"`
	ClienteID     *int    `json:"id_cliente"    validate:"omitempty,gt=0"`
	MetodoPago    *string `json:"metodo_pago"   validate:"omitempty,oneof=efectivo tarjeta transferencia otro"`
	Observaciones *string `json:"observaciones"`
	Estado        *string `json:"estado"        validate:"omitempty,oneof=completada cancelada pendiente"`
}

func (r ActualizarVentaRequest) Vacio() bool {
	return r.NumeroTicket == nil && r.ClienteID == nil && r.MetodoPago == nil &&
		r.Observaciones == nil && r.Estado == nil
}

// ── Filter ────────────────────────────────────────────────────────────────────

type VentaFilter struct {
	FechaInicio string `form:"fecha_inicio"`
	FechaFin    string `form:"fecha_fin"`
	ClienteID   int    `form:"id_cliente"`
	MetodoPago  string `form:"metodo_pago"`
	Estado      string `form:"estado"`
	Paginacion
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	ID             int               `json:"id_detalle_venta"`
	VentaID        int               `json:"id_venta"`
	ProductoID     int               `json:"id_producto"`
	Cantidad       int               `json:"cantidad"`
	PrecioUnitario decimal.Decimal   `json:"precio_unitario"`
	Descuento      decimal.Decimal   `json:"descuento"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	Producto       *ProductoResponse `json:"producto,omitempty"`
}

type VentaResponse struct {
	ID            int                    `json:"id_venta"`
	NumeroTicket  *string                `json:"numero_ticket"`
	ClienteID     *int                   `json:"id_cliente"`
	Fecha         time.Time              `json:"fecha"`
	MetodoPago    string                 `json:"metodo_pago"`
	Observaciones *string                `json:"observaciones"`
	Estado        string                 `json:"estado"`
	Total         decimal.Decimal        `json:"total"`
	FechaCreacion time.Time              `json:"fecha_creacion"`
	Cliente       *ClienteResponse       `json:"cliente,omitempty"`
	Detalles      []DetalleVentaResponse `json:"detalles"`
}
