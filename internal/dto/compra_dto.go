package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type DetalleCompraRequest struct {
	ProductoID     int             `json:"id_producto"     validate:"required,gt=0"`
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"min=0"`
}

type CrearCompraRequest struct {
	NumeroFactura *string                `json:"numero_factura" validate:"omitempty,max=50"`
	ProveedorID   *int                   `json:"id_proveedor"   validate:"omitempty,gt=0"`
	Fecha         *time.Time             `json:"fecha"`
	Observaciones *string                `json:"observaciones"`
	Estado        string                 `json:"estado"         validate:"omitempty,oneof=completada cancelada pendiente"`
	Detalles      []DetalleCompraRequest `json:"detalles"       validate:"required,min=1,dive"`
}

// ActualizarCompraRequest patches non-financial header fields only; lines and
// total are immutable after creation.
type ActualizarCompraRequest struct {
	NumeroFactura *string `json:"numero_factura" validate:"omitempty,max=50"`
	ProveedorID   *int    `json:"id_proveedor"   validate:"omitempty,gt=0"`
	Observaciones *string `json:"observaciones"`
	Estado        *string `json:"estado"         validate:"omitempty,oneof=completada cancelada pendiente"`
}

func (r ActualizarCompraRequest) Vacio() bool {
	return r.NumeroFactura == nil && r.ProveedorID == nil &&
		r.Observaciones == nil && r.Estado == nil
}

// ── Filter ────────────────────────────────────────────────────────────────────

// Estado is an open string on purpose: list filters stay permissive while
// create/update enforce the enum.
type CompraFilter struct {
	FechaInicio string `form:"fecha_inicio"`
	FechaFin    string `form:"fecha_fin"`
	ProveedorID int    `form:"id_proveedor"`
	Estado      string `form:"estado"`
	Paginacion
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type DetalleCompraResponse struct {
	ID             int               `json:"id_detalle_compra"`
	CompraID       int               `json:"id_compra"`
	ProductoID     int               `json:"id_producto"`
	Cantidad       int               `json:"cantidad"`
	PrecioUnitario decimal.Decimal   `json:"precio_unitario"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	Producto       *ProductoResponse `json:"producto,omitempty"`
}

type CompraResponse struct {
	ID            int                     `json:"id_compra"`
	NumeroFactura *string                 `json:"numero_factura"`
	ProveedorID   *int                    `json:"id_proveedor"`
	Fecha         time.Time               `json:"fecha"`
	Observaciones *string                 `json:"observaciones"`
	Estado        string                  `json:"estado"`
	Total         decimal.Decimal         `json:"total"`
	FechaCreacion time.Time               `json:"fecha_creacion"`
	Proveedor     *ProveedorResponse      `json:"proveedor,omitempty"`
	Detalles      []DetalleCompraResponse `json:"detalles"`
}
