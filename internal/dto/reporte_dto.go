package dto

// ReporteStockBajo is one row of the low-stock report: active products whose
// stock fell to or below their minimum. Diferencia = stock_minimo − stock,
// never negative by construction.
type ReporteStockBajo struct {
	ProductoID  int     `json:"id_producto"`
	Nombre      string  `json:"nombre"`
	Codigo      *string `json:"codigo"`
	StockActual int     `json:"stock_actual"`
	StockMinimo int     `json:"stock_minimo"`
	Diferencia  int     `json:"diferencia"`
}

// MovimientoStockItem is one stock-movement audit record.
type MovimientoStockItem struct {
	ID            int    `json:"id_movimiento"`
	ProductoID    int    `json:"id_producto"`
	Producto      string `json:"producto,omitempty"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	StockAnterior int    `json:"stock_anterior"`
	StockNuevo    int    `json:"stock_nuevo"`
	Motivo        string `json:"motivo,omitempty"`
	ReferenciaID  *int   `json:"id_referencia,omitempty"`
	FechaCreacion string `json:"fecha_creacion"`
}

type MovimientoStockFilter struct {
	ProductoID int    `form:"id_producto"`
	Tipo       string `form:"tipo"`
	Paginacion
}
