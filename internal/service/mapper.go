package service

import (
	"time"

	"inventario/internal/dto"
	"inventario/internal/model"
)

// Model → response mapping lives here so handlers never touch GORM entities.

func toCategoriaResponse(c *model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Descripcion:   c.Descripcion,
		Activo:        c.Activo,
		FechaCreacion: c.FechaCreacion,
	}
}

func toProveedorResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Telefono:      p.Telefono,
		Email:         p.Email,
		Direccion:     p.Direccion,
		Activo:        p.Activo,
		FechaCreacion: p.FechaCreacion,
	}
}

func toClienteResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Telefono:      c.Telefono,
		Email:         c.Email,
		Direccion:     c.Direccion,
		Activo:        c.Activo,
		FechaCreacion: c.FechaCreacion,
	}
}

func toProductoResponse(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:                 p.ID,
		Codigo:             p.Codigo,
		Nombre:             p.Nombre,
		Descripcion:        p.Descripcion,
		CategoriaID:        p.CategoriaID,
		PrecioActual:       p.PrecioActual,
		PrecioCosto:        p.PrecioCosto,
		StockMinimo:        p.StockMinimo,
		Stock:              p.Stock,
		UnidadMedida:       p.UnidadMedida,
		Activo:             p.Activo,
		FechaCreacion:      p.FechaCreacion,
		FechaActualizacion: p.FechaActualizacion,
	}
	if p.Categoria != nil {
		cat := toCategoriaResponse(p.Categoria)
		resp.Categoria = &cat
	}
	return resp
}

func toCompraResponse(c *model.Compra) dto.CompraResponse {
	resp := dto.CompraResponse{
		ID:            c.ID,
		NumeroFactura: c.NumeroFactura,
		ProveedorID:   c.ProveedorID,
		Fecha:         c.Fecha,
		Observaciones: c.Observaciones,
		Estado:        c.Estado,
		Total:         c.Total,
		FechaCreacion: c.FechaCreacion,
		Detalles:      make([]dto.DetalleCompraResponse, 0, len(c.Detalles)),
	}
	if c.Proveedor != nil {
		prov := toProveedorResponse(c.Proveedor)
		resp.Proveedor = &prov
	}
	for i := range c.Detalles {
		d := &c.Detalles[i]
		dr := dto.DetalleCompraResponse{
			ID:             d.ID,
			CompraID:       d.CompraID,
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
		if d.Producto != nil {
			prod := toProductoResponse(d.Producto)
			dr.Producto = &prod
		}
		resp.Detalles = append(resp.Detalles, dr)
	}
	return resp
}

func toVentaResponse(v *model.Venta) dto.VentaResponse {
	resp := dto.VentaResponse{
		ID:            v.ID,
		NumeroTicket:  v.NumeroTicket,
		ClienteID:     v.ClienteID,
		Fecha:         v.Fecha,
		MetodoPago:    v.MetodoPago,
		Observaciones: v.Observaciones,
		Estado:        v.Estado,
		Total:         v.Total,
		FechaCreacion: v.FechaCreacion,
		Detalles:      make([]dto.DetalleVentaResponse, 0, len(v.Detalles)),
	}
	if v.Cliente != nil {
		cli := toClienteResponse(v.Cliente)
		resp.Cliente = &cli
	}
	for i := range v.Detalles {
		d := &v.Detalles[i]
		dr := dto.DetalleVentaResponse{
			ID:             d.ID,
			VentaID:        d.VentaID,
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Descuento:      d.Descuento,
			Subtotal:       d.Subtotal,
		}
		if d.Producto != nil {
			prod := toProductoResponse(d.Producto)
			dr.Producto = &prod
		}
		resp.Detalles = append(resp.Detalles, dr)
	}
	return resp
}

func toMovimientoItem(m *model.MovimientoStock) dto.MovimientoStockItem {
	item := dto.MovimientoStockItem{
		ID:            m.ID,
		ProductoID:    m.ProductoID,
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		StockAnterior: m.StockAnterior,
		StockNuevo:    m.StockNuevo,
		Motivo:        m.Motivo,
		ReferenciaID:  m.ReferenciaID,
		FechaCreacion: m.FechaCreacion.Format(time.RFC3339),
	}
	if m.Producto != nil {
		item.Producto = m.Producto.Nombre
	}
	return item
}

func toHistorialItem(h *model.HistorialPrecio) dto.HistorialPrecioItem {
	return dto.HistorialPrecioItem{
		ID:             h.ID,
		ProductoID:     h.ProductoID,
		PrecioAnterior: h.PrecioAnterior,
		PrecioNuevo:    h.PrecioNuevo,
		Motivo:         h.Motivo,
		FechaCambio:    h.FechaCambio,
	}
}
