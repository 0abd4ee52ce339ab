package service_test

import (
	"context"
	"strings"
	"time"

	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[int]*model.Categoria
	seq        int
	lastFilter dto.CategoriaFilter
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[int]*model.Categoria)}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	r.seq++
	c.ID = r.seq
	c.FechaCreacion = time.Now()
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context, filter dto.CategoriaFilter) ([]model.Categoria, error) {
	r.lastFilter = filter
	var out []model.Categoria
	for _, c := range r.categorias {
		if filter.Activo != nil && c.Activo != *filter.Activo {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id int) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if strings.EqualFold(c.Nombre, nombre) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Desactivar(_ context.Context, id int) error {
	c, ok := r.categorias[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Activo = false
	return nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

type stubProveedorRepo struct {
	proveedores map[int]*model.Proveedor
	seq         int
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[int]*model.Proveedor)}
}

func (r *stubProveedorRepo) Crear(_ context.Context, p *model.Proveedor) error {
	r.seq++
	p.ID = r.seq
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) Listar(_ context.Context, filter dto.ProveedorFilter) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		if filter.Activo != nil && p.Activo != *filter.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) ObtenerPorID(_ context.Context, id int) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) Actualizar(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) Desactivar(_ context.Context, id int) error {
	p, ok := r.proveedores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

type stubClienteRepo struct {
	clientes map[int]*model.Cliente
	seq      int
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[int]*model.Cliente)}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	r.seq++
	c.ID = r.seq
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Listar(_ context.Context, filter dto.ClienteFilter) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if filter.Activo != nil && c.Activo != *filter.Activo {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, id int) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) Actualizar(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Desactivar(_ context.Context, id int) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Activo = false
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

type stubProductoRepo struct {
	productos map[int]*model.Producto
	seq       int
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[int]*model.Producto)}
}

func (r *stubProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	r.seq++
	p.ID = r.seq
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Listar(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if filter.Nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(filter.Nombre)) {
			continue
		}
		if filter.Codigo != "" && (p.Codigo == nil || *p.Codigo != filter.Codigo) {
			continue
		}
		if filter.CategoriaID > 0 && p.CategoriaID != filter.CategoriaID {
			continue
		}
		if filter.Activo != nil && p.Activo != *filter.Activo {
			continue
		}
		if filter.StockBajo && p.Stock > p.StockMinimo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) ObtenerPorID(_ context.Context, id int) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) ObtenerPorCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Codigo != nil && *p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) Actualizar(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Desactivar(_ context.Context, id int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) ListarStockBajo(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Activo && p.Stock <= p.StockMinimo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, productoID, cantidad int) (int64, error) {
	p, ok := r.productos[productoID]
	if !ok || p.Stock < cantidad {
		return 0, nil
	}
	p.Stock -= cantidad
	return 1, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

type stubCompraRepo struct {
	compras map[int]*model.Compra
	seq     int
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{compras: make(map[int]*model.Compra)}
}

func (r *stubCompraRepo) CrearTx(_ *gorm.DB, c *model.Compra) error {
	r.seq++
	c.ID = r.seq
	for i := range c.Detalles {
		c.Detalles[i].ID = i + 1
		c.Detalles[i].CompraID = c.ID
	}
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) Listar(_ context.Context, q repository.CompraQuery) ([]model.Compra, error) {
	var out []model.Compra
	for _, c := range r.compras {
		if q.Desde != nil && c.Fecha.Before(*q.Desde) {
			continue
		}
		if q.Hasta != nil && c.Fecha.After(*q.Hasta) {
			continue
		}
		if q.ProveedorID > 0 && (c.ProveedorID == nil || *c.ProveedorID != q.ProveedorID) {
			continue
		}
		if q.Estado != "" && c.Estado != q.Estado {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompraRepo) ObtenerPorID(_ context.Context, id int) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCompraRepo) ActualizarCampos(_ context.Context, id int, campos map[string]any) (int64, error) {
	c, ok := r.compras[id]
	if !ok {
		return 0, nil
	}
	if v, ok := campos["numero_factura"]; ok {
		s := v.(string)
		c.NumeroFactura = &s
	}
	if v, ok := campos["id_proveedor"]; ok {
		id := v.(int)
		c.ProveedorID = &id
	}
	if v, ok := campos["observaciones"]; ok {
		s := v.(string)
		c.Observaciones = &s
	}
	if v, ok := campos["estado"]; ok {
		c.Estado = v.(string)
	}
	return 1, nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

type stubVentaRepo struct {
	ventas map[int]*model.Venta
	seq    int
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[int]*model.Venta)}
}

func (r *stubVentaRepo) CrearTx(_ *gorm.DB, v *model.Venta) error {
	r.seq++
	v.ID = r.seq
	for i := range v.Detalles {
		v.Detalles[i].ID = i + 1
		v.Detalles[i].VentaID = v.ID
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) Listar(_ context.Context, q repository.VentaQuery) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if q.Desde != nil && v.Fecha.Before(*q.Desde) {
			continue
		}
		if q.Hasta != nil && v.Fecha.After(*q.Hasta) {
			continue
		}
		if q.ClienteID > 0 && (v.ClienteID == nil || *v.ClienteID != q.ClienteID) {
			continue
		}
		if q.MetodoPago != "" && v.MetodoPago != q.MetodoPago {
			continue
		}
		if q.Estado != "" && v.Estado != q.Estado {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) ObtenerPorID(_ context.Context, id int) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) ActualizarCampos(_ context.Context, id int, campos map[string]any) (int64, error) {
	v, ok := r.ventas[id]
	if !ok {
		return 0, nil
	}
	if val, ok := campos["numero_ticket"]; ok {
		s := val.(string)
		v.NumeroTicket = &s
	}
	if val, ok := campos["id_cliente"]; ok {
		id := val.(int)
		v.ClienteID = &id
	}
	if val, ok := campos["metodo_pago"]; ok {
		v.MetodoPago = val.(string)
	}
	if val, ok := campos["observaciones"]; ok {
		s := val.(string)
		v.Observaciones = &s
	}
	if val, ok := campos["estado"]; ok {
		v.Estado = val.(string)
	}
	return 1, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

type stubMovimientoRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) Crear(_ context.Context, m *model.MovimientoStock) error {
	m.ID = len(r.movimientos) + 1
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) CrearTx(_ *gorm.DB, m *model.MovimientoStock) error {
	m.ID = len(r.movimientos) + 1
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) Listar(_ context.Context, filter repository.MovimientoStockFilter) ([]model.MovimientoStock, error) {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if filter.ProductoID > 0 && m.ProductoID != filter.ProductoID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)

type stubHistorialRepo struct {
	historial []model.HistorialPrecio
}

func (r *stubHistorialRepo) Crear(_ context.Context, h *model.HistorialPrecio) error {
	h.ID = len(r.historial) + 1
	r.historial = append(r.historial, *h)
	return nil
}

func (r *stubHistorialRepo) ListarPorProducto(_ context.Context, productoID, _, _ int) ([]model.HistorialPrecio, error) {
	var out []model.HistorialPrecio
	for _, h := range r.historial {
		if h.ProductoID == productoID {
			out = append(out, h)
		}
	}
	return out, nil
}

var _ repository.HistorialPrecioRepository = (*stubHistorialRepo)(nil)
