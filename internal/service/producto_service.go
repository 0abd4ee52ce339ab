package service

import (
	"context"
	"fmt"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/rs/zerolog/log"
)

type ProductoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	historialRepo repository.HistorialPrecioRepository
	movRepo       repository.MovimientoStockRepository
	cache         *ReporteCache
}

func NewProductoService(
	repo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	historialRepo repository.HistorialPrecioRepository,
	movRepo repository.MovimientoStockRepository,
	cache *ReporteCache,
) *ProductoService {
	return &ProductoService{
		repo:          repo,
		categoriaRepo: categoriaRepo,
		historialRepo: historialRepo,
		movRepo:       movRepo,
		cache:         cache,
	}
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if _, err := s.categoriaRepo.ObtenerPorID(ctx, req.CategoriaID); err != nil {
		return nil, apierror.Validation(fmt.Sprintf("La categoría %d no existe", req.CategoriaID))
	}
	if req.Codigo != nil && *req.Codigo != "" {
		if existente, err := s.repo.ObtenerPorCodigo(ctx, *req.Codigo); err == nil && existente != nil {
			return nil, apierror.DuplicateKey("Ya existe un producto con ese código")
		}
	}

	p := model.Producto{
		Codigo:       req.Codigo,
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		CategoriaID:  req.CategoriaID,
		PrecioActual: req.PrecioActual,
		PrecioCosto:  req.PrecioCosto,
		StockMinimo:  req.StockMinimo,
		Stock:        req.Stock,
		UnidadMedida: req.UnidadMedida,
		Activo:       true,
	}
	if p.UnidadMedida == "" {
		p.UnidadMedida = "unidad"
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	if err := s.repo.Crear(ctx, &p); err != nil {
		if apierror.IsDuplicate(err) {
			return nil, apierror.DuplicateKey("Ya existe un producto con ese código")
		}
		return nil, apierror.CreationFailed("Error al crear producto", err)
	}

	// Seed the price history with the opening price. Best effort: a failed
	// history insert never rolls back a created product.
	motivo := "creación de producto"
	if err := s.historialRepo.Crear(ctx, &model.HistorialPrecio{
		ProductoID:  p.ID,
		PrecioNuevo: p.PrecioActual,
		Motivo:      &motivo,
	}); err != nil {
		log.Warn().Err(err).Int("id_producto", p.ID).Msg("no se pudo registrar historial de precio inicial")
	}

	s.cache.InvalidarStockBajo(ctx)
	resp := toProductoResponse(&p)
	return &resp, nil
}

func (s *ProductoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, error) {
	clampPaginacion(&filter.Paginacion)
	productos, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Error al listar productos", err)
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, toProductoResponse(&productos[i]))
	}
	return out, nil
}

func (s *ProductoService) Obtener(ctx context.Context, id int) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("Producto %d no encontrado", id))
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

func (s *ProductoService) Actualizar(ctx context.Context, id int, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	if req.Vacio() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar")
	}
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("Producto %d no encontrado", id))
	}

	if req.CategoriaID != nil && *req.CategoriaID != p.CategoriaID {
		if _, err := s.categoriaRepo.ObtenerPorID(ctx, *req.CategoriaID); err != nil {
			return nil, apierror.Validation(fmt.Sprintf("La categoría %d no existe", *req.CategoriaID))
		}
		p.CategoriaID = *req.CategoriaID
	}
	if req.Codigo != nil && (p.Codigo == nil || *req.Codigo != *p.Codigo) {
		if existente, err := s.repo.ObtenerPorCodigo(ctx, *req.Codigo); err == nil && existente != nil && existente.ID != id {
			return nil, apierror.DuplicateKey("Ya existe un producto con ese código")
		}
		p.Codigo = req.Codigo
	}

	precioAnterior := p.PrecioActual
	cambioPrecio := req.PrecioActual != nil && !req.PrecioActual.Equal(p.PrecioActual)
	stockAnterior := p.Stock
	cambioStock := req.Stock != nil && *req.Stock != p.Stock

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.PrecioActual != nil {
		p.PrecioActual = *req.PrecioActual
	}
	if req.PrecioCosto != nil {
		p.PrecioCosto = req.PrecioCosto
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.UnidadMedida != nil {
		p.UnidadMedida = *req.UnidadMedida
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	// Drop the preloaded association before saving: the patch must never
	// write through to the categoria row.
	p.Categoria = nil
	if err := s.repo.Actualizar(ctx, p); err != nil {
		if apierror.IsDuplicate(err) {
			return nil, apierror.DuplicateKey("Ya existe un producto con ese código")
		}
		return nil, apierror.Internal("Error al actualizar producto", err)
	}

	if cambioPrecio {
		motivo := "actualización de precio"
		if err := s.historialRepo.Crear(ctx, &model.HistorialPrecio{
			ProductoID:     p.ID,
			PrecioAnterior: &precioAnterior,
			PrecioNuevo:    p.PrecioActual,
			Motivo:         &motivo,
		}); err != nil {
			log.Warn().Err(err).Int("id_producto", p.ID).Msg("no se pudo registrar historial de precio")
		}
	}
	if cambioStock {
		if err := s.movRepo.Crear(ctx, &model.MovimientoStock{
			ProductoID:    p.ID,
			Tipo:          "ajuste_manual",
			Cantidad:      p.Stock - stockAnterior,
			StockAnterior: stockAnterior,
			StockNuevo:    p.Stock,
			Motivo:        "ajuste manual de stock",
		}); err != nil {
			log.Warn().Err(err).Int("id_producto", p.ID).Msg("no se pudo registrar movimiento de stock")
		}
	}

	s.cache.InvalidarStockBajo(ctx)

	if completo, err := s.repo.ObtenerPorID(ctx, p.ID); err == nil {
		resp := toProductoResponse(completo)
		return &resp, nil
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

func (s *ProductoService) Eliminar(ctx context.Context, id int) (*dto.MensajeRespuesta, error) {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return nil, notFound(err, fmt.Sprintf("Producto %d no encontrado", id))
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return nil, apierror.Internal("Error al eliminar producto", err)
	}
	s.cache.InvalidarStockBajo(ctx)
	return &dto.MensajeRespuesta{Mensaje: "Producto eliminado correctamente"}, nil
}

// ReporteStockBajo lists active products at or below their minimum. Served
// from Redis when warm; any product or sale write invalidates the entry.
func (s *ProductoService) ReporteStockBajo(ctx context.Context) ([]dto.ReporteStockBajo, error) {
	var cached []dto.ReporteStockBajo
	if s.cache.ObtenerStockBajo(ctx, &cached) {
		return cached, nil
	}

	productos, err := s.repo.ListarStockBajo(ctx)
	if err != nil {
		return nil, apierror.Internal("Error al generar reporte de stock bajo", err)
	}
	reporte := make([]dto.ReporteStockBajo, 0, len(productos))
	for i := range productos {
		p := &productos[i]
		reporte = append(reporte, dto.ReporteStockBajo{
			ProductoID:  p.ID,
			Nombre:      p.Nombre,
			Codigo:      p.Codigo,
			StockActual: p.Stock,
			StockMinimo: p.StockMinimo,
			Diferencia:  p.StockMinimo - p.Stock,
		})
	}
	s.cache.GuardarStockBajo(ctx, reporte)
	return reporte, nil
}

func (s *ProductoService) ListarHistorialPrecios(ctx context.Context, productoID int, pag dto.Paginacion) ([]dto.HistorialPrecioItem, error) {
	if _, err := s.repo.ObtenerPorID(ctx, productoID); err != nil {
		return nil, notFound(err, fmt.Sprintf("Producto %d no encontrado", productoID))
	}
	clampPaginacion(&pag)
	historial, err := s.historialRepo.ListarPorProducto(ctx, productoID, pag.Skip, pag.Limit)
	if err != nil {
		return nil, apierror.Internal("Error al listar historial de precios", err)
	}
	out := make([]dto.HistorialPrecioItem, 0, len(historial))
	for i := range historial {
		out = append(out, toHistorialItem(&historial[i]))
	}
	return out, nil
}

func (s *ProductoService) ListarMovimientos(ctx context.Context, filter dto.MovimientoStockFilter) ([]dto.MovimientoStockItem, error) {
	clampPaginacion(&filter.Paginacion)
	movimientos, err := s.movRepo.Listar(ctx, repository.MovimientoStockFilter{
		ProductoID: filter.ProductoID,
		Tipo:       filter.Tipo,
		Skip:       filter.Skip,
		Limit:      filter.Limit,
	})
	if err != nil {
		return nil, apierror.Internal("Error al listar movimientos de stock", err)
	}
	out := make([]dto.MovimientoStockItem, 0, len(movimientos))
	for i := range movimientos {
		out = append(out, toMovimientoItem(&movimientos[i]))
	}
	return out, nil
}
