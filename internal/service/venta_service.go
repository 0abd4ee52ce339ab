package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaService implements the sale side of the order-entry engine. Creating a
// sale persists header and lines, decrements stock with a guarded update and
// records one stock movement per line, all inside a single transaction.
// There is no cancel operation for sales.
type VentaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	movRepo      repository.MovimientoStockRepository
	cache        *ReporteCache
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	movRepo repository.MovimientoStockRepository,
	cache *ReporteCache,
) *VentaService {
	return &VentaService{
		repo:         repo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		movRepo:      movRepo,
		cache:        cache,
	}
}

func (s *VentaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Detalles) == 0 {
		return nil, apierror.Validation("La venta debe incluir al menos un detalle")
	}
	if req.ClienteID != nil {
		if _, err := s.clienteRepo.ObtenerPorID(ctx, *req.ClienteID); err != nil {
			return nil, apierror.Validation(fmt.Sprintf("El cliente %d no existe", *req.ClienteID))
		}
	}

	// Pre-check phase: every product must exist and cover the total quantity
	// requested across all its lines. The transactional guard below still
	// protects against concurrent sales draining stock in between.
	stockActual := make(map[int]int)
	requerido := make(map[int]int)
	for _, d := range req.Detalles {
		if _, visto := stockActual[d.ProductoID]; !visto {
			p, err := s.productoRepo.ObtenerPorID(ctx, d.ProductoID)
			if err != nil {
				return nil, apierror.ProductNotFound(d.ProductoID)
			}
			stockActual[d.ProductoID] = p.Stock
		}
		requerido[d.ProductoID] += d.Cantidad
		if requerido[d.ProductoID] > stockActual[d.ProductoID] {
			return nil, apierror.InsufficientStock(d.ProductoID, stockActual[d.ProductoID])
		}
	}

	detalles := make([]model.DetalleVenta, 0, len(req.Detalles))
	total := decimal.Zero
	for _, d := range req.Detalles {
		subtotal := d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))).Sub(d.Descuento)
		total = total.Add(subtotal)
		detalles = append(detalles, model.DetalleVenta{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Descuento:      d.Descuento,
			Subtotal:       subtotal,
		})
	}

	venta := model.Venta{
		NumeroTicket:  req.NumeroTicket,
		ClienteID:     req.ClienteID,
		Fecha:         time.Now(),
		MetodoPago:    model.MetodoEfectivo,
		Observaciones: req.Observaciones,
		Estado:        model.EstadoCompletada,
		Total:         total,
		Detalles:      detalles,
	}
	if req.Fecha != nil {
		venta.Fecha = *req.Fecha
	}
	if req.MetodoPago != "" {
		venta.MetodoPago = req.MetodoPago
	}
	if req.Estado != "" {
		venta.Estado = req.Estado
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CrearTx(tx, &venta); err != nil {
			return apierror.CreationFailed("Error al crear venta", err)
		}
		restante := stockActual
		for _, d := range venta.Detalles {
			rows, err := s.productoRepo.DescontarStockTx(tx, d.ProductoID, d.Cantidad)
			if err != nil {
				return apierror.Internal("Error al descontar stock", err)
			}
			if rows == 0 {
				// A concurrent sale consumed the stock after the pre-check.
				// Rolling back undoes the header, lines and prior decrements.
				return apierror.InsufficientStock(d.ProductoID, restante[d.ProductoID])
			}
			anterior := restante[d.ProductoID]
			nuevo := anterior - d.Cantidad
			restante[d.ProductoID] = nuevo
			if err := s.movRepo.CrearTx(tx, &model.MovimientoStock{
				ProductoID:    d.ProductoID,
				Tipo:          "venta",
				Cantidad:      -d.Cantidad,
				StockAnterior: anterior,
				StockNuevo:    nuevo,
				Motivo:        "venta",
				ReferenciaID:  &venta.ID,
			}); err != nil {
				return apierror.Internal("Error al registrar movimiento de stock", err)
			}
		}
		return nil
	})
	if err != nil {
		var ae *apierror.Error
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, apierror.CreationFailed("Error al crear venta", err)
	}

	s.cache.InvalidarStockBajo(ctx)

	if completa, err := s.repo.ObtenerPorID(ctx, venta.ID); err == nil {
		resp := toVentaResponse(completa)
		return &resp, nil
	}
	resp := toVentaResponse(&venta)
	return &resp, nil
}

func (s *VentaService) Listar(ctx context.Context, filter dto.VentaFilter) ([]dto.VentaResponse, error) {
	clampPaginacion(&filter.Paginacion)
	desde, err := parseFecha("fecha_inicio", filter.FechaInicio)
	if err != nil {
		return nil, err
	}
	hasta, err := parseFecha("fecha_fin", filter.FechaFin)
	if err != nil {
		return nil, err
	}
	ventas, err := s.repo.Listar(ctx, repository.VentaQuery{
		Desde:      desde,
		Hasta:      hasta,
		ClienteID:  filter.ClienteID,
		MetodoPago: filter.MetodoPago,
		Estado:     filter.Estado,
		Skip:       filter.Skip,
		Limit:      filter.Limit,
	})
	if err != nil {
		return nil, apierror.Internal("Error al listar ventas", err)
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, toVentaResponse(&ventas[i]))
	}
	return out, nil
}

func (s *VentaService) Obtener(ctx context.Context, id int) (*dto.VentaResponse, error) {
	v, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Venta no encontrada")
	}
	resp := toVentaResponse(v)
	return &resp, nil
}

// Actualizar patches header fields only. Lines, total and the stock already
// discounted are untouched.
func (s *VentaService) Actualizar(ctx context.Context, id int, req dto.ActualizarVentaRequest) (*dto.VentaResponse, error) {
	if req.Vacio() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar")
	}
	if req.ClienteID != nil {
		if _, err := s.clienteRepo.ObtenerPorID(ctx, *req.ClienteID); err != nil {
			return nil, apierror.Validation(fmt.Sprintf("El cliente %d no existe", *req.ClienteID))
		}
	}

	campos := map[string]any{}
	if req.NumeroTicket != nil {
		campos["numero_ticket"] = *req.NumeroTicket
	}
	if req.ClienteID != nil {
		campos["id_cliente"] = *req.ClienteID
	}
	if req.MetodoPago != nil {
		campos["metodo_pago"] = *req.MetodoPago
	}
	if req.Observaciones != nil {
		campos["observaciones"] = *req.Observaciones
	}
	if req.Estado != nil {
		campos["estado"] = *req.Estado
	}

	rows, err := s.repo.ActualizarCampos(ctx, id, campos)
	if err != nil {
		return nil, apierror.Internal("Error al actualizar venta", err)
	}
	if rows == 0 {
		return nil, apierror.NotFound("Venta no encontrada")
	}
	v, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Venta no encontrada")
	}
	resp := toVentaResponse(v)
	return &resp, nil
}
