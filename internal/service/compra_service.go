package service

import (
	"context"
	"fmt"
	"time"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompraService implements the purchase side of the order-entry engine.
// Purchases record incoming merchandise and money owed; they do NOT touch
// product stock — stock corrections happen through product updates.
type CompraService struct {
	repo          repository.CompraRepository
	productoRepo  repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
}

func NewCompraService(
	repo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
) *CompraService {
	return &CompraService{repo: repo, productoRepo: productoRepo, proveedorRepo: proveedorRepo}
}

func (s *CompraService) Crear(ctx context.Context, req dto.CrearCompraRequest) (*dto.CompraResponse, error) {
	// The handler's min=1 tag already rejects this, but the rule belongs to
	// the engine: no purchase without at least one line, from any caller.
	if len(req.Detalles) == 0 {
		return nil, apierror.Validation("La compra debe incluir al menos un detalle")
	}
	if req.ProveedorID != nil {
		if _, err := s.proveedorRepo.ObtenerPorID(ctx, *req.ProveedorID); err != nil {
			return nil, apierror.Validation(fmt.Sprintf("El proveedor %d no existe", *req.ProveedorID))
		}
	}

	// Every referenced product must exist before anything is written.
	for _, d := range req.Detalles {
		if _, err := s.productoRepo.ObtenerPorID(ctx, d.ProductoID); err != nil {
			return nil, apierror.ProductNotFound(d.ProductoID)
		}
	}

	detalles := make([]model.DetalleCompra, 0, len(req.Detalles))
	total := decimal.Zero
	for _, d := range req.Detalles {
		subtotal := d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		total = total.Add(subtotal)
		detalles = append(detalles, model.DetalleCompra{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       subtotal,
		})
	}

	compra := model.Compra{
		NumeroFactura: req.NumeroFactura,
		ProveedorID:   req.ProveedorID,
		Fecha:         time.Now(),
		Observaciones: req.Observaciones,
		Estado:        model.EstadoCompletada,
		Total:         total,
		Detalles:      detalles,
	}
	if req.Fecha != nil {
		compra.Fecha = *req.Fecha
	}
	if req.Estado != "" {
		compra.Estado = req.Estado
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CrearTx(tx, &compra)
	})
	if err != nil {
		return nil, apierror.CreationFailed("Error al crear compra", err)
	}

	if completa, err := s.repo.ObtenerPorID(ctx, compra.ID); err == nil {
		resp := toCompraResponse(completa)
		return &resp, nil
	}
	resp := toCompraResponse(&compra)
	return &resp, nil
}

func (s *CompraService) Listar(ctx context.Context, filter dto.CompraFilter) ([]dto.CompraResponse, error) {
	clampPaginacion(&filter.Paginacion)
	desde, err := parseFecha("fecha_inicio", filter.FechaInicio)
	if err != nil {
		return nil, err
	}
	hasta, err := parseFecha("fecha_fin", filter.FechaFin)
	if err != nil {
		return nil, err
	}
	compras, err := s.repo.Listar(ctx, repository.CompraQuery{
		Desde:       desde,
		Hasta:       hasta,
		ProveedorID: filter.ProveedorID,
		Estado:      filter.Estado,
		Skip:        filter.Skip,
		Limit:       filter.Limit,
	})
	if err != nil {
		return nil, apierror.Internal("Error al listar compras", err)
	}
	out := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		out = append(out, toCompraResponse(&compras[i]))
	}
	return out, nil
}

func (s *CompraService) Obtener(ctx context.Context, id int) (*dto.CompraResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Compra no encontrada")
	}
	resp := toCompraResponse(c)
	return &resp, nil
}

// Actualizar patches header fields. Lines and total are immutable after
// creation, so financial history cannot be rewritten.
func (s *CompraService) Actualizar(ctx context.Context, id int, req dto.ActualizarCompraRequest) (*dto.CompraResponse, error) {
	if req.Vacio() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar")
	}
	if req.ProveedorID != nil {
		if _, err := s.proveedorRepo.ObtenerPorID(ctx, *req.ProveedorID); err != nil {
			return nil, apierror.Validation(fmt.Sprintf("El proveedor %d no existe", *req.ProveedorID))
		}
	}

	campos := map[string]any{}
	if req.NumeroFactura != nil {
		campos["numero_factura"] = *req.NumeroFactura
	}
	if req.ProveedorID != nil {
		campos["id_proveedor"] = *req.ProveedorID
	}
	if req.Observaciones != nil {
		campos["observaciones"] = *req.Observaciones
	}
	if req.Estado != nil {
		campos["estado"] = *req.Estado
	}

	rows, err := s.repo.ActualizarCampos(ctx, id, campos)
	if err != nil {
		return nil, apierror.Internal("Error al actualizar compra", err)
	}
	if rows == 0 {
		return nil, apierror.NotFound("Compra no encontrada")
	}
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Compra no encontrada")
	}
	resp := toCompraResponse(c)
	return &resp, nil
}

// Cancelar marks the purchase as cancelled. Stock was never incremented on
// creation, so there is nothing to revert.
func (s *CompraService) Cancelar(ctx context.Context, id int) (*dto.MensajeRespuesta, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Compra no encontrada")
	}
	if c.Estado == model.EstadoCancelada {
		return nil, apierror.Validation("La compra ya está cancelada")
	}
	if _, err := s.repo.ActualizarCampos(ctx, id, map[string]any{"estado": model.EstadoCancelada}); err != nil {
		return nil, apierror.Internal("Error al cancelar compra", err)
	}
	return &dto.MensajeRespuesta{Mensaje: "Compra cancelada correctamente"}, nil
}
