package service_test

import (
	"context"
	"testing"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProducto(t *testing.T) (*service.ProductoService, *stubProductoRepo, *stubCategoriaRepo, *stubHistorialRepo, *stubMovimientoRepo) {
	t.Helper()
	productoRepo := newStubProductoRepo()
	categoriaRepo := newStubCategoriaRepo()
	historialRepo := &stubHistorialRepo{}
	movRepo := &stubMovimientoRepo{}
	svc := service.NewProductoService(productoRepo, categoriaRepo, historialRepo, movRepo, service.NewReporteCache(nil))
	return svc, productoRepo, categoriaRepo, historialRepo, movRepo
}

func seedCategoria(t *testing.T, repo *stubCategoriaRepo, nombre string) *model.Categoria {
	t.Helper()
	c := &model.Categoria{Nombre: nombre, Activo: true}
	require.NoError(t, repo.Crear(context.Background(), c))
	return c
}

func TestCrearProductoRegistraPrecioInicial(t *testing.T) {
	svc, _, categoriaRepo, historialRepo, _ := setupProducto(t)
	cat := seedCategoria(t, categoriaRepo, "Almacén")

	codigo := "7790001001234"
	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo:       &codigo,
		Nombre:       "Yerba 1kg",
		CategoriaID:  cat.ID,
		PrecioActual: dec("1500.00"),
		Stock:        20,
		StockMinimo:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, "unidad", resp.UnidadMedida)
	assert.True(t, resp.Activo)

	require.Len(t, historialRepo.historial, 1)
	h := historialRepo.historial[0]
	assert.Equal(t, resp.ID, h.ProductoID)
	assert.Nil(t, h.PrecioAnterior)
	assert.True(t, h.PrecioNuevo.Equal(dec("1500.00")))
}

func TestCrearProductoCategoriaInexistente(t *testing.T) {
	svc, _, _, _, _ := setupProducto(t)
	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:       "Yerba",
		CategoriaID:  99,
		PrecioActual: dec("100.00"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.Status(err))
}

func TestCrearProductoCodigoDuplicado(t *testing.T) {
	svc, _, categoriaRepo, _, _ := setupProducto(t)
	cat := seedCategoria(t, categoriaRepo, "Almacén")

	codigo := "7790001001234"
	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo: &codigo, Nombre: "Yerba", CategoriaID: cat.ID, PrecioActual: dec("100.00"),
	})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo: &codigo, Nombre: "Otra yerba", CategoriaID: cat.ID, PrecioActual: dec("120.00"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.Status(err))
}

func TestActualizarPrecioGeneraHistorial(t *testing.T) {
	svc, _, categoriaRepo, historialRepo, _ := setupProducto(t)
	cat := seedCategoria(t, categoriaRepo, "Almacén")

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Yerba", CategoriaID: cat.ID, PrecioActual: dec("100.00"),
	})
	require.NoError(t, err)

	nuevo := dec("130.00")
	_, err = svc.Actualizar(context.Background(), resp.ID, dto.ActualizarProductoRequest{
		PrecioActual: &nuevo,
	})
	require.NoError(t, err)

	require.Len(t, historialRepo.historial, 2)
	h := historialRepo.historial[1]
	require.NotNil(t, h.PrecioAnterior)
	assert.True(t, h.PrecioAnterior.Equal(dec("100.00")))
	assert.True(t, h.PrecioNuevo.Equal(dec("130.00")))
}

func TestActualizarStockGeneraMovimientoManual(t *testing.T) {
	svc, _, categoriaRepo, _, movRepo := setupProducto(t)
	cat := seedCategoria(t, categoriaRepo, "Almacén")

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Yerba", CategoriaID: cat.ID, PrecioActual: dec("100.00"), Stock: 10,
	})
	require.NoError(t, err)

	nuevoStock := 25
	_, err = svc.Actualizar(context.Background(), resp.ID, dto.ActualizarProductoRequest{
		Stock: &nuevoStock,
	})
	require.NoError(t, err)

	require.Len(t, movRepo.movimientos, 1)
	m := movRepo.movimientos[0]
	assert.Equal(t, "ajuste_manual", m.Tipo)
	assert.Equal(t, 15, m.Cantidad)
	assert.Equal(t, 10, m.StockAnterior)
	assert.Equal(t, 25, m.StockNuevo)
}

func TestActualizarProductoNoPersisteCategoriaPrecargada(t *testing.T) {
	svc, productoRepo, categoriaRepo, _, _ := setupProducto(t)
	cat := seedCategoria(t, categoriaRepo, "Almacén")

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Yerba", CategoriaID: cat.ID, PrecioActual: dec("100.00"),
	})
	require.NoError(t, err)

	// Simulate a hydrated fetch: the stored model carries the association.
	almacenado, err := productoRepo.ObtenerPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	almacenado.Categoria = &model.Categoria{ID: cat.ID, Nombre: "Almacén"}

	nombre := "Yerba suave"
	_, err = svc.Actualizar(context.Background(), resp.ID, dto.ActualizarProductoRequest{
		Nombre: &nombre,
	})
	require.NoError(t, err)

	// the patch saves only product columns, never the categoria row
	almacenado, err = productoRepo.ObtenerPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Nil(t, almacenado.Categoria)
	assert.Equal(t, "Yerba suave", almacenado.Nombre)
}

func TestActualizarProductoSinCampos(t *testing.T) {
	svc, _, _, _, _ := setupProducto(t)
	_, err := svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.Status(err))
}

func TestEliminarProductoEsSoftDelete(t *testing.T) {
	svc, productoRepo, categoriaRepo, _, _ := setupProducto(t)
	cat := seedCategoria(t, categoriaRepo, "Almacén")

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Yerba", CategoriaID: cat.ID, PrecioActual: dec("100.00"),
	})
	require.NoError(t, err)

	msg, err := svc.Eliminar(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Producto eliminado correctamente", msg.Mensaje)

	// the row survives, only the flag flips
	p, err := productoRepo.ObtenerPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.False(t, p.Activo)
}

func TestReporteStockBajo(t *testing.T) {
	svc, productoRepo, categoriaRepo, _, _ := setupProducto(t)
	seedCategoria(t, categoriaRepo, "Almacén")

	bajo := seedProducto(productoRepo, "Yerba", 2, "100.00")     // stock 2, mínimo 2 → included
	seedProducto(productoRepo, "Azúcar", 50, "50.00")            // above mínimo → excluded
	inactivo := seedProducto(productoRepo, "Harina", 0, "30.00") // inactive → excluded
	inactivo.Activo = false

	reporte, err := svc.ReporteStockBajo(context.Background())
	require.NoError(t, err)
	require.Len(t, reporte, 1)
	assert.Equal(t, bajo.ID, reporte[0].ProductoID)
	assert.Equal(t, 2, reporte[0].StockActual)
	assert.Equal(t, 0, reporte[0].Diferencia)
}

func TestHistorialDeProductoInexistente(t *testing.T) {
	svc, _, _, _, _ := setupProducto(t)
	_, err := svc.ListarHistorialPrecios(context.Background(), 99, dto.Paginacion{})
	require.Error(t, err)
	assert.Equal(t, 404, apierror.Status(err))
}

func TestListarMovimientosFiltraPorTipo(t *testing.T) {
	svc, _, _, _, movRepo := setupProducto(t)
	movRepo.movimientos = []model.MovimientoStock{
		{ProductoID: 1, Tipo: "venta", Cantidad: -2},
		{ProductoID: 1, Tipo: "ajuste_manual", Cantidad: 5},
	}

	items, err := svc.ListarMovimientos(context.Background(), dto.MovimientoStockFilter{Tipo: "venta"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "venta", items[0].Tipo)
}
