package service_test

import (
	"context"
	"testing"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoria(t *testing.T) (*service.CategoriaService, *stubCategoriaRepo) {
	t.Helper()
	repo := newStubCategoriaRepo()
	return service.NewCategoriaService(repo), repo
}

func TestCrearCategoria(t *testing.T) {
	svc, _ := setupCategoria(t)
	desc := "Productos de almacén"
	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{
		Nombre:      "Almacén",
		Descripcion: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "Almacén", resp.Nombre)
	assert.True(t, resp.Activo)
	assert.Positive(t, resp.ID)
}

func TestCrearCategoriaNombreDuplicado(t *testing.T) {
	svc, _ := setupCategoria(t)
	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Almacén"})
	require.NoError(t, err)

	// duplicate detection is case-insensitive
	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "almacén"})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.Status(err))
}

func TestObtenerCategoriaInexistente(t *testing.T) {
	svc, _ := setupCategoria(t)
	_, err := svc.Obtener(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, 404, apierror.Status(err))
}

func TestActualizarCategoriaParcial(t *testing.T) {
	svc, _ := setupCategoria(t)
	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Almacén"})
	require.NoError(t, err)

	desc := "Actualizada"
	actualizada, err := svc.Actualizar(context.Background(), resp.ID, dto.ActualizarCategoriaRequest{
		Descripcion: &desc,
	})
	require.NoError(t, err)
	// untouched fields survive a partial update
	assert.Equal(t, "Almacén", actualizada.Nombre)
	require.NotNil(t, actualizada.Descripcion)
	assert.Equal(t, "Actualizada", *actualizada.Descripcion)
}

func TestActualizarCategoriaSinCampos(t *testing.T) {
	svc, _ := setupCategoria(t)
	_, err := svc.Actualizar(context.Background(), 1, dto.ActualizarCategoriaRequest{})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.Status(err))
}

func TestEliminarCategoriaEsSoftDelete(t *testing.T) {
	svc, repo := setupCategoria(t)
	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Almacén"})
	require.NoError(t, err)

	msg, err := svc.Eliminar(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Categoría eliminada correctamente", msg.Mensaje)

	c, err := repo.ObtenerPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.False(t, c.Activo)

	// still retrievable through the API after the soft delete
	obtenida, err := svc.Obtener(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.False(t, obtenida.Activo)
}

func TestEliminarCategoriaDosVecesEsIdempotente(t *testing.T) {
	svc, repo := setupCategoria(t)
	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Almacén"})
	require.NoError(t, err)

	_, err = svc.Eliminar(context.Background(), resp.ID)
	require.NoError(t, err)

	// deactivating an already-inactive row succeeds and changes nothing
	msg, err := svc.Eliminar(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Categoría eliminada correctamente", msg.Mensaje)

	c, err := repo.ObtenerPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.False(t, c.Activo)
}

func TestListarCategoriasClampaPaginacion(t *testing.T) {
	svc, repo := setupCategoria(t)

	_, err := svc.Listar(context.Background(), dto.CategoriaFilter{})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastFilter.Limit)

	_, err = svc.Listar(context.Background(), dto.CategoriaFilter{
		Paginacion: dto.Paginacion{Limit: 5000, Skip: -3},
	})
	require.NoError(t, err)
	assert.Equal(t, 1000, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Skip)
}

func TestListarCategoriasFiltraPorActivo(t *testing.T) {
	svc, _ := setupCategoria(t)
	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Almacén"})
	require.NoError(t, err)
	inactiva := false
	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Limpieza", Activo: &inactiva})
	require.NoError(t, err)

	activa := true
	activas, err := svc.Listar(context.Background(), dto.CategoriaFilter{Activo: &activa})
	require.NoError(t, err)
	require.Len(t, activas, 1)
	assert.Equal(t, "Almacén", activas[0].Nombre)
}
