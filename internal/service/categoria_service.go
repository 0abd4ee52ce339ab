package service

import (
	"context"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"gorm.io/gorm"
)

type CategoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) *CategoriaService {
	return &CategoriaService{repo: repo}
}

func (s *CategoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if existente, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil && existente != nil {
		return nil, apierror.DuplicateKey("Ya existe una categoría con ese nombre")
	}

	c := model.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.repo.Crear(ctx, &c); err != nil {
		if apierror.IsDuplicate(err) {
			return nil, apierror.DuplicateKey("Ya existe una categoría con ese nombre")
		}
		return nil, apierror.CreationFailed("Error al crear categoría", err)
	}
	resp := toCategoriaResponse(&c)
	return &resp, nil
}

func (s *CategoriaService) Listar(ctx context.Context, filter dto.CategoriaFilter) ([]dto.CategoriaResponse, error) {
	clampPaginacion(&filter.Paginacion)
	categorias, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Error al listar categorías", err)
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		out = append(out, toCategoriaResponse(&categorias[i]))
	}
	return out, nil
}

func (s *CategoriaService) Obtener(ctx context.Context, id int) (*dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Categoría no encontrada")
	}
	resp := toCategoriaResponse(c)
	return &resp, nil
}

func (s *CategoriaService) Actualizar(ctx context.Context, id int, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	if req.Vacio() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar")
	}
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Categoría no encontrada")
	}
	if req.Nombre != nil && *req.Nombre != c.Nombre {
		if existente, err := s.repo.ObtenerPorNombre(ctx, *req.Nombre); err == nil && existente != nil && existente.ID != id {
			return nil, apierror.DuplicateKey("Ya existe una categoría con ese nombre")
		}
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, apierror.Internal("Error al actualizar categoría", err)
	}
	resp := toCategoriaResponse(c)
	return &resp, nil
}

// Eliminar is a soft delete: the row stays, activo flips to false, and
// referencing products keep their historical data intact.
func (s *CategoriaService) Eliminar(ctx context.Context, id int) (*dto.MensajeRespuesta, error) {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return nil, notFound(err, "Categoría no encontrada")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apierror.NotFound("Categoría no encontrada")
		}
		return nil, apierror.Internal("Error al eliminar categoría", err)
	}
	return &dto.MensajeRespuesta{Mensaje: "Categoría eliminada correctamente"}, nil
}
