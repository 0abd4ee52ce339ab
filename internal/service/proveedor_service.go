package service

import (
	"context"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"
)

type ProveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) *ProveedorService {
	return &ProveedorService{repo: repo}
}

func (s *ProveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	p := model.Proveedor{
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		Activo:    true,
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	if err := s.repo.Crear(ctx, &p); err != nil {
		return nil, apierror.CreationFailed("Error al crear proveedor", err)
	}
	resp := toProveedorResponse(&p)
	return &resp, nil
}

func (s *ProveedorService) Listar(ctx context.Context, filter dto.ProveedorFilter) ([]dto.ProveedorResponse, error) {
	clampPaginacion(&filter.Paginacion)
	proveedores, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Error al listar proveedores", err)
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, toProveedorResponse(&proveedores[i]))
	}
	return out, nil
}

func (s *ProveedorService) Obtener(ctx context.Context, id int) (*dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Proveedor no encontrado")
	}
	resp := toProveedorResponse(p)
	return &resp, nil
}

func (s *ProveedorService) Actualizar(ctx context.Context, id int, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	if req.Vacio() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar")
	}
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Proveedor no encontrado")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, apierror.Internal("Error al actualizar proveedor", err)
	}
	resp := toProveedorResponse(p)
	return &resp, nil
}

func (s *ProveedorService) Eliminar(ctx context.Context, id int) (*dto.MensajeRespuesta, error) {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return nil, notFound(err, "Proveedor no encontrado")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return nil, apierror.Internal("Error al eliminar proveedor", err)
	}
	return &dto.MensajeRespuesta{Mensaje: "Proveedor eliminado correctamente"}, nil
}
