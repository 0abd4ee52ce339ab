package service

import (
	"context"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"
)

type ClienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) *ClienteService {
	return &ClienteService{repo: repo}
}

func (s *ClienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c := model.Cliente{
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		Activo:    true,
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.repo.Crear(ctx, &c); err != nil {
		return nil, apierror.CreationFailed("Error al crear cliente", err)
	}
	resp := toClienteResponse(&c)
	return &resp, nil
}

func (s *ClienteService) Listar(ctx context.Context, filter dto.ClienteFilter) ([]dto.ClienteResponse, error) {
	clampPaginacion(&filter.Paginacion)
	clientes, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Error al listar clientes", err)
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, toClienteResponse(&clientes[i]))
	}
	return out, nil
}

func (s *ClienteService) Obtener(ctx context.Context, id int) (*dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Cliente no encontrado")
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

func (s *ClienteService) Actualizar(ctx context.Context, id int, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	if req.Vacio() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar")
	}
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Cliente no encontrado")
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		c.Telefono = req.Telefono
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Direccion != nil {
		c.Direccion = req.Direccion
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, apierror.Internal("Error al actualizar cliente", err)
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

func (s *ClienteService) Eliminar(ctx context.Context, id int) (*dto.MensajeRespuesta, error) {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return nil, notFound(err, "Cliente no encontrado")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return nil, apierror.Internal("Error al eliminar cliente", err)
	}
	return &dto.MensajeRespuesta{Mensaje: "Cliente eliminado correctamente"}, nil
}
