package repository

import (
	"context"

	"inventario/internal/dto"
	"inventario/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Cliente, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	Desactivar(ctx context.Context, id int) error
}

type clienteRepository struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepository) Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, error) {
	var list []model.Cliente
	q := r.db.WithContext(ctx).Model(&model.Cliente{})
	if filter.Activo != nil {
		q = q.Where("activo = ?", *filter.Activo)
	}
	err := q.Order("nombre ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&list).Error
	return list, err
}

func (r *clienteRepository) ObtenerPorID(ctx context.Context, id int) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, "id_cliente = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepository) Actualizar(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepository) Desactivar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("id_cliente = ?", id).Update("activo", false).Error
}
