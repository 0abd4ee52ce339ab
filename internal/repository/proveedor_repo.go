package repository

import (
	"context"

	"inventario/internal/dto"
	"inventario/internal/model"

	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Crear(ctx context.Context, p *model.Proveedor) error
	Listar(ctx context.Context, filter dto.ProveedorFilter) ([]model.Proveedor, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Proveedor, error)
	Actualizar(ctx context.Context, p *model.Proveedor) error
	Desactivar(ctx context.Context, id int) error
}

type proveedorRepository struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository {
	return &proveedorRepository{db: db}
}

func (r *proveedorRepository) Crear(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepository) Listar(ctx context.Context, filter dto.ProveedorFilter) ([]model.Proveedor, error) {
	var list []model.Proveedor
	q := r.db.WithContext(ctx).Model(&model.Proveedor{})
	if filter.Activo != nil {
		q = q.Where("activo = ?", *filter.Activo)
	}
	err := q.Order("nombre ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&list).Error
	return list, err
}

func (r *proveedorRepository) ObtenerPorID(ctx context.Context, id int) (*model.Proveedor, error) {
	var p model.Proveedor
	if err := r.db.WithContext(ctx).First(&p, "id_proveedor = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepository) Actualizar(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proveedorRepository) Desactivar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Proveedor{}).
		Where("id_proveedor = ?", id).Update("activo", false).Error
}
