package repository

import (
	"context"

	"inventario/internal/dto"
	"inventario/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository defines CRUD operations for Categoria.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context, filter dto.CategoriaFilter) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria) error
	Desactivar(ctx context.Context, id int) error
}

type categoriaRepository struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepository) Listar(ctx context.Context, filter dto.CategoriaFilter) ([]model.Categoria, error) {
	var list []model.Categoria
	q := r.db.WithContext(ctx).Model(&model.Categoria{})
	if filter.Activo != nil {
		q = q.Where("activo = ?", *filter.Activo)
	}
	err := q.Order("nombre ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&list).Error
	return list, err
}

func (r *categoriaRepository) ObtenerPorID(ctx context.Context, id int) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.db.WithContext(ctx).First(&c, "id_categoria = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) Actualizar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepository) Desactivar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Categoria{}).
		Where("id_categoria = ?", id).Update("activo", false).Error
}
