package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
)

type HistorialPrecioRepository interface {
	Crear(ctx context.Context, h *model.HistorialPrecio) error
	ListarPorProducto(ctx context.Context, productoID, skip, limit int) ([]model.HistorialPrecio, error)
}

type historialPrecioRepository struct{ db *gorm.DB }

func NewHistorialPrecioRepository(db *gorm.DB) HistorialPrecioRepository {
	return &historialPrecioRepository{db: db}
}

func (r *historialPrecioRepository) Crear(ctx context.Context, h *model.HistorialPrecio) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *historialPrecioRepository) ListarPorProducto(ctx context.Context, productoID, skip, limit int) ([]model.HistorialPrecio, error) {
	var list []model.HistorialPrecio
	err := r.db.WithContext(ctx).Model(&model.HistorialPrecio{}).
		Where("id_producto = ?", productoID).
		Order("fecha_cambio DESC").Offset(skip).Limit(limit).Find(&list).Error
	return list, err
}
