package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
)

type MovimientoStockFilter struct {
	ProductoID int
	Tipo       string
	Skip       int
	Limit      int
}

// MovimientoStockRepository is the audit trail for stock changes. Writes
// always happen inside the transaction that changed the stock.
type MovimientoStockRepository interface {
	Crear(ctx context.Context, m *model.MovimientoStock) error
	CrearTx(tx *gorm.DB, m *model.MovimientoStock) error
	Listar(ctx context.Context, filter MovimientoStockFilter) ([]model.MovimientoStock, error)
}

type movimientoStockRepository struct{ db *gorm.DB }

func NewMovimientoStockRepository(db *gorm.DB) MovimientoStockRepository {
	return &movimientoStockRepository{db: db}
}

func (r *movimientoStockRepository) Crear(ctx context.Context, m *model.MovimientoStock) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoStockRepository) CrearTx(tx *gorm.DB, m *model.MovimientoStock) error {
	return tx.Create(m).Error
}

func (r *movimientoStockRepository) Listar(ctx context.Context, filter MovimientoStockFilter) ([]model.MovimientoStock, error) {
	var list []model.MovimientoStock
	q := r.db.WithContext(ctx).Model(&model.MovimientoStock{})
	if filter.ProductoID > 0 {
		q = q.Where("id_producto = ?", filter.ProductoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	err := q.Order("fecha_creacion DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&list).Error
	return list, err
}
