package repository

import (
	"context"
	"time"

	"inventario/internal/model"

	"gorm.io/gorm"
)

// CompraQuery carries list filters already normalized by the service layer
// (dates parsed, pagination clamped).
type CompraQuery struct {
	Desde       *time.Time
	Hasta       *time.Time
	ProveedorID int
	Estado      string
	Skip        int
	Limit       int
}

type CompraRepository interface {
	// CrearTx inserts the header and its lines inside the given transaction.
	CrearTx(tx *gorm.DB, c *model.Compra) error
	Listar(ctx context.Context, q CompraQuery) ([]model.Compra, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Compra, error)
	ActualizarCampos(ctx context.Context, id int, campos map[string]any) (int64, error)
	DB() *gorm.DB
}

type compraRepository struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository {
	return &compraRepository{db: db}
}

func (r *compraRepository) DB() *gorm.DB { return r.db }

func (r *compraRepository) CrearTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Create(c).Error
}

func (r *compraRepository) Listar(ctx context.Context, q CompraQuery) ([]model.Compra, error) {
	var list []model.Compra
	query := r.db.WithContext(ctx).Model(&model.Compra{}).
		Preload("Proveedor").Preload("Detalles").Preload("Detalles.Producto")
	if q.Desde != nil {
		query = query.Where("fecha >= ?", *q.Desde)
	}
	if q.Hasta != nil {
		query = query.Where("fecha <= ?", *q.Hasta)
	}
	if q.ProveedorID > 0 {
		query = query.Where("id_proveedor = ?", q.ProveedorID)
	}
	if q.Estado != "" {
		query = query.Where("estado = ?", q.Estado)
	}
	err := query.Order("fecha DESC").Offset(q.Skip).Limit(q.Limit).Find(&list).Error
	return list, err
}

func (r *compraRepository) ObtenerPorID(ctx context.Context, id int) (*model.Compra, error) {
	var c model.Compra
	if err := r.db.WithContext(ctx).
		Preload("Proveedor").Preload("Detalles").Preload("Detalles.Producto").
		First(&c, "id_compra = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepository) ActualizarCampos(ctx context.Context, id int, campos map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Compra{}).
		Where("id_compra = ?", id).Updates(campos)
	return res.RowsAffected, res.Error
}
