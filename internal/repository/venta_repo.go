package repository

import (
	"context"
	"time"

	"inventario/internal/model"

	"gorm.io/gorm"
)

type VentaQuery struct {
	Desde      *time.Time
	Hasta      *time.Time
	ClienteID  int
	MetodoPago string
	Estado     string
	Skip       int
	Limit      int
}

type VentaRepository interface {
	// CrearTx inserts the header and its lines inside the given transaction,
	// which also carries the stock decrements and movement records.
	CrearTx(tx *gorm.DB, v *model.Venta) error
	Listar(ctx context.Context, q VentaQuery) ([]model.Venta, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Venta, error)
	ActualizarCampos(ctx context.Context, id int, campos map[string]any) (int64, error)
	DB() *gorm.DB
}

type ventaRepository struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository {
	return &ventaRepository{db: db}
}

func (r *ventaRepository) DB() *gorm.DB { return r.db }

func (r *ventaRepository) CrearTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepository) Listar(ctx context.Context, q VentaQuery) ([]model.Venta, error) {
	var list []model.Venta
	query := r.db.WithContext(ctx).Model(&model.Venta{}).
		Preload("Cliente").Preload("Detalles").Preload("Detalles.Producto")
	if q.Desde != nil {
		query = query.Where("fecha >= ?", *q.Desde)
	}
	if q.Hasta != nil {
		query = query.Where("fecha <= ?", *q.Hasta)
	}
	if q.ClienteID > 0 {
		query = query.Where("id_cliente = ?", q.ClienteID)
	}
	if q.MetodoPago != "" {
		query = query.Where("metodo_pago = ?", q.MetodoPago)
	}
	if q.Estado != "" {
		query = query.Where("estado = ?", q.Estado)
	}
	err := query.Order("fecha DESC").Offset(q.Skip).Limit(q.Limit).Find(&list).Error
	return list, err
}

func (r *ventaRepository) ObtenerPorID(ctx context.Context, id int) (*model.Venta, error) {
	var v model.Venta
	if err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Detalles").Preload("Detalles.Producto").
		First(&v, "id_venta = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepository) ActualizarCampos(ctx context.Context, id int, campos map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("id_venta = ?", id).Updates(campos)
	return res.RowsAffected, res.Error
}
