package repository

import (
	"context"

	"inventario/internal/dto"
	"inventario/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductoRepository covers product CRUD plus the stock primitives used by the
// sales flow. DescontarStockTx runs inside a caller-owned transaction and
// applies a guarded decrement: zero rows affected means insufficient stock.
type ProductoRepository interface {
	Crear(ctx context.Context, p *model.Producto) error
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Producto, error)
	ObtenerPorCodigo(ctx context.Context, codigo string) (*model.Producto, error)
	Actualizar(ctx context.Context, p *model.Producto) error
	Desactivar(ctx context.Context, id int) error

	ListarStockBajo(ctx context.Context) ([]model.Producto, error)
	DescontarStockTx(tx *gorm.DB, productoID, cantidad int) (int64, error)

	// DB exposes the underlying handle so services can open transactions
	// spanning several repositories.
	DB() *gorm.DB
}

type productoRepository struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepository{db: db}
}

func (r *productoRepository) DB() *gorm.DB { return r.db }

func (r *productoRepository) Crear(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepository) Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	var list []model.Producto
	q := r.db.WithContext(ctx).Model(&model.Producto{}).Preload("Categoria")
	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Codigo != "" {
		q = q.Where("codigo = ?", filter.Codigo)
	}
	if filter.CategoriaID > 0 {
		q = q.Where("id_categoria = ?", filter.CategoriaID)
	}
	if filter.Activo != nil {
		q = q.Where("activo = ?", *filter.Activo)
	}
	if filter.StockBajo {
		q = q.Where("stock <= stock_minimo")
	}
	err := q.Order("nombre ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&list).Error
	return list, err
}

func (r *productoRepository) ObtenerPorID(ctx context.Context, id int) (*model.Producto, error) {
	var p model.Producto
	if err := r.db.WithContext(ctx).Preload("Categoria").
		First(&p, "id_producto = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepository) ObtenerPorCodigo(ctx context.Context, codigo string) (*model.Producto, error) {
	var p model.Producto
	if err := r.db.WithContext(ctx).Preload("Categoria").
		Where("codigo = ?", codigo).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Actualizar writes only the product's own columns. Save would otherwise
// upsert a preloaded Categoria association along with the row.
func (r *productoRepository) Actualizar(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *productoRepository) Desactivar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id_producto = ?", id).Update("activo", false).Error
}

func (r *productoRepository) ListarStockBajo(ctx context.Context) ([]model.Producto, error) {
	var list []model.Producto
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("activo = ? AND stock <= stock_minimo", true).
		Order("nombre ASC").Find(&list).Error
	return list, err
}

// DescontarStockTx decrements stock only when enough units remain. The WHERE
// guard makes concurrent sales of the same product serialize correctly at the
// database instead of racing a read-then-write.
func (r *productoRepository) DescontarStockTx(tx *gorm.DB, productoID, cantidad int) (int64, error) {
	res := tx.Model(&model.Producto{}).
		Where("id_producto = ? AND stock >= ?", productoID, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	return res.RowsAffected, res.Error
}
