package model

import "time"

// Categoria represents a product category used to classify products.
type Categoria struct {
	ID            int     `gorm:"column:id_categoria;primaryKey"`
	Nombre        string  `gorm:"uniqueIndex;not null"`
	Descripcion   *string
	Activo        bool      `gorm:"not null;default:true"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime"`
}

// TableName keeps the original singular Spanish table names.
func (Categoria) TableName() string { return "categoria" }
