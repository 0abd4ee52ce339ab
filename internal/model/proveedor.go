package model

import "time"

// Proveedor represents a supplier with contact data.
type Proveedor struct {
	ID            int    `gorm:"column:id_proveedor;primaryKey"`
	Nombre        string `gorm:"not null"`
	Telefono      *string
	Email         *string
	Direccion     *string
	Activo        bool      `gorm:"not null;default:true"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime"`
}

func (Proveedor) TableName() string { return "proveedor" }
