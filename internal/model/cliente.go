package model

import "time"

// Cliente represents a customer that sales can optionally reference.
type Cliente struct {
	ID            int    `gorm:"column:id_cliente;primaryKey"`
	Nombre        string `gorm:"not null"`
	Telefono      *string
	Email         *string
	Direccion     *string
	Activo        bool      `gorm:"not null;default:true"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime"`
}

func (Cliente) TableName() string { return "cliente" }
