package dto

import "time"

type CrearProveedorRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=1,max=200"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Activo    *bool   `json:"activo"`
}

type ActualizarProveedorRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=1,max=200"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Activo    *bool   `json:"activo"`
}

func (r ActualizarProveedorRequest) Vacio() bool {
	return r.Nombre == nil && r.Telefono == nil && r.Email == nil &&
		r.Direccion == nil && r.Activo == nil
}

type ProveedorFilter struct {
	Activo *bool `form:"activo"`
	Paginacion
}

type ProveedorResponse struct {
	ID            int       `json:"id_proveedor"`
	Nombre        string    `json:"nombre"`
	Telefono      *string   `json:"telefono"`
	Email         *string   `json:"email"`
	Direccion     *string   `json:"direccion"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
