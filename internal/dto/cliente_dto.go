package dto

import "time"

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=1,max=200"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Activo    *bool   `json:"activo"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=1,max=200"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Activo    *bool   `json:"activo"`
}

func (r ActualizarClienteRequest) Vacio() bool {
	return r.Nombre == nil && r.Telefono == nil && r.Email == nil &&
		r.Direccion == nil && r.Activo == nil
}

type ClienteFilter struct {
	Activo *bool `form:"activo"`
	Paginacion
}

type ClienteResponse struct {
	ID            int       `json:"id_cliente"`
	Nombre        string    `json:"nombre"`
	Telefono      *string   `json:"telefono"`
	Email         *string   `json:"email"`
	Direccion     *string   `json:"direccion"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
