package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

// Vacio reports whether the partial update carries no fields at all.
func (r ActualizarCategoriaRequest) Vacio() bool {
	return r.Nombre == nil && r.Descripcion == nil && r.Activo == nil
}

type CategoriaFilter struct {
	Activo *bool `form:"activo"`
	Paginacion
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID            int       `json:"id_categoria"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
