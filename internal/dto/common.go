package dto

// MensajeRespuesta is the generic success body for soft-delete / cancel
// operations (the API never answers 204 for those).
type MensajeRespuesta struct {
	Mensaje  string  `json:"mensaje"`
	Detalles *string `json:"detalles,omitempty"`
}

// Paginacion holds the skip/limit query params shared by every list endpoint.
// Limit is clamped in the service layer: default 100, cap 1000.
type Paginacion struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}
