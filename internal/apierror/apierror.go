// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Respuesta is the canonical error envelope for all 4xx/5xx HTTP responses.
type Respuesta struct {
	Mensaje  string `json:"mensaje"`
	Detalles string `json:"detalles,omitempty"`
}

// Error is a domain error carrying the HTTP status the boundary should emit.
// Services return these directly; handlers translate them with Status/Body.
type Error struct {
	Code     int
	Mensaje  string
	Detalles string
}

func (e *Error) Error() string {
	if e.Detalles != "" {
		return e.Mensaje + ": " + e.Detalles
	}
	return e.Mensaje
}

// ── Constructors, one per taxonomy entry ─────────────────────────────────────

func NotFound(mensaje string) *Error {
	return &Error{Code: http.StatusNotFound, Mensaje: mensaje}
}

func Validation(mensaje string) *Error {
	return &Error{Code: http.StatusBadRequest, Mensaje: mensaje}
}

func DuplicateKey(mensaje string) *Error {
	return &Error{Code: http.StatusBadRequest, Mensaje: mensaje}
}

// InsufficientStock carries the offending product id and its current stock,
// matching the original API message verbatim.
func InsufficientStock(productoID, stockActual int) *Error {
	return &Error{
		Code:    http.StatusBadRequest,
		Mensaje: fmt.Sprintf("Stock insuficiente para producto %d. Stock actual: %d", productoID, stockActual),
	}
}

func ProductNotFound(productoID int) *Error {
	return &Error{
		Code:    http.StatusNotFound,
		Mensaje: fmt.Sprintf("Producto %d no encontrado", productoID),
	}
}

func CreationFailed(mensaje string, err error) *Error {
	e := &Error{Code: http.StatusBadRequest, Mensaje: mensaje}
	if err != nil {
		e.Detalles = err.Error()
	}
	return e
}

func StoreUnavailable(err error) *Error {
	e := &Error{Code: http.StatusServiceUnavailable, Mensaje: "Base de datos no disponible"}
	if err != nil {
		e.Detalles = err.Error()
	}
	return e
}

func Internal(mensaje string, err error) *Error {
	e := &Error{Code: http.StatusInternalServerError, Mensaje: mensaje}
	if err != nil {
		e.Detalles = err.Error()
	}
	return e
}

// ── Boundary helpers ─────────────────────────────────────────────────────────

// Status resolves the HTTP status for any error: typed domain errors keep
// their own code, everything else is an internal error.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return http.StatusInternalServerError
}

// Body builds the JSON envelope for any error. Untyped errors become a
// generic message with the original text as detail — never a stack trace.
func Body(err error) Respuesta {
	var ae *Error
	if errors.As(err, &ae) {
		return Respuesta{Mensaje: ae.Mensaje, Detalles: ae.Detalles}
	}
	return Respuesta{Mensaje: "Error interno del servidor", Detalles: err.Error()}
}

// IsDuplicate detects unique-constraint violations heuristically from the
// store's error text, the same way the original service did.
func IsDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate")
}
