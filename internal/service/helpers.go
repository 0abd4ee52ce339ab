package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventario/internal/apierror"
	"inventario/internal/dto"

	"gorm.io/gorm"
)

const (
	limitDefault = 100
	limitMax     = 1000
)

// clampPaginacion normalizes skip/limit: missing or non-positive limit falls
// back to the default, anything above the cap is clamped, negative skip is zero.
func clampPaginacion(p *dto.Paginacion) {
	if p.Limit <= 0 {
		p.Limit = limitDefault
	}
	if p.Limit > limitMax {
		p.Limit = limitMax
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// parseFecha accepts the two date formats clients actually send:
// plain dates and full RFC 3339 timestamps.
func parseFecha(campo, valor string) (*time.Time, error) {
	if valor == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, valor); err == nil {
			return &t, nil
		}
	}
	return nil, apierror.Validation(fmt.Sprintf("Formato de fecha inválido en %s: %q", campo, valor))
}

// runTx wraps fn in a database transaction. A nil db runs fn directly with a
// nil tx, which lets unit tests exercise transactional services against stub
// repositories without a real database.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// notFound maps gorm's sentinel to the API's 404, passing through errors that
// are already typed.
func notFound(err error, mensaje string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(mensaje)
	}
	var ae *apierror.Error
	if errors.As(err, &ae) {
		return err
	}
	return apierror.Internal("Error consultando la base de datos", err)
}
