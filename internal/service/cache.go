package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	claveReporteStockBajo = "reporte:stock_bajo"
	ttlReporteStockBajo   = 60 * time.Second
)

// ReporteCache is a best-effort Redis cache for the low-stock report. Every
// operation tolerates a nil client and swallows Redis errors: a cache outage
// degrades to hitting the database, never to a failed request.
type ReporteCache struct {
	rdb *redis.Client
}

func NewReporteCache(rdb *redis.Client) *ReporteCache {
	return &ReporteCache{rdb: rdb}
}

// ObtenerStockBajo returns the cached report, or false when absent/unavailable.
func (c *ReporteCache) ObtenerStockBajo(ctx context.Context, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, claveReporteStockBajo).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("cache: fallo leyendo reporte de stock bajo")
		}
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *ReporteCache) GuardarStockBajo(ctx context.Context, v any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, claveReporteStockBajo, raw, ttlReporteStockBajo).Err(); err != nil {
		log.Warn().Err(err).Msg("cache: fallo guardando reporte de stock bajo")
	}
}

// InvalidarStockBajo drops the cached report after any write that can change
// stock or product visibility, so the report never serves stale rows inside
// the TTL window.
func (c *ReporteCache) InvalidarStockBajo(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, claveReporteStockBajo).Err(); err != nil {
		log.Warn().Err(err).Msg("cache: fallo invalidando reporte de stock bajo")
	}
}
