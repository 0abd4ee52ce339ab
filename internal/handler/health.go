package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health checks DB and Redis connectivity; never exposes credentials or
// internals. Redis being down degrades the payload but not the status: the
// API works without its cache.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		estado := "ok"
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
			estado = "error"
		}

		c.JSON(status, gin.H{
			"status": estado,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}

// Root is the API landing endpoint.
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"mensaje": "API Sistema de Inventario",
			"version": "1.0.0",
			"docs":    "/swagger/index.html",
		})
	}
}
