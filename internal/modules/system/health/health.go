// Package health reports liveness of the server and its backing stores.
package health

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	pkgredis "github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/redis"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/response"
)

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, rc *pkgredis.Client) {
	started := time.Now()

	rg.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "error"
		} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			dbStatus = "error"
		}

		redisStatus := "ok"
		if rc == nil {
			redisStatus = "disabled"
		} else if err := rc.Raw().Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "error"
		}

		response.OK(c, gin.H{
			"status":   "running",
			"uptime":   time.Since(started).Seconds(),
			"database": dbStatus,
			"redis":    redisStatus,
		})
	})
}
