package dashboard

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/middleware"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/response"
)

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, log *zap.Logger, authMW gin.HandlerFunc) {
	svc := NewService(db).WithLogger(log)

	rg.GET("/analytics/dashboard", authMW, func(c *gin.Context) {
		summary, err := svc.Summary(middleware.CurrentUserID(c))
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, summary)
	})

	rg.GET("/analytics/trends", authMW, func(c *gin.Context) {
		days := defaultTrendDays
		if raw := c.Query("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				response.BadRequest(c, "days 参数无效")
				return
			}
			days = parsed
		}

		trend, err := svc.BuildTrend(middleware.CurrentUserID(c), days)
		if err != nil {
			if errors.Is(err, ErrInvalidRange) {
				response.BadRequest(c, "days 参数超出范围")
				return
			}
			response.InternalError(c, err)
			return
		}
		response.OK(c, trend)
	})

	rg.GET("/analytics/categories", authMW, func(c *gin.Context) {
		analysis, err := svc.CategoryAnalysis(middleware.CurrentUserID(c))
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, analysis)
	})

	rg.GET("/analytics/popular", authMW, func(c *gin.Context) {
		popular, err := svc.PopularContent(middleware.CurrentUserID(c))
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, popular)
	})

	rg.GET("/analytics/activity", authMW, func(c *gin.Context) {
		days := defaultActivityDays
		limit := defaultActivityLimit
		if raw := c.Query("days"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				days = parsed
			}
		}
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				limit = parsed
			}
		}

		entries, err := svc.ActivityFeed(middleware.CurrentUserID(c), days, limit)
		if err != nil {
			if errors.Is(err, ErrInvalidParameter) {
				response.BadRequest(c, "参数无效")
				return
			}
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"activities": entries})
	})

	rg.GET("/analytics/export", authMW, func(c *gin.Context) {
		payload, err := svc.Export(middleware.CurrentUserID(c), c.Query("type"))
		if err != nil {
			if errors.Is(err, ErrInvalidParameter) {
				response.BadRequest(c, "type 参数无效")
				return
			}
			response.InternalError(c, err)
			return
		}
		response.OK(c, payload)
	})
}
