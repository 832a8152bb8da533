package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/middleware"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/auth/user"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/content/bookmark"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/content/category"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/content/collection"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/content/note"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/content/tag"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/content/website"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/stats/activitylog"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/stats/dashboard"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/system/health"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth(a.rc)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.Use(middleware.RateLimit(a.rc.Raw(), a.logger))

	r.GET("/metrics", a.metrics.Handler())

	api := r.Group("/api")
	api.GET("", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":    "url-manage-system",
			"version": "1.0.0",
		})
	})

	health.RegisterRoutes(api, db, a.rc)

	tokenTTL := time.Duration(a.cfg.TokenTTLHours) * time.Hour
	userSvc := user.NewService(db, tokenTTL)
	user.NewHandler(userSvc, a.rc).RegisterRoutes(api, authMW)

	category.NewHandler(category.NewService(db)).RegisterRoutes(api, authMW)
	tag.NewHandler(tag.NewService(db)).RegisterRoutes(api, authMW)
	website.NewHandler(website.NewService(db, a.metrics)).RegisterRoutes(api, authMW)

	collectionSvc := collection.NewService(db)
	collection.NewHandler(collectionSvc).RegisterRoutes(api, authMW)
	bookmark.NewHandler(bookmark.NewService(db, collectionSvc, a.metrics)).RegisterRoutes(api, authMW)
	note.NewHandler(note.NewService(db)).RegisterRoutes(api, authMW)

	dashboard.RegisterRoutes(api, db, a.logger, authMW)
	activitylog.RegisterRoutes(api, db, authMW)
}
