// Package activitylog exposes the per-user audit trail written by the
// content services.
package activitylog

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/middleware"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/pagination"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/response"
)

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, authMW gin.HandlerFunc) {
	rg.GET("/activities", authMW, func(c *gin.Context) {
		tx := db.Model(&models.UserActivityModel{}).
			Where("user_id = ?", middleware.CurrentUserID(c)).
			Order("created_at DESC")
		if kind := c.Query("type"); kind != "" {
			tx = tx.Where("activity_type = ?", kind)
		}

		q := pagination.FromContext(c)
		var activities []models.UserActivityModel
		page, err := pagination.Paginate(tx, q, &activities)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.Paged(c, activities, page)
	})

	rg.GET("/search-logs", authMW, func(c *gin.Context) {
		tx := db.Model(&models.SearchLogModel{}).
			Where("user_id = ?", middleware.CurrentUserID(c)).
			Order("created_at DESC")

		q := pagination.FromContext(c)
		var logs []models.SearchLogModel
		page, err := pagination.Paginate(tx, q, &logs)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.Paged(c, logs, page)
	})
}
