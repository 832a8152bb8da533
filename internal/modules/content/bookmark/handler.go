package bookmark

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/middleware"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/pagination"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	bms := rg.Group("/bookmarks", authMW)
	bms.GET("", h.list)
	bms.GET("/search", h.search)
	bms.GET("/stats", h.stats)
	bms.GET("/:id", h.get)
	bms.POST("", h.create)
	bms.PUT("/:id", h.update)
	bms.PATCH("/:id", h.update)
	bms.DELETE("/:id", h.delete)
	bms.POST("/:id/visit", h.visit)
	bms.POST("/:id/toggle-favorite", h.toggleFavorite)
	bms.POST("/:id/toggle-archive", h.toggleArchive)
	bms.POST("/bulk-operations", h.bulkOperations)
}

func (h *Handler) list(c *gin.Context) {
	filter := ListFilter{
		CollectionID: c.Query("collection"),
		Search:       c.Query("search"),
		OrderBy:      c.Query("ordering"),
	}
	if raw := c.Query("is_favorite"); raw != "" {
		fav := raw == "true" || raw == "1"
		filter.Favorite = &fav
	}
	if raw := c.Query("is_archived"); raw != "" {
		archived := raw == "true" || raw == "1"
		filter.Archived = &archived
	}

	q := pagination.FromContext(c)
	var bms []models.BookmarkModel
	page, err := pagination.Paginate(h.svc.ListQuery(middleware.CurrentUserID(c), filter), q, &bms)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, bms, page)
}

func (h *Handler) get(c *gin.Context) {
	bm, err := h.svc.GetByID(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if bm == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, bm)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateBookmarkDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	bm, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrURLExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, ErrCollectionNotFound):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, bm)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateBookmarkDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	bm, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrURLExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, ErrCollectionNotFound):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	if bm == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, bm)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) visit(c *gin.Context) {
	bm, err := h.svc.Visit(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if bm == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, bm)
}

func (h *Handler) toggleFavorite(c *gin.Context) {
	bm, err := h.svc.ToggleFavorite(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if bm == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, bm)
}

func (h *Handler) toggleArchive(c *gin.Context) {
	bm, err := h.svc.ToggleArchive(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if bm == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, bm)
}

func (h *Handler) search(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "缺少搜索关键词")
		return
	}

	q := pagination.FromContext(c)
	var bms []models.BookmarkModel
	page, err := pagination.Paginate(h.svc.ListQuery(userID, ListFilter{Search: query}), q, &bms)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.svc.LogSearch(userID, query, int(page.Total), c.ClientIP(), c.Request.UserAgent())
	response.Paged(c, bms, page)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, stats)
}

func (h *Handler) bulkOperations(c *gin.Context) {
	var dto BulkOperationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	affected, err := h.svc.BulkOperate(middleware.CurrentUserID(c), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrCollectionNotFound), errors.Is(err, ErrMissingCollection), errors.Is(err, ErrUnknownAction):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"affected": affected})
}
