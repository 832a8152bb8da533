package website

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
	sites := rg.Group("/websites", authMW)
	sites.GET("", h.list)
	sites.GET("/search", h.search)
	sites.GET("/stats", h.stats)
	sites.GET("/:id", h.get)
	sites.POST("", h.create)
	sites.PUT("/:id", h.update)
	sites.PATCH("/:id", h.update)
	sites.DELETE("/:id", h.delete)
	sites.POST("/:id/visit", h.visit)
	sites.POST("/fetch-info", h.fetchInfo)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	filter := ListFilter{
		CategoryID: c.Query("category"),
		TagID:      c.Query("tag"),
		Search:     c.Query("search"),
		OrderBy:    c.Query("ordering"),
	}
	if raw := c.Query("is_active"); raw != "" {
		active := raw == "true" || raw == "1"
		filter.IsActive = &active
	}

	q := pagination.FromContext(c)
	var sites []models.WebsiteModel
	page, err := pagination.Paginate(h.svc.ListQuery(userID, filter), q, &sites)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	if filter.Search != "" {
		h.svc.LogSearch(userID, filter.Search, int(page.Total), c.ClientIP(), c.Request.UserAgent())
	}
	response.Paged(c, sites, page)
}

func (h *Handler) search(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "缺少搜索关键词")
		return
	}

	q := pagination.FromContext(c)
	var sites []models.WebsiteModel
	page, err := pagination.Paginate(h.svc.ListQuery(userID, ListFilter{Search: query}), q, &sites)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.svc.LogSearch(userID, query, int(page.Total), c.ClientIP(), c.Request.UserAgent())
	response.Paged(c, sites, page)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, stats)
}

// get returns the website and counts the retrieval as a visit.
func (h *Handler) get(c *gin.Context) {
	site, err := h.svc.Visit(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if site == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, site)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateWebsiteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	site, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrURLExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrTagNotFound):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, site)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateWebsiteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	site, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrURLExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrTagNotFound):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	if site == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, site)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) visit(c *gin.Context) {
	site, err := h.svc.Visit(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if site == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, site)
}

func (h *Handler) fetchInfo(c *gin.Context) {
	var dto FetchInfoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	info, err := h.svc.FetchInfo(c.Request.Context(), dto.URL)
	if err != nil {
		response.BadRequest(c, "无法获取网站信息")
		return
	}
	response.OK(c, info)
}
