package collection

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/middleware"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	cols := rg.Group("/bookmarks/collections", authMW)
	cols.GET("", h.list)
	cols.GET("/:id", h.get)
	cols.POST("", h.create)
	cols.PUT("/:id", h.update)
	cols.PATCH("/:id", h.update)
	cols.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	cols, err := h.svc.List(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"data": cols})
}

func (h *Handler) get(c *gin.Context) {
	col, err := h.svc.GetByID(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if col == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, col)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCollectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	col, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, ErrNameExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, col)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateCollectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	col, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if col == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, col)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		if errors.Is(err, ErrDefaultCollection) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
