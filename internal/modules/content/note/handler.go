package note

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
	notes := rg.Group("/websites/:id/notes", authMW)
	notes.GET("", h.list)
	notes.GET("/:noteId", h.get)
	notes.POST("", h.create)
	notes.PUT("/:noteId", h.update)
	notes.PATCH("/:noteId", h.update)
	notes.DELETE("/:noteId", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	notes, err := h.svc.List(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"data": notes})
}

func (h *Handler) get(c *gin.Context) {
	note, err := h.svc.GetByID(middleware.CurrentUserID(c), c.Param("noteId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if note == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, note)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateNoteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	note, err := h.svc.Create(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrWebsiteNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, note)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateNoteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	note, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("noteId"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if note == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, note)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("noteId")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
