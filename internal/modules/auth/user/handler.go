package user

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/middleware"
	pkgredis "github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/redis"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/response"
)

type Handler struct {
	svc *Service
	rc  *pkgredis.Client
}

func NewHandler(svc *Service, rc *pkgredis.Client) *Handler {
	return &Handler{svc: svc, rc: rc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := rg.Group("/users")
	users.POST("/register", h.register)
	users.POST("/login", h.login)

	authed := users.Group("", authMW)
	authed.POST("/logout", h.logout)
	authed.GET("/profile", h.profile)
	authed.PUT("/profile", h.updateProfile)
	authed.PATCH("/profile", h.updateProfile)
	authed.PUT("/settings", h.updateSettings)
	authed.POST("/change-password", h.changePassword)
	authed.GET("/stats", h.stats)
	authed.GET("/info", h.info)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(&dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameExists), errors.Is(err, ErrEmailExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, ErrPasswordMismatch):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, u)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, u, err := h.svc.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrWrongPassword) {
			response.UnauthorizedMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, loginResponse{Token: token, User: u})
}

func (h *Handler) logout(c *gin.Context) {
	raw := middleware.NormalizeToken(c.GetHeader("Authorization"))
	if raw != "" {
		if err := middleware.RevokeToken(c.Request.Context(), h.rc, raw); err != nil {
			response.InternalError(c, err)
			return
		}
	}
	h.svc.RecordLogout(middleware.CurrentUserID(c))
	response.OK(c, gin.H{"message": "已退出登录"})
}

func (h *Handler) profile(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if stats == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, stats)
}

func (h *Handler) info(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{
		"id":          u.ID,
		"username":    u.Username,
		"email":       u.Email,
		"date_joined": u.CreatedAt,
		"last_active": u.LastActive,
	})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.UpdateProfile(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u)
}

func (h *Handler) updateSettings(c *gin.Context) {
	var dto UpdateSettingsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	profile, err := h.svc.UpdateSettings(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if profile == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, profile)
}

func (h *Handler) changePassword(c *gin.Context) {
	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.svc.ChangePassword(middleware.CurrentUserID(c), dto.OldPassword, dto.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, ErrWrongPassword):
			response.BadRequest(c, "旧密码错误")
		case errors.Is(err, ErrSamePassword):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"message": "密码修改成功"})
}
