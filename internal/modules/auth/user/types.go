package user

import "time"

type RegisterDTO struct {
	Username        string `json:"username" binding:"required,min=3,max=150"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileDTO struct {
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Avatar    *string    `json:"avatar"`
	Bio       *string    `json:"bio"`
	Website   *string    `json:"website"`
	Location  *string    `json:"location"`
	BirthDate *time.Time `json:"birth_date"`
	Theme     *string    `json:"theme"`
	Language  *string    `json:"language"`
}

type UpdateSettingsDTO struct {
	IsPublic              *bool `json:"is_public"`
	ShowEmail             *bool `json:"show_email"`
	ShowStats             *bool `json:"show_stats"`
	EmailNotifications    *bool `json:"email_notifications"`
	BookmarkNotifications *bool `json:"bookmark_notifications"`
	EnableRecommendations *bool `json:"enable_recommendations"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}
