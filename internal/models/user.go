package models

import "time"

// UserModel represents a registered account. All content entities are scoped
// to exactly one user.
type UserModel struct {
	Base
	Username  string     `json:"username"   gorm:"uniqueIndex;not null"`
	Email     string     `json:"email"      gorm:"uniqueIndex;not null"`
	Password  string     `json:"-"          gorm:"not null"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Avatar    string     `json:"avatar"`
	Bio       string     `json:"bio"        gorm:"type:text"`
	Website   string     `json:"website"`
	Location  string     `json:"location"`
	BirthDate *time.Time `json:"birth_date"`

	// Preferences
	Theme    string `json:"theme"    gorm:"default:light"`
	Language string `json:"language" gorm:"default:zh-cn"`

	// Denormalized counters maintained by the content services.
	TotalBookmarks int        `json:"total_bookmarks" gorm:"default:0"`
	TotalVisits    int        `json:"total_visits"    gorm:"default:0"`
	LastActive     *time.Time `json:"last_active"`

	Profile *UserProfileModel `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string { return "users" }

// UserProfileModel carries privacy/notification preferences, created
// alongside the user at registration.
type UserProfileModel struct {
	Base
	UserID string `json:"-" gorm:"uniqueIndex;not null"`

	IsPublic  bool `json:"is_public"`
	ShowEmail bool `json:"show_email"`
	ShowStats bool `json:"show_stats"`

	EmailNotifications    bool `json:"email_notifications"`
	BookmarkNotifications bool `json:"bookmark_notifications"`

	// Recommendation preferences are stored but no recommendation is ever
	// computed; the original system reserved these fields without an
	// implementation.
	EnableRecommendations bool           `json:"enable_recommendations"`
	RecommendationWeight  map[string]any `json:"recommendation_weight"  gorm:"serializer:json;type:text"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }
