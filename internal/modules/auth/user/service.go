package user

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/jwt"
)

var (
	ErrUserNotFound     = errors.New("用户名或密码错误")
	ErrWrongPassword    = errors.New("用户名或密码错误")
	ErrUsernameExists   = errors.New("用户名已被注册")
	ErrEmailExists      = errors.New("邮箱已被注册")
	ErrPasswordMismatch = errors.New("两次输入的密码不一致")
	ErrSamePassword     = errors.New("新密码不能与旧密码相同")
)

type Service struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewService(db *gorm.DB, tokenTTL time.Duration) *Service {
	return &Service{db: db, ttl: tokenTTL}
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Preload("Profile").First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Register creates the user together with its profile row.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	if dto.Password != dto.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	var count int64
	if err := s.db.Model(&models.UserModel{}).
		Where("username = ?", dto.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameExists
	}
	if err := s.db.Model(&models.UserModel{}).
		Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{
		Username:  dto.Username,
		Email:     dto.Email,
		Password:  string(hash),
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Theme:     "light",
		Language:  "zh-cn",
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserProfileModel{
			UserID:                u.ID,
			IsPublic:              true,
			ShowStats:             true,
			EmailNotifications:    true,
			BookmarkNotifications: true,
			EnableRecommendations: true,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(u.ID)
}

// Login verifies credentials and issues a token.
func (s *Service) Login(username, password string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("username = ? OR email = ?", username, username).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, ErrWrongPassword
	}

	now := time.Now()
	s.db.Model(&u).Update("last_active", now)
	u.LastActive = &now

	s.db.Create(&models.UserActivityModel{
		UserID:       u.ID,
		ActivityType: models.ActivityLogin,
		Description:  "登录成功",
	})

	token, err := jwt.Sign(u.ID, s.ttl)
	return token, &u, err
}

func (s *Service) UpdateProfile(id string, dto *UpdateProfileDTO) (*models.UserModel, error) {
	u, err := s.GetByID(id)
	if err != nil || u == nil {
		return u, err
	}

	updates := map[string]interface{}{}
	if dto.FirstName != nil {
		updates["first_name"] = *dto.FirstName
	}
	if dto.LastName != nil {
		updates["last_name"] = *dto.LastName
	}
	if dto.Avatar != nil {
		updates["avatar"] = *dto.Avatar
	}
	if dto.Bio != nil {
		updates["bio"] = *dto.Bio
	}
	if dto.Website != nil {
		updates["website"] = *dto.Website
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}
	if dto.BirthDate != nil {
		updates["birth_date"] = *dto.BirthDate
	}
	if dto.Theme != nil {
		updates["theme"] = *dto.Theme
	}
	if dto.Language != nil {
		updates["language"] = *dto.Language
	}
	if len(updates) > 0 {
		if err := s.db.Model(u).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *Service) UpdateSettings(id string, dto *UpdateSettingsDTO) (*models.UserProfileModel, error) {
	var profile models.UserProfileModel
	if err := s.db.First(&profile, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.IsPublic != nil {
		updates["is_public"] = *dto.IsPublic
	}
	if dto.ShowEmail != nil {
		updates["show_email"] = *dto.ShowEmail
	}
	if dto.ShowStats != nil {
		updates["show_stats"] = *dto.ShowStats
	}
	if dto.EmailNotifications != nil {
		updates["email_notifications"] = *dto.EmailNotifications
	}
	if dto.BookmarkNotifications != nil {
		updates["bookmark_notifications"] = *dto.BookmarkNotifications
	}
	if dto.EnableRecommendations != nil {
		updates["enable_recommendations"] = *dto.EnableRecommendations
	}
	if len(updates) > 0 {
		if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &profile, nil
}

func (s *Service) ChangePassword(id, oldPwd, newPwd string) error {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPwd)); err != nil {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(newPwd)); err == nil {
		return ErrSamePassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&u).Update("password", string(hash)).Error
}

// UserStats summarizes a user's stored content and activity counters.
type UserStats struct {
	WebsitesCount    int64      `json:"websites_count"`
	BookmarksCount   int64      `json:"bookmarks_count"`
	CategoriesCount  int64      `json:"categories_count"`
	TagsCount        int64      `json:"tags_count"`
	CollectionsCount int64      `json:"collections_count"`
	TotalVisits      int        `json:"total_visits"`
	TotalBookmarks   int        `json:"total_bookmarks"`
	LastActive       *time.Time `json:"last_active"`
}

// Stats counts the user's owned entities alongside the running totals
// kept on the user row.
func (s *Service) Stats(id string) (*UserStats, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	stats := &UserStats{
		TotalVisits:    u.TotalVisits,
		TotalBookmarks: u.TotalBookmarks,
		LastActive:     u.LastActive,
	}
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.WebsiteModel{}, &stats.WebsitesCount},
		{&models.BookmarkModel{}, &stats.BookmarksCount},
		{&models.CategoryModel{}, &stats.CategoriesCount},
		{&models.TagModel{}, &stats.TagsCount},
		{&models.CollectionModel{}, &stats.CollectionsCount},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Where("user_id = ?", id).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// RecordLogout writes a logout entry to the activity log.
func (s *Service) RecordLogout(id string) {
	s.db.Create(&models.UserActivityModel{
		UserID:       id,
		ActivityType: models.ActivityLogout,
		Description:  "退出登录",
	})
}
