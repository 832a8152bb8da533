package tag

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
)

var ErrNameExists = errors.New("标签已存在")

type CreateTagDTO struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type UpdateTagDTO struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns the owner's tags with usage counts refreshed from the
// website link table.
func (s *Service) List(userID string) ([]models.TagModel, error) {
	var tags []models.TagModel
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	for i := range tags {
		var count int64
		if err := s.db.Table("website_tags").
			Joins("JOIN websites ON websites.id = website_tags.website_id AND websites.deleted_at IS NULL").
			Where("website_tags.tag_id = ?", tags[i].ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		tags[i].UsageCount = int(count)
	}
	return tags, nil
}

func (s *Service) GetByID(userID, id string) (*models.TagModel, error) {
	var tag models.TagModel
	if err := s.db.First(&tag, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (s *Service) Create(userID string, dto *CreateTagDTO) (*models.TagModel, error) {
	var count int64
	if err := s.db.Model(&models.TagModel{}).
		Where("user_id = ? AND name = ?", userID, dto.Name).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	tag := models.TagModel{Name: dto.Name, Color: dto.Color, UserID: userID}
	if tag.Color == "" {
		tag.Color = "#6c757d"
	}
	return &tag, s.db.Create(&tag).Error
}

func (s *Service) Update(userID, id string, dto *UpdateTagDTO) (*models.TagModel, error) {
	tag, err := s.GetByID(userID, id)
	if err != nil || tag == nil {
		return tag, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Color != nil {
		updates["color"] = *dto.Color
	}
	return tag, s.db.Model(tag).Updates(updates).Error
}

// Delete removes the tag and its website links.
func (s *Service) Delete(userID, id string) error {
	tag, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if tag == nil {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM website_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TagModel{}, "id = ?", id).Error
	})
}
