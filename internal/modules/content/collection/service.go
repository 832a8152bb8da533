package collection

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
)

var (
	ErrNameExists        = errors.New("收藏夹已存在")
	ErrDefaultCollection = errors.New("默认收藏夹不能删除")
)

const defaultCollectionName = "默认收藏夹"

type CreateCollectionDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

type UpdateCollectionDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns the owner's collections with bookmark counts refreshed.
func (s *Service) List(userID string) ([]models.CollectionModel, error) {
	var cols []models.CollectionModel
	if err := s.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&cols).Error; err != nil {
		return nil, err
	}
	for i := range cols {
		var count int64
		if err := s.db.Model(&models.BookmarkModel{}).
			Where("collection_id = ?", cols[i].ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		cols[i].BookmarkCount = int(count)
	}
	return cols, nil
}

func (s *Service) GetByID(userID, id string) (*models.CollectionModel, error) {
	var col models.CollectionModel
	if err := s.db.First(&col, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &col, nil
}

// EnsureDefault returns the owner's default collection, creating it on first
// use.
func (s *Service) EnsureDefault(userID string) (*models.CollectionModel, error) {
	var col models.CollectionModel
	err := s.db.First(&col, "user_id = ? AND is_default = ?", userID, true).Error
	if err == nil {
		return &col, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	col = models.CollectionModel{Name: defaultCollectionName, UserID: userID, IsDefault: true}
	return &col, s.db.Create(&col).Error
}

func (s *Service) Create(userID string, dto *CreateCollectionDTO) (*models.CollectionModel, error) {
	var count int64
	if err := s.db.Model(&models.CollectionModel{}).
		Where("user_id = ? AND name = ?", userID, dto.Name).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	col := models.CollectionModel{
		Name:        dto.Name,
		Description: dto.Description,
		Color:       dto.Color,
		Icon:        dto.Icon,
		UserID:      userID,
	}
	return &col, s.db.Create(&col).Error
}

func (s *Service) Update(userID, id string, dto *UpdateCollectionDTO) (*models.CollectionModel, error) {
	col, err := s.GetByID(userID, id)
	if err != nil || col == nil {
		return col, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Color != nil {
		updates["color"] = *dto.Color
	}
	if dto.Icon != nil {
		updates["icon"] = *dto.Icon
	}
	return col, s.db.Model(col).Updates(updates).Error
}

// Delete removes a collection; its bookmarks move to the default collection.
// The default collection itself cannot be deleted.
func (s *Service) Delete(userID, id string) error {
	col, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if col == nil {
		return nil
	}
	if col.IsDefault {
		return ErrDefaultCollection
	}

	fallback, err := s.EnsureDefault(userID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BookmarkModel{}).
			Where("collection_id = ?", id).
			Update("collection_id", fallback.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CollectionModel{}, "id = ?", id).Error
	})
}
