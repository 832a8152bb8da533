package category

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
)

var (
	ErrNameExists     = errors.New("同级分类下已存在同名分类")
	ErrParentNotFound = errors.New("父分类不存在")
	ErrParentCycle    = errors.New("分类不能作为自身的子分类")
)

type CreateCategoryDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	ParentID    *string `json:"parent"`
	SortOrder   *int    `json:"sort_order"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	ParentID    *string `json:"parent"`
	SortOrder   *int    `json:"sort_order"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns all categories owned by userID with children preloaded and
// website counts refreshed.
func (s *Service) List(userID string) ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	if err := s.db.Preload("Children").
		Where("user_id = ?", userID).
		Order("sort_order ASC, created_at ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	for i := range cats {
		var count int64
		if err := s.db.Model(&models.WebsiteModel{}).
			Where("category_id = ?", cats[i].ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		cats[i].WebsiteCount = int(count)
	}
	return cats, nil
}

func (s *Service) GetByID(userID, id string) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.Preload("Children").
		First(&cat, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Create(userID string, dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	if dto.ParentID != nil {
		parent, err := s.GetByID(userID, *dto.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
	}

	dup := s.db.Model(&models.CategoryModel{}).
		Where("user_id = ? AND name = ?", userID, dto.Name)
	if dto.ParentID != nil {
		dup = dup.Where("parent_id = ?", *dto.ParentID)
	} else {
		dup = dup.Where("parent_id IS NULL")
	}
	var count int64
	if err := dup.Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	cat := models.CategoryModel{
		Name:        dto.Name,
		Description: dto.Description,
		Color:       dto.Color,
		Icon:        dto.Icon,
		ParentID:    dto.ParentID,
		UserID:      userID,
	}
	if cat.Color == "" {
		cat.Color = "#007bff"
	}
	if dto.SortOrder != nil {
		cat.SortOrder = *dto.SortOrder
	}
	return &cat, s.db.Create(&cat).Error
}

func (s *Service) Update(userID, id string, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetByID(userID, id)
	if err != nil || cat == nil {
		return cat, err
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
	if dto.SortOrder != nil {
		updates["sort_order"] = *dto.SortOrder
	}
	if dto.ParentID != nil {
		if *dto.ParentID == id {
			return nil, ErrParentCycle
		}
		parent, err := s.GetByID(userID, *dto.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
		updates["parent_id"] = *dto.ParentID
	}
	return cat, s.db.Model(cat).Updates(updates).Error
}

// Delete removes the category; linked websites are detached and child
// categories promoted to the top level.
func (s *Service) Delete(userID, id string) error {
	cat, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WebsiteModel{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.CategoryModel{}).
			Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CategoryModel{}, "id = ?", id).Error
	})
}
