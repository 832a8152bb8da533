package note

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
)

var ErrWebsiteNotFound = errors.New("网站不存在")

type CreateNoteDTO struct {
	Title     string                 `json:"title" binding:"required"`
	Content   string                 `json:"content" binding:"required"`
	NoteType  models.WebsiteNoteType `json:"note_type"`
	IsPrivate *bool                  `json:"is_private"`
}

type UpdateNoteDTO struct {
	Title     *string                 `json:"title"`
	Content   *string                 `json:"content"`
	NoteType  *models.WebsiteNoteType `json:"note_type"`
	IsPrivate *bool                   `json:"is_private"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns the owner's notes, optionally scoped to one website.
func (s *Service) List(userID, websiteID string) ([]models.WebsiteNoteModel, error) {
	tx := s.db.Where("user_id = ?", userID).Order("created_at DESC")
	if websiteID != "" {
		tx = tx.Where("website_id = ?", websiteID)
	}
	var notes []models.WebsiteNoteModel
	return notes, tx.Find(&notes).Error
}

func (s *Service) GetByID(userID, id string) (*models.WebsiteNoteModel, error) {
	var note models.WebsiteNoteModel
	if err := s.db.First(&note, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (s *Service) Create(userID, websiteID string, dto *CreateNoteDTO) (*models.WebsiteNoteModel, error) {
	var count int64
	if err := s.db.Model(&models.WebsiteModel{}).
		Where("id = ? AND user_id = ?", websiteID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrWebsiteNotFound
	}

	note := models.WebsiteNoteModel{
		WebsiteID: websiteID,
		UserID:    userID,
		Title:     dto.Title,
		Content:   dto.Content,
		NoteType:  models.NoteTypeGeneral,
		IsPrivate: true,
	}
	if dto.NoteType != "" {
		note.NoteType = dto.NoteType
	}
	if dto.IsPrivate != nil {
		note.IsPrivate = *dto.IsPrivate
	}
	return &note, s.db.Create(&note).Error
}

func (s *Service) Update(userID, id string, dto *UpdateNoteDTO) (*models.WebsiteNoteModel, error) {
	note, err := s.GetByID(userID, id)
	if err != nil || note == nil {
		return note, err
	}
	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.NoteType != nil {
		updates["note_type"] = *dto.NoteType
	}
	if dto.IsPrivate != nil {
		updates["is_private"] = *dto.IsPrivate
	}
	return note, s.db.Model(note).Updates(updates).Error
}

func (s *Service) Delete(userID, id string) error {
	return s.db.Delete(&models.WebsiteNoteModel{}, "id = ? AND user_id = ?", id, userID).Error
}
