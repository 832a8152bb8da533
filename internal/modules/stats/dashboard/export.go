package dashboard

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
)

// ExportPayload carries a downloadable dump of the owner's content
// together with the dashboard summary.
type ExportPayload struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Type        string                 `json:"type"`
	Summary     *SummaryResponse       `json:"summary"`
	Websites    []models.WebsiteModel  `json:"websites,omitempty"`
	Bookmarks   []models.BookmarkModel `json:"bookmarks,omitempty"`
}

// Export dumps the owner's websites and/or bookmarks as JSON. exportType
// is one of "websites", "bookmarks" or "all" (the default).
func (s *Service) Export(ownerID, exportType string) (*ExportPayload, error) {
	if exportType == "" {
		exportType = "all"
	}
	switch exportType {
	case "websites", "bookmarks", "all":
	default:
		return nil, fmt.Errorf("%w: unknown export type %q", ErrInvalidParameter, exportType)
	}

	summary, err := s.Summary(ownerID)
	if err != nil {
		return nil, err
	}
	payload := &ExportPayload{
		GeneratedAt: time.Now(),
		Type:        exportType,
		Summary:     summary,
	}

	if exportType == "websites" || exportType == "all" {
		if err := s.db.Preload("Category").Preload("Tags").
			Where("user_id = ?", ownerID).
			Order("created_at DESC").
			Find(&payload.Websites).Error; err != nil {
			return nil, err
		}
	}
	if exportType == "bookmarks" || exportType == "all" {
		if err := s.db.Preload("Collection").
			Where("user_id = ?", ownerID).
			Order("created_at DESC").
			Find(&payload.Bookmarks).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Create(&models.UserActivityModel{
		UserID:       ownerID,
		ActivityType: models.ActivityExport,
		Description:  "导出了数据",
		Metadata:     map[string]any{"type": exportType},
	}).Error; err != nil {
		s.log.Warn("export activity record failed", zap.Error(err))
	}
	return payload, nil
}
