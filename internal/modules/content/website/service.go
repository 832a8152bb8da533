package website

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/metascrape"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/metrics"
)

var (
	ErrURLExists        = errors.New("该网址已存在")
	ErrCategoryNotFound = errors.New("分类不存在")
	ErrTagNotFound      = errors.New("标签不存在")
)

type Service struct {
	db      *gorm.DB
	fetcher *metascrape.Fetcher
	metrics *metrics.Collector
}

func NewService(db *gorm.DB, mc *metrics.Collector) *Service {
	return &Service{db: db, fetcher: metascrape.NewFetcher(), metrics: mc}
}

// ListQuery applies filters and returns the scoped query for pagination.
func (s *Service) ListQuery(userID string, filter ListFilter) *gorm.DB {
	tx := s.db.Model(&models.WebsiteModel{}).
		Preload("Category").Preload("Tags").
		Where("websites.user_id = ?", userID)

	if filter.CategoryID != "" {
		tx = tx.Where("category_id = ?", filter.CategoryID)
	}
	if filter.TagID != "" {
		tx = tx.Joins("JOIN website_tags ON website_tags.website_id = websites.id").
			Where("website_tags.tag_id = ?", filter.TagID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("title LIKE ? OR url LIKE ? OR description LIKE ?", like, like, like)
	}
	if filter.IsActive != nil {
		tx = tx.Where("is_active = ?", *filter.IsActive)
	}

	switch filter.OrderBy {
	case "visits":
		tx = tx.Order("visit_count DESC")
	case "quality":
		tx = tx.Order("quality_score DESC")
	case "title":
		tx = tx.Order("title ASC")
	default:
		tx = tx.Order("websites.created_at DESC")
	}
	return tx
}

func (s *Service) GetByID(userID, id string) (*models.WebsiteModel, error) {
	var site models.WebsiteModel
	if err := s.db.Preload("Category").Preload("Tags").
		First(&site, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &site, nil
}

func (s *Service) Create(userID string, dto *CreateWebsiteDTO) (*models.WebsiteModel, error) {
	var count int64
	if err := s.db.Model(&models.WebsiteModel{}).
		Where("user_id = ? AND url = ?", userID, dto.URL).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrURLExists
	}

	tags, err := s.resolveTags(userID, dto.TagIDs)
	if err != nil {
		return nil, err
	}
	if dto.CategoryID != nil {
		if err := s.checkCategory(userID, *dto.CategoryID); err != nil {
			return nil, err
		}
	}

	site := models.WebsiteModel{
		Title:       dto.Title,
		URL:         dto.URL,
		Description: dto.Description,
		Favicon:     dto.Favicon,
		UserID:      userID,
		CategoryID:  dto.CategoryID,
		Tags:        tags,
		IsActive:    true,
	}
	if dto.IsActive != nil {
		site.IsActive = *dto.IsActive
	}
	if dto.IsPublic != nil {
		site.IsPublic = *dto.IsPublic
	}
	if dto.QualityScore != nil {
		site.QualityScore = *dto.QualityScore
	}

	if err := s.db.Create(&site).Error; err != nil {
		return nil, err
	}

	s.recordActivity(userID, models.ActivityWebsiteAdd, "添加了网站 "+site.Title, map[string]any{
		"website_id": site.ID,
		"url":        site.URL,
	})
	return &site, nil
}

func (s *Service) Update(userID, id string, dto *UpdateWebsiteDTO) (*models.WebsiteModel, error) {
	site, err := s.GetByID(userID, id)
	if err != nil || site == nil {
		return site, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.URL != nil && *dto.URL != site.URL {
		var count int64
		if err := s.db.Model(&models.WebsiteModel{}).
			Where("user_id = ? AND url = ? AND id <> ?", userID, *dto.URL, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrURLExists
		}
		updates["url"] = *dto.URL
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Favicon != nil {
		updates["favicon"] = *dto.Favicon
	}
	if dto.CategoryID != nil {
		if err := s.checkCategory(userID, *dto.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *dto.CategoryID
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}
	if dto.IsPublic != nil {
		updates["is_public"] = *dto.IsPublic
	}
	if dto.QualityScore != nil {
		updates["quality_score"] = *dto.QualityScore
	}

	if dto.TagIDs != nil {
		tags, err := s.resolveTags(userID, *dto.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(site).Association("Tags").Replace(tags); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(site).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(userID, id)
}

func (s *Service) Delete(userID, id string) error {
	site, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if site == nil {
		return nil
	}
	if err := s.db.Delete(&models.WebsiteModel{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.recordActivity(userID, models.ActivityWebsiteDelete, "删除了网站 "+site.Title, map[string]any{
		"website_id": site.ID,
	})
	return nil
}

// Visit increments the visit counter and stamps the visit time. The owner's
// running visit total advances with it.
func (s *Service) Visit(userID, id string) (*models.WebsiteModel, error) {
	site, err := s.GetByID(userID, id)
	if err != nil || site == nil {
		return site, err
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(site).Updates(map[string]interface{}{
			"visit_count":  gorm.Expr("visit_count + 1"),
			"last_visited": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.UserModel{}).
			Where("id = ?", userID).
			Update("total_visits", gorm.Expr("total_visits + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	site.VisitCount++
	site.LastVisited = &now
	return site, nil
}

// FetchInfo scrapes title, description and favicon from a URL.
func (s *Service) FetchInfo(ctx context.Context, rawURL string) (*metascrape.Info, error) {
	info, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.metrics.RecordMetadataFetch("error")
		return nil, err
	}
	s.metrics.RecordMetadataFetch("ok")
	return info, nil
}

// Stats computes the owner's website summary counters.
func (s *Service) Stats(userID string) (*WebsiteStats, error) {
	stats := &WebsiteStats{}
	owned := func() *gorm.DB {
		return s.db.Model(&models.WebsiteModel{}).Where("user_id = ?", userID)
	}
	if err := owned().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := owned().Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	stats.Inactive = stats.Total - stats.Active
	if err := owned().Select("COALESCE(SUM(visit_count), 0)").Scan(&stats.TotalVisits).Error; err != nil {
		return nil, err
	}
	if err := owned().Select("COALESCE(AVG(quality_score), 0)").Scan(&stats.AvgQuality).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// LogSearch records a search query with its result count.
func (s *Service) LogSearch(userID, query string, results int, ip, ua string) {
	if query == "" {
		return
	}
	s.metrics.RecordSearch()
	s.db.Create(&models.SearchLogModel{
		UserID:       userID,
		Query:        query,
		ResultsCount: results,
		SearchType:   models.SearchGeneral,
		IPAddress:    ip,
		UserAgent:    ua,
	})
}

func (s *Service) checkCategory(userID, categoryID string) error {
	var count int64
	if err := s.db.Model(&models.CategoryModel{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *Service) resolveTags(userID string, ids []string) ([]models.TagModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.TagModel
	if err := s.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, ErrTagNotFound
	}
	return tags, nil
}

func (s *Service) recordActivity(userID string, kind models.ActivityType, desc string, meta map[string]any) {
	s.db.Create(&models.UserActivityModel{
		UserID:       userID,
		ActivityType: kind,
		Description:  desc,
		Metadata:     meta,
	})
}
