package bookmark

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/content/collection"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/metrics"
)

var (
	ErrURLExists          = errors.New("该书签已存在")
	ErrCollectionNotFound = errors.New("收藏夹不存在")
	ErrMissingCollection  = errors.New("collection 参数缺失")
	ErrUnknownAction      = errors.New("不支持的批量操作")
)

type CreateBookmarkDTO struct {
	Title        string  `json:"title" binding:"required"`
	URL          string  `json:"url" binding:"required,url"`
	Description  string  `json:"description"`
	Notes        string  `json:"notes"`
	Thumbnail    string  `json:"thumbnail"`
	CollectionID *string `json:"collection"`
	IsFavorite   *bool   `json:"is_favorite"`
}

type UpdateBookmarkDTO struct {
	Title        *string `json:"title"`
	URL          *string `json:"url"`
	Description  *string `json:"description"`
	Notes        *string `json:"notes"`
	Thumbnail    *string `json:"thumbnail"`
	CollectionID *string `json:"collection"`
	IsFavorite   *bool   `json:"is_favorite"`
	IsArchived   *bool   `json:"is_archived"`
}

// BulkOperationDTO names the bookmarks a bulk action applies to.
type BulkOperationDTO struct {
	IDs          []string `json:"ids" binding:"required,min=1"`
	Action       string   `json:"action" binding:"required,oneof=delete archive unarchive favorite unfavorite move"`
	CollectionID *string  `json:"collection"`
}

// BookmarkStats summarizes the owner's bookmarks.
type BookmarkStats struct {
	Total       int64 `json:"total"`
	Favorites   int64 `json:"favorites"`
	Archived    int64 `json:"archived"`
	TotalVisits int64 `json:"total_visits"`
}

// ListFilter narrows the bookmark listing.
type ListFilter struct {
	CollectionID string
	Search       string
	Favorite     *bool
	Archived     *bool
	OrderBy      string
}

type Service struct {
	db      *gorm.DB
	cols    *collection.Service
	metrics *metrics.Collector
}

func NewService(db *gorm.DB, cols *collection.Service, mc *metrics.Collector) *Service {
	return &Service{db: db, cols: cols, metrics: mc}
}

// ListQuery applies filters and returns the scoped query for pagination.
func (s *Service) ListQuery(userID string, filter ListFilter) *gorm.DB {
	tx := s.db.Model(&models.BookmarkModel{}).
		Preload("Collection").
		Where("user_id = ?", userID)

	if filter.CollectionID != "" {
		tx = tx.Where("collection_id = ?", filter.CollectionID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("title LIKE ? OR url LIKE ? OR description LIKE ?", like, like, like)
	}
	if filter.Favorite != nil {
		tx = tx.Where("is_favorite = ?", *filter.Favorite)
	}
	if filter.Archived != nil {
		tx = tx.Where("is_archived = ?", *filter.Archived)
	}

	switch filter.OrderBy {
	case "visits":
		tx = tx.Order("visit_count DESC")
	case "title":
		tx = tx.Order("title ASC")
	default:
		tx = tx.Order("created_at DESC")
	}
	return tx
}

func (s *Service) GetByID(userID, id string) (*models.BookmarkModel, error) {
	var bm models.BookmarkModel
	if err := s.db.Preload("Collection").
		First(&bm, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bm, nil
}

// Create stores a bookmark. Without an explicit collection it lands in the
// owner's default collection, which is created on first use.
func (s *Service) Create(userID string, dto *CreateBookmarkDTO) (*models.BookmarkModel, error) {
	var count int64
	if err := s.db.Model(&models.BookmarkModel{}).
		Where("user_id = ? AND url = ?", userID, dto.URL).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrURLExists
	}

	collectionID, err := s.resolveCollection(userID, dto.CollectionID)
	if err != nil {
		return nil, err
	}

	bm := models.BookmarkModel{
		Title:        dto.Title,
		URL:          dto.URL,
		Description:  dto.Description,
		Notes:        dto.Notes,
		Thumbnail:    dto.Thumbnail,
		CollectionID: collectionID,
		UserID:       userID,
	}
	if dto.IsFavorite != nil {
		bm.IsFavorite = *dto.IsFavorite
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bm).Error; err != nil {
			return err
		}
		return tx.Model(&models.UserModel{}).
			Where("id = ?", userID).
			Update("total_bookmarks", gorm.Expr("total_bookmarks + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	s.db.Create(&models.UserActivityModel{
		UserID:       userID,
		ActivityType: models.ActivityBookmarkAdd,
		Description:  "添加了书签 " + bm.Title,
		Metadata:     map[string]any{"bookmark_id": bm.ID, "url": bm.URL},
	})
	return &bm, nil
}

func (s *Service) Update(userID, id string, dto *UpdateBookmarkDTO) (*models.BookmarkModel, error) {
	bm, err := s.GetByID(userID, id)
	if err != nil || bm == nil {
		return bm, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.URL != nil && *dto.URL != bm.URL {
		var count int64
		if err := s.db.Model(&models.BookmarkModel{}).
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
	if dto.Notes != nil {
		updates["notes"] = *dto.Notes
	}
	if dto.Thumbnail != nil {
		updates["thumbnail"] = *dto.Thumbnail
	}
	if dto.CollectionID != nil {
		col, err := s.cols.GetByID(userID, *dto.CollectionID)
		if err != nil {
			return nil, err
		}
		if col == nil {
			return nil, ErrCollectionNotFound
		}
		updates["collection_id"] = *dto.CollectionID
	}
	if dto.IsFavorite != nil {
		updates["is_favorite"] = *dto.IsFavorite
	}
	if dto.IsArchived != nil {
		updates["is_archived"] = *dto.IsArchived
	}
	return bm, s.db.Model(bm).Updates(updates).Error
}

func (s *Service) Delete(userID, id string) error {
	bm, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if bm == nil {
		return nil
	}
	if err := s.db.Delete(&models.BookmarkModel{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.db.Create(&models.UserActivityModel{
		UserID:       userID,
		ActivityType: models.ActivityBookmarkDelete,
		Description:  "删除了书签 " + bm.Title,
		Metadata:     map[string]any{"bookmark_id": bm.ID},
	})
	return nil
}

// Visit increments the visit counter and stamps the visit time.
func (s *Service) Visit(userID, id string) (*models.BookmarkModel, error) {
	bm, err := s.GetByID(userID, id)
	if err != nil || bm == nil {
		return bm, err
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(bm).Updates(map[string]interface{}{
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

	bm.VisitCount++
	bm.LastVisited = &now
	return bm, nil
}

// ToggleFavorite flips the favorite flag.
func (s *Service) ToggleFavorite(userID, id string) (*models.BookmarkModel, error) {
	bm, err := s.GetByID(userID, id)
	if err != nil || bm == nil {
		return bm, err
	}
	bm.IsFavorite = !bm.IsFavorite
	return bm, s.db.Model(bm).Update("is_favorite", bm.IsFavorite).Error
}

// ToggleArchive flips the archived flag.
func (s *Service) ToggleArchive(userID, id string) (*models.BookmarkModel, error) {
	bm, err := s.GetByID(userID, id)
	if err != nil || bm == nil {
		return bm, err
	}
	bm.IsArchived = !bm.IsArchived
	return bm, s.db.Model(bm).Update("is_archived", bm.IsArchived).Error
}

// BulkOperate dispatches one bulk action over the named bookmarks and
// reports how many rows it touched.
func (s *Service) BulkOperate(userID string, dto *BulkOperationDTO) (int64, error) {
	switch dto.Action {
	case "delete":
		return s.BulkDelete(userID, dto.IDs)
	case "archive":
		return s.bulkSetFlag(userID, dto.IDs, "is_archived", true)
	case "unarchive":
		return s.bulkSetFlag(userID, dto.IDs, "is_archived", false)
	case "favorite":
		return s.bulkSetFlag(userID, dto.IDs, "is_favorite", true)
	case "unfavorite":
		return s.bulkSetFlag(userID, dto.IDs, "is_favorite", false)
	case "move":
		if dto.CollectionID == nil {
			return 0, ErrMissingCollection
		}
		return s.BulkMove(userID, dto.IDs, *dto.CollectionID)
	}
	return 0, ErrUnknownAction
}

func (s *Service) bulkSetFlag(userID string, ids []string, column string, value bool) (int64, error) {
	res := s.db.Model(&models.BookmarkModel{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Update(column, value)
	return res.RowsAffected, res.Error
}

// BulkDelete removes all named bookmarks owned by userID and reports how
// many were removed.
func (s *Service) BulkDelete(userID string, ids []string) (int64, error) {
	res := s.db.Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&models.BookmarkModel{})
	return res.RowsAffected, res.Error
}

// BulkMove reassigns all named bookmarks to one collection.
func (s *Service) BulkMove(userID string, ids []string, collectionID string) (int64, error) {
	col, err := s.cols.GetByID(userID, collectionID)
	if err != nil {
		return 0, err
	}
	if col == nil {
		return 0, ErrCollectionNotFound
	}
	res := s.db.Model(&models.BookmarkModel{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Update("collection_id", collectionID)
	return res.RowsAffected, res.Error
}

// Stats computes the owner's bookmark summary counters.
func (s *Service) Stats(userID string) (*BookmarkStats, error) {
	stats := &BookmarkStats{}
	owned := func() *gorm.DB {
		return s.db.Model(&models.BookmarkModel{}).Where("user_id = ?", userID)
	}
	if err := owned().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := owned().Where("is_favorite = ?", true).Count(&stats.Favorites).Error; err != nil {
		return nil, err
	}
	if err := owned().Where("is_archived = ?", true).Count(&stats.Archived).Error; err != nil {
		return nil, err
	}
	if err := owned().Select("COALESCE(SUM(visit_count), 0)").Scan(&stats.TotalVisits).Error; err != nil {
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

func (s *Service) resolveCollection(userID string, requested *string) (string, error) {
	if requested == nil {
		col, err := s.cols.EnsureDefault(userID)
		if err != nil {
			return "", err
		}
		return col.ID, nil
	}
	col, err := s.cols.GetByID(userID, *requested)
	if err != nil {
		return "", err
	}
	if col == nil {
		return "", ErrCollectionNotFound
	}
	return col.ID, nil
}
