package dashboard

import (
	"fmt"
	"time"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
)

// Metric names a single rollup value. The set is closed; requesting anything
// else is a contract violation surfaced as ErrInvalidMetric.
type Metric string

const (
	MetricWebsitesCount      Metric = "websites_count"
	MetricBookmarksCount     Metric = "bookmarks_count"
	MetricCategoriesCount    Metric = "categories_count"
	MetricTagsCount          Metric = "tags_count"
	MetricCollectionsCount   Metric = "collections_count"
	MetricTotalWebsiteVisits Metric = "total_website_visits"
	MetricTotalBookmarkVisit Metric = "total_bookmark_visits"
	MetricAvgWebsiteQuality  Metric = "avg_website_quality"
)

// StatRollup maps metric names to their computed values. Counts and sums are
// whole numbers stored as float64; averages are fractional.
type StatRollup map[string]float64

type aggOp int

const (
	aggCount aggOp = iota
	aggSum
	aggAvg
)

type metricSpec struct {
	op    aggOp
	model func() interface{}
	field string
	// recentKey, when set, names the additional windowed count emitted when
	// a recent window is requested.
	recentKey string
}

var metricSpecs = map[Metric]metricSpec{
	MetricWebsitesCount:      {op: aggCount, model: func() interface{} { return &models.WebsiteModel{} }, recentKey: "recent_websites"},
	MetricBookmarksCount:     {op: aggCount, model: func() interface{} { return &models.BookmarkModel{} }, recentKey: "recent_bookmarks"},
	MetricCategoriesCount:    {op: aggCount, model: func() interface{} { return &models.CategoryModel{} }},
	MetricTagsCount:          {op: aggCount, model: func() interface{} { return &models.TagModel{} }},
	MetricCollectionsCount:   {op: aggCount, model: func() interface{} { return &models.CollectionModel{} }},
	MetricTotalWebsiteVisits: {op: aggSum, model: func() interface{} { return &models.WebsiteModel{} }, field: "visit_count"},
	MetricTotalBookmarkVisit: {op: aggSum, model: func() interface{} { return &models.BookmarkModel{} }, field: "visit_count"},
	MetricAvgWebsiteQuality:  {op: aggAvg, model: func() interface{} { return &models.WebsiteModel{} }, field: "quality_score"},
}

// AllMetrics lists every supported metric in response order.
var AllMetrics = []Metric{
	MetricWebsitesCount,
	MetricBookmarksCount,
	MetricCategoriesCount,
	MetricTagsCount,
	MetricCollectionsCount,
	MetricTotalWebsiteVisits,
	MetricTotalBookmarkVisit,
	MetricAvgWebsiteQuality,
}

// ComputeRollup evaluates the requested metrics for one owner. Empty
// collections yield zero values, never an error. When recentWindowDays is
// positive, count metrics that track creatable entities additionally emit a
// count restricted to created_at >= now - recentWindowDays.
func (s *Service) ComputeRollup(ownerID string, metrics []Metric, recentWindowDays int) (StatRollup, error) {
	rollup := StatRollup{}
	var cutoff time.Time
	if recentWindowDays > 0 {
		cutoff = time.Now().AddDate(0, 0, -recentWindowDays)
	}

	for _, metric := range metrics {
		spec, ok := metricSpecs[metric]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMetric, metric)
		}

		scoped := s.db.Model(spec.model()).Where("user_id = ?", ownerID)
		switch spec.op {
		case aggCount:
			var count int64
			if err := scoped.Count(&count).Error; err != nil {
				return nil, err
			}
			rollup[string(metric)] = float64(count)
		case aggSum:
			var total float64
			if err := scoped.Select("COALESCE(SUM(" + spec.field + "), 0)").Scan(&total).Error; err != nil {
				return nil, err
			}
			rollup[string(metric)] = total
		case aggAvg:
			var avg float64
			if err := scoped.Select("COALESCE(AVG(" + spec.field + "), 0)").Scan(&avg).Error; err != nil {
				return nil, err
			}
			rollup[string(metric)] = avg
		}

		if spec.recentKey != "" && recentWindowDays > 0 {
			var recent int64
			if err := s.db.Model(spec.model()).
				Where("user_id = ? AND created_at >= ?", ownerID, cutoff).
				Count(&recent).Error; err != nil {
				return nil, err
			}
			rollup[spec.recentKey] = float64(recent)
		}
	}

	return rollup, nil
}

// Summary computes the dashboard summary: all base rollups plus 7-day recent
// creation counts.
func (s *Service) Summary(ownerID string) (*SummaryResponse, error) {
	rollup, err := s.ComputeRollup(ownerID, AllMetrics, recentWindowDays)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		WebsitesCount:       int64(rollup[string(MetricWebsitesCount)]),
		BookmarksCount:      int64(rollup[string(MetricBookmarksCount)]),
		CategoriesCount:     int64(rollup[string(MetricCategoriesCount)]),
		TagsCount:           int64(rollup[string(MetricTagsCount)]),
		CollectionsCount:    int64(rollup[string(MetricCollectionsCount)]),
		TotalWebsiteVisits:  int64(rollup[string(MetricTotalWebsiteVisits)]),
		TotalBookmarkVisits: int64(rollup[string(MetricTotalBookmarkVisit)]),
		AvgWebsiteQuality:   rollup[string(MetricAvgWebsiteQuality)],
		RecentWebsites:      int64(rollup["recent_websites"]),
		RecentBookmarks:     int64(rollup["recent_bookmarks"]),
	}, nil
}

// CategoryAnalysis ranks the owner's categories and tags by how many of the
// owner's websites reference them: top 10 categories, top 20 tags.
func (s *Service) CategoryAnalysis(ownerID string) (*CategoryAnalysisResponse, error) {
	var categories []models.CategoryModel
	if err := s.db.Where("user_id = ?", ownerID).Find(&categories).Error; err != nil {
		return nil, err
	}

	categoryStats := make([]GroupedCount, 0, len(categories))
	for _, cat := range categories {
		var count int64
		if err := s.db.Model(&models.WebsiteModel{}).
			Where("user_id = ? AND category_id = ?", ownerID, cat.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		categoryStats = append(categoryStats, GroupedCount{Name: cat.Name, Count: count, Color: cat.Color})
	}
	sortGroupedDesc(categoryStats)
	categoryStats = truncateGrouped(categoryStats, topCategories)

	var tags []models.TagModel
	if err := s.db.Where("user_id = ?", ownerID).Find(&tags).Error; err != nil {
		return nil, err
	}

	tagStats := make([]GroupedCount, 0, len(tags))
	for _, tag := range tags {
		var count int64
		if err := s.db.Table("website_tags").
			Joins("JOIN websites ON websites.id = website_tags.website_id AND websites.deleted_at IS NULL").
			Where("website_tags.tag_id = ? AND websites.user_id = ?", tag.ID, ownerID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		tagStats = append(tagStats, GroupedCount{Name: tag.Name, Count: count, Color: tag.Color})
	}
	sortGroupedDesc(tagStats)
	tagStats = truncateGrouped(tagStats, topTags)

	return &CategoryAnalysisResponse{Categories: categoryStats, Tags: tagStats}, nil
}
