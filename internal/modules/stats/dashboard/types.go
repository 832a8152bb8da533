package dashboard

import (
	"sort"
	"time"
)

const (
	recentWindowDays = 7
	topCategories    = 10
	topTags          = 20
	topPopular       = 10

	defaultActivityDays  = 30
	defaultActivityLimit = 20
)

// SummaryResponse is the dashboard overview payload.
type SummaryResponse struct {
	WebsitesCount       int64   `json:"websites_count"`
	BookmarksCount      int64   `json:"bookmarks_count"`
	CategoriesCount     int64   `json:"categories_count"`
	TagsCount           int64   `json:"tags_count"`
	CollectionsCount    int64   `json:"collections_count"`
	TotalWebsiteVisits  int64   `json:"total_website_visits"`
	TotalBookmarkVisits int64   `json:"total_bookmark_visits"`
	AvgWebsiteQuality   float64 `json:"avg_website_quality"`
	RecentWebsites      int64   `json:"recent_websites"`
	RecentBookmarks     int64   `json:"recent_bookmarks"`
}

// TrendPoint is one day in a creation-trend series.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type TrendResponse struct {
	WebsiteTrend  []TrendPoint `json:"website_trend"`
	BookmarkTrend []TrendPoint `json:"bookmark_trend"`
}

// GroupedCount is one category or tag with the number of websites linked to it.
type GroupedCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
	Color string `json:"color,omitempty"`
}

type CategoryAnalysisResponse struct {
	Categories []GroupedCount `json:"categories"`
	Tags       []GroupedCount `json:"tags"`
}

// RankedItem is one entry in a popularity ranking. QualityScore is only set
// for websites, IsFavorite only for bookmarks.
type RankedItem struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	URL          string     `json:"url"`
	VisitCount   int        `json:"visit_count"`
	QualityScore *float64   `json:"quality_score,omitempty"`
	IsFavorite   *bool      `json:"is_favorite,omitempty"`
	LastVisited  *time.Time `json:"last_visited"`
}

type PopularResponse struct {
	PopularWebsites  []RankedItem `json:"popular_websites"`
	PopularBookmarks []RankedItem `json:"popular_bookmarks"`
}

// ActivityEntry is one merged feed item.
type ActivityEntry struct {
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
}

func sortGroupedDesc(groups []GroupedCount) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
}

func truncateGrouped(groups []GroupedCount, n int) []GroupedCount {
	if len(groups) > n {
		return groups[:n]
	}
	return groups
}
