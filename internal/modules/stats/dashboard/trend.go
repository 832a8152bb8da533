package dashboard

import (
	"fmt"
	"time"
)

const (
	defaultTrendDays = 30
	maxTrendDays     = 365

	dateLayout = "2006-01-02"
)

type createdRow struct {
	CreatedAt time.Time
}

// BuildTrend produces one dense per-day series per entity kind covering the
// last days days, oldest first. Days without activity appear with a zero
// count. A single query per kind fetches the window; bucketing happens in
// memory.
func (s *Service) BuildTrend(ownerID string, days int) (*TrendResponse, error) {
	if days < 1 || days > maxTrendDays {
		return nil, fmt.Errorf("%w: days=%d", ErrInvalidRange, days)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	start := today.AddDate(0, 0, -(days - 1))

	websiteSeries, err := s.dailySeries(KindWebsite, ownerID, start, days)
	if err != nil {
		return nil, err
	}
	bookmarkSeries, err := s.dailySeries(KindBookmark, ownerID, start, days)
	if err != nil {
		return nil, err
	}

	return &TrendResponse{WebsiteTrend: websiteSeries, BookmarkTrend: bookmarkSeries}, nil
}

func (s *Service) dailySeries(kind EntityKind, ownerID string, start time.Time, days int) ([]TrendPoint, error) {
	policy := kindPolicies[kind]

	var rows []createdRow
	if err := s.db.Model(policy.model()).
		Select("created_at").
		Where("user_id = ? AND created_at >= ?", ownerID, start).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]int64, days)
	for _, row := range rows {
		buckets[row.CreatedAt.Format(dateLayout)]++
	}

	series := make([]TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format(dateLayout)
		series = append(series, TrendPoint{Date: day, Count: buckets[day]})
	}
	return series, nil
}
