package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/testutil"
)

func TestBuildTrend_DenseSeries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	testutil.CreateWebsite(t, db, user.ID, "today", "https://a.example.com", testutil.WebsiteOpts{})
	testutil.CreateWebsite(t, db, user.ID, "yesterday-1", "https://b.example.com", testutil.WebsiteOpts{
		CreatedAt: time.Now().AddDate(0, 0, -1),
	})
	testutil.CreateWebsite(t, db, user.ID, "yesterday-2", "https://c.example.com", testutil.WebsiteOpts{
		CreatedAt: time.Now().AddDate(0, 0, -1),
	})

	trend, err := svc.BuildTrend(user.ID, 7)
	require.NoError(t, err)

	require.Len(t, trend.WebsiteTrend, 7)
	require.Len(t, trend.BookmarkTrend, 7)

	for i := 1; i < len(trend.WebsiteTrend); i++ {
		assert.Less(t, trend.WebsiteTrend[i-1].Date, trend.WebsiteTrend[i].Date)
	}

	last := trend.WebsiteTrend[6]
	prev := trend.WebsiteTrend[5]
	assert.Equal(t, time.Now().Format(dateLayout), last.Date)
	assert.EqualValues(t, 1, last.Count)
	assert.EqualValues(t, 2, prev.Count)

	for _, point := range trend.WebsiteTrend[:5] {
		assert.Zero(t, point.Count)
	}
	for _, point := range trend.BookmarkTrend {
		assert.Zero(t, point.Count)
	}
}

func TestBuildTrend_ExcludesOutsideWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	testutil.CreateWebsite(t, db, user.ID, "old", "https://old.example.com", testutil.WebsiteOpts{
		CreatedAt: time.Now().AddDate(0, 0, -40),
	})

	trend, err := svc.BuildTrend(user.ID, 30)
	require.NoError(t, err)
	for _, point := range trend.WebsiteTrend {
		assert.Zero(t, point.Count)
	}
}

func TestBuildTrend_InvalidRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	for _, days := range []int{0, -5, maxTrendDays + 1} {
		_, err := svc.BuildTrend(user.ID, days)
		require.ErrorIs(t, err, ErrInvalidRange, "days=%d", days)
	}
}
