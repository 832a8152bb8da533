package website

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/metrics"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/pagination"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/testutil"
)

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	user := testutil.CreateUser(t, db, "alice")
	cat := testutil.CreateCategory(t, db, user.ID, "工具")
	tag := testutil.CreateTag(t, db, user.ID, "golang")

	site, err := svc.Create(user.ID, &CreateWebsiteDTO{
		Title:      "Go",
		URL:        "https://go.dev",
		CategoryID: &cat.ID,
		TagIDs:     []string{tag.ID},
	})
	require.NoError(t, err)
	assert.True(t, site.IsActive)
	require.Len(t, site.Tags, 1)

	var activityCount int64
	require.NoError(t, db.Model(&models.UserActivityModel{}).
		Where("user_id = ? AND activity_type = ?", user.ID, models.ActivityWebsiteAdd).
		Count(&activityCount).Error)
	assert.EqualValues(t, 1, activityCount)
}

func TestCreate_DuplicateURL(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	user := testutil.CreateUser(t, db, "alice")

	_, err := svc.Create(user.ID, &CreateWebsiteDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, &CreateWebsiteDTO{Title: "Go again", URL: "https://go.dev"})
	require.ErrorIs(t, err, ErrURLExists)
}

func TestCreate_SameURLDifferentOwners(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	_, err := svc.Create(alice.ID, &CreateWebsiteDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, &CreateWebsiteDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)
}

func TestCreate_UnknownCategoryOrTag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	user := testutil.CreateUser(t, db, "alice")

	missing := "00000000-0000-0000-0000-000000000000"
	_, err := svc.Create(user.ID, &CreateWebsiteDTO{Title: "Go", URL: "https://go.dev", CategoryID: &missing})
	require.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = svc.Create(user.ID, &CreateWebsiteDTO{Title: "Go", URL: "https://go.dev", TagIDs: []string{missing}})
	require.ErrorIs(t, err, ErrTagNotFound)
}

func TestVisit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	user := testutil.CreateUser(t, db, "alice")
	site := testutil.CreateWebsite(t, db, user.ID, "Go", "https://go.dev", testutil.WebsiteOpts{VisitCount: 2})

	visited, err := svc.Visit(user.ID, site.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, visited.VisitCount)
	assert.NotNil(t, visited.LastVisited)

	var u models.UserModel
	require.NoError(t, db.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, 1, u.TotalVisits)
}

func TestVisit_NotOwned(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	site := testutil.CreateWebsite(t, db, alice.ID, "Go", "https://go.dev", testutil.WebsiteOpts{})

	visited, err := svc.Visit(bob.ID, site.ID)
	require.NoError(t, err)
	assert.Nil(t, visited)
}

func TestListQuery_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	user := testutil.CreateUser(t, db, "alice")
	cat := testutil.CreateCategory(t, db, user.ID, "工具")

	testutil.CreateWebsite(t, db, user.ID, "Go docs", "https://go.dev", testutil.WebsiteOpts{CategoryID: &cat.ID})
	testutil.CreateWebsite(t, db, user.ID, "Rust docs", "https://rust-lang.org", testutil.WebsiteOpts{})
	testutil.CreateWebsite(t, db, user.ID, "Dead site", "https://dead.example.com", testutil.WebsiteOpts{Inactive: true})

	var sites []models.WebsiteModel
	page, err := pagination.Paginate(svc.ListQuery(user.ID, ListFilter{CategoryID: cat.ID}), pagination.Query{Page: 1, Size: 10}, &sites)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	active := true
	page, err = pagination.Paginate(svc.ListQuery(user.ID, ListFilter{IsActive: &active}), pagination.Query{Page: 1, Size: 10}, &sites)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	page, err = pagination.Paginate(svc.ListQuery(user.ID, ListFilter{Search: "docs"}), pagination.Query{Page: 1, Size: 10}, &sites)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}

func TestUpdate_ReplaceTags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	user := testutil.CreateUser(t, db, "alice")
	old := testutil.CreateTag(t, db, user.ID, "old")
	fresh := testutil.CreateTag(t, db, user.ID, "fresh")
	site := testutil.CreateWebsite(t, db, user.ID, "Go", "https://go.dev", testutil.WebsiteOpts{
		Tags: []models.TagModel{*old},
	})

	updated, err := svc.Update(user.ID, site.ID, &UpdateWebsiteDTO{TagIDs: &[]string{fresh.ID}})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "fresh", updated.Tags[0].Name)
}

func TestLogSearch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	user := testutil.CreateUser(t, db, "alice")

	svc.LogSearch(user.ID, "golang", 3, "127.0.0.1", "test-agent")

	var log models.SearchLogModel
	require.NoError(t, db.First(&log, "user_id = ?", user.ID).Error)
	assert.Equal(t, "golang", log.Query)
	assert.Equal(t, 3, log.ResultsCount)
}

func TestStatsCounters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	user := testutil.CreateUser(t, db, "alice")

	testutil.CreateWebsite(t, db, user.ID, "A", "https://a.example.com", testutil.WebsiteOpts{
		VisitCount: 10, QualityScore: 4,
	})
	testutil.CreateWebsite(t, db, user.ID, "B", "https://b.example.com", testutil.WebsiteOpts{
		VisitCount: 5, QualityScore: 2, Inactive: true,
	})

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.Active)
	assert.EqualValues(t, 1, stats.Inactive)
	assert.EqualValues(t, 15, stats.TotalVisits)
	assert.InDelta(t, 3.0, stats.AvgQuality, 0.001)
}

func TestCreate_InactiveFlagStored(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, metrics.NewCollector())
	user := testutil.CreateUser(t, db, "alice")

	inactive := false
	site, err := svc.Create(user.ID, &CreateWebsiteDTO{
		Title: "Dead", URL: "https://dead.example.com", IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, site.IsActive)

	var row models.WebsiteModel
	require.NoError(t, db.First(&row, "id = ?", site.ID).Error)
	assert.False(t, row.IsActive)
}
