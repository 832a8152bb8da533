package bookmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/modules/content/collection"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/metrics"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/testutil"
)

func newTestService(t *testing.T) (*Service, *testutil.Fixture) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	user := testutil.CreateUser(t, db, "alice")
	return NewService(db, collection.NewService(db), metrics.NewCollector()), &testutil.Fixture{DB: db, User: user}
}

func TestCreate_DefaultCollection(t *testing.T) {
	svc, fx := newTestService(t)

	bm, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)

	var col models.CollectionModel
	require.NoError(t, fx.DB.First(&col, "id = ?", bm.CollectionID).Error)
	assert.True(t, col.IsDefault)

	var u models.UserModel
	require.NoError(t, fx.DB.First(&u, "id = ?", fx.User.ID).Error)
	assert.Equal(t, 1, u.TotalBookmarks)
}

func TestCreate_DuplicateURL(t *testing.T) {
	svc, fx := newTestService(t)

	_, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)
	_, err = svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go again", URL: "https://go.dev"})
	require.ErrorIs(t, err, ErrURLExists)
}

func TestCreate_UnknownCollection(t *testing.T) {
	svc, fx := newTestService(t)

	missing := "00000000-0000-0000-0000-000000000000"
	_, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go", URL: "https://go.dev", CollectionID: &missing})
	require.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestToggles(t *testing.T) {
	svc, fx := newTestService(t)

	bm, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)

	toggled, err := svc.ToggleFavorite(fx.User.ID, bm.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	toggled, err = svc.ToggleFavorite(fx.User.ID, bm.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsFavorite)

	toggled, err = svc.ToggleArchive(fx.User.ID, bm.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsArchived)
}

func TestVisit(t *testing.T) {
	svc, fx := newTestService(t)

	bm, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)

	visited, err := svc.Visit(fx.User.ID, bm.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, visited.VisitCount)
	assert.NotNil(t, visited.LastVisited)
}

func TestBulkDelete_ScopedToOwner(t *testing.T) {
	svc, fx := newTestService(t)
	bob := testutil.CreateUser(t, fx.DB, "bob")
	bobCol := testutil.CreateCollection(t, fx.DB, bob.ID, "默认收藏夹", true)

	mine, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)
	theirs := testutil.CreateBookmark(t, fx.DB, bob.ID, bobCol.ID, "Rust", "https://rust-lang.org", testutil.BookmarkOpts{})

	deleted, err := svc.BulkDelete(fx.User.ID, []string{mine.ID, theirs.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var count int64
	require.NoError(t, fx.DB.Model(&models.BookmarkModel{}).Where("id = ?", theirs.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBulkMove(t *testing.T) {
	svc, fx := newTestService(t)

	bm, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)

	target := testutil.CreateCollection(t, fx.DB, fx.User.ID, "技术", false)
	moved, err := svc.BulkMove(fx.User.ID, []string{bm.ID}, target.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, moved)

	var reloaded models.BookmarkModel
	require.NoError(t, fx.DB.First(&reloaded, "id = ?", bm.ID).Error)
	assert.Equal(t, target.ID, reloaded.CollectionID)
}

func TestBulkOperate(t *testing.T) {
	svc, fx := newTestService(t)

	a, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)
	b, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Gin", URL: "https://gin-gonic.com"})
	require.NoError(t, err)
	ids := []string{a.ID, b.ID}

	affected, err := svc.BulkOperate(fx.User.ID, &BulkOperationDTO{IDs: ids, Action: "favorite"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	var favorites int64
	require.NoError(t, fx.DB.Model(&models.BookmarkModel{}).
		Where("user_id = ? AND is_favorite = ?", fx.User.ID, true).
		Count(&favorites).Error)
	assert.EqualValues(t, 2, favorites)

	affected, err = svc.BulkOperate(fx.User.ID, &BulkOperationDTO{IDs: ids, Action: "archive"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	_, err = svc.BulkOperate(fx.User.ID, &BulkOperationDTO{IDs: ids, Action: "move"})
	require.ErrorIs(t, err, ErrMissingCollection)

	_, err = svc.BulkOperate(fx.User.ID, &BulkOperationDTO{IDs: ids, Action: "rename"})
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestStats(t *testing.T) {
	svc, fx := newTestService(t)

	a, err := svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)
	_, err = svc.Create(fx.User.ID, &CreateBookmarkDTO{Title: "Gin", URL: "https://gin-gonic.com"})
	require.NoError(t, err)

	_, err = svc.ToggleFavorite(fx.User.ID, a.ID)
	require.NoError(t, err)
	_, err = svc.Visit(fx.User.ID, a.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(fx.User.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.Favorites)
	assert.EqualValues(t, 0, stats.Archived)
	assert.EqualValues(t, 1, stats.TotalVisits)
}
