package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/testutil"
)

func TestExport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")
	col := testutil.CreateCollection(t, db, user.ID, "默认收藏夹", true)

	testutil.CreateWebsite(t, db, user.ID, "Go", "https://go.dev", testutil.WebsiteOpts{})
	testutil.CreateBookmark(t, db, user.ID, col.ID, "Gin", "https://gin-gonic.com", testutil.BookmarkOpts{})

	all, err := svc.Export(user.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "all", all.Type)
	assert.Len(t, all.Websites, 1)
	assert.Len(t, all.Bookmarks, 1)
	require.NotNil(t, all.Summary)
	assert.EqualValues(t, 1, all.Summary.WebsitesCount)

	var audits int64
	require.NoError(t, db.Model(&models.UserActivityModel{}).
		Where("user_id = ? AND activity_type = ?", user.ID, models.ActivityExport).
		Count(&audits).Error)
	assert.EqualValues(t, 1, audits)

	sites, err := svc.Export(user.ID, "websites")
	require.NoError(t, err)
	assert.Len(t, sites.Websites, 1)
	assert.Empty(t, sites.Bookmarks)

	_, err = svc.Export(user.ID, "csv")
	require.ErrorIs(t, err, ErrInvalidParameter)
}
