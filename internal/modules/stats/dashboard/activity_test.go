package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/testutil"
)

func TestActivityFeed_MergedAndOrdered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")
	col := testutil.CreateCollection(t, db, user.ID, "默认收藏夹", true)

	now := time.Now()
	testutil.CreateWebsite(t, db, user.ID, "w-old", "https://w1.example.com", testutil.WebsiteOpts{
		CreatedAt: now.Add(-5 * time.Hour),
	})
	testutil.CreateBookmark(t, db, user.ID, col.ID, "b-mid", "https://b1.example.com", testutil.BookmarkOpts{
		CreatedAt: now.Add(-3 * time.Hour),
	})
	testutil.CreateWebsite(t, db, user.ID, "w-new", "https://w2.example.com", testutil.WebsiteOpts{
		CreatedAt: now.Add(-1 * time.Hour),
	})

	entries, err := svc.ActivityFeed(user.ID, 30, 20)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "w-new", entries[0].Title)
	assert.Equal(t, "b-mid", entries[1].Title)
	assert.Equal(t, "w-old", entries[2].Title)

	assert.Equal(t, "website", entries[0].Type)
	assert.Equal(t, "添加了网站", entries[0].Action)
	assert.Equal(t, "bookmark", entries[1].Type)
	assert.Equal(t, "添加了书签", entries[1].Action)
}

func TestActivityFeed_TruncatesAfterMerge(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")
	col := testutil.CreateCollection(t, db, user.ID, "默认收藏夹", true)

	now := time.Now()
	testutil.CreateWebsite(t, db, user.ID, "w-newest", "https://w1.example.com", testutil.WebsiteOpts{
		CreatedAt: now.Add(-1 * time.Hour),
	})
	testutil.CreateWebsite(t, db, user.ID, "w-oldest", "https://w2.example.com", testutil.WebsiteOpts{
		CreatedAt: now.Add(-5 * time.Hour),
	})
	testutil.CreateBookmark(t, db, user.ID, col.ID, "b-middle", "https://b1.example.com", testutil.BookmarkOpts{
		CreatedAt: now.Add(-3 * time.Hour),
	})

	entries, err := svc.ActivityFeed(user.ID, 30, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The bookmark outranks the older website, so truncation must happen
	// after the kinds are merged.
	assert.Equal(t, "w-newest", entries[0].Title)
	assert.Equal(t, "b-middle", entries[1].Title)
}

func TestActivityFeed_WindowCutoff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	testutil.CreateWebsite(t, db, user.ID, "ancient", "https://w1.example.com", testutil.WebsiteOpts{
		CreatedAt: time.Now().AddDate(0, 0, -60),
	})

	entries, err := svc.ActivityFeed(user.ID, 30, 20)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestActivityFeed_InvalidParameters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	_, err := svc.ActivityFeed(user.ID, 0, 20)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = svc.ActivityFeed(user.ID, 30, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}
