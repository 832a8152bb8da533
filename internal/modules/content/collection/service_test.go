package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/testutil"
)

func TestEnsureDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	col, err := svc.EnsureDefault(user.ID)
	require.NoError(t, err)
	assert.True(t, col.IsDefault)
	assert.Equal(t, "默认收藏夹", col.Name)

	again, err := svc.EnsureDefault(user.ID)
	require.NoError(t, err)
	assert.Equal(t, col.ID, again.ID)
}

func TestDelete_DefaultRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	col, err := svc.EnsureDefault(user.ID)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(user.ID, col.ID), ErrDefaultCollection)
}

func TestDelete_MovesBookmarksToDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	col, err := svc.Create(user.ID, &CreateCollectionDTO{Name: "技术"})
	require.NoError(t, err)
	bm := testutil.CreateBookmark(t, db, user.ID, col.ID, "Go", "https://go.dev", testutil.BookmarkOpts{})

	require.NoError(t, svc.Delete(user.ID, col.ID))

	fallback, err := svc.EnsureDefault(user.ID)
	require.NoError(t, err)

	var reloaded models.BookmarkModel
	require.NoError(t, db.First(&reloaded, "id = ?", bm.ID).Error)
	assert.Equal(t, fallback.ID, reloaded.CollectionID)
}

func TestList_BookmarkCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	col, err := svc.Create(user.ID, &CreateCollectionDTO{Name: "技术"})
	require.NoError(t, err)
	testutil.CreateBookmark(t, db, user.ID, col.ID, "Go", "https://go.dev", testutil.BookmarkOpts{})
	testutil.CreateBookmark(t, db, user.ID, col.ID, "Rust", "https://rust-lang.org", testutil.BookmarkOpts{})

	cols, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, 2, cols[0].BookmarkCount)
}

func TestCreate_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	_, err := svc.Create(user.ID, &CreateCollectionDTO{Name: "技术"})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, &CreateCollectionDTO{Name: "技术"})
	require.ErrorIs(t, err, ErrNameExists)
}
