package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/testutil"
)

func TestCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	cat, err := svc.Create(user.ID, &CreateCategoryDTO{Name: "工具"})
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "#007bff", cat.Color)

	testutil.CreateWebsite(t, db, user.ID, "A", "https://a.example.com", testutil.WebsiteOpts{
		CategoryID: &cat.ID,
	})

	cats, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, 1, cats[0].WebsiteCount)
}

func TestCreate_DuplicateNameSameLevel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	_, err := svc.Create(user.ID, &CreateCategoryDTO{Name: "工具"})
	require.NoError(t, err)

	_, err = svc.Create(user.ID, &CreateCategoryDTO{Name: "工具"})
	require.ErrorIs(t, err, ErrNameExists)
}

func TestCreate_SameNameDifferentOwners(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	_, err := svc.Create(alice.ID, &CreateCategoryDTO{Name: "工具"})
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, &CreateCategoryDTO{Name: "工具"})
	require.NoError(t, err)
}

func TestCreate_MissingParent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	missing := "00000000-0000-0000-0000-000000000000"
	_, err := svc.Create(user.ID, &CreateCategoryDTO{Name: "子分类", ParentID: &missing})
	require.ErrorIs(t, err, ErrParentNotFound)
}

func TestUpdate_SelfParentRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	cat, err := svc.Create(user.ID, &CreateCategoryDTO{Name: "工具"})
	require.NoError(t, err)

	_, err = svc.Update(user.ID, cat.ID, &UpdateCategoryDTO{ParentID: &cat.ID})
	require.ErrorIs(t, err, ErrParentCycle)
}

func TestDelete_DetachesWebsitesAndChildren(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	user := testutil.CreateUser(t, db, "alice")

	parent, err := svc.Create(user.ID, &CreateCategoryDTO{Name: "工具"})
	require.NoError(t, err)
	child, err := svc.Create(user.ID, &CreateCategoryDTO{Name: "子分类", ParentID: &parent.ID})
	require.NoError(t, err)
	site := testutil.CreateWebsite(t, db, user.ID, "A", "https://a.example.com", testutil.WebsiteOpts{
		CategoryID: &parent.ID,
	})

	require.NoError(t, svc.Delete(user.ID, parent.ID))

	var reloadedSite models.WebsiteModel
	require.NoError(t, db.First(&reloadedSite, "id = ?", site.ID).Error)
	assert.Nil(t, reloadedSite.CategoryID)

	var reloadedChild models.CategoryModel
	require.NoError(t, db.First(&reloadedChild, "id = ?", child.ID).Error)
	assert.Nil(t, reloadedChild.ParentID)
}

func TestDelete_OtherOwnerIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	cat, err := svc.Create(alice.ID, &CreateCategoryDTO{Name: "工具"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(bob.ID, cat.ID))

	still, err := svc.GetByID(alice.ID, cat.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}
