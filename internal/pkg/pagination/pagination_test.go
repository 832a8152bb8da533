package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/testutil"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext_Defaults(t *testing.T) {
	q := FromContext(queryContext(t, ""))
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultSize, q.Size)
}

func TestFromContext_Clamping(t *testing.T) {
	q := FromContext(queryContext(t, "page=-3&size=0"))
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultSize, q.Size)

	q = FromContext(queryContext(t, "page=2&size=9999"))
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, MaxSize, q.Size)

	q = FromContext(queryContext(t, "page=abc&size=xyz"))
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultSize, q.Size)
}

func TestPaginate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := testutil.CreateUser(t, db, "alice")
	for _, name := range []string{"工具", "资讯", "娱乐"} {
		testutil.CreateCategory(t, db, user.ID, name)
	}

	var cats []models.CategoryModel
	page, err := Paginate(db.Model(&models.CategoryModel{}), Query{Page: 1, Size: 2}, &cats)
	require.NoError(t, err)
	assert.Len(t, cats, 2)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPage)
	assert.True(t, page.HasNextPage)

	page, err = Paginate(db.Model(&models.CategoryModel{}), Query{Page: 2, Size: 2}, &cats)
	require.NoError(t, err)
	assert.Len(t, cats, 1)
	assert.False(t, page.HasNextPage)
}
