// Package testutil provides shared test fixtures backed by an in-memory
// SQLite database.
package testutil

import (
	"testing"
	"time"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/database"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory database migrated to the current
// schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)&mode=memory&id="+uuid.New().String()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Fixture bundles a test database with its primary user.
type Fixture struct {
	DB   *gorm.DB
	User *models.UserModel
}

// CreateUser inserts a user with sane defaults.
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.UserModel {
	t.Helper()
	u := &models.UserModel{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// CreateCategory inserts a category owned by userID.
func CreateCategory(t *testing.T, db *gorm.DB, userID, name string) *models.CategoryModel {
	t.Helper()
	cat := &models.CategoryModel{Name: name, UserID: userID, Color: "#007bff"}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return cat
}

// CreateTag inserts a tag owned by userID.
func CreateTag(t *testing.T, db *gorm.DB, userID, name string) *models.TagModel {
	t.Helper()
	tag := &models.TagModel{Name: name, UserID: userID, Color: "#6c757d"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag %s: %v", name, err)
	}
	return tag
}

// WebsiteOpts tweaks a fixture website.
type WebsiteOpts struct {
	CategoryID   *string
	Tags         []models.TagModel
	VisitCount   int
	QualityScore float64
	Inactive     bool
	CreatedAt    time.Time
}

// CreateWebsite inserts a website owned by userID.
func CreateWebsite(t *testing.T, db *gorm.DB, userID, title, url string, opts WebsiteOpts) *models.WebsiteModel {
	t.Helper()
	w := &models.WebsiteModel{
		Title:        title,
		URL:          url,
		UserID:       userID,
		CategoryID:   opts.CategoryID,
		Tags:         opts.Tags,
		VisitCount:   opts.VisitCount,
		QualityScore: opts.QualityScore,
		IsActive:     !opts.Inactive,
	}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("create website %s: %v", title, err)
	}
	if !opts.CreatedAt.IsZero() {
		if err := db.Model(w).Update("created_at", opts.CreatedAt).Error; err != nil {
			t.Fatalf("backdate website %s: %v", title, err)
		}
		w.CreatedAt = opts.CreatedAt
	}
	return w
}

// CreateCollection inserts a collection owned by userID.
func CreateCollection(t *testing.T, db *gorm.DB, userID, name string, isDefault bool) *models.CollectionModel {
	t.Helper()
	col := &models.CollectionModel{Name: name, UserID: userID, IsDefault: isDefault}
	if err := db.Create(col).Error; err != nil {
		t.Fatalf("create collection %s: %v", name, err)
	}
	return col
}

// BookmarkOpts tweaks a fixture bookmark.
type BookmarkOpts struct {
	VisitCount int
	Favorite   bool
	Archived   bool
	CreatedAt  time.Time
}

// CreateBookmark inserts a bookmark owned by userID in the given collection.
func CreateBookmark(t *testing.T, db *gorm.DB, userID, collectionID, title, url string, opts BookmarkOpts) *models.BookmarkModel {
	t.Helper()
	b := &models.BookmarkModel{
		Title:        title,
		URL:          url,
		UserID:       userID,
		CollectionID: collectionID,
		VisitCount:   opts.VisitCount,
		IsFavorite:   opts.Favorite,
		IsArchived:   opts.Archived,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("create bookmark %s: %v", title, err)
	}
	if !opts.CreatedAt.IsZero() {
		if err := db.Model(b).Update("created_at", opts.CreatedAt).Error; err != nil {
			t.Fatalf("backdate bookmark %s: %v", title, err)
		}
		b.CreatedAt = opts.CreatedAt
	}
	return b
}
