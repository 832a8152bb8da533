package dashboard

import (
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"gorm.io/gorm"
)

// EntityKind is the closed set of entity kinds the analytics core can
// aggregate over. Each kind carries its own field-mapping policy so callers
// never branch on kind-specific column names.
type EntityKind string

const (
	KindWebsite  EntityKind = "website"
	KindBookmark EntityKind = "bookmark"
)

type kindPolicy struct {
	model       func() interface{}
	actionLabel string
	// activeScope narrows a query to non-archived/active rows; the flag
	// column differs per kind.
	activeScope func(tx *gorm.DB) *gorm.DB
}

var kindPolicies = map[EntityKind]kindPolicy{
	KindWebsite: {
		model:       func() interface{} { return &models.WebsiteModel{} },
		actionLabel: "添加了网站",
		activeScope: func(tx *gorm.DB) *gorm.DB { return tx.Where("is_active = ?", true) },
	},
	KindBookmark: {
		model:       func() interface{} { return &models.BookmarkModel{} },
		actionLabel: "添加了书签",
		activeScope: func(tx *gorm.DB) *gorm.DB { return tx.Where("is_archived = ?", false) },
	},
}

// Valid reports whether k names a supported entity kind.
func (k EntityKind) Valid() bool {
	_, ok := kindPolicies[k]
	return ok
}
