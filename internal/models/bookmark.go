package models

import "time"

// CollectionModel is a bookmark folder. Each user gets one default
// collection which cannot be deleted.
type CollectionModel struct {
	Base
	Name        string `json:"name"        gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Color       string `json:"color"       gorm:"type:varchar(7);default:#007bff"`
	Icon        string `json:"icon"`
	UserID      string `json:"-"           gorm:"type:char(36);index;not null"`
	IsDefault   bool   `json:"is_default"  gorm:"default:false"`

	Bookmarks     []BookmarkModel `json:"bookmarks,omitempty" gorm:"foreignKey:CollectionID"`
	BookmarkCount int             `json:"bookmark_count" gorm:"-"`
}

func (CollectionModel) TableName() string { return "collections" }

// BookmarkModel is a saved link inside a collection. URL is unique per user.
type BookmarkModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	URL         string `json:"url"         gorm:"not null;uniqueIndex:uniq_bookmark_owner,priority:2,length:191"`
	Description string `json:"description" gorm:"type:text"`
	Notes       string `json:"notes"       gorm:"type:text"`
	Thumbnail   string `json:"thumbnail"`

	CollectionID string           `json:"collection" gorm:"type:char(36);index;not null"`
	Collection   *CollectionModel `json:"collection_detail,omitempty" gorm:"foreignKey:CollectionID"`
	UserID       string           `json:"-"          gorm:"type:char(36);index;not null;uniqueIndex:uniq_bookmark_owner,priority:1"`

	IsFavorite  bool       `json:"is_favorite"  gorm:"default:false"`
	IsArchived  bool       `json:"is_archived"  gorm:"default:false;index"`
	VisitCount  int        `json:"visit_count"  gorm:"default:0"`
	LastVisited *time.Time `json:"last_visited"`
}

func (BookmarkModel) TableName() string { return "bookmarks" }
