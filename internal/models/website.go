package models

import "time"

// WebsiteModel is a managed website entry. URL is unique per user.
type WebsiteModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	URL         string `json:"url"         gorm:"not null;uniqueIndex:uniq_website_owner,priority:2,length:191"`
	Description string `json:"description" gorm:"type:text"`
	Favicon     string `json:"favicon"`
	Screenshot  string `json:"screenshot"`

	UserID     string         `json:"-"                  gorm:"type:char(36);index;not null;uniqueIndex:uniq_website_owner,priority:1"`
	CategoryID *string        `json:"category"           gorm:"type:char(36);index"`
	Category   *CategoryModel `json:"category_detail,omitempty" gorm:"foreignKey:CategoryID"`
	Tags       []TagModel     `json:"tags,omitempty"     gorm:"many2many:website_tags;joinForeignKey:WebsiteID;joinReferences:TagID"`

	MetaKeywords string `json:"meta_keywords" gorm:"type:text"`
	MetaAuthor   string `json:"meta_author"`
	MetaLanguage string `json:"meta_language" gorm:"type:varchar(10)"`

	// Boolean flags carry no column default: gorm skips zero-valued
	// fields that have one on insert, so a stored false needs the field
	// sent as-is. Creation paths set these explicitly.
	IsActive    bool       `json:"is_active"    gorm:"index"`
	IsPublic    bool       `json:"is_public"    gorm:"default:false"`
	VisitCount  int        `json:"visit_count"  gorm:"default:0"`
	LastVisited *time.Time `json:"last_visited"`

	QualityScore float64  `json:"quality_score" gorm:"default:0"`
	LoadingSpeed *float64 `json:"loading_speed"`
}

func (WebsiteModel) TableName() string { return "websites" }

// WebsiteNoteType classifies a website note.
type WebsiteNoteType string

const (
	NoteTypeGeneral   WebsiteNoteType = "general"
	NoteTypeHighlight WebsiteNoteType = "highlight"
	NoteTypeTodo      WebsiteNoteType = "todo"
	NoteTypeReview    WebsiteNoteType = "review"
)

// WebsiteNoteModel is a private note attached to a website.
type WebsiteNoteModel struct {
	Base
	WebsiteID string `json:"website" gorm:"type:char(36);index;not null"`
	UserID    string `json:"-"       gorm:"type:char(36);index;not null"`

	Title     string          `json:"title"      gorm:"not null"`
	Content   string          `json:"content"    gorm:"type:text;not null"`
	IsPrivate bool            `json:"is_private"`
	NoteType  WebsiteNoteType `json:"note_type"  gorm:"type:varchar(20);default:general"`
}

func (WebsiteNoteModel) TableName() string { return "website_notes" }
