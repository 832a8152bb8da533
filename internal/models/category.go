package models

// CategoryModel groups websites. Categories may nest through ParentID and
// are unique per (user, parent, name).
type CategoryModel struct {
	Base
	Name        string  `json:"name"        gorm:"not null;uniqueIndex:uniq_category_owner,priority:3"`
	Description string  `json:"description" gorm:"type:text"`
	Color       string  `json:"color"       gorm:"type:varchar(7);default:#007bff"`
	Icon        string  `json:"icon"        gorm:"type:varchar(50)"`
	ParentID    *string `json:"parent"      gorm:"type:char(36);uniqueIndex:uniq_category_owner,priority:2"`
	UserID      string  `json:"-"           gorm:"type:char(36);index;not null;uniqueIndex:uniq_category_owner,priority:1"`

	SortOrder    int `json:"sort_order"    gorm:"default:0"`
	WebsiteCount int `json:"website_count" gorm:"default:0"`

	Children []CategoryModel `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Websites []WebsiteModel  `json:"websites,omitempty" gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }

// TagModel labels websites, many-to-many. Unique per (user, name).
type TagModel struct {
	Base
	Name       string `json:"name"        gorm:"not null;uniqueIndex:uniq_tag_owner,priority:2"`
	Color      string `json:"color"       gorm:"type:varchar(7);default:#6c757d"`
	UserID     string `json:"-"           gorm:"type:char(36);index;not null;uniqueIndex:uniq_tag_owner,priority:1"`
	UsageCount int    `json:"usage_count" gorm:"default:0"`

	Websites []WebsiteModel `json:"websites,omitempty" gorm:"many2many:website_tags;joinForeignKey:TagID;joinReferences:WebsiteID"`
}

func (TagModel) TableName() string { return "tags" }
