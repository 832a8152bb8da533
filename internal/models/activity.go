package models

// ActivityType enumerates logged user actions.
type ActivityType string

const (
	ActivityLogin          ActivityType = "login"
	ActivityLogout         ActivityType = "logout"
	ActivityWebsiteAdd     ActivityType = "website_add"
	ActivityWebsiteDelete  ActivityType = "website_delete"
	ActivityBookmarkAdd    ActivityType = "bookmark_add"
	ActivityBookmarkDelete ActivityType = "bookmark_delete"
	ActivityBookmarkVisit  ActivityType = "bookmark_visit"
	ActivityCategoryCreate ActivityType = "category_create"
	ActivityCategoryUpdate ActivityType = "category_update"
	ActivitySearch         ActivityType = "search"
	ActivityExport         ActivityType = "export"
	ActivityImport         ActivityType = "import"
)

// UserActivityModel records a single user action for auditing.
type UserActivityModel struct {
	Base
	UserID       string         `json:"-"             gorm:"type:char(36);index;index:idx_activity_owner_type,priority:1;not null"`
	ActivityType ActivityType   `json:"activity_type" gorm:"type:varchar(20);index:idx_activity_owner_type,priority:2"`
	Description  string         `json:"description"   gorm:"type:text"`
	Metadata     map[string]any `json:"metadata"      gorm:"serializer:json;type:text"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"    gorm:"type:text"`
}

func (UserActivityModel) TableName() string { return "user_activities" }

// SearchType classifies a logged search.
type SearchType string

const (
	SearchGeneral SearchType = "general"
	SearchTitle   SearchType = "title"
	SearchTag     SearchType = "tag"
)

// SearchLogModel records search queries issued by users.
type SearchLogModel struct {
	Base
	UserID       string     `json:"-"             gorm:"type:char(36);index"`
	Query        string     `json:"query"         gorm:"type:varchar(200);index;not null"`
	ResultsCount int        `json:"results_count" gorm:"default:0"`
	SearchType   SearchType `json:"search_type"   gorm:"type:varchar(20);default:general"`
	IPAddress    string     `json:"ip_address"`
	UserAgent    string     `json:"user_agent"    gorm:"type:text"`
}

func (SearchLogModel) TableName() string { return "search_logs" }
