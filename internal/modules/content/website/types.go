package website

type CreateWebsiteDTO struct {
	Title        string   `json:"title" binding:"required"`
	URL          string   `json:"url" binding:"required,url"`
	Description  string   `json:"description"`
	Favicon      string   `json:"favicon"`
	CategoryID   *string  `json:"category"`
	TagIDs       []string `json:"tags"`
	IsActive     *bool    `json:"is_active"`
	IsPublic     *bool    `json:"is_public"`
	QualityScore *float64 `json:"quality_score"`
}

type UpdateWebsiteDTO struct {
	Title        *string   `json:"title"`
	URL          *string   `json:"url"`
	Description  *string   `json:"description"`
	Favicon      *string   `json:"favicon"`
	CategoryID   *string   `json:"category"`
	TagIDs       *[]string `json:"tags"`
	IsActive     *bool     `json:"is_active"`
	IsPublic     *bool     `json:"is_public"`
	QualityScore *float64  `json:"quality_score"`
}

// ListFilter narrows the website listing.
type ListFilter struct {
	CategoryID string
	TagID      string
	Search     string
	IsActive   *bool
	OrderBy    string
}

type FetchInfoDTO struct {
	URL string `json:"url" binding:"required,url"`
}

// WebsiteStats summarizes the owner's websites.
type WebsiteStats struct {
	Total       int64   `json:"total"`
	Active      int64   `json:"active"`
	Inactive    int64   `json:"inactive"`
	TotalVisits int64   `json:"total_visits"`
	AvgQuality  float64 `json:"avg_quality"`
}
