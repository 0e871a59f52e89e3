package models

import (
	"time"

	json "github.com/goccy/go-json"
)

// Project is a student project entry in the catalog.
// Rows are owned by the remote store; the client only ever changes
// LikesCount (and UpdatedAt alongside it). AverageRating and RatingCount are
// recomputed by the store whenever a rating is written.
type Project struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	ProjectLead   string    `json:"project_lead" db:"project_lead"`
	Year          int       `json:"year" db:"year"`
	Category      string    `json:"category" db:"category"`
	Abstract      string    `json:"abstract" db:"abstract"`
	Description   *string   `json:"description,omitempty" db:"description"`
	Technologies  []string  `json:"technologies" db:"technologies"`
	GithubURL     *string   `json:"github_url,omitempty" db:"github_url"`
	DemoURL       *string   `json:"demo_url,omitempty" db:"demo_url"`
	LinkedinURL   *string   `json:"linkedin_url,omitempty" db:"linkedin_url"`
	ImageURL      *string   `json:"image_url,omitempty" db:"image_url"`
	LikesCount    int       `json:"likes_count" db:"likes_count"`
	AverageRating float64   `json:"average_rating" db:"average_rating"`
	RatingCount   int       `json:"rating_count" db:"rating_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// ProjectRating is one anonymous session's star rating for a project.
// (ProjectID, UserSession) is unique.
type ProjectRating struct {
	ID          string    `json:"id" db:"id"`
	ProjectID   string    `json:"project_id" db:"project_id"`
	UserSession string    `json:"user_session" db:"user_session"`
	Rating      int       `json:"rating" db:"rating"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProjectFilters narrows a project listing. A zero field means
// "no constraint on that dimension".
type ProjectFilters struct {
	Search   string `json:"search,omitempty" form:"search"`
	Year     int    `json:"year,omitempty" form:"year"`
	Category string `json:"category,omitempty" form:"category"`
	Limit    int    `json:"limit,omitempty" form:"limit"`
	Offset   int    `json:"offset,omitempty" form:"offset"`
}

// Key serializes the filters so that two structurally equal values
// produce the same key.
func (f ProjectFilters) Key() string {
	b, err := json.Marshal(f)
	if err != nil {
		return ""
	}
	return string(b)
}

// Order is one ORDER BY term of a ProjectQuery.
type Order struct {
	Column string
	Desc   bool
}

// ProjectQuery is the store-level shape of a projects read.
// Category and each Search column are case-insensitive substring matches;
// Search matches when any of title, abstract or project_lead contains it.
// Limit of zero means unlimited.
type ProjectQuery struct {
	ID       string
	Category string
	Year     int
	Search   string
	OrderBy  []Order
	Limit    int
	Offset   int
}

// ProjectsResponse is the listing payload served to the UI.
type ProjectsResponse struct {
	Projects   []Project `json:"projects"`
	Total      int       `json:"total"`
	Loading    bool      `json:"loading"`
	Tab        string    `json:"tab"`
	LikedCount int       `json:"liked_count"`
	// Filters are the filters the listed projects were fetched with.
	Filters ProjectFilters `json:"filters"`
}

// PreferencesResponse reports the persisted preferences of this device.
type PreferencesResponse struct {
	DarkMode bool     `json:"dark_mode"`
	Liked    []string `json:"liked"`
}

// RateRequest is the payload for rating a project.
type RateRequest struct {
	Rating int `json:"rating"`
}

// ThemeRequest toggles the dark mode preference.
type ThemeRequest struct {
	Dark *bool `json:"dark" binding:"required"`
}
