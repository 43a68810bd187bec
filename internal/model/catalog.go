package model

import "encoding/json"

// Catalog rows are static curriculum content seeded at migration time. Slugs
// are unique: the original data set carried duplicate entries, and the seeder
// drops those on insert so bookmark and completion toggles always address a
// single row.

// swagger:model CatalogResource
type CatalogResource struct {
	BaseModel
	Slug        string          `gorm:"size:100;uniqueIndex;not null" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	URL         string          `gorm:"size:255;not null" json:"url"`
	Type        string          `gorm:"size:50;index" json:"type"`
	Topics      json.RawMessage `gorm:"type:json" json:"topics"`
	Image       string          `gorm:"size:255" json:"image"`
	// Language is empty for entries shared by every language.
	Language Language `gorm:"size:20;index" json:"language,omitempty"`
}

func (CatalogResource) TableName() string {
	return "catalog_resources"
}

// swagger:model Blog
type Blog struct {
	BaseModel
	Slug        string          `gorm:"size:100;uniqueIndex;not null" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Author      string          `gorm:"size:100" json:"author"`
	Date        string          `gorm:"size:50" json:"date"`
	ReadTime    string          `gorm:"size:50" json:"readTime"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"size:50;index" json:"category"`
	Tags        json.RawMessage `gorm:"type:json" json:"tags"`
	URL         string          `gorm:"size:255;not null" json:"url"`
	Source      string          `gorm:"size:100" json:"source"`
	SourceLogo  string          `gorm:"size:255" json:"sourceLogo"`
}

func (Blog) TableName() string {
	return "blogs"
}

// swagger:model Book
type Book struct {
	BaseModel
	Slug        string          `gorm:"size:100;uniqueIndex;not null" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Author      string          `gorm:"size:255" json:"author"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"size:50;index" json:"category"`
	Tags        json.RawMessage `gorm:"type:json" json:"tags"`
	URL         string          `gorm:"size:255;not null" json:"url"`
	CoverImage  string          `gorm:"size:255" json:"coverImage"`
	Format      string          `gorm:"size:50" json:"format"`
	Pages       int             `gorm:"default:0" json:"pages"`
}

func (Book) TableName() string {
	return "books"
}

// swagger:model Project
type Project struct {
	BaseModel
	Slug        string          `gorm:"size:100;uniqueIndex;not null" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Level       Level           `gorm:"size:20;index" json:"level"`
	Concepts    json.RawMessage `gorm:"type:json" json:"concepts"`
	Steps       json.RawMessage `gorm:"type:json" json:"steps"`
	GithubRepo  string          `gorm:"size:255" json:"githubRepo"`
	// Language is empty for entries shared by every language.
	Language Language `gorm:"size:20;index" json:"language,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

// swagger:model Algorithm
type Algorithm struct {
	BaseModel
	Slug            string          `gorm:"size:100;uniqueIndex;not null" json:"id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Category        string          `gorm:"size:50;index" json:"category"`
	Description     string          `gorm:"type:text" json:"description"`
	TimeBest        string          `gorm:"size:50" json:"timeBest"`
	TimeAverage     string          `gorm:"size:50" json:"timeAverage"`
	TimeWorst       string          `gorm:"size:50" json:"timeWorst"`
	SpaceComplexity string          `gorm:"size:50" json:"spaceComplexity"`
	Characteristics json.RawMessage `gorm:"type:json" json:"characteristics"`
	LearnMoreURL    string          `gorm:"size:255" json:"learnMoreUrl"`
}

func (Algorithm) TableName() string {
	return "algorithms"
}

// ProjectStatus tracks a user's progress on a single project.
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectCompleted:
		return true
	}
	return false
}

// ProjectProgress is the persisted per-project {status, notes} entry, keyed
// by project slug in the project_progress map.
type ProjectProgress struct {
	Status ProjectStatus `json:"status"`
	Notes  string        `json:"notes"`
}
