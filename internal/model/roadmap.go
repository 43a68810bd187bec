package model

// ResourceKind tags a roadmap resource link.
type ResourceKind string

const (
	ResourceDocumentation ResourceKind = "documentation"
	ResourceTutorial      ResourceKind = "tutorial"
	ResourceVideo         ResourceKind = "video"
	ResourcePractice      ResourceKind = "practice"
	ResourceProject       ResourceKind = "project"
)

// RoadmapResource is a single external study link within a day.
type RoadmapResource struct {
	Title     string       `json:"title"`
	URL       string       `json:"url"`
	Type      ResourceKind `json:"type"`
	Completed bool         `json:"completed"`
}

// RoadmapDay groups the resources for one study day.
type RoadmapDay struct {
	Day         int               `json:"day"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Completed   bool              `json:"completed"`
	Resources   []RoadmapResource `json:"resources"`
}

// RoadmapWeek is one week of the study plan.
type RoadmapWeek struct {
	Week  int          `json:"week"`
	Title string       `json:"title"`
	Days  []RoadmapDay `json:"days"`
}

// RoadmapProgress is the persisted, mutable instantiation of a roadmap
// template. Once created it is only ever mutated by toggles; template edits
// never retroactively change an existing progress.
type RoadmapProgress []RoadmapWeek
