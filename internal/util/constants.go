package util

// Persisted key-value store keys. The dsa_roadmap_ prefix namespaces the
// application's entries so Clear never touches foreign rows.
const (
	KeyPrefix = "dsa_roadmap_"

	KeyUserProfile         = KeyPrefix + "user_profile"
	KeyAssessmentQuestions = KeyPrefix + "assessment_questions"
	KeyAssessmentResults   = KeyPrefix + "assessment_results"
	KeyRoadmapProgress     = KeyPrefix + "progress"
	KeyBookmarkedResources = KeyPrefix + "bookmarks"
	KeyCompletedResources  = KeyPrefix + "completed"
	KeyProjectProgress     = KeyPrefix + "projects"
	KeyBookmarkedBlogs     = KeyPrefix + "bookmarked_blogs"
	KeyBookmarkedBooks     = KeyPrefix + "bookmarked_books"
	KeyAlgorithmNotes      = KeyPrefix + "algorithm_notes"
	KeyThemePreference     = KeyPrefix + "theme"
)

// QuestionsPerAssessment is the fixed size of every level bank.
const QuestionsPerAssessment = 10
