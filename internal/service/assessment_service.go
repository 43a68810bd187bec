package service

import (
	"context"
	"time"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/repository"
	"dsa_roadmap_backend/internal/util"
	"dsa_roadmap_backend/pkg/monitoring"
)

// AssessmentService runs the placement quiz: it hands out a level bank,
// grades submissions and adjusts the user's level from the result.
type AssessmentService struct {
	Store   repository.KeyValueStore
	Roadmap *RoadmapService
}

func NewAssessmentService(store repository.KeyValueStore, roadmap *RoadmapService) *AssessmentService {
	return &AssessmentService{Store: store, Roadmap: roadmap}
}

// BankForLevel returns the question bank for the level. Unknown levels fall
// back to the newbie bank. Banks are identical across languages.
func BankForLevel(level model.Level) []model.Question {
	switch level {
	case model.LevelBeginner:
		return beginnerQuestions()
	case model.LevelIntermediate:
		return intermediateQuestions()
	case model.LevelAdvanced:
		return advancedQuestions()
	case model.LevelExpert:
		return expertQuestions()
	default:
		return newbieQuestions()
	}
}

// AdjustLevel applies the placement policy to a raw correct count. Four or
// fewer correct answers always land on newbie; five to seven step one level
// down; eight or more keep the claimed level.
func AdjustLevel(correct int, level model.Level) model.Level {
	if !level.Valid() {
		level = model.LevelNewbie
	}
	switch {
	case correct <= 4:
		return model.LevelNewbie
	case correct < 8:
		return level.StepDown()
	default:
		return level
	}
}

// Start overwrites the profile with the claimed level, persists the selected
// question set and returns it without answers or explanations.
func (s *AssessmentService) Start(ctx context.Context, name string, lang model.Language, level model.Level) ([]model.StudentQuestion, error) {
	if !level.Valid() {
		level = model.LevelNewbie
	}

	profile := model.UserProfile{
		Name:        name,
		Language:    lang,
		Level:       level,
		LastUpdated: time.Now(),
	}
	if err := s.Store.Save(ctx, util.KeyUserProfile, profile); err != nil {
		return nil, err
	}

	questions := BankForLevel(level)
	if err := s.Store.Save(ctx, util.KeyAssessmentQuestions, questions); err != nil {
		return nil, err
	}

	return studentView(questions), nil
}

// Questions returns the in-progress question set in student view.
func (s *AssessmentService) Questions(ctx context.Context) ([]model.StudentQuestion, error) {
	var questions []model.Question
	found, err := s.Store.Load(ctx, util.KeyAssessmentQuestions, &questions)
	if err != nil {
		return nil, err
	}
	if !found || len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}
	return studentView(questions), nil
}

// Submit grades the answers against the stored question set, persists the
// results, overwrites the profile level with the adjusted one and regenerates
// the roadmap from scratch.
func (s *AssessmentService) Submit(ctx context.Context, selected []*int) (*model.AssessmentResults, error) {
	var questions []model.Question
	found, err := s.Store.Load(ctx, util.KeyAssessmentQuestions, &questions)
	if err != nil {
		return nil, err
	}
	if !found || len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}
	if len(selected) != len(questions) {
		return nil, util.ErrAnswerCountMismatch
	}

	var profile model.UserProfile
	found, err = s.Store.Load(ctx, util.KeyUserProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, util.ErrNoProfile
	}

	answers := make([]model.AssessmentAnswer, len(questions))
	correct := 0
	for i, q := range questions {
		a := model.AssessmentAnswer{
			Question:       q.Question,
			SelectedOption: selected[i],
			CorrectOption:  q.CorrectAnswer,
			Explanation:    q.Explanation,
		}
		if selected[i] != nil && *selected[i] == q.CorrectAnswer {
			a.IsCorrect = true
			correct++
		}
		answers[i] = a
	}

	adjusted := AdjustLevel(correct, profile.Level)
	results := model.AssessmentResults{
		Answers:       answers,
		Score:         100 * float64(correct) / float64(len(questions)),
		OriginalLevel: profile.Level,
		AdjustedLevel: adjusted,
		Timestamp:     time.Now(),
	}

	if err := s.Store.Save(ctx, util.KeyAssessmentResults, results); err != nil {
		return nil, err
	}

	profile.Level = adjusted
	profile.LastUpdated = time.Now()
	if err := s.Store.Save(ctx, util.KeyUserProfile, profile); err != nil {
		return nil, err
	}

	if _, err := s.Roadmap.Regenerate(ctx, adjusted, profile.Language); err != nil {
		return nil, err
	}

	monitoring.AssessmentsSubmitted.WithLabelValues(string(adjusted)).Inc()
	return &results, nil
}

// Results loads the last graded assessment. A missing or structurally broken
// document yields util.ErrMalformedResults so the caller can restart the flow
// instead of failing.
func (s *AssessmentService) Results(ctx context.Context) (*model.AssessmentResults, error) {
	var results model.AssessmentResults
	found, err := s.Store.Load(ctx, util.KeyAssessmentResults, &results)
	if err != nil {
		return nil, err
	}
	if !found || len(results.Answers) == 0 || results.Score < 0 || results.Score > 100 {
		return nil, util.ErrMalformedResults
	}
	return &results, nil
}

func studentView(questions []model.Question) []model.StudentQuestion {
	view := make([]model.StudentQuestion, len(questions))
	for i, q := range questions {
		view[i] = model.StudentQuestion{Question: q.Question, Options: q.Options}
	}
	return view
}
