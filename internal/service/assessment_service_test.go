package service

import (
	"context"
	"testing"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/repository"
	"dsa_roadmap_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssessmentService() *AssessmentService {
	store := repository.NewMemoryKV()
	return NewAssessmentService(store, NewRoadmapService(store))
}

func TestAdjustLevel(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		level   model.Level
		want    model.Level
	}{
		{"three correct drops expert to newbie", 3, model.LevelExpert, model.LevelNewbie},
		{"four correct drops beginner to newbie", 4, model.LevelBeginner, model.LevelNewbie},
		{"zero correct stays newbie", 0, model.LevelNewbie, model.LevelNewbie},
		{"six correct steps expert down to advanced", 6, model.LevelExpert, model.LevelAdvanced},
		{"seven correct steps intermediate down to beginner", 7, model.LevelIntermediate, model.LevelBeginner},
		{"five correct keeps newbie at newbie", 5, model.LevelNewbie, model.LevelNewbie},
		{"eight correct keeps intermediate", 8, model.LevelIntermediate, model.LevelIntermediate},
		{"nine correct keeps intermediate", 9, model.LevelIntermediate, model.LevelIntermediate},
		{"ten correct keeps expert", 10, model.LevelExpert, model.LevelExpert},
		{"unknown level with low score lands on newbie", 2, model.Level("guru"), model.LevelNewbie},
		{"unknown level with mid score lands on newbie", 6, model.Level("guru"), model.LevelNewbie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjustLevel(tt.correct, tt.level))
		})
	}
}

func TestBankForLevel(t *testing.T) {
	for _, level := range model.LevelOrder {
		bank := BankForLevel(level)
		assert.Len(t, bank, util.QuestionsPerAssessment, "bank for %s", level)
	}

	fallback := BankForLevel(model.Level("nonsense"))
	assert.Equal(t, newbieQuestions(), fallback)
}

func TestStartHidesAnswers(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	questions, err := svc.Start(ctx, "Ada", model.LanguagePython, model.LevelIntermediate)
	require.NoError(t, err)
	require.Len(t, questions, util.QuestionsPerAssessment)

	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
	}

	var profile model.UserProfile
	found, err := svc.Store.Load(ctx, util.KeyUserProfile, &profile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, model.LevelIntermediate, profile.Level)
}

func TestSubmitScoresAndAdjusts(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	_, err := svc.Start(ctx, "Ada", model.LanguageJava, model.LevelExpert)
	require.NoError(t, err)

	// Answer the first three correctly, skip one, miss the rest.
	bank := expertQuestions()
	answers := make([]*int, len(bank))
	for i := range bank {
		switch {
		case i < 3:
			v := bank[i].CorrectAnswer
			answers[i] = &v
		case i == 3:
			answers[i] = nil
		default:
			v := (bank[i].CorrectAnswer + 1) % 4
			answers[i] = &v
		}
	}

	results, err := svc.Submit(ctx, answers)
	require.NoError(t, err)

	assert.Equal(t, 3, results.CorrectCount())
	assert.InDelta(t, 30.0, results.Score, 0.001)
	assert.Equal(t, model.LevelExpert, results.OriginalLevel)
	assert.Equal(t, model.LevelNewbie, results.AdjustedLevel)

	// Profile level is overwritten with the adjusted one.
	var profile model.UserProfile
	found, err := svc.Store.Load(ctx, util.KeyUserProfile, &profile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.LevelNewbie, profile.Level)

	// A fresh roadmap for the adjusted level replaces any old progress.
	var progress model.RoadmapProgress
	found, err = svc.Store.Load(ctx, util.KeyRoadmapProgress, &progress)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, progress, 4)
	assert.Zero(t, OverallProgress(progress))
}

func TestSubmitRejectsCountMismatch(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	_, err := svc.Start(ctx, "Ada", model.LanguageCpp, model.LevelBeginner)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, []*int{nil, nil})
	assert.ErrorIs(t, err, util.ErrAnswerCountMismatch)
}

func TestSubmitWithoutQuestions(t *testing.T) {
	svc := newTestAssessmentService()

	_, err := svc.Submit(context.Background(), make([]*int, util.QuestionsPerAssessment))
	assert.ErrorIs(t, err, util.ErrNoQuestions)
}

func TestResultsMalformed(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	// Missing results.
	_, err := svc.Results(ctx)
	assert.ErrorIs(t, err, util.ErrMalformedResults)

	// Structurally broken results.
	require.NoError(t, svc.Store.Save(ctx, util.KeyAssessmentResults, map[string]interface{}{"score": 50}))
	_, err = svc.Results(ctx)
	assert.ErrorIs(t, err, util.ErrMalformedResults)
}

func TestResultsRoundTrip(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	_, err := svc.Start(ctx, "Ada", model.LanguageJavaScript, model.LevelIntermediate)
	require.NoError(t, err)

	bank := intermediateQuestions()
	answers := make([]*int, len(bank))
	for i := range bank {
		v := bank[i].CorrectAnswer
		answers[i] = &v
	}

	submitted, err := svc.Submit(ctx, answers)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, submitted.Score, 0.001)
	assert.Equal(t, model.LevelIntermediate, submitted.AdjustedLevel)

	loaded, err := svc.Results(ctx)
	require.NoError(t, err)
	assert.Equal(t, submitted.Score, loaded.Score)
	assert.Len(t, loaded.Answers, util.QuestionsPerAssessment)
}
