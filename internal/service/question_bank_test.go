package service

import (
	"testing"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionBanksWellFormed(t *testing.T) {
	banks := map[model.Level][]model.Question{
		model.LevelNewbie:       newbieQuestions(),
		model.LevelBeginner:     beginnerQuestions(),
		model.LevelIntermediate: intermediateQuestions(),
		model.LevelAdvanced:     advancedQuestions(),
		model.LevelExpert:       expertQuestions(),
	}

	for level, bank := range banks {
		t.Run(string(level), func(t *testing.T) {
			require.Len(t, bank, util.QuestionsPerAssessment)
			for i, q := range bank {
				assert.NotEmpty(t, q.Question, "question %d", i)
				assert.Len(t, q.Options, 4, "question %d", i)
				assert.GreaterOrEqual(t, q.CorrectAnswer, 0, "question %d", i)
				assert.Less(t, q.CorrectAnswer, 4, "question %d", i)
				assert.NotEmpty(t, q.Explanation, "question %d", i)
			}
		})
	}
}

func TestQuestionBanksAreDistinct(t *testing.T) {
	assert.NotEqual(t, newbieQuestions()[0].Question, expertQuestions()[0].Question)
}
