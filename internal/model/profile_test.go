package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelStepDown(t *testing.T) {
	tests := []struct {
		level Level
		want  Level
	}{
		{LevelExpert, LevelAdvanced},
		{LevelAdvanced, LevelIntermediate},
		{LevelIntermediate, LevelBeginner},
		{LevelBeginner, LevelNewbie},
		{LevelNewbie, LevelNewbie},
		{Level("bogus"), LevelNewbie},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.StepDown())
		})
	}
}

func TestLevelValid(t *testing.T) {
	for _, level := range LevelOrder {
		assert.True(t, level.Valid())
	}
	assert.False(t, Level("guru").Valid())
	assert.False(t, Level("").Valid())
}

func TestLanguageDisplayName(t *testing.T) {
	assert.Equal(t, "Java", LanguageJava.DisplayName())
	assert.Equal(t, "Python", LanguagePython.DisplayName())
}
