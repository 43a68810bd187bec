package model

import (
	"strings"
	"time"
)

// Level is one of five ordered skill tiers driving question bank and roadmap
// template selection.
type Level string

const (
	LevelNewbie       Level = "newbie"
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// LevelOrder lists the levels from lowest to highest.
var LevelOrder = []Level{LevelNewbie, LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

func (l Level) Valid() bool {
	for _, v := range LevelOrder {
		if l == v {
			return true
		}
	}
	return false
}

// StepDown returns the level one tier below l. Newbie stays newbie, and an
// unrecognized level bottoms out at newbie as well.
func (l Level) StepDown() Level {
	for i, v := range LevelOrder {
		if l == v {
			if i == 0 {
				return LevelNewbie
			}
			return LevelOrder[i-1]
		}
	}
	return LevelNewbie
}

func (l Level) DisplayName() string {
	return capitalize(string(l))
}

// Language is the user's preferred programming language. It parameterizes
// roadmap resource URLs only, never roadmap structure or question content.
type Language string

const (
	LanguageJava       Language = "java"
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageCpp        Language = "cpp"
	LanguageCsharp     Language = "csharp"
)

var Languages = []Language{LanguageJava, LanguagePython, LanguageJavaScript, LanguageCpp, LanguageCsharp}

func (l Language) Valid() bool {
	for _, v := range Languages {
		if l == v {
			return true
		}
	}
	return false
}

func (l Language) DisplayName() string {
	return capitalize(string(l))
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// UserProfile is the single persisted profile. It is overwritten in full on
// every assessment start, and its Level is overwritten again with the
// adjusted level once the answers are scored.
type UserProfile struct {
	Name        string    `json:"name"`
	Language    Language  `json:"language"`
	Level       Level     `json:"level"`
	LastUpdated time.Time `json:"lastUpdated"`
}
