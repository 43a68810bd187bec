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

func testProfile(level model.Level) *model.UserProfile {
	return &model.UserProfile{Name: "Ada", Language: model.LanguagePython, Level: level}
}

func TestTemplateForLevelShapes(t *testing.T) {
	tests := []struct {
		level model.Level
		weeks int
	}{
		{model.LevelNewbie, 4},
		{model.LevelBeginner, 4},
		{model.LevelIntermediate, 1},
		{model.LevelAdvanced, 1},
		{model.LevelExpert, 1},
		{model.Level("nonsense"), 4}, // newbie fallback
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			template := TemplateForLevel(tt.level, model.LanguageJava)
			require.Len(t, template, tt.weeks)
			for _, week := range template {
				assert.NotEmpty(t, week.Title)
				assert.NotEmpty(t, week.Days)
				for _, day := range week.Days {
					assert.NotEmpty(t, day.Resources)
				}
			}
		})
	}
}

func TestInstantiateIsPure(t *testing.T) {
	template := TemplateForLevel(model.LevelNewbie, model.LanguagePython)

	progress := Instantiate(template)
	require.Len(t, progress, len(template))

	// Mutating the copy must not leak back into the template.
	progress[0].Days[0].Completed = true
	progress[0].Days[0].Resources[0].Completed = true

	assert.False(t, template[0].Days[0].Completed)
	assert.False(t, template[0].Days[0].Resources[0].Completed)
}

func TestInstantiateClearsFlags(t *testing.T) {
	template := TemplateForLevel(model.LevelBeginner, model.LanguageCpp)
	template[0].Days[0].Completed = true
	template[0].Days[0].Resources[0].Completed = true

	progress := Instantiate(template)
	for _, week := range progress {
		for _, day := range week.Days {
			assert.False(t, day.Completed)
			for _, res := range day.Resources {
				assert.False(t, res.Completed)
			}
		}
	}
}

func TestGetLazyInit(t *testing.T) {
	svc := NewRoadmapService(repository.NewMemoryKV())
	ctx := context.Background()

	_, err := svc.Get(ctx, nil)
	assert.ErrorIs(t, err, util.ErrNoProfile)

	progress, err := svc.Get(ctx, testProfile(model.LevelExpert))
	require.NoError(t, err)
	assert.Len(t, progress, 1)

	// Stored progress survives a later profile level change.
	again, err := svc.Get(ctx, testProfile(model.LevelNewbie))
	require.NoError(t, err)
	assert.Equal(t, progress, again)
}

func TestToggleDayCascadesDown(t *testing.T) {
	svc := NewRoadmapService(repository.NewMemoryKV())
	ctx := context.Background()
	profile := testProfile(model.LevelNewbie)

	progress, err := svc.ToggleDay(ctx, profile, 1, 1, true)
	require.NoError(t, err)

	day := progress[0].Days[0]
	assert.True(t, day.Completed)
	for _, res := range day.Resources {
		assert.True(t, res.Completed)
	}

	// Unchecking the day leaves the resources alone.
	progress, err = svc.ToggleDay(ctx, profile, 1, 1, false)
	require.NoError(t, err)

	day = progress[0].Days[0]
	assert.False(t, day.Completed)
	for _, res := range day.Resources {
		assert.True(t, res.Completed)
	}
}

func TestToggleResourceCascadesUp(t *testing.T) {
	svc := NewRoadmapService(repository.NewMemoryKV())
	ctx := context.Background()
	profile := testProfile(model.LevelNewbie)

	initial, err := svc.Get(ctx, profile)
	require.NoError(t, err)
	count := len(initial[0].Days[0].Resources)
	require.Greater(t, count, 1)

	// Completing all but the last resource leaves the day open.
	var progress model.RoadmapProgress
	for i := 0; i < count-1; i++ {
		progress, err = svc.ToggleResource(ctx, profile, 1, 1, i, true)
		require.NoError(t, err)
	}
	assert.False(t, progress[0].Days[0].Completed)

	// The last one completes the day.
	progress, err = svc.ToggleResource(ctx, profile, 1, 1, count-1, true)
	require.NoError(t, err)
	assert.True(t, progress[0].Days[0].Completed)

	// Unchecking a resource never unchecks the day.
	progress, err = svc.ToggleResource(ctx, profile, 1, 1, 0, false)
	require.NoError(t, err)
	assert.True(t, progress[0].Days[0].Completed)
	assert.False(t, progress[0].Days[0].Resources[0].Completed)
}

func TestToggleOutOfRange(t *testing.T) {
	svc := NewRoadmapService(repository.NewMemoryKV())
	ctx := context.Background()
	profile := testProfile(model.LevelIntermediate)

	_, err := svc.ToggleDay(ctx, profile, 99, 1, true)
	assert.ErrorIs(t, err, util.ErrIndexOutOfRange)

	_, err = svc.ToggleDay(ctx, profile, 1, 99, true)
	assert.ErrorIs(t, err, util.ErrIndexOutOfRange)

	_, err = svc.ToggleResource(ctx, profile, 1, 1, 99, true)
	assert.ErrorIs(t, err, util.ErrIndexOutOfRange)
}

func TestOverallProgress(t *testing.T) {
	assert.Zero(t, OverallProgress(nil))
	assert.Zero(t, OverallProgress(model.RoadmapProgress{{Week: 1, Days: []model.RoadmapDay{{Day: 1}}}}))

	progress := Instantiate(TemplateForLevel(model.LevelExpert, model.LanguageJava))
	assert.Zero(t, OverallProgress(progress))

	for i := range progress {
		for j := range progress[i].Days {
			for k := range progress[i].Days[j].Resources {
				progress[i].Days[j].Resources[k].Completed = true
			}
		}
	}
	assert.Equal(t, 100, OverallProgress(progress))
}

func TestOverallProgressRounds(t *testing.T) {
	progress := model.RoadmapProgress{{
		Week: 1,
		Days: []model.RoadmapDay{{
			Day: 1,
			Resources: []model.RoadmapResource{
				{Completed: true},
				{Completed: false},
				{Completed: false},
			},
		}},
	}}
	// 1 of 3 is 33.33, rounded to 33.
	assert.Equal(t, 33, OverallProgress(progress))

	progress[0].Days[0].Resources[1].Completed = true
	// 2 of 3 is 66.67, rounded to 67.
	assert.Equal(t, 67, OverallProgress(progress))
}

func TestLanguageURLHelpers(t *testing.T) {
	assert.Equal(t, "https://docs.python.org/3/tutorial/", languageBasicsURL(model.LanguagePython))
	assert.Equal(t, "https://www.w3schools.com/", languageBasicsURL(model.Language("ruby")))

	assert.Equal(t,
		"https://www.w3schools.com/js/arrays.asp",
		languageResourceURL(model.LanguageJavaScript, "arrays"))

	assert.Equal(t,
		"https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Array",
		languageDocURL(model.LanguageJavaScript, "array"))

	assert.Equal(t,
		"https://www.youtube.com/results?search_query=java+control+flow",
		languageVideoURL(model.LanguageJava, "control-flow"))

	assert.Equal(t,
		"https://leetcode.com/problemset/all/?search=hello+world&page=1",
		languagePracticeURL(model.LanguageCsharp, "hello-world"))
}
