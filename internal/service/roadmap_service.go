package service

import (
	"context"
	"math"
	"strings"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/repository"
	"dsa_roadmap_backend/internal/util"
	"dsa_roadmap_backend/pkg/monitoring"
)

// RoadmapService generates level-specific study plans and tracks completion
// state. Progress is stored as the full roadmap document and is only replaced
// by a re-assessment, never by template changes.
type RoadmapService struct {
	Store repository.KeyValueStore
}

func NewRoadmapService(store repository.KeyValueStore) *RoadmapService {
	return &RoadmapService{Store: store}
}

// TemplateForLevel returns the curriculum for the given level. Unknown levels
// fall back to the newbie plan.
func TemplateForLevel(level model.Level, lang model.Language) []model.RoadmapWeek {
	switch level {
	case model.LevelBeginner:
		return beginnerTemplate(lang)
	case model.LevelIntermediate:
		return intermediateTemplate(lang)
	case model.LevelAdvanced:
		return advancedTemplate(lang)
	case model.LevelExpert:
		return expertTemplate(lang)
	default:
		return newbieTemplate(lang)
	}
}

// Instantiate deep-copies a template with all completion flags cleared. The
// input is never mutated.
func Instantiate(template []model.RoadmapWeek) model.RoadmapProgress {
	progress := make(model.RoadmapProgress, len(template))
	for i, week := range template {
		days := make([]model.RoadmapDay, len(week.Days))
		for j, day := range week.Days {
			resources := make([]model.RoadmapResource, len(day.Resources))
			for k, res := range day.Resources {
				res.Completed = false
				resources[k] = res
			}
			day.Completed = false
			day.Resources = resources
			days[j] = day
		}
		week.Days = days
		progress[i] = week
	}
	return progress
}

// Get returns the stored roadmap, lazily generating one from the profile on
// first access. Returns util.ErrNoProfile when no assessment was taken yet.
func (s *RoadmapService) Get(ctx context.Context, profile *model.UserProfile) (model.RoadmapProgress, error) {
	if profile == nil {
		return nil, util.ErrNoProfile
	}

	var progress model.RoadmapProgress
	found, err := s.Store.Load(ctx, util.KeyRoadmapProgress, &progress)
	if err != nil {
		return nil, err
	}
	if found {
		return progress, nil
	}

	progress = Instantiate(TemplateForLevel(profile.Level, profile.Language))
	if err := s.Store.Save(ctx, util.KeyRoadmapProgress, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// Regenerate replaces any stored progress with a fresh roadmap for the level.
func (s *RoadmapService) Regenerate(ctx context.Context, level model.Level, lang model.Language) (model.RoadmapProgress, error) {
	progress := Instantiate(TemplateForLevel(level, lang))
	if err := s.Store.Save(ctx, util.KeyRoadmapProgress, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ToggleDay sets a day's completion flag. Checking a day force-completes all
// of its resources; unchecking leaves resource flags untouched.
func (s *RoadmapService) ToggleDay(ctx context.Context, profile *model.UserProfile, week, day int, checked bool) (model.RoadmapProgress, error) {
	progress, err := s.Get(ctx, profile)
	if err != nil {
		return nil, err
	}

	d, err := findDay(progress, week, day)
	if err != nil {
		return nil, err
	}

	d.Completed = checked
	if checked {
		for i := range d.Resources {
			d.Resources[i].Completed = true
		}
	}

	monitoring.RoadmapToggles.WithLabelValues("day").Inc()
	if err := s.Store.Save(ctx, util.KeyRoadmapProgress, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ToggleResource sets a single resource's completion flag. Completing the last
// open resource of a day auto-completes the day; unchecking a resource never
// unchecks the day.
func (s *RoadmapService) ToggleResource(ctx context.Context, profile *model.UserProfile, week, day, res int, checked bool) (model.RoadmapProgress, error) {
	progress, err := s.Get(ctx, profile)
	if err != nil {
		return nil, err
	}

	d, err := findDay(progress, week, day)
	if err != nil {
		return nil, err
	}
	if res < 0 || res >= len(d.Resources) {
		return nil, util.ErrIndexOutOfRange
	}

	d.Resources[res].Completed = checked
	if checked {
		all := true
		for i := range d.Resources {
			if !d.Resources[i].Completed {
				all = false
				break
			}
		}
		if all {
			d.Completed = true
		}
	}

	monitoring.RoadmapToggles.WithLabelValues("resource").Inc()
	if err := s.Store.Save(ctx, util.KeyRoadmapProgress, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// OverallProgress is the percentage of completed resources, rounded to the
// nearest integer. Zero resources yields zero.
func OverallProgress(progress model.RoadmapProgress) int {
	total := 0
	completed := 0
	for _, week := range progress {
		for _, day := range week.Days {
			for _, res := range day.Resources {
				total++
				if res.Completed {
					completed++
				}
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func findDay(progress model.RoadmapProgress, week, day int) (*model.RoadmapDay, error) {
	for i := range progress {
		if progress[i].Week != week {
			continue
		}
		for j := range progress[i].Days {
			if progress[i].Days[j].Day == day {
				return &progress[i].Days[j], nil
			}
		}
		return nil, util.ErrIndexOutOfRange
	}
	return nil, util.ErrIndexOutOfRange
}

func languageBasicsURL(lang model.Language) string {
	switch lang {
	case model.LanguageJava:
		return "https://docs.oracle.com/javase/tutorial/"
	case model.LanguagePython:
		return "https://docs.python.org/3/tutorial/"
	case model.LanguageJavaScript:
		return "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide"
	case model.LanguageCpp:
		return "https://www.learncpp.com/"
	case model.LanguageCsharp:
		return "https://docs.microsoft.com/en-us/dotnet/csharp/"
	default:
		return "https://www.w3schools.com/"
	}
}

func languageResourceURL(lang model.Language, topic string) string {
	switch lang {
	case model.LanguageJava:
		return "https://www.geeksforgeeks.org/java-programming-examples/#" + topic
	case model.LanguagePython:
		return "https://www.geeksforgeeks.org/python-programming-examples/#" + topic
	case model.LanguageJavaScript:
		return "https://www.w3schools.com/js/" + topic + ".asp"
	case model.LanguageCpp:
		return "https://www.geeksforgeeks.org/c-plus-plus/#" + topic
	case model.LanguageCsharp:
		return "https://www.geeksforgeeks.org/csharp-programming-language/#" + topic
	default:
		return "https://www.geeksforgeeks.org/" + string(lang) + "-" + topic + "/"
	}
}

func languageDocURL(lang model.Language, topic string) string {
	switch lang {
	case model.LanguageJava:
		return "https://docs.oracle.com/en/java/javase/11/docs/api/java.base/java/util/" + topic + ".html"
	case model.LanguagePython:
		return "https://docs.python.org/3/library/" + topic + ".html"
	case model.LanguageJavaScript:
		return "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/" + capitalize(topic)
	case model.LanguageCpp:
		return "https://en.cppreference.com/w/cpp/container/" + topic
	case model.LanguageCsharp:
		return "https://docs.microsoft.com/en-us/dotnet/api/system.collections.generic." + capitalize(topic)
	default:
		return "https://www.geeksforgeeks.org/" + string(lang) + "-" + topic + "/"
	}
}

func languageVideoURL(lang model.Language, topic string) string {
	return "https://www.youtube.com/results?search_query=" + string(lang) + "+" + strings.ReplaceAll(topic, "-", "+")
}

func languagePracticeURL(_ model.Language, topic string) string {
	return "https://leetcode.com/problemset/all/?search=" + strings.ReplaceAll(topic, "-", "+") + "&page=1"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
