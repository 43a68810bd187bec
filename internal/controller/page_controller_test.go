package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/repository"
	"dsa_roadmap_backend/internal/service"
	"dsa_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageTestRouter(t *testing.T, store repository.KeyValueStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profiles := service.NewProfileService(store)
	roadmaps := service.NewRoadmapService(store)
	assessments := service.NewAssessmentService(store, roadmaps)
	catalogs := service.NewCatalogService(store, nil, nil, nil, nil, nil)

	page := NewPageController(profiles, assessments, roadmaps, catalogs)

	router := gin.New()
	router.GET("/api/pages/*path", page.Render)
	return router
}

func renderPage(t *testing.T, router *gin.Engine, path string) map[string]interface{} {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/pages"+path, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Code int                    `json:"code"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, http.StatusOK, envelope.Code)
	return envelope.Data
}

func TestRenderHomeWithoutProfile(t *testing.T) {
	router := newPageTestRouter(t, repository.NewMemoryKV())

	data := renderPage(t, router, "/")
	assert.Equal(t, "home", data["page"])
	assert.Equal(t, true, data["setupRequired"])
}

func TestRenderUnknownPathFallsBackToHome(t *testing.T) {
	router := newPageTestRouter(t, repository.NewMemoryKV())

	for _, path := range []string{"/no-such-page", "/roadmap/extra", "/admin"} {
		data := renderPage(t, router, path)
		assert.Equal(t, "home", data["page"], "path %s", path)
	}
}

func TestRenderAssessmentPage(t *testing.T) {
	store := repository.NewMemoryKV()
	router := newPageTestRouter(t, store)

	data := renderPage(t, router, "/assessment")
	assert.Equal(t, "assessment", data["page"])
	assert.Equal(t, false, data["inProgress"])

	// With a started assessment the questions are included.
	roadmaps := service.NewRoadmapService(store)
	assessments := service.NewAssessmentService(store, roadmaps)
	_, err := assessments.Start(context.Background(), "Ada", model.LanguagePython, model.LevelNewbie)
	require.NoError(t, err)

	data = renderPage(t, router, "/assessment")
	assert.Equal(t, true, data["inProgress"])
	questions, ok := data["questions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, questions, util.QuestionsPerAssessment)
}

func TestRenderRoadmapRedirectsWithoutProfile(t *testing.T) {
	router := newPageTestRouter(t, repository.NewMemoryKV())

	data := renderPage(t, router, "/roadmap")
	assert.Equal(t, "roadmap", data["page"])
	assert.Equal(t, "/assessment", data["redirect"])
}

func TestRenderRoadmapWithProfile(t *testing.T) {
	store := repository.NewMemoryKV()
	profile := model.UserProfile{
		Name:        "Ada",
		Language:    model.LanguageJava,
		Level:       model.LevelExpert,
		LastUpdated: time.Now(),
	}
	require.NoError(t, store.Save(context.Background(), util.KeyUserProfile, profile))

	router := newPageTestRouter(t, store)

	data := renderPage(t, router, "/roadmap")
	assert.Equal(t, "roadmap", data["page"])
	assert.NotContains(t, data, "redirect")
	assert.NotNil(t, data["roadmap"])
	assert.Equal(t, float64(0), data["progress"])
}

func TestRenderTrailingSlash(t *testing.T) {
	router := newPageTestRouter(t, repository.NewMemoryKV())

	data := renderPage(t, router, "/assessment/")
	assert.Equal(t, "assessment", data["page"])
}
