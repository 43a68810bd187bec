package controller

import (
	"context"
	"errors"
	"strings"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/service"
	"dsa_roadmap_backend/internal/util"
	"dsa_roadmap_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pageBuilder assembles the JSON payload for one page.
type pageBuilder func(ctx context.Context) (gin.H, error)

// PageController dispatches fragment paths to page payloads. The route table
// is fixed at construction; unknown paths fall back to the home page rather
// than erroring, mirroring a client-side router.
type PageController struct {
	ProfileService    *service.ProfileService
	AssessmentService *service.AssessmentService
	RoadmapService    *service.RoadmapService
	CatalogService    *service.CatalogService

	routes map[string]pageBuilder
}

func NewPageController(
	profileService *service.ProfileService,
	assessmentService *service.AssessmentService,
	roadmapService *service.RoadmapService,
	catalogService *service.CatalogService,
) *PageController {
	c := &PageController{
		ProfileService:    profileService,
		AssessmentService: assessmentService,
		RoadmapService:    roadmapService,
		CatalogService:    catalogService,
	}
	c.routes = map[string]pageBuilder{
		"/":           c.homePage,
		"/assessment": c.assessmentPage,
		"/roadmap":    c.roadmapPage,
		"/resources":  c.resourcesPage,
		"/projects":   c.projectsPage,
		"/blogs":      c.blogsPage,
		"/books":      c.booksPage,
		"/algorithms": c.algorithmsPage,
	}
	return c
}

// @Summary Render a page payload
// @Description Unknown paths return the home page; dispatch never errors on path
// @Tags pages
// @Produce json
// @Param path path string true "Fragment path"
// @Success 200 {object} util.Response
// @Router /api/pages/{path} [get]
func (c *PageController) Render(ctx *gin.Context) {
	path := strings.TrimSuffix(ctx.Param("path"), "/")
	if path == "" {
		path = "/"
	}

	builder, ok := c.routes[path]
	if !ok {
		builder = c.routes["/"]
	}
	if builder == nil {
		logger.Log.Error("nil page builder", zap.String("path", path))
		util.Success(ctx, gin.H{"page": "not-found", "title": "Page not found"})
		return
	}

	payload, err := builder(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, payload)
}

func (c *PageController) homePage(ctx context.Context) (gin.H, error) {
	payload := gin.H{
		"page":  "home",
		"title": "DSA Roadmap",
	}

	profile, err := c.ProfileService.Get(ctx)
	if err != nil {
		if errors.Is(err, util.ErrNoProfile) {
			payload["setupRequired"] = true
			return payload, nil
		}
		return nil, err
	}

	progress, err := c.RoadmapService.Get(ctx, profile)
	if err != nil {
		return nil, err
	}

	payload["profile"] = profile
	payload["progress"] = service.OverallProgress(progress)
	return payload, nil
}

func (c *PageController) assessmentPage(ctx context.Context) (gin.H, error) {
	payload := gin.H{
		"page":  "assessment",
		"title": "Skill Assessment",
	}

	questions, err := c.AssessmentService.Questions(ctx)
	if err != nil {
		if errors.Is(err, util.ErrNoQuestions) {
			payload["inProgress"] = false
			return payload, nil
		}
		return nil, err
	}

	payload["inProgress"] = true
	payload["questions"] = questions
	return payload, nil
}

func (c *PageController) roadmapPage(ctx context.Context) (gin.H, error) {
	payload := gin.H{
		"page":  "roadmap",
		"title": "Learning Roadmap",
	}

	profile, err := c.ProfileService.Get(ctx)
	if err != nil {
		if errors.Is(err, util.ErrNoProfile) {
			payload["redirect"] = "/assessment"
			return payload, nil
		}
		return nil, err
	}

	progress, err := c.RoadmapService.Get(ctx, profile)
	if err != nil {
		return nil, err
	}

	payload["profile"] = profile
	payload["roadmap"] = progress
	payload["progress"] = service.OverallProgress(progress)
	return payload, nil
}

func (c *PageController) resourcesPage(ctx context.Context) (gin.H, error) {
	lang := c.profileLanguage(ctx)
	views, err := c.CatalogService.ListResources(ctx, lang, "", "")
	if err != nil {
		return nil, err
	}
	return gin.H{
		"page":      "resources",
		"title":     "Learning Resources",
		"resources": views,
	}, nil
}

func (c *PageController) projectsPage(ctx context.Context) (gin.H, error) {
	lang := c.profileLanguage(ctx)
	views, err := c.CatalogService.ListProjects(ctx, lang, "", "")
	if err != nil {
		return nil, err
	}
	return gin.H{
		"page":     "projects",
		"title":    "Practice Projects",
		"projects": views,
	}, nil
}

func (c *PageController) blogsPage(ctx context.Context) (gin.H, error) {
	views, err := c.CatalogService.ListBlogs(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return gin.H{
		"page":  "blogs",
		"title": "Blog Articles",
		"blogs": views,
	}, nil
}

func (c *PageController) booksPage(ctx context.Context) (gin.H, error) {
	views, err := c.CatalogService.ListBooks(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return gin.H{
		"page":  "books",
		"title": "Recommended Books",
		"books": views,
	}, nil
}

func (c *PageController) algorithmsPage(ctx context.Context) (gin.H, error) {
	views, err := c.CatalogService.ListAlgorithms(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return gin.H{
		"page":       "algorithms",
		"title":      "Algorithm Reference",
		"algorithms": views,
	}, nil
}

func (c *PageController) profileLanguage(ctx context.Context) model.Language {
	profile, err := c.ProfileService.Get(ctx)
	if err != nil {
		return ""
	}
	return profile.Language
}
