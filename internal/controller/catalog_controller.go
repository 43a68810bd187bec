package controller

import (
	"errors"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/service"
	"dsa_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the static curriculum tables together with the
// user's bookmark, completion and note state.
type CatalogController struct {
	CatalogService *service.CatalogService
	ProfileService *service.ProfileService
}

func NewCatalogController(catalogService *service.CatalogService, profileService *service.ProfileService) *CatalogController {
	return &CatalogController{CatalogService: catalogService, ProfileService: profileService}
}

type projectProgressRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type algorithmNotesRequest struct {
	Notes string `json:"notes"`
}

// currentLanguage resolves the language filter: explicit query param first,
// then the profile, then empty (common entries only).
func (c *CatalogController) currentLanguage(ctx *gin.Context) model.Language {
	if q := ctx.Query("language"); q != "" {
		return model.Language(q)
	}
	profile, err := c.ProfileService.Get(ctx.Request.Context())
	if err != nil {
		return ""
	}
	return profile.Language
}

// @Summary List learning resources
// @Tags catalog
// @Produce json
// @Param type query string false "Resource type filter"
// @Param search query string false "Title/description search"
// @Param language query string false "Language override"
// @Success 200 {object} util.Response
// @Router /api/resources [get]
func (c *CatalogController) ListResources(ctx *gin.Context) {
	views, err := c.CatalogService.ListResources(ctx.Request.Context(), c.currentLanguage(ctx), ctx.Query("type"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"resources": views})
}

// @Summary List blog articles
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Title/description search"
// @Success 200 {object} util.Response
// @Router /api/blogs [get]
func (c *CatalogController) ListBlogs(ctx *gin.Context) {
	views, err := c.CatalogService.ListBlogs(ctx.Request.Context(), ctx.Query("category"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"blogs": views})
}

// @Summary List recommended books
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Title/description search"
// @Success 200 {object} util.Response
// @Router /api/books [get]
func (c *CatalogController) ListBooks(ctx *gin.Context) {
	views, err := c.CatalogService.ListBooks(ctx.Request.Context(), ctx.Query("category"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"books": views})
}

// @Summary List practice projects
// @Tags catalog
// @Produce json
// @Param level query string false "Level filter"
// @Param search query string false "Title/description search"
// @Param language query string false "Language override"
// @Success 200 {object} util.Response
// @Router /api/projects [get]
func (c *CatalogController) ListProjects(ctx *gin.Context) {
	views, err := c.CatalogService.ListProjects(ctx.Request.Context(), c.currentLanguage(ctx), model.Level(ctx.Query("level")), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"projects": views})
}

// @Summary List algorithm reference entries
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Name/description search"
// @Success 200 {object} util.Response
// @Router /api/algorithms [get]
func (c *CatalogController) ListAlgorithms(ctx *gin.Context) {
	views, err := c.CatalogService.ListAlgorithms(ctx.Request.Context(), ctx.Query("category"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"algorithms": views})
}

// @Summary Toggle a resource bookmark
// @Tags catalog
// @Produce json
// @Param slug path string true "Resource slug"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/resources/{slug}/bookmark [post]
func (c *CatalogController) ToggleResourceBookmark(ctx *gin.Context) {
	bookmarked, err := c.CatalogService.ToggleResourceBookmark(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"bookmarked": bookmarked})
}

// @Summary Toggle a resource completion flag
// @Tags catalog
// @Produce json
// @Param slug path string true "Resource slug"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/resources/{slug}/complete [post]
func (c *CatalogController) ToggleResourceCompleted(ctx *gin.Context) {
	completed, err := c.CatalogService.ToggleResourceCompleted(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"completed": completed})
}

// @Summary Toggle a blog bookmark
// @Tags catalog
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/blogs/{slug}/bookmark [post]
func (c *CatalogController) ToggleBlogBookmark(ctx *gin.Context) {
	bookmarked, err := c.CatalogService.ToggleBlogBookmark(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"bookmarked": bookmarked})
}

// @Summary Toggle a book bookmark
// @Tags catalog
// @Produce json
// @Param slug path string true "Book slug"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/books/{slug}/bookmark [post]
func (c *CatalogController) ToggleBookBookmark(ctx *gin.Context) {
	bookmarked, err := c.CatalogService.ToggleBookBookmark(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"bookmarked": bookmarked})
}

// @Summary Set project progress
// @Tags catalog
// @Accept json
// @Produce json
// @Param slug path string true "Project slug"
// @Param request body projectProgressRequest true "Status and free-form notes"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/projects/{slug}/progress [put]
func (c *CatalogController) SetProjectProgress(ctx *gin.Context) {
	var req projectProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "status is required")
		return
	}

	entry := model.ProjectProgress{Status: model.ProjectStatus(req.Status), Notes: req.Notes}
	if err := c.CatalogService.SetProjectProgress(ctx.Request.Context(), ctx.Param("slug"), entry); err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"status": entry.Status, "notes": entry.Notes})
}

// @Summary Set algorithm notes
// @Tags catalog
// @Accept json
// @Produce json
// @Param slug path string true "Algorithm slug"
// @Param request body algorithmNotesRequest true "Notes text, empty to remove"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/algorithms/{slug}/notes [put]
func (c *CatalogController) SetAlgorithmNotes(ctx *gin.Context) {
	var req algorithmNotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	if err := c.CatalogService.SetAlgorithmNotes(ctx.Request.Context(), ctx.Param("slug"), req.Notes); err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"notes": req.Notes})
}

func (c *CatalogController) mapError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidStatus):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
