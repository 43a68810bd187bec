package controller

import (
	"errors"

	"dsa_roadmap_backend/internal/service"
	"dsa_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

type setThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// @Summary Get the user profile
// @Tags profile
// @Produce json
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	profile, err := c.ProfileService.Get(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, util.ErrNoProfile) {
			util.Error(ctx, 404, "no user profile; take the assessment first")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	theme, err := c.ProfileService.Theme(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"profile": profile, "theme": theme})
}

// @Summary Clear all application data
// @Description Removes the profile, assessment state, roadmap progress, bookmarks and notes
// @Tags profile
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/profile [delete]
func (c *ProfileController) Clear(ctx *gin.Context) {
	if err := c.ProfileService.Clear(ctx.Request.Context()); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"cleared": true})
}

// @Summary Set the theme preference
// @Tags profile
// @Accept json
// @Produce json
// @Param request body setThemeRequest true "Theme name, light or dark"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/profile/theme [put]
func (c *ProfileController) SetTheme(ctx *gin.Context) {
	var req setThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "theme is required")
		return
	}
	if req.Theme != "light" && req.Theme != "dark" {
		util.BadRequest(ctx, "theme must be light or dark")
		return
	}

	if err := c.ProfileService.SetTheme(ctx.Request.Context(), req.Theme); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"theme": req.Theme})
}
