package controller

import (
	"errors"

	"dsa_roadmap_backend/internal/service"
	"dsa_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
	ProfileService *service.ProfileService
}

func NewRoadmapController(roadmapService *service.RoadmapService, profileService *service.ProfileService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService, ProfileService: profileService}
}

type toggleDayRequest struct {
	Week      int  `json:"week" binding:"required"`
	Day       int  `json:"day" binding:"required"`
	Completed bool `json:"completed"`
}

type toggleResourceRequest struct {
	Week      int  `json:"week" binding:"required"`
	Day       int  `json:"day" binding:"required"`
	Resource  *int `json:"resource" binding:"required"`
	Completed bool `json:"completed"`
}

// @Summary Get the roadmap
// @Description Lazily generates the roadmap from the profile on first access
// @Tags roadmap
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/roadmap [get]
func (c *RoadmapController) Get(ctx *gin.Context) {
	profile, err := c.ProfileService.Get(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, util.ErrNoProfile) {
			util.Success(ctx, gin.H{"redirect": "/assessment", "reason": "assessment required"})
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	progress, err := c.RoadmapService.Get(ctx.Request.Context(), profile)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"profile":  profile,
		"roadmap":  progress,
		"progress": service.OverallProgress(progress),
	})
}

// @Summary Toggle a roadmap day
// @Description Checking a day force-completes all of its resources
// @Tags roadmap
// @Accept json
// @Produce json
// @Param request body toggleDayRequest true "Week and day numbers with the new state"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/roadmap/days [patch]
func (c *RoadmapController) ToggleDay(ctx *gin.Context) {
	var req toggleDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "week and day are required")
		return
	}

	profile, err := c.ProfileService.Get(ctx.Request.Context())
	if err != nil {
		c.mapError(ctx, err)
		return
	}

	progress, err := c.RoadmapService.ToggleDay(ctx.Request.Context(), profile, req.Week, req.Day, req.Completed)
	if err != nil {
		c.mapError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"roadmap":  progress,
		"progress": service.OverallProgress(progress),
	})
}

// @Summary Toggle a roadmap resource
// @Description Completing the last open resource of a day auto-completes the day
// @Tags roadmap
// @Accept json
// @Produce json
// @Param request body toggleResourceRequest true "Week, day and resource index with the new state"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/roadmap/resources [patch]
func (c *RoadmapController) ToggleResource(ctx *gin.Context) {
	var req toggleResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Resource == nil {
		util.BadRequest(ctx, "week, day and resource are required")
		return
	}

	profile, err := c.ProfileService.Get(ctx.Request.Context())
	if err != nil {
		c.mapError(ctx, err)
		return
	}

	progress, err := c.RoadmapService.ToggleResource(ctx.Request.Context(), profile, req.Week, req.Day, *req.Resource, req.Completed)
	if err != nil {
		c.mapError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"roadmap":  progress,
		"progress": service.OverallProgress(progress),
	})
}

// @Summary Get the overall progress percentage
// @Tags roadmap
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/roadmap/progress [get]
func (c *RoadmapController) Progress(ctx *gin.Context) {
	profile, err := c.ProfileService.Get(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, util.ErrNoProfile) {
			util.Success(ctx, gin.H{"progress": 0})
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	progress, err := c.RoadmapService.Get(ctx.Request.Context(), profile)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"progress": service.OverallProgress(progress)})
}

func (c *RoadmapController) mapError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNoProfile):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrIndexOutOfRange):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
