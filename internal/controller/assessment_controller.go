package controller

import (
	"errors"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/service"
	"dsa_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

type startAssessmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Language string `json:"language" binding:"required"`
	Level    string `json:"level" binding:"required"`
}

type submitAssessmentRequest struct {
	Answers []*int `json:"answers" binding:"required"`
}

// @Summary Start a placement assessment
// @Description Saves the profile and returns the question set for the claimed level, without answers
// @Tags assessment
// @Accept json
// @Produce json
// @Param request body startAssessmentRequest true "Name, language and claimed level"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/assessment/start [post]
func (c *AssessmentController) Start(ctx *gin.Context) {
	var req startAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "name, language and level are required")
		return
	}

	lang := model.Language(req.Language)
	if !lang.Valid() {
		util.BadRequest(ctx, "unknown language")
		return
	}

	questions, err := c.AssessmentService.Start(ctx.Request.Context(), req.Name, lang, model.Level(req.Level))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"questions": questions})
}

// @Summary Get the in-progress question set
// @Description Returns the stored questions in student view
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assessment/questions [get]
func (c *AssessmentController) Questions(ctx *gin.Context) {
	questions, err := c.AssessmentService.Questions(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, util.ErrNoQuestions) {
			util.Error(ctx, 404, "no assessment in progress")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"questions": questions})
}

// @Summary Submit assessment answers
// @Description Grades the answers, adjusts the level and regenerates the roadmap
// @Tags assessment
// @Accept json
// @Produce json
// @Param request body submitAssessmentRequest true "One selected option index per question, null for skipped"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/assessment/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	var req submitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "answers array is required")
		return
	}

	results, err := c.AssessmentService.Submit(ctx.Request.Context(), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoQuestions):
			util.BadRequest(ctx, "no assessment in progress")
		case errors.Is(err, util.ErrAnswerCountMismatch):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrNoProfile):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, results)
}

// @Summary Get the last assessment results
// @Description Missing or malformed results yield a restart-assessment payload instead of an error
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/results [get]
func (c *AssessmentController) Results(ctx *gin.Context) {
	results, err := c.AssessmentService.Results(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, util.ErrMalformedResults) {
			util.Success(ctx, gin.H{"redirect": "/assessment", "reason": "results missing or malformed"})
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}
