package controller

import (
	"encoding/json"
	"strconv"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/service"
	"cogscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
	Scores  *service.ScoreService
}

func NewAssessmentController(svc *service.AssessmentService, scores *service.ScoreService) *AssessmentController {
	return &AssessmentController{Service: svc, Scores: scores}
}

// requestLanguage picks the language used for error messages. The payload
// language wins when present; the lang query parameter covers reads.
func requestLanguage(ctx *gin.Context, fallback model.Language) model.Language {
	if l := model.Language(ctx.Query("lang")); l == model.LanguageArabic || l == model.LanguageEnglish {
		return l
	}
	if fallback == model.LanguageArabic || fallback == model.LanguageEnglish {
		return fallback
	}
	return model.LanguageEnglish
}

func assessmentID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		util.BadRequest(ctx, "invalid assessment id")
		return 0, false
	}
	return uint(id), true
}

// @Summary Submit a completed screening
// @Description Validates the full answer set and creates the assessment in SUBMITTED state with its allocated number
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SubmissionInput true "Submission payload"
// @Success 201 {object} util.Response{data=model.Assessment}
// @Failure 400 {object} util.Response "Validation failure"
// @Failure 404 {object} util.Response "Unknown patient"
// @Router /api/assessments [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	var req service.SubmissionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.Submit(ctx.Request.Context(), req)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, req.Language), err)
		return
	}
	util.Created(ctx, a)
}

// @Summary Open a draft screening
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.DraftInput true "Draft header"
// @Success 201 {object} util.Response{data=model.Assessment}
// @Router /api/assessments/drafts [post]
func (c *AssessmentController) CreateDraft(ctx *gin.Context) {
	var req service.DraftInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.CreateDraft(req)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, req.Language), err)
		return
	}
	util.Created(ctx, a)
}

type recordResponseRequest struct {
	QuestionID uint            `json:"questionId" binding:"required"`
	Value      json.RawMessage `json:"value" binding:"required"`
}

// @Summary Record one answer on a draft
// @Description Answers are append-only; a second answer for the same question is rejected
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Param body body recordResponseRequest true "Answer"
// @Success 201 {object} util.Response{data=model.AssessmentResponse}
// @Failure 409 {object} util.Response "Question already answered"
// @Router /api/assessments/{id}/responses [post]
func (c *AssessmentController) RecordResponse(ctx *gin.Context) {
	id, ok := assessmentID(ctx)
	if !ok {
		return
	}
	var req recordResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.Service.RecordResponse(id, req.QuestionID, req.Value)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Created(ctx, resp)
}

// @Summary Submit a draft screening
// @Description Allocates the assessment number and moves the draft to SUBMITTED
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 409 {object} util.Response "Not a draft"
// @Router /api/assessments/{id}/submit [post]
func (c *AssessmentController) SubmitDraft(ctx *gin.Context) {
	id, ok := assessmentID(ctx)
	if !ok {
		return
	}
	a, err := c.Service.SubmitDraft(ctx.Request.Context(), id)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Success(ctx, a)
}

// @Summary Get one assessment
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 404 {object} util.Response
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	id, ok := assessmentID(ctx)
	if !ok {
		return
	}
	a, err := c.Service.Get(id)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Success(ctx, a)
}

// @Summary Look up an assessment by its allocated number
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param number path string true "Assessment number, e.g. ASM-2025-00042"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 404 {object} util.Response
// @Router /api/assessments/number/{number} [get]
func (c *AssessmentController) GetByNumber(ctx *gin.Context) {
	a, err := c.Service.GetByNumber(ctx.Param("number"))
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Success(ctx, a)
}

// @Summary List the recorded answers of an assessment
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=[]model.AssessmentResponse}
// @Router /api/assessments/{id}/responses [get]
func (c *AssessmentController) ListResponses(ctx *gin.Context) {
	id, ok := assessmentID(ctx)
	if !ok {
		return
	}
	responses, err := c.Service.Responses(id)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Success(ctx, responses)
}

// @Summary List assessments
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "Filter by status"
// @Param year query int false "Filter by year"
// @Param patientId query string false "Filter by patient"
// @Success 200 {object} util.Response
// @Router /api/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	year, _ := strconv.Atoi(ctx.DefaultQuery("year", "0"))
	status := model.Status(ctx.Query("status"))
	patientID := ctx.Query("patientId")

	as, total, err := c.Service.List(page, limit, status, year, patientID)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Success(ctx, gin.H{
		"items": as,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// @Summary Aggregate instrument scores for an assessment
// @Description Per-instrument totals with coverage and anomaly reporting
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=service.ScoreReport}
// @Failure 404 {object} util.Response
// @Router /api/assessments/{id}/scores [get]
func (c *AssessmentController) GetScores(ctx *gin.Context) {
	id, ok := assessmentID(ctx)
	if !ok {
		return
	}
	report, err := c.Scores.Aggregate(id)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Success(ctx, report)
}
