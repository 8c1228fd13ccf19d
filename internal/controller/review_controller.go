package controller

import (
	"cogscreen_backend/internal/service"
	"cogscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *service.ReviewService
}

func NewReviewController(svc *service.ReviewService) *ReviewController {
	return &ReviewController{Service: svc}
}

// @Summary Save a clinical review
// @Description Moves a submitted assessment through review. Completion requires non-empty notes; the version token guards against concurrent reviewers
// @Tags review
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Param body body service.ReviewInput true "Review payload"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 409 {object} util.Response "Illegal transition or stale version"
// @Failure 422 {object} util.Response "Completion without notes"
// @Router /api/assessments/{id}/review [put]
func (c *ReviewController) Save(ctx *gin.Context) {
	id, ok := assessmentID(ctx)
	if !ok {
		return
	}
	var req service.ReviewInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	a, err := c.Service.Save(ctx.Request.Context(), id, claims.UserID, req)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Success(ctx, a)
}

// @Summary Archive a completed assessment
// @Description Terminal transition; clinical fields are frozen afterwards
// @Tags review
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 409 {object} util.Response "Not completed"
// @Router /api/assessments/{id}/archive [post]
func (c *ReviewController) Archive(ctx *gin.Context) {
	id, ok := assessmentID(ctx)
	if !ok {
		return
	}
	a, err := c.Service.Archive(id)
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Success(ctx, a)
}
