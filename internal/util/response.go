package util

import (
	"errors"
	"net/http"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the uniform API envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageResponse is the uniform paged-list envelope.
type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// FailFromError maps the domain error taxonomy onto HTTP responses with a
// message localized to lang. Unknown errors are logged and returned as 500.
func FailFromError(c *gin.Context, lang model.Language, err error) {
	var (
		vErr  *ValidationError
		dErr  *DuplicateResponseError
		tErr  *InvalidTransitionError
		iErr  *IncompleteReviewError
		cfErr *ConflictError
	)
	switch {
	case errors.As(err, &vErr):
		Error(c, http.StatusBadRequest, T(lang, "error.validation")+" "+vErr.Error())
	case errors.As(err, &dErr):
		Error(c, http.StatusConflict, T(lang, "error.duplicate_response"))
	case errors.As(err, &tErr):
		Error(c, http.StatusConflict, T(lang, "error.invalid_transition")+" ("+string(tErr.From)+" -> "+string(tErr.To)+")")
	case errors.As(err, &iErr):
		Error(c, http.StatusUnprocessableEntity, T(lang, "error.incomplete_review"))
	case errors.As(err, &cfErr):
		Error(c, http.StatusConflict, T(lang, "error.review_conflict"))
	case errors.Is(err, ErrPatientNotFound):
		Error(c, http.StatusNotFound, T(lang, "error.patient_not_found"))
	case errors.Is(err, ErrAssessmentNotFound):
		NotFound(c)
	default:
		LogInternalError(c, err)
	}
}
