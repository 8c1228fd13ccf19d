package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/service"
	"cogscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	Service *service.PatientService
}

func NewPatientController(svc *service.PatientService) *PatientController {
	return &PatientController{Service: svc}
}

// swagger:model RegisterPatientRequest
type RegisterPatientRequest struct {
	MRN               string `json:"mrn" binding:"required"`
	FirstName         string `json:"firstName" binding:"required"`
	LastName          string `json:"lastName" binding:"required"`
	DateOfBirth       string `json:"dateOfBirth"`
	Gender            string `json:"gender"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	PreferredLanguage string `json:"preferredLanguage"`
}

// @Summary Register a patient record
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterPatientRequest true "Patient details"
// @Success 201 {object} util.Response{data=model.Patient}
// @Failure 409 {object} util.Response "MRN already registered"
// @Router /api/patients [post]
func (c *PatientController) Register(ctx *gin.Context) {
	var req RegisterPatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p := &model.Patient{
		MRN:               req.MRN,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Gender:            req.Gender,
		Phone:             req.Phone,
		Email:             req.Email,
		PreferredLanguage: model.Language(req.PreferredLanguage),
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(util.DateFormat, req.DateOfBirth)
		if err != nil {
			util.BadRequest(ctx, "dateOfBirth must use "+util.DateFormat)
			return
		}
		p.DateOfBirth = &dob
	}

	if err := c.Service.Register(p); err != nil {
		if errors.Is(err, util.ErrMRNRegistered) {
			util.Error(ctx, http.StatusConflict, err.Error())
			return
		}
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Created(ctx, p)
}

// @Summary Get one patient
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} util.Response{data=model.Patient}
// @Failure 404 {object} util.Response
// @Router /api/patients/{id} [get]
func (c *PatientController) Get(ctx *gin.Context) {
	p, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		util.FailFromError(ctx, requestLanguage(ctx, ""), err)
		return
	}
	util.Success(ctx, p)
}

// @Summary List patients
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Search MRN or name"
// @Success 200 {object} util.Response
// @Router /api/patients [get]
func (c *PatientController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	ps, total, err := c.Service.List(page, limit, ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"items": ps,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
