package controller

import (
	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/service"
	"cogscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service *service.CatalogService
}

func NewCatalogController(svc *service.CatalogService) *CatalogController {
	return &CatalogController{Service: svc}
}

// @Summary Get the screening question catalog
// @Description Grouped questions with localized text and options for form rendering
// @Tags catalog
// @Produce json
// @Param lang query string false "Language (en or ar)" default(en)
// @Success 200 {object} util.Response{data=service.CatalogView}
// @Router /api/catalog/questions [get]
func (c *CatalogController) Questions(ctx *gin.Context) {
	lang := model.Language(ctx.DefaultQuery("lang", string(model.LanguageEnglish)))
	util.Success(ctx, c.Service.Questions(lang))
}
