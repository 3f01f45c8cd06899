package controller

import (
	"signlearn_backend/internal/service"
	"signlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TranslateController struct {
	TranslateService *service.TranslateService
}

func NewTranslateController(translateService *service.TranslateService) *TranslateController {
	return &TranslateController{TranslateService: translateService}
}

// POST /api/translate
func (c *TranslateController) Translate(ctx *gin.Context) {
	var input service.TranslateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.TranslateService.Translate(ctx.Request.Context(), input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// POST /api/summarize
func (c *TranslateController) Summarize(ctx *gin.Context) {
	var input service.SummarizeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.TranslateService.Summarize(ctx.Request.Context(), input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
