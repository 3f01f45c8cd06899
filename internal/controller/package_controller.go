package controller

import (
	"errors"
	"strconv"

	"signlearn_backend/internal/repository"
	"signlearn_backend/internal/service"
	"signlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PackageController struct {
	PackageService *service.PackageService
}

func NewPackageController(packageService *service.PackageService) *PackageController {
	return &PackageController{PackageService: packageService}
}

// GET /api/packages
func (c *PackageController) List(ctx *gin.Context) {
	filter := repository.PackageFilter{
		AgeGroup: ctx.Query("ageGroup"),
		Popular:  ctx.Query("popular") == "true",
		Search:   ctx.Query("search"),
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	packages, err := c.PackageService.List(filter, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, packages)
}

// GET /api/packages/popular
func (c *PackageController) Popular(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "3"))

	packages, err := c.PackageService.Popular(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, packages)
}

// GET /api/packages/:id
func (c *PackageController) Get(ctx *gin.Context) {
	detail, err := c.PackageService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPackageNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}
