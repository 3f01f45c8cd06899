package controller

import (
	"signlearn_backend/internal/service"
	"signlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
	DashboardService *service.DashboardService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService, dashboardService *service.DashboardService) *AnalyticsController {
	return &AnalyticsController{
		AnalyticsService: analyticsService,
		DashboardService: dashboardService,
	}
}

// GET /api/analytics/summary/:userId
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	summary, err := c.AnalyticsService.Summary(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// GET /api/analytics/dashboard
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	stats, err := c.DashboardService.Stats(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
