package controller

import (
	"errors"
	"strconv"

	"signlearn_backend/internal/service"
	"signlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	LearningService *service.LearningService
	ContentService  *service.ContentService
}

func NewAdminController(learningService *service.LearningService, contentService *service.ContentService) *AdminController {
	return &AdminController{
		LearningService: learningService,
		ContentService:  contentService,
	}
}

// RecentEvents exposes raw telemetry for support and debugging.
// GET /api/admin/learning-events/:userId
func (c *AdminController) RecentEvents(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	events, err := c.LearningService.RecentEvents(userID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, events)
}

// UploadCourseVideo accepts a multipart video and fills duration metadata.
// POST /api/admin/courses/:id/video
func (c *AdminController) UploadCourseVideo(ctx *gin.Context) {
	courseID := ctx.Param("id")
	if courseID == "" {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	fileHeader, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	course, err := c.ContentService.UploadCourseVideo(ctx.Request.Context(), courseID, fileHeader)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}
