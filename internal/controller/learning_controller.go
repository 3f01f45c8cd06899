package controller

import (
	"errors"

	"signlearn_backend/internal/model"
	"signlearn_backend/internal/service"
	"signlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

// RecordEvent ingests one telemetry event and rolls it into progress.
// POST /api/learning/events
func (c *LearningController) RecordEvent(ctx *gin.Context) {
	var input service.LearningEventInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.LearningService.RecordEvent(input)
	if err != nil {
		if errors.Is(err, util.ErrInvalidEventType) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"eventId": event.ID})
}

// GET /api/users/:userId/progress
func (c *LearningController) ListProgress(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	records, err := c.LearningService.ListProgress(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// GET /api/users/:userId/progress/:courseId
func (c *LearningController) GetProgress(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	courseID := ctx.Param("courseId")
	if userID == 0 || courseID == "" {
		util.BadRequest(ctx, "invalid user or course id")
		return
	}

	progress, err := c.LearningService.GetProgress(userID, courseID)
	if err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// POST /api/users/:userId/progress/:courseId
func (c *LearningController) UpdateProgress(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	courseID := ctx.Param("courseId")
	if userID == 0 || courseID == "" {
		util.BadRequest(ctx, "invalid user or course id")
		return
	}

	var input service.ProgressUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.LearningService.UpdateProgress(userID, courseID, input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"progress": progress, "message": "progress updated"})
}

// POST /api/users/:userId/progress/:courseId/pause
func (c *LearningController) PauseCourse(ctx *gin.Context) {
	c.transition(ctx, c.LearningService.PauseCourse)
}

// POST /api/users/:userId/progress/:courseId/resume
func (c *LearningController) ResumeCourse(ctx *gin.Context) {
	c.transition(ctx, c.LearningService.ResumeCourse)
}

func (c *LearningController) transition(ctx *gin.Context, op func(uint, string) (*model.UserProgress, error)) {
	userID := util.MustParseUint(ctx.Param("userId"))
	courseID := ctx.Param("courseId")
	if userID == 0 || courseID == "" {
		util.BadRequest(ctx, "invalid user or course id")
		return
	}

	progress, err := op(userID, courseID)
	if err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

type noteInput struct {
	Content   string  `json:"content" binding:"required"`
	Timestamp float64 `json:"timestamp"`
}

// POST /api/users/:userId/progress/:courseId/notes
func (c *LearningController) AddNote(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	courseID := ctx.Param("courseId")

	var input noteInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.LearningService.AddNote(userID, courseID, input.Content, input.Timestamp)
	if err != nil {
		c.progressError(ctx, err)
		return
	}
	util.Created(ctx, progress)
}

type bookmarkInput struct {
	Title     string  `json:"title" binding:"required"`
	Timestamp float64 `json:"timestamp"`
}

// POST /api/users/:userId/progress/:courseId/bookmarks
func (c *LearningController) AddBookmark(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	courseID := ctx.Param("courseId")

	var input bookmarkInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.LearningService.AddBookmark(userID, courseID, input.Title, input.Timestamp)
	if err != nil {
		c.progressError(ctx, err)
		return
	}
	util.Created(ctx, progress)
}

type ratingInput struct {
	Stars  int    `json:"stars" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// POST /api/users/:userId/progress/:courseId/rating
func (c *LearningController) RateCourse(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	courseID := ctx.Param("courseId")

	var input ratingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.LearningService.RateCourse(userID, courseID, input.Stars, input.Review)
	if err != nil {
		c.progressError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

func (c *LearningController) progressError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProgressNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrMissingField):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
