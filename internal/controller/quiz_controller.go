package controller

import (
	"errors"

	"signlearn_backend/internal/service"
	"signlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// SubmitAttempt appends one ledger row and mirrors it into progress.
// POST /api/quizzes/:courseId/:quizId/attempts
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	courseID := ctx.Param("courseId")
	quizID := ctx.Param("quizId")
	if courseID == "" || quizID == "" {
		util.BadRequest(ctx, "invalid course or quiz id")
		return
	}

	var input service.QuizAttemptInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitAttempt(courseID, quizID, input)
	if err != nil {
		if errors.Is(err, util.ErrAttemptConflict) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"attemptId":      result.Attempt.ID,
		"attemptNo":      result.Attempt.AttemptNo,
		"passed":         result.Attempt.Passed,
		"quizResult":     result.QuizResult,
		"progressStatus": result.ProgressNow,
	})
}

// GET /api/quizzes/:courseId/:quizId/attempts?userId=
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	courseID := ctx.Param("courseId")
	quizID := ctx.Param("quizId")
	userID := util.MustParseUint(ctx.Query("userId"))
	if courseID == "" || quizID == "" || userID == 0 {
		util.BadRequest(ctx, "invalid course, quiz or user id")
		return
	}

	attempts, err := c.QuizService.ListAttempts(userID, courseID, quizID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}
