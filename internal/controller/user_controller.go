package controller

import (
	"errors"

	"signlearn_backend/internal/service"
	"signlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetProfile loads a user and advances the daily streak.
// GET /api/users/:userId
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	user, err := c.UserService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// POST /api/users/:userId/enroll/:packageId
func (c *UserController) EnrollInPackage(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	packageID := ctx.Param("packageId")
	if userID == 0 || packageID == "" {
		util.BadRequest(ctx, "invalid user or package id")
		return
	}

	user, err := c.UserService.EnrollInPackage(userID, packageID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrPackageNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"user": user, "message": "enrolled"})
}
