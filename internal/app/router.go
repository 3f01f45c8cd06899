package app

import (
	"signlearn_backend/internal/config"
	"signlearn_backend/internal/middleware"
	"signlearn_backend/internal/model"
	"signlearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	public := router.Group("/api")
	{
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/courses", c.course.List)
		public.GET("/courses/popular", c.course.Popular)
		public.GET("/courses/:id", c.course.Get)
		public.GET("/categories", c.course.Categories)

		public.GET("/packages", c.pkg.List)
		public.GET("/packages/popular", c.pkg.Popular)
		public.GET("/packages/:id", c.pkg.Get)

		public.POST("/translate", c.translate.Translate)
		public.POST("/summarize", c.translate.Summarize)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.POST("/learning/events", c.learning.RecordEvent)

		authorized.GET("/users/:userId", c.user.GetProfile)
		authorized.POST("/users/:userId/enroll/:packageId", c.user.EnrollInPackage)

		authorized.GET("/users/:userId/progress", c.learning.ListProgress)
		authorized.GET("/users/:userId/progress/:courseId", c.learning.GetProgress)
		authorized.POST("/users/:userId/progress/:courseId", c.learning.UpdateProgress)
		authorized.POST("/users/:userId/progress/:courseId/pause", c.learning.PauseCourse)
		authorized.POST("/users/:userId/progress/:courseId/resume", c.learning.ResumeCourse)
		authorized.POST("/users/:userId/progress/:courseId/notes", c.learning.AddNote)
		authorized.POST("/users/:userId/progress/:courseId/bookmarks", c.learning.AddBookmark)
		authorized.POST("/users/:userId/progress/:courseId/rating", c.learning.RateCourse)

		authorized.POST("/quizzes/:courseId/:quizId/attempts", c.quiz.SubmitAttempt)
		authorized.GET("/quizzes/:courseId/:quizId/attempts", c.quiz.ListAttempts)

		authorized.GET("/analytics/summary/:userId", c.analytics.Summary)
		authorized.GET("/analytics/dashboard", c.analytics.Dashboard)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.UserTypeMiddleware(model.UserEducator))
	{
		admin.GET("/learning-events/:userId", c.admin.RecentEvents)
		admin.POST("/courses/:id/video", c.admin.UploadCourseVideo)
	}
}
