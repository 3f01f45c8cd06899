package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"signlearn_backend/internal/config"
	"signlearn_backend/internal/controller"
	"signlearn_backend/internal/repository"
	"signlearn_backend/internal/service"
	"signlearn_backend/pkg/database"
	"signlearn_backend/pkg/logger"
	"signlearn_backend/pkg/monitoring"
	"signlearn_backend/pkg/security"
	"signlearn_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	tracer func(context.Context) error
}

type repositories struct {
	user     *repository.UserRepository
	course   *repository.CourseRepository
	pkg      *repository.PackageRepository
	progress *repository.ProgressRepository
	event    *repository.LearningEventRepository
	attempt  *repository.QuizAttemptRepository
}

type services struct {
	user      *service.UserService
	course    *service.CourseService
	pkg       *service.PackageService
	learning  *service.LearningService
	quiz      *service.QuizService
	analytics *service.AnalyticsService
	dashboard *service.DashboardService
	translate *service.TranslateService
	content   *service.ContentService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	course    *controller.CourseController
	pkg       *controller.PackageController
	learning  *controller.LearningController
	quiz      *controller.QuizController
	analytics *controller.AnalyticsController
	translate *controller.TranslateController
	admin     *controller.AdminController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		course:   repository.NewCourseRepository(db),
		pkg:      repository.NewPackageRepository(db),
		progress: repository.NewProgressRepository(db),
		event:    repository.NewLearningEventRepository(db),
		attempt:  repository.NewQuizAttemptRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	return &services{
		user:      service.NewUserService(repos.user, repos.pkg, repos.course, cfg),
		course:    service.NewCourseService(repos.course),
		pkg:       service.NewPackageService(repos.pkg, repos.course),
		learning:  service.NewLearningService(repos.event, repos.progress, repos.user, repos.course),
		quiz:      service.NewQuizService(repos.attempt, repos.progress, repos.user, repos.course),
		analytics: service.NewAnalyticsService(repos.event, repos.progress, repos.attempt, repos.user),
		dashboard: service.NewDashboardService(repos.course, repos.pkg, repos.user, rdb),
		translate: service.NewTranslateService(&cfg.Recognition),
		content:   service.NewContentService(repos.course, storage),
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.user),
		user:      controller.NewUserController(s.user),
		course:    controller.NewCourseController(s.course),
		pkg:       controller.NewPackageController(s.pkg),
		learning:  controller.NewLearningController(s.learning),
		quiz:      controller.NewQuizController(s.quiz),
		analytics: controller.NewAnalyticsController(s.analytics, s.dashboard),
		translate: controller.NewTranslateController(s.translate),
		admin:     controller.NewAdminController(s.learning, s.content),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration complete")
	}

	// Redis only backs the dashboard cache, so a missing instance degrades
	// instead of failing startup.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, dashboard caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("signlearn-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp.Shutdown
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
