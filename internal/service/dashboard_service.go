package service

import (
	"context"
	"encoding/json"
	"time"

	"signlearn_backend/internal/model"
	"signlearn_backend/internal/repository"
	"signlearn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "signlearn:dashboard"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardService builds the global platform snapshot. The result is cached
// in redis for a short window; a nil or unreachable redis client degrades to
// computing on every request.
type DashboardService struct {
	CourseRepo  *repository.CourseRepository
	PackageRepo *repository.PackageRepository
	UserRepo    *repository.UserRepository
	Redis       *redis.Client
}

func NewDashboardService(
	courseRepo *repository.CourseRepository,
	packageRepo *repository.PackageRepository,
	userRepo *repository.UserRepository,
	redisClient *redis.Client,
) *DashboardService {
	return &DashboardService{
		CourseRepo:  courseRepo,
		PackageRepo: packageRepo,
		UserRepo:    userRepo,
		Redis:       redisClient,
	}
}

type DashboardStats struct {
	TotalCourses    int64           `json:"totalCourses"`
	TotalPackages   int64           `json:"totalPackages"`
	ActiveUsers     int64           `json:"activeUsers"`
	PopularCourses  []model.Course  `json:"popularCourses"`
	PopularPackages []model.Package `json:"popularPackages"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	stats := &DashboardStats{GeneratedAt: time.Now()}

	var err error
	if stats.TotalCourses, err = s.CourseRepo.CountPublished(); err != nil {
		return nil, err
	}
	if stats.TotalPackages, err = s.PackageRepo.CountActive(); err != nil {
		return nil, err
	}
	if stats.ActiveUsers, err = s.UserRepo.CountActive(); err != nil {
		return nil, err
	}
	if stats.PopularCourses, err = s.CourseRepo.Popular(5); err != nil {
		return nil, err
	}
	if stats.PopularPackages, err = s.PackageRepo.Popular(3); err != nil {
		return nil, err
	}

	s.toCache(ctx, stats)
	return stats, nil
}

func (s *DashboardService) fromCache(ctx context.Context) *DashboardStats {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("dashboard cache read failed", zap.Error(err))
		}
		return nil
	}
	var stats DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *DashboardService) toCache(ctx context.Context, stats *DashboardStats) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
		logger.Log.Warn("dashboard cache write failed", zap.Error(err))
	}
}
