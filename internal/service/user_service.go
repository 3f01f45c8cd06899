package service

import (
	"errors"
	"time"

	"signlearn_backend/internal/config"
	"signlearn_backend/internal/model"
	"signlearn_backend/internal/repository"
	"signlearn_backend/internal/util"
	"signlearn_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo    *repository.UserRepository
	PackageRepo *repository.PackageRepository
	CourseRepo  *repository.CourseRepository
	Config      *config.Config
}

func NewUserService(
	userRepo *repository.UserRepository,
	packageRepo *repository.PackageRepository,
	courseRepo *repository.CourseRepository,
	cfg *config.Config,
) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		PackageRepo: packageRepo,
		CourseRepo:  courseRepo,
		Config:      cfg,
	}
}

type RegisterInput struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Phone    string         `json:"phone"`
	UserType model.UserType `json:"userType"`
	AgeGroup string         `json:"ageGroup"`
	Language string         `json:"language"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Register(input RegisterInput) (*AuthResult, error) {
	if _, err := s.UserRepo.FindByEmail(input.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userType := input.UserType
	if userType == "" {
		userType = model.UserParent
	}
	language := input.Language
	if language == "" {
		language = "en"
	}

	now := time.Now()
	user := &model.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Phone:    input.Phone,
		UserType: userType,
		AgeGroup: input.AgeGroup,
		Language: language,
		Subscription: model.Subscription{
			Plan:      "free",
			StartDate: now,
		},
		IsActive:  true,
		LastLogin: now,
	}
	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailRegistered
		}
		return nil, err
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *UserService) Login(input LoginInput) (*AuthResult, error) {
	user, err := s.UserRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, util.ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, util.ErrInvalidLogin
	}

	user.LastLogin = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		logger.Log.Warn("last login update failed", zap.Uint("userId", user.ID), zap.Error(err))
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// GetProfile loads the user and advances the daily streak. This is the only
// path that recomputes streaks; ingestion merely stamps lastActivityDate.
func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user.UpdateStreak(time.Now())
	if err := s.UserRepo.UpdateStats(user.ID, user.Progress); err != nil {
		return nil, err
	}
	return user, nil
}

// EnrollInPackage switches the user's subscription to the package's plan and
// bumps the enrollment counters on the package and its courses.
func (s *UserService) EnrollInPackage(userID uint, packageID string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	pkg, err := s.PackageRepo.FindByPackageID(packageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	user.Subscription = model.Subscription{
		Plan:      planForPackage(pkg),
		StartDate: time.Now(),
		Features:  pkg.Features,
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	if err := s.PackageRepo.AddEnrollment(pkg.PackageID); err != nil {
		logger.Log.Warn("package enrollment counter update failed",
			zap.String("packageId", pkg.PackageID), zap.Error(err))
	}
	for _, courseID := range pkg.CourseIDs {
		if err := s.CourseRepo.IncrementEnrollments(courseID); err != nil {
			logger.Log.Warn("course enrollment counter update failed",
				zap.String("courseId", courseID), zap.Error(err))
		}
	}
	return user, nil
}

func planForPackage(pkg *model.Package) string {
	if pkg.Price == "FREE" {
		return "free"
	}
	if pkg.Popular {
		return "premium"
	}
	return "standard"
}
