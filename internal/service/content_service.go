package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"signlearn_backend/internal/model"
	"signlearn_backend/internal/repository"
	"signlearn_backend/internal/util"
	"signlearn_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentService handles admin media uploads for the catalog.
type ContentService struct {
	CourseRepo *repository.CourseRepository
	Storage    StorageProvider
}

func NewContentService(courseRepo *repository.CourseRepository, storage StorageProvider) *ContentService {
	return &ContentService{CourseRepo: courseRepo, Storage: storage}
}

// UploadCourseVideo stores a course video and fills the duration fields from
// an ffprobe pass. The file is staged on local disk first because probing
// needs a seekable path.
func (s *ContentService) UploadCourseVideo(ctx context.Context, courseID string, fileHeader *multipart.FileHeader) (*model.Course, error) {
	course, err := s.CourseRepo.FindByCourseID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedVideoExt(ext) {
		return nil, fmt.Errorf("unsupported video extension %q", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "course-video-*"+ext)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.ReadFrom(src); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		return nil, err
	}

	mimeType, err := util.ValidateMimeType(tmp, []string{util.MimeVideo, util.MimeOctetStream})
	if err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		return nil, err
	}

	info, err := util.GetVideoInfo(tmp.Name())
	if err != nil {
		logger.Log.Warn("video probe failed, duration left unchanged",
			zap.String("courseId", courseID), zap.Error(err))
	}

	objectName := fmt.Sprintf("courses/%s/%d%s", courseID, time.Now().UnixNano(), ext)
	url, err := s.Storage.Upload(ctx, objectName, tmp, fileHeader.Size, mimeType)
	if err != nil {
		return nil, err
	}

	course.Video = url
	if info != nil && info.Duration > 0 {
		minutes := int(math.Round(info.Duration / 60))
		if minutes < 1 {
			minutes = 1
		}
		course.DurationMinutes = minutes
		course.Duration = util.FormatDuration(minutes)
	}
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func allowedVideoExt(ext string) bool {
	for _, allowed := range util.AllowedVideoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
