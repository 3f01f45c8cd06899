package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"signlearn_backend/internal/model"
	"signlearn_backend/internal/repository"
	"signlearn_backend/internal/service"
	"signlearn_backend/internal/util"
	"signlearn_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupLearningRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	learning := service.NewLearningService(
		repository.NewLearningEventRepository(db),
		repository.NewProgressRepository(db),
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
	)
	c := NewLearningController(learning)

	router := gin.New()
	router.POST("/api/learning/events", c.RecordEvent)
	router.GET("/api/users/:userId/progress/:courseId", c.GetProgress)
	router.POST("/api/users/:userId/progress/:courseId", c.UpdateProgress)
	return router, db
}

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{Name: "Test", Email: "t@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRecordEventEndpointCreated(t *testing.T) {
	router, db := setupLearningRouter(t)
	user := seedUser(t, db)

	rec := postJSON(t, router, "/api/learning/events", gin.H{
		"userId":   user.ID,
		"courseId": "101",
		"type":     "start",
		"activeMs": 60000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotZero(t, data["eventId"])
}

func TestRecordEventEndpointRejectsBadPayload(t *testing.T) {
	router, db := setupLearningRouter(t)
	seedUser(t, db)

	// Missing required fields.
	rec := postJSON(t, router, "/api/learning/events", gin.H{"courseId": "101"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown event type.
	rec = postJSON(t, router, "/api/learning/events", gin.H{
		"userId":   1,
		"courseId": "101",
		"type":     "teleport",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressEndpointRoundTrip(t *testing.T) {
	router, db := setupLearningRouter(t)
	user := seedUser(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/users/1/progress/101", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postJSON(t, router, "/api/users/1/progress/101", gin.H{
		"progressPercentage": 42.5,
		"timeSpent":          12,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/users/1/progress/101", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data model.UserProgress `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.Data.UserID)
	assert.Equal(t, 42.5, resp.Data.ProgressPercentage)
	assert.Equal(t, 12, resp.Data.TimeSpent)
	assert.Equal(t, model.ProgressInProgress, resp.Data.Status)
}
