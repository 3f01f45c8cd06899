package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"signlearn_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateMockWhenUnconfigured(t *testing.T) {
	s := NewTranslateService(&config.RecognitionConfig{RequestTimeout: time.Second})

	result, err := s.Translate(context.Background(), TranslateInput{Text: "hello"})
	require.NoError(t, err)
	assert.True(t, result.Mock)
	assert.Equal(t, "hello", result.Translation)
	assert.Equal(t, "en", result.Language)
}

func TestSummarizeMockTruncates(t *testing.T) {
	s := NewTranslateService(&config.RecognitionConfig{RequestTimeout: time.Second})

	long := strings.Repeat("word ", 80)
	result, err := s.Summarize(context.Background(), SummarizeInput{Text: long})
	require.NoError(t, err)
	assert.True(t, result.Mock)
	assert.Equal(t, 50, len(strings.Fields(strings.TrimSuffix(result.Summary, "..."))))
}

func TestTranslateProxiesToBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var input TranslateInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		json.NewEncoder(w).Encode(TranslateResult{Translation: "hola", Language: "es"})
	}))
	defer backend.Close()

	s := NewTranslateService(&config.RecognitionConfig{
		BaseURL:        backend.URL,
		APIKey:         "test-key",
		RequestTimeout: time.Second,
	})

	result, err := s.Translate(context.Background(), TranslateInput{Text: "hello", TargetLanguage: "es"})
	require.NoError(t, err)
	assert.Equal(t, "hola", result.Translation)
	assert.Equal(t, "es", result.Language)
	assert.False(t, result.Mock)
}

func TestTranslateBackendErrorSurfaces(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer backend.Close()

	s := NewTranslateService(&config.RecognitionConfig{BaseURL: backend.URL, RequestTimeout: time.Second})

	_, err := s.Translate(context.Background(), TranslateInput{Text: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
