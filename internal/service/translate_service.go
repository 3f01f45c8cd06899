package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"signlearn_backend/internal/config"
)

// TranslateService fronts the external recognition/translation backend. When
// no base URL is configured the endpoints answer with deterministic mock
// responses so the rest of the platform stays usable in development.
type TranslateService struct {
	Config *config.RecognitionConfig
	Client *http.Client
}

func NewTranslateService(cfg *config.RecognitionConfig) *TranslateService {
	return &TranslateService{
		Config: cfg,
		Client: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type TranslateInput struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"targetLanguage"`
}

type TranslateResult struct {
	Translation string `json:"translation"`
	Language    string `json:"language"`
	Mock        bool   `json:"mock,omitempty"`
}

type SummarizeInput struct {
	Text string `json:"text" binding:"required"`
}

type SummarizeResult struct {
	Summary string `json:"summary"`
	Mock    bool   `json:"mock,omitempty"`
}

func (s *TranslateService) Translate(ctx context.Context, input TranslateInput) (*TranslateResult, error) {
	lang := input.TargetLanguage
	if lang == "" {
		lang = "en"
	}

	if s.Config.BaseURL == "" {
		return &TranslateResult{Translation: input.Text, Language: lang, Mock: true}, nil
	}

	var result TranslateResult
	if err := s.post(ctx, "/translate", input, &result); err != nil {
		return nil, err
	}
	if result.Language == "" {
		result.Language = lang
	}
	return &result, nil
}

func (s *TranslateService) Summarize(ctx context.Context, input SummarizeInput) (*SummarizeResult, error) {
	if s.Config.BaseURL == "" {
		return &SummarizeResult{Summary: firstWords(input.Text, 50), Mock: true}, nil
	}

	var result SummarizeResult
	if err := s.post(ctx, "/summarize", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *TranslateService) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(s.Config.BaseURL, "/")+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.Config.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("recognition service returned %d: %s", resp.StatusCode, string(raw))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func firstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ") + "..."
}
