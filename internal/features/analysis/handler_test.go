package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfound/api/internal/config"
	"github.com/campusfound/api/internal/pkg/aigateway"
	"github.com/campusfound/api/internal/pkg/token"
)

type stubAnalyzer struct {
	analysis *aigateway.Analysis
	err      error
	calls    int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, imageURL string) (*aigateway.Analysis, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func setupRouter(analyzer Analyzer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{AllowedImageHosts: []string{"storage.googleapis.com"}}
	RegisterRoutes(router.Group("/api/v1"), analyzer, cfg)
	return router
}

func doAnalyze(router *gin.Engine, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		tok, _ := token.GenerateToken("user1", "user@example.com")
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validImageURL = `https://storage.googleapis.com/bucket/item-images/user1/123.jpg?sig=abc`

func TestAnalyze_RequiresAuth(t *testing.T) {
	analyzer := &stubAnalyzer{}
	router := setupRouter(analyzer)

	w := doAnalyze(router, `{"imageUrl":"`+validImageURL+`"}`, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, analyzer.calls)
}

func TestAnalyze_RejectsBadURLs(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing url", `{}`, "Valid image URL is required"},
		{"http scheme", `{"imageUrl":"http://storage.googleapis.com/b/item-images/u/1.jpg"}`, "Only HTTPS URLs are allowed"},
		{"wrong host", `{"imageUrl":"https://evil.example.com/item-images/u/1.jpg"}`, "Image URL must be from allowed storage"},
		{"wrong path", `{"imageUrl":"https://storage.googleapis.com/bucket/other/u/1.jpg"}`, "Invalid image storage path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := &stubAnalyzer{}
			router := setupRouter(analyzer)

			w := doAnalyze(router, tt.body, true)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["error"])
			assert.Zero(t, analyzer.calls, "upstream must not be called for rejected URLs")
		})
	}
}

func TestAnalyze_Success(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: &aigateway.Analysis{
		Labels:      []string{"backpack", "blue"},
		Description: "A blue backpack with a water bottle pocket.",
	}}
	router := setupRouter(analyzer)

	w := doAnalyze(router, `{"imageUrl":"`+validImageURL+`"}`, true)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Labels      []string `json:"labels"`
		Description string   `json:"description"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"backpack", "blue"}, body.Labels)
	assert.Equal(t, "A blue backpack with a water bottle pocket.", body.Description)
}

func TestAnalyze_UpstreamRateLimited(t *testing.T) {
	analyzer := &stubAnalyzer{err: aigateway.ErrRateLimited}
	router := setupRouter(analyzer)

	w := doAnalyze(router, `{"imageUrl":"`+validImageURL+`"}`, true)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestAnalyze_UpstreamQuotaExhausted(t *testing.T) {
	analyzer := &stubAnalyzer{err: aigateway.ErrQuotaExhausted}
	router := setupRouter(analyzer)

	w := doAnalyze(router, `{"imageUrl":"`+validImageURL+`"}`, true)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "AI credits exhausted")
}

func TestAnalyze_UpstreamFailure(t *testing.T) {
	analyzer := &stubAnalyzer{err: assert.AnError}
	router := setupRouter(analyzer)

	w := doAnalyze(router, `{"imageUrl":"`+validImageURL+`"}`, true)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body struct {
		Error       string   `json:"error"`
		Labels      []string `json:"labels"`
		Description string   `json:"description"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "An error occurred while analyzing the image", body.Error)
	assert.Empty(t, body.Labels)
	assert.Empty(t, body.Description)
}
