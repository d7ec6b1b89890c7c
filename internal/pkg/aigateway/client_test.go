package aigateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func gatewayStub(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestAnalyze_ParsesModelJSON(t *testing.T) {
	srv := gatewayStub(t, http.StatusOK, `Here you go:
{"labels": ["blue backpack", "nike"], "description": "A blue Nike backpack."}
Hope that helps!`)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	analysis, err := c.Analyze(context.Background(), "https://storage.googleapis.com/bucket/item-images/u/1.jpg")
	require.NoError(t, err)
	require.Equal(t, []string{"blue backpack", "nike"}, analysis.Labels)
	require.Equal(t, "A blue Nike backpack.", analysis.Description)
}

func TestAnalyze_FallbackOnUnparseableReply(t *testing.T) {
	srv := gatewayStub(t, http.StatusOK, "I could not produce JSON, sorry.")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	analysis, err := c.Analyze(context.Background(), "https://example.com/img.jpg")
	require.NoError(t, err)
	require.Equal(t, []string{"item"}, analysis.Labels)
	require.Equal(t, "An item was detected in the image.", analysis.Description)
}

func TestAnalyze_RateLimited(t *testing.T) {
	srv := gatewayStub(t, http.StatusTooManyRequests, "")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	_, err := c.Analyze(context.Background(), "https://example.com/img.jpg")
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestAnalyze_QuotaExhausted(t *testing.T) {
	srv := gatewayStub(t, http.StatusPaymentRequired, "")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	_, err := c.Analyze(context.Background(), "https://example.com/img.jpg")
	require.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestAnalyze_UpstreamFailure(t *testing.T) {
	srv := gatewayStub(t, http.StatusBadGateway, "")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	_, err := c.Analyze(context.Background(), "https://example.com/img.jpg")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrRateLimited)
	require.NotErrorIs(t, err, ErrQuotaExhausted)
}

func TestAnalyze_MissingAPIKey(t *testing.T) {
	c := NewClient("http://localhost:1", "", "test-model")
	_, err := c.Analyze(context.Background(), "https://example.com/img.jpg")
	require.Error(t, err)
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"wrapped in prose", `sure: {"a":1} done`, `{"a":1}`, true},
		{"nested braces", `{"a":{"b":2}}`, `{"a":{"b":2}}`, true},
		{"brace inside string", `{"a":"}{"}`, `{"a":"}{"}`, true},
		{"escaped quote", `{"a":"say \"hi\""}`, `{"a":"say \"hi\""}`, true},
		{"first of two objects", `{"a":1}{"b":2}`, `{"a":1}`, true},
		{"no object", `nothing here`, "", false},
		{"unbalanced", `{"a":1`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONObject(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
