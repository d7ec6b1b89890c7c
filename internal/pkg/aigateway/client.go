// Package aigateway calls the hosted multimodal model that labels and
// describes item photos. The gateway speaks the OpenAI chat-completions
// dialect; the model is asked for strict JSON and the reply is parsed
// defensively because model output is not guaranteed to be well-formed.
package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/campusfound/api/internal/pkg/logger"
)

var (
	// ErrRateLimited maps the gateway's 429 responses.
	ErrRateLimited = errors.New("ai gateway: rate limited")
	// ErrQuotaExhausted maps the gateway's 402 responses.
	ErrQuotaExhausted = errors.New("ai gateway: quota exhausted")
)

const systemPrompt = `You are an AI that analyzes images of lost and found items.
Your job is to:
1. Identify the main object(s) in the image
2. Provide descriptive labels for the items (like "blue backpack", "iPhone", "glasses", "keys", etc.)
3. Generate a brief, helpful description for a lost & found posting

Respond ONLY with valid JSON in this exact format:
{
  "labels": ["label1", "label2", "label3"],
  "description": "A brief 1-2 sentence description of the item for a lost & found posting"
}

Keep labels simple and searchable (1-3 words each). Include color, brand if visible, type of item.
The description should be helpful for someone trying to identify or find the item.`

const userPrompt = "Analyze this image and identify the item(s) for a campus lost & found portal. Provide labels and a description."

// Analysis is the structured result of one image analysis.
type Analysis struct {
	Labels      []string `json:"labels"`
	Description string   `json:"description"`
}

// Client calls the AI gateway over HTTP with bearer authentication.
type Client struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

func NewClient(endpoint, apiKey, model string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the signed image URL to the model and returns labels plus a
// description. An unparseable model reply degrades to a generic fallback
// rather than an error; enrichment is not critical path.
func (c *Client) Analyze(ctx context.Context, imgURL string) (*Analysis, error) {
	if c.apiKey == "" {
		return nil, errors.New("ai gateway: api key not configured")
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: imgURL}},
			}},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("ai gateway: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ai gateway: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai gateway: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ai gateway: failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrQuotaExhausted
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("ai gateway: unexpected status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return nil, fmt.Errorf("ai gateway: failed to decode response: %w", err)
	}

	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, errors.New("ai gateway: no response from model")
	}

	return parseModelReply(chat.Choices[0].Message.Content), nil
}

// parseModelReply extracts the first balanced JSON object from the model text.
// Anything unparseable falls back to a generic analysis.
func parseModelReply(content string) *Analysis {
	var result Analysis

	raw, ok := extractJSONObject(content)
	if !ok || json.Unmarshal([]byte(raw), &result) != nil {
		logger.Warn("ai gateway: could not parse model reply, using fallback")
		return &Analysis{
			Labels:      []string{"item"},
			Description: "An item was detected in the image.",
		}
	}

	if result.Labels == nil {
		result.Labels = []string{}
	}

	return &result
}
