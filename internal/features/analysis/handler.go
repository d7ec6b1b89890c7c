package analysis

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusfound/api/internal/pkg/aigateway"
	"github.com/campusfound/api/internal/pkg/logger"
)

// Analyzer produces labels and a description for a stored image.
type Analyzer interface {
	Analyze(ctx context.Context, imageURL string) (*aigateway.Analysis, error)
}

// Handler exposes on-demand image analysis. Response bodies here are a fixed
// wire contract consumed by clients directly, so they bypass the standard
// response envelope.
type Handler struct {
	analyzer     Analyzer
	allowedHosts []string
}

func NewHandler(analyzer Analyzer, allowedHosts []string) *Handler {
	return &Handler{analyzer: analyzer, allowedHosts: allowedHosts}
}

type analyzeRequest struct {
	ImageURL string `json:"imageUrl"`
}

// Analyze godoc
// @Summary Analyze a stored item image
// @Description Returns AI-generated labels and a short description for an image already in item storage
// @Tags analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body analyzeRequest true "HTTPS URL of a stored item image"
// @Success 200 {object} aigateway.Analysis
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid image URL is required"})
		return
	}

	if msg := h.validateImageURL(req.ImageURL); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, aigateway.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again in a moment."})
		case errors.Is(err, aigateway.ErrQuotaExhausted):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "AI credits exhausted. Please contact support."})
		default:
			logger.Error("image analysis failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":       "An error occurred while analyzing the image",
				"labels":      []string{},
				"description": "",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"labels":      result.Labels,
		"description": result.Description,
	})
}

// validateImageURL returns an error message for URLs outside item storage,
// or empty when the URL is acceptable.
func (h *Handler) validateImageURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "Invalid URL format"
	}
	if parsed.Scheme != "https" {
		return "Only HTTPS URLs are allowed"
	}

	hostname := parsed.Hostname()
	allowed := false
	for _, host := range h.allowedHosts {
		if strings.HasSuffix(hostname, host) {
			allowed = true
			break
		}
	}
	if !allowed {
		return "Image URL must be from allowed storage"
	}

	if !strings.Contains(parsed.Path, "/item-images/") {
		return "Invalid image storage path"
	}

	return ""
}
