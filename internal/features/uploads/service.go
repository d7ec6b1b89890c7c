package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/campusfound/api/internal/pkg/aigateway"
	"github.com/campusfound/api/internal/pkg/logger"
)

const (
	// MaxImageSize is the largest accepted upload. Files at or over this
	// size are rejected before any storage call.
	MaxImageSize = 10 << 20

	// SignedURLTTL matches the retention window shown to users: one year.
	SignedURLTTL = 365 * 24 * time.Hour

	objectPrefix = "item-images"
)

var (
	ErrInvalidType = errors.New("only image files are accepted")
	ErrTooLarge    = errors.New("image must be smaller than 10MB")
	ErrInFlight    = errors.New("an upload is already in progress")
)

// ObjectStore is the slice of bucket behavior the pipeline needs.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) error
	SignedURL(objectPath string, ttl time.Duration) (string, error)
}

// Analyzer produces labels and a description for a stored image.
type Analyzer interface {
	Analyze(ctx context.Context, imageURL string) (*aigateway.Analysis, error)
}

// Result is what an upload yields. AnalysisError is set when the image was
// stored but analysis failed; the URL is still usable.
type Result struct {
	ImageURL      string   `json:"imageUrl"`
	Labels        []string `json:"labels"`
	Description   string   `json:"description"`
	AnalysisError string   `json:"analysisError,omitempty"`
}

// Service runs the image intake pipeline: validate, store, sign, analyze.
type Service struct {
	store    ObjectStore
	analyzer Analyzer

	mu       sync.Mutex
	inFlight map[string]bool

	// onUploaded, when set, runs after the signed URL exists and before
	// analysis starts. Lets callers surface the image immediately.
	onUploaded func(userID, imageURL string)
}

func NewService(store ObjectStore, analyzer Analyzer) *Service {
	return &Service{
		store:    store,
		analyzer: analyzer,
		inFlight: make(map[string]bool),
	}
}

// SetUploadedCallback registers a hook invoked once the image URL is ready.
func (s *Service) SetUploadedCallback(fn func(userID, imageURL string)) {
	s.onUploaded = fn
}

func (s *Service) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[userID] {
		return false
	}
	s.inFlight[userID] = true
	return true
}

func (s *Service) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}

// Process validates and stores an uploaded image for the user, then runs AI
// analysis on the signed URL. Analysis failure does not fail the upload.
func (s *Service) Process(ctx context.Context, userID, filename, contentType string, size int64, r io.Reader) (*Result, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrInvalidType
	}
	if size >= MaxImageSize {
		return nil, ErrTooLarge
	}

	if !s.acquire(userID) {
		return nil, ErrInFlight
	}
	defer s.release(userID)

	objectPath := fmt.Sprintf("%s/%s/%d%s", objectPrefix, userID, time.Now().UnixMilli(), filepath.Ext(filename))

	if err := s.store.Upload(ctx, objectPath, r, contentType); err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	imageURL, err := s.store.SignedURL(objectPath, SignedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("sign image url: %w", err)
	}

	if s.onUploaded != nil {
		s.onUploaded(userID, imageURL)
	}

	result := &Result{ImageURL: imageURL, Labels: []string{}}

	analysis, err := s.analyzer.Analyze(ctx, imageURL)
	if err != nil {
		logger.Warn("image analysis failed for %s: %v", objectPath, err)
		result.AnalysisError = "Image uploaded but analysis failed. You can fill in details manually."
		return result, nil
	}

	result.Labels = analysis.Labels
	if result.Labels == nil {
		result.Labels = []string{}
	}
	result.Description = analysis.Description
	return result, nil
}
