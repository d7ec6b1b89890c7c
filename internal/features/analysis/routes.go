package analysis

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusfound/api/internal/config"
	"github.com/campusfound/api/internal/middleware"
	"github.com/campusfound/api/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, analyzer Analyzer, cfg *config.Config) {
	handler := NewHandler(analyzer, cfg.AllowedImageHosts)

	limiter := ratelimit.New(10, time.Minute)
	limiter.StartCleanup(5 * time.Minute)

	router.POST("/analyze", middleware.Auth(), ratelimit.UserBasedMiddleware(limiter), handler.Analyze)
}
