package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusfound/api/internal/config"
	"github.com/campusfound/api/internal/features/analysis"
	"github.com/campusfound/api/internal/features/auth"
	"github.com/campusfound/api/internal/features/items"
	"github.com/campusfound/api/internal/features/uploads"
	"github.com/campusfound/api/internal/pkg/aigateway"
	"github.com/campusfound/api/internal/pkg/logger"
	"github.com/campusfound/api/internal/pkg/storage"
)

// SetupRoutes wires all feature routes under /api/v1
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	v1 := router.Group("/api/v1")

	analyzer := aigateway.NewClient(cfg.AIGatewayURL, cfg.AIGatewayKey, cfg.AIModel)

	auth.RegisterRoutes(v1, db, cfg)
	items.RegisterRoutes(v1, db)
	analysis.RegisterRoutes(v1, analyzer, cfg)

	bucket, err := storage.NewBucket(context.Background(), cfg.FirebaseCredentialsFile, cfg.StorageBucket)
	if err != nil {
		logger.Error("storage bucket unavailable, image uploads disabled: %v", err)
		return
	}
	uploads.RegisterRoutes(v1, bucket, analyzer)
}
