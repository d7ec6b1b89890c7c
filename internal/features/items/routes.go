package items

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusfound/api/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	items := router.Group("/items")
	{
		items.GET("", handler.List)
		items.GET("/:id", handler.Get)
		items.GET("/:id/matches", handler.Matches)
		items.POST("", middleware.Auth(), handler.Create)
		items.DELETE("/:id", middleware.Auth(), handler.Delete)
	}
}
