package uploads

import (
	"github.com/gin-gonic/gin"

	"github.com/campusfound/api/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, store ObjectStore, analyzer Analyzer) {
	service := NewService(store, analyzer)
	handler := NewHandler(service)

	uploads := router.Group("/uploads")
	uploads.Use(middleware.Auth())
	{
		uploads.POST("/image", handler.UploadImage)
	}
}
