package auth

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusfound/api/internal/config"
	"github.com/campusfound/api/internal/middleware"
	"github.com/campusfound/api/internal/pkg/mailer"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	m := mailer.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFromEmail)
	handler := NewHandler(repo, cfg, m)

	auth := router.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/google", handler.GoogleLogin)
		auth.POST("/forgot-password", handler.ForgotPassword)
		auth.POST("/reset-password", handler.ResetPassword)
		auth.GET("/me", middleware.Auth(), handler.Me)
	}

	users := router.Group("/users")
	{
		users.GET("/:id/name", handler.PosterName)
	}
}
