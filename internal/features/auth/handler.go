package auth

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusfound/api/internal/config"
	"github.com/campusfound/api/internal/pkg/logger"
	"github.com/campusfound/api/internal/pkg/mailer"
	"github.com/campusfound/api/internal/pkg/response"
	"github.com/campusfound/api/internal/pkg/token"
)

const resetTokenTTL = time.Hour

type Handler struct {
	repo   *Repository
	cfg    *config.Config
	mailer *mailer.SendGridMailer
}

func NewHandler(repo *Repository, cfg *config.Config, m *mailer.SendGridMailer) *Handler {
	return &Handler{
		repo:   repo,
		cfg:    cfg,
		mailer: m,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register with email, password, and full name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.DatabaseError(c, "Failed to check existing user")
		return
	}
	if existing != nil {
		response.BadRequest(c, "This email is already registered. Please sign in instead.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		response.DatabaseError(c, "Failed to create user")
		return
	}

	tok, err := token.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Created(c, AuthResponse{Token: tok, User: user})
}

// Login godoc
// @Summary Login user
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.DatabaseError(c, "Failed to look up user")
		return
	}
	if user == nil || user.Password == "" {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	tok, err := token.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, AuthResponse{Token: tok, User: user})
}

// GoogleLogin godoc
// @Summary Sign in with Google
// @Description Verify a Google ID token and sign the user in, creating an account on first login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google ID token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/google [post]
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	googleUser, err := VerifyGoogleToken(c.Request.Context(), req.GoogleIDToken, h.cfg.GoogleClientID)
	if err != nil {
		response.Unauthorized(c, "Invalid Google token")
		return
	}

	user, err := h.repo.FindByGoogleID(c.Request.Context(), googleUser.UID)
	if err != nil {
		response.DatabaseError(c, "Failed to look up user")
		return
	}

	if user == nil {
		// Link by email if the user registered with a password first
		user, err = h.repo.FindByEmail(c.Request.Context(), googleUser.Email)
		if err != nil {
			response.DatabaseError(c, "Failed to look up user")
			return
		}
	}

	if user == nil {
		user = &User{
			Email:    googleUser.Email,
			FullName: googleUser.Name,
			GoogleID: googleUser.UID,
		}
		if err := h.repo.Create(c.Request.Context(), user); err != nil {
			response.DatabaseError(c, "Failed to create user")
			return
		}
	}

	tok, err := token.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, AuthResponse{Token: tok, User: user})
}

// Me godoc
// @Summary Get current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=User}
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		response.DatabaseError(c, "Failed to look up user")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, user)
}

// ForgotPassword godoc
// @Summary Request a password reset email
// @Description Always returns 200 regardless of whether the email exists
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} response.SuccessResponse
// @Router /auth/forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	// Same response whether or not the account exists
	ack := map[string]string{"message": "If that email is registered, a reset link has been sent"}

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil || user == nil {
		response.Success(c, ack)
		return
	}

	resetToken := uuid.NewString()
	expiresAt := time.Now().Add(resetTokenTTL)
	if err := h.repo.SetResetToken(c.Request.Context(), user.ID, resetToken, expiresAt); err != nil {
		response.DatabaseError(c, "Failed to create reset token")
		return
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", h.cfg.FrontendURL, resetToken)
	if err := h.mailer.SendPasswordReset(c.Request.Context(), user.Email, user.FullName, resetLink); err != nil {
		logger.Error("failed to send reset email to %s: %v", user.Email, err)
	}

	response.Success(c, ack)
}

// ResetPassword godoc
// @Summary Complete a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /auth/reset-password [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateResetPassword(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.repo.FindByResetToken(c.Request.Context(), req.Token)
	if err != nil {
		response.DatabaseError(c, "Failed to look up reset token")
		return
	}
	if user == nil || user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		response.BadRequest(c, "Reset link is invalid or has expired")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	if err := h.repo.UpdatePassword(c.Request.Context(), user.ID, string(hashedPassword)); err != nil {
		response.DatabaseError(c, "Failed to update password")
		return
	}

	response.Success(c, map[string]string{"message": "Password updated successfully"})
}

// PosterName godoc
// @Summary Look up a poster's display name
// @Description Returns only the full name, never contact details
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/name [get]
func (h *Handler) PosterName(c *gin.Context) {
	user, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, map[string]string{"name": user.FullName})
}
