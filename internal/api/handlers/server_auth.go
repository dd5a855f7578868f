package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"modgoviya.io/modgoviya/internal/api/middleware"
	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
	"modgoviya.io/modgoviya/internal/service"
)

type registerRequest struct {
	Email         string `json:"email" binding:"required"`
	FullName      string `json:"fullName" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Role          string `json:"role"`
	AcceptedTerms bool   `json:"acceptedTerms"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type providerLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

type passwordResetConfirm struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type verifyEmailConfirm struct {
	Token string `json:"token" binding:"required"`
}

// Register handles POST /auth/register.
func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	res, err := s.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:         req.Email,
		FullName:      req.FullName,
		Password:      req.Password,
		Role:          req.Role,
		AcceptedTerms: req.AcceptedTerms,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	res, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ProviderLogin returns the handler for POST /auth/<provider>. Each social
// route binds the same handler with its provider name fixed, so the service
// decides which providers are actually configured.
func (s *Server) ProviderLogin(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req providerLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request body"))
			return
		}

		res, err := s.auth.LoginWithProvider(c.Request.Context(), provider, req.Token)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

// ChangePassword handles POST /auth/change-password (authenticated).
func (s *Server) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	id := middleware.CurrentIdentity(c)
	if err := s.auth.ChangePassword(c.Request.Context(), id.ID, req.CurrentPassword, req.NewPassword); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

// RequestPasswordReset handles POST /auth/password-reset/request.
// The response is identical whether or not the account exists.
func (s *Server) RequestPasswordReset(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	issued, err := s.auth.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if issued != nil {
		email := service.NormalizeEmail(req.Email)
		s.dispatch(c.Request.Context(), func(ctx context.Context) {
			s.mailer.SendPasswordReset(ctx, email, issued.Token, issued.ExpiresAt)
		})
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "if an account exists for this email, a reset link has been sent",
	})
}

// ConfirmPasswordReset handles POST /auth/password-reset/confirm.
func (s *Server) ConfirmPasswordReset(c *gin.Context) {
	var req passwordResetConfirm
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	if err := s.auth.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}

// RequestEmailVerification handles POST /auth/verify-email/request
// (authenticated).
func (s *Server) RequestEmailVerification(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	issued, err := s.auth.RequestEmailVerification(c.Request.Context(), id.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	s.dispatch(c.Request.Context(), func(ctx context.Context) {
		s.mailer.SendEmailVerification(ctx, id.Email, issued.Token, issued.ExpiresAt)
	})

	c.JSON(http.StatusAccepted, gin.H{"message": "verification email sent"})
}

// ConfirmEmailVerification handles POST /auth/verify-email/confirm.
func (s *Server) ConfirmEmailVerification(c *gin.Context) {
	var req verifyEmailConfirm
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	if err := s.auth.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email verified"})
}

// Me handles GET /auth/me (authenticated).
func (s *Server) Me(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	u, err := s.auth.CurrentUser(c.Request.Context(), id.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, service.Summarize(u))
}
