package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/akulov/taskboard/internal/domain"
	"github.com/gin-gonic/gin"
)

type resetUsecaser interface {
	RequestReset(ctx context.Context, email string) error
	ValidateToken(ctx context.Context, rawToken string) (string, error)
	ConsumeReset(ctx context.Context, rawToken, newPassword string) error
}

type ResetHandler struct {
	uc     resetUsecaser
	logger *slog.Logger
}

func NewResetHandler(uc resetUsecaser, logger *slog.Logger) *ResetHandler {
	return &ResetHandler{
		uc:     uc,
		logger: logger.With("component", "reset_handler"),
	}
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=128"`
}

const resetRequestedMessage = "If the email exists, a reset link has been sent to your inbox."

// POST /auth/forgot-password
// Always returns 200: neither an unknown email nor an internal failure is
// distinguishable from success.
func (h *ResetHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.RequestReset(c.Request.Context(), req.Email); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "request password reset", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": resetRequestedMessage})
}

// GET /auth/validate-reset-token/:token
// Read-only check used by the reset form; does not consume the token.
func (h *ResetHandler) ValidateToken(c *gin.Context) {
	emailAddr, err := h.uc.ValidateToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errResetTokenInvalid})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "validate reset token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": emailAddr})
}

// POST /auth/reset-password/:token
func (h *ResetHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.ConsumeReset(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errResetTokenInvalid})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "reset password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
