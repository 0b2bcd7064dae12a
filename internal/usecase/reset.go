package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/akulov/taskboard/internal/domain"
	"github.com/akulov/taskboard/internal/email"
	"github.com/akulov/taskboard/internal/metrics"
	"github.com/akulov/taskboard/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const defaultResetTTL = 1 * time.Hour

// PasswordResetUsecase issues, validates, and consumes single-use password
// reset tokens. Only the SHA-256 hash of a token is ever stored; the raw
// token exists in the reset email and nowhere else.
type PasswordResetUsecase struct {
	users         repository.UserRepository
	email         email.Sender
	resetTTL      time.Duration
	resetLinkBase string
}

func NewPasswordResetUsecase(users repository.UserRepository, emailSender email.Sender, resetLinkBase string) *PasswordResetUsecase {
	return &PasswordResetUsecase{
		users:         users,
		email:         emailSender,
		resetTTL:      defaultResetTTL,
		resetLinkBase: resetLinkBase,
	}
}

// RequestReset issues a reset token for the account behind emailAddr and
// mails the reset link. An unknown email returns nil without doing anything,
// so callers cannot probe which addresses are registered.
func (u *PasswordResetUsecase) RequestReset(ctx context.Context, emailAddr string) error {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	raw := make([]byte, 32)
	if _, err = io.ReadFull(rand.Reader, raw); err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	rawToken := hex.EncodeToString(raw)
	tokenHash := hashToken(rawToken)

	expiresAt := time.Now().Add(u.resetTTL)
	if err = u.users.SetResetToken(ctx, user.ID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	metrics.ResetRequestsTotal.Inc()

	link := u.resetLinkBase + "/reset-password/" + rawToken
	subject := "Reset your password"
	body := fmt.Sprintf(
		`<p>Click the link below to reset your password (expires in 1 hour):</p><p><a href="%s">%s</a></p>`,
		link, link,
	)
	if err = u.email.Send(ctx, user.Email, subject, body); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

// ValidateToken checks a raw token without consuming it and returns the
// account's email for the reset form to display.
func (u *PasswordResetUsecase) ValidateToken(ctx context.Context, rawToken string) (string, error) {
	user, err := u.users.FindByResetToken(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("find by reset token: %w", err)
	}
	return user.Email, nil
}

// ConsumeReset replaces the account password and burns the token. The
// repository does match-and-clear in one statement, so a token survives at
// most one successful call even with concurrent consumers.
func (u *PasswordResetUsecase) ConsumeReset(ctx context.Context, rawToken, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err = u.users.ConsumeResetToken(ctx, hashToken(rawToken), string(hash)); err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			metrics.ResetsConsumedTotal.WithLabelValues("rejected").Inc()
			return domain.ErrResetTokenInvalid
		}
		return fmt.Errorf("consume reset token: %w", err)
	}
	metrics.ResetsConsumedTotal.WithLabelValues("ok").Inc()
	return nil
}

func hashToken(raw string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(raw)))
}
