package repository

import (
	"context"
	"time"

	"github.com/akulov/taskboard/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, email, name, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// SetResetToken stores the hash of a freshly issued reset token,
	// replacing any previous one.
	SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// FindByResetToken returns the user holding an unexpired token with this
	// hash, or domain.ErrResetTokenInvalid.
	FindByResetToken(ctx context.Context, tokenHash string) (*domain.User, error)

	// ConsumeResetToken atomically swaps the password and clears the reset
	// fields, but only while the token hash still matches and is unexpired.
	// Exactly one of N racing calls with the same token succeeds; the rest
	// get domain.ErrResetTokenInvalid.
	ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string) (*domain.User, error)

	// PurgeExpiredResetTokens clears reset fields left behind by tokens that
	// expired without being used. Returns how many rows were cleaned.
	PurgeExpiredResetTokens(ctx context.Context) (int64, error)
}
