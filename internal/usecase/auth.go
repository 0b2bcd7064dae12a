package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akulov/taskboard/internal/domain"
	"github.com/akulov/taskboard/internal/metrics"
	"github.com/akulov/taskboard/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultJWTTTL = 24 * time.Hour

type AuthUsecase struct {
	users  repository.UserRepository
	jwtKey []byte
	jwtTTL time.Duration
}

func NewAuthUsecase(users repository.UserRepository, jwtKey []byte) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		jwtKey: jwtKey,
		jwtTTL: defaultJWTTTL,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a user with a bcrypt-hashed password and returns it
// together with a signed JWT. Duplicate emails yield domain.ErrEmailTaken.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := u.users.Create(ctx, email, strings.TrimSpace(input.Name), string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}
	metrics.RegistrationsTotal.Inc()

	token, err := u.signJWT(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and returns the user plus a signed JWT.
// Unknown email and wrong password are both domain.ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := u.signJWT(user)
	if err != nil {
		return nil, "", err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return user, token, nil
}

func (u *AuthUsecase) signJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.jwtTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}
