package repository

import (
	"context"

	"github.com/akulov/taskboard/internal/domain"
)

// ProjectPatch carries a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
}

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)

	// GetByID returns the project only when it belongs to userID. A project
	// owned by someone else is indistinguishable from one that does not
	// exist: both yield domain.ErrProjectNotFound.
	GetByID(ctx context.Context, id, userID string) (*domain.Project, error)

	// ListByOwner returns the user's projects in creation order.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Project, error)

	Update(ctx context.Context, id, userID string, patch ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id, userID string) error
}
