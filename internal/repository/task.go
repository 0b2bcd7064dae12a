package repository

import (
	"context"
	"time"

	"github.com/akulov/taskboard/internal/domain"
)

// TaskPatch carries a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title   *string
	Status  *domain.TaskStatus
	DueDate *time.Time
}

// TaskRepository scopes every single-task operation through the parent
// project's owner. Tasks never store an owner themselves; the scoped queries
// join the live project row, so ownership is re-derived on each call.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)

	// ListByProject returns a project's tasks, newest first. Callers must
	// have verified the project's ownership beforehand.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)

	// GetByID returns the task only when its project belongs to userID;
	// otherwise domain.ErrTaskNotFound.
	GetByID(ctx context.Context, id, userID string) (*domain.Task, error)

	Update(ctx context.Context, id, userID string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id, userID string) error
}
