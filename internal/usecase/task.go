package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akulov/taskboard/internal/domain"
	"github.com/akulov/taskboard/internal/repository"
)

// TaskUsecase resolves ownership transitively on every operation: creating or
// listing under a project first fetches the project scoped to the caller, and
// single-task operations run against queries joined through the project row.
type TaskUsecase struct {
	repo     repository.TaskRepository
	projects repository.ProjectRepository
}

func NewTaskUsecase(repo repository.TaskRepository, projects repository.ProjectRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo, projects: projects}
}

type CreateTaskInput struct {
	ProjectID string
	UserID    string
	Title     string
	Status    domain.TaskStatus
	DueDate   *time.Time
}

func (u *TaskUsecase) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if _, err := u.projects.GetByID(ctx, input.ProjectID, input.UserID); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTaskTitleRequired
	}

	status := input.Status
	if status == "" {
		status = domain.TaskPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidTaskStatus
	}

	t := &domain.Task{
		ProjectID: input.ProjectID,
		Title:     title,
		Status:    status,
		DueDate:   input.DueDate,
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

func (u *TaskUsecase) ListTasks(ctx context.Context, projectID, userID string) ([]*domain.Task, error) {
	if _, err := u.projects.GetByID(ctx, projectID, userID); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	tasks, err := u.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (u *TaskUsecase) GetTask(ctx context.Context, id, userID string) (*domain.Task, error) {
	t, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

type UpdateTaskInput struct {
	Title   *string
	Status  *domain.TaskStatus
	DueDate *time.Time
}

func (u *TaskUsecase) UpdateTask(ctx context.Context, id, userID string, input UpdateTaskInput) (*domain.Task, error) {
	patch := repository.TaskPatch{DueDate: input.DueDate}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrTaskTitleRequired
		}
		patch.Title = &title
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.ErrInvalidTaskStatus
		}
		patch.Status = input.Status
	}

	t, err := u.repo.Update(ctx, id, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

func (u *TaskUsecase) DeleteTask(ctx context.Context, id, userID string) error {
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
