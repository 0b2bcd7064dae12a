package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/akulov/taskboard/internal/domain"
	"github.com/akulov/taskboard/internal/repository"
)

type ProjectUsecase struct {
	repo repository.ProjectRepository
}

func NewProjectUsecase(repo repository.ProjectRepository) *ProjectUsecase {
	return &ProjectUsecase{repo: repo}
}

type CreateProjectInput struct {
	UserID      string
	Name        string
	Description *string
}

func (u *ProjectUsecase) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrProjectNameRequired
	}

	p := &domain.Project{
		UserID:      input.UserID,
		Name:        name,
		Description: input.Description,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

func (u *ProjectUsecase) GetProject(ctx context.Context, id, userID string) (*domain.Project, error) {
	p, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (u *ProjectUsecase) ListProjects(ctx context.Context, userID string) ([]*domain.Project, error) {
	projects, err := u.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
}

func (u *ProjectUsecase) UpdateProject(ctx context.Context, id, userID string, input UpdateProjectInput) (*domain.Project, error) {
	patch := repository.ProjectPatch{Description: input.Description}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrProjectNameRequired
		}
		patch.Name = &name
	}

	p, err := u.repo.Update(ctx, id, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func (u *ProjectUsecase) DeleteProject(ctx context.Context, id, userID string) error {
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
