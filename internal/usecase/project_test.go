package usecase_test

import (
	"context"
	"testing"

	"github.com/akulov/taskboard/internal/domain"
	"github.com/akulov/taskboard/internal/repository"
	"github.com/akulov/taskboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectRepo struct {
	create      func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	getByID     func(ctx context.Context, id, userID string) (*domain.Project, error)
	listByOwner func(ctx context.Context, userID string) ([]*domain.Project, error)
	update      func(ctx context.Context, id, userID string, patch repository.ProjectPatch) (*domain.Project, error)
	delete      func(ctx context.Context, id, userID string) error
}

func (r *fakeProjectRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return r.create(ctx, p)
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id, userID string) (*domain.Project, error) {
	return r.getByID(ctx, id, userID)
}

func (r *fakeProjectRepo) ListByOwner(ctx context.Context, userID string) ([]*domain.Project, error) {
	return r.listByOwner(ctx, userID)
}

func (r *fakeProjectRepo) Update(ctx context.Context, id, userID string, patch repository.ProjectPatch) (*domain.Project, error) {
	return r.update(ctx, id, userID, patch)
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id, userID string) error {
	return r.delete(ctx, id, userID)
}

func TestCreateProject_TrimsNameAndStampsOwner(t *testing.T) {
	var stored *domain.Project
	repo := &fakeProjectRepo{
		create: func(_ context.Context, p *domain.Project) (*domain.Project, error) {
			stored = p
			return p, nil
		},
	}

	uc := usecase.NewProjectUsecase(repo)
	created, err := uc.CreateProject(context.Background(), usecase.CreateProjectInput{
		UserID: "alice",
		Name:   "  Launch  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Launch", created.Name)
	assert.Equal(t, "alice", stored.UserID)
}

func TestCreateProject_BlankName_FailsValidation(t *testing.T) {
	called := false
	repo := &fakeProjectRepo{
		create: func(_ context.Context, p *domain.Project) (*domain.Project, error) {
			called = true
			return p, nil
		},
	}

	uc := usecase.NewProjectUsecase(repo)
	_, err := uc.CreateProject(context.Background(), usecase.CreateProjectInput{
		UserID: "alice",
		Name:   "   ",
	})

	require.ErrorIs(t, err, domain.ErrProjectNameRequired)
	assert.False(t, called, "nothing may be persisted on validation failure")
}

func TestGetProject_OtherOwner_IsNotFound(t *testing.T) {
	repo := &fakeProjectRepo{
		getByID: func(_ context.Context, id, userID string) (*domain.Project, error) {
			if userID != "alice" {
				return nil, domain.ErrProjectNotFound
			}
			return &domain.Project{ID: id, UserID: "alice", Name: "Launch"}, nil
		},
	}

	uc := usecase.NewProjectUsecase(repo)

	_, err := uc.GetProject(context.Background(), "p-1", "bob")
	require.ErrorIs(t, err, domain.ErrProjectNotFound)

	p, err := uc.GetProject(context.Background(), "p-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "Launch", p.Name)
}

func TestUpdateProject_BlankName_FailsWithoutTouchingRepo(t *testing.T) {
	called := false
	repo := &fakeProjectRepo{
		update: func(_ context.Context, _, _ string, _ repository.ProjectPatch) (*domain.Project, error) {
			called = true
			return nil, nil
		},
	}

	uc := usecase.NewProjectUsecase(repo)
	blank := "  "
	_, err := uc.UpdateProject(context.Background(), "p-1", "alice", usecase.UpdateProjectInput{Name: &blank})

	require.ErrorIs(t, err, domain.ErrProjectNameRequired)
	assert.False(t, called)
}

func TestUpdateProject_PartialPatch_OnlyForwardsProvidedFields(t *testing.T) {
	var gotPatch repository.ProjectPatch
	repo := &fakeProjectRepo{
		update: func(_ context.Context, _, _ string, patch repository.ProjectPatch) (*domain.Project, error) {
			gotPatch = patch
			return &domain.Project{ID: "p-1"}, nil
		},
	}

	uc := usecase.NewProjectUsecase(repo)
	desc := "new description"
	_, err := uc.UpdateProject(context.Background(), "p-1", "alice", usecase.UpdateProjectInput{Description: &desc})

	require.NoError(t, err)
	assert.Nil(t, gotPatch.Name, "name must stay untouched")
	require.NotNil(t, gotPatch.Description)
	assert.Equal(t, desc, *gotPatch.Description)
}

func TestDeleteProject_NotOwned_IsNotFound(t *testing.T) {
	repo := &fakeProjectRepo{
		delete: func(_ context.Context, _, userID string) error {
			if userID != "alice" {
				return domain.ErrProjectNotFound
			}
			return nil
		},
	}

	uc := usecase.NewProjectUsecase(repo)
	require.ErrorIs(t, uc.DeleteProject(context.Background(), "p-1", "bob"), domain.ErrProjectNotFound)
	require.NoError(t, uc.DeleteProject(context.Background(), "p-1", "alice"))
}
