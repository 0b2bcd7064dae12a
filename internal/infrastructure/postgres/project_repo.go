package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akulov/taskboard/internal/domain"
	"github.com/akulov/taskboard/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, user_id, name, description, created_at, updated_at`

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	query := `
		INSERT INTO projects (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING ` + projectColumns

	row := r.pool.QueryRow(ctx, query, p.UserID, p.Name, p.Description)
	return scanProject(row)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id, userID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1 AND user_id = $2`

	return scanProject(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, id, userID string, patch repository.ProjectPatch) (*domain.Project, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{id, userID}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		UPDATE projects SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING %s`,
		strings.Join(set, ", "), projectColumns)

	return scanProject(r.pool.QueryRow(ctx, query, args...))
}

func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) error {
	// Tasks are left in place. They become unreachable — every task path
	// re-derives ownership through the project row — but are not removed.
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}
