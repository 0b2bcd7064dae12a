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

const taskColumns = `t.id, t.project_id, t.title, t.status, t.due_date, t.created_at, t.updated_at`

// TaskRepository never filters on an owner column of its own — tasks have
// none. Scoped queries join the current project row, so a task is reachable
// exactly when its project still exists and belongs to the caller.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	query := `
		INSERT INTO tasks (project_id, title, status, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, project_id, title, status, due_date, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, t.ProjectID, t.Title, t.Status, t.DueDate)
	return scanTask(row)
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `
		SELECT id, project_id, title, status, due_date, created_at, updated_at
		FROM tasks
		WHERE project_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id, userID string) (*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = $1 AND p.user_id = $2`

	return scanTask(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *TaskRepository) Update(ctx context.Context, id, userID string, patch repository.TaskPatch) (*domain.Task, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{id, userID}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		set = append(set, fmt.Sprintf("status = $%d", len(args)))
	}
	if patch.DueDate != nil {
		args = append(args, *patch.DueDate)
		set = append(set, fmt.Sprintf("due_date = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		UPDATE tasks t SET %s
		FROM projects p
		WHERE t.id = $1 AND p.id = t.project_id AND p.user_id = $2
		RETURNING %s`,
		strings.Join(set, ", "), taskColumns)

	return scanTask(r.pool.QueryRow(ctx, query, args...))
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM tasks t
		USING projects p
		WHERE t.id = $1 AND p.id = t.project_id AND p.user_id = $2`,
		id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}
