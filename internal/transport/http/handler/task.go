package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/akulov/taskboard/internal/domain"
	"github.com/akulov/taskboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	uc     *usecase.TaskUsecase
	logger *slog.Logger
}

func NewTaskHandler(uc *usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{uc: uc, logger: logger.With("component", "task_handler")}
}

type createTaskRequest struct {
	Title   string            `json:"title"    binding:"required,max=256"`
	Status  domain.TaskStatus `json:"status"`
	DueDate *time.Time        `json:"due_date"`
}

type updateTaskRequest struct {
	Title   *string            `json:"title"    binding:"omitempty,max=256"`
	Status  *domain.TaskStatus `json:"status"`
	DueDate *time.Time         `json:"due_date"`
}

type taskResponse struct {
	ID        string            `json:"id"`
	ProjectID string            `json:"project_id"`
	Title     string            `json:"title"`
	Status    domain.TaskStatus `json:"status"`
	DueDate   *time.Time        `json:"due_date,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Title:     t.Title,
		Status:    t.Status,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// POST /projects/:id/tasks
func (h *TaskHandler) Create(ctx *gin.Context) {
	projectID := ctx.Param("id")

	var req createTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.uc.CreateTask(ctx.Request.Context(), usecase.CreateTaskInput{
		ProjectID: projectID,
		UserID:    ctx.GetString("userID"),
		Title:     req.Title,
		Status:    req.Status,
		DueDate:   req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
		case errors.Is(err, domain.ErrTaskTitleRequired):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrTaskTitleRequired.Error()})
		case errors.Is(err, domain.ErrInvalidTaskStatus):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidTaskStatus.Error()})
		default:
			h.logger.ErrorContext(ctx.Request.Context(), "create task", "project_id", projectID, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusCreated, toTaskResponse(t))
}

// GET /projects/:id/tasks
func (h *TaskHandler) List(ctx *gin.Context) {
	projectID := ctx.Param("id")

	tasks, err := h.uc.ListTasks(ctx.Request.Context(), projectID, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "list tasks", "project_id", projectID, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskResponse(t)
	}
	ctx.JSON(http.StatusOK, gin.H{"tasks": items, "count": len(items)})
}

// GET /tasks/:id
func (h *TaskHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	t, err := h.uc.GetTask(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "get task", "task_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(t))
}

// PUT /tasks/:id
func (h *TaskHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req updateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.uc.UpdateTask(ctx.Request.Context(), id, ctx.GetString("userID"), usecase.UpdateTaskInput{
		Title:   req.Title,
		Status:  req.Status,
		DueDate: req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
		case errors.Is(err, domain.ErrTaskTitleRequired):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrTaskTitleRequired.Error()})
		case errors.Is(err, domain.ErrInvalidTaskStatus):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidTaskStatus.Error()})
		default:
			h.logger.ErrorContext(ctx.Request.Context(), "update task", "task_id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(t))
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := h.uc.DeleteTask(ctx.Request.Context(), id, ctx.GetString("userID")); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "delete task", "task_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.Status(http.StatusNoContent)
}
