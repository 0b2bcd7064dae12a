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

type ProjectHandler struct {
	uc     *usecase.ProjectUsecase
	logger *slog.Logger
}

func NewProjectHandler(uc *usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{uc: uc, logger: logger.With("component", "project_handler")}
}

type createProjectRequest struct {
	Name        string  `json:"name"        binding:"required,max=256"`
	Description *string `json:"description" binding:"omitempty,max=2048"`
}

type updateProjectRequest struct {
	Name        *string `json:"name"        binding:"omitempty,max=256"`
	Description *string `json:"description" binding:"omitempty,max=2048"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	var req createProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.CreateProject(ctx.Request.Context(), usecase.CreateProjectInput{
		UserID:      ctx.GetString("userID"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProjectNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrProjectNameRequired.Error()})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "create project", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusCreated, toProjectResponse(p))
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	projects, err := h.uc.ListProjects(ctx.Request.Context(), ctx.GetString("userID"))
	if err != nil {
		h.logger.ErrorContext(ctx.Request.Context(), "list projects", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]projectResponse, len(projects))
	for i, p := range projects {
		items[i] = toProjectResponse(p)
	}
	ctx.JSON(http.StatusOK, gin.H{"projects": items})
}

func (h *ProjectHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	p, err := h.uc.GetProject(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "get project", "project_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(p))
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req updateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.UpdateProject(ctx.Request.Context(), id, ctx.GetString("userID"), usecase.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
		case errors.Is(err, domain.ErrProjectNameRequired):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrProjectNameRequired.Error()})
		default:
			h.logger.ErrorContext(ctx.Request.Context(), "update project", "project_id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(p))
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := h.uc.DeleteProject(ctx.Request.Context(), id, ctx.GetString("userID")); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "delete project", "project_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.Status(http.StatusNoContent)
}
