package handler

import (
	"errors"
	"net/http"

	"github.com/folio-software/folio/api/internal/model"
	"github.com/folio-software/folio/api/internal/service"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// RegisterRoutes registers project routes
func (h *ProjectHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects", h.List)
	mux.HandleFunc("POST /api/projects", h.Create)
	mux.HandleFunc("GET /api/projects/{projectId}", h.Get)
	mux.HandleFunc("DELETE /api/projects/{projectId}", h.Delete)
}

// List retrieves all projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		WriteError(w, model.NewInternalError(err.Error()))
		return
	}

	WriteJSON(w, http.StatusOK, projects)
}

// Create creates a new project
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProjectRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	project, err := h.projectService.Create(r.Context(), &req)
	if err != nil {
		var pd *model.ProblemDetails
		switch {
		case errors.As(err, &pd):
			WriteError(w, pd)
		default:
			// Store failures on create surface as client errors with the
			// underlying message
			WriteError(w, model.NewBadRequestError(err.Error()))
		}
		return
	}

	WriteJSON(w, http.StatusCreated, project)
}

// Get retrieves a single project
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectId")

	project, err := h.projectService.Get(r.Context(), projectID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			WriteError(w, model.NewNotFoundError("Project"))
		default:
			WriteError(w, model.NewInternalError(err.Error()))
		}
		return
	}

	WriteJSON(w, http.StatusOK, project)
}

// Delete deletes a project
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectId")

	if err := h.projectService.Delete(r.Context(), projectID); err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			WriteError(w, model.NewNotFoundError("Project"))
		default:
			WriteError(w, model.NewInternalError(err.Error()))
		}
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted"})
}
