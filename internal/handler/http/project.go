package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/project"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceProject "github.com/tadbir-app/tadbir-backend-go/internal/service/project"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	UpdateTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService serviceProject.ProjectService
}

func NewProjectHandler(projectService serviceProject.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler.
func (p *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := p.projectService.Create(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", created)
}

// GetByID implements ProjectHandler.
func (p *ProjectHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	result, err := p.projectService.GetByID(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ProjectHandler.
func (p *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	projects, err := p.projectService.List(r.Context(), tenant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// Delete implements ProjectHandler.
func (p *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := p.projectService.Delete(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}

// CreateTransaction implements ProjectHandler.
func (p *ProjectHandlerImpl) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req project.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create project transaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "id")

	created, err := p.projectService.CreateTransaction(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create project transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project transaction created successfully", created)
}

// ListTransactions implements ProjectHandler.
func (p *ProjectHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	transactions, err := p.projectService.ListTransactions(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, transactions)
}

// UpdateTransaction implements ProjectHandler.
func (p *ProjectHandlerImpl) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req project.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update project transaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "transactionID")

	if err := p.projectService.UpdateTransaction(r.Context(), tenant, req); err != nil {
		slog.Error("Update project transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project transaction updated successfully", nil)
}

// DeleteTransaction implements ProjectHandler.
func (p *ProjectHandlerImpl) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := p.projectService.DeleteTransaction(r.Context(), tenant, chi.URLParam(r, "transactionID")); err != nil {
		slog.Error("Delete project transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project transaction deleted successfully", nil)
}
