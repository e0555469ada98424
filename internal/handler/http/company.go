package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/company"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceCompany "github.com/tadbir-app/tadbir-backend-go/internal/service/company"
)

type CompanyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService serviceCompany.CompanyService
}

func NewCompanyHandler(companyService serviceCompany.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.companyService.Create(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created successfully", created)
}

// GetByID implements CompanyHandler.
func (c *CompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	result, err := c.companyService.GetByID(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	companies, err := c.companyService.List(r.Context(), tenant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := c.companyService.Update(r.Context(), tenant, chi.URLParam(r, "id"), req); err != nil {
		slog.Error("Update company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully", nil)
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := c.companyService.Delete(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company deleted successfully", nil)
}
