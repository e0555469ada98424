package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/transfer"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceTransfer "github.com/tadbir-app/tadbir-backend-go/internal/service/transfer"
)

type TransferHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TransferHandlerImpl struct {
	transferService serviceTransfer.TransferService
}

func NewTransferHandler(transferService serviceTransfer.TransferService) TransferHandler {
	return &TransferHandlerImpl{transferService: transferService}
}

// Create implements TransferHandler.
func (t *TransferHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req transfer.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create transfer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := t.transferService.Create(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create transfer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transfer created successfully", created)
}

// GetByID implements TransferHandler.
func (t *TransferHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	result, err := t.transferService.GetByID(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TransferHandler.
func (t *TransferHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	filter := transfer.ListFilter{
		CompanyID: optionalQuery(r, "company_id"),
		StartDate: optionalQuery(r, "start_date"),
		EndDate:   optionalQuery(r, "end_date"),
	}
	if s := optionalQuery(r, "status"); s != nil {
		status := transfer.Status(*s)
		filter.Status = &status
	}

	transfers, err := t.transferService.List(r.Context(), tenant, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, transfers)
}

// Approve implements TransferHandler.
func (t *TransferHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := t.transferService.Approve(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Approve transfer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transfer approved", nil)
}

// Reject implements TransferHandler.
func (t *TransferHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := t.transferService.Reject(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Reject transfer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transfer rejected", nil)
}

// Delete implements TransferHandler.
func (t *TransferHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := t.transferService.Delete(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete transfer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transfer deleted successfully", nil)
}
