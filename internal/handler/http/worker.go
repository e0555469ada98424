package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/worker"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceWorker "github.com/tadbir-app/tadbir-backend-go/internal/service/worker"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService serviceWorker.WorkerService
}

func NewWorkerHandler(workerService serviceWorker.WorkerService) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

// Create implements WorkerHandler.
func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req worker.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.workerService.Create(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", created)
}

// GetByID implements WorkerHandler.
func (h *WorkerHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	result, err := h.workerService.GetByID(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	workers, err := h.workerService.List(r.Context(), tenant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// Update implements WorkerHandler.
func (h *WorkerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.workerService.Update(r.Context(), tenant, req); err != nil {
		slog.Error("Update worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", nil)
}

// Delete implements WorkerHandler.
func (h *WorkerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := h.workerService.Delete(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker deleted successfully", nil)
}

// CreateTransaction implements WorkerHandler.
func (h *WorkerHandlerImpl) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req worker.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create worker transaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerID = chi.URLParam(r, "id")

	created, err := h.workerService.CreateTransaction(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create worker transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker transaction created successfully", created)
}

// ListTransactions implements WorkerHandler.
func (h *WorkerHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	transactions, err := h.workerService.ListTransactions(r.Context(), tenant, chi.URLParam(r, "id"), optionalQuery(r, "start_date"), optionalQuery(r, "end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, transactions)
}

// DeleteTransaction implements WorkerHandler.
func (h *WorkerHandlerImpl) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := h.workerService.DeleteTransaction(r.Context(), tenant, chi.URLParam(r, "transactionID")); err != nil {
		slog.Error("Delete worker transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker transaction deleted successfully", nil)
}
