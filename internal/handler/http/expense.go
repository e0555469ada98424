package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/expense"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceExpense "github.com/tadbir-app/tadbir-backend-go/internal/service/expense"
)

type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateFund(w http.ResponseWriter, r *http.Request)
	ListFunds(w http.ResponseWriter, r *http.Request)
	DeleteFund(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService serviceExpense.ExpenseService
}

func NewExpenseHandler(expenseService serviceExpense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{expenseService: expenseService}
}

// Create implements ExpenseHandler.
func (e *ExpenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req expense.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.expenseService.Create(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense created successfully", created)
}

// List implements ExpenseHandler.
func (e *ExpenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	expenses, err := e.expenseService.List(r.Context(), tenant, optionalQuery(r, "start_date"), optionalQuery(r, "end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenses)
}

// Update implements ExpenseHandler.
func (e *ExpenseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req expense.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := e.expenseService.Update(r.Context(), tenant, req); err != nil {
		slog.Error("Update expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense updated successfully", nil)
}

// Delete implements ExpenseHandler.
func (e *ExpenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := e.expenseService.Delete(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense deleted successfully", nil)
}

// CreateFund implements ExpenseHandler.
func (e *ExpenseHandlerImpl) CreateFund(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req expense.CreateExternalFundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create external fund decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.expenseService.CreateFund(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create external fund service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "External fund recorded successfully", created)
}

// ListFunds implements ExpenseHandler.
func (e *ExpenseHandlerImpl) ListFunds(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	funds, err := e.expenseService.ListFunds(r.Context(), tenant, optionalQuery(r, "start_date"), optionalQuery(r, "end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, funds)
}

// DeleteFund implements ExpenseHandler.
func (e *ExpenseHandlerImpl) DeleteFund(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := e.expenseService.DeleteFund(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete external fund service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "External fund deleted successfully", nil)
}
