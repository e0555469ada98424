package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/debt"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceDebt "github.com/tadbir-app/tadbir-backend-go/internal/service/debt"
)

type DebtHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreatePayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
}

type DebtHandlerImpl struct {
	debtService serviceDebt.DebtService
}

func NewDebtHandler(debtService serviceDebt.DebtService) DebtHandler {
	return &DebtHandlerImpl{debtService: debtService}
}

// Create implements DebtHandler.
func (d *DebtHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req debt.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create debt decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := d.debtService.Create(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create debt service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Debt created successfully", created)
}

// GetByID implements DebtHandler.
func (d *DebtHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	result, err := d.debtService.GetByID(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements DebtHandler.
func (d *DebtHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	debts, err := d.debtService.List(r.Context(), tenant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, debts)
}

// Delete implements DebtHandler.
func (d *DebtHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := d.debtService.Delete(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete debt service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Debt deleted successfully", nil)
}

// CreatePayment implements DebtHandler.
func (d *DebtHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req debt.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create debt payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.DebtID = chi.URLParam(r, "id")

	created, err := d.debtService.CreatePayment(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create debt payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Debt payment recorded successfully", created)
}

// ListPayments implements DebtHandler.
func (d *DebtHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	payments, err := d.debtService.ListPayments(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// DeletePayment implements DebtHandler.
func (d *DebtHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := d.debtService.DeletePayment(r.Context(), tenant, chi.URLParam(r, "paymentID")); err != nil {
		slog.Error("Delete debt payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Debt payment deleted successfully", nil)
}
