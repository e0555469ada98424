package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/truck"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceTruck "github.com/tadbir-app/tadbir-backend-go/internal/service/truck"
)

type TruckHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateExpense(w http.ResponseWriter, r *http.Request)
	ListExpenses(w http.ResponseWriter, r *http.Request)
	UpdateExpense(w http.ResponseWriter, r *http.Request)
	DeleteExpense(w http.ResponseWriter, r *http.Request)

	CreateTrip(w http.ResponseWriter, r *http.Request)
	ListTrips(w http.ResponseWriter, r *http.Request)
	UpdateTrip(w http.ResponseWriter, r *http.Request)
	DeleteTrip(w http.ResponseWriter, r *http.Request)
}

type TruckHandlerImpl struct {
	truckService serviceTruck.TruckService
}

func NewTruckHandler(truckService serviceTruck.TruckService) TruckHandler {
	return &TruckHandlerImpl{truckService: truckService}
}

// Create implements TruckHandler.
func (t *TruckHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req truck.CreateTruckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create truck decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := t.truckService.Create(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create truck service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Truck created successfully", created)
}

// GetByID implements TruckHandler.
func (t *TruckHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	result, err := t.truckService.GetByID(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TruckHandler.
func (t *TruckHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	trucks, err := t.truckService.List(r.Context(), tenant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, trucks)
}

// Update implements TruckHandler.
func (t *TruckHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req truck.UpdateTruckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update truck decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := t.truckService.Update(r.Context(), tenant, req); err != nil {
		slog.Error("Update truck service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Truck updated successfully", nil)
}

// Delete implements TruckHandler.
func (t *TruckHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := t.truckService.Delete(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete truck service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Truck deleted successfully", nil)
}

// CreateExpense implements TruckHandler.
func (t *TruckHandlerImpl) CreateExpense(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req truck.CreateTruckExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create truck expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TruckID = chi.URLParam(r, "id")

	created, err := t.truckService.CreateExpense(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create truck expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Truck expense created successfully", created)
}

// ListExpenses implements TruckHandler.
func (t *TruckHandlerImpl) ListExpenses(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	expenses, err := t.truckService.ListExpenses(r.Context(), tenant, chi.URLParam(r, "id"), optionalQuery(r, "start_date"), optionalQuery(r, "end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenses)
}

// UpdateExpense implements TruckHandler.
func (t *TruckHandlerImpl) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req truck.UpdateTruckExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update truck expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "expenseID")

	if err := t.truckService.UpdateExpense(r.Context(), tenant, req); err != nil {
		slog.Error("Update truck expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Truck expense updated successfully", nil)
}

// DeleteExpense implements TruckHandler.
func (t *TruckHandlerImpl) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := t.truckService.DeleteExpense(r.Context(), tenant, chi.URLParam(r, "expenseID")); err != nil {
		slog.Error("Delete truck expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Truck expense deleted successfully", nil)
}

// CreateTrip implements TruckHandler.
func (t *TruckHandlerImpl) CreateTrip(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req truck.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create truck trip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TruckID = chi.URLParam(r, "id")

	created, err := t.truckService.CreateTrip(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create truck trip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Truck trip created successfully", created)
}

// ListTrips implements TruckHandler.
func (t *TruckHandlerImpl) ListTrips(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	trips, err := t.truckService.ListTrips(r.Context(), tenant, chi.URLParam(r, "id"), optionalQuery(r, "start_date"), optionalQuery(r, "end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, trips)
}

// UpdateTrip implements TruckHandler.
func (t *TruckHandlerImpl) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req truck.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update truck trip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "tripID")
	req.TruckID = chi.URLParam(r, "id")

	if err := t.truckService.UpdateTrip(r.Context(), tenant, req); err != nil {
		slog.Error("Update truck trip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Truck trip updated successfully", nil)
}

// DeleteTrip implements TruckHandler.
func (t *TruckHandlerImpl) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := t.truckService.DeleteTrip(r.Context(), tenant, chi.URLParam(r, "tripID")); err != nil {
		slog.Error("Delete truck trip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Truck trip deleted successfully", nil)
}
