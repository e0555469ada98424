package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/factory"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceFactory "github.com/tadbir-app/tadbir-backend-go/internal/service/factory"
)

type FactoryHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)

	CreateFund(w http.ResponseWriter, r *http.Request)
	ListFunds(w http.ResponseWriter, r *http.Request)
	DeleteFund(w http.ResponseWriter, r *http.Request)

	CreateWorkshopExpense(w http.ResponseWriter, r *http.Request)
	ListWorkshopExpenses(w http.ResponseWriter, r *http.Request)
	UpdateWorkshopExpense(w http.ResponseWriter, r *http.Request)
	DeleteWorkshopExpense(w http.ResponseWriter, r *http.Request)

	CreateStockItem(w http.ResponseWriter, r *http.Request)
	ListStockItems(w http.ResponseWriter, r *http.Request)
	DeleteStockItem(w http.ResponseWriter, r *http.Request)

	CreatePurchase(w http.ResponseWriter, r *http.Request)
	ListPurchases(w http.ResponseWriter, r *http.Request)
	DeletePurchase(w http.ResponseWriter, r *http.Request)

	CreateConsumption(w http.ResponseWriter, r *http.Request)
	ListConsumptions(w http.ResponseWriter, r *http.Request)
	DeleteConsumption(w http.ResponseWriter, r *http.Request)
}

type FactoryHandlerImpl struct {
	factoryService serviceFactory.FactoryService
}

func NewFactoryHandler(factoryService serviceFactory.FactoryService) FactoryHandler {
	return &FactoryHandlerImpl{factoryService: factoryService}
}

// GetSettings implements FactoryHandler.
func (f *FactoryHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	settings, err := f.factoryService.GetSettings(r.Context(), tenant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// CreateFund implements FactoryHandler.
func (f *FactoryHandlerImpl) CreateFund(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req factory.FundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create factory fund decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := f.factoryService.CreateFund(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create factory fund service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Factory fund entry recorded successfully", created)
}

// ListFunds implements FactoryHandler.
func (f *FactoryHandlerImpl) ListFunds(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	funds, err := f.factoryService.ListFunds(r.Context(), tenant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, funds)
}

// DeleteFund implements FactoryHandler.
func (f *FactoryHandlerImpl) DeleteFund(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := f.factoryService.DeleteFund(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete factory fund service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Factory fund entry deleted successfully", nil)
}

// CreateWorkshopExpense implements FactoryHandler.
func (f *FactoryHandlerImpl) CreateWorkshopExpense(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req factory.CreateWorkshopExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create workshop expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := f.factoryService.CreateWorkshopExpense(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create workshop expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Workshop expense created successfully", created)
}

// ListWorkshopExpenses implements FactoryHandler.
func (f *FactoryHandlerImpl) ListWorkshopExpenses(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	expenses, err := f.factoryService.ListWorkshopExpenses(r.Context(), tenant, optionalQuery(r, "start_date"), optionalQuery(r, "end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenses)
}

// UpdateWorkshopExpense implements FactoryHandler.
func (f *FactoryHandlerImpl) UpdateWorkshopExpense(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req factory.UpdateWorkshopExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update workshop expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := f.factoryService.UpdateWorkshopExpense(r.Context(), tenant, req); err != nil {
		slog.Error("Update workshop expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Workshop expense updated successfully", nil)
}

// DeleteWorkshopExpense implements FactoryHandler.
func (f *FactoryHandlerImpl) DeleteWorkshopExpense(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := f.factoryService.DeleteWorkshopExpense(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete workshop expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Workshop expense deleted successfully", nil)
}

// CreateStockItem implements FactoryHandler.
func (f *FactoryHandlerImpl) CreateStockItem(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req factory.CreateStockItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create stock item decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := f.factoryService.CreateStockItem(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create stock item service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stock item created successfully", created)
}

// ListStockItems implements FactoryHandler.
func (f *FactoryHandlerImpl) ListStockItems(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	items, err := f.factoryService.ListStockItems(r.Context(), tenant, factory.StockKind(r.URL.Query().Get("kind")))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// DeleteStockItem implements FactoryHandler.
func (f *FactoryHandlerImpl) DeleteStockItem(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := f.factoryService.DeleteStockItem(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete stock item service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock item deleted successfully", nil)
}

// CreatePurchase implements FactoryHandler.
func (f *FactoryHandlerImpl) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req factory.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create stock purchase decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ItemID = chi.URLParam(r, "id")

	created, err := f.factoryService.CreatePurchase(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create stock purchase service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stock purchase recorded successfully", created)
}

// ListPurchases implements FactoryHandler.
func (f *FactoryHandlerImpl) ListPurchases(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	purchases, err := f.factoryService.ListPurchases(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, purchases)
}

// DeletePurchase implements FactoryHandler.
func (f *FactoryHandlerImpl) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := f.factoryService.DeletePurchase(r.Context(), tenant, chi.URLParam(r, "purchaseID")); err != nil {
		slog.Error("Delete stock purchase service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock purchase deleted successfully", nil)
}

// CreateConsumption implements FactoryHandler.
func (f *FactoryHandlerImpl) CreateConsumption(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req factory.ConsumptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create stock consumption decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ItemID = chi.URLParam(r, "id")

	created, err := f.factoryService.CreateConsumption(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create stock consumption service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stock consumption recorded successfully", created)
}

// ListConsumptions implements FactoryHandler.
func (f *FactoryHandlerImpl) ListConsumptions(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	consumptions, err := f.factoryService.ListConsumptions(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, consumptions)
}

// DeleteConsumption implements FactoryHandler.
func (f *FactoryHandlerImpl) DeleteConsumption(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := f.factoryService.DeleteConsumption(r.Context(), tenant, chi.URLParam(r, "consumptionID")); err != nil {
		slog.Error("Delete stock consumption service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock consumption deleted successfully", nil)
}
