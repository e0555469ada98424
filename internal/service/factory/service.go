package factory

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/factory"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/ledger"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
	ledgersvc "github.com/tadbir-app/tadbir-backend-go/internal/service/ledger"
)

type FactoryService interface {
	GetSettings(ctx context.Context, tenant user.TenantContext) (factory.SettingsResponse, error)

	CreateFund(ctx context.Context, tenant user.TenantContext, req factory.FundRequest) (factory.FundEntryResponse, error)
	ListFunds(ctx context.Context, tenant user.TenantContext) ([]factory.FundEntryResponse, error)
	DeleteFund(ctx context.Context, tenant user.TenantContext, id string) error

	CreateWorkshopExpense(ctx context.Context, tenant user.TenantContext, req factory.CreateWorkshopExpenseRequest) (factory.WorkshopExpenseResponse, error)
	ListWorkshopExpenses(ctx context.Context, tenant user.TenantContext, startDate, endDate *string) ([]factory.WorkshopExpenseResponse, error)
	UpdateWorkshopExpense(ctx context.Context, tenant user.TenantContext, req factory.UpdateWorkshopExpenseRequest) error
	DeleteWorkshopExpense(ctx context.Context, tenant user.TenantContext, id string) error

	CreateStockItem(ctx context.Context, tenant user.TenantContext, req factory.CreateStockItemRequest) (factory.StockItemResponse, error)
	ListStockItems(ctx context.Context, tenant user.TenantContext, kind factory.StockKind) ([]factory.StockItemResponse, error)
	DeleteStockItem(ctx context.Context, tenant user.TenantContext, id string) error

	CreatePurchase(ctx context.Context, tenant user.TenantContext, req factory.PurchaseRequest) (factory.PurchaseResponse, error)
	ListPurchases(ctx context.Context, tenant user.TenantContext, itemID string) ([]factory.PurchaseResponse, error)
	DeletePurchase(ctx context.Context, tenant user.TenantContext, id string) error

	CreateConsumption(ctx context.Context, tenant user.TenantContext, req factory.ConsumptionRequest) (factory.ConsumptionResponse, error)
	ListConsumptions(ctx context.Context, tenant user.TenantContext, itemID string) ([]factory.ConsumptionResponse, error)
	DeleteConsumption(ctx context.Context, tenant user.TenantContext, id string) error
}

type FactoryServiceImpl struct {
	db *database.DB
	factory.SettingsRepository
	factory.FundEntryRepository
	factory.WorkshopExpenseRepository
	factory.StockItemRepository
	factory.StockPurchaseRepository
	factory.StockConsumptionRepository
	applier *ledgersvc.Applier
}

func NewFactoryService(
	db *database.DB,
	settings factory.SettingsRepository,
	funds factory.FundEntryRepository,
	workshopExpenses factory.WorkshopExpenseRepository,
	stockItems factory.StockItemRepository,
	purchases factory.StockPurchaseRepository,
	consumptions factory.StockConsumptionRepository,
	applier *ledgersvc.Applier,
) FactoryService {
	return &FactoryServiceImpl{
		db:                         db,
		SettingsRepository:         settings,
		FundEntryRepository:        funds,
		WorkshopExpenseRepository:  workshopExpenses,
		StockItemRepository:        stockItems,
		StockPurchaseRepository:    purchases,
		StockConsumptionRepository: consumptions,
		applier:                    applier,
	}
}

func (s *FactoryServiceImpl) GetSettings(ctx context.Context, tenant user.TenantContext) (factory.SettingsResponse, error) {
	if !tenant.Can(user.PermissionFactoryView) {
		return factory.SettingsResponse{}, user.ErrPermissionDenied
	}

	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return factory.SettingsResponse{}, fmt.Errorf("get factory settings: %w", err)
	}
	return factory.SettingsResponse{
		Balance:   settings.Balance,
		UpdatedAt: settings.UpdatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// CreateFund moves money between the parent balance and the factory balance.
// Funding the factory debits the parent; withdrawing credits it.
func (s *FactoryServiceImpl) CreateFund(ctx context.Context, tenant user.TenantContext, req factory.FundRequest) (factory.FundEntryResponse, error) {
	if !tenant.Can(user.PermissionFactoryManage) {
		return factory.FundEntryResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return factory.FundEntryResponse{}, err
	}

	kind := ledger.EventFactoryFundAdd
	if factory.FundDirection(req.Direction) == factory.FundWithdraw {
		kind = ledger.EventFactoryFundWithdraw
	}

	var created factory.FundEntry
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.FundEntryRepository.Create(txCtx, factory.FundEntry{
			Direction: factory.FundDirection(req.Direction),
			Amount:    req.Amount,
			Note:      req.Note,
			Date:      req.Date,
		})
		if err != nil {
			return fmt.Errorf("create fund entry: %w", err)
		}
		return s.applier.ApplyEffect(txCtx, ledger.Effect{Kind: kind, Amount: req.Amount})
	})
	if err != nil {
		return factory.FundEntryResponse{}, err
	}
	return factory.ToFundEntryResponse(created), nil
}

func (s *FactoryServiceImpl) ListFunds(ctx context.Context, tenant user.TenantContext) ([]factory.FundEntryResponse, error) {
	if !tenant.Can(user.PermissionFactoryView) {
		return nil, user.ErrPermissionDenied
	}

	entries, err := s.FundEntryRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fund entries: %w", err)
	}

	responses := make([]factory.FundEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, factory.ToFundEntryResponse(e))
	}
	return responses, nil
}

func (s *FactoryServiceImpl) DeleteFund(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionFactoryManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.FundEntryRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		kind := ledger.EventFactoryFundAdd
		if current.Direction == factory.FundWithdraw {
			kind = ledger.EventFactoryFundWithdraw
		}
		if err := s.FundEntryRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.applier.Reverse(txCtx, ledger.Effect{Kind: kind, Amount: current.Amount})
	})
}

func (s *FactoryServiceImpl) CreateWorkshopExpense(ctx context.Context, tenant user.TenantContext, req factory.CreateWorkshopExpenseRequest) (factory.WorkshopExpenseResponse, error) {
	if !tenant.Can(user.PermissionFactoryManage) {
		return factory.WorkshopExpenseResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return factory.WorkshopExpenseResponse{}, err
	}

	var created factory.WorkshopExpense
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.WorkshopExpenseRepository.Create(txCtx, factory.WorkshopExpense{
			Title:  req.Title,
			Amount: req.Amount,
			Note:   req.Note,
			Date:   req.Date,
		})
		if err != nil {
			return fmt.Errorf("create workshop expense: %w", err)
		}
		return s.applier.ApplyEffect(txCtx, ledger.Effect{Kind: ledger.EventWorkshopExpense, Amount: req.Amount})
	})
	if err != nil {
		return factory.WorkshopExpenseResponse{}, err
	}
	return factory.ToWorkshopExpenseResponse(created), nil
}

func (s *FactoryServiceImpl) ListWorkshopExpenses(ctx context.Context, tenant user.TenantContext, startDate, endDate *string) ([]factory.WorkshopExpenseResponse, error) {
	if !tenant.Can(user.PermissionFactoryView) {
		return nil, user.ErrPermissionDenied
	}

	expenses, err := s.WorkshopExpenseRepository.List(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list workshop expenses: %w", err)
	}

	responses := make([]factory.WorkshopExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, factory.ToWorkshopExpenseResponse(e))
	}
	return responses, nil
}

func (s *FactoryServiceImpl) UpdateWorkshopExpense(ctx context.Context, tenant user.TenantContext, req factory.UpdateWorkshopExpenseRequest) error {
	if !tenant.Can(user.PermissionFactoryManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.WorkshopExpenseRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if err := s.WorkshopExpenseRepository.UpdateAmount(txCtx, req.ID, req.Amount); err != nil {
			return fmt.Errorf("update workshop expense: %w", err)
		}
		return s.applier.ApplyDiff(txCtx, ledger.EventWorkshopExpense, "", current.Amount, req.Amount)
	})
}

func (s *FactoryServiceImpl) DeleteWorkshopExpense(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionFactoryManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.WorkshopExpenseRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.WorkshopExpenseRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.applier.Reverse(txCtx, ledger.Effect{Kind: ledger.EventWorkshopExpense, Amount: current.Amount})
	})
}

func (s *FactoryServiceImpl) CreateStockItem(ctx context.Context, tenant user.TenantContext, req factory.CreateStockItemRequest) (factory.StockItemResponse, error) {
	if !tenant.Can(user.PermissionFactoryManage) {
		return factory.StockItemResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return factory.StockItemResponse{}, err
	}

	created, err := s.StockItemRepository.Create(ctx, factory.StockItem{
		Kind:     factory.StockKind(req.Kind),
		Name:     req.Name,
		Unit:     req.Unit,
		Quantity: decimal.Zero,
	})
	if err != nil {
		return factory.StockItemResponse{}, fmt.Errorf("create stock item: %w", err)
	}
	return factory.ToStockItemResponse(created), nil
}

func (s *FactoryServiceImpl) ListStockItems(ctx context.Context, tenant user.TenantContext, kind factory.StockKind) ([]factory.StockItemResponse, error) {
	if !tenant.Can(user.PermissionFactoryView) {
		return nil, user.ErrPermissionDenied
	}

	items, err := s.StockItemRepository.ListByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}

	responses := make([]factory.StockItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, factory.ToStockItemResponse(item))
	}
	return responses, nil
}

func (s *FactoryServiceImpl) DeleteStockItem(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionFactoryManage) {
		return user.ErrPermissionDenied
	}
	return s.StockItemRepository.Delete(ctx, id)
}

// CreatePurchase raises the item quantity and debits both the factory and
// parent balances by the cost.
func (s *FactoryServiceImpl) CreatePurchase(ctx context.Context, tenant user.TenantContext, req factory.PurchaseRequest) (factory.PurchaseResponse, error) {
	if !tenant.Can(user.PermissionFactoryManage) {
		return factory.PurchaseResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return factory.PurchaseResponse{}, err
	}

	var created factory.StockPurchase
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.StockItemRepository.GetByID(txCtx, req.ItemID); err != nil {
			return err
		}

		var err error
		created, err = s.StockPurchaseRepository.Create(txCtx, factory.StockPurchase{
			ItemID:   req.ItemID,
			Quantity: req.Quantity,
			Cost:     req.Cost,
			Note:     req.Note,
			Date:     req.Date,
		})
		if err != nil {
			return fmt.Errorf("create stock purchase: %w", err)
		}
		if err := s.StockItemRepository.AdjustQuantity(txCtx, req.ItemID, req.Quantity); err != nil {
			return err
		}
		return s.applier.ApplyEffect(txCtx, ledger.Effect{Kind: ledger.EventStockPurchase, Amount: req.Cost})
	})
	if err != nil {
		return factory.PurchaseResponse{}, err
	}
	return factory.ToPurchaseResponse(created), nil
}

func (s *FactoryServiceImpl) ListPurchases(ctx context.Context, tenant user.TenantContext, itemID string) ([]factory.PurchaseResponse, error) {
	if !tenant.Can(user.PermissionFactoryView) {
		return nil, user.ErrPermissionDenied
	}

	purchases, err := s.StockPurchaseRepository.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock purchases: %w", err)
	}

	responses := make([]factory.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, factory.ToPurchaseResponse(p))
	}
	return responses, nil
}

func (s *FactoryServiceImpl) DeletePurchase(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionFactoryManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.StockPurchaseRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.StockPurchaseRepository.Delete(txCtx, id); err != nil {
			return err
		}
		if err := s.StockItemRepository.AdjustQuantity(txCtx, current.ItemID, current.Quantity.Neg()); err != nil {
			return err
		}
		return s.applier.Reverse(txCtx, ledger.Effect{Kind: ledger.EventStockPurchase, Amount: current.Cost})
	})
}

// CreateConsumption lowers the item quantity; consumptions carry no monetary
// effect.
func (s *FactoryServiceImpl) CreateConsumption(ctx context.Context, tenant user.TenantContext, req factory.ConsumptionRequest) (factory.ConsumptionResponse, error) {
	if !tenant.Can(user.PermissionFactoryManage) {
		return factory.ConsumptionResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return factory.ConsumptionResponse{}, err
	}

	var created factory.StockConsumption
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.StockItemRepository.GetByID(txCtx, req.ItemID); err != nil {
			return err
		}

		var err error
		created, err = s.StockConsumptionRepository.Create(txCtx, factory.StockConsumption{
			ItemID:   req.ItemID,
			Quantity: req.Quantity,
			Note:     req.Note,
			Date:     req.Date,
		})
		if err != nil {
			return fmt.Errorf("create stock consumption: %w", err)
		}
		return s.StockItemRepository.AdjustQuantity(txCtx, req.ItemID, req.Quantity.Neg())
	})
	if err != nil {
		return factory.ConsumptionResponse{}, err
	}
	return factory.ToConsumptionResponse(created), nil
}

func (s *FactoryServiceImpl) ListConsumptions(ctx context.Context, tenant user.TenantContext, itemID string) ([]factory.ConsumptionResponse, error) {
	if !tenant.Can(user.PermissionFactoryView) {
		return nil, user.ErrPermissionDenied
	}

	consumptions, err := s.StockConsumptionRepository.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock consumptions: %w", err)
	}

	responses := make([]factory.ConsumptionResponse, 0, len(consumptions))
	for _, c := range consumptions {
		responses = append(responses, factory.ToConsumptionResponse(c))
	}
	return responses, nil
}

func (s *FactoryServiceImpl) DeleteConsumption(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionFactoryManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.StockConsumptionRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.StockConsumptionRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.StockItemRepository.AdjustQuantity(txCtx, current.ItemID, current.Quantity)
	})
}
