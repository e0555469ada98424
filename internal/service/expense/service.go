package expense

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/expense"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/ledger"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
	ledgersvc "github.com/tadbir-app/tadbir-backend-go/internal/service/ledger"
)

type ExpenseService interface {
	Create(ctx context.Context, tenant user.TenantContext, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error)
	List(ctx context.Context, tenant user.TenantContext, startDate, endDate *string) ([]expense.ExpenseResponse, error)
	Update(ctx context.Context, tenant user.TenantContext, req expense.UpdateExpenseRequest) error
	Delete(ctx context.Context, tenant user.TenantContext, id string) error

	CreateFund(ctx context.Context, tenant user.TenantContext, req expense.CreateExternalFundRequest) (expense.ExternalFundResponse, error)
	ListFunds(ctx context.Context, tenant user.TenantContext, startDate, endDate *string) ([]expense.ExternalFundResponse, error)
	DeleteFund(ctx context.Context, tenant user.TenantContext, id string) error
}

type ExpenseServiceImpl struct {
	db *database.DB
	expense.ExpenseRepository
	expense.ExternalFundRepository
	applier *ledgersvc.Applier
}

func NewExpenseService(db *database.DB, expenses expense.ExpenseRepository, funds expense.ExternalFundRepository, applier *ledgersvc.Applier) ExpenseService {
	return &ExpenseServiceImpl{
		db:                     db,
		ExpenseRepository:      expenses,
		ExternalFundRepository: funds,
		applier:                applier,
	}
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, tenant user.TenantContext, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if !tenant.Can(user.PermissionExpenseManage) {
		return expense.ExpenseResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	var created expense.Expense
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.ExpenseRepository.Create(txCtx, expense.Expense{
			Title:  req.Title,
			Amount: req.Amount,
			Note:   req.Note,
			Date:   req.Date,
		})
		if err != nil {
			return fmt.Errorf("create expense: %w", err)
		}
		return s.applier.ApplyEffect(txCtx, ledger.Effect{Kind: ledger.EventExpense, Amount: req.Amount})
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return expense.ToExpenseResponse(created), nil
}

func (s *ExpenseServiceImpl) List(ctx context.Context, tenant user.TenantContext, startDate, endDate *string) ([]expense.ExpenseResponse, error) {
	if !tenant.Can(user.PermissionExpenseView) {
		return nil, user.ErrPermissionDenied
	}

	expenses, err := s.ExpenseRepository.List(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, expense.ToExpenseResponse(e))
	}
	return responses, nil
}

// Update edits the expense row; if the amount changed, only the difference
// moves on the parent balance.
func (s *ExpenseServiceImpl) Update(ctx context.Context, tenant user.TenantContext, req expense.UpdateExpenseRequest) error {
	if !tenant.Can(user.PermissionExpenseManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.ExpenseRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if err := s.ExpenseRepository.UpdateAmount(txCtx, req.ID, req); err != nil {
			return fmt.Errorf("update expense: %w", err)
		}
		if req.Amount == nil {
			return nil
		}
		return s.applier.ApplyDiff(txCtx, ledger.EventExpense, "", current.Amount, *req.Amount)
	})
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionExpenseManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.ExpenseRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.ExpenseRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.applier.Reverse(txCtx, ledger.Effect{Kind: ledger.EventExpense, Amount: current.Amount})
	})
}

func (s *ExpenseServiceImpl) CreateFund(ctx context.Context, tenant user.TenantContext, req expense.CreateExternalFundRequest) (expense.ExternalFundResponse, error) {
	if !tenant.Can(user.PermissionExpenseManage) {
		return expense.ExternalFundResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return expense.ExternalFundResponse{}, err
	}

	kind := ledger.EventExternalFundIn
	if expense.FundDirection(req.Direction) == expense.FundOutgoing {
		kind = ledger.EventExternalFundOut
	}

	var created expense.ExternalFund
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.ExternalFundRepository.Create(txCtx, expense.ExternalFund{
			Party:     req.Party,
			Direction: expense.FundDirection(req.Direction),
			Amount:    req.Amount,
			Note:      req.Note,
			Date:      req.Date,
		})
		if err != nil {
			return fmt.Errorf("create external fund: %w", err)
		}
		return s.applier.ApplyEffect(txCtx, ledger.Effect{Kind: kind, Amount: req.Amount})
	})
	if err != nil {
		return expense.ExternalFundResponse{}, err
	}
	return expense.ToExternalFundResponse(created), nil
}

func (s *ExpenseServiceImpl) ListFunds(ctx context.Context, tenant user.TenantContext, startDate, endDate *string) ([]expense.ExternalFundResponse, error) {
	if !tenant.Can(user.PermissionExpenseView) {
		return nil, user.ErrPermissionDenied
	}

	funds, err := s.ExternalFundRepository.List(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list external funds: %w", err)
	}

	responses := make([]expense.ExternalFundResponse, 0, len(funds))
	for _, f := range funds {
		responses = append(responses, expense.ToExternalFundResponse(f))
	}
	return responses, nil
}

func (s *ExpenseServiceImpl) DeleteFund(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionExpenseManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.ExternalFundRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		kind := ledger.EventExternalFundIn
		if current.Direction == expense.FundOutgoing {
			kind = ledger.EventExternalFundOut
		}
		if err := s.ExternalFundRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.applier.Reverse(txCtx, ledger.Effect{Kind: kind, Amount: current.Amount})
	})
}
