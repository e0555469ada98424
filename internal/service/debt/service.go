package debt

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/debt"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
)

type DebtService interface {
	Create(ctx context.Context, tenant user.TenantContext, req debt.CreateDebtRequest) (debt.DebtResponse, error)
	GetByID(ctx context.Context, tenant user.TenantContext, id string) (debt.DebtResponse, error)
	List(ctx context.Context, tenant user.TenantContext) ([]debt.DebtResponse, error)
	Delete(ctx context.Context, tenant user.TenantContext, id string) error

	CreatePayment(ctx context.Context, tenant user.TenantContext, req debt.CreatePaymentRequest) (debt.PaymentResponse, error)
	ListPayments(ctx context.Context, tenant user.TenantContext, debtID string) ([]debt.PaymentResponse, error)
	DeletePayment(ctx context.Context, tenant user.TenantContext, id string) error
}

type DebtServiceImpl struct {
	db *database.DB
	debt.DebtRepository
	debt.DebtPaymentRepository
}

func NewDebtService(db *database.DB, debts debt.DebtRepository, payments debt.DebtPaymentRepository) DebtService {
	return &DebtServiceImpl{
		db:                    db,
		DebtRepository:        debts,
		DebtPaymentRepository: payments,
	}
}

// External debts never touch the company balances; only paid_amount moves.

func (s *DebtServiceImpl) Create(ctx context.Context, tenant user.TenantContext, req debt.CreateDebtRequest) (debt.DebtResponse, error) {
	if !tenant.Can(user.PermissionDebtManage) {
		return debt.DebtResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return debt.DebtResponse{}, err
	}

	created, err := s.DebtRepository.Create(ctx, debt.ExternalDebt{
		Creditor:    req.Creditor,
		TotalAmount: req.TotalAmount,
		PaidAmount:  decimal.Zero,
		Note:        req.Note,
		Date:        req.Date,
	})
	if err != nil {
		return debt.DebtResponse{}, fmt.Errorf("create debt: %w", err)
	}
	return debt.ToDebtResponse(created), nil
}

func (s *DebtServiceImpl) GetByID(ctx context.Context, tenant user.TenantContext, id string) (debt.DebtResponse, error) {
	if !tenant.Can(user.PermissionDebtView) {
		return debt.DebtResponse{}, user.ErrPermissionDenied
	}

	found, err := s.DebtRepository.GetByID(ctx, id)
	if err != nil {
		return debt.DebtResponse{}, err
	}
	return debt.ToDebtResponse(found), nil
}

func (s *DebtServiceImpl) List(ctx context.Context, tenant user.TenantContext) ([]debt.DebtResponse, error) {
	if !tenant.Can(user.PermissionDebtView) {
		return nil, user.ErrPermissionDenied
	}

	debts, err := s.DebtRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}

	responses := make([]debt.DebtResponse, 0, len(debts))
	for _, d := range debts {
		responses = append(responses, debt.ToDebtResponse(d))
	}
	return responses, nil
}

// Delete removes the debt and every payment that references it.
func (s *DebtServiceImpl) Delete(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionDebtManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.DebtRepository.GetByID(txCtx, id); err != nil {
			return err
		}
		if err := s.DebtPaymentRepository.DeleteByDebt(txCtx, id); err != nil {
			return fmt.Errorf("delete debt payments: %w", err)
		}
		return s.DebtRepository.Delete(txCtx, id)
	})
}

// CreatePayment raises paid_amount, rejecting amounts that would push it past
// the total. The bound check and the write share one transaction so a
// concurrent payment cannot slip past the limit.
func (s *DebtServiceImpl) CreatePayment(ctx context.Context, tenant user.TenantContext, req debt.CreatePaymentRequest) (debt.PaymentResponse, error) {
	if !tenant.Can(user.PermissionDebtManage) {
		return debt.PaymentResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return debt.PaymentResponse{}, err
	}

	var created debt.DebtPayment
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.DebtRepository.GetByID(txCtx, req.DebtID)
		if err != nil {
			return err
		}
		if req.Amount.GreaterThan(current.Remaining()) {
			return debt.ErrPaymentExceedsRemaining
		}

		created, err = s.DebtPaymentRepository.Create(txCtx, debt.DebtPayment{
			DebtID: req.DebtID,
			Amount: req.Amount,
			Note:   req.Note,
			Date:   req.Date,
		})
		if err != nil {
			return fmt.Errorf("create debt payment: %w", err)
		}
		return s.DebtRepository.AdjustPaid(txCtx, req.DebtID, req.Amount)
	})
	if err != nil {
		return debt.PaymentResponse{}, err
	}
	return debt.ToPaymentResponse(created), nil
}

func (s *DebtServiceImpl) ListPayments(ctx context.Context, tenant user.TenantContext, debtID string) ([]debt.PaymentResponse, error) {
	if !tenant.Can(user.PermissionDebtView) {
		return nil, user.ErrPermissionDenied
	}

	payments, err := s.DebtPaymentRepository.ListByDebt(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("list debt payments: %w", err)
	}

	responses := make([]debt.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, debt.ToPaymentResponse(p))
	}
	return responses, nil
}

// DeletePayment reverses the paid_amount movement before removing the row.
func (s *DebtServiceImpl) DeletePayment(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionDebtManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.DebtPaymentRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.DebtRepository.AdjustPaid(txCtx, current.DebtID, current.Amount.Neg()); err != nil {
			return err
		}
		return s.DebtPaymentRepository.Delete(txCtx, id)
	})
}
