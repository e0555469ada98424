package worker

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/ledger"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/worker"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
	ledgersvc "github.com/tadbir-app/tadbir-backend-go/internal/service/ledger"
)

type WorkerService interface {
	Create(ctx context.Context, tenant user.TenantContext, req worker.CreateWorkerRequest) (worker.WorkerResponse, error)
	GetByID(ctx context.Context, tenant user.TenantContext, id string) (worker.WorkerResponse, error)
	List(ctx context.Context, tenant user.TenantContext) ([]worker.WorkerResponse, error)
	Update(ctx context.Context, tenant user.TenantContext, req worker.UpdateWorkerRequest) error
	Delete(ctx context.Context, tenant user.TenantContext, id string) error

	CreateTransaction(ctx context.Context, tenant user.TenantContext, req worker.CreateTransactionRequest) (worker.TransactionResponse, error)
	ListTransactions(ctx context.Context, tenant user.TenantContext, workerID string, startDate, endDate *string) ([]worker.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, tenant user.TenantContext, id string) error
}

type WorkerServiceImpl struct {
	db *database.DB
	worker.WorkerRepository
	worker.WorkerTransactionRepository
	applier *ledgersvc.Applier
}

func NewWorkerService(db *database.DB, workers worker.WorkerRepository, transactions worker.WorkerTransactionRepository, applier *ledgersvc.Applier) WorkerService {
	return &WorkerServiceImpl{
		db:                          db,
		WorkerRepository:            workers,
		WorkerTransactionRepository: transactions,
		applier:                     applier,
	}
}

func (s *WorkerServiceImpl) Create(ctx context.Context, tenant user.TenantContext, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if !tenant.Can(user.PermissionWorkerManage) {
		return worker.WorkerResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		Name:         req.Name,
		Number:       req.Number,
		Balance:      decimal.Zero,
		Wage:         req.Wage,
		OvertimeRate: req.OvertimeRate,
		BaseBonus:    req.BaseBonus,
		ShiftID:      req.ShiftID,
	})
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("create worker: %w", err)
	}
	return worker.ToWorkerResponse(created), nil
}

func (s *WorkerServiceImpl) GetByID(ctx context.Context, tenant user.TenantContext, id string) (worker.WorkerResponse, error) {
	if !tenant.Can(user.PermissionWorkerView) {
		return worker.WorkerResponse{}, user.ErrPermissionDenied
	}

	w, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.ToWorkerResponse(w), nil
}

func (s *WorkerServiceImpl) List(ctx context.Context, tenant user.TenantContext) ([]worker.WorkerResponse, error) {
	if !tenant.Can(user.PermissionWorkerView) {
		return nil, user.ErrPermissionDenied
	}

	workers, err := s.WorkerRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.ToWorkerResponse(w))
	}
	return responses, nil
}

func (s *WorkerServiceImpl) Update(ctx context.Context, tenant user.TenantContext, req worker.UpdateWorkerRequest) error {
	if !tenant.Can(user.PermissionWorkerManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.WorkerRepository.Update(ctx, req.ID, req)
}

func (s *WorkerServiceImpl) Delete(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionWorkerManage) {
		return user.ErrPermissionDenied
	}
	return s.WorkerRepository.Delete(ctx, id)
}

// eventForTransaction maps a worker transaction type onto its ledger event.
func eventForTransaction(t worker.TransactionType) (ledger.EventKind, error) {
	switch t {
	case worker.TransactionSalary:
		return ledger.EventWorkerSalary, nil
	case worker.TransactionAdvance:
		return ledger.EventWorkerAdvance, nil
	case worker.TransactionDeduction:
		return ledger.EventWorkerDeduction, nil
	default:
		return "", worker.ErrInvalidTransactionType
	}
}

func (s *WorkerServiceImpl) CreateTransaction(ctx context.Context, tenant user.TenantContext, req worker.CreateTransactionRequest) (worker.TransactionResponse, error) {
	if !tenant.Can(user.PermissionWorkerManage) {
		return worker.TransactionResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return worker.TransactionResponse{}, err
	}

	kind, err := eventForTransaction(worker.TransactionType(req.Type))
	if err != nil {
		return worker.TransactionResponse{}, err
	}

	var created worker.WorkerTransaction
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.WorkerRepository.GetByID(txCtx, req.WorkerID); err != nil {
			return err
		}

		created, err = s.WorkerTransactionRepository.Create(txCtx, worker.WorkerTransaction{
			WorkerID: req.WorkerID,
			Type:     worker.TransactionType(req.Type),
			Amount:   req.Amount,
			Note:     req.Note,
			Date:     req.Date,
		})
		if err != nil {
			return fmt.Errorf("create worker transaction: %w", err)
		}

		return s.applier.ApplyEffect(txCtx, ledger.Effect{
			Kind:   kind,
			SinkID: req.WorkerID,
			Amount: req.Amount,
		})
	})
	if err != nil {
		return worker.TransactionResponse{}, err
	}
	return worker.ToTransactionResponse(created), nil
}

func (s *WorkerServiceImpl) ListTransactions(ctx context.Context, tenant user.TenantContext, workerID string, startDate, endDate *string) ([]worker.TransactionResponse, error) {
	if !tenant.Can(user.PermissionWorkerView) {
		return nil, user.ErrPermissionDenied
	}

	transactions, err := s.WorkerTransactionRepository.ListByWorker(ctx, workerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list worker transactions: %w", err)
	}

	responses := make([]worker.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, worker.ToTransactionResponse(t))
	}
	return responses, nil
}

func (s *WorkerServiceImpl) DeleteTransaction(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionWorkerManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.WorkerTransactionRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		kind, err := eventForTransaction(current.Type)
		if err != nil {
			return err
		}

		if err := s.WorkerTransactionRepository.Delete(txCtx, id); err != nil {
			return err
		}

		return s.applier.Reverse(txCtx, ledger.Effect{
			Kind:   kind,
			SinkID: current.WorkerID,
			Amount: current.Amount,
		})
	})
}
