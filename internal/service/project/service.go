package project

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/ledger"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/project"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
	ledgersvc "github.com/tadbir-app/tadbir-backend-go/internal/service/ledger"
)

type ProjectService interface {
	Create(ctx context.Context, tenant user.TenantContext, req project.CreateProjectRequest) (project.ProjectResponse, error)
	GetByID(ctx context.Context, tenant user.TenantContext, id string) (project.ProjectResponse, error)
	List(ctx context.Context, tenant user.TenantContext) ([]project.ProjectResponse, error)
	Delete(ctx context.Context, tenant user.TenantContext, id string) error

	CreateTransaction(ctx context.Context, tenant user.TenantContext, req project.CreateTransactionRequest) (project.TransactionResponse, error)
	ListTransactions(ctx context.Context, tenant user.TenantContext, projectID string) ([]project.TransactionResponse, error)
	UpdateTransaction(ctx context.Context, tenant user.TenantContext, req project.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, tenant user.TenantContext, id string) error
}

type ProjectServiceImpl struct {
	db *database.DB
	project.ProjectRepository
	project.ProjectTransactionRepository
	applier *ledgersvc.Applier
}

func NewProjectService(db *database.DB, projects project.ProjectRepository, transactions project.ProjectTransactionRepository, applier *ledgersvc.Applier) ProjectService {
	return &ProjectServiceImpl{
		db:                           db,
		ProjectRepository:            projects,
		ProjectTransactionRepository: transactions,
		applier:                      applier,
	}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, tenant user.TenantContext, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if !tenant.Can(user.PermissionProjectManage) {
		return project.ProjectResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Name:    req.Name,
		Balance: decimal.Zero,
		Note:    req.Note,
	})
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("create project: %w", err)
	}
	return project.ToProjectResponse(created), nil
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, tenant user.TenantContext, id string) (project.ProjectResponse, error) {
	if !tenant.Can(user.PermissionProjectView) {
		return project.ProjectResponse{}, user.ErrPermissionDenied
	}

	found, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.ToProjectResponse(found), nil
}

func (s *ProjectServiceImpl) List(ctx context.Context, tenant user.TenantContext) ([]project.ProjectResponse, error) {
	if !tenant.Can(user.PermissionProjectView) {
		return nil, user.ErrPermissionDenied
	}

	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToProjectResponse(p))
	}
	return responses, nil
}

// Delete removes a project and its transactions. The summed net effect of
// all transactions is reversed from the parent balance first, so the group
// totals stay intact after the cascade.
func (s *ProjectServiceImpl) Delete(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionProjectManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.ProjectRepository.GetByID(txCtx, id); err != nil {
			return err
		}

		transactions, err := s.ProjectTransactionRepository.ListByProject(txCtx, id)
		if err != nil {
			return fmt.Errorf("list project transactions: %w", err)
		}

		net := decimal.Zero
		for _, t := range transactions {
			net = net.Add(t.NetEffect())
		}
		if !net.IsZero() {
			// The project row is about to be deleted, so only the parent side
			// of the reversal is applied.
			if err := s.applier.Apply(txCtx, ledger.Delta{SinkType: ledger.SinkNone, Parent: net.Neg()}); err != nil {
				return err
			}
		}

		if err := s.ProjectTransactionRepository.DeleteByProject(txCtx, id); err != nil {
			return fmt.Errorf("delete project transactions: %w", err)
		}
		return s.ProjectRepository.Delete(txCtx, id)
	})
}

func (s *ProjectServiceImpl) CreateTransaction(ctx context.Context, tenant user.TenantContext, req project.CreateTransactionRequest) (project.TransactionResponse, error) {
	if !tenant.Can(user.PermissionProjectManage) {
		return project.TransactionResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return project.TransactionResponse{}, err
	}

	kind := ledger.EventProjectExpense
	if project.TransactionType(req.Type) == project.TransactionIncome {
		kind = ledger.EventProjectIncome
	}

	var created project.ProjectTransaction
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.ProjectRepository.GetByID(txCtx, req.ProjectID); err != nil {
			return err
		}

		var err error
		created, err = s.ProjectTransactionRepository.Create(txCtx, project.ProjectTransaction{
			ProjectID: req.ProjectID,
			Type:      project.TransactionType(req.Type),
			Title:     req.Title,
			Amount:    req.Amount,
			Note:      req.Note,
			Date:      req.Date,
		})
		if err != nil {
			return fmt.Errorf("create project transaction: %w", err)
		}
		return s.applier.ApplyEffect(txCtx, ledger.Effect{Kind: kind, SinkID: req.ProjectID, Amount: req.Amount})
	})
	if err != nil {
		return project.TransactionResponse{}, err
	}
	return project.ToTransactionResponse(created), nil
}

func (s *ProjectServiceImpl) ListTransactions(ctx context.Context, tenant user.TenantContext, projectID string) ([]project.TransactionResponse, error) {
	if !tenant.Can(user.PermissionProjectView) {
		return nil, user.ErrPermissionDenied
	}

	transactions, err := s.ProjectTransactionRepository.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project transactions: %w", err)
	}

	responses := make([]project.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, project.ToTransactionResponse(t))
	}
	return responses, nil
}

func (s *ProjectServiceImpl) UpdateTransaction(ctx context.Context, tenant user.TenantContext, req project.UpdateTransactionRequest) error {
	if !tenant.Can(user.PermissionProjectManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.ProjectTransactionRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		kind := ledger.EventProjectExpense
		if current.Type == project.TransactionIncome {
			kind = ledger.EventProjectIncome
		}
		if err := s.ProjectTransactionRepository.UpdateAmount(txCtx, req.ID, req.Amount); err != nil {
			return fmt.Errorf("update project transaction: %w", err)
		}
		return s.applier.ApplyDiff(txCtx, kind, current.ProjectID, current.Amount, req.Amount)
	})
}

func (s *ProjectServiceImpl) DeleteTransaction(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionProjectManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.ProjectTransactionRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		kind := ledger.EventProjectExpense
		if current.Type == project.TransactionIncome {
			kind = ledger.EventProjectIncome
		}
		if err := s.ProjectTransactionRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.applier.Reverse(txCtx, ledger.Effect{Kind: kind, SinkID: current.ProjectID, Amount: current.Amount})
	})
}
