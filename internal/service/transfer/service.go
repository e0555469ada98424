package transfer

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/company"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/transfer"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
)

type TransferService interface {
	Create(ctx context.Context, tenant user.TenantContext, req transfer.CreateTransferRequest) (transfer.TransferResponse, error)
	GetByID(ctx context.Context, tenant user.TenantContext, id string) (transfer.TransferResponse, error)
	List(ctx context.Context, tenant user.TenantContext, filter transfer.ListFilter) ([]transfer.TransferResponse, error)
	Approve(ctx context.Context, tenant user.TenantContext, id string) error
	Reject(ctx context.Context, tenant user.TenantContext, id string) error
	Delete(ctx context.Context, tenant user.TenantContext, id string) error
}

type TransferServiceImpl struct {
	db *database.DB
	transfer.TransferRepository
	company.CompanyRepository
}

func NewTransferService(db *database.DB, transfers transfer.TransferRepository, companies company.CompanyRepository) TransferService {
	return &TransferServiceImpl{
		db:                 db,
		TransferRepository: transfers,
		CompanyRepository:  companies,
	}
}

func (s *TransferServiceImpl) Create(ctx context.Context, tenant user.TenantContext, req transfer.CreateTransferRequest) (transfer.TransferResponse, error) {
	if !tenant.Can(user.PermissionTransferManage) {
		return transfer.TransferResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return transfer.TransferResponse{}, err
	}
	if req.FromCompanyID == req.ToCompanyID {
		return transfer.TransferResponse{}, transfer.ErrSameCompany
	}
	// Child-company users may only originate transfers from their own company.
	if !tenant.IsParent && tenant.CompanyID != req.FromCompanyID {
		return transfer.TransferResponse{}, user.ErrPermissionDenied
	}

	for _, id := range []string{req.FromCompanyID, req.ToCompanyID} {
		if _, err := s.CompanyRepository.GetByID(ctx, id); err != nil {
			return transfer.TransferResponse{}, err
		}
	}

	created, err := s.TransferRepository.Create(ctx, transfer.Transfer{
		FromCompanyID: req.FromCompanyID,
		ToCompanyID:   req.ToCompanyID,
		Amount:        req.Amount,
		Status:        transfer.StatusPending,
		Note:          req.Note,
		Date:          req.Date,
	})
	if err != nil {
		return transfer.TransferResponse{}, fmt.Errorf("create transfer: %w", err)
	}
	return transfer.ToResponse(created), nil
}

func (s *TransferServiceImpl) GetByID(ctx context.Context, tenant user.TenantContext, id string) (transfer.TransferResponse, error) {
	if !tenant.Can(user.PermissionTransferView) {
		return transfer.TransferResponse{}, user.ErrPermissionDenied
	}

	found, err := s.TransferRepository.GetByID(ctx, id)
	if err != nil {
		return transfer.TransferResponse{}, err
	}
	if !tenant.IsParent && tenant.CompanyID != found.FromCompanyID && tenant.CompanyID != found.ToCompanyID {
		return transfer.TransferResponse{}, user.ErrPermissionDenied
	}
	return transfer.ToResponse(found), nil
}

func (s *TransferServiceImpl) List(ctx context.Context, tenant user.TenantContext, filter transfer.ListFilter) ([]transfer.TransferResponse, error) {
	if !tenant.Can(user.PermissionTransferView) {
		return nil, user.ErrPermissionDenied
	}
	if !tenant.IsParent {
		companyID := tenant.CompanyID
		filter.CompanyID = &companyID
	}

	transfers, err := s.TransferRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	responses := make([]transfer.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		responses = append(responses, transfer.ToResponse(t))
	}
	return responses, nil
}

// Approve applies the transfer's balance effects exactly once: sender balance
// and debt-to-parent both drop by the amount, receiver balance and
// debt-to-parent both rise, and the row moves to its terminal status. All
// three writes share one transaction.
func (s *TransferServiceImpl) Approve(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionTransferApprove) {
		return user.ErrPermissionDenied
	}
	if !tenant.IsParent {
		return user.ErrParentCompanyRequired
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		found, err := s.TransferRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if found.Status != transfer.StatusPending {
			return transfer.ErrTransferNotPending
		}

		if err := s.CompanyRepository.AdjustBalanceAndDebt(txCtx, found.FromCompanyID, found.Amount.Neg(), found.Amount.Neg()); err != nil {
			return fmt.Errorf("debit sender: %w", err)
		}
		if err := s.CompanyRepository.AdjustBalanceAndDebt(txCtx, found.ToCompanyID, found.Amount, found.Amount); err != nil {
			return fmt.Errorf("credit receiver: %w", err)
		}
		return s.TransferRepository.UpdateStatus(txCtx, id, transfer.StatusApproved)
	})
}

func (s *TransferServiceImpl) Reject(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionTransferApprove) {
		return user.ErrPermissionDenied
	}
	if !tenant.IsParent {
		return user.ErrParentCompanyRequired
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		found, err := s.TransferRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if found.Status != transfer.StatusPending {
			return transfer.ErrTransferNotPending
		}
		return s.TransferRepository.UpdateStatus(txCtx, id, transfer.StatusRejected)
	})
}

// Delete removes a pending transfer. Processed transfers stay on record:
// approved ones already moved money, rejected ones document the decision.
func (s *TransferServiceImpl) Delete(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionTransferManage) {
		return user.ErrPermissionDenied
	}

	found, err := s.TransferRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if found.Status != transfer.StatusPending {
		return transfer.ErrApprovedNotDeletable
	}
	if !tenant.IsParent && tenant.CompanyID != found.FromCompanyID {
		return user.ErrPermissionDenied
	}
	return s.TransferRepository.Delete(ctx, id)
}
