package member

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/ledger"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/member"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
	ledgersvc "github.com/tadbir-app/tadbir-backend-go/internal/service/ledger"
)

type MemberService interface {
	Create(ctx context.Context, tenant user.TenantContext, req member.CreateMemberRequest) (member.MemberResponse, error)
	List(ctx context.Context, tenant user.TenantContext) ([]member.MemberResponse, error)
	Delete(ctx context.Context, tenant user.TenantContext, id string) error

	CreateTransfer(ctx context.Context, tenant user.TenantContext, req member.CreateMemberTransferRequest) (member.MemberTransferResponse, error)
	ListTransfers(ctx context.Context, tenant user.TenantContext, memberID string) ([]member.MemberTransferResponse, error)
	DeleteTransfer(ctx context.Context, tenant user.TenantContext, id string) error
}

type MemberServiceImpl struct {
	db *database.DB
	member.MemberRepository
	member.MemberTransferRepository
	applier *ledgersvc.Applier
}

func NewMemberService(db *database.DB, members member.MemberRepository, transfers member.MemberTransferRepository, applier *ledgersvc.Applier) MemberService {
	return &MemberServiceImpl{
		db:                       db,
		MemberRepository:         members,
		MemberTransferRepository: transfers,
		applier:                  applier,
	}
}

func (s *MemberServiceImpl) Create(ctx context.Context, tenant user.TenantContext, req member.CreateMemberRequest) (member.MemberResponse, error) {
	if !tenant.Can(user.PermissionCompanyManage) {
		return member.MemberResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return member.MemberResponse{}, err
	}

	created, err := s.MemberRepository.Create(ctx, member.Member{
		Name:    req.Name,
		Balance: decimal.Zero,
	})
	if err != nil {
		return member.MemberResponse{}, fmt.Errorf("create member: %w", err)
	}
	return member.ToMemberResponse(created), nil
}

func (s *MemberServiceImpl) List(ctx context.Context, tenant user.TenantContext) ([]member.MemberResponse, error) {
	if !tenant.Can(user.PermissionCompanyView) {
		return nil, user.ErrPermissionDenied
	}

	members, err := s.MemberRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	responses := make([]member.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, member.ToMemberResponse(m))
	}
	return responses, nil
}

func (s *MemberServiceImpl) Delete(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionCompanyManage) {
		return user.ErrPermissionDenied
	}
	return s.MemberRepository.Delete(ctx, id)
}

// CreateTransfer pays money from the parent balance into a member balance.
func (s *MemberServiceImpl) CreateTransfer(ctx context.Context, tenant user.TenantContext, req member.CreateMemberTransferRequest) (member.MemberTransferResponse, error) {
	if !tenant.Can(user.PermissionCompanyManage) {
		return member.MemberTransferResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return member.MemberTransferResponse{}, err
	}

	var created member.MemberTransfer
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.MemberRepository.GetByID(txCtx, req.MemberID); err != nil {
			return err
		}

		var err error
		created, err = s.MemberTransferRepository.Create(txCtx, member.MemberTransfer{
			MemberID: req.MemberID,
			Amount:   req.Amount,
			Note:     req.Note,
			Date:     req.Date,
		})
		if err != nil {
			return fmt.Errorf("create member transfer: %w", err)
		}
		return s.applier.ApplyEffect(txCtx, ledger.Effect{
			Kind:   ledger.EventMemberTransfer,
			SinkID: req.MemberID,
			Amount: req.Amount,
		})
	})
	if err != nil {
		return member.MemberTransferResponse{}, err
	}
	return member.ToMemberTransferResponse(created), nil
}

func (s *MemberServiceImpl) ListTransfers(ctx context.Context, tenant user.TenantContext, memberID string) ([]member.MemberTransferResponse, error) {
	if !tenant.Can(user.PermissionCompanyView) {
		return nil, user.ErrPermissionDenied
	}

	transfers, err := s.MemberTransferRepository.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list member transfers: %w", err)
	}

	responses := make([]member.MemberTransferResponse, 0, len(transfers))
	for _, t := range transfers {
		responses = append(responses, member.ToMemberTransferResponse(t))
	}
	return responses, nil
}

func (s *MemberServiceImpl) DeleteTransfer(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionCompanyManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.MemberTransferRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.MemberTransferRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.applier.Reverse(txCtx, ledger.Effect{
			Kind:   ledger.EventMemberTransfer,
			SinkID: current.MemberID,
			Amount: current.Amount,
		})
	})
}
