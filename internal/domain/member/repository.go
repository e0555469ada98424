package member

import (
	"context"

	"github.com/shopspring/decimal"
)

type MemberRepository interface {
	Create(ctx context.Context, m Member) (Member, error)
	GetByID(ctx context.Context, id string) (Member, error)
	List(ctx context.Context) ([]Member, error)
	Delete(ctx context.Context, id string) error
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error
}

type MemberTransferRepository interface {
	Create(ctx context.Context, t MemberTransfer) (MemberTransfer, error)
	GetByID(ctx context.Context, id string) (MemberTransfer, error)
	ListByMember(ctx context.Context, memberID string) ([]MemberTransfer, error)
	Delete(ctx context.Context, id string) error
}
