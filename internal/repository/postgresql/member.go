package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/member"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type memberRepositoryImpl struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepositoryImpl{db: db}
}

func (m *memberRepositoryImpl) Create(ctx context.Context, newMember member.Member) (member.Member, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO members (name, balance)
		VALUES ($1, $2)
		RETURNING id, name, balance, created_at, updated_at
	`

	var created member.Member
	err := q.QueryRow(ctx, query, newMember.Name, newMember.Balance).
		Scan(&created.ID, &created.Name, &created.Balance, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return member.Member{}, err
	}
	return created, nil
}

func (m *memberRepositoryImpl) GetByID(ctx context.Context, id string) (member.Member, error) {
	q := GetQuerier(ctx, m.db)

	query := `SELECT id, name, balance, created_at, updated_at FROM members WHERE id = $1`

	var found member.Member
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Balance, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrMemberNotFound
		}
		return member.Member{}, err
	}
	return found, nil
}

func (m *memberRepositoryImpl) List(ctx context.Context) ([]member.Member, error) {
	q := GetQuerier(ctx, m.db)

	rows, err := q.Query(ctx, `SELECT id, name, balance, created_at, updated_at FROM members ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []member.Member
	for rows.Next() {
		var mem member.Member
		if err := rows.Scan(&mem.ID, &mem.Name, &mem.Balance, &mem.CreatedAt, &mem.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, mem)
	}
	return members, rows.Err()
}

func (m *memberRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, m.db)

	tag, err := q.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

func (m *memberRepositoryImpl) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, m.db)

	tag, err := q.Exec(ctx, `
		UPDATE members SET balance = balance + $1, updated_at = NOW() WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

type memberTransferRepositoryImpl struct {
	db *database.DB
}

func NewMemberTransferRepository(db *database.DB) member.MemberTransferRepository {
	return &memberTransferRepositoryImpl{db: db}
}

func (m *memberTransferRepositoryImpl) Create(ctx context.Context, newTransfer member.MemberTransfer) (member.MemberTransfer, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO member_transfers (member_id, amount, note, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, member_id, amount, note, date, created_at
	`

	var created member.MemberTransfer
	err := q.QueryRow(ctx, query, newTransfer.MemberID, newTransfer.Amount, newTransfer.Note, newTransfer.Date).
		Scan(&created.ID, &created.MemberID, &created.Amount, &created.Note, &created.Date, &created.CreatedAt)
	if err != nil {
		return member.MemberTransfer{}, err
	}
	return created, nil
}

func (m *memberTransferRepositoryImpl) GetByID(ctx context.Context, id string) (member.MemberTransfer, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT t.id, t.member_id, t.amount, t.note, t.date, t.created_at, mem.name
		FROM member_transfers t
		JOIN members mem ON mem.id = t.member_id
		WHERE t.id = $1
	`

	var found member.MemberTransfer
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.MemberID, &found.Amount, &found.Note, &found.Date,
			&found.CreatedAt, &found.MemberName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.MemberTransfer{}, member.ErrMemberTransferNotFound
		}
		return member.MemberTransfer{}, err
	}
	return found, nil
}

func (m *memberTransferRepositoryImpl) ListByMember(ctx context.Context, memberID string) ([]member.MemberTransfer, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT t.id, t.member_id, t.amount, t.note, t.date, t.created_at, mem.name
		FROM member_transfers t
		JOIN members mem ON mem.id = t.member_id
		WHERE t.member_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []member.MemberTransfer
	for rows.Next() {
		var tr member.MemberTransfer
		if err := rows.Scan(&tr.ID, &tr.MemberID, &tr.Amount, &tr.Note, &tr.Date,
			&tr.CreatedAt, &tr.MemberName); err != nil {
			return nil, err
		}
		transfers = append(transfers, tr)
	}
	return transfers, rows.Err()
}

func (m *memberTransferRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, m.db)

	tag, err := q.Exec(ctx, `DELETE FROM member_transfers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberTransferNotFound
	}
	return nil
}
