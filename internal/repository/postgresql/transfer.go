package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/transfer"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type transferRepositoryImpl struct {
	db *database.DB
}

func NewTransferRepository(db *database.DB) transfer.TransferRepository {
	return &transferRepositoryImpl{db: db}
}

func (t *transferRepositoryImpl) Create(ctx context.Context, newTransfer transfer.Transfer) (transfer.Transfer, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO transfers (from_company_id, to_company_id, amount, status, note, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, from_company_id, to_company_id, amount, status, note, date, created_at, updated_at
	`

	var created transfer.Transfer
	err := q.QueryRow(ctx, query,
		newTransfer.FromCompanyID, newTransfer.ToCompanyID, newTransfer.Amount,
		newTransfer.Status, newTransfer.Note, newTransfer.Date,
	).Scan(&created.ID, &created.FromCompanyID, &created.ToCompanyID, &created.Amount,
		&created.Status, &created.Note, &created.Date, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return transfer.Transfer{}, err
	}
	return created, nil
}

func (t *transferRepositoryImpl) GetByID(ctx context.Context, id string) (transfer.Transfer, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT t.id, t.from_company_id, t.to_company_id, t.amount, t.status, t.note, t.date,
		       t.created_at, t.updated_at, cf.name, ct.name
		FROM transfers t
		JOIN companies cf ON cf.id = t.from_company_id
		JOIN companies ct ON ct.id = t.to_company_id
		WHERE t.id = $1
	`

	var found transfer.Transfer
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.FromCompanyID, &found.ToCompanyID, &found.Amount, &found.Status,
			&found.Note, &found.Date, &found.CreatedAt, &found.UpdatedAt,
			&found.FromCompanyName, &found.ToCompanyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return transfer.Transfer{}, transfer.ErrTransferNotFound
		}
		return transfer.Transfer{}, err
	}
	return found, nil
}

func (t *transferRepositoryImpl) List(ctx context.Context, filter transfer.ListFilter) ([]transfer.Transfer, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT t.id, t.from_company_id, t.to_company_id, t.amount, t.status, t.note, t.date,
		       t.created_at, t.updated_at, cf.name, ct.name
		FROM transfers t
		JOIN companies cf ON cf.id = t.from_company_id
		JOIN companies ct ON ct.id = t.to_company_id
		WHERE 1=1
	`
	args := []interface{}{}
	i := 1

	if filter.CompanyID != nil {
		query += fmt.Sprintf(" AND (t.from_company_id = $%d OR t.to_company_id = $%d)", i, i)
		args = append(args, *filter.CompanyID)
		i++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND t.status = $%d", i)
		args = append(args, *filter.Status)
		i++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND COALESCE(t.date, to_char(t.created_at, 'YYYY-MM-DD')) >= $%d", i)
		args = append(args, *filter.StartDate)
		i++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND COALESCE(t.date, to_char(t.created_at, 'YYYY-MM-DD')) <= $%d", i)
		args = append(args, *filter.EndDate)
		i++
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []transfer.Transfer
	for rows.Next() {
		var tr transfer.Transfer
		if err := rows.Scan(&tr.ID, &tr.FromCompanyID, &tr.ToCompanyID, &tr.Amount, &tr.Status,
			&tr.Note, &tr.Date, &tr.CreatedAt, &tr.UpdatedAt,
			&tr.FromCompanyName, &tr.ToCompanyName); err != nil {
			return nil, err
		}
		transfers = append(transfers, tr)
	}
	return transfers, rows.Err()
}

func (t *transferRepositoryImpl) UpdateStatus(ctx context.Context, id string, status transfer.Status) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `
		UPDATE transfers SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return transfer.ErrTransferNotFound
	}
	return nil
}

func (t *transferRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return transfer.ErrTransferNotFound
	}
	return nil
}
