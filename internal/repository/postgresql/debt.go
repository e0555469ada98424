package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/debt"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type debtRepositoryImpl struct {
	db *database.DB
}

func NewDebtRepository(db *database.DB) debt.DebtRepository {
	return &debtRepositoryImpl{db: db}
}

func (d *debtRepositoryImpl) Create(ctx context.Context, newDebt debt.ExternalDebt) (debt.ExternalDebt, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO external_debts (creditor, total_amount, paid_amount, note, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, creditor, total_amount, paid_amount, note, date, created_at, updated_at
	`

	var created debt.ExternalDebt
	err := q.QueryRow(ctx, query,
		newDebt.Creditor, newDebt.TotalAmount, newDebt.PaidAmount, newDebt.Note, newDebt.Date,
	).Scan(&created.ID, &created.Creditor, &created.TotalAmount, &created.PaidAmount,
		&created.Note, &created.Date, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return debt.ExternalDebt{}, err
	}
	return created, nil
}

func (d *debtRepositoryImpl) GetByID(ctx context.Context, id string) (debt.ExternalDebt, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, creditor, total_amount, paid_amount, note, date, created_at, updated_at
		FROM external_debts WHERE id = $1
	`

	var found debt.ExternalDebt
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Creditor, &found.TotalAmount, &found.PaidAmount,
			&found.Note, &found.Date, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return debt.ExternalDebt{}, debt.ErrDebtNotFound
		}
		return debt.ExternalDebt{}, err
	}
	return found, nil
}

func (d *debtRepositoryImpl) List(ctx context.Context) ([]debt.ExternalDebt, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, creditor, total_amount, paid_amount, note, date, created_at, updated_at
		FROM external_debts ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []debt.ExternalDebt
	for rows.Next() {
		var de debt.ExternalDebt
		if err := rows.Scan(&de.ID, &de.Creditor, &de.TotalAmount, &de.PaidAmount,
			&de.Note, &de.Date, &de.CreatedAt, &de.UpdatedAt); err != nil {
			return nil, err
		}
		debts = append(debts, de)
	}
	return debts, rows.Err()
}

func (d *debtRepositoryImpl) AdjustPaid(ctx context.Context, id string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `
		UPDATE external_debts SET paid_amount = paid_amount + $1, updated_at = NOW() WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return debt.ErrDebtNotFound
	}
	return nil
}

func (d *debtRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `DELETE FROM external_debts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return debt.ErrDebtNotFound
	}
	return nil
}

type debtPaymentRepositoryImpl struct {
	db *database.DB
}

func NewDebtPaymentRepository(db *database.DB) debt.DebtPaymentRepository {
	return &debtPaymentRepositoryImpl{db: db}
}

func (d *debtPaymentRepositoryImpl) Create(ctx context.Context, newPayment debt.DebtPayment) (debt.DebtPayment, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO debt_payments (debt_id, amount, note, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, debt_id, amount, note, date, created_at
	`

	var created debt.DebtPayment
	err := q.QueryRow(ctx, query, newPayment.DebtID, newPayment.Amount, newPayment.Note, newPayment.Date).
		Scan(&created.ID, &created.DebtID, &created.Amount, &created.Note, &created.Date, &created.CreatedAt)
	if err != nil {
		return debt.DebtPayment{}, err
	}
	return created, nil
}

func (d *debtPaymentRepositoryImpl) GetByID(ctx context.Context, id string) (debt.DebtPayment, error) {
	q := GetQuerier(ctx, d.db)

	query := `SELECT id, debt_id, amount, note, date, created_at FROM debt_payments WHERE id = $1`

	var found debt.DebtPayment
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.DebtID, &found.Amount, &found.Note, &found.Date, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return debt.DebtPayment{}, debt.ErrPaymentNotFound
		}
		return debt.DebtPayment{}, err
	}
	return found, nil
}

func (d *debtPaymentRepositoryImpl) ListByDebt(ctx context.Context, debtID string) ([]debt.DebtPayment, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, debt_id, amount, note, date, created_at
		FROM debt_payments WHERE debt_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, debtID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []debt.DebtPayment
	for rows.Next() {
		var pay debt.DebtPayment
		if err := rows.Scan(&pay.ID, &pay.DebtID, &pay.Amount, &pay.Note, &pay.Date, &pay.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, pay)
	}
	return payments, rows.Err()
}

func (d *debtPaymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `DELETE FROM debt_payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return debt.ErrPaymentNotFound
	}
	return nil
}

func (d *debtPaymentRepositoryImpl) DeleteByDebt(ctx context.Context, debtID string) error {
	q := GetQuerier(ctx, d.db)

	_, err := q.Exec(ctx, `DELETE FROM debt_payments WHERE debt_id = $1`, debtID)
	return err
}
