package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/expense"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

func (e *expenseRepositoryImpl) Create(ctx context.Context, newExpense expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO expenses (title, amount, note, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, amount, note, date, created_at, updated_at
	`

	var created expense.Expense
	err := q.QueryRow(ctx, query, newExpense.Title, newExpense.Amount, newExpense.Note, newExpense.Date).
		Scan(&created.ID, &created.Title, &created.Amount, &created.Note, &created.Date,
			&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return expense.Expense{}, err
	}
	return created, nil
}

func (e *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, title, amount, note, date, created_at, updated_at
		FROM expenses WHERE id = $1
	`

	var found expense.Expense
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Title, &found.Amount, &found.Note, &found.Date,
			&found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, err
	}
	return found, nil
}

func (e *expenseRepositoryImpl) List(ctx context.Context, startDate, endDate *string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, title, amount, note, date, created_at, updated_at
		FROM expenses WHERE 1=1
	`
	args := []interface{}{}
	i := 1

	if startDate != nil {
		query += fmt.Sprintf(" AND COALESCE(date, to_char(created_at, 'YYYY-MM-DD')) >= $%d", i)
		args = append(args, *startDate)
		i++
	}
	if endDate != nil {
		query += fmt.Sprintf(" AND COALESCE(date, to_char(created_at, 'YYYY-MM-DD')) <= $%d", i)
		args = append(args, *endDate)
		i++
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var ex expense.Expense
		if err := rows.Scan(&ex.ID, &ex.Title, &ex.Amount, &ex.Note, &ex.Date,
			&ex.CreatedAt, &ex.UpdatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, ex)
	}
	return expenses, rows.Err()
}

func (e *expenseRepositoryImpl) UpdateAmount(ctx context.Context, id string, req expense.UpdateExpenseRequest) error {
	q := GetQuerier(ctx, e.db)

	setClauses := map[string]interface{}{}
	if req.Title != nil {
		setClauses["title"] = *req.Title
	}
	if req.Amount != nil {
		setClauses["amount"] = *req.Amount
	}
	if req.Note != nil {
		setClauses["note"] = *req.Note
	}
	if len(setClauses) == 0 {
		return nil
	}

	query := "UPDATE expenses SET updated_at = NOW()"
	args := []interface{}{}
	i := 1
	for col, val := range setClauses {
		query += fmt.Sprintf(", %s = $%d", col, i)
		args = append(args, val)
		i++
	}
	query += fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}
	return nil
}

func (e *expenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}
	return nil
}

type externalFundRepositoryImpl struct {
	db *database.DB
}

func NewExternalFundRepository(db *database.DB) expense.ExternalFundRepository {
	return &externalFundRepositoryImpl{db: db}
}

func (f *externalFundRepositoryImpl) Create(ctx context.Context, fund expense.ExternalFund) (expense.ExternalFund, error) {
	q := GetQuerier(ctx, f.db)

	query := `
		INSERT INTO external_funds (party, direction, amount, note, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, party, direction, amount, note, date, created_at, updated_at
	`

	var created expense.ExternalFund
	err := q.QueryRow(ctx, query, fund.Party, fund.Direction, fund.Amount, fund.Note, fund.Date).
		Scan(&created.ID, &created.Party, &created.Direction, &created.Amount, &created.Note,
			&created.Date, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return expense.ExternalFund{}, err
	}
	return created, nil
}

func (f *externalFundRepositoryImpl) GetByID(ctx context.Context, id string) (expense.ExternalFund, error) {
	q := GetQuerier(ctx, f.db)

	query := `
		SELECT id, party, direction, amount, note, date, created_at, updated_at
		FROM external_funds WHERE id = $1
	`

	var found expense.ExternalFund
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Party, &found.Direction, &found.Amount, &found.Note,
			&found.Date, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.ExternalFund{}, expense.ErrExternalFundNotFound
		}
		return expense.ExternalFund{}, err
	}
	return found, nil
}

func (f *externalFundRepositoryImpl) List(ctx context.Context, startDate, endDate *string) ([]expense.ExternalFund, error) {
	q := GetQuerier(ctx, f.db)

	query := `
		SELECT id, party, direction, amount, note, date, created_at, updated_at
		FROM external_funds WHERE 1=1
	`
	args := []interface{}{}
	i := 1

	if startDate != nil {
		query += fmt.Sprintf(" AND COALESCE(date, to_char(created_at, 'YYYY-MM-DD')) >= $%d", i)
		args = append(args, *startDate)
		i++
	}
	if endDate != nil {
		query += fmt.Sprintf(" AND COALESCE(date, to_char(created_at, 'YYYY-MM-DD')) <= $%d", i)
		args = append(args, *endDate)
		i++
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var funds []expense.ExternalFund
	for rows.Next() {
		var fund expense.ExternalFund
		if err := rows.Scan(&fund.ID, &fund.Party, &fund.Direction, &fund.Amount, &fund.Note,
			&fund.Date, &fund.CreatedAt, &fund.UpdatedAt); err != nil {
			return nil, err
		}
		funds = append(funds, fund)
	}
	return funds, rows.Err()
}

func (f *externalFundRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, f.db)

	tag, err := q.Exec(ctx, `DELETE FROM external_funds WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExternalFundNotFound
	}
	return nil
}
