package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/worker"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `id, name, number, balance, wage, overtime_rate, base_bonus, shift_id,
	created_at, updated_at`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(&w.ID, &w.Name, &w.Number, &w.Balance, &w.Wage, &w.OvertimeRate,
		&w.BaseBonus, &w.ShiftID, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

func (r *workerRepositoryImpl) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (name, number, balance, wage, overtime_rate, base_bonus, shift_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + workerColumns

	created, err := scanWorker(q.QueryRow(ctx, query,
		newWorker.Name, newWorker.Number, newWorker.Balance, newWorker.Wage,
		newWorker.OvertimeRate, newWorker.BaseBonus, newWorker.ShiftID))
	if err != nil {
		return worker.Worker{}, err
	}
	return created, nil
}

func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanWorker(q.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}
	return found, nil
}

func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+workerColumns+` FROM workers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

func (r *workerRepositoryImpl) Update(ctx context.Context, id string, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := map[string]interface{}{}
	if req.Name != nil {
		setClauses["name"] = *req.Name
	}
	if req.Number != nil {
		setClauses["number"] = *req.Number
	}
	if req.Wage != nil {
		setClauses["wage"] = *req.Wage
	}
	if req.OvertimeRate != nil {
		setClauses["overtime_rate"] = *req.OvertimeRate
	}
	if req.BaseBonus != nil {
		setClauses["base_bonus"] = *req.BaseBonus
	}
	if req.ShiftID != nil {
		setClauses["shift_id"] = *req.ShiftID
	}
	if len(setClauses) == 0 {
		return nil
	}

	query := "UPDATE workers SET updated_at = NOW()"
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
		return worker.ErrWorkerNotFound
	}
	return nil
}

func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

func (r *workerRepositoryImpl) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE workers SET balance = balance + $1, updated_at = NOW() WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

type workerTransactionRepositoryImpl struct {
	db *database.DB
}

func NewWorkerTransactionRepository(db *database.DB) worker.WorkerTransactionRepository {
	return &workerTransactionRepositoryImpl{db: db}
}

func (r *workerTransactionRepositoryImpl) Create(ctx context.Context, newTx worker.WorkerTransaction) (worker.WorkerTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_transactions (worker_id, type, amount, note, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, worker_id, type, amount, note, date, created_at
	`

	var created worker.WorkerTransaction
	err := q.QueryRow(ctx, query,
		newTx.WorkerID, newTx.Type, newTx.Amount, newTx.Note, newTx.Date,
	).Scan(&created.ID, &created.WorkerID, &created.Type, &created.Amount,
		&created.Note, &created.Date, &created.CreatedAt)
	if err != nil {
		return worker.WorkerTransaction{}, err
	}
	return created, nil
}

func (r *workerTransactionRepositoryImpl) GetByID(ctx context.Context, id string) (worker.WorkerTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.worker_id, t.type, t.amount, t.note, t.date, t.created_at, w.name
		FROM worker_transactions t
		JOIN workers w ON w.id = t.worker_id
		WHERE t.id = $1
	`

	var found worker.WorkerTransaction
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.WorkerID, &found.Type, &found.Amount, &found.Note,
			&found.Date, &found.CreatedAt, &found.WorkerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.WorkerTransaction{}, worker.ErrTransactionNotFound
		}
		return worker.WorkerTransaction{}, err
	}
	return found, nil
}

func (r *workerTransactionRepositoryImpl) ListByWorker(ctx context.Context, workerID string, startDate, endDate *string) ([]worker.WorkerTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.worker_id, t.type, t.amount, t.note, t.date, t.created_at, w.name
		FROM worker_transactions t
		JOIN workers w ON w.id = t.worker_id
		WHERE t.worker_id = $1
	`
	args := []interface{}{workerID}
	i := 2

	if startDate != nil {
		query += fmt.Sprintf(" AND COALESCE(t.date, to_char(t.created_at, 'YYYY-MM-DD')) >= $%d", i)
		args = append(args, *startDate)
		i++
	}
	if endDate != nil {
		query += fmt.Sprintf(" AND COALESCE(t.date, to_char(t.created_at, 'YYYY-MM-DD')) <= $%d", i)
		args = append(args, *endDate)
		i++
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkerTransactions(rows)
}

func (r *workerTransactionRepositoryImpl) ListByTypeInRange(ctx context.Context, txType worker.TransactionType, startDate, endDate string) ([]worker.WorkerTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.worker_id, t.type, t.amount, t.note, t.date, t.created_at, w.name
		FROM worker_transactions t
		JOIN workers w ON w.id = t.worker_id
		WHERE t.type = $1
		  AND COALESCE(t.date, to_char(t.created_at, 'YYYY-MM-DD')) >= $2
		  AND COALESCE(t.date, to_char(t.created_at, 'YYYY-MM-DD')) <= $3
		ORDER BY t.created_at
	`

	rows, err := q.Query(ctx, query, txType, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkerTransactions(rows)
}

func collectWorkerTransactions(rows pgx.Rows) ([]worker.WorkerTransaction, error) {
	var transactions []worker.WorkerTransaction
	for rows.Next() {
		var tx worker.WorkerTransaction
		if err := rows.Scan(&tx.ID, &tx.WorkerID, &tx.Type, &tx.Amount, &tx.Note,
			&tx.Date, &tx.CreatedAt, &tx.WorkerName); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func (r *workerTransactionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM worker_transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrTransactionNotFound
	}
	return nil
}
