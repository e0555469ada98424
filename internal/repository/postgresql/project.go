package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/project"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func (p *projectRepositoryImpl) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO projects (name, balance, note)
		VALUES ($1, $2, $3)
		RETURNING id, name, balance, note, created_at, updated_at
	`

	var created project.Project
	err := q.QueryRow(ctx, query, newProject.Name, newProject.Balance, newProject.Note).
		Scan(&created.ID, &created.Name, &created.Balance, &created.Note,
			&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return project.Project{}, err
	}
	return created, nil
}

func (p *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT id, name, balance, note, created_at, updated_at FROM projects WHERE id = $1`

	var found project.Project
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Balance, &found.Note, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return found, nil
}

func (p *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.Query(ctx, `SELECT id, name, balance, note, created_at, updated_at FROM projects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var pr project.Project
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Balance, &pr.Note, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, pr)
	}
	return projects, rows.Err()
}

func (p *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (p *projectRepositoryImpl) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `
		UPDATE projects SET balance = balance + $1, updated_at = NOW() WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

type projectTransactionRepositoryImpl struct {
	db *database.DB
}

func NewProjectTransactionRepository(db *database.DB) project.ProjectTransactionRepository {
	return &projectTransactionRepositoryImpl{db: db}
}

func (p *projectTransactionRepositoryImpl) Create(ctx context.Context, newTx project.ProjectTransaction) (project.ProjectTransaction, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO project_transactions (project_id, type, title, amount, note, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, project_id, type, title, amount, note, date, created_at, updated_at
	`

	var created project.ProjectTransaction
	err := q.QueryRow(ctx, query,
		newTx.ProjectID, newTx.Type, newTx.Title, newTx.Amount, newTx.Note, newTx.Date,
	).Scan(&created.ID, &created.ProjectID, &created.Type, &created.Title, &created.Amount,
		&created.Note, &created.Date, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return project.ProjectTransaction{}, err
	}
	return created, nil
}

func (p *projectTransactionRepositoryImpl) GetByID(ctx context.Context, id string) (project.ProjectTransaction, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, project_id, type, title, amount, note, date, created_at, updated_at
		FROM project_transactions WHERE id = $1
	`

	var found project.ProjectTransaction
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.ProjectID, &found.Type, &found.Title, &found.Amount,
			&found.Note, &found.Date, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ProjectTransaction{}, project.ErrTransactionNotFound
		}
		return project.ProjectTransaction{}, err
	}
	return found, nil
}

func (p *projectTransactionRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]project.ProjectTransaction, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, project_id, type, title, amount, note, date, created_at, updated_at
		FROM project_transactions WHERE project_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []project.ProjectTransaction
	for rows.Next() {
		var tx project.ProjectTransaction
		if err := rows.Scan(&tx.ID, &tx.ProjectID, &tx.Type, &tx.Title, &tx.Amount,
			&tx.Note, &tx.Date, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func (p *projectTransactionRepositoryImpl) UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `
		UPDATE project_transactions SET amount = $1, updated_at = NOW() WHERE id = $2
	`, amount, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrTransactionNotFound
	}
	return nil
}

func (p *projectTransactionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM project_transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrTransactionNotFound
	}
	return nil
}

func (p *projectTransactionRepositoryImpl) DeleteByProject(ctx context.Context, projectID string) error {
	q := GetQuerier(ctx, p.db)

	_, err := q.Exec(ctx, `DELETE FROM project_transactions WHERE project_id = $1`, projectID)
	return err
}
