package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/company"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name, balance, debt_to_parent, is_parent)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, balance, debt_to_parent, is_parent, created_at, updated_at
	`

	var created company.Company
	err := q.QueryRow(ctx, query, newCompany.Name, newCompany.Balance, newCompany.DebtToParent, newCompany.IsParent).
		Scan(&created.ID, &created.Name, &created.Balance, &created.DebtToParent, &created.IsParent, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return company.Company{}, err
	}
	return created, nil
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, balance, debt_to_parent, is_parent, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Balance, &found.DebtToParent, &found.IsParent, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return found, nil
}

// GetParent returns the single parent company of the group.
func (c *companyRepositoryImpl) GetParent(ctx context.Context) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, balance, debt_to_parent, is_parent, created_at, updated_at
		FROM companies
		WHERE is_parent = true
	`

	var found company.Company
	err := q.QueryRow(ctx, query).
		Scan(&found.ID, &found.Name, &found.Balance, &found.DebtToParent, &found.IsParent, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrParentNotFound
		}
		return company.Company{}, err
	}
	return found, nil
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, balance, debt_to_parent, is_parent, created_at, updated_at
		FROM companies
		ORDER BY is_parent DESC, name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var co company.Company
		if err := rows.Scan(&co.ID, &co.Name, &co.Balance, &co.DebtToParent, &co.IsParent, &co.CreatedAt, &co.UpdatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, co)
	}
	return companies, rows.Err()
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	q := GetQuerier(ctx, c.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for company update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to update company with id %s: %w", id, err)
	}
	return nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1 AND is_parent = false`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// AdjustBalance applies a relative balance update so that concurrent
// adjustments compose instead of overwriting each other.
func (c *companyRepositoryImpl) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `
		UPDATE companies
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// AdjustBalanceAndDebt implements company.CompanyRepository.
func (c *companyRepositoryImpl) AdjustBalanceAndDebt(ctx context.Context, id string, balanceDelta, debtDelta decimal.Decimal) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `
		UPDATE companies
		SET balance = balance + $1, debt_to_parent = debt_to_parent + $2, updated_at = NOW()
		WHERE id = $3
	`, balanceDelta, debtDelta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
