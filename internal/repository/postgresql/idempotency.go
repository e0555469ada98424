package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/idempotency"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type idempotencyRepositoryImpl struct {
	db *database.DB
}

func NewIdempotencyRepository(db *database.DB) idempotency.Repository {
	return &idempotencyRepositoryImpl{db: db}
}

func (r *idempotencyRepositoryImpl) Register(ctx context.Context, companyID, key string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO idempotency_keys (company_id, key) VALUES ($1, $2)
	`, companyID, key)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation means the key was already registered.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return idempotency.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *idempotencyRepositoryImpl) Release(ctx context.Context, companyID, key string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		DELETE FROM idempotency_keys WHERE company_id = $1 AND key = $2
	`, companyID, key)
	return err
}
