package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (company_id, username, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company_id, username, name, password_hash, role, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query, newUser.CompanyID, newUser.Username, newUser.Name, newUser.PasswordHash, newUser.Role).
		Scan(&created.ID, &created.CompanyID, &created.Username, &created.Name, &created.PasswordHash, &created.Role, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	return created, nil
}

func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, company_id, username, name, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.CompanyID, &found.Username, &found.Name, &found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}

func (u *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, company_id, username, name, password_hash, role, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, username).
		Scan(&found.ID, &found.CompanyID, &found.Username, &found.Name, &found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}

func (u *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, u.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
