package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/auth"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/company"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/jwt"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Register bootstraps the parent company with its owner account. It only
	// succeeds while no parent company exists yet.
	Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, string, int64, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, int64, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error)
	Logout(refreshToken string)
}

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	company.CompanyRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, users user.UserRepository, companies company.CompanyRepository, jwtService jwt.Service) AuthService {
	return &AuthServiceImpl{
		db:                db,
		UserRepository:    users,
		CompanyRepository: companies,
		jwtService:        jwtService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, "", 0, err
	}

	exists, err := s.UserRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, "", 0, user.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("hash password: %w", err)
	}

	var createdUser user.User
	var createdCompany company.Company
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdCompany, err = s.CompanyRepository.Create(txCtx, company.Company{
			Name:     req.CompanyName,
			Balance:  decimal.Zero,
			IsParent: true,
		})
		if err != nil {
			return fmt.Errorf("create parent company: %w", err)
		}

		createdUser, err = s.UserRepository.Create(txCtx, user.User{
			CompanyID:    createdCompany.ID,
			Username:     req.Username,
			Name:         req.Name,
			PasswordHash: string(hash),
			Role:         user.RoleOwner,
		})
		if err != nil {
			return fmt.Errorf("create owner user: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, "", 0, err
	}

	return s.issueTokens(createdUser, createdCompany)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, "", 0, err
	}

	found, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, "", 0, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	comp, err := s.CompanyRepository.GetByID(ctx, found.CompanyID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("get user company: %w", err)
	}

	return s.issueTokens(found, comp)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	found, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("get user: %w", err)
	}

	comp, err := s.CompanyRepository.GetByID(ctx, found.CompanyID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("get user company: %w", err)
	}

	access, expiresAt, err := s.jwtService.GenerateAccessToken(found.ID, found.Username, comp.ID, comp.IsParent, found.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: access,
		ExpiresAt:   expiresAt,
		UserID:      found.ID,
		CompanyID:   comp.ID,
		IsParent:    comp.IsParent,
		Role:        string(found.Role),
	}, nil
}

func (s *AuthServiceImpl) Logout(refreshToken string) {
	s.jwtService.RevokeToken(refreshToken)
}

func (s *AuthServiceImpl) issueTokens(u user.User, c company.Company) (auth.TokenResponse, string, int64, error) {
	access, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, c.ID, c.IsParent, u.Role)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("generate access token: %w", err)
	}
	refresh, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: access,
		ExpiresAt:   expiresAt,
		UserID:      u.ID,
		CompanyID:   c.ID,
		IsParent:    c.IsParent,
		Role:        string(u.Role),
	}, refresh, refreshExpiresAt, nil
}
