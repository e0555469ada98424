package company

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/company"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
)

type CompanyService interface {
	Create(ctx context.Context, tenant user.TenantContext, req company.CreateCompanyRequest) (company.CompanyResponse, error)
	GetByID(ctx context.Context, tenant user.TenantContext, id string) (company.CompanyResponse, error)
	List(ctx context.Context, tenant user.TenantContext) ([]company.CompanyResponse, error)
	Update(ctx context.Context, tenant user.TenantContext, id string, req company.UpdateCompanyRequest) error
	Delete(ctx context.Context, tenant user.TenantContext, id string) error
}

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companies company.CompanyRepository) CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companies}
}

// Create registers a child company under the parent. Only parent-company
// users may manage the company roster.
func (s *CompanyServiceImpl) Create(ctx context.Context, tenant user.TenantContext, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if !tenant.IsParent {
		return company.CompanyResponse{}, user.ErrParentCompanyRequired
	}
	if !tenant.Can(user.PermissionCompanyManage) {
		return company.CompanyResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.CompanyRepository.Create(ctx, company.Company{
		Name:         req.Name,
		Balance:      decimal.Zero,
		DebtToParent: decimal.Zero,
		IsParent:     false,
	})
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("create company: %w", err)
	}
	return company.ToResponse(created), nil
}

func (s *CompanyServiceImpl) GetByID(ctx context.Context, tenant user.TenantContext, id string) (company.CompanyResponse, error) {
	if !tenant.Can(user.PermissionCompanyView) {
		return company.CompanyResponse{}, user.ErrPermissionDenied
	}
	// Child-company users may only see themselves.
	if !tenant.IsParent && tenant.CompanyID != id {
		return company.CompanyResponse{}, user.ErrPermissionDenied
	}

	found, err := s.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(found), nil
}

func (s *CompanyServiceImpl) List(ctx context.Context, tenant user.TenantContext) ([]company.CompanyResponse, error) {
	if !tenant.Can(user.PermissionCompanyView) {
		return nil, user.ErrPermissionDenied
	}

	if !tenant.IsParent {
		own, err := s.CompanyRepository.GetByID(ctx, tenant.CompanyID)
		if err != nil {
			return nil, err
		}
		return []company.CompanyResponse{company.ToResponse(own)}, nil
	}

	companies, err := s.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, company.ToResponse(c))
	}
	return responses, nil
}

func (s *CompanyServiceImpl) Update(ctx context.Context, tenant user.TenantContext, id string, req company.UpdateCompanyRequest) error {
	if !tenant.IsParent {
		return user.ErrParentCompanyRequired
	}
	if !tenant.Can(user.PermissionCompanyManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.CompanyRepository.Update(ctx, id, req)
}

// Delete removes a child company. The repository refuses to delete the
// parent row.
func (s *CompanyServiceImpl) Delete(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.IsParent {
		return user.ErrParentCompanyRequired
	}
	if tenant.Role != user.RoleOwner {
		return user.ErrOwnerPrivilegeRequired
	}
	return s.CompanyRepository.Delete(ctx, id)
}
