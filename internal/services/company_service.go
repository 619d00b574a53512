package services

import (
	"context"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// CompanyService contém a lógica de negócio para empresas
type CompanyService struct {
	companyRepo repositories.CompanyRepository
	userRepo    repositories.UserRepository
	logger      ports.Logger
}

// NewCompanyService cria um novo CompanyService
func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      logger.With("service", "company"),
	}
}

// CreateCompanyInput representa os dados para criar uma empresa.
// OwnerUserID só é considerado quando o ator é admin.
type CreateCompanyInput struct {
	OwnerUserID string
	Details     entities.CompanyDetails
	LogoURL     *string
}

// CreateCompany cria uma empresa para um usuário Employer
func (s *CompanyService) CreateCompany(ctx context.Context, actor entities.Actor, input CreateCompanyInput) (*entities.Company, error) {
	if !actor.Can(entities.PermissionCompaniesWrite) {
		return nil, errors.ErrForbidden
	}

	ownerID := actor.UserID
	if actor.IsAdmin() {
		if input.OwnerUserID == "" {
			return nil, errors.NewValidationError("ownerUserId", "validation.required")
		}
		ownerID = input.OwnerUserID
	}

	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errors.ErrUserNotFound
	}
	if owner.Role != entities.RoleEmployer {
		return nil, errors.ErrOwnerMustBeEmployer
	}

	company, err := entities.NewCompany(owner.ID, input.Details, input.LogoURL)
	if err != nil {
		return nil, err
	}
	company.ID = newID()

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info("company created", "company_id", company.ID, "owner_id", owner.ID)
	return company, nil
}

// GetCompany busca uma empresa por ID
func (s *CompanyService) GetCompany(ctx context.Context, id string) (*entities.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.ErrCompanyNotFound
	}
	return company, nil
}

// ListCompanies lista empresas filtrando por nome e localização
func (s *CompanyService) ListCompanies(ctx context.Context, filters repositories.CompanyFilters) (Page[*entities.Company], error) {
	filters.Pagination = filters.Pagination.Normalize()
	companies, total, err := s.companyRepo.List(ctx, filters)
	if err != nil {
		return Page[*entities.Company]{}, err
	}
	return newPage(companies, total, filters.Pagination), nil
}

// ListByOwner lista as empresas de um usuário
func (s *CompanyService) ListByOwner(ctx context.Context, ownerUserID string, pagination repositories.Pagination) (Page[*entities.Company], error) {
	return s.ListCompanies(ctx, repositories.CompanyFilters{OwnerUserID: ownerUserID, Pagination: pagination})
}

// UpdateCompany atualiza os dados da empresa
func (s *CompanyService) UpdateCompany(ctx context.Context, actor entities.Actor, id string, details entities.CompanyDetails) (*entities.Company, error) {
	company, err := s.managedCompany(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := company.Update(details); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info("company updated", "company_id", id)
	return company, nil
}

// UpdateLogo troca o logo da empresa
func (s *CompanyService) UpdateLogo(ctx context.Context, actor entities.Actor, id string, logoURL *string) (*entities.Company, error) {
	company, err := s.managedCompany(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := company.UpdateLogoURL(logoURL); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany remove a empresa e, em cascata, suas vagas
func (s *CompanyService) DeleteCompany(ctx context.Context, actor entities.Actor, id string) error {
	if _, err := s.managedCompany(ctx, actor, id); err != nil {
		return err
	}
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("company deleted", "company_id", id)
	return nil
}

func (s *CompanyService) managedCompany(ctx context.Context, actor entities.Actor, id string) (*entities.Company, error) {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if !company.CanBeManagedBy(actor) {
		return nil, errors.ErrForbidden
	}
	return company, nil
}
