package services

import (
	"context"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// JobService contém a lógica de negócio para vagas
type JobService struct {
	jobRepo      repositories.JobRepository
	companyRepo  repositories.CompanyRepository
	categoryRepo repositories.CategoryRepository
	logger       ports.Logger
	now          Clock
}

// NewJobService cria um novo JobService
func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	categoryRepo repositories.CategoryRepository,
	logger ports.Logger,
) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		companyRepo:  companyRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With("service", "job"),
		now:          systemClock,
	}
}

// CreateJob publica uma vaga para uma empresa do ator
func (s *JobService) CreateJob(ctx context.Context, actor entities.Actor, companyID string, details entities.JobDetails) (*entities.Job, error) {
	if _, err := s.managedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, details.CategoryID); err != nil {
		return nil, err
	}

	job, err := entities.NewJob(companyID, details, s.now())
	if err != nil {
		return nil, err
	}
	job.ID = newID()

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("job created", "job_id", job.ID, "company_id", companyID)
	return job, nil
}

// GetJob busca uma vaga por ID
func (s *JobService) GetJob(ctx context.Context, id string) (*entities.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.ErrJobNotFound
	}
	return job, nil
}

// SearchJobs busca vagas com filtros e paginação
func (s *JobService) SearchJobs(ctx context.Context, filter repositories.JobSearchFilter) (Page[*entities.Job], error) {
	if filter.MinSalary != nil && filter.MaxSalary != nil && *filter.MinSalary > *filter.MaxSalary {
		return Page[*entities.Job]{}, errors.NewValidationError("minSalary", "validation.salary_range")
	}

	filter.Pagination = filter.Pagination.Normalize()
	jobs, total, err := s.jobRepo.Search(ctx, filter)
	if err != nil {
		return Page[*entities.Job]{}, err
	}
	return newPage(jobs, total, filter.Pagination), nil
}

// ListByCompany lista as vagas de uma empresa
func (s *JobService) ListByCompany(ctx context.Context, companyID string, pagination repositories.Pagination) (Page[*entities.Job], error) {
	return s.SearchJobs(ctx, repositories.JobSearchFilter{CompanyID: companyID, Pagination: pagination})
}

// ListByCategory lista as vagas de uma categoria
func (s *JobService) ListByCategory(ctx context.Context, categoryID string, pagination repositories.Pagination) (Page[*entities.Job], error) {
	return s.SearchJobs(ctx, repositories.JobSearchFilter{CategoryID: categoryID, Pagination: pagination})
}

// ListActive lista vagas ativas e ainda não expiradas
func (s *JobService) ListActive(ctx context.Context, pagination repositories.Pagination) (Page[*entities.Job], error) {
	now := s.now()
	return s.SearchJobs(ctx, repositories.JobSearchFilter{OpenAt: &now, Pagination: pagination})
}

// UpdateJob atualiza os dados da vaga
func (s *JobService) UpdateJob(ctx context.Context, actor entities.Actor, id string, details entities.JobDetails) (*entities.Job, error) {
	job, err := s.managedJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if details.CategoryID != job.CategoryID {
		if err := s.ensureCategory(ctx, details.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := job.Update(details); err != nil {
		return nil, err
	}
	return s.save(ctx, job, "job updated")
}

// ActivateJob reabre uma vaga não expirada
func (s *JobService) ActivateJob(ctx context.Context, actor entities.Actor, id string) (*entities.Job, error) {
	job, err := s.managedJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := job.Activate(s.now()); err != nil {
		return nil, err
	}
	return s.save(ctx, job, "job activated")
}

// DeactivateJob encerra a vaga para novas candidaturas
func (s *JobService) DeactivateJob(ctx context.Context, actor entities.Actor, id string) (*entities.Job, error) {
	job, err := s.managedJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	job.Deactivate()
	return s.save(ctx, job, "job deactivated")
}

// ExtendJob adia a validade da vaga
func (s *JobService) ExtendJob(ctx context.Context, actor entities.Actor, id string, days int) (*entities.Job, error) {
	job, err := s.managedJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := job.ExtendExpiration(days); err != nil {
		return nil, err
	}
	return s.save(ctx, job, "job extended")
}

// DeleteJob remove a vaga e suas candidaturas
func (s *JobService) DeleteJob(ctx context.Context, actor entities.Actor, id string) error {
	if _, err := s.managedJob(ctx, actor, id); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("job deleted", "job_id", id)
	return nil
}

func (s *JobService) save(ctx context.Context, job *entities.Job, message string) (*entities.Job, error) {
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info(message, "job_id", job.ID)
	return job, nil
}

func (s *JobService) managedJob(ctx context.Context, actor entities.Actor, id string) (*entities.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.managedCompany(ctx, actor, job.CompanyID); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) managedCompany(ctx context.Context, actor entities.Actor, companyID string) (*entities.Company, error) {
	if !actor.Can(entities.PermissionJobsWrite) {
		return nil, errors.ErrForbidden
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.ErrCompanyNotFound
	}
	if !company.CanBeManagedBy(actor) {
		return nil, errors.ErrForbidden
	}
	return company, nil
}

func (s *JobService) ensureCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return errors.NewValidationError("categoryId", "validation.required")
	}
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return errors.ErrCategoryNotFound
	}
	return nil
}
