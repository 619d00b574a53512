package services

import (
	"context"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// JobApplicationService contém a lógica de negócio para candidaturas
type JobApplicationService struct {
	applicationRepo repositories.JobApplicationRepository
	jobRepo         repositories.JobRepository
	companyRepo     repositories.CompanyRepository
	userRepo        repositories.UserRepository
	uow             ports.UnitOfWork
	notifier        ports.ApplicationNotifier
	logger          ports.Logger
	now             Clock
}

// NewJobApplicationService cria um novo JobApplicationService
func NewJobApplicationService(
	applicationRepo repositories.JobApplicationRepository,
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	notifier ports.ApplicationNotifier,
	logger ports.Logger,
) *JobApplicationService {
	return &JobApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
		userRepo:        userRepo,
		uow:             uow,
		notifier:        notifier,
		logger:          logger.With("service", "job_application"),
		now:             systemClock,
	}
}

// ApplyInput representa os dados de uma candidatura
type ApplyInput struct {
	JobID       string
	ResumeURL   string
	CoverLetter *string
}

// Apply cria a candidatura do ator (JobSeeker) a uma vaga aberta
func (s *JobApplicationService) Apply(ctx context.Context, actor entities.Actor, input ApplyInput) (*entities.JobApplication, error) {
	if !actor.Can(entities.PermissionApplicationsCreate) {
		return nil, errors.ErrApplicantMustBeSeeker
	}

	now := s.now()
	application, err := entities.NewJobApplication(input.JobID, actor.UserID, input.ResumeURL, input.CoverLetter, now)
	if err != nil {
		return nil, err
	}
	application.ID = newID()

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		applicant, err := s.userRepo.FindByID(txCtx, actor.UserID)
		if err != nil {
			return err
		}
		if applicant == nil {
			return errors.ErrUserNotFound
		}
		if applicant.Role != entities.RoleJobSeeker {
			return errors.ErrApplicantMustBeSeeker
		}

		job, err := s.jobRepo.FindByID(txCtx, input.JobID)
		if err != nil {
			return err
		}
		if job == nil {
			return errors.ErrJobNotFound
		}
		if !job.IsOpen(now) {
			return errors.ErrJobNotAcceptingApplies
		}

		existing, err := s.applicationRepo.FindByJobAndApplicant(txCtx, input.JobID, actor.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrApplicationExists
		}

		return s.applicationRepo.Create(txCtx, application)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("application created", "application_id", application.ID, "job_id", input.JobID, "applicant_id", actor.UserID)
	return application, nil
}

// GetApplication busca uma candidatura visível para o ator
func (s *JobApplicationService) GetApplication(ctx context.Context, actor entities.Actor, id string) (*entities.JobApplication, error) {
	application, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, actor, application); err != nil {
		return nil, err
	}
	return application, nil
}

// GetByJobAndApplicant busca a candidatura de um usuário a uma vaga
func (s *JobApplicationService) GetByJobAndApplicant(ctx context.Context, actor entities.Actor, jobID, applicantUserID string) (*entities.JobApplication, error) {
	application, err := s.applicationRepo.FindByJobAndApplicant(ctx, jobID, applicantUserID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, errors.ErrApplicationNotFound
	}
	if err := s.authorizeRead(ctx, actor, application); err != nil {
		return nil, err
	}
	return application, nil
}

// SearchApplications busca candidaturas com filtros (somente admin)
func (s *JobApplicationService) SearchApplications(ctx context.Context, actor entities.Actor, filter repositories.ApplicationFilter) (Page[*entities.JobApplication], error) {
	if !actor.Can(entities.PermissionApplicationsRead) {
		return Page[*entities.JobApplication]{}, errors.ErrForbidden
	}
	return s.search(ctx, filter)
}

// ListByJob lista as candidaturas de uma vaga (dono da empresa ou admin)
func (s *JobApplicationService) ListByJob(ctx context.Context, actor entities.Actor, jobID string, pagination repositories.Pagination) (Page[*entities.JobApplication], error) {
	if _, err := s.reviewableJob(ctx, actor, jobID); err != nil {
		return Page[*entities.JobApplication]{}, err
	}
	return s.search(ctx, repositories.ApplicationFilter{JobID: jobID, Pagination: pagination})
}

// ListByApplicant lista as candidaturas de um usuário
func (s *JobApplicationService) ListByApplicant(ctx context.Context, actor entities.Actor, applicantUserID string, pagination repositories.Pagination) (Page[*entities.JobApplication], error) {
	if !actor.IsSelfOrAdmin(applicantUserID) {
		return Page[*entities.JobApplication]{}, errors.ErrForbidden
	}
	return s.search(ctx, repositories.ApplicationFilter{ApplicantUserID: applicantUserID, Pagination: pagination})
}

// ListByStatus lista candidaturas em um status (somente admin)
func (s *JobApplicationService) ListByStatus(ctx context.Context, actor entities.Actor, status entities.ApplicationStatus, pagination repositories.Pagination) (Page[*entities.JobApplication], error) {
	if !status.IsValid() {
		return Page[*entities.JobApplication]{}, errors.NewValidationError("status", "validation.application_status")
	}
	return s.SearchApplications(ctx, actor, repositories.ApplicationFilter{Status: &status, Pagination: pagination})
}

// ChangeStatus move a candidatura para o status pedido, respeitando as
// transições permitidas, e avisa o candidato conectado. A linha fica
// bloqueada durante a transação, então duas avaliações simultâneas não
// saem ambas de um mesmo status.
func (s *JobApplicationService) ChangeStatus(ctx context.Context, actor entities.Actor, id string, requested entities.ApplicationStatus) (*entities.JobApplication, error) {
	var (
		application *entities.JobApplication
		previous    entities.ApplicationStatus
	)
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		application, err = s.applicationRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if application == nil {
			return errors.ErrApplicationNotFound
		}
		if _, err := s.reviewableJob(txCtx, actor, application.JobID); err != nil {
			return err
		}

		previous = application.Status
		if err := application.ChangeStatus(requested); err != nil {
			return err
		}
		return s.applicationRepo.UpdateStatus(txCtx, application, previous)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("application status changed",
		"application_id", id,
		"from", previous.String(),
		"to", application.Status.String(),
	)

	s.notifier.NotifyStatusChanged(ctx, ports.ApplicationStatusChanged{
		ApplicationID:   application.ID,
		JobID:           application.JobID,
		ApplicantUserID: application.ApplicantUserID,
		PreviousStatus:  previous.String(),
		Status:          application.Status.String(),
		ChangedAt:       s.now(),
	})
	return application, nil
}

// UpdateCoverLetter troca a carta de apresentação (somente o candidato).
// Só a coluna da carta é gravada; o status não é tocado.
func (s *JobApplicationService) UpdateCoverLetter(ctx context.Context, actor entities.Actor, id, coverLetter string) (*entities.JobApplication, error) {
	application, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if !application.IsOwnedBy(actor.UserID) {
		return nil, errors.ErrForbidden
	}

	if err := application.AddCoverLetter(coverLetter); err != nil {
		return nil, err
	}
	if err := s.applicationRepo.UpdateCoverLetter(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// DeleteApplication remove a candidatura (candidato ou admin)
func (s *JobApplicationService) DeleteApplication(ctx context.Context, actor entities.Actor, id string) error {
	application, err := s.findApplication(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsSelfOrAdmin(application.ApplicantUserID) {
		return errors.ErrForbidden
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("application deleted", "application_id", id)
	return nil
}

func (s *JobApplicationService) search(ctx context.Context, filter repositories.ApplicationFilter) (Page[*entities.JobApplication], error) {
	filter.Pagination = filter.Pagination.Normalize()
	applications, total, err := s.applicationRepo.Search(ctx, filter)
	if err != nil {
		return Page[*entities.JobApplication]{}, err
	}
	return newPage(applications, total, filter.Pagination), nil
}

func (s *JobApplicationService) findApplication(ctx context.Context, id string) (*entities.JobApplication, error) {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, errors.ErrApplicationNotFound
	}
	return application, nil
}

// authorizeRead libera o candidato, o dono da empresa da vaga e o admin
func (s *JobApplicationService) authorizeRead(ctx context.Context, actor entities.Actor, application *entities.JobApplication) error {
	if actor.IsAdmin() || application.IsOwnedBy(actor.UserID) {
		return nil
	}
	_, err := s.reviewableJob(ctx, actor, application.JobID)
	return err
}

// reviewableJob retorna a vaga se o ator pode avaliar suas candidaturas
func (s *JobApplicationService) reviewableJob(ctx context.Context, actor entities.Actor, jobID string) (*entities.Job, error) {
	if !actor.Can(entities.PermissionApplicationsReview) {
		return nil, errors.ErrForbidden
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.ErrJobNotFound
	}
	if actor.IsAdmin() {
		return job, nil
	}

	company, err := s.companyRepo.FindByID(ctx, job.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsOwnedBy(actor.UserID) {
		return nil, errors.ErrForbidden
	}
	return job, nil
}
