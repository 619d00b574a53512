package services_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	portmocks "github.com/rafabene/hiresphere-backend/internal/domain/ports/mocks"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories/mocks"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/logging"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

var _ = Describe("JobApplicationService", func() {
	var (
		ctx             context.Context
		ctrl            *gomock.Controller
		applicationRepo *mocks.MockJobApplicationRepository
		jobRepo         *mocks.MockJobRepository
		companyRepo     *mocks.MockCompanyRepository
		userRepo        *mocks.MockUserRepository
		notifier        *portmocks.MockApplicationNotifier
		service         *services.JobApplicationService

		employer  entities.Actor
		seeker    entities.Actor
		admin     entities.Actor
		company   *entities.Company
		job       *entities.Job
		resumeURL string
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		applicationRepo = mocks.NewMockJobApplicationRepository(ctrl)
		jobRepo = mocks.NewMockJobRepository(ctrl)
		companyRepo = mocks.NewMockCompanyRepository(ctrl)
		userRepo = mocks.NewMockUserRepository(ctrl)
		notifier = portmocks.NewMockApplicationNotifier(ctrl)

		service = services.NewJobApplicationService(
			applicationRepo, jobRepo, companyRepo, userRepo, &inlineUnitOfWork{}, notifier, logging.NewDiscardLogger(),
		)

		employer = entities.Actor{UserID: "employer-1", Role: entities.RoleEmployer}
		seeker = entities.Actor{UserID: "seeker-1", Role: entities.RoleJobSeeker}
		admin = entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
		resumeURL = "https://cv.example.com/seeker.pdf"

		var err error
		company, err = entities.NewCompany(employer.UserID, entities.CompanyDetails{Name: "Acme"}, nil)
		Expect(err).NotTo(HaveOccurred())
		company.ID = "company-1"

		job, err = entities.NewJob(company.ID, entities.JobDetails{
			CategoryID:  "category-1",
			Title:       "Go Developer",
			Description: "Build APIs with Go and PostgreSQL",
			JobType:     entities.JobTypeFullTime,
		}, time.Now())
		Expect(err).NotTo(HaveOccurred())
		job.ID = "job-1"
	})

	Describe("Apply", func() {
		It("cria a candidatura em Applied", func() {
			userRepo.EXPECT().FindByID(gomock.Any(), seeker.UserID).Return(newTestUser(seeker.UserID, entities.RoleJobSeeker), nil)
			jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
			applicationRepo.EXPECT().FindByJobAndApplicant(gomock.Any(), job.ID, seeker.UserID).Return(nil, nil)
			applicationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			application, err := service.Apply(ctx, seeker, services.ApplyInput{JobID: job.ID, ResumeURL: resumeURL})

			Expect(err).NotTo(HaveOccurred())
			Expect(application.Status).To(Equal(entities.StatusApplied))
			Expect(application.ApplicantUserID).To(Equal(seeker.UserID))
		})

		It("rejeita candidatura duplicada", func() {
			existing, _ := entities.NewJobApplication(job.ID, seeker.UserID, resumeURL, nil, time.Now())
			userRepo.EXPECT().FindByID(gomock.Any(), seeker.UserID).Return(newTestUser(seeker.UserID, entities.RoleJobSeeker), nil)
			jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
			applicationRepo.EXPECT().FindByJobAndApplicant(gomock.Any(), job.ID, seeker.UserID).Return(existing, nil)

			_, err := service.Apply(ctx, seeker, services.ApplyInput{JobID: job.ID, ResumeURL: resumeURL})
			Expect(err).To(MatchError(domainerrors.ErrApplicationExists))
		})

		It("rejeita vaga inativa", func() {
			job.Deactivate()
			userRepo.EXPECT().FindByID(gomock.Any(), seeker.UserID).Return(newTestUser(seeker.UserID, entities.RoleJobSeeker), nil)
			jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)

			_, err := service.Apply(ctx, seeker, services.ApplyInput{JobID: job.ID, ResumeURL: resumeURL})
			Expect(err).To(MatchError(domainerrors.ErrJobNotAcceptingApplies))
		})

		It("só aceita JobSeekers", func() {
			_, err := service.Apply(ctx, employer, services.ApplyInput{JobID: job.ID, ResumeURL: resumeURL})
			Expect(err).To(MatchError(domainerrors.ErrApplicantMustBeSeeker))
		})
	})

	Describe("ChangeStatus", func() {
		var application *entities.JobApplication

		BeforeEach(func() {
			var err error
			application, err = entities.NewJobApplication(job.ID, seeker.UserID, resumeURL, nil, time.Now())
			Expect(err).NotTo(HaveOccurred())
			application.ID = "application-1"
		})

		It("aplica transição permitida e notifica o candidato", func() {
			applicationRepo.EXPECT().FindByIDForUpdate(gomock.Any(), application.ID).Return(application, nil)
			jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
			companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
			applicationRepo.EXPECT().UpdateStatus(gomock.Any(), application, entities.StatusApplied).Return(nil)
			notifier.EXPECT().NotifyStatusChanged(gomock.Any(), gomock.Any()).Do(
				func(_ context.Context, event ports.ApplicationStatusChanged) {
					Expect(event.ApplicantUserID).To(Equal(seeker.UserID))
					Expect(event.PreviousStatus).To(Equal("Applied"))
					Expect(event.Status).To(Equal("Screening"))
				})

			updated, err := service.ChangeStatus(ctx, employer, application.ID, entities.StatusScreening)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.StatusScreening))
		})

		It("rejeita transição fora da lista e não persiste nem notifica", func() {
			applicationRepo.EXPECT().FindByIDForUpdate(gomock.Any(), application.ID).Return(application, nil)
			jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)

			_, err := service.ChangeStatus(ctx, admin, application.ID, entities.StatusAccepted)

			var transitionErr *domainerrors.InvalidTransitionError
			Expect(errors.As(err, &transitionErr)).To(BeTrue())
			Expect(transitionErr.From).To(Equal("Applied"))
			Expect(application.Status).To(Equal(entities.StatusApplied))
		})

		It("proíbe employers de outras empresas", func() {
			other := entities.Actor{UserID: "employer-2", Role: entities.RoleEmployer}
			applicationRepo.EXPECT().FindByIDForUpdate(gomock.Any(), application.ID).Return(application, nil)
			jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
			companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)

			_, err := service.ChangeStatus(ctx, other, application.ID, entities.StatusScreening)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("não notifica quando outra avaliação mudou a linha antes", func() {
			applicationRepo.EXPECT().FindByIDForUpdate(gomock.Any(), application.ID).Return(application, nil)
			jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
			applicationRepo.EXPECT().UpdateStatus(gomock.Any(), application, entities.StatusApplied).
				Return(&domainerrors.InvalidTransitionError{From: "Applied", To: "Screening"})

			_, err := service.ChangeStatus(ctx, admin, application.ID, entities.StatusScreening)

			var transitionErr *domainerrors.InvalidTransitionError
			Expect(errors.As(err, &transitionErr)).To(BeTrue())
		})

		It("sai de um estado terminal somente uma vez", func() {
			application.Status = entities.StatusOffered
			applicationRepo.EXPECT().FindByIDForUpdate(gomock.Any(), application.ID).Return(application, nil).Times(2)
			jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil).Times(2)
			applicationRepo.EXPECT().UpdateStatus(gomock.Any(), application, entities.StatusOffered).Return(nil)
			notifier.EXPECT().NotifyStatusChanged(gomock.Any(), gomock.Any())

			_, err := service.ChangeStatus(ctx, admin, application.ID, entities.StatusAccepted)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ChangeStatus(ctx, admin, application.ID, entities.StatusRejected)
			var transitionErr *domainerrors.InvalidTransitionError
			Expect(errors.As(err, &transitionErr)).To(BeTrue())
			Expect(transitionErr.From).To(Equal("Accepted"))
			Expect(application.Status).To(Equal(entities.StatusAccepted))
		})

		It("retorna not found para candidatura inexistente", func() {
			applicationRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "missing").Return(nil, nil)

			_, err := service.ChangeStatus(ctx, admin, "missing", entities.StatusScreening)
			Expect(err).To(MatchError(domainerrors.ErrApplicationNotFound))
		})

		It("proíbe o próprio candidato", func() {
			applicationRepo.EXPECT().FindByIDForUpdate(gomock.Any(), application.ID).Return(application, nil)

			_, err := service.ChangeStatus(ctx, seeker, application.ID, entities.StatusScreening)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})
	})

	Describe("UpdateCoverLetter", func() {
		It("grava só a carta, sem sobrescrever o status", func() {
			application, err := entities.NewJobApplication(job.ID, seeker.UserID, resumeURL, nil, time.Now())
			Expect(err).NotTo(HaveOccurred())
			application.ID = "application-1"

			applicationRepo.EXPECT().FindByID(gomock.Any(), application.ID).Return(application, nil)
			applicationRepo.EXPECT().UpdateCoverLetter(gomock.Any(), application).Return(nil)

			updated, err := service.UpdateCoverLetter(ctx, seeker, application.ID, "  Tenho experiência com Go  ")
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.CoverLetter).To(Equal("Tenho experiência com Go"))
		})

		It("proíbe outros usuários", func() {
			application, _ := entities.NewJobApplication(job.ID, seeker.UserID, resumeURL, nil, time.Now())
			application.ID = "application-1"
			applicationRepo.EXPECT().FindByID(gomock.Any(), application.ID).Return(application, nil)

			_, err := service.UpdateCoverLetter(ctx, entities.Actor{UserID: "seeker-2", Role: entities.RoleJobSeeker}, application.ID, "oi")
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})
	})

	Describe("consultas", func() {
		It("permite ao candidato listar as próprias candidaturas", func() {
			applicationRepo.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, filter repositories.ApplicationFilter) ([]*entities.JobApplication, int64, error) {
					Expect(filter.ApplicantUserID).To(Equal(seeker.UserID))
					Expect(filter.PageSize).To(Equal(repositories.DefaultPageSize))
					return nil, 0, nil
				})

			page, err := service.ListByApplicant(ctx, seeker, seeker.UserID, repositories.Pagination{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Page).To(Equal(1))
		})

		It("proíbe listar candidaturas de outro usuário", func() {
			_, err := service.ListByApplicant(ctx, seeker, "seeker-2", repositories.Pagination{})
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("restringe a busca geral ao admin", func() {
			_, err := service.SearchApplications(ctx, employer, repositories.ApplicationFilter{})
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})
	})
})
