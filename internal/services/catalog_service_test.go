package services_test

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories/mocks"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/logging"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

var _ = Describe("CategoryService", func() {
	var (
		ctx          context.Context
		categoryRepo *mocks.MockCategoryRepository
		service      *services.CategoryService
		admin        entities.Actor
	)

	BeforeEach(func() {
		ctx = context.Background()
		categoryRepo = mocks.NewMockCategoryRepository(gomock.NewController(GinkgoT()))
		service = services.NewCategoryService(categoryRepo, logging.NewDiscardLogger())
		admin = entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
	})

	It("cria a categoria com slug derivado do nome", func() {
		categoryRepo.EXPECT().FindByName(gomock.Any(), "Data Science").Return(nil, nil)
		categoryRepo.EXPECT().FindBySlug(gomock.Any(), "data-science").Return(nil, nil)
		categoryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		category, err := service.CreateCategory(ctx, admin, "Data Science")

		Expect(err).NotTo(HaveOccurred())
		Expect(category.Slug).To(Equal("data-science"))
		Expect(category.ID).NotTo(BeEmpty())
	})

	It("trata nomes iguais sem diferenciar maiúsculas", func() {
		existing, _ := entities.NewCategory("Data Science")
		existing.ID = "category-1"

		categoryRepo.EXPECT().FindByName(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, name string) (*entities.Category, error) {
				if strings.EqualFold(name, existing.Name) {
					return existing, nil
				}
				return nil, nil
			})

		_, err := service.CreateCategory(ctx, admin, "data science")
		Expect(err).To(MatchError(domainerrors.ErrCategoryAlreadyExists))
	})

	It("restringe escrita ao admin", func() {
		employer := entities.Actor{UserID: "employer-1", Role: entities.RoleEmployer}

		_, err := service.CreateCategory(ctx, employer, "Marketing")
		Expect(err).To(MatchError(domainerrors.ErrForbidden))
	})

	It("retorna not found para slug desconhecido", func() {
		categoryRepo.EXPECT().FindBySlug(gomock.Any(), "unknown").Return(nil, nil)

		_, err := service.GetBySlug(ctx, "Unknown")
		Expect(err).To(MatchError(domainerrors.ErrCategoryNotFound))
	})

	It("permite renomear mantendo o próprio nome com outra caixa", func() {
		category, _ := entities.NewCategory("Data Science")
		category.ID = "category-1"

		categoryRepo.EXPECT().FindByID(gomock.Any(), "category-1").Return(category, nil)
		categoryRepo.EXPECT().FindByName(gomock.Any(), "data science").Return(category, nil)
		categoryRepo.EXPECT().FindBySlug(gomock.Any(), "data-science").Return(category, nil)
		categoryRepo.EXPECT().Update(gomock.Any(), category).Return(nil)

		updated, err := service.UpdateCategory(ctx, admin, "category-1", "data science")
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Name).To(Equal("data science"))
	})
})

var _ = Describe("CompanyService", func() {
	var (
		ctx         context.Context
		companyRepo *mocks.MockCompanyRepository
		userRepo    *mocks.MockUserRepository
		service     *services.CompanyService
		details     entities.CompanyDetails
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl := gomock.NewController(GinkgoT())
		companyRepo = mocks.NewMockCompanyRepository(ctrl)
		userRepo = mocks.NewMockUserRepository(ctrl)
		service = services.NewCompanyService(companyRepo, userRepo, logging.NewDiscardLogger())
		details = entities.CompanyDetails{Name: "Acme", Website: ptr("acme.example.com")}
	})

	It("cria empresa para o próprio employer", func() {
		employer := newTestUser("employer-1", entities.RoleEmployer)
		userRepo.EXPECT().FindByID(gomock.Any(), employer.ID).Return(employer, nil)
		companyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		company, err := service.CreateCompany(ctx, employer.Actor(), services.CreateCompanyInput{Details: details})

		Expect(err).NotTo(HaveOccurred())
		Expect(company.OwnerUserID).To(Equal(employer.ID))
		Expect(*company.Website).To(Equal("http://acme.example.com"))
	})

	It("exige que o dono seja Employer", func() {
		admin := entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
		seeker := newTestUser("seeker-1", entities.RoleJobSeeker)
		userRepo.EXPECT().FindByID(gomock.Any(), seeker.ID).Return(seeker, nil)

		_, err := service.CreateCompany(ctx, admin, services.CreateCompanyInput{OwnerUserID: seeker.ID, Details: details})
		Expect(err).To(MatchError(domainerrors.ErrOwnerMustBeEmployer))
	})

	It("proíbe JobSeekers de criar empresas", func() {
		seeker := entities.Actor{UserID: "seeker-1", Role: entities.RoleJobSeeker}

		_, err := service.CreateCompany(ctx, seeker, services.CreateCompanyInput{Details: details})
		Expect(err).To(MatchError(domainerrors.ErrForbidden))
	})

	It("impede alterações por quem não é dono", func() {
		company, _ := entities.NewCompany("employer-1", details, nil)
		company.ID = "company-1"
		companyRepo.EXPECT().FindByID(gomock.Any(), "company-1").Return(company, nil)

		other := entities.Actor{UserID: "employer-2", Role: entities.RoleEmployer}
		_, err := service.UpdateCompany(ctx, other, "company-1", details)
		Expect(err).To(MatchError(domainerrors.ErrForbidden))
	})
})

var _ = Describe("JobService", func() {
	var (
		ctx          context.Context
		jobRepo      *mocks.MockJobRepository
		companyRepo  *mocks.MockCompanyRepository
		categoryRepo *mocks.MockCategoryRepository
		service      *services.JobService
		employer     entities.Actor
		company      *entities.Company
		details      entities.JobDetails
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl := gomock.NewController(GinkgoT())
		jobRepo = mocks.NewMockJobRepository(ctrl)
		companyRepo = mocks.NewMockCompanyRepository(ctrl)
		categoryRepo = mocks.NewMockCategoryRepository(ctrl)
		service = services.NewJobService(jobRepo, companyRepo, categoryRepo, logging.NewDiscardLogger())

		employer = entities.Actor{UserID: "employer-1", Role: entities.RoleEmployer}
		company, _ = entities.NewCompany(employer.UserID, entities.CompanyDetails{Name: "Acme"}, nil)
		company.ID = "company-1"
		details = entities.JobDetails{
			CategoryID:  "category-1",
			Title:       "Backend Engineer",
			Description: "Design and operate Go services",
			JobType:     entities.JobTypeContract,
			SalaryFrom:  ptr(5000.0),
			SalaryTo:    ptr(8000.0),
			Tags:        []string{"Go", "go", " Postgres "},
		}
	})

	It("publica a vaga com validade padrão", func() {
		category, _ := entities.NewCategory("Engineering")
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
		categoryRepo.EXPECT().FindByID(gomock.Any(), "category-1").Return(category, nil)
		jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		job, err := service.CreateJob(ctx, employer, company.ID, details)

		Expect(err).NotTo(HaveOccurred())
		Expect(job.IsActive).To(BeTrue())
		Expect(job.Tags).To(Equal([]string{"go", "postgres"}))
		Expect(job.ExpiresAt.Sub(job.PostedAt)).To(Equal(entities.DefaultJobDuration))
	})

	It("exige categoria existente", func() {
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
		categoryRepo.EXPECT().FindByID(gomock.Any(), "category-1").Return(nil, nil)

		_, err := service.CreateJob(ctx, employer, company.ID, details)
		Expect(err).To(MatchError(domainerrors.ErrCategoryNotFound))
	})

	It("lista somente vagas abertas em ListActive", func() {
		jobRepo.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter repositories.JobSearchFilter) ([]*entities.Job, int64, error) {
				Expect(filter.OpenAt).NotTo(BeNil())
				Expect(*filter.OpenAt).To(BeTemporally("~", time.Now(), time.Minute))
				return []*entities.Job{}, 42, nil
			})

		page, err := service.ListActive(ctx, repositories.Pagination{Page: 2, PageSize: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Total).To(Equal(int64(42)))
		Expect(page.TotalPages()).To(Equal(5))
	})

	It("não reativa vaga expirada", func() {
		job, _ := entities.NewJob(company.ID, details, time.Now().Add(-60*24*time.Hour))
		job.ID = "job-1"
		job.Deactivate()
		jobRepo.EXPECT().FindByID(gomock.Any(), "job-1").Return(job, nil)
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)

		_, err := service.ActivateJob(ctx, employer, "job-1")
		Expect(err).To(MatchError(domainerrors.ErrJobExpired))
	})

	It("rejeita faixa salarial invertida na busca", func() {
		_, err := service.SearchJobs(ctx, repositories.JobSearchFilter{MinSalary: ptr(10.0), MaxSalary: ptr(1.0)})
		Expect(err).To(MatchError(domainerrors.ErrValidation))
	})
})
