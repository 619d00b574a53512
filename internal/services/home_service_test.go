package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories/mocks"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/logging"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

var _ = Describe("HomeService", func() {
	var (
		ctx          context.Context
		jobRepo      *mocks.MockJobRepository
		companyRepo  *mocks.MockCompanyRepository
		categoryRepo *mocks.MockCategoryRepository
		service      *services.HomeService
		company      *entities.Company
		category     *entities.Category
		job          *entities.Job
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl := gomock.NewController(GinkgoT())
		jobRepo = mocks.NewMockJobRepository(ctrl)
		companyRepo = mocks.NewMockCompanyRepository(ctrl)
		categoryRepo = mocks.NewMockCategoryRepository(ctrl)
		service = services.NewHomeService(jobRepo, companyRepo, categoryRepo, logging.NewDiscardLogger())

		company, _ = entities.NewCompany("employer-1", entities.CompanyDetails{Name: "Acme"}, nil)
		company.ID = "company-1"
		category, _ = entities.NewCategory("Engineering")
		category.ID = "category-1"
		job, _ = entities.NewJob(company.ID, entities.JobDetails{
			CategoryID:  category.ID,
			Title:       "Go Developer",
			Description: "Build APIs with Go and PostgreSQL",
		}, time.Now())
		job.ID = "job-1"
	})

	It("monta o resumo com nomes de empresa e categoria", func() {
		jobRepo.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter repositories.JobSearchFilter) ([]*entities.Job, int64, error) {
				Expect(filter.OpenAt).NotTo(BeNil())
				Expect(filter.IsActive).To(BeNil())
				return []*entities.Job{job}, 1, nil
			})
		companyRepo.EXPECT().FindByIDs(gomock.Any(), []string{company.ID}).Return([]*entities.Company{company}, nil)
		categoryRepo.EXPECT().FindByIDs(gomock.Any(), []string{category.ID}).Return([]*entities.Category{category}, nil)

		page, err := service.SearchJobs(ctx, repositories.JobSearchFilter{IsActive: ptr(false)})

		Expect(err).NotTo(HaveOccurred())
		Expect(page.Items).To(HaveLen(1))
		Expect(page.Items[0].CompanyName).To(Equal("Acme"))
		Expect(page.Items[0].CategoryName).To(Equal("Engineering"))
	})

	It("agrega recentes, destaques e totais", func() {
		jobRepo.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter repositories.JobSearchFilter) ([]*entities.Job, int64, error) {
				switch filter.Sort {
				case repositories.JobSortSalary:
					Expect(filter.PageSize).To(Equal(services.FeaturedJobsLimit))
				default:
					Expect(filter.PageSize).To(Equal(services.RecentJobsLimit))
				}
				return []*entities.Job{job}, 1, nil
			}).Times(2)
		jobRepo.EXPECT().CountOpen(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		companyRepo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
		categoryRepo.EXPECT().List(gomock.Any()).Return([]*entities.Category{category}, nil)
		companyRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return([]*entities.Company{company}, nil)
		categoryRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return([]*entities.Category{category}, nil)

		overview, err := service.Overview(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(overview.RecentJobs).To(HaveLen(1))
		Expect(overview.FeaturedJobs).To(HaveLen(1))
		Expect(overview.Stats).To(Equal(services.HomeStats{OpenJobs: 1, Companies: 3, Categories: 1}))
	})
})
