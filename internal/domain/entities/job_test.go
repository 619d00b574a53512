package entities_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("Job", func() {
	var (
		now     time.Time
		details entities.JobDetails
	)

	BeforeEach(func() {
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		details = entities.JobDetails{
			CategoryID:  "category-1",
			Title:       "Backend Engineer",
			Description: "Build and operate Go services.",
			SalaryFrom:  ptr(5000.0),
			SalaryTo:    ptr(8000.0),
			JobType:     entities.JobTypeFullTime,
			Tags:        []string{"Go", " go ", "Postgres"},
		}
	})

	It("cria vaga ativa com validade padrão de 30 dias", func() {
		job, err := entities.NewJob("company-1", details, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(job.IsActive).To(BeTrue())
		Expect(job.ExpiresAt).To(Equal(now.Add(entities.DefaultJobDuration)))
		Expect(job.Tags).To(Equal([]string{"go", "postgres"}))
	})

	DescribeTable("valida os campos",
		func(mutate func(d *entities.JobDetails)) {
			mutate(&details)
			_, err := entities.NewJob("company-1", details, now)
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		},
		Entry("título curto", func(d *entities.JobDetails) { d.Title = "A" }),
		Entry("descrição curta", func(d *entities.JobDetails) { d.Description = "short" }),
		Entry("salário invertido", func(d *entities.JobDetails) { d.SalaryFrom = ptr(9000.0) }),
		Entry("tipo inválido", func(d *entities.JobDetails) { d.JobType = entities.JobType(42) }),
		Entry("expiração antes da publicação", func(d *entities.JobDetails) { d.ExpiresAt = ptr(now.Add(-time.Hour)) }),
		Entry("sem categoria", func(d *entities.JobDetails) { d.CategoryID = "" }),
	)

	It("não ativa vaga expirada", func() {
		job, err := entities.NewJob("company-1", details, now)
		Expect(err).NotTo(HaveOccurred())

		later := job.ExpiresAt.Add(time.Minute)
		job.Deactivate()
		Expect(job.Activate(later)).To(MatchError(domainerrors.ErrJobExpired))
		Expect(job.IsActive).To(BeFalse())
	})

	It("estende a validade e permite reativar", func() {
		job, err := entities.NewJob("company-1", details, now)
		Expect(err).NotTo(HaveOccurred())
		later := job.ExpiresAt.Add(time.Hour)
		job.Deactivate()

		Expect(job.ExtendExpiration(0)).To(MatchError(domainerrors.ErrValidation))
		Expect(job.ExtendExpiration(7)).To(Succeed())
		Expect(job.Activate(later)).To(Succeed())
		Expect(job.IsOpen(later)).To(BeTrue())
	})
})
