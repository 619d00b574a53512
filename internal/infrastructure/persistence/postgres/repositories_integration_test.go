//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/domain/valueobjects"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/persistence/postgres"
)

func newUser(email string, role entities.Role) *entities.User {
	e, err := valueobjects.NewEmail(email)
	Expect(err).NotTo(HaveOccurred())
	user, err := entities.NewUser(e, "hash", role, "Jane", "Doe", nil)
	Expect(err).NotTo(HaveOccurred())
	user.ID = uuid.NewString()
	return user
}

var _ = Describe("Repositories", func() {
	var (
		ctx          context.Context
		users        repositories.UserRepository
		companies    repositories.CompanyRepository
		categories   repositories.CategoryRepository
		jobs         repositories.JobRepository
		applications repositories.JobApplicationRepository
		tokens       repositories.RefreshTokenRepository
	)

	BeforeEach(func() {
		truncate()
		ctx = context.Background()
		users = postgres.NewUserRepository(db)
		companies = postgres.NewCompanyRepository(db)
		categories = postgres.NewCategoryRepository(db)
		jobs = postgres.NewJobRepository(db)
		applications = postgres.NewJobApplicationRepository(db)
		tokens = postgres.NewRefreshTokenRepository(db)
	})

	Describe("UserRepository", func() {
		It("rejeita email duplicado", func() {
			Expect(users.Create(ctx, newUser("jane@example.com", entities.RoleJobSeeker))).To(Succeed())
			err := users.Create(ctx, newUser("jane@example.com", entities.RoleEmployer))
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		})

		It("ignora usuários removidos", func() {
			user := newUser("gone@example.com", entities.RoleJobSeeker)
			Expect(users.Create(ctx, user)).To(Succeed())
			Expect(users.Delete(ctx, user.ID)).To(Succeed())

			found, err := users.FindByEmail(ctx, "gone@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())

			// o índice único é parcial: o email pode ser reutilizado
			Expect(users.Create(ctx, newUser("gone@example.com", entities.RoleJobSeeker))).To(Succeed())
		})
	})

	Describe("CategoryRepository", func() {
		It("trata o nome sem diferenciar maiúsculas", func() {
			category, err := entities.NewCategory("Data Science")
			Expect(err).NotTo(HaveOccurred())
			category.ID = uuid.NewString()
			Expect(categories.Create(ctx, category)).To(Succeed())

			found, err := categories.FindByName(ctx, "data SCIENCE")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.Slug).To(Equal("data-science"))

			duplicate, _ := entities.NewCategory("DATA science")
			duplicate.ID = uuid.NewString()
			Expect(categories.Create(ctx, duplicate)).To(MatchError(domainerrors.ErrCategoryAlreadyExists))
		})
	})

	Describe("JobRepository e JobApplicationRepository", func() {
		var job *entities.Job
		var seeker *entities.User

		BeforeEach(func() {
			employer := newUser("boss@example.com", entities.RoleEmployer)
			Expect(users.Create(ctx, employer)).To(Succeed())
			seeker = newUser("seeker@example.com", entities.RoleJobSeeker)
			Expect(users.Create(ctx, seeker)).To(Succeed())

			company, err := entities.NewCompany(employer.ID, entities.CompanyDetails{Name: "Acme"}, nil)
			Expect(err).NotTo(HaveOccurred())
			company.ID = uuid.NewString()
			Expect(companies.Create(ctx, company)).To(Succeed())

			category, _ := entities.NewCategory("Engineering")
			category.ID = uuid.NewString()
			Expect(categories.Create(ctx, category)).To(Succeed())

			salary := 9000.0
			job, err = entities.NewJob(company.ID, entities.JobDetails{
				CategoryID:  category.ID,
				Title:       "Go Developer",
				Description: "Write Go services all day long.",
				SalaryTo:    &salary,
				Tags:        []string{"go", "postgres"},
			}, time.Now())
			Expect(err).NotTo(HaveOccurred())
			job.ID = uuid.NewString()
			Expect(jobs.Create(ctx, job)).To(Succeed())
		})

		It("busca vagas abertas por texto e tag", func() {
			now := time.Now()
			found, total, err := jobs.Search(ctx, repositories.JobSearchFilter{Query: "go dev", Tag: "Postgres", OpenAt: &now})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(found[0].Tags).To(ConsistOf("go", "postgres"))

			open, err := jobs.CountOpen(ctx, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(open).To(Equal(int64(1)))
		})

		It("impede candidatura duplicada", func() {
			first, err := entities.NewJobApplication(job.ID, seeker.ID, "https://cv.example.com/a.pdf", nil, time.Now())
			Expect(err).NotTo(HaveOccurred())
			first.ID = uuid.NewString()
			Expect(applications.Create(ctx, first)).To(Succeed())

			second, _ := entities.NewJobApplication(job.ID, seeker.ID, "https://cv.example.com/b.pdf", nil, time.Now())
			second.ID = uuid.NewString()
			Expect(applications.Create(ctx, second)).To(MatchError(domainerrors.ErrApplicationExists))
		})

		It("persiste mudanças de status", func() {
			application, _ := entities.NewJobApplication(job.ID, seeker.ID, "https://cv.example.com/a.pdf", nil, time.Now())
			application.ID = uuid.NewString()
			Expect(applications.Create(ctx, application)).To(Succeed())

			Expect(application.ChangeStatus(entities.StatusScreening)).To(Succeed())
			Expect(applications.UpdateStatus(ctx, application, entities.StatusApplied)).To(Succeed())

			status := entities.StatusScreening
			found, total, err := applications.Search(ctx, repositories.ApplicationFilter{Status: &status})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(found[0].ID).To(Equal(application.ID))
		})

		It("recusa mudança de status a partir de um status desatualizado", func() {
			application, _ := entities.NewJobApplication(job.ID, seeker.ID, "https://cv.example.com/a.pdf", nil, time.Now())
			application.ID = uuid.NewString()
			Expect(applications.Create(ctx, application)).To(Succeed())

			stale := *application
			Expect(application.ChangeStatus(entities.StatusScreening)).To(Succeed())
			Expect(applications.UpdateStatus(ctx, application, entities.StatusApplied)).To(Succeed())

			Expect(stale.ChangeStatus(entities.StatusRejected)).To(Succeed())
			err := applications.UpdateStatus(ctx, &stale, entities.StatusApplied)
			var transitionErr *domainerrors.InvalidTransitionError
			Expect(errors.As(err, &transitionErr)).To(BeTrue())

			found, err := applications.FindByID(ctx, application.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(entities.StatusScreening))
		})

		It("atualiza a carta sem tocar no status", func() {
			application, _ := entities.NewJobApplication(job.ID, seeker.ID, "https://cv.example.com/a.pdf", nil, time.Now())
			application.ID = uuid.NewString()
			Expect(applications.Create(ctx, application)).To(Succeed())

			stale := *application
			Expect(application.ChangeStatus(entities.StatusScreening)).To(Succeed())
			Expect(applications.UpdateStatus(ctx, application, entities.StatusApplied)).To(Succeed())

			Expect(stale.AddCoverLetter("Carta nova")).To(Succeed())
			Expect(applications.UpdateCoverLetter(ctx, &stale)).To(Succeed())

			found, err := applications.FindByIDForUpdate(ctx, application.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(entities.StatusScreening))
			Expect(*found.CoverLetter).To(Equal("Carta nova"))
		})
	})

	Describe("RefreshTokenRepository", func() {
		It("revoga dentro de uma transação", func() {
			user := newUser("token@example.com", entities.RoleJobSeeker)
			Expect(users.Create(ctx, user)).To(Succeed())

			token := entities.NewRefreshToken(user.ID, "opaque-token", time.Now(), time.Hour)
			token.ID = uuid.NewString()
			Expect(tokens.Create(ctx, token)).To(Succeed())

			err := postgres.NewUnitOfWork(db).WithTransaction(ctx, func(txCtx context.Context) error {
				locked, err := tokens.FindByTokenForUpdate(txCtx, "opaque-token")
				if err != nil {
					return err
				}
				locked.Revoke()
				return tokens.Update(txCtx, locked)
			})
			Expect(err).NotTo(HaveOccurred())

			found, err := tokens.FindByToken(ctx, "opaque-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.IsActive(time.Now())).To(BeFalse())
		})

		It("desfaz a transação em caso de erro", func() {
			user := newUser("rollback@example.com", entities.RoleJobSeeker)
			Expect(users.Create(ctx, user)).To(Succeed())

			err := postgres.NewUnitOfWork(db).WithTransaction(ctx, func(txCtx context.Context) error {
				token := entities.NewRefreshToken(user.ID, "never-committed", time.Now(), time.Hour)
				token.ID = uuid.NewString()
				Expect(tokens.Create(txCtx, token)).To(Succeed())
				return domainerrors.ErrInvalidRefreshToken
			})
			Expect(err).To(MatchError(domainerrors.ErrInvalidRefreshToken))

			found, err := tokens.FindByToken(ctx, "never-committed")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("PasswordResetTokenRepository", func() {
		It("consome o token com a linha bloqueada", func() {
			resets := postgres.NewPasswordResetTokenRepository(db)
			user := newUser("reset@example.com", entities.RoleJobSeeker)
			Expect(users.Create(ctx, user)).To(Succeed())

			token := entities.NewPasswordResetToken(user.ID, "reset-token", time.Now(), time.Hour)
			token.ID = uuid.NewString()
			Expect(resets.Create(ctx, token)).To(Succeed())

			err := postgres.NewUnitOfWork(db).WithTransaction(ctx, func(txCtx context.Context) error {
				locked, err := resets.FindByTokenForUpdate(txCtx, "reset-token")
				if err != nil {
					return err
				}
				locked.MarkUsed()
				return resets.Update(txCtx, locked)
			})
			Expect(err).NotTo(HaveOccurred())

			found, err := resets.FindByToken(ctx, "reset-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.IsValid(time.Now())).To(BeFalse())
		})
	})
})
