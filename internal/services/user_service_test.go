package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories/mocks"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/logging"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/security"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		ctx         context.Context
		userRepo    *mocks.MockUserRepository
		refreshRepo *mocks.MockRefreshTokenRepository
		companyRepo *mocks.MockCompanyRepository
		hasher      *security.BcryptHasher
		service     *services.UserService
		user        *entities.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl := gomock.NewController(GinkgoT())
		userRepo = mocks.NewMockUserRepository(ctrl)
		refreshRepo = mocks.NewMockRefreshTokenRepository(ctrl)
		companyRepo = mocks.NewMockCompanyRepository(ctrl)
		hasher = security.NewBcryptHasher(bcrypt.MinCost)
		service = services.NewUserService(userRepo, refreshRepo, companyRepo, hasher, &inlineUnitOfWork{}, logging.NewDiscardLogger())

		user = newTestUser("user-1", entities.RoleJobSeeker)
		hash, err := hasher.Hash("Old!Passw0rd")
		Expect(err).NotTo(HaveOccurred())
		user.PasswordHash = hash
	})

	It("impede que um usuário leia outro", func() {
		_, err := service.GetUser(ctx, entities.Actor{UserID: "user-2", Role: entities.RoleJobSeeker}, user.ID)
		Expect(err).To(MatchError(domainerrors.ErrForbidden))
	})

	It("retorna not found para admin buscando usuário inexistente", func() {
		userRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

		_, err := service.GetUser(ctx, entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}, "missing")
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
	})

	Describe("ChangePassword", func() {
		It("exige a senha atual quando é o próprio usuário", func() {
			userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

			err := service.ChangePassword(ctx, user.Actor(), user.ID, services.ChangePasswordInput{
				CurrentPassword: "wrong", NewPassword: "N3w!Password",
			})
			Expect(err).To(MatchError(domainerrors.ErrPasswordMismatch))
		})

		It("troca a senha e revoga as sessões", func() {
			userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
			userRepo.EXPECT().Update(gomock.Any(), user).Return(nil)
			refreshRepo.EXPECT().RevokeAllForUser(gomock.Any(), user.ID).Return(nil)

			err := service.ChangePassword(ctx, user.Actor(), user.ID, services.ChangePasswordInput{
				CurrentPassword: "Old!Passw0rd", NewPassword: "N3w!Password",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(hasher.Compare(user.PasswordHash, "N3w!Password")).To(BeTrue())
		})
	})

	It("rejeita email já usado por outro usuário", func() {
		other := newTestUser("user-2", entities.RoleJobSeeker)
		userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		userRepo.EXPECT().FindByEmail(gomock.Any(), other.Email.String()).Return(other, nil)

		_, err := service.ChangeEmail(ctx, user.Actor(), user.ID, other.Email.String())
		Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
	})

	Describe("ChangeRole", func() {
		var (
			admin    entities.Actor
			employer *entities.User
		)

		ownerFilter := func(id string) repositories.CompanyFilters {
			return repositories.CompanyFilters{
				OwnerUserID: id,
				Pagination:  repositories.Pagination{Page: 1, PageSize: 1},
			}
		}

		BeforeEach(func() {
			admin = entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
			employer = newTestUser("employer-1", entities.RoleEmployer)
		})

		It("permite somente ao admin mudar o papel", func() {
			_, err := service.ChangeRole(ctx, user.Actor(), user.ID, entities.RoleAdmin)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("não rebaixa employer que ainda possui empresas", func() {
			company := &entities.Company{ID: "company-1", OwnerUserID: employer.ID}
			userRepo.EXPECT().FindByID(gomock.Any(), employer.ID).Return(employer, nil)
			companyRepo.EXPECT().List(gomock.Any(), ownerFilter(employer.ID)).
				Return([]*entities.Company{company}, int64(1), nil)

			_, err := service.ChangeRole(ctx, admin, employer.ID, entities.RoleJobSeeker)
			Expect(err).To(MatchError(domainerrors.ErrUserOwnsCompanies))
			Expect(employer.Role).To(Equal(entities.RoleEmployer))
		})

		It("rebaixa employer sem empresas", func() {
			userRepo.EXPECT().FindByID(gomock.Any(), employer.ID).Return(employer, nil)
			companyRepo.EXPECT().List(gomock.Any(), ownerFilter(employer.ID)).Return(nil, int64(0), nil)
			userRepo.EXPECT().Update(gomock.Any(), employer).Return(nil)

			updated, err := service.ChangeRole(ctx, admin, employer.ID, entities.RoleJobSeeker)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(entities.RoleJobSeeker))
		})

		It("promove job seeker sem consultar empresas", func() {
			userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
			userRepo.EXPECT().Update(gomock.Any(), user).Return(nil)

			updated, err := service.ChangeRole(ctx, admin, user.ID, entities.RoleEmployer)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(entities.RoleEmployer))
		})
	})

	Describe("DeleteUser", func() {
		It("remove o usuário e revoga seus tokens", func() {
			userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
			companyRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)
			refreshRepo.EXPECT().RevokeAllForUser(gomock.Any(), user.ID).Return(nil)
			userRepo.EXPECT().Delete(gomock.Any(), user.ID).Return(nil)

			Expect(service.DeleteUser(ctx, user.Actor(), user.ID)).To(Succeed())
		})

		It("bloqueia a remoção de quem ainda possui empresas", func() {
			employer := newTestUser("employer-1", entities.RoleEmployer)
			userRepo.EXPECT().FindByID(gomock.Any(), employer.ID).Return(employer, nil)
			companyRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(2), nil)

			err := service.DeleteUser(ctx, employer.Actor(), employer.ID)
			Expect(err).To(MatchError(domainerrors.ErrUserOwnsCompanies))
		})
	})
})
