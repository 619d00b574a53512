package services_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	portmocks "github.com/rafabene/hiresphere-backend/internal/domain/ports/mocks"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories/mocks"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/logging"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/security"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	const password = "Str0ng!Pass"

	var (
		ctx         context.Context
		ctrl        *gomock.Controller
		userRepo    *mocks.MockUserRepository
		refreshRepo *mocks.MockRefreshTokenRepository
		resetRepo   *mocks.MockPasswordResetTokenRepository
		mailer      *portmocks.MockMailer
		uow         *inlineUnitOfWork
		hasher      *security.BcryptHasher
		jwtManager  *security.JWTManager
		service     *services.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		userRepo = mocks.NewMockUserRepository(ctrl)
		refreshRepo = mocks.NewMockRefreshTokenRepository(ctrl)
		resetRepo = mocks.NewMockPasswordResetTokenRepository(ctrl)
		mailer = portmocks.NewMockMailer(ctrl)
		uow = &inlineUnitOfWork{}
		hasher = security.NewBcryptHasher(bcrypt.MinCost)
		jwtManager = newTestJWTManager()

		service = services.NewAuthService(
			userRepo, refreshRepo, resetRepo, uow, jwtManager, hasher, mailer,
			services.AuthSettings{
				RefreshTTL: 7 * 24 * time.Hour,
				ResetTTL:   time.Hour,
				ResetURL:   "https://app.example.com/reset-password",
			},
			logging.NewDiscardLogger(),
		)
	})

	registeredUser := func(id string, role entities.Role) *entities.User {
		user := newTestUser(id, role)
		hash, err := hasher.Hash(password)
		Expect(err).NotTo(HaveOccurred())
		user.PasswordHash = hash
		return user
	}

	Describe("Register", func() {
		It("cria o usuário como JobSeeker e emite tokens", func() {
			userRepo.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
			userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, u *entities.User) error {
					Expect(u.ID).NotTo(BeEmpty())
					Expect(u.PasswordHash).NotTo(Equal(password))
					return nil
				})
			refreshRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			result, err := service.Register(ctx, services.RegisterInput{
				Email: "Ana@Example.com", Password: password, Name: "Ana", Surname: "Silva",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.Role).To(Equal(entities.RoleJobSeeker))
			Expect(result.User.Email.String()).To(Equal("ana@example.com"))
			Expect(result.AccessToken).NotTo(BeEmpty())
			Expect(result.RefreshToken).NotTo(BeEmpty())
			Expect(uow.calls).To(Equal(1))
		})

		It("rejeita o segundo cadastro com o mesmo email", func() {
			stored := map[string]*entities.User{}
			userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, email string) (*entities.User, error) {
					return stored[email], nil
				}).Times(2)
			userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, u *entities.User) error {
					stored[u.Email.String()] = u
					return nil
				}).Times(1)
			refreshRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

			input := services.RegisterInput{Email: "dup@example.com", Password: password, Name: "Dup", Surname: "User"}
			_, err := service.Register(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		})

		It("rejeita senha fraca", func() {
			_, err := service.Register(ctx, services.RegisterInput{
				Email: "weak@example.com", Password: "abc", Name: "Weak", Surname: "User",
			})
			Expect(err).To(MatchError(domainerrors.ErrWeakPassword))
		})

		It("não permite auto cadastro como Admin", func() {
			_, err := service.Register(ctx, services.RegisterInput{
				Email: "root@example.com", Password: password, Name: "Root", Surname: "User",
				Role: ptr(entities.RoleAdmin),
			})
			Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
		})

		It("aceita cadastro como Employer", func() {
			userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
			userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			refreshRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			result, err := service.Register(ctx, services.RegisterInput{
				Email: "boss@example.com", Password: password, Name: "Boss", Surname: "User",
				Role: ptr(entities.RoleEmployer),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.Role).To(Equal(entities.RoleEmployer))
		})
	})

	Describe("Login", func() {
		It("emite access token e refresh token válidos", func() {
			user := registeredUser("user-1", entities.RoleJobSeeker)
			userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email.String()).Return(user, nil)

			var persisted *entities.RefreshToken
			refreshRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, t *entities.RefreshToken) error {
					persisted = t
					return nil
				})

			before := time.Now()
			result, err := service.Login(ctx, user.Email.String(), password)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.AccessToken).NotTo(BeEmpty())
			Expect(result.AccessTokenExpiry).To(BeTemporally(">", before))
			Expect(result.RefreshTokenExpiry).To(BeTemporally(">", before))
			Expect(persisted.Token).To(Equal(result.RefreshToken))
			Expect(persisted.IsRevoked).To(BeFalse())

			claims, err := jwtManager.ValidateAccessToken(result.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal("user-1"))
			Expect(claims.Role).To(Equal(entities.RoleJobSeeker))
		})

		It("falha com senha errada", func() {
			user := registeredUser("user-1", entities.RoleJobSeeker)
			userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

			_, err := service.Login(ctx, user.Email.String(), "Wr0ng!Pass")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})

		It("falha com email desconhecido", func() {
			userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

			_, err := service.Login(ctx, "nobody@example.com", password)
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})

	Describe("Refresh", func() {
		var (
			user        *entities.User
			accessToken string
			stored      *entities.RefreshToken
		)

		BeforeEach(func() {
			user = registeredUser("user-1", entities.RoleJobSeeker)
			var err error
			accessToken, _, err = jwtManager.IssueAccessToken(user)
			Expect(err).NotTo(HaveOccurred())
			stored = entities.NewRefreshToken(user.ID, "refresh-1", time.Now(), time.Hour)
		})

		It("revoga o token antigo e emite um novo par", func() {
			refreshRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "refresh-1").Return(stored, nil)
			userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
			refreshRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)
			refreshRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			result, err := service.Refresh(ctx, accessToken, "refresh-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(stored.IsRevoked).To(BeTrue())
			Expect(result.RefreshToken).NotTo(Equal("refresh-1"))
			Expect(uow.calls).To(Equal(1))
		})

		It("rejeita token revogado", func() {
			stored.Revoke()
			refreshRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "refresh-1").Return(stored, nil)

			_, err := service.Refresh(ctx, accessToken, "refresh-1")
			Expect(err).To(MatchError(domainerrors.ErrInvalidRefreshToken))
		})

		It("rejeita token de outro usuário", func() {
			stored.UserID = "someone-else"
			refreshRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "refresh-1").Return(stored, nil)

			_, err := service.Refresh(ctx, accessToken, "refresh-1")
			Expect(err).To(MatchError(domainerrors.ErrInvalidRefreshToken))
		})

		It("rejeita access token inválido", func() {
			_, err := service.Refresh(ctx, "not-a-jwt", "refresh-1")
			Expect(err).To(MatchError(domainerrors.ErrInvalidAccessToken))
		})
	})

	Describe("Revoke", func() {
		It("marca o token como revogado", func() {
			stored := entities.NewRefreshToken("user-1", "refresh-1", time.Now(), time.Hour)
			refreshRepo.EXPECT().FindByToken(gomock.Any(), "refresh-1").Return(stored, nil)
			refreshRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

			Expect(service.Revoke(ctx, "refresh-1")).To(Succeed())
			Expect(stored.IsRevoked).To(BeTrue())
		})

		It("é idempotente para tokens desconhecidos ou já revogados", func() {
			revoked := entities.NewRefreshToken("user-1", "refresh-2", time.Now(), time.Hour)
			revoked.Revoke()
			refreshRepo.EXPECT().FindByToken(gomock.Any(), "unknown").Return(nil, nil)
			refreshRepo.EXPECT().FindByToken(gomock.Any(), "refresh-2").Return(revoked, nil)

			Expect(service.Revoke(ctx, "unknown")).To(Succeed())
			Expect(service.Revoke(ctx, "refresh-2")).To(Succeed())
		})
	})

	Describe("ForgotPassword", func() {
		It("não revela emails desconhecidos", func() {
			userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

			Expect(service.ForgotPassword(ctx, "nobody@example.com")).To(Succeed())
		})

		It("gera um novo token e envia o link por email", func() {
			user := registeredUser("user-1", entities.RoleJobSeeker)
			userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email.String()).Return(user, nil)
			resetRepo.EXPECT().InvalidateForUser(gomock.Any(), user.ID).Return(nil)

			var token *entities.PasswordResetToken
			resetRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, t *entities.PasswordResetToken) error {
					token = t
					return nil
				})
			mailer.EXPECT().SendPasswordReset(gomock.Any(), user.Email.String(), user.Name, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _, _, link string, _ time.Time) error {
					Expect(link).To(HavePrefix("https://app.example.com/reset-password?token="))
					return nil
				})

			Expect(service.ForgotPassword(ctx, user.Email.String())).To(Succeed())
			Expect(token.UserID).To(Equal(user.ID))
			Expect(token.IsUsed).To(BeFalse())
		})

		It("não falha quando o envio do email falha", func() {
			user := registeredUser("user-1", entities.RoleJobSeeker)
			userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
			resetRepo.EXPECT().InvalidateForUser(gomock.Any(), gomock.Any()).Return(nil)
			resetRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			mailer.EXPECT().SendPasswordReset(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("smtp down"))

			Expect(service.ForgotPassword(ctx, user.Email.String())).To(Succeed())
		})
	})

	Describe("ResetPassword", func() {
		It("troca a senha, consome o token e revoga as sessões", func() {
			user := registeredUser("user-1", entities.RoleJobSeeker)
			oldHash := user.PasswordHash
			token := entities.NewPasswordResetToken(user.ID, "reset-1", time.Now(), time.Hour)

			resetRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "reset-1").Return(token, nil)
			userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
			userRepo.EXPECT().Update(gomock.Any(), user).Return(nil)
			resetRepo.EXPECT().Update(gomock.Any(), token).Return(nil)
			refreshRepo.EXPECT().RevokeAllForUser(gomock.Any(), user.ID).Return(nil)

			Expect(service.ResetPassword(ctx, "reset-1", "N3w!Password")).To(Succeed())
			Expect(token.IsUsed).To(BeTrue())
			Expect(user.PasswordHash).NotTo(Equal(oldHash))
			Expect(hasher.Compare(user.PasswordHash, "N3w!Password")).To(BeTrue())
		})

		It("rejeita token já usado", func() {
			token := entities.NewPasswordResetToken("user-1", "reset-1", time.Now(), time.Hour)
			token.MarkUsed()
			resetRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "reset-1").Return(token, nil)

			err := service.ResetPassword(ctx, "reset-1", "N3w!Password")
			Expect(err).To(MatchError(domainerrors.ErrInvalidResetToken))
		})

		It("aceita o mesmo token uma única vez", func() {
			user := registeredUser("user-1", entities.RoleJobSeeker)
			token := entities.NewPasswordResetToken(user.ID, "reset-1", time.Now(), time.Hour)

			resetRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "reset-1").Return(token, nil).Times(2)
			userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
			userRepo.EXPECT().Update(gomock.Any(), user).Return(nil)
			resetRepo.EXPECT().Update(gomock.Any(), token).Return(nil)
			refreshRepo.EXPECT().RevokeAllForUser(gomock.Any(), user.ID).Return(nil)

			Expect(service.ResetPassword(ctx, "reset-1", "N3w!Password")).To(Succeed())
			Expect(service.ResetPassword(ctx, "reset-1", "Outr4!Senha")).To(MatchError(domainerrors.ErrInvalidResetToken))
			Expect(hasher.Compare(user.PasswordHash, "N3w!Password")).To(BeTrue())
			Expect(uow.calls).To(Equal(2))
		})
	})

	Describe("EnsureAdmin", func() {
		It("cria o admin quando o email não existe", func() {
			userRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(nil, nil)
			userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, u *entities.User) error {
					Expect(u.Role).To(Equal(entities.RoleAdmin))
					Expect(u.IsEmailConfirmed).To(BeTrue())
					return nil
				})

			Expect(service.EnsureAdmin(ctx, "admin@example.com", password)).To(Succeed())
		})

		It("não faz nada quando o admin já existe", func() {
			userRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").
				Return(registeredUser("admin", entities.RoleAdmin), nil)

			Expect(service.EnsureAdmin(ctx, "admin@example.com", password)).To(Succeed())
		})

		It("ignora configuração vazia", func() {
			Expect(service.EnsureAdmin(ctx, "", "")).To(Succeed())
		})
	})
})
