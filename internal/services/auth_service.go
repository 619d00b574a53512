package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/domain/valueobjects"
)

// AuthSettings contém as validades dos tokens e o link de redefinição de senha
type AuthSettings struct {
	RefreshTTL time.Duration
	ResetTTL   time.Duration
	ResetURL   string
}

// AuthResult é o par de tokens emitido após login, registro ou refresh
type AuthResult struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
	User               *entities.User
}

// RegisterInput representa os dados de cadastro
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Surname     string
	PhoneNumber *string
	Role        *entities.Role
}

// AuthService emite, renova e revoga credenciais
type AuthService struct {
	userRepo    repositories.UserRepository
	refreshRepo repositories.RefreshTokenRepository
	resetRepo   repositories.PasswordResetTokenRepository
	uow         ports.UnitOfWork
	tokens      ports.TokenIssuer
	hasher      ports.PasswordHasher
	mailer      ports.Mailer
	settings    AuthSettings
	logger      ports.Logger
	now         Clock
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	refreshRepo repositories.RefreshTokenRepository,
	resetRepo repositories.PasswordResetTokenRepository,
	uow ports.UnitOfWork,
	tokens ports.TokenIssuer,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	settings AuthSettings,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		resetRepo:   resetRepo,
		uow:         uow,
		tokens:      tokens,
		hasher:      hasher,
		mailer:      mailer,
		settings:    settings,
		logger:      logger.With("service", "auth"),
		now:         systemClock,
	}
}

// Login valida email e senha e emite um novo par de tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	address, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, address.String())
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Info("login failed", "email", address.String())
		return nil, errors.ErrInvalidCredentials
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return result, nil
}

// Register cria um usuário e já devolve os tokens
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	address, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.NewValidationError("email", "validation.email")
	}

	if !valueobjects.IsComplexPassword(input.Password) {
		return nil, errors.ErrWeakPassword
	}

	role := entities.RoleJobSeeker
	if input.Role != nil {
		role = *input.Role
	}
	if role != entities.RoleJobSeeker && role != entities.RoleEmployer {
		return nil, errors.NewValidationError("role", "validation.invalid_role")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := entities.NewUser(address, hash, role, input.Name, input.Surname, input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	user.ID = newID()

	var result *AuthResult
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.userRepo.FindByEmail(txCtx, address.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrEmailAlreadyExists
		}

		if err := s.userRepo.Create(txCtx, user); err != nil {
			return err
		}

		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role.String())
	return result, nil
}

// Refresh troca um refresh token ativo por um novo par. O access token
// precisa ser válido (assinatura, emissor, audiência e validade) e pertencer
// ao mesmo usuário do refresh token. O token antigo é revogado na mesma transação.
func (s *AuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, errors.ErrInvalidAccessToken
	}

	var result *AuthResult
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		stored, err := s.refreshRepo.FindByTokenForUpdate(txCtx, refreshToken)
		if err != nil {
			return err
		}
		if stored == nil || !stored.IsActive(s.now()) || stored.UserID != claims.UserID {
			return errors.ErrInvalidRefreshToken
		}

		user, err := s.userRepo.FindByID(txCtx, claims.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrInvalidRefreshToken
		}

		stored.Revoke()
		if err := s.refreshRepo.Update(txCtx, stored); err != nil {
			return err
		}

		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("refresh token rotated", "user_id", claims.UserID)
	return result, nil
}

// Revoke invalida um refresh token. Tokens desconhecidos ou já revogados
// não geram erro.
func (s *AuthService) Revoke(ctx context.Context, refreshToken string) error {
	stored, err := s.refreshRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if stored == nil || stored.IsRevoked {
		return nil
	}

	stored.Revoke()
	if err := s.refreshRepo.Update(ctx, stored); err != nil {
		return err
	}

	s.logger.Info("refresh token revoked", "user_id", stored.UserID)
	return nil
}

// ForgotPassword gera um token de redefinição e envia por email.
// Nunca revela se o email está cadastrado.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	address, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil
	}

	user, err := s.userRepo.FindByEmail(ctx, address.String())
	if err != nil {
		return err
	}
	if user == nil {
		s.logger.Debug("password reset requested for unknown email")
		return nil
	}

	opaque, err := s.tokens.GenerateOpaqueToken()
	if err != nil {
		return err
	}
	token := entities.NewPasswordResetToken(user.ID, opaque, s.now(), s.settings.ResetTTL)
	token.ID = newID()

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.resetRepo.InvalidateForUser(txCtx, user.ID); err != nil {
			return err
		}
		return s.resetRepo.Create(txCtx, token)
	})
	if err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email.String(), user.Name, s.resetLink(opaque), token.ExpiresAt); err != nil {
		s.logger.Error("failed to deliver password reset email", "user_id", user.ID, "error", err)
	}
	return nil
}

// ResetPassword troca a senha usando um token de redefinição válido e
// revoga todas as sessões do usuário.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if !valueobjects.IsComplexPassword(newPassword) {
		return errors.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		token, err := s.resetRepo.FindByTokenForUpdate(txCtx, resetToken)
		if err != nil {
			return err
		}
		if token == nil || !token.IsValid(s.now()) {
			return errors.ErrInvalidResetToken
		}

		user, err := s.userRepo.FindByID(txCtx, token.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrInvalidResetToken
		}

		if err := user.SetPasswordHash(hash); err != nil {
			return err
		}
		if err := s.userRepo.Update(txCtx, user); err != nil {
			return err
		}

		token.MarkUsed()
		if err := s.resetRepo.Update(txCtx, token); err != nil {
			return err
		}

		s.logger.Info("password reset", "user_id", user.ID)
		return s.refreshRepo.RevokeAllForUser(txCtx, user.ID)
	})
}

// EnsureAdmin cria o administrador inicial quando o email ainda não existe
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	address, err := valueobjects.NewEmail(email)
	if err != nil {
		return err
	}

	existing, err := s.userRepo.FindByEmail(ctx, address.String())
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if !valueobjects.IsComplexPassword(password) {
		return errors.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	admin, err := entities.NewUser(address, hash, entities.RoleAdmin, "System", "Admin", nil)
	if err != nil {
		return err
	}
	admin.ID = newID()
	admin.ConfirmEmail()

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("admin user created", "user_id", admin.ID)
	return nil
}

// PurgeExpiredTokens remove refresh tokens vencidos
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.refreshRepo.DeleteExpired(ctx, s.now())
}

func (s *AuthService) issueTokens(ctx context.Context, user *entities.User) (*AuthResult, error) {
	accessToken, accessExpiry, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	opaque, err := s.tokens.GenerateOpaqueToken()
	if err != nil {
		return nil, err
	}

	refresh := entities.NewRefreshToken(user.ID, opaque, s.now(), s.settings.RefreshTTL)
	refresh.ID = newID()
	if err := s.refreshRepo.Create(ctx, refresh); err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:        accessToken,
		AccessTokenExpiry:  accessExpiry,
		RefreshToken:       refresh.Token,
		RefreshTokenExpiry: refresh.ExpiresAt,
		User:               user,
	}, nil
}

func (s *AuthService) resetLink(token string) string {
	separator := "?"
	if strings.Contains(s.settings.ResetURL, "?") {
		separator = "&"
	}
	return s.settings.ResetURL + separator + "token=" + url.QueryEscape(token)
}
