package services

import (
	"context"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo    repositories.UserRepository
	refreshRepo repositories.RefreshTokenRepository
	companyRepo repositories.CompanyRepository
	hasher      ports.PasswordHasher
	uow         ports.UnitOfWork
	logger      ports.Logger
	now         Clock
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	refreshRepo repositories.RefreshTokenRepository,
	companyRepo repositories.CompanyRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		companyRepo: companyRepo,
		hasher:      hasher,
		uow:         uow,
		logger:      logger.With("service", "user"),
		now:         systemClock,
	}
}

// UpdateProfileInput representa os dados editáveis do perfil
type UpdateProfileInput struct {
	Name        string
	Surname     string
	PhoneNumber *string
}

// ChangePasswordInput representa uma troca de senha
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, actor entities.Actor, id string) (*entities.User, error) {
	if !actor.IsSelfOrAdmin(id) {
		return nil, errors.ErrForbidden
	}
	return s.findUser(ctx, id)
}

// ListUsers lista usuários com filtros
func (s *UserService) ListUsers(ctx context.Context, actor entities.Actor, filters repositories.UserFilters) (Page[*entities.User], error) {
	if !actor.Can(entities.PermissionUsersManage) {
		return Page[*entities.User]{}, errors.ErrForbidden
	}

	filters.Pagination = filters.Pagination.Normalize()
	users, total, err := s.userRepo.List(ctx, filters)
	if err != nil {
		return Page[*entities.User]{}, err
	}
	return newPage(users, total, filters.Pagination), nil
}

// UpdateProfile atualiza nome, sobrenome e telefone
func (s *UserService) UpdateProfile(ctx context.Context, actor entities.Actor, id string, input UpdateProfileInput) (*entities.User, error) {
	if !actor.IsSelfOrAdmin(id) {
		return nil, errors.ErrForbidden
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(input.Name, input.Surname, input.PhoneNumber); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user profile updated", "user_id", id)
	return user, nil
}

// ChangeEmail troca o email mantendo a unicidade
func (s *UserService) ChangeEmail(ctx context.Context, actor entities.Actor, id, email string) (*entities.User, error) {
	if !actor.IsSelfOrAdmin(id) {
		return nil, errors.ErrForbidden
	}

	address, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.NewValidationError("email", "validation.email")
	}

	var user *entities.User
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err = s.findUser(txCtx, id)
		if err != nil {
			return err
		}

		existing, err := s.userRepo.FindByEmail(txCtx, address.String())
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != user.ID {
			return errors.ErrEmailAlreadyExists
		}

		user.UpdateEmail(address)
		return s.userRepo.Update(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user email changed", "user_id", id)
	return user, nil
}

// ChangePassword troca a senha. O próprio usuário precisa informar a senha
// atual; o admin não. Todas as sessões são revogadas.
func (s *UserService) ChangePassword(ctx context.Context, actor entities.Actor, id string, input ChangePasswordInput) error {
	if !actor.IsSelfOrAdmin(id) {
		return errors.ErrForbidden
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}

	if actor.UserID == id && !s.hasher.Compare(user.PasswordHash, input.CurrentPassword) {
		return errors.ErrPasswordMismatch
	}
	if !valueobjects.IsComplexPassword(input.NewPassword) {
		return errors.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	if err := user.SetPasswordHash(hash); err != nil {
		return err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Update(txCtx, user); err != nil {
			return err
		}
		return s.refreshRepo.RevokeAllForUser(txCtx, user.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user password changed", "user_id", id)
	return nil
}

// ChangeRole altera o papel de um usuário (somente admin).
// Um employer que ainda possui empresas não pode deixar de ser employer.
func (s *UserService) ChangeRole(ctx context.Context, actor entities.Actor, id string, role entities.Role) (*entities.User, error) {
	if !actor.Can(entities.PermissionUsersManage) {
		return nil, errors.ErrForbidden
	}

	var user *entities.User
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.findUser(txCtx, id)
		if err != nil {
			return err
		}

		if user.Role == entities.RoleEmployer && role != entities.RoleEmployer {
			if err := s.ensureOwnsNoCompanies(txCtx, id); err != nil {
				return err
			}
		}

		if err := user.ChangeRole(role); err != nil {
			return err
		}
		return s.userRepo.Update(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user role changed", "user_id", id, "role", role.String())
	return user, nil
}

// DeleteUser faz soft delete do usuário e revoga seus refresh tokens.
// Usuários que ainda possuem empresas precisam removê-las antes.
func (s *UserService) DeleteUser(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.IsSelfOrAdmin(id) {
		return errors.ErrForbidden
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.findUser(txCtx, id); err != nil {
			return err
		}
		if err := s.ensureOwnsNoCompanies(txCtx, id); err != nil {
			return err
		}
		if err := s.refreshRepo.RevokeAllForUser(txCtx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

func (s *UserService) findUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ensureOwnsNoCompanies(ctx context.Context, userID string) error {
	_, total, err := s.companyRepo.List(ctx, repositories.CompanyFilters{
		OwnerUserID: userID,
		Pagination:  repositories.Pagination{Page: 1, PageSize: 1},
	})
	if err != nil {
		return err
	}
	if total > 0 {
		return errors.ErrUserOwnsCompanies
	}
	return nil
}
