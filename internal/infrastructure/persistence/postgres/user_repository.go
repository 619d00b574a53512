package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var model UserModel

	// Soft delete: ignorar registros deletados
	err := dbFromContext(ctx, r.db).Where(query, arg).Where("deleted_at IS NULL").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	err := dbFromContext(ctx, r.db).Omit(clause.Associations).Save(r.toModel(user)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrEmailAlreadyExists
	}
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return dbFromContext(ctx, r.db).Model(&UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	var models []*UserModel

	query := dbFromContext(ctx, r.db).Model(&UserModel{}).Where("deleted_at IS NULL")

	if filters.Role != nil {
		query = query.Where("role = ?", int(*filters.Role))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filters.Pagination.Normalize()
	if err := query.Order("created_at DESC").Limit(page.PageSize).Offset(page.Offset()).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	users, err := r.toEntities(models)
	return users, total, err
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var deletedAt *int64
	if user.DeletedAt != nil {
		ts := user.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &UserModel{
		ID:               user.ID,
		Email:            user.Email.String(),
		PasswordHash:     user.PasswordHash,
		Role:             int(user.Role),
		Name:             user.Name,
		Surname:          user.Surname,
		PhoneNumber:      user.PhoneNumber,
		IsEmailConfirmed: user.IsEmailConfirmed,
		CreatedAt:        user.CreatedAt.Unix(),
		UpdatedAt:        user.UpdatedAt.Unix(),
		DeletedAt:        deletedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:               model.ID,
		Email:            email,
		PasswordHash:     model.PasswordHash,
		Role:             entities.Role(model.Role),
		Name:             model.Name,
		Surname:          model.Surname,
		PhoneNumber:      model.PhoneNumber,
		IsEmailConfirmed: model.IsEmailConfirmed,
		CreatedAt:        fromUnix(model.CreatedAt),
		UpdatedAt:        fromUnix(model.UpdatedAt),
		DeletedAt:        fromUnixPtr(model.DeletedAt),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
