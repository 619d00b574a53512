package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// RefreshTokenRepository implementa repositories.RefreshTokenRepository
type RefreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository cria um novo RefreshTokenRepository
func NewRefreshTokenRepository(db *gorm.DB) repositories.RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *entities.RefreshToken) error {
	model := &RefreshTokenModel{
		ID:        token.ID,
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt.Unix(),
		IsRevoked: token.IsRevoked,
		CreatedAt: token.CreatedAt.Unix(),
	}
	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}
	token.ID = model.ID
	return nil
}

func (r *RefreshTokenRepository) FindByToken(ctx context.Context, token string) (*entities.RefreshToken, error) {
	return r.find(dbFromContext(ctx, r.db), token)
}

func (r *RefreshTokenRepository) FindByTokenForUpdate(ctx context.Context, token string) (*entities.RefreshToken, error) {
	return r.find(dbFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), token)
}

func (r *RefreshTokenRepository) find(db *gorm.DB, token string) (*entities.RefreshToken, error) {
	var model RefreshTokenModel
	if err := db.Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entities.RefreshToken{
		ID:        model.ID,
		Token:     model.Token,
		UserID:    model.UserID,
		ExpiresAt: fromUnix(model.ExpiresAt),
		IsRevoked: model.IsRevoked,
		CreatedAt: fromUnix(model.CreatedAt),
	}, nil
}

// Update persiste apenas o estado de revogação; os demais campos são imutáveis
func (r *RefreshTokenRepository) Update(ctx context.Context, token *entities.RefreshToken) error {
	return dbFromContext(ctx, r.db).Model(&RefreshTokenModel{}).
		Where("id = ?", token.ID).
		Update("is_revoked", token.IsRevoked).Error
}

func (r *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	return dbFromContext(ctx, r.db).Model(&RefreshTokenModel{}).
		Where("user_id = ? AND is_revoked = ?", userID, false).
		Update("is_revoked", true).Error
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("expires_at <= ?", before.Unix()).Delete(&RefreshTokenModel{})
	return result.RowsAffected, result.Error
}

// PasswordResetTokenRepository implementa repositories.PasswordResetTokenRepository
type PasswordResetTokenRepository struct {
	db *gorm.DB
}

// NewPasswordResetTokenRepository cria um novo PasswordResetTokenRepository
func NewPasswordResetTokenRepository(db *gorm.DB) repositories.PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{db: db}
}

func (r *PasswordResetTokenRepository) Create(ctx context.Context, token *entities.PasswordResetToken) error {
	model := &PasswordResetTokenModel{
		ID:        token.ID,
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt.Unix(),
		IsUsed:    token.IsUsed,
		CreatedAt: token.CreatedAt.Unix(),
	}
	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}
	token.ID = model.ID
	return nil
}

func (r *PasswordResetTokenRepository) FindByToken(ctx context.Context, token string) (*entities.PasswordResetToken, error) {
	return r.find(dbFromContext(ctx, r.db), token)
}

func (r *PasswordResetTokenRepository) FindByTokenForUpdate(ctx context.Context, token string) (*entities.PasswordResetToken, error) {
	return r.find(dbFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), token)
}

func (r *PasswordResetTokenRepository) find(db *gorm.DB, token string) (*entities.PasswordResetToken, error) {
	var model PasswordResetTokenModel
	if err := db.Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entities.PasswordResetToken{
		ID:        model.ID,
		Token:     model.Token,
		UserID:    model.UserID,
		ExpiresAt: fromUnix(model.ExpiresAt),
		IsUsed:    model.IsUsed,
		CreatedAt: fromUnix(model.CreatedAt),
	}, nil
}

func (r *PasswordResetTokenRepository) Update(ctx context.Context, token *entities.PasswordResetToken) error {
	return dbFromContext(ctx, r.db).Model(&PasswordResetTokenModel{}).
		Where("id = ?", token.ID).
		Update("is_used", token.IsUsed).Error
}

func (r *PasswordResetTokenRepository) InvalidateForUser(ctx context.Context, userID string) error {
	return dbFromContext(ctx, r.db).Model(&PasswordResetTokenModel{}).
		Where("user_id = ? AND is_used = ?", userID, false).
		Update("is_used", true).Error
}
