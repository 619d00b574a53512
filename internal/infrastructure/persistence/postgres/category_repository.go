package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	model := toCategoryModel(category)
	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrCategoryAlreadyExists
		}
		return err
	}
	category.ID = model.ID
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByName compara sem diferenciar maiúsculas
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*entities.Category, error) {
	return r.findOne(ctx, "lower(name) = ?", strings.ToLower(strings.TrimSpace(name)))
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	return r.findOne(ctx, "slug = ?", strings.ToLower(strings.TrimSpace(slug)))
}

func (r *CategoryRepository) findOne(ctx context.Context, query string, arg interface{}) (*entities.Category, error) {
	var model CategoryModel
	if err := dbFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toCategoryEntity(&model), nil
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*entities.Category, error) {
	if len(ids) == 0 {
		return []*entities.Category{}, nil
	}
	var models []*CategoryModel
	if err := dbFromContext(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	return toCategoryEntities(models), nil
}

func (r *CategoryRepository) SearchByName(ctx context.Context, fragment string) ([]*entities.Category, error) {
	var models []*CategoryModel
	err := dbFromContext(ctx, r.db).
		Where("name ILIKE ?", likePattern(fragment)).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toCategoryEntities(models), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var models []*CategoryModel
	if err := dbFromContext(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toCategoryEntities(models), nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	err := dbFromContext(ctx, r.db).Save(toCategoryModel(category)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrCategoryAlreadyExists
	}
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	err := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&CategoryModel{}).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domainerrors.ErrCategoryInUse
	}
	return err
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).Model(&CategoryModel{}).Count(&total).Error
	return total, err
}

func toCategoryModel(c *entities.Category) *CategoryModel {
	return &CategoryModel{ID: c.ID, Name: c.Name, Slug: c.Slug, CreatedAt: c.CreatedAt.Unix()}
}

func toCategoryEntity(m *CategoryModel) *entities.Category {
	return &entities.Category{ID: m.ID, Name: m.Name, Slug: m.Slug, CreatedAt: fromUnix(m.CreatedAt)}
}

func toCategoryEntities(models []*CategoryModel) []*entities.Category {
	categories := make([]*entities.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, toCategoryEntity(m))
	}
	return categories
}
