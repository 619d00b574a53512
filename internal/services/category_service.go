package services

import (
	"context"
	"strings"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// CategoryService contém a lógica de negócio para categorias
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	logger       ports.Logger
}

// NewCategoryService cria um novo CategoryService
func NewCategoryService(categoryRepo repositories.CategoryRepository, logger ports.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With("service", "category"),
	}
}

// ListCategories lista todas as categorias ordenadas por nome
func (s *CategoryService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.categoryRepo.List(ctx)
}

// GetCategory busca uma categoria por ID
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	return s.found(s.categoryRepo.FindByID(ctx, id))
}

// GetBySlug busca uma categoria pelo slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	return s.found(s.categoryRepo.FindBySlug(ctx, strings.ToLower(slug)))
}

// GetByName busca uma categoria pelo nome (case-insensitive)
func (s *CategoryService) GetByName(ctx context.Context, name string) (*entities.Category, error) {
	return s.found(s.categoryRepo.FindByName(ctx, strings.TrimSpace(name)))
}

// SearchCategories busca categorias cujo nome contém o fragmento
func (s *CategoryService) SearchCategories(ctx context.Context, fragment string) ([]*entities.Category, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return s.categoryRepo.List(ctx)
	}
	return s.categoryRepo.SearchByName(ctx, fragment)
}

// CreateCategory cria uma categoria com nome e slug únicos
func (s *CategoryService) CreateCategory(ctx context.Context, actor entities.Actor, name string) (*entities.Category, error) {
	if !actor.Can(entities.PermissionCategoriesWrite) {
		return nil, errors.ErrForbidden
	}

	category, err := entities.NewCategory(name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, category); err != nil {
		return nil, err
	}
	category.ID = newID()

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created", "category_id", category.ID, "slug", category.Slug)
	return category, nil
}

// UpdateCategory renomeia a categoria e regenera o slug
func (s *CategoryService) UpdateCategory(ctx context.Context, actor entities.Actor, id, name string) (*entities.Category, error) {
	if !actor.Can(entities.PermissionCategoriesWrite) {
		return nil, errors.ErrForbidden
	}

	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.UpdateName(name); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, category); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category updated", "category_id", id)
	return category, nil
}

// DeleteCategory remove uma categoria sem vagas associadas
func (s *CategoryService) DeleteCategory(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.Can(entities.PermissionCategoriesWrite) {
		return errors.ErrForbidden
	}

	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("category deleted", "category_id", id)
	return nil
}

// ensureUnique rejeita nome (case-insensitive) ou slug já usados por outra categoria
func (s *CategoryService) ensureUnique(ctx context.Context, category *entities.Category) error {
	byName, err := s.categoryRepo.FindByName(ctx, category.Name)
	if err != nil {
		return err
	}
	if byName != nil && byName.ID != category.ID {
		return errors.ErrCategoryAlreadyExists
	}

	bySlug, err := s.categoryRepo.FindBySlug(ctx, category.Slug)
	if err != nil {
		return err
	}
	if bySlug != nil && bySlug.ID != category.ID {
		return errors.ErrCategoryAlreadyExists
	}
	return nil
}

func (s *CategoryService) found(category *entities.Category, err error) (*entities.Category, error) {
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.ErrCategoryNotFound
	}
	return category, nil
}
