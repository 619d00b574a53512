package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// CompanyRepository implementa repositories.CompanyRepository
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository cria um novo CompanyRepository
func NewCompanyRepository(db *gorm.DB) repositories.CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	model := toCompanyModel(company)
	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}
	company.ID = model.ID
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entities.Company, error) {
	var model CompanyModel
	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toCompanyEntity(&model), nil
}

func (r *CompanyRepository) FindByIDs(ctx context.Context, ids []string) ([]*entities.Company, error) {
	if len(ids) == 0 {
		return []*entities.Company{}, nil
	}

	var models []*CompanyModel
	if err := dbFromContext(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	return toCompanyEntities(models), nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *entities.Company) error {
	return dbFromContext(ctx, r.db).Omit(clause.Associations).Save(toCompanyModel(company)).Error
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&CompanyModel{}).Error
}

func (r *CompanyRepository) List(ctx context.Context, filters repositories.CompanyFilters) ([]*entities.Company, int64, error) {
	query := dbFromContext(ctx, r.db).Model(&CompanyModel{})

	if filters.Name != "" {
		query = query.Where("name ILIKE ?", likePattern(filters.Name))
	}
	if filters.Location != "" {
		query = query.Where("location ILIKE ?", likePattern(filters.Location))
	}
	if filters.OwnerUserID != "" {
		query = query.Where("owner_user_id = ?", filters.OwnerUserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*CompanyModel
	page := filters.Pagination.Normalize()
	if err := query.Order("name ASC").Limit(page.PageSize).Offset(page.Offset()).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return toCompanyEntities(models), total, nil
}

func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).Model(&CompanyModel{}).Count(&total).Error
	return total, err
}

func toCompanyModel(c *entities.Company) *CompanyModel {
	return &CompanyModel{
		ID:          c.ID,
		OwnerUserID: c.OwnerUserID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		LogoURL:     c.LogoURL,
		Location:    c.Location,
		CreatedAt:   c.CreatedAt.Unix(),
	}
}

func toCompanyEntity(m *CompanyModel) *entities.Company {
	return &entities.Company{
		ID:          m.ID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		Description: m.Description,
		Website:     m.Website,
		LogoURL:     m.LogoURL,
		Location:    m.Location,
		CreatedAt:   fromUnix(m.CreatedAt),
	}
}

func toCompanyEntities(models []*CompanyModel) []*entities.Company {
	companies := make([]*entities.Company, 0, len(models))
	for _, m := range models {
		companies = append(companies, toCompanyEntity(m))
	}
	return companies
}
