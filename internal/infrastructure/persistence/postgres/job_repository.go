package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// JobRepository implementa repositories.JobRepository
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository cria um novo JobRepository
func NewJobRepository(db *gorm.DB) repositories.JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *entities.Job) error {
	model := toJobModel(job)
	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}
	job.ID = model.ID
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*entities.Job, error) {
	var model JobModel
	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toJobEntity(&model), nil
}

func (r *JobRepository) Update(ctx context.Context, job *entities.Job) error {
	return dbFromContext(ctx, r.db).Omit(clause.Associations).Save(toJobModel(job)).Error
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&JobModel{}).Error
}

func (r *JobRepository) Search(ctx context.Context, filter repositories.JobSearchFilter) ([]*entities.Job, int64, error) {
	query := applyJobFilter(dbFromContext(ctx, r.db).Model(&JobModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case repositories.JobSortSalary:
		query = query.Order("salary_to DESC NULLS LAST").Order("posted_at DESC")
	default:
		query = query.Order("posted_at DESC")
	}

	var models []*JobModel
	page := filter.Pagination.Normalize()
	if err := query.Limit(page.PageSize).Offset(page.Offset()).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	jobs := make([]*entities.Job, 0, len(models))
	for _, m := range models {
		jobs = append(jobs, toJobEntity(m))
	}
	return jobs, total, nil
}

func (r *JobRepository) CountOpen(ctx context.Context, now time.Time) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).Model(&JobModel{}).
		Where("is_active = ? AND expires_at > ?", true, now.Unix()).
		Count(&total).Error
	return total, err
}

func applyJobFilter(query *gorm.DB, filter repositories.JobSearchFilter) *gorm.DB {
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := likePattern(q)
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", likePattern(filter.Location))
	}
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.JobType != nil {
		query = query.Where("job_type = ?", int(*filter.JobType))
	}
	if filter.IsRemote != nil {
		query = query.Where("is_remote = ?", *filter.IsRemote)
	}
	if filter.MinSalary != nil {
		query = query.Where("COALESCE(salary_to, salary_from) >= ?", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		query = query.Where("COALESCE(salary_from, salary_to) <= ?", *filter.MaxSalary)
	}
	if tag := strings.ToLower(strings.TrimSpace(filter.Tag)); tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.OpenAt != nil {
		query = query.Where("is_active = ? AND expires_at > ?", true, filter.OpenAt.Unix())
	}
	return query
}

func toJobModel(j *entities.Job) *JobModel {
	return &JobModel{
		ID:           j.ID,
		CompanyID:    j.CompanyID,
		CategoryID:   j.CategoryID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		SalaryFrom:   j.SalaryFrom,
		SalaryTo:     j.SalaryTo,
		Location:     j.Location,
		JobType:      int(j.JobType),
		IsRemote:     j.IsRemote,
		Tags:         pq.StringArray(j.Tags),
		PostedAt:     j.PostedAt.Unix(),
		ExpiresAt:    j.ExpiresAt.Unix(),
		IsActive:     j.IsActive,
	}
}

func toJobEntity(m *JobModel) *entities.Job {
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &entities.Job{
		ID:           m.ID,
		CompanyID:    m.CompanyID,
		CategoryID:   m.CategoryID,
		Title:        m.Title,
		Description:  m.Description,
		Requirements: m.Requirements,
		SalaryFrom:   m.SalaryFrom,
		SalaryTo:     m.SalaryTo,
		Location:     m.Location,
		JobType:      entities.JobType(m.JobType),
		IsRemote:     m.IsRemote,
		Tags:         tags,
		PostedAt:     fromUnix(m.PostedAt),
		ExpiresAt:    fromUnix(m.ExpiresAt),
		IsActive:     m.IsActive,
	}
}
