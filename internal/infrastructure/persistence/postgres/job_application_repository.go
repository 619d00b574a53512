package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// JobApplicationRepository implementa repositories.JobApplicationRepository
type JobApplicationRepository struct {
	db *gorm.DB
}

// NewJobApplicationRepository cria um novo JobApplicationRepository
func NewJobApplicationRepository(db *gorm.DB) repositories.JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

func (r *JobApplicationRepository) Create(ctx context.Context, application *entities.JobApplication) error {
	model := toApplicationModel(application)
	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		// índice único (job_id, applicant_user_id)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrApplicationExists
		}
		return err
	}
	application.ID = model.ID
	return nil
}

func (r *JobApplicationRepository) FindByID(ctx context.Context, id string) (*entities.JobApplication, error) {
	return r.findOne(ctx, dbFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *JobApplicationRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.JobApplication, error) {
	return r.findOne(ctx, dbFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id))
}

func (r *JobApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantUserID string) (*entities.JobApplication, error) {
	return r.findOne(ctx, dbFromContext(ctx, r.db).Where("job_id = ? AND applicant_user_id = ?", jobID, applicantUserID))
}

func (r *JobApplicationRepository) findOne(_ context.Context, query *gorm.DB) (*entities.JobApplication, error) {
	var model JobApplicationModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toApplicationEntity(&model), nil
}

// UpdateStatus usa o status lido como condição. Se outra requisição mudou a
// linha no meio tempo nada é gravado e a transição é recusada.
func (r *JobApplicationRepository) UpdateStatus(ctx context.Context, application *entities.JobApplication, from entities.ApplicationStatus) error {
	result := dbFromContext(ctx, r.db).Model(&JobApplicationModel{}).
		Where("id = ? AND status = ?", application.ID, int(from)).
		Update("status", int(application.Status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &domainerrors.InvalidTransitionError{From: from.String(), To: application.Status.String()}
	}
	return nil
}

func (r *JobApplicationRepository) UpdateCoverLetter(ctx context.Context, application *entities.JobApplication) error {
	result := dbFromContext(ctx, r.db).Model(&JobApplicationModel{}).
		Where("id = ?", application.ID).
		Update("cover_letter", application.CoverLetter)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrApplicationNotFound
	}
	return nil
}

func (r *JobApplicationRepository) Delete(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&JobApplicationModel{}).Error
}

func (r *JobApplicationRepository) Search(ctx context.Context, filter repositories.ApplicationFilter) ([]*entities.JobApplication, int64, error) {
	query := dbFromContext(ctx, r.db).Model(&JobApplicationModel{})

	if filter.JobID != "" {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if filter.ApplicantUserID != "" {
		query = query.Where("applicant_user_id = ?", filter.ApplicantUserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}
	if filter.AppliedAfter != nil {
		query = query.Where("applied_at >= ?", filter.AppliedAfter.Unix())
	}
	if filter.AppliedBefore != nil {
		query = query.Where("applied_at <= ?", filter.AppliedBefore.Unix())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*JobApplicationModel
	page := filter.Pagination.Normalize()
	if err := query.Order("applied_at DESC").Limit(page.PageSize).Offset(page.Offset()).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	applications := make([]*entities.JobApplication, 0, len(models))
	for _, m := range models {
		applications = append(applications, toApplicationEntity(m))
	}
	return applications, total, nil
}

func toApplicationModel(a *entities.JobApplication) *JobApplicationModel {
	return &JobApplicationModel{
		ID:              a.ID,
		JobID:           a.JobID,
		ApplicantUserID: a.ApplicantUserID,
		ResumeURL:       a.ResumeURL,
		CoverLetter:     a.CoverLetter,
		Status:          int(a.Status),
		AppliedAt:       a.AppliedAt.Unix(),
	}
}

func toApplicationEntity(m *JobApplicationModel) *entities.JobApplication {
	return &entities.JobApplication{
		ID:              m.ID,
		JobID:           m.JobID,
		ApplicantUserID: m.ApplicantUserID,
		ResumeURL:       m.ResumeURL,
		CoverLetter:     m.CoverLetter,
		Status:          entities.ApplicationStatus(m.Status),
		AppliedAt:       fromUnix(m.AppliedAt),
	}
}
