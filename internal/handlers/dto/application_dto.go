package dto

import (
	"time"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// ApplyRequest representa uma candidatura
type ApplyRequest struct {
	JobID       string  `json:"jobId" binding:"required,uuid"`
	ResumeURL   string  `json:"resumeUrl" binding:"required,url,max=500"`
	CoverLetter *string `json:"coverLetter" binding:"omitempty,max=2000"`
}

// ChangeStatusRequest aceita o status pelo nome ("Screening") ou pelo número
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CoverLetterRequest troca a carta de apresentação
type CoverLetterRequest struct {
	CoverLetter string `json:"coverLetter" binding:"required,max=2000"`
}

// ApplicationSearchQuery contém os filtros de busca de candidaturas
type ApplicationSearchQuery struct {
	JobID           string     `form:"jobId" binding:"omitempty,uuid"`
	ApplicantUserID string     `form:"applicantUserId" binding:"omitempty,uuid"`
	Status          string     `form:"status"`
	AppliedAfter    *time.Time `form:"appliedAfter" time_format:"2006-01-02T15:04:05Z07:00"`
	AppliedBefore   *time.Time `form:"appliedBefore" time_format:"2006-01-02T15:04:05Z07:00"`
	PaginationQuery
}

// ToFilter converte a query em filtro do repositório
func (q ApplicationSearchQuery) ToFilter(status *entities.ApplicationStatus) repositories.ApplicationFilter {
	return repositories.ApplicationFilter{
		JobID:           q.JobID,
		ApplicantUserID: q.ApplicantUserID,
		Status:          status,
		AppliedAfter:    q.AppliedAfter,
		AppliedBefore:   q.AppliedBefore,
		Pagination:      q.ToPagination(),
	}
}

// ApplicationResponse representa a resposta de uma candidatura
type ApplicationResponse struct {
	ID              string    `json:"id"`
	JobID           string    `json:"jobId"`
	ApplicantUserID string    `json:"applicantUserId"`
	ResumeURL       string    `json:"resumeUrl"`
	CoverLetter     *string   `json:"coverLetter,omitempty"`
	Status          int       `json:"status"`
	StatusName      string    `json:"statusName"`
	AppliedAt       time.Time `json:"appliedAt"`
}

// ToApplicationResponse converte uma entidade JobApplication
func ToApplicationResponse(application *entities.JobApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:              application.ID,
		JobID:           application.JobID,
		ApplicantUserID: application.ApplicantUserID,
		ResumeURL:       application.ResumeURL,
		CoverLetter:     application.CoverLetter,
		Status:          int(application.Status),
		StatusName:      application.Status.String(),
		AppliedAt:       application.AppliedAt,
	}
}

// ToApplicationPage converte uma página de candidaturas
func ToApplicationPage(page services.Page[*entities.JobApplication]) PaginatedResponse[ApplicationResponse] {
	items := make([]ApplicationResponse, len(page.Items))
	for i, application := range page.Items {
		items[i] = ToApplicationResponse(application)
	}
	return toPaginated(page, items)
}
