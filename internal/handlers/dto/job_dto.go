package dto

import (
	"time"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// JobRequest representa a criação ou atualização de uma vaga
type JobRequest struct {
	CompanyID    string     `json:"companyId" binding:"omitempty,uuid"`
	CategoryID   string     `json:"categoryId" binding:"required,uuid"`
	Title        string     `json:"title" binding:"required,min=2,max=200"`
	Description  string     `json:"description" binding:"required,min=10"`
	Requirements *string    `json:"requirements"`
	SalaryFrom   *float64   `json:"salaryFrom" binding:"omitempty,gte=0"`
	SalaryTo     *float64   `json:"salaryTo" binding:"omitempty,gte=0"`
	Location     *string    `json:"location" binding:"omitempty,max=200"`
	JobType      int        `json:"jobType" binding:"gte=0,lte=4"`
	IsRemote     bool       `json:"isRemote"`
	Tags         []string   `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

// Details extrai os campos editáveis
func (r JobRequest) Details() entities.JobDetails {
	return entities.JobDetails{
		CategoryID:   r.CategoryID,
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		SalaryFrom:   r.SalaryFrom,
		SalaryTo:     r.SalaryTo,
		Location:     r.Location,
		JobType:      entities.JobType(r.JobType),
		IsRemote:     r.IsRemote,
		Tags:         r.Tags,
		ExpiresAt:    r.ExpiresAt,
	}
}

// ExtendJobRequest adia a validade de uma vaga
type ExtendJobRequest struct {
	Days int `json:"days" binding:"required,min=1,max=365"`
}

// JobSearchQuery contém os filtros de busca de vagas
type JobSearchQuery struct {
	Query      string   `form:"q"`
	Location   string   `form:"location"`
	CompanyID  string   `form:"companyId" binding:"omitempty,uuid"`
	CategoryID string   `form:"categoryId" binding:"omitempty,uuid"`
	JobType    *int     `form:"jobType" binding:"omitempty,gte=0,lte=4"`
	IsRemote   *bool    `form:"isRemote"`
	MinSalary  *float64 `form:"minSalary" binding:"omitempty,gte=0"`
	MaxSalary  *float64 `form:"maxSalary" binding:"omitempty,gte=0"`
	Tag        string   `form:"tag"`
	IsActive   *bool    `form:"isActive"`
	Sort       string   `form:"sort" binding:"omitempty,oneof=newest salary"`
	PaginationQuery
}

// ToFilter converte a query em filtro do repositório
func (q JobSearchQuery) ToFilter() repositories.JobSearchFilter {
	filter := repositories.JobSearchFilter{
		Query:      q.Query,
		Location:   q.Location,
		CompanyID:  q.CompanyID,
		CategoryID: q.CategoryID,
		IsRemote:   q.IsRemote,
		MinSalary:  q.MinSalary,
		MaxSalary:  q.MaxSalary,
		Tag:        q.Tag,
		IsActive:   q.IsActive,
		Sort:       repositories.JobSort(q.Sort),
		Pagination: q.ToPagination(),
	}
	if q.JobType != nil {
		jobType := entities.JobType(*q.JobType)
		filter.JobType = &jobType
	}
	return filter
}

// JobResponse representa a resposta de uma vaga
type JobResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	CategoryID   string    `json:"categoryId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements *string   `json:"requirements,omitempty"`
	SalaryFrom   *float64  `json:"salaryFrom,omitempty"`
	SalaryTo     *float64  `json:"salaryTo,omitempty"`
	Location     *string   `json:"location,omitempty"`
	JobType      int       `json:"jobType"`
	JobTypeName  string    `json:"jobTypeName"`
	IsRemote     bool      `json:"isRemote"`
	Tags         []string  `json:"tags"`
	PostedAt     time.Time `json:"postedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
	IsActive     bool      `json:"isActive"`
}

// ToJobResponse converte uma entidade Job
func ToJobResponse(job *entities.Job) JobResponse {
	tags := job.Tags
	if tags == nil {
		tags = []string{}
	}
	return JobResponse{
		ID:           job.ID,
		CompanyID:    job.CompanyID,
		CategoryID:   job.CategoryID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		SalaryFrom:   job.SalaryFrom,
		SalaryTo:     job.SalaryTo,
		Location:     job.Location,
		JobType:      int(job.JobType),
		JobTypeName:  job.JobType.String(),
		IsRemote:     job.IsRemote,
		Tags:         tags,
		PostedAt:     job.PostedAt,
		ExpiresAt:    job.ExpiresAt,
		IsActive:     job.IsActive,
	}
}

// ToJobPage converte uma página de vagas
func ToJobPage(page services.Page[*entities.Job]) PaginatedResponse[JobResponse] {
	items := make([]JobResponse, len(page.Items))
	for i, job := range page.Items {
		items[i] = ToJobResponse(job)
	}
	return toPaginated(page, items)
}
