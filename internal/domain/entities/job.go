package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

// DefaultJobDuration é a validade padrão de uma vaga
const DefaultJobDuration = 30 * 24 * time.Hour

// JobType é o regime de contratação
type JobType int

const (
	JobTypeFullTime   JobType = 0
	JobTypePartTime   JobType = 1
	JobTypeContract   JobType = 2
	JobTypeInternship JobType = 3
	JobTypeTemporary  JobType = 4
)

var jobTypeNames = [...]string{
	JobTypeFullTime:   "FullTime",
	JobTypePartTime:   "PartTime",
	JobTypeContract:   "Contract",
	JobTypeInternship: "Internship",
	JobTypeTemporary:  "Temporary",
}

func (t JobType) String() string {
	if t.IsValid() {
		return jobTypeNames[t]
	}
	return "Unknown"
}

// IsValid verifica se o tipo é conhecido
func (t JobType) IsValid() bool {
	return t >= JobTypeFullTime && t <= JobTypeTemporary
}

// Job é uma vaga publicada por uma empresa
type Job struct {
	ID           string
	CompanyID    string
	CategoryID   string
	Title        string
	Description  string
	Requirements *string
	SalaryFrom   *float64
	SalaryTo     *float64
	Location     *string
	JobType      JobType
	IsRemote     bool
	Tags         []string
	PostedAt     time.Time
	ExpiresAt    time.Time
	IsActive     bool
}

// JobDetails agrupa os campos editáveis de uma vaga
type JobDetails struct {
	CategoryID   string
	Title        string
	Description  string
	Requirements *string
	SalaryFrom   *float64
	SalaryTo     *float64
	Location     *string
	JobType      JobType
	IsRemote     bool
	Tags         []string
	ExpiresAt    *time.Time
}

// NewJob cria uma vaga ativa. Sem ExpiresAt, a vaga vale por DefaultJobDuration.
func NewJob(companyID string, details JobDetails, now time.Time) (*Job, error) {
	j := &Job{
		CompanyID: companyID,
		PostedAt:  now.UTC(),
		ExpiresAt: now.UTC().Add(DefaultJobDuration),
		IsActive:  true,
	}
	if err := j.Update(details); err != nil {
		return nil, err
	}
	return j, nil
}

// Update valida e aplica os detalhes. Em caso de erro nada é alterado.
func (j *Job) Update(details JobDetails) error {
	title := strings.TrimSpace(details.Title)
	if n := utf8.RuneCountInString(title); n < 2 || n > 200 {
		return domainerrors.NewValidationError("title", "validation.length_between", map[string]interface{}{"Min": 2, "Max": 200})
	}

	description := strings.TrimSpace(details.Description)
	if utf8.RuneCountInString(description) < 10 {
		return domainerrors.NewValidationError("description", "validation.min_length", map[string]interface{}{"Min": 10})
	}

	if details.CategoryID == "" {
		return domainerrors.NewValidationError("categoryId", "validation.required")
	}

	if (details.SalaryFrom != nil && *details.SalaryFrom < 0) || (details.SalaryTo != nil && *details.SalaryTo < 0) {
		return domainerrors.NewValidationError("salaryFrom", "validation.salary_negative")
	}
	if details.SalaryFrom != nil && details.SalaryTo != nil && *details.SalaryFrom > *details.SalaryTo {
		return domainerrors.NewValidationError("salaryFrom", "validation.salary_range")
	}

	if !details.JobType.IsValid() {
		return domainerrors.NewValidationError("jobType", "validation.job_type")
	}

	expiresAt := j.ExpiresAt
	if details.ExpiresAt != nil {
		expiresAt = details.ExpiresAt.UTC()
	}
	if !expiresAt.After(j.PostedAt) {
		return domainerrors.NewValidationError("expiresAt", "validation.expiration_after_posting")
	}

	j.CategoryID = details.CategoryID
	j.Title = title
	j.Description = description
	j.Requirements = trimmedOrNil(details.Requirements)
	j.SalaryFrom = details.SalaryFrom
	j.SalaryTo = details.SalaryTo
	j.Location = trimmedOrNil(details.Location)
	j.JobType = details.JobType
	j.IsRemote = details.IsRemote
	j.Tags = normalizeTags(details.Tags)
	j.ExpiresAt = expiresAt
	return nil
}

// IsExpired indica se a vaga passou da validade
func (j *Job) IsExpired(now time.Time) bool {
	return !now.Before(j.ExpiresAt)
}

// IsOpen indica se a vaga aceita candidaturas
func (j *Job) IsOpen(now time.Time) bool {
	return j.IsActive && !j.IsExpired(now)
}

// Activate reativa a vaga; vagas expiradas não podem ser ativadas
func (j *Job) Activate(now time.Time) error {
	if j.IsExpired(now) {
		return domainerrors.ErrJobExpired
	}
	j.IsActive = true
	return nil
}

// Deactivate encerra a vaga
func (j *Job) Deactivate() {
	j.IsActive = false
}

// ExtendExpiration adia a validade em days dias
func (j *Job) ExtendExpiration(days int) error {
	if days <= 0 {
		return domainerrors.NewValidationError("days", "validation.positive")
	}
	j.ExpiresAt = j.ExpiresAt.AddDate(0, 0, days)
	return nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}
