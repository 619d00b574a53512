package repositories

import (
	"context"
	"time"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// Métodos Find* retornam (nil, nil) quando o registro não existe.

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, int64, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Role *entities.Role
	Pagination
}

// CompanyRepository define a interface para persistência de empresas
type CompanyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	FindByID(ctx context.Context, id string) (*entities.Company, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entities.Company, error)
	Update(ctx context.Context, company *entities.Company) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters CompanyFilters) ([]*entities.Company, int64, error)
	Count(ctx context.Context) (int64, error)
}

// CompanyFilters contém filtros para listagem de empresas
type CompanyFilters struct {
	Name        string // contém, case-insensitive
	Location    string // contém, case-insensitive
	OwnerUserID string
	Pagination
}

// CategoryRepository define a interface para persistência de categorias
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	FindByID(ctx context.Context, id string) (*entities.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entities.Category, error)
	FindByName(ctx context.Context, name string) (*entities.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Category, error)
	SearchByName(ctx context.Context, fragment string) ([]*entities.Category, error)
	List(ctx context.Context) ([]*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// JobRepository define a interface para persistência de vagas
type JobRepository interface {
	Create(ctx context.Context, job *entities.Job) error
	FindByID(ctx context.Context, id string) (*entities.Job, error)
	Update(ctx context.Context, job *entities.Job) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter JobSearchFilter) ([]*entities.Job, int64, error)
	CountOpen(ctx context.Context, now time.Time) (int64, error)
}

// JobSort define a ordenação da busca de vagas
type JobSort string

const (
	JobSortNewest JobSort = "newest"
	JobSortSalary JobSort = "salary"
)

// JobSearchFilter contém filtros para busca de vagas
type JobSearchFilter struct {
	Query      string // título ou descrição, case-insensitive
	Location   string
	CompanyID  string
	CategoryID string
	JobType    *entities.JobType
	IsRemote   *bool
	MinSalary  *float64
	MaxSalary  *float64
	Tag        string
	IsActive   *bool
	OpenAt     *time.Time // somente vagas ativas e não expiradas neste instante
	Sort       JobSort
	Pagination
}

// JobApplicationRepository define a interface para persistência de candidaturas
type JobApplicationRepository interface {
	Create(ctx context.Context, application *entities.JobApplication) error
	FindByID(ctx context.Context, id string) (*entities.JobApplication, error)
	// FindByIDForUpdate bloqueia a linha até o fim da transação do contexto
	FindByIDForUpdate(ctx context.Context, id string) (*entities.JobApplication, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantUserID string) (*entities.JobApplication, error)
	// UpdateStatus grava application.Status somente se a linha ainda estiver em from
	UpdateStatus(ctx context.Context, application *entities.JobApplication, from entities.ApplicationStatus) error
	// UpdateCoverLetter grava apenas a carta de apresentação
	UpdateCoverLetter(ctx context.Context, application *entities.JobApplication) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter ApplicationFilter) ([]*entities.JobApplication, int64, error)
}

// ApplicationFilter contém filtros para busca de candidaturas
type ApplicationFilter struct {
	JobID           string
	ApplicantUserID string
	Status          *entities.ApplicationStatus
	AppliedAfter    *time.Time
	AppliedBefore   *time.Time
	Pagination
}

// RefreshTokenRepository define a interface para persistência de refresh tokens
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entities.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*entities.RefreshToken, error)
	// FindByTokenForUpdate bloqueia a linha até o fim da transação do contexto
	FindByTokenForUpdate(ctx context.Context, token string) (*entities.RefreshToken, error)
	Update(ctx context.Context, token *entities.RefreshToken) error
	RevokeAllForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// PasswordResetTokenRepository define a interface para tokens de redefinição de senha
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *entities.PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*entities.PasswordResetToken, error)
	// FindByTokenForUpdate bloqueia a linha até o fim da transação do contexto
	FindByTokenForUpdate(ctx context.Context, token string) (*entities.PasswordResetToken, error)
	Update(ctx context.Context, token *entities.PasswordResetToken) error
	InvalidateForUser(ctx context.Context, userID string) error
}
