package postgres

import "github.com/lib/pq"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID               string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email            string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_email_active,where:deleted_at IS NULL"`
	PasswordHash     string  `gorm:"type:varchar(255);not null"`
	Role             int     `gorm:"type:smallint;not null;index"`
	Name             string  `gorm:"type:varchar(50);not null"`
	Surname          string  `gorm:"type:varchar(50);not null"`
	PhoneNumber      *string `gorm:"type:varchar(20)"`
	IsEmailConfirmed bool    `gorm:"not null;default:false"`
	CreatedAt        int64   `gorm:"autoCreateTime;index"`
	UpdatedAt        int64   `gorm:"autoUpdateTime"`
	DeletedAt        *int64  `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// CompanyModel é o model GORM para empresas
type CompanyModel struct {
	ID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerUserID string  `gorm:"type:uuid;not null;index"`
	Name        string  `gorm:"type:varchar(100);not null;index"`
	Description *string `gorm:"type:text"`
	Website     *string `gorm:"type:varchar(500)"`
	LogoURL     *string `gorm:"type:varchar(500)"`
	Location    *string `gorm:"type:varchar(200)"`
	CreatedAt   int64   `gorm:"autoCreateTime"`

	Owner UserModel `gorm:"foreignKey:OwnerUserID;constraint:OnDelete:CASCADE"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name_lower,expression:lower(name)"`
	Slug      string `gorm:"type:varchar(120);not null;uniqueIndex"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// JobModel é o model GORM para vagas
type JobModel struct {
	ID           string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    string         `gorm:"type:uuid;not null;index"`
	CategoryID   string         `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"type:varchar(200);not null"`
	Description  string         `gorm:"type:text;not null"`
	Requirements *string        `gorm:"type:text"`
	SalaryFrom   *float64       `gorm:"type:numeric(12,2)"`
	SalaryTo     *float64       `gorm:"type:numeric(12,2)"`
	Location     *string        `gorm:"type:varchar(200)"`
	JobType      int            `gorm:"type:smallint;not null;index"`
	IsRemote     bool           `gorm:"not null;default:false"`
	Tags         pq.StringArray `gorm:"type:text[]"`
	PostedAt     int64          `gorm:"not null;index"`
	ExpiresAt    int64          `gorm:"not null;index"`
	IsActive     bool           `gorm:"not null;default:true;index"`

	Company  CompanyModel  `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Category CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

func (JobModel) TableName() string {
	return "jobs"
}

// JobApplicationModel é o model GORM para candidaturas
type JobApplicationModel struct {
	ID              string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JobID           string  `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant"`
	ApplicantUserID string  `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant;index"`
	ResumeURL       string  `gorm:"type:varchar(500);not null"`
	CoverLetter     *string `gorm:"type:varchar(2000)"`
	Status          int     `gorm:"type:smallint;not null;default:0;index"`
	AppliedAt       int64   `gorm:"not null;index"`

	Job       JobModel  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Applicant UserModel `gorm:"foreignKey:ApplicantUserID;constraint:OnDelete:CASCADE"`
}

func (JobApplicationModel) TableName() string {
	return "job_applications"
}

// RefreshTokenModel é o model GORM para refresh tokens
type RefreshTokenModel struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID    string `gorm:"type:uuid;not null;index"`
	ExpiresAt int64  `gorm:"not null;index"`
	IsRevoked bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// PasswordResetTokenModel é o model GORM para tokens de redefinição de senha
type PasswordResetTokenModel struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID    string `gorm:"type:uuid;not null;index"`
	ExpiresAt int64  `gorm:"not null"`
	IsUsed    bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

// AllModels lista os models na ordem de migração
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&CompanyModel{},
		&CategoryModel{},
		&JobModel{},
		&JobApplicationModel{},
		&RefreshTokenModel{},
		&PasswordResetTokenModel{},
	}
}
