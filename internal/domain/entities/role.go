package entities

import "strings"

// Role representa o papel de um usuário no sistema.
// Os valores numéricos são persistidos e expostos na API.
type Role int

const (
	RoleAdmin     Role = 0
	RoleEmployer  Role = 1
	RoleJobSeeker Role = 2
)

var roleNames = map[Role]string{
	RoleAdmin:     "Admin",
	RoleEmployer:  "Employer",
	RoleJobSeeker: "JobSeeker",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole converte o nome de um role (case-insensitive)
func ParseRole(name string) (Role, bool) {
	for role, n := range roleNames {
		if strings.EqualFold(n, name) {
			return role, true
		}
	}
	return 0, false
}

// Permission representa uma permissão específica
type Permission string

const (
	PermissionUsersManage        Permission = "users.manage"
	PermissionCompaniesWrite     Permission = "companies.write"
	PermissionCategoriesWrite    Permission = "categories.write"
	PermissionJobsWrite          Permission = "jobs.write"
	PermissionApplicationsCreate Permission = "applications.create"
	PermissionApplicationsReview Permission = "applications.review"
	PermissionApplicationsRead   Permission = "applications.read_all"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionUsersManage,
		PermissionCompaniesWrite,
		PermissionCategoriesWrite,
		PermissionJobsWrite,
		PermissionApplicationsReview,
		PermissionApplicationsRead,
	},
	RoleEmployer: {
		PermissionCompaniesWrite,
		PermissionJobsWrite,
		PermissionApplicationsReview,
	},
	RoleJobSeeker: {
		PermissionApplicationsCreate,
	},
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}

// Actor identifica quem está executando uma operação
type Actor struct {
	UserID string
	Role   Role
}

// IsAdmin verifica se o ator é administrador
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Can verifica se o ator tem uma permissão
func (a Actor) Can(permission Permission) bool {
	return a.Role.HasPermission(permission)
}

// IsSelfOrAdmin verifica se o ator é o próprio usuário ou um admin
func (a Actor) IsSelfOrAdmin(userID string) bool {
	return a.IsAdmin() || a.UserID == userID
}
