package entities

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/valueobjects"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)

// User representa um usuário do sistema
type User struct {
	ID               string
	Email            valueobjects.Email
	PasswordHash     string
	Role             Role
	Name             string
	Surname          string
	PhoneNumber      *string
	IsEmailConfirmed bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // Soft delete
}

// NewUser cria um usuário validado. O hash da senha deve vir pronto.
func NewUser(email valueobjects.Email, passwordHash string, role Role, name, surname string, phone *string) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Name:         strings.TrimSpace(name),
		Surname:      strings.TrimSpace(surname),
		PhoneNumber:  normalizePhone(phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// FullName retorna "Nome Sobrenome"
func (u *User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.Surname)
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// Actor retorna o usuário como ator de uma operação
func (u *User) Actor() Actor {
	return Actor{UserID: u.ID, Role: u.Role}
}

// UpdateEmail troca o email e reseta a confirmação
func (u *User) UpdateEmail(email valueobjects.Email) {
	if email.String() == u.Email.String() {
		return
	}
	u.Email = email
	u.IsEmailConfirmed = false
	u.touch()
}

// SetPasswordHash substitui o hash da senha
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return domainerrors.NewValidationError("password", "validation.required")
	}
	u.PasswordHash = hash
	u.touch()
	return nil
}

// UpdateProfile atualiza nome, sobrenome e telefone
func (u *User) UpdateProfile(name, surname string, phone *string) error {
	updated := *u
	updated.Name = strings.TrimSpace(name)
	updated.Surname = strings.TrimSpace(surname)
	updated.PhoneNumber = normalizePhone(phone)
	if err := updated.Validate(); err != nil {
		return err
	}

	u.Name, u.Surname, u.PhoneNumber = updated.Name, updated.Surname, updated.PhoneNumber
	u.touch()
	return nil
}

// ChangeRole altera o papel do usuário
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return domainerrors.NewValidationError("role", "validation.invalid_role")
	}
	u.Role = role
	u.touch()
	return nil
}

// ConfirmEmail marca o email como confirmado
func (u *User) ConfirmEmail() {
	u.IsEmailConfirmed = true
	u.touch()
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.IsZero() {
		return domainerrors.NewValidationError("email", "validation.required")
	}

	if n := utf8.RuneCountInString(u.Name); n < 2 || n > 50 {
		return domainerrors.NewValidationError("name", "validation.length_between", map[string]interface{}{"Min": 2, "Max": 50})
	}

	if n := utf8.RuneCountInString(u.Surname); n < 2 || n > 50 {
		return domainerrors.NewValidationError("surname", "validation.length_between", map[string]interface{}{"Min": 2, "Max": 50})
	}

	if u.PhoneNumber != nil && !phonePattern.MatchString(*u.PhoneNumber) {
		return domainerrors.NewValidationError("phoneNumber", "validation.phone")
	}

	if !u.Role.IsValid() {
		return domainerrors.NewValidationError("role", "validation.invalid_role")
	}

	return nil
}

// IsValidPhone verifica o formato de um telefone
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func (u *User) touch() {
	u.UpdatedAt = time.Now().UTC()
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	p := strings.TrimSpace(*phone)
	if p == "" {
		return nil
	}
	return &p
}
