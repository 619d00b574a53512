package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

// MaxEmailLength é o tamanho máximo aceito para emails de usuários
const MaxEmailLength = 100

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos
type Email struct {
	value string
}

// NewEmail normaliza (trim + lower) e valida um email
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if len(email) < 3 || len(email) > MaxEmailLength || !emailPattern.MatchString(email) {
		return Email{}, domainerrors.ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// IsZero indica se o email não foi inicializado
func (e Email) IsZero() bool {
	return e.value == ""
}
