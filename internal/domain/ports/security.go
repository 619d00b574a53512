package ports

import (
	"time"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
)

// AccessClaims são os dados extraídos de um access token válido
type AccessClaims struct {
	UserID    string
	Email     string
	Name      string
	Role      entities.Role
	ExpiresAt time.Time
}

// TokenIssuer emite e valida tokens de acesso (JWT) e gera refresh tokens opacos
type TokenIssuer interface {
	IssueAccessToken(user *entities.User) (token string, expiresAt time.Time, err error)
	ValidateAccessToken(token string) (*AccessClaims, error)
	GenerateOpaqueToken() (string, error)
}

// PasswordHasher abstrai o algoritmo de hash de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
