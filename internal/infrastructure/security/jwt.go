package security

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/config"
)

// refreshTokenBytes é o tamanho em bytes dos tokens opacos
const refreshTokenBytes = 64

// Claims é o payload do access token
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager implementa ports.TokenIssuer com HS256
type JWTManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewJWTManager cria um JWTManager a partir da configuração
func NewJWTManager(cfg config.JWTConfig) *JWTManager {
	return &JWTManager{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.AccessTTL,
		now:      time.Now,
	}
}

// IssueAccessToken assina um access token para o usuário
func (m *JWTManager) IssueAccessToken(user *entities.User) (string, time.Time, error) {
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Email: user.Email.String(),
		Name:  user.FullName(),
		Role:  user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        randomID(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateAccessToken verifica assinatura, emissor, audiência e validade
func (m *JWTManager) ValidateAccessToken(tokenString string) (*ports.AccessClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidAccessToken
	}

	role, ok := entities.ParseRole(claims.Role)
	if !ok || claims.Subject == "" {
		return nil, domainerrors.ErrInvalidAccessToken
	}

	return &ports.AccessClaims{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// GenerateOpaqueToken gera 64 bytes aleatórios em base64
func (m *JWTManager) GenerateOpaqueToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.New("failed to generate random token")
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}

func randomID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
