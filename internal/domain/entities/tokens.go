package entities

import "time"

// RefreshToken é um token opaco de longa duração usado para renovar o access token
type RefreshToken struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
	IsRevoked bool
	CreatedAt time.Time
}

// NewRefreshToken cria um refresh token válido por ttl
func NewRefreshToken(userID, token string, now time.Time, ttl time.Duration) *RefreshToken {
	return &RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.UTC().Add(ttl),
		CreatedAt: now.UTC(),
	}
}

// IsExpired indica se o token passou da validade
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// IsActive indica se o token pode ser usado
func (t *RefreshToken) IsActive(now time.Time) bool {
	return !t.IsRevoked && !t.IsExpired(now)
}

// Revoke invalida o token
func (t *RefreshToken) Revoke() {
	t.IsRevoked = true
}

// PasswordResetToken é um token de uso único para redefinição de senha
type PasswordResetToken struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
	IsUsed    bool
	CreatedAt time.Time
}

// NewPasswordResetToken cria um token de redefinição válido por ttl
func NewPasswordResetToken(userID, token string, now time.Time, ttl time.Duration) *PasswordResetToken {
	return &PasswordResetToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.UTC().Add(ttl),
		CreatedAt: now.UTC(),
	}
}

// IsValid indica se o token ainda pode ser usado
func (t *PasswordResetToken) IsValid(now time.Time) bool {
	return !t.IsUsed && now.Before(t.ExpiresAt)
}

// MarkUsed consome o token
func (t *PasswordResetToken) MarkUsed() {
	t.IsUsed = true
}
