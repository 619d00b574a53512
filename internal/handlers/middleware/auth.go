package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
)

const (
	// UserIDContextKey guarda o ID do usuário autenticado
	UserIDContextKey = "user_id"
	// UserRoleContextKey guarda o papel do usuário autenticado
	UserRoleContextKey = "user_role"
	// ClaimsContextKey guarda as claims do access token
	ClaimsContextKey = "claims"
)

// AuthMiddleware valida o access token das requisições
type AuthMiddleware struct {
	tokens ports.TokenIssuer
	logger ports.Logger
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens ports.TokenIssuer, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// RequireAuth exige um Bearer token válido
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.authenticate(false)
}

// RequireAuthWS aceita também ?access_token=, já que navegadores não enviam
// headers customizados no handshake do websocket
func (m *AuthMiddleware) RequireAuthWS() gin.HandlerFunc {
	return m.authenticate(true)
}

func (m *AuthMiddleware) authenticate(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && allowQuery {
			token = c.Query("access_token")
		}
		if token == "" {
			abortWithProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		claims, err := m.tokens.ValidateAccessToken(token)
		if err != nil {
			m.logger.Debug("rejected access token", "path", c.Request.URL.Path, "error", err)
			abortWithProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.invalid_access_token")
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(UserRoleContextKey, claims.Role)
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireRoles libera apenas os papéis informados. Deve vir depois de RequireAuth.
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			abortWithProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		abortWithProblem(c, http.StatusForbidden, errors.ProblemTypeForbidden,
			"error.forbidden.title", "error.forbidden.detail")
	}
}

// CurrentActor retorna o usuário autenticado da requisição
func CurrentActor(c *gin.Context) (entities.Actor, bool) {
	userID := c.GetString(UserIDContextKey)
	role, ok := c.Get(UserRoleContextKey)
	if userID == "" || !ok {
		return entities.Actor{}, false
	}
	r, ok := role.(entities.Role)
	if !ok {
		return entities.Actor{}, false
	}
	return entities.Actor{UserID: userID, Role: r}, true
}

// CurrentClaims retorna as claims do access token da requisição
func CurrentClaims(c *gin.Context) (*ports.AccessClaims, bool) {
	value, ok := c.Get(ClaimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*ports.AccessClaims)
	return claims, ok
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
