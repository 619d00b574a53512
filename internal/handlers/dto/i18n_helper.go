package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/handlers/middleware"
)

// T traduz uma chave no idioma da requisição.
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "Job"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	return middleware.Translate(c, key, params...)
}

// GetLanguage retorna o idioma da requisição
func GetLanguage(c *gin.Context) string {
	return middleware.Language(c)
}
