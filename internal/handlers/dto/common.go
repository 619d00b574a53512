package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.Problem
	Errors []ValidationError      `json:"errors,omitempty"`
	Meta   map[string]interface{} `json:"meta,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// MessageResponse é a resposta simples de operações sem corpo
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PaginatedResponse envolve uma página de resultados
type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// PaginationQuery lê ?page=&pageSize=
type PaginationQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// ToPagination converte para a paginação do repositório
func (q PaginationQuery) ToPagination() repositories.Pagination {
	return repositories.Pagination{Page: q.Page, PageSize: q.PageSize}
}

// NewErrorResponse cria uma nova resposta de erro RFC 7807
func NewErrorResponse(c *gin.Context, problemType, title string, status int, detail string) ErrorResponse {
	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL(c) + problemType
	problem.Title = title
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: problem}
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponse(c, problemType, T(c, titleKey, params...), status, T(c, detailKey, params...))
}

// WriteProblem envia a resposta com o media type application/problem+json
// e interrompe a cadeia de handlers
func WriteProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

func baseURL(c *gin.Context) string {
	if url := c.GetString("base_url"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta 400 com um detalhe traduzido
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		400,
		params...,
	)
}

// TransitionErrorResponseI18n cria uma resposta 400 para mudança de status inválida
func TransitionErrorResponseI18n(c *gin.Context, from, to string) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeTransition,
		"error.transition.title",
		"error.invalid_status_transition",
		400,
		map[string]interface{}{"From": from, "To": to},
	)
	response.Meta = map[string]interface{}{"from": from, "to": to}
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": T(c, resource)},
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401.
// detailKey opcional substitui a mensagem padrão.
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey ...string) ErrorResponse {
	key := "error.unauthorized.detail"
	if len(detailKey) > 0 {
		key = detailKey[0]
	}
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		key,
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}

func toPaginated[S, T any](page services.Page[S], items []T) PaginatedResponse[T] {
	return PaginatedResponse[T]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}
}
