package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
	"github.com/rafabene/hiresphere-backend/internal/handlers/middleware"
)

// uuidParam lê um parâmetro de rota que deve ser UUID.
// Responde 400 e retorna false quando inválido.
func uuidParam(c *gin.Context, name string) (string, bool) {
	value := c.Param(name)
	if _, err := uuid.Parse(value); err != nil {
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, "error.invalid_id", map[string]interface{}{"Value": value}))
		return "", false
	}
	return value, true
}

// actor retorna o usuário autenticado ou responde 401
func actor(c *gin.Context) (entities.Actor, bool) {
	a, ok := middleware.CurrentActor(c)
	if !ok {
		handleError(c, errors.ErrUnauthorized)
		return entities.Actor{}, false
	}
	return a, true
}

// parseStatus aceita o nome ("Interview") ou o valor numérico ("2")
func parseStatus(value string) (entities.ApplicationStatus, bool) {
	if status, ok := entities.ParseApplicationStatus(value); ok {
		return status, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	status := entities.ApplicationStatus(n)
	return status, status.IsValid()
}

func statusValidationError(c *gin.Context, field, value string) {
	dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{{
		Field:   field,
		Message: dto.T(c, "validation.application_status"),
		Tag:     "application_status",
		Value:   value,
	}}))
}
