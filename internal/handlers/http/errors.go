package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
)

var notFoundResources = map[error]string{
	errors.ErrUserNotFound:        "resource.user",
	errors.ErrCompanyNotFound:     "resource.company",
	errors.ErrCategoryNotFound:    "resource.category",
	errors.ErrJobNotFound:         "resource.job",
	errors.ErrApplicationNotFound: "resource.application",
}

var conflictErrors = []error{
	errors.ErrEmailAlreadyExists,
	errors.ErrCategoryAlreadyExists,
	errors.ErrCategoryInUse,
	errors.ErrUserOwnsCompanies,
	errors.ErrApplicationExists,
}

var unauthorizedErrors = []error{
	errors.ErrInvalidCredentials,
	errors.ErrInvalidRefreshToken,
	errors.ErrInvalidAccessToken,
	errors.ErrUnauthorized,
}

var badRequestErrors = []error{
	errors.ErrInvalidEmail,
	errors.ErrWeakPassword,
	errors.ErrPasswordMismatch,
	errors.ErrInvalidResetToken,
	errors.ErrOwnerMustBeEmployer,
	errors.ErrJobNotAcceptingApplies,
	errors.ErrJobExpired,
}

// errorResponse converte um erro de serviço na resposta RFC 7807 correspondente
func errorResponse(c *gin.Context, err error) dto.ErrorResponse {
	var validationErr *errors.ValidationError
	if errs.As(err, &validationErr) {
		return dto.ValidationErrorResponseI18n(c, dto.DomainValidationError(c, validationErr))
	}

	var transitionErr *errors.InvalidTransitionError
	if errs.As(err, &transitionErr) {
		return dto.TransitionErrorResponseI18n(c, transitionErr.From, transitionErr.To)
	}

	for target, resource := range notFoundResources {
		if errs.Is(err, target) {
			return dto.NotFoundErrorResponseI18n(c, resource)
		}
	}
	if target, ok := matchAny(err, conflictErrors); ok {
		return dto.ConflictErrorResponseI18n(c, target.Error())
	}
	if target, ok := matchAny(err, unauthorizedErrors); ok {
		return dto.UnauthorizedErrorResponseI18n(c, target.Error())
	}
	if target, ok := matchAny(err, badRequestErrors); ok {
		return dto.BadRequestErrorResponseI18n(c, target.Error())
	}
	if errs.Is(err, errors.ErrForbidden) {
		return dto.ForbiddenErrorResponseI18n(c)
	}
	if errs.Is(err, errors.ErrApplicantMustBeSeeker) {
		return dto.NewErrorResponseI18n(c, errors.ProblemTypeForbidden, "error.forbidden.title",
			errors.ErrApplicantMustBeSeeker.Error(), http.StatusForbidden)
	}

	_ = c.Error(err)
	return dto.InternalErrorResponseI18n(c)
}

// handleError escreve a resposta de erro e interrompe a requisição
func handleError(c *gin.Context, err error) {
	dto.WriteProblem(c, errorResponse(c, err))
}

// handleBindError responde 400 com os erros de campo traduzidos
func handleBindError(c *gin.Context, err error) {
	fields := dto.TranslateBindingError(c, err)
	if fields == nil {
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, "error.invalid_body"))
		return
	}
	dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, fields))
}

func matchAny(err error, targets []error) (error, bool) {
	for _, target := range targets {
		if errs.Is(err, target) {
			return target, true
		}
	}
	return nil, false
}
