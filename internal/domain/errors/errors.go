package errors

import (
	"errors"
	"fmt"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound           = errors.New("error.user_not_found")
	ErrCompanyNotFound        = errors.New("error.company_not_found")
	ErrCategoryNotFound       = errors.New("error.category_not_found")
	ErrJobNotFound            = errors.New("error.job_not_found")
	ErrApplicationNotFound    = errors.New("error.application_not_found")
	ErrEmailAlreadyExists     = errors.New("error.email_already_exists")
	ErrCategoryAlreadyExists  = errors.New("error.category_already_exists")
	ErrCategoryInUse          = errors.New("error.category_in_use")
	ErrUserOwnsCompanies      = errors.New("error.user_owns_companies")
	ErrApplicationExists      = errors.New("error.application_already_exists")
	ErrInvalidCredentials     = errors.New("error.invalid_credentials")
	ErrInvalidRefreshToken    = errors.New("error.invalid_refresh_token")
	ErrInvalidAccessToken     = errors.New("error.invalid_access_token")
	ErrInvalidResetToken      = errors.New("error.invalid_reset_token")
	ErrWeakPassword           = errors.New("error.weak_password")
	ErrPasswordMismatch       = errors.New("error.password_mismatch")
	ErrOwnerMustBeEmployer    = errors.New("error.owner_must_be_employer")
	ErrApplicantMustBeSeeker  = errors.New("error.applicant_must_be_job_seeker")
	ErrJobNotAcceptingApplies = errors.New("error.job_not_accepting_applications")
	ErrJobExpired             = errors.New("error.job_expired")
	ErrUnauthorized           = errors.New("error.unauthorized")
	ErrForbidden              = errors.New("error.forbidden")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrValidation   = errors.New("error.validation")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeTransition   = "/problems/invalid-status-transition"
)

// ValidationError é um erro de regra de negócio em um campo específico.
// Key é o message ID usado pelo i18n; Params alimenta a interpolação.
type ValidationError struct {
	Field  string
	Key    string
	Params map[string]interface{}
}

// NewValidationError cria um ValidationError
func NewValidationError(field, key string, params ...map[string]interface{}) *ValidationError {
	e := &ValidationError{Field: field, Key: key}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Key)
}

// Is permite errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidTransitionError é retornado quando uma mudança de status de
// candidatura não está na lista de transições permitidas.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Key retorna o message ID do erro
func (e *InvalidTransitionError) Key() string {
	return "error.invalid_status_transition"
}
