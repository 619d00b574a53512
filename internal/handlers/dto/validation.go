package dto

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/valueobjects"
)

// RegisterValidators registra as validações customizadas no validator do Gin
// e faz os erros usarem o nome do campo JSON
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	validations := map[string]validator.Func{
		"category_name": func(fl validator.FieldLevel) bool {
			return entities.ValidateCategoryName(strings.TrimSpace(fl.Field().String())) == nil
		},
		"phone": func(fl validator.FieldLevel) bool {
			return entities.IsValidPhone(fl.Field().String())
		},
		"complex_password": func(fl validator.FieldLevel) bool {
			return valueobjects.IsComplexPassword(fl.Field().String())
		},
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// TranslateBindingError converte erros de binding em erros de campo traduzidos
func TranslateBindingError(c *gin.Context, err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		result := make([]ValidationError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			result = append(result, ValidationError{
				Field:   fe.Field(),
				Message: T(c, "validation."+messageTag(fe), map[string]interface{}{"Param": fe.Param(), "Min": fe.Param(), "Max": fe.Param()}),
				Tag:     fe.Tag(),
				Value:   fmt.Sprintf("%v", fe.Value()),
			})
		}
		return result
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return []ValidationError{{
			Field:   typeErr.Field,
			Message: T(c, "validation.invalid"),
			Tag:     "type",
		}}
	}

	return nil
}

// DomainValidationError traduz um errors.ValidationError do domínio
func DomainValidationError(c *gin.Context, err *errors.ValidationError) []ValidationError {
	return []ValidationError{{
		Field:   err.Field,
		Message: T(c, err.Key, err.Params),
		Tag:     strings.TrimPrefix(err.Key, "validation."),
	}}
}

// messageTag escolhe a chave de mensagem para uma tag do validator.
// min/max em strings viram limites de tamanho.
func messageTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		if fe.Kind() == reflect.String {
			return "min_length"
		}
	case "max":
		if fe.Kind() == reflect.String {
			return "max_length"
		}
	case "http_url":
		return "url"
	case "required", "required_with", "required_without":
		return "required"
	}
	return fe.Tag()
}
