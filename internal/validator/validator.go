package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/theatrical-statements/internal/domain"
)

const (
	ErrRequired       = "is required"
	ErrMinLength      = "must be at least %s"
	ErrMaxLength      = "must be at most %s"
	ErrGenre          = "must be one of tragedy, comedy or history"
	ErrSlug           = "must contain only lowercase letters, digits and dashes"
	ErrDefaultInvalid = "is invalid"
)

var slugRgx = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("genre", validateGenre)
	validator.RegisterValidation("slug", validateSlug)

	return validator
}

// jsonFieldName reports fields under the name clients send them with.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func validateGenre(fl validator.FieldLevel) bool {
	_, err := domain.ParseGenre(fl.Field().String())
	return err == nil
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "genre":
		return ErrGenre
	case "slug":
		return ErrSlug
	default:
		return ErrDefaultInvalid
	}
}
