package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is the failed outcome of Validate. Kind names the record
// kind ("Student", "Course", ...).
type ValidationError struct {
	Kind   string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s validation failed: %s", e.Kind, strings.Join(parts, ", "))
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks the required fields of a request payload. It returns nil
// or a *ValidationError listing every failing field in declaration order.
func Validate(kind string, payload interface{}) error {
	err := getValidator().Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ve := &ValidationError{Kind: kind}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return ve
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", fe.Field())
	default:
		return fmt.Sprintf("Path `%s` failed the %q check.", fe.Field(), fe.Tag())
	}
}
