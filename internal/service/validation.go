package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON names so field errors match what the client sent
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(model.Enum)
		return !ok || e.Valid()
	})
	return v
}

// validateRecord runs the struct tags of rec and converts failures into field errors.
func validateRecord(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldPath(fe.Namespace()), Message: fieldMessage(fe)})
	}
	return newInvalidInput(fields)
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "enum":
		return fmt.Sprintf("%q is not an allowed value", fmt.Sprint(fe.Value()))
	case "url":
		return "must be a valid URL"
	case "min", "gte":
		return "must be >= " + fe.Param()
	case "required_without":
		return "is required without " + fe.Param()
	case "required_with":
		return "is required with " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// decodeError turns a JSON decoding failure of a merged record into a field error.
func decodeError(err error) error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		field := ute.Field
		if field == "" {
			field = "body"
		}
		return InvalidField(field, "must be "+ute.Type.String())
	}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return InvalidField("body", "malformed JSON")
	}
	if inner := errors.Unwrap(err); inner != nil {
		err = inner
	}
	return InvalidField("body", err.Error())
}

func validateFieldName(field, name string) error {
	if err := (repository.Filters{name: ""}).Validate(); err != nil {
		return InvalidField(field, "invalid field name")
	}
	return nil
}
