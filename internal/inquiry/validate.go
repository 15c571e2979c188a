package inquiry

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bilgisen/nexus/internal/models"
)

// ErrValidationFailed marks client-correctable input defects.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError names each offending field and the rule it broke.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s (%s)", name, e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Validator checks contact inquiries against the form rules.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names
// and knows the service and budget enumerations.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "service", models.Services)
	mustRegister(v, "budget", models.Budgets)
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, allowed []string) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate returns a *ValidationError listing every failing field, or nil.
func (v *Validator) Validate(inq models.ContactInquiry) error {
	err := v.validate.Struct(inq)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}

// normalize trims surrounding whitespace so blank fields fail "required".
func normalize(inq models.ContactInquiry) models.ContactInquiry {
	return models.ContactInquiry{
		Name:    strings.TrimSpace(inq.Name),
		Email:   strings.TrimSpace(inq.Email),
		Service: strings.TrimSpace(inq.Service),
		Budget:  strings.TrimSpace(inq.Budget),
		Message: strings.TrimSpace(inq.Message),
	}
}
