// Package validation validates the public forms with go-playground/validator.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/models"
)

// FieldError describes one failed field.
type FieldError struct {
	FailedField string `json:"field"`
	Tag         string `json:"tag"`
	Value       any    `json:"value,omitempty"`
}

// Validator wraps a validator.Validate with the site's custom tags registered.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator knowing the service_type, budget_range, timeline and time_slot tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("service_type", func(fl validator.FieldLevel) bool {
		_, ok := catalog.ServiceByID(models.ServiceType(fl.Field().String()))
		return ok
	})
	_ = v.RegisterValidation("budget_range", func(fl validator.FieldLevel) bool {
		return catalog.IsBudgetRange(fl.Field().String())
	})
	_ = v.RegisterValidation("timeline", func(fl validator.FieldLevel) bool {
		return catalog.IsTimeline(fl.Field().String())
	})
	_ = v.RegisterValidation("time_slot", func(fl validator.FieldLevel) bool {
		return catalog.IsTimeSlot(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate returns the failed fields of data, nil if it is valid.
func (v *Validator) Validate(data any) []FieldError {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Tag: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		out = append(out, FieldError{
			FailedField: fe.Field(),
			Tag:         fe.Tag(),
			Value:       fe.Value(),
		})
	}

	return out
}
