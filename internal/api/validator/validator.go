package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/tidewatch/backend/internal/metrics"
)

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(v *validator.Validate, m *metrics.Metrics) IXValidator {
	for tag, fn := range valid {
		v.RegisterValidation(tag, fn)
	}

	return &XValidator{validator: v, metrics: m}
}

func (x *XValidator) Validate(data interface{}) []Error {
	err := x.validator.Struct(data)
	if err == nil {
		return nil
	}

	var out []Error
	for _, fieldErr := range err.(validator.ValidationErrors) {
		out = append(out, Error{
			FailedField: fieldErr.Field(),
			Tag:         fieldErr.Tag(),
			Value:       fieldErr.Value(),
		})

		if x.metrics != nil {
			x.metrics.RecordValidationError(fieldErr.Field(), fieldErr.Tag())
		}
	}

	return out
}
