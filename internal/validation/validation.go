// Package validation turns raw customer input into a normalized record or per-field errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"customer-registry/internal/apperror"
	"customer-registry/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed for phone numbers written without a country code.
const DefaultRegion = "US"

// MobileValidator accepts numbers that parse and are valid for the given default region.
func MobileValidator(region string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		num, err := phonenumbers.Parse(fl.Field().String(), region)
		if err != nil {
			return false
		}
		return phonenumbers.IsValidNumber(num)
	}
}

// Validator checks customer input against the field rules declared on model.Customer.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator. An empty region falls back to DefaultRegion.
func New(region string) (*Validator, error) {
	if region == "" {
		region = DefaultRegion
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("register notblank validation: %w", err)
	}
	if err := v.RegisterValidation("mobile", MobileValidator(region)); err != nil {
		return nil, fmt.Errorf("register mobile validation: %w", err)
	}

	return &Validator{validate: v}, nil
}

// Validate checks each field of the raw input independently. Whitespace-only fields count
// as missing, while format rules see the value exactly as entered. On success the trimmed
// record is returned; otherwise the error is an apperror.FieldErrors holding one message
// per rejected field.
func (v *Validator) Validate(raw model.Customer) (model.Customer, error) {
	err := v.validate.Struct(raw)
	if err == nil {
		return raw.Trimmed(), nil
	}

	if fe := apperror.CustomValidationError(err); len(fe) > 0 {
		return model.Customer{}, fe
	}
	return model.Customer{}, fmt.Errorf("validate customer: %w", err)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
