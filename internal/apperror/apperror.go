// Package apperror provides utilities to handle and map custom validation errors.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	errFirstNameRequired   = errors.New("First name is required")
	errLastNameRequired    = errors.New("Last name is required")
	errDateOfBirthRequired = errors.New("Date of birth is required")
	errPhoneRequired       = errors.New("Phone number is required")
	errInvalidMobile       = errors.New("Invalid mobile number")
	errEmailRequired       = errors.New("Email is required")
	errInvalidEmail        = errors.New("Invalid email format")
	errBankAccountRequired = errors.New("Bank account number is required")
	errBankAccountDigits   = errors.New("Bank account must contain only digits")
	errBankAccountTooShort = errors.New("Bank account must be at least 8 digits")
	errBankAccountTooLong  = errors.New("Bank account must not exceed 20 digits")
)

var customErrors = map[string]error{
	"Customer.FirstName.notblank":         errFirstNameRequired,
	"Customer.LastName.notblank":          errLastNameRequired,
	"Customer.DateOfBirth.notblank":       errDateOfBirthRequired,
	"Customer.PhoneNumber.notblank":       errPhoneRequired,
	"Customer.PhoneNumber.mobile":         errInvalidMobile,
	"Customer.Email.notblank":             errEmailRequired,
	"Customer.Email.email":                errInvalidEmail,
	"Customer.BankAccountNumber.notblank": errBankAccountRequired,
	"Customer.BankAccountNumber.number":   errBankAccountDigits,
	"Customer.BankAccountNumber.min":      errBankAccountTooShort,
	"Customer.BankAccountNumber.max":      errBankAccountTooLong,
}

// FieldErrors maps a field name to the message describing why it was rejected.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// CustomValidationError converts validator errors into per-field messages.
// Fields are keyed by whatever name the validator reports, which is the JSON name
// when a tag name func is registered. Errors that are not validation errors yield nil.
func CustomValidationError(err error) FieldErrors {
	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return nil
	}

	fe := make(FieldErrors, len(validationErr))
	for _, e := range validationErr {
		key := e.StructNamespace() + "." + e.Tag()

		errMsg := fmt.Sprintf("%s is invalid", e.Field())
		if v, ok := customErrors[key]; ok {
			errMsg = v.Error()
		}

		if _, seen := fe[e.Field()]; !seen {
			fe[e.Field()] = errMsg
		}
	}
	return fe
}
