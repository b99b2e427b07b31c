package model

import "strings"

// NoIndex marks a create (no record is being edited).
const NoIndex = -1

// Customer represents a customer record, both as raw form input and as a validated entry.
// The rules apply to the raw value; notblank treats whitespace-only input as missing.
type Customer struct {
	FirstName         string `json:"firstName" validate:"notblank"`
	LastName          string `json:"lastName" validate:"notblank"`
	DateOfBirth       string `json:"dateOfBirth" validate:"notblank"`
	PhoneNumber       string `json:"phoneNumber" validate:"notblank,mobile"`
	Email             string `json:"email" validate:"notblank,email"`
	BankAccountNumber string `json:"bankAccountNumber" validate:"notblank,number,min=8,max=20"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (c Customer) Trimmed() Customer {
	return Customer{
		FirstName:         strings.TrimSpace(c.FirstName),
		LastName:          strings.TrimSpace(c.LastName),
		DateOfBirth:       strings.TrimSpace(c.DateOfBirth),
		PhoneNumber:       strings.TrimSpace(c.PhoneNumber),
		Email:             strings.TrimSpace(c.Email),
		BankAccountNumber: strings.TrimSpace(c.BankAccountNumber),
	}
}

// SameIdentity reports whether both records share first name, last name and date of birth.
func (c Customer) SameIdentity(o Customer) bool {
	return c.FirstName == o.FirstName &&
		c.LastName == o.LastName &&
		c.DateOfBirth == o.DateOfBirth
}
