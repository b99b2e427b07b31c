// Package registry owns the customer collection and gates every write through
// validation and uniqueness checks.
package registry

import (
	"customer-registry/internal/model"
	"customer-registry/internal/uniqueness"
)

// Validator turns raw input into a normalized customer or an apperror.FieldErrors.
type Validator interface {
	Validate(raw model.Customer) (model.Customer, error)
}

// Accepted is the outcome of a submission that passed every check.
// Index is the position being replaced, or model.NoIndex for a create.
type Accepted struct {
	Customer model.Customer `json:"customer"`
	Index    int            `json:"index"`
}

// Submit validates raw and checks it against existing, excluding the record at editIndex.
// The error is an apperror.FieldErrors when any field is invalid and an
// *apperror.ConflictError when another record already owns the email or identity.
// Submit has no side effects.
func Submit(v Validator, raw model.Customer, existing []model.Customer, editIndex int) (Accepted, error) {
	return submit(v, raw, existing, editIndex, func(State) {})
}

func submit(v Validator, raw model.Customer, existing []model.Customer, editIndex int, enter func(State)) (Accepted, error) {
	if editIndex < 0 || editIndex >= len(existing) {
		editIndex = model.NoIndex
	}

	enter(Validating)
	c, err := v.Validate(raw)
	if err != nil {
		return Accepted{}, err
	}

	enter(CheckingUniqueness)
	if err := uniqueness.Check(c, existing, editIndex); err != nil {
		return Accepted{}, err
	}

	return Accepted{Customer: c, Index: editIndex}, nil
}
