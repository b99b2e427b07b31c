// Package uniqueness enforces the cross-record uniqueness rules of the customer collection.
package uniqueness

import (
	"customer-registry/internal/apperror"
	"customer-registry/internal/model"
)

// Check reports whether candidate collides with any record in existing other than the one
// at excludeIndex. An excludeIndex of model.NoIndex, or any index out of range, excludes
// nothing. Email is checked before the name and date-of-birth triple and only the first
// conflict found is returned.
func Check(candidate model.Customer, existing []model.Customer, excludeIndex int) error {
	if containsMatch(existing, excludeIndex, func(c model.Customer) bool {
		return c.Email == candidate.Email
	}) {
		return apperror.NewDuplicateEmail()
	}

	if containsMatch(existing, excludeIndex, candidate.SameIdentity) {
		return apperror.NewDuplicateIdentity()
	}

	return nil
}

func containsMatch(existing []model.Customer, excludeIndex int, match func(model.Customer) bool) bool {
	for i, c := range existing {
		if i == excludeIndex {
			continue
		}
		if match(c) {
			return true
		}
	}
	return false
}
