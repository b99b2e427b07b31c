package registry

import (
	"customer-registry/internal/apperror"
	"customer-registry/internal/model"
)

// CreateOrReplace returns a new collection with c stored at index, or appended when index
// is out of range.
func CreateOrReplace(collection []model.Customer, c model.Customer, index int) []model.Customer {
	if index >= 0 && index < len(collection) {
		out := make([]model.Customer, len(collection))
		copy(out, collection)
		out[index] = c
		return out
	}

	out := make([]model.Customer, len(collection), len(collection)+1)
	copy(out, collection)
	return append(out, c)
}

// RemoveAt returns a new collection without the record at index.
func RemoveAt(collection []model.Customer, index int) ([]model.Customer, error) {
	if index < 0 || index >= len(collection) {
		return collection, apperror.ErrIndexOutOfRange
	}

	out := make([]model.Customer, 0, len(collection)-1)
	out = append(out, collection[:index]...)
	return append(out, collection[index+1:]...), nil
}
