package apperror

import "errors"

var (
	// ErrConflict matches every uniqueness conflict via errors.Is.
	ErrConflict = errors.New("uniqueness conflict")

	ErrIndexOutOfRange = errors.New("customer index out of range")
	ErrFormClosed      = errors.New("form already committed")
)

// ConflictKind names the uniqueness rule that fired.
type ConflictKind string

const (
	DuplicateEmail    ConflictKind = "DUPLICATE_EMAIL"
	DuplicateIdentity ConflictKind = "DUPLICATE_IDENTITY"
)

const (
	msgDuplicateEmail    = "Email already exists for another customer"
	msgDuplicateIdentity = "A customer with this first name, last name, and date of birth already exists"
)

// ConflictError reports a cross-record uniqueness violation. It has no field attribution.
type ConflictError struct {
	Kind    ConflictKind
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewDuplicateEmail creates the conflict reported when another customer owns the email.
func NewDuplicateEmail() *ConflictError {
	return &ConflictError{Kind: DuplicateEmail, Message: msgDuplicateEmail}
}

// NewDuplicateIdentity creates the conflict reported when another customer has the same
// first name, last name and date of birth.
func NewDuplicateIdentity() *ConflictError {
	return &ConflictError{Kind: DuplicateIdentity, Message: msgDuplicateIdentity}
}
