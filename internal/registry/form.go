package registry

import (
	"errors"
	"fmt"

	"customer-registry/internal/apperror"
	"customer-registry/internal/model"
)

// State is the lifecycle position of a Form.
type State int

const (
	Editing State = iota
	Validating
	CheckingUniqueness
	Rejected
	Committed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case CheckingUniqueness:
		return "checking_uniqueness"
	case Rejected:
		return "rejected"
	case Committed:
		return "committed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// CommitFunc merges an accepted customer into the collection.
type CommitFunc func(c model.Customer, index int) error

// Form is a single create or edit session.
type Form struct {
	validator Validator
	index     int
	initial   model.Customer
	fields    model.Customer
	state     State
	errs      apperror.FieldErrors
	conflict  *apperror.ConflictError
}

// NewForm opens a form. Pass model.NoIndex and a zero initial value for a create.
func NewForm(v Validator, initial model.Customer, index int) *Form {
	if index < 0 {
		index = model.NoIndex
	}
	return &Form{
		validator: v,
		index:     index,
		initial:   initial,
		fields:    initial,
	}
}

func (f *Form) Title() string {
	if f.index == model.NoIndex {
		return "Create New Customer"
	}
	return "Edit Customer"
}

func (f *Form) Index() int { return f.index }
func (f *Form) State() State { return f.state }
func (f *Form) Fields() model.Customer { return f.fields }
func (f *Form) Errors() apperror.FieldErrors { return f.errs }

// Conflict returns the uniqueness conflict from the last rejected submit, if any.
func (f *Form) Conflict() *apperror.ConflictError { return f.conflict }

// Set replaces the raw field values.
func (f *Form) Set(raw model.Customer) error {
	if f.state == Committed {
		return apperror.ErrFormClosed
	}
	f.fields = raw
	f.state = Editing
	return nil
}

// Submit runs validation then the uniqueness check against existing. Only when both pass
// is commit called. A rejection passes through Rejected and leaves the form back in
// Editing with its fields intact and the reasons available from Errors and Conflict.
// An edit form whose index is no longer in existing is refused with
// apperror.ErrIndexOutOfRange. A committed form is reset and accepts no further submissions.
func (f *Form) Submit(existing []model.Customer, commit CommitFunc) (Accepted, error) {
	if f.state == Committed {
		return Accepted{}, apperror.ErrFormClosed
	}
	f.errs = nil
	f.conflict = nil

	if f.index != model.NoIndex && f.index >= len(existing) {
		return Accepted{}, apperror.ErrIndexOutOfRange
	}

	accepted, err := submit(f.validator, f.fields, existing, f.index, func(s State) { f.state = s })
	if err != nil {
		f.reject(err)
		return Accepted{}, err
	}

	if err := commit(accepted.Customer, accepted.Index); err != nil {
		f.state = Editing
		return Accepted{}, fmt.Errorf("commit customer: %w", err)
	}

	f.fields = f.initial
	f.state = Committed
	return accepted, nil
}

// Cancel abandons the session. Fields return to their initial values and nothing is committed.
func (f *Form) Cancel() {
	f.fields = f.initial
	f.errs = nil
	f.conflict = nil
	if f.state != Committed {
		f.state = Editing
	}
}

func (f *Form) reject(err error) {
	f.state = Rejected

	var fe apperror.FieldErrors
	if errors.As(err, &fe) {
		f.errs = fe
	}
	var ce *apperror.ConflictError
	if errors.As(err, &ce) {
		f.conflict = ce
	}

	f.state = Editing
}
