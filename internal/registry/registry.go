package registry

import (
	"context"
	"sync"

	"customer-registry/internal/apperror"
	"customer-registry/internal/model"

	"go.uber.org/zap"
)

// Store persists the whole customer collection as one unit.
type Store interface {
	Load(ctx context.Context) []model.Customer
	Save(ctx context.Context, customers []model.Customer) error
}

// Registry is the single owner of the customer collection. Every mutation replaces the
// collection and persists it in full.
type Registry struct {
	mu        sync.Mutex
	customers []model.Customer
	store     Store
	validator Validator
	log       *zap.Logger
}

// New loads the collection from s once and returns the registry that owns it.
func New(ctx context.Context, s Store, v Validator, log *zap.Logger) *Registry {
	customers := s.Load(ctx)
	if customers == nil {
		customers = []model.Customer{}
	}
	log.Info("customers loaded", zap.Int("count", len(customers)))

	return &Registry{
		customers: customers,
		store:     s,
		validator: v,
		log:       log,
	}
}

// List returns a copy of the collection in insertion order.
func (r *Registry) List() []model.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

// Get returns the customer at index.
func (r *Registry) Get(index int) (model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.customers) {
		return model.Customer{}, apperror.ErrIndexOutOfRange
	}
	return r.customers[index], nil
}

// NewForm opens a create form for model.NoIndex, or an edit form pre-filled with the
// customer at index.
func (r *Registry) NewForm(index int) (*Form, error) {
	if index == model.NoIndex {
		return NewForm(r.validator, model.Customer{}, model.NoIndex), nil
	}

	c, err := r.Get(index)
	if err != nil {
		return nil, err
	}
	return NewForm(r.validator, c, index), nil
}

// Save submits f against the current collection and, when accepted, stores the customer
// and persists the collection.
func (r *Registry) Save(ctx context.Context, f *Form) (Accepted, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accepted, err := f.Submit(r.customers, func(c model.Customer, index int) error {
		r.customers = CreateOrReplace(r.customers, c, index)
		r.persist(ctx)
		return nil
	})
	if err != nil {
		r.log.Debug("submission rejected", zap.Int("index", f.Index()), zap.Error(err))
		return Accepted{}, err
	}

	if accepted.Index == model.NoIndex {
		r.log.Info("customer created", zap.Int("count", len(r.customers)))
	} else {
		r.log.Info("customer updated", zap.Int("index", accepted.Index))
	}
	return accepted, nil
}

// Create submits raw as a new customer.
func (r *Registry) Create(ctx context.Context, raw model.Customer) (Accepted, error) {
	f, err := r.NewForm(model.NoIndex)
	if err != nil {
		return Accepted{}, err
	}
	if err := f.Set(raw); err != nil {
		return Accepted{}, err
	}
	return r.Save(ctx, f)
}

// Update submits raw as the new value of the customer at index.
func (r *Registry) Update(ctx context.Context, index int, raw model.Customer) (Accepted, error) {
	if index < 0 {
		return Accepted{}, apperror.ErrIndexOutOfRange
	}
	f, err := r.NewForm(index)
	if err != nil {
		return Accepted{}, err
	}
	if err := f.Set(raw); err != nil {
		return Accepted{}, err
	}
	return r.Save(ctx, f)
}

// Delete removes the customer at index and persists the collection.
func (r *Registry) Delete(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := RemoveAt(r.customers, index)
	if err != nil {
		return err
	}
	r.customers = next
	r.persist(ctx)

	r.log.Info("customer deleted", zap.Int("index", index), zap.Int("count", len(r.customers)))
	return nil
}

// persist saves the collection. A failed save is only a warning: the in-memory state
// stays authoritative and is written again on the next mutation.
func (r *Registry) persist(ctx context.Context) {
	if err := r.store.Save(ctx, r.customers); err != nil {
		r.log.Warn("failed to persist customers", zap.Int("count", len(r.customers)), zap.Error(err))
	}
}
