// Package handler contains HTTP handlers for the customer registry API.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"customer-registry/internal/model"
	"customer-registry/internal/registry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handler wraps HTTP handlers with logger and registry.
type Handler struct {
	log *zap.Logger
	reg *registry.Registry
}

// New creates a new Handler instance.
func New(log *zap.Logger, reg *registry.Registry) *Handler {
	return &Handler{log: log, reg: reg}
}

// Routes mounts every endpoint on a chi router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Healthz)
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.ListCustomers)
		r.Post("/", h.CreateCustomer)
		r.Get("/{index}", h.GetCustomer)
		r.Put("/{index}", h.UpdateCustomer)
		r.Delete("/{index}", h.DeleteCustomer)
	})
	return r
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// ListCustomers returns the collection in insertion order.
func (h *Handler) ListCustomers(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, h.reg.List())
}

// GetCustomer returns one customer, used to pre-fill an edit form.
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	index, ok := h.index(w, r)
	if !ok {
		return
	}

	c, err := h.reg.Get(index)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, c)
}

// CreateCustomer validates and appends a new customer.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.decode(w, r)
	if !ok {
		return
	}

	accepted, err := h.reg.Create(r.Context(), raw)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, accepted)
}

// UpdateCustomer validates and replaces the customer at the given index.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	index, ok := h.index(w, r)
	if !ok {
		return
	}
	raw, ok := h.decode(w, r)
	if !ok {
		return
	}

	accepted, err := h.reg.Update(r.Context(), index, raw)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, accepted)
}

// DeleteCustomer removes the customer at the given index.
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	index, ok := h.index(w, r)
	if !ok {
		return
	}

	if err := h.reg.Delete(r.Context(), index); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (model.Customer, bool) {
	var raw model.Customer
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.log.Warn("failed to decode json", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "INVALID_PAYLOAD", "invalid request payload")
		return model.Customer{}, false
	}
	return raw, true
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		h.respondError(w, http.StatusBadRequest, "INVALID_INDEX", "customer index must be a non-negative integer")
		return 0, false
	}
	return index, true
}
