package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"customer-registry/internal/model"
	"customer-registry/internal/registry"
	"customer-registry/internal/store"
	"customer-registry/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	aliceJSON = `{"firstName":"Alice","lastName":"Smith","dateOfBirth":"1985-05-05","phoneNumber":"+14155550000","email":"alice@example.com","bankAccountNumber":"87654321"}`
	bobJSON   = `{"firstName":"Bob","lastName":"Jones","dateOfBirth":"1992-03-10","phoneNumber":"+14155559876","email":"bob@example.com","bankAccountNumber":"12345678"}`
	johnJSON  = `{"firstName":"John","lastName":"Doe","dateOfBirth":"1990-01-01","phoneNumber":"+14155551234","email":"john@example.com","bankAccountNumber":"12345678"}`
)

func newHandler(t *testing.T, seed string) (http.Handler, *store.MemoryStore) {
	t.Helper()
	core, _ := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	s := store.NewMemoryStore(logger)
	if seed != "" {
		s.SetRaw([]byte(seed))
	}
	v, err := validation.New(validation.DefaultRegion)
	require.NoError(t, err)

	reg := registry.New(context.Background(), s, v, logger)
	return New(logger, reg).Routes(), s
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func bodyOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	all, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return strings.Trim(string(all), "\n")
}

func TestCustomerWrites(t *testing.T) {
	seed := "[" + aliceJSON + "," + bobJSON + "]"

	tests := []struct {
		name         string
		method       string
		target       string
		rawBody      string
		expectCode   int
		expectedBody string
	}{
		{
			name:         "create valid customer",
			method:       http.MethodPost,
			target:       "/customers",
			rawBody:      johnJSON,
			expectCode:   http.StatusCreated,
			expectedBody: `{"customer":` + johnJSON + `,"index":-1}`,
		},
		{
			name:       "create with every field empty",
			method:     http.MethodPost,
			target:     "/customers",
			rawBody:    `{}`,
			expectCode: http.StatusBadRequest,
			expectedBody: `{"errors":{"bankAccountNumber":"Bank account number is required","dateOfBirth":"Date of birth is required",` +
				`"email":"Email is required","firstName":"First name is required","lastName":"Last name is required","phoneNumber":"Phone number is required"}}`,
		},
		{
			name:         "create with invalid phone and email",
			method:       http.MethodPost,
			target:       "/customers",
			rawBody:      `{"firstName":"Dave","lastName":"Thomas","dateOfBirth":"1995-07-07","phoneNumber":"abcdef","email":"not-an-email","bankAccountNumber":"12345678"}`,
			expectCode:   http.StatusBadRequest,
			expectedBody: `{"errors":{"email":"Invalid email format","phoneNumber":"Invalid mobile number"}}`,
		},
		{
			name:         "create with duplicate email",
			method:       http.MethodPost,
			target:       "/customers",
			rawBody:      `{"firstName":"John","lastName":"Doe","dateOfBirth":"1990-01-01","phoneNumber":"+14155551234","email":"alice@example.com","bankAccountNumber":"12345678"}`,
			expectCode:   http.StatusConflict,
			expectedBody: `{"error":{"code":"DUPLICATE_EMAIL","message":"Email already exists for another customer"}}`,
		},
		{
			name:         "create with duplicate identity",
			method:       http.MethodPost,
			target:       "/customers",
			rawBody:      `{"firstName":"Bob","lastName":"Jones","dateOfBirth":"1992-03-10","phoneNumber":"+14155559876","email":"other@example.com","bankAccountNumber":"12345678"}`,
			expectCode:   http.StatusConflict,
			expectedBody: `{"error":{"code":"DUPLICATE_IDENTITY","message":"A customer with this first name, last name, and date of birth already exists"}}`,
		},
		{
			name:         "invalid request body",
			method:       http.MethodPost,
			target:       "/customers",
			rawBody:      `{`,
			expectCode:   http.StatusBadRequest,
			expectedBody: `{"error":{"code":"INVALID_PAYLOAD","message":"invalid request payload"}}`,
		},
		{
			name:         "update unchanged customer",
			method:       http.MethodPut,
			target:       "/customers/0",
			rawBody:      aliceJSON,
			expectCode:   http.StatusOK,
			expectedBody: `{"customer":` + aliceJSON + `,"index":0}`,
		},
		{
			name:         "update into another customer's email",
			method:       http.MethodPut,
			target:       "/customers/1",
			rawBody:      aliceJSON,
			expectCode:   http.StatusConflict,
			expectedBody: `{"error":{"code":"DUPLICATE_EMAIL","message":"Email already exists for another customer"}}`,
		},
		{
			name:         "update missing customer",
			method:       http.MethodPut,
			target:       "/customers/5",
			rawBody:      johnJSON,
			expectCode:   http.StatusNotFound,
			expectedBody: `{"error":{"code":"NOT_FOUND","message":"customer not found"}}`,
		},
		{
			name:         "update with non numeric index",
			method:       http.MethodPut,
			target:       "/customers/first",
			rawBody:      johnJSON,
			expectCode:   http.StatusBadRequest,
			expectedBody: `{"error":{"code":"INVALID_INDEX","message":"customer index must be a non-negative integer"}}`,
		},
		{
			name:         "delete missing customer",
			method:       http.MethodDelete,
			target:       "/customers/2",
			expectCode:   http.StatusNotFound,
			expectedBody: `{"error":{"code":"NOT_FOUND","message":"customer not found"}}`,
		},
		{
			name:         "get customer",
			method:       http.MethodGet,
			target:       "/customers/1",
			expectCode:   http.StatusOK,
			expectedBody: bobJSON,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newHandler(t, seed)

			w := do(t, h, tc.method, tc.target, tc.rawBody)
			assert.Equal(t, tc.expectCode, w.Code)
			assert.Equal(t, tc.expectedBody, bodyOf(t, w))
		})
	}
}

func TestCreateThenListPersists(t *testing.T) {
	h, s := newHandler(t, "")

	w := do(t, h, http.MethodPost, "/customers", johnJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodGet, "/customers", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "["+johnJSON+"]", bodyOf(t, w))
	assert.JSONEq(t, "["+johnJSON+"]", string(s.Raw()))

	w = do(t, h, http.MethodPost, "/customers", johnJSON)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteCustomer(t *testing.T) {
	h, s := newHandler(t, "["+aliceJSON+","+bobJSON+"]")

	w := do(t, h, http.MethodDelete, "/customers/0", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, bodyOf(t, w))

	var stored []model.Customer
	require.NoError(t, json.Unmarshal(s.Raw(), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "bob@example.com", stored[0].Email)
}

func TestListEmptyAndMalformedStore(t *testing.T) {
	h, _ := newHandler(t, "this is not json")

	w := do(t, h, http.MethodGet, "/customers", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", bodyOf(t, w))
}

func TestHealthz(t *testing.T) {
	h, _ := newHandler(t, "")

	w := do(t, h, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", bodyOf(t, w))
}
