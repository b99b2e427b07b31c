package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"customer-registry/internal/apperror"

	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResponse carries one message per rejected field.
type ValidationResponse struct {
	Errors apperror.FieldErrors `json:"errors"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("unable to write response stream", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, code, message string) {
	h.respondJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// handleError maps registry errors to HTTP responses.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var fe apperror.FieldErrors
	if errors.As(err, &fe) {
		h.respondJSON(w, http.StatusBadRequest, ValidationResponse{Errors: fe})
		return
	}

	var ce *apperror.ConflictError
	if errors.As(err, &ce) {
		h.respondError(w, http.StatusConflict, string(ce.Kind), ce.Message)
		return
	}

	if errors.Is(err, apperror.ErrIndexOutOfRange) {
		h.respondError(w, http.StatusNotFound, "NOT_FOUND", "customer not found")
		return
	}

	h.log.Error("internal server error", zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
}
