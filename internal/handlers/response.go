package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/services"
)

// Response is the envelope of every JSON endpoint.
// swagger:model Response
type Response struct {
	// Whether the operation succeeded
	Success bool `json:"success"`

	// Operation result
	Data any `json:"data,omitempty"`

	// Error message, present when success is false
	Error string `json:"error,omitempty"`
}

// ErrorResponse documents a failed operation.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// default: false
	Success bool `json:"success"`

	// default: validation error: missing email
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Success: status < 400, Data: data}); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError maps err to its status code. Backend errors are reported with
// their raw message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("request failed", "error", err)
	} else {
		logger.Log.Warnw("request rejected", "status", status, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(Response{Success: false, Error: err.Error()}); encErr != nil {
		logger.Log.Errorw("failed to encode error response", "error", encErr)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
