package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"ms-events/internal/apperror"
	"ms-events/internal/logger"
)

// APIResponse is the wire envelope for every endpoint: {success, data} on
// success, {success, error} on failure.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, APIResponse{Success: true, Data: data})
}

// WriteError renders an error as a wire response. Known *apperror.AppError
// values keep their status, code, message and details. Anything else is
// logged in full and rendered as a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, log *logger.Logger, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.StatusCode, APIResponse{
			Success: false,
			Error: &ErrorBody{
				Code:    appErr.Code,
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}

	if log != nil {
		log.Error("HTTP", fmt.Sprintf("Unexpected error: %v", err))
	}
	internal := apperror.Internal()
	writeJSON(w, internal.StatusCode, APIResponse{
		Success: false,
		Error: &ErrorBody{
			Code:    internal.Code,
			Message: internal.Message,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
