// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/doculens/doculens/internal/apperror"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	json.NewEncoder(w).Encode(payload)
}

// errorBody matches spec.md §6's error shape: {message, solution?}.
type errorBody struct {
	Message  string  `json:"message"`
	Solution *string `json:"solution,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string, solution *string) {
	writeJSON(w, status, errorBody{Message: message, Solution: solution})
}

// writeAppError translates an apperror.Error into the wire error shape
// and its mapped HTTP status; any other error is a 500.
func writeAppError(w http.ResponseWriter, err error) {
	if appErr, ok := apperror.As(err); ok {
		writeError(w, appErr.HTTPStatus(), appErr.Message, appErr.Solution)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error(), nil)
}
