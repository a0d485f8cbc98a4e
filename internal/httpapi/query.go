// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/doculens/doculens/internal/apperror"
)

type queryRequest struct {
	Query string `json:"query"`
	K     int    `json:"k"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ns, err := s.svc.GetNamespace(r.Context(), name)
	if err != nil {
		writeAppError(w, err)
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, apperror.NewBadRequest("failed to parse request body"))
		return
	}

	chunks, err := s.svc.Query(r.Context(), ns, req.Query, req.K)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chunks)
}
