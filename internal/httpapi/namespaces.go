// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/doculens/doculens/internal/apperror"
	"github.com/doculens/doculens/internal/model"
)

type createNamespaceRequest struct {
	Name   string                 `json:"name"`
	Config *model.NamespaceConfig `json:"config"`
}

func (s *Server) handleCreateNamespace(w http.ResponseWriter, r *http.Request) {
	var req createNamespaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, apperror.NewBadRequest("failed to parse request body"))
		return
	}

	cfg := model.DefaultNamespaceConfig()
	if req.Config != nil {
		cfg = *req.Config
	}

	ns, err := s.svc.CreateNamespace(r.Context(), req.Name, cfg)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ns)
}

func (s *Server) handleRemoveNamespace(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ns, err := s.svc.RemoveNamespace(r.Context(), name)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ns)
}
