// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/doculens/doculens/internal/apperror"
)

// handleUploadDocument reads the multipart `metadata` field and `file`
// field, creates the pending document row, puts the blob, and publishes
// the extraction task. Grounded on
// fbrzx-airplane-chat/internal/server/server.go's handleUploadDocument.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ns, err := s.svc.GetNamespace(r.Context(), name)
	if err != nil {
		writeAppError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeAppError(w, apperror.NewBadRequest("failed to parse multipart form"))
		return
	}

	var metadata json.RawMessage
	if raw := r.FormValue("metadata"); raw != "" {
		metadata = json.RawMessage(raw)
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeAppError(w, apperror.NewBadRequest("the file field is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeAppError(w, apperror.NewBadRequest("failed to read uploaded file"))
		return
	}

	doc, err := s.svc.CreateDocument(r.Context(), ns, metadata)
	if err != nil {
		writeAppError(w, err)
		return
	}

	if err := s.svc.UploadAndDispatch(r.Context(), ns, doc, data); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ns, err := s.svc.GetNamespace(r.Context(), name)
	if err != nil {
		writeAppError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, apperror.NewBadRequest("invalid document id"))
		return
	}

	doc, err := s.svc.GetDocument(r.Context(), ns, id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleRemoveDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ns, err := s.svc.GetNamespace(r.Context(), name)
	if err != nil {
		writeAppError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, apperror.NewBadRequest("invalid document id"))
		return
	}

	doc, err := s.svc.RemoveDocument(r.Context(), ns, id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
