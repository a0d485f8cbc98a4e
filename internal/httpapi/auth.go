// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package httpapi

import (
	"net/http"
	"strings"
)

// requireBearer enforces the uniform bearer auth header on every
// namespace/document/query route. Grounded on
// internal/server/auth_middleware.go's header-parsing shape, adapted to
// delegate validation to the service's constant-time secret compare.
func (s *Server) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization header", nil)
			return
		}

		secret := strings.TrimSpace(authHeader)
		secret = strings.TrimPrefix(secret, "Bearer ")

		if err := s.svc.ValidateSecret(secret); err != nil {
			writeAppError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
