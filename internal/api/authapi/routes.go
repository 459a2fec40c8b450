package authapi

import (
	"net/http"

	"github.com/rentline/rentline/internal/auth"
)

// RegisterRoutes adds the auth endpoints to the given mux. These are stubs:
// nothing applies them to the resource routes.
func RegisterRoutes(mux *http.ServeMux, svc *auth.Service) {
	h := &Handler{auth: svc}

	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("GET /api/auth/permissions/check", h.CheckPermission)
}
