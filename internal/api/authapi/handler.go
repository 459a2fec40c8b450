package authapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/auth"
)

// Handler handles login and permission check requests.
type Handler struct {
	auth *auth.Service
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := api.ReadJSON(r, &body); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	problems := map[string]string{}
	if body.Email == "" {
		problems["email"] = "email is required"
	}
	if body.Password == "" {
		problems["password"] = "password is required"
	}
	if len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	session, err := h.auth.Login(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.WriteError(w, http.StatusUnauthorized,
				api.NewUnauthorizedError("Invalid email or password", api.CorrelationID(r.Context())))
			return
		}
		api.WriteError(w, http.StatusInternalServerError,
			api.NewInternalError(api.CorrelationID(r.Context())))
		return
	}
	api.WriteJSON(w, http.StatusOK, session)
}

// CheckPermission handles GET /api/auth/permissions/check. The role comes
// from the session token when one is presented, otherwise from the role query
// parameter, defaulting to viewer.
func (h *Handler) CheckPermission(w http.ResponseWriter, r *http.Request) {
	permission := r.URL.Query().Get("permission")
	if permission == "" {
		api.WriteValidationProblems(w, r, map[string]string{"permission": "permission is required"})
		return
	}

	role := r.URL.Query().Get("role")
	if token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "); token != "" {
		if session, ok := h.auth.SessionByToken(token); ok {
			role = session.Role
		}
	}
	if role == "" {
		role = "viewer"
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"role":       role,
		"permission": permission,
		"allowed":    auth.HasPermission(role, permission),
	})
}
