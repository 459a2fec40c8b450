package conformance_test

import (
	"net/http"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@rentline.local",
		"password": "rentline",
	})
	mustStatus(t, resp, http.StatusOK)

	session := readJSON(t, resp)
	assertStringField(t, session, "email", "admin@rentline.local")
	assertStringField(t, session, "role", "admin")
	if session["token"] == nil || session["token"] == "" {
		t.Error("expected a session token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@rentline.local",
		"password": "wrong",
	})
	mustStatus(t, resp, http.StatusUnauthorized)
	assertError(t, readJSON(t, resp), "UNAUTHORIZED")
}

func TestLoginMissingFields(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPost, "/api/auth/login", map[string]any{})
	mustStatus(t, resp, http.StatusBadRequest)

	body := readJSON(t, resp)
	assertError(t, body, "VALIDATION_ERROR")
	details := assertIsObject(t, body, "details")
	if details["email"] == nil || details["password"] == nil {
		t.Errorf("expected email and password details, got %v", details)
	}
}

func TestPermissionCheckDefaultsToViewer(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/auth/permissions/check?permission=properties:write", nil)
	mustStatus(t, resp, http.StatusOK)

	body := readJSON(t, resp)
	assertStringField(t, body, "role", "viewer")
	if body["allowed"] != false {
		t.Error("viewer must not hold properties:write")
	}
}

func TestPermissionCheckWithSessionToken(t *testing.T) {
	resetServer(t)

	loginResp := doRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@rentline.local",
		"password": "rentline",
	})
	mustStatus(t, loginResp, http.StatusOK)
	token := readJSON(t, loginResp)["token"].(string)

	req, err := http.NewRequest(http.MethodGet, serverURL+"/api/auth/permissions/check?permission=properties:write", nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	mustStatus(t, resp, http.StatusOK)

	body := readJSON(t, resp)
	assertStringField(t, body, "role", "admin")
	if body["allowed"] != true {
		t.Error("admin must hold properties:write")
	}
}

func TestPermissionCheckRequiresPermissionParam(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/auth/permissions/check", nil)
	mustStatus(t, resp, http.StatusBadRequest)
	assertError(t, readJSON(t, resp), "VALIDATION_ERROR")
}
