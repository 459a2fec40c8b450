package applications_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/api/applications"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/seed"
	"github.com/rentline/rentline/internal/store"
	"github.com/rentline/rentline/internal/testhelpers"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := testhelpers.NewTestDB(t)

	if err := seed.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := store.New(db)
	mux := http.NewServeMux()
	applications.RegisterRoutes(mux, s)

	handler := api.Chain(mux, api.RequestID())
	return httptest.NewServer(handler)
}

func patchStatus(t *testing.T, srv *httptest.Server, id string, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/api/applications/"+id+"/status", bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	return resp
}

func TestCreateApplicationMissingContact(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/applications", "application/json", bytes.NewReader([]byte(`{}`)))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var apiErr api.Error
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if apiErr.Category != api.CategoryValidationError {
		t.Errorf("expected category=%s, got %s", api.CategoryValidationError, apiErr.Category)
	}
	if apiErr.Details["contactId"] == "" {
		t.Error("expected a contactId detail")
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp := patchStatus(t, srv, "1", `{"status":"approved"}`)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var app domain.RentalApplication
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if app.Status != "approved" {
		t.Errorf("expected status=approved, got %s", app.Status)
	}

	// The change is persisted.
	getResp, err := http.Get(srv.URL + "/api/applications/1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = getResp.Body.Close() }()

	var fetched domain.RentalApplication
	if err := json.NewDecoder(getResp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.Status != "approved" {
		t.Errorf("expected persisted status=approved, got %s", fetched.Status)
	}
}

func TestUpdateApplicationStatusInvalidTransition(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp := patchStatus(t, srv, "1", `{"status":"approved"}`)
	_ = resp.Body.Close()

	resp2 := patchStatus(t, srv, "1", `{"status":"denied"}`)
	defer func() { _ = resp2.Body.Close() }()

	if resp2.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp2.StatusCode)
	}

	var apiErr api.Error
	if err := json.NewDecoder(resp2.Body).Decode(&apiErr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if apiErr.Category != api.CategoryInvalidTransition {
		t.Errorf("expected category=%s, got %s", api.CategoryInvalidTransition, apiErr.Category)
	}
}

func TestUpdateApplicationStatusMissingBodyField(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp := patchStatus(t, srv, "1", `{}`)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var apiErr api.Error
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if apiErr.Details["status"] == "" {
		t.Error("expected a status detail")
	}
}

func TestUpdateApplicationStatusNotFound(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp := patchStatus(t, srv, "9999", `{"status":"approved"}`)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestListTemplates(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/application-templates")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var templates []domain.ApplicationTemplate
	if err := json.NewDecoder(resp.Body).Decode(&templates); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(templates))
	}
	if len(templates[0].Fields) == 0 {
		t.Error("expected template fields")
	}
}
