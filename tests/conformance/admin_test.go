package conformance_test

import (
	"net/http"
	"testing"
)

func TestAdminStats(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/_admin/stats", nil)
	mustStatus(t, resp, http.StatusOK)
	stats := readJSON(t, resp)

	expected := map[string]float64{
		"properties": 2,
		"units":      5,
		"contacts":   5,
		"tenants":    2,
		"leases":     2,
		"payments":   6,
		"vacancies":  2,
		"leads":      1,
	}
	for table, want := range expected {
		got, ok := stats[table].(float64)
		if !ok {
			t.Errorf("missing count for %s", table)
			continue
		}
		if got != want {
			t.Errorf("count for %s = %v, want %v", table, got, want)
		}
	}
}

func TestAdminResetRestoresSeedState(t *testing.T) {
	resetServer(t)

	// Dirty the data set.
	createContact(t, map[string]any{"firstName": "Temp", "lastName": "Person"})

	resp := doRequest(t, http.MethodGet, "/api/contacts", nil)
	mustStatus(t, resp, http.StatusOK)
	if n := len(readJSONArray(t, resp)); n != 6 {
		t.Fatalf("expected 6 contacts before reset, got %d", n)
	}

	resetServer(t)

	resp2 := doRequest(t, http.MethodGet, "/api/contacts", nil)
	mustStatus(t, resp2, http.StatusOK)
	if n := len(readJSONArray(t, resp2)); n != 5 {
		t.Fatalf("expected 5 contacts after reset, got %d", n)
	}
}

func TestUnknownRouteEnvelope(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/unknown-resource", nil)
	mustStatus(t, resp, http.StatusNotFound)

	body := readJSON(t, resp)
	assertError(t, body, "NOT_FOUND")
}

func TestInvalidIDEnvelope(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/contacts/not-a-number", nil)
	mustStatus(t, resp, http.StatusBadRequest)

	body := readJSON(t, resp)
	assertError(t, body, "VALIDATION_ERROR")
}

func TestInvalidJSONBodyEnvelope(t *testing.T) {
	resetServer(t)

	req, err := http.NewRequest(http.MethodPost, serverURL+"/api/contacts", nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	mustStatus(t, resp, http.StatusBadRequest)
	assertError(t, readJSON(t, resp), "VALIDATION_ERROR")
}
