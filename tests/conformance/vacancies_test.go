package conformance_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestVacanciesPublicListing(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/vacancies", nil)
	mustStatus(t, resp, http.StatusOK)
	listings := readJSONArray(t, resp)

	if len(listings) != 1 {
		t.Fatalf("expected 1 active listing, got %d", len(listings))
	}
	assertStringField(t, listings[0], "status", "active")

	amenities, ok := listings[0]["amenities"].([]any)
	if !ok {
		t.Fatalf("expected amenities array, got %T", listings[0]["amenities"])
	}
	if len(amenities) != 2 {
		t.Errorf("expected 2 amenities, got %v", amenities)
	}
}

func TestVacanciesManagementView(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/vacancies/manage", nil)
	mustStatus(t, resp, http.StatusOK)
	listings := readJSONArray(t, resp)

	if len(listings) != 2 {
		t.Fatalf("expected 2 listings in the management view, got %d", len(listings))
	}
	for _, l := range listings {
		if l["unitNumber"] == nil || l["unitNumber"] == "" {
			t.Error("expected unitNumber on every management listing")
		}
		if l["propertyName"] == nil || l["propertyName"] == "" {
			t.Error("expected propertyName on every management listing")
		}
	}
}

func TestVacancyStatusTransitionRejected(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/vacancies", nil)
	mustStatus(t, resp, http.StatusOK)
	active := readJSONArray(t, resp)
	if len(active) == 0 {
		t.Fatal("expected a seeded active vacancy")
	}
	id := idOf(t, active[0])

	rent := doRequest(t, http.MethodPut, fmt.Sprintf("/api/vacancies/%d", id), map[string]any{
		"status": "rented",
	})
	mustStatus(t, rent, http.StatusOK)
	_ = rent.Body.Close()

	back := doRequest(t, http.MethodPut, fmt.Sprintf("/api/vacancies/%d", id), map[string]any{
		"status": "active",
	})
	mustStatus(t, back, http.StatusConflict)
	assertError(t, readJSON(t, back), "INVALID_TRANSITION")
}

func TestLeadsSeedAndFunnel(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/leads", nil)
	mustStatus(t, resp, http.StatusOK)
	leads := readJSONArray(t, resp)
	if len(leads) != 1 {
		t.Fatalf("expected 1 seeded lead, got %d", len(leads))
	}
	assertStringField(t, leads[0], "status", "qualified")
	id := idOf(t, leads[0])

	converted := doRequest(t, http.MethodPut, fmt.Sprintf("/api/leads/%d", id), map[string]any{
		"status": "converted",
	})
	mustStatus(t, converted, http.StatusOK)
	assertStringField(t, readJSON(t, converted), "status", "converted")

	// Converted is terminal.
	back := doRequest(t, http.MethodPut, fmt.Sprintf("/api/leads/%d", id), map[string]any{
		"status": "new",
	})
	mustStatus(t, back, http.StatusConflict)
	assertError(t, readJSON(t, back), "INVALID_TRANSITION")
}
