package conformance_test

import (
	"fmt"
	"net/http"
	"testing"
)

// seededApplicationID looks up the id of the single seeded application. Row
// ids are not stable across resets because AUTOINCREMENT sequences survive
// the data wipe.
func seededApplicationID(t *testing.T) int64 {
	t.Helper()
	resp := doRequest(t, http.MethodGet, "/api/applications", nil)
	mustStatus(t, resp, http.StatusOK)
	apps := readJSONArray(t, resp)
	if len(apps) != 1 {
		t.Fatalf("expected 1 seeded application, got %d", len(apps))
	}
	return idOf(t, apps[0])
}

func TestApplicationRequiresContact(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPost, "/api/applications", map[string]any{
		"applicationData": map[string]any{"fullName": "Sam Okafor"},
	})
	mustStatus(t, resp, http.StatusBadRequest)

	body := readJSON(t, resp)
	assertError(t, body, "VALIDATION_ERROR")
	details := assertIsObject(t, body, "details")
	if details["contactId"] == nil {
		t.Error("expected a contactId detail")
	}
}

func TestApplicationStatusPatch(t *testing.T) {
	resetServer(t)
	id := seededApplicationID(t)

	resp := doRequest(t, http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", id), map[string]any{
		"status": "approved",
	})
	mustStatus(t, resp, http.StatusOK)
	patched := readJSON(t, resp)
	assertStringField(t, patched, "status", "approved")

	getResp := doRequest(t, http.MethodGet, fmt.Sprintf("/api/applications/%d", id), nil)
	mustStatus(t, getResp, http.StatusOK)
	assertStringField(t, readJSON(t, getResp), "status", "approved")
}

func TestApplicationStatusPatchInvalidTransition(t *testing.T) {
	resetServer(t)
	id := seededApplicationID(t)

	resp := doRequest(t, http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", id), map[string]any{
		"status": "approved",
	})
	mustStatus(t, resp, http.StatusOK)
	_ = resp.Body.Close()

	resp2 := doRequest(t, http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", id), map[string]any{
		"status": "denied",
	})
	mustStatus(t, resp2, http.StatusConflict)
	assertError(t, readJSON(t, resp2), "INVALID_TRANSITION")
}

func TestApplicationStatusPatchMissingStatus(t *testing.T) {
	resetServer(t)
	id := seededApplicationID(t)

	resp := doRequest(t, http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", id), map[string]any{})
	mustStatus(t, resp, http.StatusBadRequest)

	body := readJSON(t, resp)
	assertError(t, body, "VALIDATION_ERROR")
	details := assertIsObject(t, body, "details")
	if details["status"] == nil {
		t.Error("expected a status detail")
	}
}

func TestApplicationStatusPatchNotFound(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPatch, "/api/applications/999999/status", map[string]any{
		"status": "approved",
	})
	mustStatus(t, resp, http.StatusNotFound)
	assertError(t, readJSON(t, resp), "NOT_FOUND")
}

func TestApplicationCreateRoundTrip(t *testing.T) {
	resetServer(t)

	contact := createContact(t, map[string]any{
		"firstName": "Noor", "lastName": "Haddad", "contactType": "applicant",
	})

	resp := doRequest(t, http.MethodPost, "/api/applications", map[string]any{
		"contactId": idOf(t, contact),
		"applicationData": map[string]any{
			"fullName":      "Noor Haddad",
			"monthlyIncome": 3900,
		},
	})
	mustStatus(t, resp, http.StatusCreated)
	created := readJSON(t, resp)
	assertStringField(t, created, "status", "submitted")

	data := assertIsObject(t, created, "applicationData")
	assertStringField(t, data, "fullName", "Noor Haddad")
}

func TestApplicationSeedData(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/applications", nil)
	mustStatus(t, resp, http.StatusOK)
	apps := readJSONArray(t, resp)
	if len(apps) != 1 {
		t.Fatalf("expected 1 seeded application, got %d", len(apps))
	}
	assertStringField(t, apps[0], "status", "submitted")

	// The seeded application links back to a lead and a vacancy.
	if apps[0]["leadId"] == nil {
		t.Error("expected seeded application to reference a lead")
	}
	if apps[0]["vacancyId"] == nil {
		t.Error("expected seeded application to reference a vacancy")
	}
}
