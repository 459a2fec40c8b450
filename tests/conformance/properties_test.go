package conformance_test

import (
	"fmt"
	"net/http"
	"testing"
)

func seededPropertyID(t *testing.T, name string) int64 {
	t.Helper()
	resp := doRequest(t, http.MethodGet, "/api/properties", nil)
	mustStatus(t, resp, http.StatusOK)
	for _, p := range readJSONArray(t, resp) {
		if p["name"] == name {
			return idOf(t, p)
		}
	}
	t.Fatalf("seeded property %q not found", name)
	return 0
}

func TestPropertiesSeedData(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/properties", nil)
	mustStatus(t, resp, http.StatusOK)
	props := readJSONArray(t, resp)
	if len(props) != 2 {
		t.Fatalf("expected 2 seeded properties, got %d", len(props))
	}
}

func TestPropertyUnitsSubResource(t *testing.T) {
	resetServer(t)
	id := seededPropertyID(t, "Maple Court Apartments")

	resp := doRequest(t, http.MethodGet, fmt.Sprintf("/api/properties/%d/units", id), nil)
	mustStatus(t, resp, http.StatusOK)
	units := readJSONArray(t, resp)
	if len(units) != 3 {
		t.Fatalf("expected 3 units, got %d", len(units))
	}
}

func TestPropertyInsuranceAndMortgages(t *testing.T) {
	resetServer(t)
	id := seededPropertyID(t, "Maple Court Apartments")

	insResp := doRequest(t, http.MethodGet, fmt.Sprintf("/api/properties/%d/insurance-policies", id), nil)
	mustStatus(t, insResp, http.StatusOK)
	policies := readJSONArray(t, insResp)
	if len(policies) != 1 {
		t.Fatalf("expected 1 insurance policy, got %d", len(policies))
	}
	assertStringField(t, policies[0], "policyNumber", "HM-88421-IL")

	mortResp := doRequest(t, http.MethodGet, fmt.Sprintf("/api/properties/%d/mortgages", id), nil)
	mustStatus(t, mortResp, http.StatusOK)
	mortgages := readJSONArray(t, mortResp)
	if len(mortgages) != 1 {
		t.Fatalf("expected 1 mortgage, got %d", len(mortgages))
	}
}

func TestPropertyDeleteLeavesUnitsDangling(t *testing.T) {
	resetServer(t)
	id := seededPropertyID(t, "Birchwood Duplex")

	del := doRequest(t, http.MethodDelete, fmt.Sprintf("/api/properties/%d", id), nil)
	mustStatus(t, del, http.StatusNoContent)
	_ = del.Body.Close()

	// Units survive; they reference a property that no longer exists.
	resp := doRequest(t, http.MethodGet, "/api/units", nil)
	mustStatus(t, resp, http.StatusOK)
	units := readJSONArray(t, resp)
	if len(units) != 5 {
		t.Fatalf("expected 5 units after property delete, got %d", len(units))
	}
}

func TestMaintenanceRequestLifecycle(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/maintenance-requests?status=open", nil)
	mustStatus(t, resp, http.StatusOK)
	open := readJSONArray(t, resp)
	if len(open) != 1 {
		t.Fatalf("expected 1 open request, got %d", len(open))
	}
	id := idOf(t, open[0])

	done := doRequest(t, http.MethodPut, fmt.Sprintf("/api/maintenance-requests/%d", id), map[string]any{
		"status": "completed",
	})
	mustStatus(t, done, http.StatusOK)
	assertStringField(t, readJSON(t, done), "status", "completed")

	reopen := doRequest(t, http.MethodPut, fmt.Sprintf("/api/maintenance-requests/%d", id), map[string]any{
		"status": "open",
	})
	mustStatus(t, reopen, http.StatusConflict)
	assertError(t, readJSON(t, reopen), "INVALID_TRANSITION")
}

func TestLeasePaymentsSubResource(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/leases", nil)
	mustStatus(t, resp, http.StatusOK)
	leases := readJSONArray(t, resp)
	if len(leases) != 2 {
		t.Fatalf("expected 2 seeded leases, got %d", len(leases))
	}

	id := idOf(t, leases[0])
	payResp := doRequest(t, http.MethodGet, fmt.Sprintf("/api/leases/%d/payments", id), nil)
	mustStatus(t, payResp, http.StatusOK)
	payments := readJSONArray(t, payResp)
	if len(payments) != 3 {
		t.Fatalf("expected 3 payments on the seeded lease, got %d", len(payments))
	}
}

func TestNotificationMarkRead(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/api/contacts", nil)
	mustStatus(t, resp, http.StatusOK)
	var jordanID int64
	for _, c := range readJSONArray(t, resp) {
		if c["email"] == "jordan.reyes@example.com" {
			jordanID = idOf(t, c)
		}
	}
	if jordanID == 0 {
		t.Fatal("seeded contact jordan.reyes@example.com not found")
	}

	listResp := doRequest(t, http.MethodGet, fmt.Sprintf("/api/contacts/%d/notifications", jordanID), nil)
	mustStatus(t, listResp, http.StatusOK)
	notifications := readJSONArray(t, listResp)
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	if notifications[0]["read"] != false {
		t.Error("expected the seeded notification to be unread")
	}

	nid := idOf(t, notifications[0])
	readResp := doRequest(t, http.MethodPut, fmt.Sprintf("/api/notifications/%d/read", nid), nil)
	mustStatus(t, readResp, http.StatusOK)
	marked := readJSON(t, readResp)
	if marked["read"] != true {
		t.Error("expected the notification to be marked read")
	}
}
