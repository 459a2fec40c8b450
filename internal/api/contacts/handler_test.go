package contacts_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/api/addresses"
	"github.com/rentline/rentline/internal/api/contacts"
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
	contacts.RegisterRoutes(mux, s)
	addresses.RegisterRoutes(mux, s)

	handler := api.Chain(mux, api.RequestID())
	return httptest.NewServer(handler)
}

func TestListContacts(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/contacts")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result []domain.Contact
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(result) != 5 {
		t.Errorf("expected 5 contacts, got %d", len(result))
	}
}

func TestListContactsFilterByType(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/contacts?type=vendor")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var result []domain.Contact
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("expected 1 vendor, got %d", len(result))
	}
	if result[0].FirstName != "Dana" {
		t.Errorf("expected Dana, got %s", result[0].FirstName)
	}
}

func TestCreateContact(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	body := []byte(`{"firstName":"Ada","lastName":"Lovelace","contactType":"tenant"}`)
	resp, err := http.Post(srv.URL+"/api/contacts", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created domain.Contact
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected a generated id")
	}
	if created.Status != "active" {
		t.Errorf("expected status=active, got %s", created.Status)
	}
}

func TestCreateContactValidation(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	body := []byte(`{"lastName":"Lovelace"}`)
	resp, err := http.Post(srv.URL+"/api/contacts", "application/json", bytes.NewReader(body))
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
	if apiErr.Details["firstName"] == "" {
		t.Error("expected a firstName detail")
	}
	if apiErr.CorrelationID == "" {
		t.Error("expected a correlation id")
	}
}

func TestGetContactNotFound(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/contacts/9999")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var apiErr api.Error
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if apiErr.Category != api.CategoryNotFound {
		t.Errorf("expected category=%s, got %s", api.CategoryNotFound, apiErr.Category)
	}
}

func TestGetContactInvalidID(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/contacts/abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDeleteContact(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/contacts/1", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp2, err := http.Get(srv.URL + "/api/contacts/1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	defer func() { _ = resp2.Body.Close() }()

	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp2.StatusCode)
	}
}

func TestLinkAddressMarksPrimary(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	addrBody := []byte(`{"street":"22 Elm St","city":"Springfield","state":"IL","zip":"62704"}`)
	addrResp, err := http.Post(srv.URL+"/api/addresses", "application/json", bytes.NewReader(addrBody))
	if err != nil {
		t.Fatalf("post address: %v", err)
	}
	defer func() { _ = addrResp.Body.Close() }()

	var addr domain.Address
	if err := json.NewDecoder(addrResp.Body).Decode(&addr); err != nil {
		t.Fatalf("decode address: %v", err)
	}

	linkBody, _ := json.Marshal(map[string]any{"addressId": addr.ID, "addressType": "work", "isPrimary": true})
	linkResp, err := http.Post(srv.URL+"/api/contacts/1/addresses", "application/json", bytes.NewReader(linkBody))
	if err != nil {
		t.Fatalf("post link: %v", err)
	}
	defer func() { _ = linkResp.Body.Close() }()

	if linkResp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", linkResp.StatusCode)
	}

	listResp, err := http.Get(srv.URL + "/api/contacts/1/addresses")
	if err != nil {
		t.Fatalf("get addresses: %v", err)
	}
	defer func() { _ = listResp.Body.Close() }()

	var linked []domain.LinkedAddress
	if err := json.NewDecoder(listResp.Body).Decode(&linked); err != nil {
		t.Fatalf("decode addresses: %v", err)
	}

	primaries := 0
	for _, la := range linked {
		if la.IsPrimary {
			primaries++
			if la.ID != addr.ID {
				t.Errorf("expected address %d to be primary, got %d", addr.ID, la.ID)
			}
		}
	}
	if primaries != 1 {
		t.Errorf("expected exactly one primary address, got %d", primaries)
	}
}
