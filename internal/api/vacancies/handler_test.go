package vacancies_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/api/vacancies"
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
	vacancies.RegisterRoutes(mux, s)

	handler := api.Chain(mux, api.RequestID())
	return httptest.NewServer(handler)
}

func TestListVacanciesDefaultsToActive(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/vacancies")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result []domain.Vacancy
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("expected 1 active vacancy, got %d", len(result))
	}
	if result[0].Status != "active" {
		t.Errorf("expected status=active, got %s", result[0].Status)
	}
}

func TestListVacanciesExplicitStatus(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/vacancies?status=inactive")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var result []domain.Vacancy
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("expected 1 inactive vacancy, got %d", len(result))
	}
}

func TestManageVacancies(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/vacancies/manage")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var listings []domain.VacancyListing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(listings) != 2 {
		t.Fatalf("expected 2 listings in the management view, got %d", len(listings))
	}
	for _, l := range listings {
		if l.UnitNumber == "" {
			t.Error("expected a unit number on every listing")
		}
		if l.PropertyName == "" {
			t.Error("expected a property name on every listing")
		}
	}
}

func TestGetVacancyAmenities(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/vacancies/1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var v domain.Vacancy
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(v.Amenities) != 2 {
		t.Errorf("expected 2 amenities, got %v", v.Amenities)
	}
	if len(v.IncludedUtilities) != 2 {
		t.Errorf("expected 2 included utilities, got %v", v.IncludedUtilities)
	}
}

func TestManageNotShadowedByIDRoute(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	// "manage" must never be parsed as a vacancy id.
	resp, err := http.Get(srv.URL + "/api/vacancies/manage")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusBadRequest {
		t.Fatal("manage route was handled as an id lookup")
	}
}

func TestGetVacancyNotFound(t *testing.T) {
	srv := setupServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/vacancies/9999")
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
