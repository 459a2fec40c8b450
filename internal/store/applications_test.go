package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

func createApplication(t *testing.T, s *store.Store) *domain.RentalApplication {
	t.Helper()
	ctx := context.Background()

	contact, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Sam", LastName: "Okafor", ContactType: "applicant"})
	require.NoError(t, err)

	app, err := s.Applications.Create(ctx, &domain.RentalApplicationInput{ContactID: contact.ID})
	require.NoError(t, err)
	return app
}

func TestApplicationCreateDefaults(t *testing.T) {
	s := newStore(t)
	app := createApplication(t, s)

	assert.Equal(t, "submitted", app.Status)
	assert.JSONEq(t, "{}", string(app.ApplicationData), "missing form data becomes an empty object")

	got, err := s.Applications.Get(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.Status, got.Status)
	assert.JSONEq(t, "{}", string(got.ApplicationData))
}

func TestApplicationStatusFlow(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	app := createApplication(t, s)

	reviewed, err := s.Applications.UpdateStatus(ctx, app.ID, "under review")
	require.NoError(t, err)
	assert.Equal(t, "under review", reviewed.Status)

	approved, err := s.Applications.UpdateStatus(ctx, app.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	_, err = s.Applications.UpdateStatus(ctx, app.ID, "denied")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestApplicationDirectApproval(t *testing.T) {
	s := newStore(t)
	app := createApplication(t, s)

	approved, err := s.Applications.UpdateStatus(context.Background(), app.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
}

func TestApplicationUnknownStatusRejected(t *testing.T) {
	s := newStore(t)
	app := createApplication(t, s)

	_, err := s.Applications.UpdateStatus(context.Background(), app.ID, "escalated")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestApplicationUpdateStatusNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.Applications.UpdateStatus(context.Background(), 9999, "approved")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestApplicationDataRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	contact, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Sam", LastName: "Okafor"})
	require.NoError(t, err)

	data := `{"fullName":"Sam Okafor","monthlyIncome":4200,"pets":false}`
	app, err := s.Applications.Create(ctx, &domain.RentalApplicationInput{
		ContactID:       contact.ID,
		ApplicationData: json.RawMessage(data),
	})
	require.NoError(t, err)

	got, err := s.Applications.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.JSONEq(t, data, string(got.ApplicationData))
}

func TestTemplateFieldsRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	created, err := s.Templates.Create(ctx, &domain.ApplicationTemplateInput{
		Name: "Standard Rental Application",
		Fields: []domain.TemplateField{
			{Name: "fullName", Label: "Full name", Type: "text", Required: true, Order: 1},
			{Name: "pets", Label: "Do you have pets?", Type: "boolean", Order: 2},
		},
	})
	require.NoError(t, err)

	got, err := s.Templates.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Fields, 2)
	assert.Equal(t, "fullName", got.Fields[0].Name)
	assert.True(t, got.Fields[0].Required)
	assert.Equal(t, 2, got.Fields[1].Order)
}
