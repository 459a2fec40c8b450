package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

func createLease(t *testing.T, s *store.Store) *domain.Lease {
	t.Helper()
	ctx := context.Background()

	property, err := s.Properties.Create(ctx, &domain.PropertyInput{
		Name: "Maple Court Apartments", Street: "410 Maple Ct", City: "Springfield", State: "IL", Zip: "62704",
	})
	require.NoError(t, err)

	unit, err := s.Units.Create(ctx, &domain.UnitInput{
		PropertyID: property.ID, UnitNumber: "101", Bedrooms: 2, Bathrooms: 1, MarketRent: 1250,
	})
	require.NoError(t, err)

	contact, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Jordan", LastName: "Reyes", ContactType: "tenant"})
	require.NoError(t, err)

	tenant, err := s.Tenants.Create(ctx, &domain.TenantInput{ContactID: contact.ID})
	require.NoError(t, err)

	lease, err := s.Leases.Create(ctx, &domain.LeaseInput{
		UnitID:     unit.ID,
		TenantID:   tenant.ID,
		StartDate:  "2024-09-01",
		EndDate:    "2025-08-31",
		RentAmount: 1250,
	})
	require.NoError(t, err)
	return lease
}

func TestLeaseCreateDefaultsToActive(t *testing.T) {
	s := newStore(t)
	lease := createLease(t, s)
	assert.Equal(t, "active", lease.Status)
}

func TestLeaseStatusTransitions(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	lease := createLease(t, s)

	expired, err := s.Leases.Update(ctx, lease.ID, &domain.LeaseUpdate{Status: strPtr("expired")})
	require.NoError(t, err)
	assert.Equal(t, "expired", expired.Status)

	_, err = s.Leases.Update(ctx, lease.ID, &domain.LeaseUpdate{Status: strPtr("active")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := s.Leases.Get(ctx, lease.ID)
	require.NoError(t, err)
	assert.Equal(t, "expired", got.Status, "rejected update leaves the row untouched")
}

func TestLeaseUpdateNonStatusFieldsOnTerminalLease(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	lease := createLease(t, s)

	_, err := s.Leases.Update(ctx, lease.ID, &domain.LeaseUpdate{Status: strPtr("terminated")})
	require.NoError(t, err)

	updated, err := s.Leases.Update(ctx, lease.ID, &domain.LeaseUpdate{RentAmount: floatPtr(1300)})
	require.NoError(t, err, "non-status edits stay allowed after a terminal status")
	assert.Equal(t, 1300.0, updated.RentAmount)
	assert.Equal(t, "terminated", updated.Status)
}

func TestPaymentStatusTransitions(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	lease := createLease(t, s)

	payment, err := s.Payments.Create(ctx, &domain.PaymentInput{
		LeaseID: lease.ID, Amount: 1250, PaymentDate: "2024-11-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", payment.Status)
	assert.Equal(t, "rent", payment.PaymentType)

	completed, err := s.Payments.Update(ctx, payment.ID, &domain.PaymentUpdate{Status: strPtr("completed")})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)

	_, err = s.Payments.Update(ctx, payment.ID, &domain.PaymentUpdate{Status: strPtr("pending")})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPaymentsListByLease(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	lease := createLease(t, s)

	for _, date := range []string{"2024-11-01", "2024-12-01"} {
		_, err := s.Payments.Create(ctx, &domain.PaymentInput{LeaseID: lease.ID, Amount: 1250, PaymentDate: date})
		require.NoError(t, err)
	}
	_, err := s.Payments.Create(ctx, &domain.PaymentInput{LeaseID: lease.ID + 100, Amount: 900, PaymentDate: "2024-11-01"})
	require.NoError(t, err)

	payments, err := s.Payments.ListByLease(ctx, lease.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func floatPtr(f float64) *float64 { return &f }
