package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
	"github.com/rentline/rentline/internal/testhelpers"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(testhelpers.NewTestDB(t))
}

func strPtr(s string) *string { return &s }

func TestContactCreateThenGet(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	created, err := s.Contacts.Create(ctx, &domain.ContactInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		ContactType: "tenant",
		Email:       strPtr("ada@example.com"),
	})
	require.NoError(t, err)
	require.Positive(t, created.ID)
	assert.Equal(t, "active", created.Status, "omitted status gets the default")
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := s.Contacts.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestContactGetNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.Contacts.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestContactUpdateMergesPatch(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	created, err := s.Contacts.Create(ctx, &domain.ContactInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		ContactType: "tenant",
		Notes:       strPtr("prefers email"),
	})
	require.NoError(t, err)

	updated, err := s.Contacts.Update(ctx, created.ID, &domain.ContactUpdate{
		LastName: strPtr("King"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", updated.FirstName, "untouched field survives")
	assert.Equal(t, "King", updated.LastName)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "prefers email", *updated.Notes)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt, "updatedAt must move strictly forward")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestContactUpdateNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.Contacts.Update(context.Background(), 9999, &domain.ContactUpdate{FirstName: strPtr("X")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestContactDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	created, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	existed, err := s.Contacts.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = s.Contacts.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	existed, err = s.Contacts.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, existed, "second delete reports the row was already gone")
}

func TestContactIDsNeverReused(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	first, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	_, err = s.Contacts.Delete(ctx, first.ID)
	require.NoError(t, err)

	second, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Grace", LastName: "Hopper"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestContactListFilters(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Ada", LastName: "Lovelace", ContactType: "tenant"})
	require.NoError(t, err)
	_, err = s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Dana", LastName: "Whitfield", ContactType: "vendor"})
	require.NoError(t, err)

	all, err := s.Contacts.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tenants, err := s.Contacts.List(ctx, "tenant", "")
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "Ada", tenants[0].FirstName)
}

func TestPrimaryAddressInvariant(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	contact, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	first, err := s.Addresses.Create(ctx, &domain.AddressInput{Street: "1 Analytical Way", City: "London", State: "LN", Zip: "10001"})
	require.NoError(t, err)
	second, err := s.Addresses.Create(ctx, &domain.AddressInput{Street: "2 Engine House", City: "London", State: "LN", Zip: "10002"})
	require.NoError(t, err)

	_, err = s.Contacts.AddAddress(ctx, contact.ID, &domain.LinkAddressInput{AddressID: first.ID, IsPrimary: true})
	require.NoError(t, err)
	_, err = s.Contacts.AddAddress(ctx, contact.ID, &domain.LinkAddressInput{AddressID: second.ID, IsPrimary: true})
	require.NoError(t, err)

	linked, err := s.Contacts.Addresses(ctx, contact.ID)
	require.NoError(t, err)
	require.Len(t, linked, 2)

	var primaries int
	for _, la := range linked {
		if la.IsPrimary {
			primaries++
			assert.Equal(t, second.ID, la.ID, "only the most recent primary link survives")
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestAddAddressMissingTargets(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	contact, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	_, err = s.Contacts.AddAddress(ctx, 9999, &domain.LinkAddressInput{AddressID: 1})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Contacts.AddAddress(ctx, contact.ID, &domain.LinkAddressInput{AddressID: 9999})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
