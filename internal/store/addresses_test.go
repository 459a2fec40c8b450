package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

func TestAddressDefaults(t *testing.T) {
	s := newStore(t)

	created, err := s.Addresses.Create(context.Background(), &domain.AddressInput{
		Street: "410 Maple Ct", City: "Springfield", State: "IL", Zip: "62704",
	})
	require.NoError(t, err)
	assert.Equal(t, "US", created.Country, "omitted country gets the default")
}

func TestAddressDeleteRemovesContactLinks(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	contact, err := s.Contacts.Create(ctx, &domain.ContactInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	addr, err := s.Addresses.Create(ctx, &domain.AddressInput{Street: "1 Analytical Way", City: "London", State: "LN", Zip: "10001"})
	require.NoError(t, err)

	_, err = s.Contacts.AddAddress(ctx, contact.ID, &domain.LinkAddressInput{AddressID: addr.ID, AddressType: "home", IsPrimary: true})
	require.NoError(t, err)

	existed, err := s.Addresses.Delete(ctx, addr.ID)
	require.NoError(t, err)
	require.True(t, existed)

	linked, err := s.Contacts.Addresses(ctx, contact.ID)
	require.NoError(t, err)
	assert.Empty(t, linked, "join rows go away with the address")
}

func TestAddressUpdateNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.Addresses.Update(context.Background(), 9999, &domain.AddressUpdate{City: strPtr("Nowhere")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
