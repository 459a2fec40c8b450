package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentline/rentline/internal/auth"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	svc, err := auth.NewService("admin@rentline.local", "rentline")
	require.NoError(t, err)
	return svc
}

func TestLoginIssuesSession(t *testing.T) {
	svc := newService(t)

	session, err := svc.Login("admin@rentline.local", "rentline")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "admin@rentline.local", session.Email)
	assert.Equal(t, "admin", session.Role)

	got, ok := svc.SessionByToken(session.Token)
	require.True(t, ok)
	assert.Equal(t, session, got)
}

func TestLoginEachSessionGetsOwnToken(t *testing.T) {
	svc := newService(t)

	first, err := svc.Login("admin@rentline.local", "rentline")
	require.NoError(t, err)
	second, err := svc.Login("admin@rentline.local", "rentline")
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newService(t)

	_, err := svc.Login("admin@rentline.local", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login("someone@else.example.com", "rentline")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestSessionByTokenUnknown(t *testing.T) {
	svc := newService(t)

	_, ok := svc.SessionByToken("not-a-token")
	assert.False(t, ok)
}

func TestHasPermission(t *testing.T) {
	assert.True(t, auth.HasPermission("admin", "properties:write"))
	assert.True(t, auth.HasPermission("admin", "admin:reset"))
	assert.True(t, auth.HasPermission("viewer", "properties:read"))
	assert.False(t, auth.HasPermission("viewer", "properties:write"))
	assert.False(t, auth.HasPermission("viewer", "admin:reset"))
	assert.False(t, auth.HasPermission("intruder", "properties:read"))
}

func TestPermissionsListsRoleGrants(t *testing.T) {
	admin := auth.Permissions("admin")
	assert.Contains(t, admin, "contacts:write")

	assert.Empty(t, auth.Permissions("intruder"))
}
