package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
)

func TestHashPassword(t *testing.T) {
	assert.Equal(t, DefaultPasswordHash, HashPassword("password"))
}

func TestAuthenticator_Login(t *testing.T) {
	a := NewAuthenticator("", "")

	assert.True(t, a.Login("admin", "password"))
	assert.False(t, a.Login("admin", "Password"))
	assert.False(t, a.Login("root", "password"))
	assert.False(t, a.Login("admin", ""))
}

func TestAuthenticator_CustomHash(t *testing.T) {
	a := NewAuthenticator("editor", "  "+HashPassword("s3cret")+"  ")

	assert.True(t, a.Login("editor", "s3cret"))
	assert.False(t, a.Login("admin", "s3cret"))
	assert.Equal(t, "editor", a.Username())
}

func TestAuthenticator_VerifyPassword(t *testing.T) {
	a := NewAuthenticator("", "")

	require.NoError(t, a.VerifyPassword("password"))

	err := a.VerifyPassword("")
	require.Error(t, err)
	assert.True(t, errs.IsPasswordRequired(err))
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)

	err = a.VerifyPassword("nope")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidPassword(err))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestSession(t *testing.T) {
	a := NewAuthenticator("", "")
	var s Session

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.Login(a, "admin", "wrong"))
	assert.False(t, s.IsAuthenticated())

	assert.True(t, s.Login(a, "admin", "password"))
	assert.True(t, s.IsAuthenticated())
	cred, ok := s.Credential()
	assert.True(t, ok)
	assert.Equal(t, "password", cred)

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	_, ok = s.Credential()
	assert.False(t, ok)

	var nilSession *Session
	assert.False(t, nilSession.IsAuthenticated())
}
