package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterAndLogin(t *testing.T) {
	e := newEnv(t)

	user, err := e.accounts.Register(e.ctx, &RegisterForm{Username: " cinephile ", Email: "c@example.com", Password: "long-enough"})
	require.NoError(t, err)
	assert.Equal(t, "cinephile", user.Username)
	assert.False(t, user.IsSuperuser)
	assert.NotEqual(t, "long-enough", user.PasswordHash)

	_, err = e.accounts.Register(e.ctx, &RegisterForm{Username: "cinephile", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = e.accounts.Register(e.ctx, &RegisterForm{Username: "ab", Password: "short"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")

	_, _, err = e.accounts.Login(e.ctx, &LoginForm{Username: "cinephile", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = e.accounts.Login(e.ctx, &LoginForm{Username: "nobody", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, loggedIn, err := e.accounts.Login(e.ctx, &LoginForm{Username: "cinephile", Password: "long-enough"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	current, err := e.accounts.Authenticate(e.ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)

	_, err = e.accounts.Authenticate(e.ctx, token+"tampered")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUserService_EnsureSuperuser(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.accounts.EnsureSuperuser(e.ctx, "root", "root@example.com", "root-password"))
	root, err := e.users.FindByUsername(e.ctx, "root")
	require.NoError(t, err)
	assert.True(t, root.IsSuperuser)

	// idempotent
	require.NoError(t, e.accounts.EnsureSuperuser(e.ctx, "root", "root@example.com", "root-password"))

	// promotes an existing account
	require.NoError(t, e.accounts.EnsureSuperuser(e.ctx, "owner", "", "ignored"))
	owner, err := e.users.FindByUsername(e.ctx, "owner")
	require.NoError(t, err)
	assert.True(t, owner.IsSuperuser)
}
