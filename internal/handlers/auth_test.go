package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artvault/gallery/internal/tokens"
	"github.com/artvault/gallery/internal/transport"
)

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	env := e.login(t, ctx, "admin", "admin123")

	result, ok := env.Data.(transport.AuthResult)
	require.True(t, ok)
	assert.Equal(t, "admin", result.User.Username)
	assert.Equal(t, "admin", result.User.Role)
	require.NotEmpty(t, result.Token)

	claims, err := tokens.Parse(result.Token, e.Auth.JWTSecret)
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, userID)

	identity, active, err := e.Sessions.Current(ctx)
	require.NoError(t, err)
	require.True(t, active)
	assert.Equal(t, result.User, identity)
}

func TestLoginByEmail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	require.NoError(t, e.Users.Seed(ctx))

	env := e.Auth.Login(ctx, body(t, map[string]any{
		"username": "visitor@example.com",
		"password": "visitor123",
	}))
	require.True(t, env.OK, env.Error)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	require.NoError(t, e.Users.Seed(ctx))

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "nope"},
		{name: "unknown user", username: "ghost", password: "admin123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := e.Auth.Login(ctx, body(t, map[string]any{
				"username": tt.username,
				"password": tt.password,
			}))
			require.False(t, env.OK)
			assert.Equal(t, msgInvalidCredentials, env.Error)
		})
	}

	// A failed login leaves no session behind.
	_, active, err := e.Sessions.Current(ctx)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSignupSuccess(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	env := e.Auth.Signup(ctx, body(t, transport.SignupRequest{
		Username: "newbie",
		Email:    "newbie@x.com",
		Password: "pass123",
		FullName: "New Person",
	}))
	require.True(t, env.OK, env.Error)

	result, ok := env.Data.(transport.AuthResult)
	require.True(t, ok)
	assert.Equal(t, "newbie", result.User.Username)
	assert.Equal(t, "visitor", result.User.Role)
	assert.NotEmpty(t, result.Token)

	// Signup logs the new account in immediately.
	identity, active, err := e.Sessions.Current(ctx)
	require.NoError(t, err)
	require.True(t, active)
	assert.Equal(t, "newbie", identity.Username)
}

func TestSignupValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	require.NoError(t, e.Users.Seed(ctx))

	tests := []struct {
		name    string
		req     transport.SignupRequest
		wantErr string
	}{
		{
			name:    "missing fields",
			req:     transport.SignupRequest{Username: "x"},
			wantErr: "Username, email and password are required",
		},
		{
			name:    "duplicate username",
			req:     transport.SignupRequest{Username: "admin", Email: "fresh@x.com", Password: "p"},
			wantErr: msgUsernameExists,
		},
		{
			name:    "duplicate email",
			req:     transport.SignupRequest{Username: "fresh", Email: "admin@example.com", Password: "p"},
			wantErr: msgEmailRegistered,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := e.Auth.Signup(ctx, body(t, tt.req))
			require.False(t, env.OK)
			assert.Equal(t, tt.wantErr, env.Error)
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.login(t, ctx, "admin", "admin123")

	env := e.Auth.Logout(ctx, nil)
	require.True(t, env.OK)
	result, ok := env.Data.(transport.MessageResult)
	require.True(t, ok)
	assert.Equal(t, msgLoggedOut, result.Message)

	_, active, err := e.Sessions.Current(ctx)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestLogoutClearsRememberedSession(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	require.NoError(t, e.Users.Seed(ctx))

	env := e.Auth.Login(ctx, body(t, map[string]any{
		"username": "admin",
		"password": "admin123",
		"remember": true,
	}))
	require.True(t, env.OK, env.Error)

	env = e.Auth.Logout(ctx, nil)
	require.True(t, env.OK)

	// The remembered slot must not resurrect the session.
	_, active, err := e.Sessions.Current(ctx)
	require.NoError(t, err)
	assert.False(t, active)
}
