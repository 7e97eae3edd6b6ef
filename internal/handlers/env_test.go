package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/store"
)

// testEnv wires every handler over one shared in-memory store, the same shape
// main assembles, minus the broker and search backends.
type testEnv struct {
	Store         store.Store
	Users         *repo.Users
	Sessions      *repo.Sessions
	Carts         *repo.Cart
	Notifications *repo.Notifications
	Stats         *repo.Stats

	Auth     *Auth
	Artworks *Artworks
	Cart     *Cart
	Payments *Payments
	Notify   *Notifications
	User     *User
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.NewMemory()
	env := &testEnv{
		Store:         st,
		Users:         &repo.Users{Store: st},
		Sessions:      &repo.Sessions{Store: st},
		Carts:         &repo.Cart{Store: st},
		Notifications: &repo.Notifications{Store: st},
		Stats:         &repo.Stats{Store: st},
	}
	env.Auth = &Auth{
		Users:     env.Users,
		Sessions:  env.Sessions,
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}
	env.Artworks = &Artworks{Sessions: env.Sessions, Stats: env.Stats}
	env.Cart = &Cart{Carts: env.Carts}
	env.Payments = &Payments{Carts: env.Carts, Sessions: env.Sessions, Stats: env.Stats}
	env.Notify = &Notifications{Notifications: env.Notifications}
	env.User = &User{Sessions: env.Sessions, Stats: env.Stats}
	return env
}

func body(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

// login seeds the demo users and opens a session as the named account.
func (e *testEnv) login(t *testing.T, ctx context.Context, username, password string) sim.Envelope {
	t.Helper()
	require.NoError(t, e.Users.Seed(ctx))
	env := e.Auth.Login(ctx, body(t, map[string]any{
		"username": username,
		"password": password,
	}))
	require.True(t, env.OK, "login failed: %s", env.Error)
	return env
}
