package facade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artvault/gallery/internal/handlers"
	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/store"
	"github.com/artvault/gallery/internal/transport"
)

// newClient assembles the full simulated backend over an in-memory store
// with zero latency, every payment succeeding.
func newClient(t *testing.T) *Client {
	t.Helper()

	st := store.NewMemory()
	users := &repo.Users{Store: st}
	sessions := &repo.Sessions{Store: st}
	carts := &repo.Cart{Store: st}
	notifications := &repo.Notifications{Store: st}
	stats := &repo.Stats{Store: st}

	require.NoError(t, users.Seed(context.Background()))

	router := sim.NewRouter(0)
	(&handlers.Auth{
		Users:     users,
		Sessions:  sessions,
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}).Register(router)
	(&handlers.Artworks{Sessions: sessions, Stats: stats}).Register(router)
	(&handlers.Cart{Carts: carts}).Register(router)
	(&handlers.Payments{
		Carts:    carts,
		Sessions: sessions,
		Stats:    stats,
		Rand:     func() float64 { return 0.0 },
	}).Register(router)
	(&handlers.Notifications{Notifications: notifications}).Register(router)
	(&handlers.User{Sessions: sessions, Stats: stats}).Register(router)

	return New(router)
}

func TestVisitorJourney(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	// Browse anonymously.
	listing, err := c.GetArtworks(ctx, transport.ArtworksParams{})
	require.NoError(t, err)
	assert.Equal(t, 6, listing.Total)

	// Sign up and land in a fresh session.
	auth, err := c.Signup(ctx, transport.SignupRequest{
		Username: "collector",
		Email:    "collector@x.com",
		Password: "pass123",
		FullName: "Art Collector",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "visitor", auth.User.Role)

	profile, err := c.GetUserProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "collector", profile.Username)

	// View a piece and favorite another.
	artwork, err := c.GetArtwork(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "The Starry Night", artwork.Title)
	_, err = c.MarkArtworkViewed(ctx, 1)
	require.NoError(t, err)
	_, err = c.AddFavorite(ctx, 3)
	require.NoError(t, err)

	// Buy it.
	added, err := c.AddToCart(ctx, artwork.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 1, added.Cart.Count)

	txn, err := c.ProcessPayment(ctx, transport.PaymentRequest{
		Amount: added.Cart.Total,
		Email:  "collector@x.com",
		Items:  added.Cart.Items,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, txn.Status)

	cart, err := c.GetCart(ctx)
	require.NoError(t, err)
	assert.Zero(t, cart.Count)

	stats, err := c.GetUserStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ArtworksViewed)
	assert.Equal(t, 1, stats.FavoritesCount)
	assert.Equal(t, 1, stats.PurchasesCount)

	// Log out; the protected reads start failing.
	_, err = c.Logout(ctx)
	require.NoError(t, err)
	_, err = c.GetUserProfile(ctx)
	require.EqualError(t, err, "User not authenticated")
}

func TestLoginLogoutCycle(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	auth, err := c.Login(ctx, transport.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", auth.User.Role)

	msg, err := c.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Logged out successfully", msg.Message)

	_, err = c.Login(ctx, transport.LoginRequest{Username: "admin", Password: "wrong"})
	require.EqualError(t, err, "Invalid username/email or password")
}

func TestEnvelopeErrorsSurfaceVerbatim(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	_, err := c.GetArtwork(ctx, 999)
	require.EqualError(t, err, "Artwork not found")

	sub, err := c.SubscribeNotification(ctx, transport.SubscribeRequest{
		ArtworkID: 2,
		Email:     "fan@x.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, sub.Notification.ID)

	_, err = c.SubscribeNotification(ctx, transport.SubscribeRequest{
		ArtworkID: 2,
		Email:     "fan@x.com",
	})
	require.EqualError(t, err, "You are already subscribed for notifications on this artwork")

	list, err := c.GetNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
}

func TestUnknownEndpointBecomesError(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	_, err := call[any](ctx, c, "GET", "/nope", nil)
	require.EqualError(t, err, sim.ErrEndpointNotFound)
}

func TestDispatchHonorsLatencyCancellation(t *testing.T) {
	st := store.NewMemory()
	router := sim.NewRouter(5 * time.Second)
	(&handlers.Cart{Carts: &repo.Cart{Store: st}}).Register(router)
	c := New(router)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.GetCart(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRemoveFromCartDropsDuplicates(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	item := models.CartItem{ID: 1, Title: "The Starry Night", Price: 1250}
	_, err := c.AddToCart(ctx, item)
	require.NoError(t, err)
	_, err = c.AddToCart(ctx, item)
	require.NoError(t, err)

	removed, err := c.RemoveFromCart(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, removed.Cart.Count)

	cleared, err := c.ClearCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cart cleared", cleared.Message)
}
