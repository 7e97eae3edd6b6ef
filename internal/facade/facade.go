// Package facade is the single entry point callers use. One typed method per
// operation; each builds the logical (method, endpoint, body) triple, runs it
// through the request router and unwraps the envelope, so callers only ever
// see values or errors.
package facade

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/transport"
)

type Client struct {
	Router *sim.Router
}

func New(router *sim.Router) *Client {
	return &Client{Router: router}
}

// call dispatches one operation and type-asserts the envelope payload.
// An ok:false envelope becomes an error carrying the message verbatim.
func call[T any](ctx context.Context, c *Client, method, endpoint string, body any) (T, error) {
	var zero T

	var raw json.RawMessage
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("facade: encode request: %w", err)
		}
		raw = data
	}

	env, err := c.Router.Dispatch(ctx, method, endpoint, raw)
	if err != nil {
		return zero, err
	}
	if !env.OK {
		return zero, errors.New(env.Error)
	}

	out, ok := env.Data.(T)
	if !ok {
		return zero, fmt.Errorf("facade: unexpected response type %T for %s %s", env.Data, method, endpoint)
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, req transport.LoginRequest) (transport.AuthResult, error) {
	return call[transport.AuthResult](ctx, c, http.MethodPost, "/auth/login", req)
}

func (c *Client) Signup(ctx context.Context, req transport.SignupRequest) (transport.AuthResult, error) {
	return call[transport.AuthResult](ctx, c, http.MethodPost, "/auth/signup", req)
}

func (c *Client) Logout(ctx context.Context) (transport.MessageResult, error) {
	return call[transport.MessageResult](ctx, c, http.MethodPost, "/auth/logout", nil)
}

func (c *Client) GetArtworks(ctx context.Context, params transport.ArtworksParams) (transport.ArtworksResult, error) {
	return call[transport.ArtworksResult](ctx, c, http.MethodGet, "/artworks", params)
}

func (c *Client) GetArtwork(ctx context.Context, id int64) (models.Artwork, error) {
	return call[models.Artwork](ctx, c, http.MethodGet, "/artworks/:id", transport.ArtworkRequest{ID: id})
}

func (c *Client) MarkArtworkViewed(ctx context.Context, artworkID int64) (transport.MessageResult, error) {
	return call[transport.MessageResult](ctx, c, http.MethodPost, "/artworks/viewed", transport.ArtworkRef{ArtworkID: artworkID})
}

func (c *Client) AddFavorite(ctx context.Context, artworkID int64) (transport.MessageResult, error) {
	return call[transport.MessageResult](ctx, c, http.MethodPost, "/artworks/favorite", transport.ArtworkRef{ArtworkID: artworkID})
}

func (c *Client) RemoveFavorite(ctx context.Context, artworkID int64) (transport.MessageResult, error) {
	return call[transport.MessageResult](ctx, c, http.MethodDelete, "/artworks/favorite", transport.ArtworkRef{ArtworkID: artworkID})
}

func (c *Client) GetCart(ctx context.Context) (models.CartSummary, error) {
	return call[models.CartSummary](ctx, c, http.MethodGet, "/cart", nil)
}

func (c *Client) AddToCart(ctx context.Context, artwork models.CartItem) (transport.CartMutationResult, error) {
	return call[transport.CartMutationResult](ctx, c, http.MethodPost, "/cart/add", transport.AddToCartRequest{Artwork: artwork})
}

func (c *Client) RemoveFromCart(ctx context.Context, artworkID int64) (transport.CartMutationResult, error) {
	return call[transport.CartMutationResult](ctx, c, http.MethodDelete, "/cart/remove", transport.RemoveFromCartRequest{ArtworkID: artworkID})
}

func (c *Client) ClearCart(ctx context.Context) (transport.MessageResult, error) {
	return call[transport.MessageResult](ctx, c, http.MethodDelete, "/cart/clear", nil)
}

func (c *Client) ProcessPayment(ctx context.Context, req transport.PaymentRequest) (models.Transaction, error) {
	return call[models.Transaction](ctx, c, http.MethodPost, "/payments/process", req)
}

func (c *Client) SubscribeNotification(ctx context.Context, req transport.SubscribeRequest) (transport.SubscribeResult, error) {
	return call[transport.SubscribeResult](ctx, c, http.MethodPost, "/notifications/subscribe", req)
}

func (c *Client) GetNotifications(ctx context.Context) (transport.NotificationsResult, error) {
	return call[transport.NotificationsResult](ctx, c, http.MethodGet, "/notifications", nil)
}

func (c *Client) GetUserProfile(ctx context.Context) (models.SessionIdentity, error) {
	return call[models.SessionIdentity](ctx, c, http.MethodGet, "/user/profile", nil)
}

func (c *Client) GetUserStats(ctx context.Context) (models.UserStats, error) {
	return call[models.UserStats](ctx, c, http.MethodGet, "/user/stats", nil)
}
