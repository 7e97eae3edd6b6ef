// Package handlers implements the logical endpoints of the simulated
// gallery backend. Each handler is a pure function of its body: it reads and
// writes through the repositories, reports failure through the envelope and
// lets the router own panic capture.
package handlers

import (
	"context"
	"time"

	"github.com/artvault/gallery/internal/events"
	"github.com/artvault/gallery/internal/logging"
)

// Caller-facing failure messages. The error contract is a single
// human-readable string per failure; there are no machine-readable codes.
const (
	msgInvalidCredentials  = "Invalid username/email or password"
	msgUsernameExists      = "Username already exists"
	msgEmailRegistered     = "Email already registered"
	msgLoggedOut           = "Logged out successfully"
	msgArtworkNotFound     = "Artwork not found"
	msgItemAdded           = "Item added to cart"
	msgItemRemoved         = "Item removed from cart"
	msgCartCleared         = "Cart cleared"
	msgPaymentOK           = "Payment processed successfully"
	msgPaymentFailed       = "Payment processing failed. Please try again."
	msgSubscribed          = "Notification subscription successful"
	msgAlreadySubscribed   = "You are already subscribed for notifications on this artwork"
	msgNotAuthenticated    = "User not authenticated"
	msgInvalidRequestBody  = "Invalid request body"
	msgInternalServerError = "Internal server error"
)

// publish sends a domain event without letting broker trouble surface to the
// caller. Handlers call it after their state change has been persisted.
func publish(ctx context.Context, p *events.Producer, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.Publish(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event publish error", "topic", topic, "error", err)
	}
}
