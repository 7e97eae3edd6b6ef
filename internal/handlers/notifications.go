package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/artvault/gallery/internal/events"
	"github.com/artvault/gallery/internal/logging"
	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/transport"
)

type Notifications struct {
	Notifications *repo.Notifications
	Producer      *events.Producer
}

func (h *Notifications) Register(r *sim.Router) {
	r.Handle(http.MethodPost, "/notifications/subscribe", h.Subscribe)
	r.Handle(http.MethodGet, "/notifications", h.List)
}

func (h *Notifications) Subscribe(ctx context.Context, body json.RawMessage) sim.Envelope {
	l := logging.FromContext(ctx).With("handler", "notifications.subscribe")

	var req transport.SubscribeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return sim.Fail(msgInvalidRequestBody)
	}
	if req.Email == "" {
		return sim.Fail("Email is required")
	}

	n, err := h.Notifications.Subscribe(ctx, models.StockNotification{
		ArtworkID:    req.ArtworkID,
		ArtworkTitle: req.ArtworkTitle,
		Artist:       req.Artist,
		Email:        req.Email,
		UserID:       req.UserID,
		Username:     req.Username,
	})
	if err != nil {
		if errors.Is(err, repo.ErrAlreadySubscribed) {
			l.Warn("duplicate subscription", "artwork_id", req.ArtworkID, "email", req.Email)
			return sim.Fail(msgAlreadySubscribed)
		}
		l.Error("subscribe error", "error", err)
		return sim.Fail(msgInternalServerError)
	}

	publish(ctx, h.Producer, events.TopicNotificationEvents, fmt.Sprint(n.ArtworkID), map[string]any{
		"type":      "stock_subscription_created",
		"artworkId": n.ArtworkID,
		"email":     n.Email,
	})

	return sim.OK(transport.SubscribeResult{Message: msgSubscribed, Notification: n})
}

func (h *Notifications) List(ctx context.Context, _ json.RawMessage) sim.Envelope {
	notifications, err := h.Notifications.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("notifications read error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	if notifications == nil {
		notifications = []models.StockNotification{}
	}
	return sim.OK(transport.NotificationsResult{
		Notifications: notifications,
		Count:         len(notifications),
	})
}
