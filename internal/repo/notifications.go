package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/store"
)

const notificationsKey = "stock_notifications"

var ErrAlreadySubscribed = errors.New("already subscribed")

type Notifications struct {
	Store store.Store
}

func (r *Notifications) List(ctx context.Context) ([]models.StockNotification, error) {
	return store.GetJSON[[]models.StockNotification](ctx, r.Store, notificationsKey)
}

// Subscribe registers interest in an artwork coming back in stock. At most
// one active entry exists per (artworkId, email) pair, email compared
// case-insensitively; an authenticated caller also conflicts on userId.
func (r *Notifications) Subscribe(ctx context.Context, n models.StockNotification) (models.StockNotification, error) {
	existing, err := r.List(ctx)
	if err != nil {
		return models.StockNotification{}, err
	}

	for _, e := range existing {
		if e.ArtworkID != n.ArtworkID {
			continue
		}
		if strings.EqualFold(e.Email, n.Email) {
			return models.StockNotification{}, ErrAlreadySubscribed
		}
		if n.UserID != nil && e.UserID != nil && *e.UserID == *n.UserID {
			return models.StockNotification{}, ErrAlreadySubscribed
		}
	}

	n.ID = time.Now().UnixMilli()
	for _, e := range existing {
		if e.ID >= n.ID {
			n.ID = e.ID + 1
		}
	}
	n.RequestedAt = time.Now().UTC()
	n.Notified = false
	if n.Username == "" {
		n.Username = "Guest"
	}

	existing = append(existing, n)
	if err := store.SetJSON(ctx, r.Store, notificationsKey, existing); err != nil {
		return models.StockNotification{}, err
	}
	return n, nil
}
