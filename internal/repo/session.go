package repo

import (
	"context"

	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/store"
)

const (
	currentUserKey    = "current_user"
	rememberedUserKey = "remembered_user"
)

// Sessions holds the ephemeral session identity and the longer-lived
// remembered slot it is re-hydrated from when no active session exists.
type Sessions struct {
	Store store.Store
}

func (r *Sessions) Save(ctx context.Context, identity models.SessionIdentity, remember bool) error {
	if err := store.SetJSON(ctx, r.Store, currentUserKey, identity); err != nil {
		return err
	}
	if remember {
		return store.SetJSON(ctx, r.Store, rememberedUserKey, identity)
	}
	return r.Store.Remove(ctx, rememberedUserKey)
}

// Current returns the active session identity, falling back to the
// remembered slot. The zero-valued identity (id 0 is never assigned) means
// no session.
func (r *Sessions) Current(ctx context.Context) (models.SessionIdentity, bool, error) {
	id, err := store.GetJSON[models.SessionIdentity](ctx, r.Store, currentUserKey)
	if err != nil {
		return models.SessionIdentity{}, false, err
	}
	if id.ID != 0 {
		return id, true, nil
	}

	id, err = store.GetJSON[models.SessionIdentity](ctx, r.Store, rememberedUserKey)
	if err != nil {
		return models.SessionIdentity{}, false, err
	}
	if id.ID != 0 {
		// Re-hydrate the active slot so later reads skip the fallback.
		if err := store.SetJSON(ctx, r.Store, currentUserKey, id); err != nil {
			return models.SessionIdentity{}, false, err
		}
		return id, true, nil
	}
	return models.SessionIdentity{}, false, nil
}

func (r *Sessions) Clear(ctx context.Context) error {
	if err := r.Store.Remove(ctx, currentUserKey); err != nil {
		return err
	}
	return r.Store.Remove(ctx, rememberedUserKey)
}
