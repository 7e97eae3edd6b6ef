package repo

import (
	"context"

	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/store"
)

const cartKey = "user_cart"

type Cart struct {
	Store store.Store
}

func (r *Cart) Items(ctx context.Context) ([]models.CartItem, error) {
	return store.GetJSON[[]models.CartItem](ctx, r.Store, cartKey)
}

// Add appends unconditionally. Duplicate ids are allowed; the cart has no
// quantity field, so adding the same artwork twice produces two entries.
func (r *Cart) Add(ctx context.Context, item models.CartItem) ([]models.CartItem, error) {
	items, err := r.Items(ctx)
	if err != nil {
		return nil, err
	}
	items = append(items, item)
	if err := store.SetJSON(ctx, r.Store, cartKey, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveByID drops every entry matching id, not just the first. With
// duplicates present they all vanish on a single removal.
func (r *Cart) RemoveByID(ctx context.Context, id int64) ([]models.CartItem, error) {
	items, err := r.Items(ctx)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if err := store.SetJSON(ctx, r.Store, cartKey, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// RemoveIDs purges the given artwork ids after a successful payment. The
// cart may hold unrelated items, so this is not a wholesale clear.
func (r *Cart) RemoveIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	items, err := r.Items(ctx)
	if err != nil {
		return err
	}
	purge := make(map[int64]bool, len(ids))
	for _, id := range ids {
		purge[id] = true
	}
	kept := items[:0]
	for _, it := range items {
		if !purge[it.ID] {
			kept = append(kept, it)
		}
	}
	return store.SetJSON(ctx, r.Store, cartKey, kept)
}

func (r *Cart) Clear(ctx context.Context) error {
	return r.Store.Remove(ctx, cartKey)
}

// Summarize recomputes total and count from scratch; they are never cached.
func Summarize(items []models.CartItem) models.CartSummary {
	if items == nil {
		items = []models.CartItem{}
	}
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return models.CartSummary{Items: items, Total: total, Count: len(items)}
}
