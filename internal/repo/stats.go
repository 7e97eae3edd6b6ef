package repo

import (
	"context"
	"fmt"

	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/store"
)

// Stats tracks the three per-user counters read by the stats endpoint. Each
// counter is its own keyed id list so one user's activity never touches
// another's.
type Stats struct {
	Store store.Store
}

func viewedKey(userID int64) string    { return fmt.Sprintf("viewed_artworks_%d", userID) }
func favoritesKey(userID int64) string { return fmt.Sprintf("favorites_%d", userID) }
func purchasesKey(userID int64) string { return fmt.Sprintf("purchases_%d", userID) }

func (r *Stats) ids(ctx context.Context, key string) ([]int64, error) {
	return store.GetJSON[[]int64](ctx, r.Store, key)
}

// MarkViewed records an artwork once per user; repeat views are no-ops.
func (r *Stats) MarkViewed(ctx context.Context, userID, artworkID int64) error {
	key := viewedKey(userID)
	ids, err := r.ids(ctx, key)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == artworkID {
			return nil
		}
	}
	return store.SetJSON(ctx, r.Store, key, append(ids, artworkID))
}

func (r *Stats) AddFavorite(ctx context.Context, userID, artworkID int64) error {
	key := favoritesKey(userID)
	ids, err := r.ids(ctx, key)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == artworkID {
			return nil
		}
	}
	return store.SetJSON(ctx, r.Store, key, append(ids, artworkID))
}

func (r *Stats) RemoveFavorite(ctx context.Context, userID, artworkID int64) error {
	key := favoritesKey(userID)
	ids, err := r.ids(ctx, key)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != artworkID {
			kept = append(kept, id)
		}
	}
	return store.SetJSON(ctx, r.Store, key, kept)
}

// RecordPurchase appends every purchased id; buying the same piece again
// counts again.
func (r *Stats) RecordPurchase(ctx context.Context, userID int64, artworkIDs []int64) error {
	if len(artworkIDs) == 0 {
		return nil
	}
	key := purchasesKey(userID)
	ids, err := r.ids(ctx, key)
	if err != nil {
		return err
	}
	return store.SetJSON(ctx, r.Store, key, append(ids, artworkIDs...))
}

func (r *Stats) Stats(ctx context.Context, userID int64) (models.UserStats, error) {
	viewed, err := r.ids(ctx, viewedKey(userID))
	if err != nil {
		return models.UserStats{}, err
	}
	favorites, err := r.ids(ctx, favoritesKey(userID))
	if err != nil {
		return models.UserStats{}, err
	}
	purchases, err := r.ids(ctx, purchasesKey(userID))
	if err != nil {
		return models.UserStats{}, err
	}
	return models.UserStats{
		ArtworksViewed:     len(viewed),
		FavoritesCount:     len(favorites),
		PurchasesCount:     len(purchases),
		ExhibitionsVisited: 0,
	}, nil
}
