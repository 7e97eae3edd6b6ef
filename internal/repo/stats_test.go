package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artvault/gallery/internal/store"
)

func newStatsRepo() *Stats {
	return &Stats{Store: store.NewMemory()}
}

func TestStatsMarkViewedDeduplicates(t *testing.T) {
	ctx := context.Background()
	r := newStatsRepo()

	require.NoError(t, r.MarkViewed(ctx, 1, 10))
	require.NoError(t, r.MarkViewed(ctx, 1, 10))
	require.NoError(t, r.MarkViewed(ctx, 1, 11))

	s, err := r.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.ArtworksViewed)
}

func TestStatsFavorites(t *testing.T) {
	ctx := context.Background()
	r := newStatsRepo()

	require.NoError(t, r.AddFavorite(ctx, 1, 10))
	require.NoError(t, r.AddFavorite(ctx, 1, 10))
	require.NoError(t, r.AddFavorite(ctx, 1, 11))

	s, err := r.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.FavoritesCount)

	require.NoError(t, r.RemoveFavorite(ctx, 1, 10))

	s, err = r.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.FavoritesCount)
}

func TestStatsPurchasesCountRepeats(t *testing.T) {
	ctx := context.Background()
	r := newStatsRepo()

	require.NoError(t, r.RecordPurchase(ctx, 1, []int64{10, 11}))
	require.NoError(t, r.RecordPurchase(ctx, 1, []int64{10}))

	s, err := r.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, s.PurchasesCount)
}

func TestStatsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	r := newStatsRepo()

	require.NoError(t, r.MarkViewed(ctx, 1, 10))
	require.NoError(t, r.AddFavorite(ctx, 1, 10))

	s, err := r.Stats(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, s.ArtworksViewed)
	assert.Zero(t, s.FavoritesCount)
	assert.Zero(t, s.PurchasesCount)
	assert.Zero(t, s.ExhibitionsVisited)
}
