package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/artvault/gallery/internal/catalog"
	"github.com/artvault/gallery/internal/logging"
	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/transport"
)

// Searcher answers artwork queries with a pre-paginated page of hits plus
// the overall hit count.
type Searcher interface {
	Search(ctx context.Context, query string, from, size int) (int64, []models.Artwork, error)
}

// Artworks serves the read-only catalog plus the per-user activity markers
// that feed the stats counters. Search is Elasticsearch-backed when wired
// and an in-memory catalog filter otherwise.
type Artworks struct {
	Search   Searcher
	Sessions *repo.Sessions
	Stats    *repo.Stats
}

func (h *Artworks) Register(r *sim.Router) {
	r.Handle(http.MethodGet, "/artworks", h.List)
	r.Handle(http.MethodGet, "/artworks/:id", h.Get)
	r.Handle(http.MethodPost, "/artworks/viewed", h.MarkViewed)
	r.Handle(http.MethodPost, "/artworks/favorite", h.AddFavorite)
	r.Handle(http.MethodDelete, "/artworks/favorite", h.RemoveFavorite)
}

func (h *Artworks) List(ctx context.Context, body json.RawMessage) sim.Envelope {
	var params transport.ArtworksParams
	if len(body) > 0 {
		if err := json.Unmarshal(body, &params); err != nil {
			return sim.Fail(msgInvalidRequestBody)
		}
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	if params.Query != "" && h.Search != nil {
		from, size := paginate(params.Page, params.Limit)
		total, hits, err := h.Search.Search(ctx, params.Query, from, size)
		if err == nil {
			// The search backend already paginated; hits is the requested
			// page and total the overall hit count.
			if hits == nil {
				hits = []models.Artwork{}
			}
			return sim.OK(transport.ArtworksResult{
				Artworks: hits,
				Total:    int(total),
				Page:     page,
				Limit:    size,
			})
		}
		logging.FromContext(ctx).Error("artwork search error", "error", err)
		// Degrade to the local filter rather than failing the browse page.
	}

	results := catalog.Filter(params.Query)
	total := len(results)
	limit := params.Limit
	if limit > 0 {
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}
		results = results[start:end]
	} else {
		limit = total
	}
	if results == nil {
		results = []models.Artwork{}
	}

	return sim.OK(transport.ArtworksResult{
		Artworks: results,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

func (h *Artworks) Get(ctx context.Context, body json.RawMessage) sim.Envelope {
	var req transport.ArtworkRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return sim.Fail(msgInvalidRequestBody)
	}
	artwork, ok := catalog.ByID(req.ID)
	if !ok {
		return sim.Fail(msgArtworkNotFound)
	}
	return sim.OK(artwork)
}

func (h *Artworks) MarkViewed(ctx context.Context, body json.RawMessage) sim.Envelope {
	return h.mark(ctx, body, h.Stats.MarkViewed, "Artwork marked as viewed")
}

func (h *Artworks) AddFavorite(ctx context.Context, body json.RawMessage) sim.Envelope {
	return h.mark(ctx, body, h.Stats.AddFavorite, "Artwork added to favorites")
}

func (h *Artworks) RemoveFavorite(ctx context.Context, body json.RawMessage) sim.Envelope {
	return h.mark(ctx, body, h.Stats.RemoveFavorite, "Artwork removed from favorites")
}

func (h *Artworks) mark(ctx context.Context, body json.RawMessage, op func(context.Context, int64, int64) error, message string) sim.Envelope {
	var req transport.ArtworkRef
	if err := json.Unmarshal(body, &req); err != nil {
		return sim.Fail(msgInvalidRequestBody)
	}
	if _, ok := catalog.ByID(req.ArtworkID); !ok {
		return sim.Fail(msgArtworkNotFound)
	}

	identity, ok, err := h.Sessions.Current(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("session read error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	if !ok {
		return sim.Fail(msgNotAuthenticated)
	}

	if err := op(ctx, identity.ID, req.ArtworkID); err != nil {
		logging.FromContext(ctx).Error("stats update error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	return sim.OK(transport.MessageResult{Message: message})
}

func paginate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return (page - 1) * size, size
}
