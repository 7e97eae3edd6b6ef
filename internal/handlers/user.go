package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/artvault/gallery/internal/logging"
	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/sim"
)

type User struct {
	Sessions *repo.Sessions
	Stats    *repo.Stats
}

func (h *User) Register(r *sim.Router) {
	r.Handle(http.MethodGet, "/user/profile", h.Profile)
	r.Handle(http.MethodGet, "/user/stats", h.UserStats)
}

func (h *User) Profile(ctx context.Context, _ json.RawMessage) sim.Envelope {
	identity, ok, err := h.Sessions.Current(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("session read error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	if !ok {
		return sim.Fail(msgNotAuthenticated)
	}
	return sim.OK(identity)
}

func (h *User) UserStats(ctx context.Context, _ json.RawMessage) sim.Envelope {
	identity, ok, err := h.Sessions.Current(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("session read error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	if !ok {
		return sim.Fail(msgNotAuthenticated)
	}

	stats, err := h.Stats.Stats(ctx, identity.ID)
	if err != nil {
		logging.FromContext(ctx).Error("stats read error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	return sim.OK(stats)
}
