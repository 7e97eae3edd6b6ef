package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/artvault/gallery/internal/logging"
	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/transport"
)

type Cart struct {
	Carts *repo.Cart
}

func (h *Cart) Register(r *sim.Router) {
	r.Handle(http.MethodGet, "/cart", h.Get)
	r.Handle(http.MethodPost, "/cart/add", h.Add)
	r.Handle(http.MethodDelete, "/cart/remove", h.Remove)
	r.Handle(http.MethodDelete, "/cart/clear", h.Clear)
}

func (h *Cart) Get(ctx context.Context, _ json.RawMessage) sim.Envelope {
	items, err := h.Carts.Items(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("cart read error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	return sim.OK(repo.Summarize(items))
}

func (h *Cart) Add(ctx context.Context, body json.RawMessage) sim.Envelope {
	var req transport.AddToCartRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return sim.Fail(msgInvalidRequestBody)
	}

	items, err := h.Carts.Add(ctx, req.Artwork)
	if err != nil {
		logging.FromContext(ctx).Error("cart add error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	return sim.OK(transport.CartMutationResult{
		Message: msgItemAdded,
		Cart:    repo.Summarize(items),
	})
}

func (h *Cart) Remove(ctx context.Context, body json.RawMessage) sim.Envelope {
	var req transport.RemoveFromCartRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return sim.Fail(msgInvalidRequestBody)
	}

	items, err := h.Carts.RemoveByID(ctx, req.ArtworkID)
	if err != nil {
		logging.FromContext(ctx).Error("cart remove error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	return sim.OK(transport.CartMutationResult{
		Message: msgItemRemoved,
		Cart:    repo.Summarize(items),
	})
}

func (h *Cart) Clear(ctx context.Context, _ json.RawMessage) sim.Envelope {
	if err := h.Carts.Clear(ctx); err != nil {
		logging.FromContext(ctx).Error("cart clear error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	return sim.OK(transport.MessageResult{Message: msgCartCleared})
}
