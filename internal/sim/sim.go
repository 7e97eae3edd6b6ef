// Package sim is the request simulator: the seam where a real backend could
// later replace the local store without touching callers. It dispatches a
// logical (method, endpoint) pair to a registered handler after a simulated
// network round-trip and normalizes every outcome into one envelope shape.
package sim

import (
	"context"
	"encoding/json"
	"time"

	"github.com/artvault/gallery/internal/logging"
)

const ErrEndpointNotFound = "Endpoint not found"

const internalError = "Internal server error"

// Envelope is the uniform result shape. Exactly one of Data and Error is
// meaningful, keyed by OK.
type Envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{OK: true, Data: data}
}

func Fail(msg string) Envelope {
	return Envelope{OK: false, Error: msg}
}

// HandlerFunc implements one logical REST-like operation. Handlers report
// failure through the envelope, never by panicking; the router still guards
// against the latter.
type HandlerFunc func(ctx context.Context, body json.RawMessage) Envelope

type routeKey struct {
	method   string
	endpoint string
}

// Router dispatches by exact (method, endpoint) match. Registration happens
// once at startup; Dispatch is safe for concurrent use afterwards.
type Router struct {
	delay  time.Duration
	routes map[routeKey]HandlerFunc
}

func NewRouter(delay time.Duration) *Router {
	return &Router{
		delay:  delay,
		routes: make(map[routeKey]HandlerFunc),
	}
}

func (r *Router) Handle(method, endpoint string, h HandlerFunc) {
	r.routes[routeKey{method: method, endpoint: endpoint}] = h
}

// Dispatch waits out the simulated latency, then invokes the matching
// handler. The only non-envelope failure is ctx cancellation during the
// latency window; everything else, unknown endpoints and handler panics
// included, comes back as an envelope.
func (r *Router) Dispatch(ctx context.Context, method, endpoint string, body json.RawMessage) (Envelope, error) {
	if r.delay > 0 {
		t := time.NewTimer(r.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return Envelope{}, ctx.Err()
		case <-t.C:
		}
	}

	h, ok := r.routes[routeKey{method: method, endpoint: endpoint}]
	if !ok {
		return Fail(ErrEndpointNotFound), nil
	}
	return r.invoke(ctx, method, endpoint, h, body), nil
}

func (r *Router) invoke(ctx context.Context, method, endpoint string, h HandlerFunc, body json.RawMessage) (env Envelope) {
	defer func() {
		if p := recover(); p != nil {
			logging.FromContext(ctx).Error("handler panic",
				"method", method, "endpoint", endpoint, "panic", p)
			env = Fail(internalError)
		}
	}()
	return h(ctx, body)
}
