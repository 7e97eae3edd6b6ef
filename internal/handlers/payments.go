package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/artvault/gallery/internal/events"
	"github.com/artvault/gallery/internal/logging"
	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/transport"
)

// Payments simulates the gateway: card data is never validated here (the
// frontend owns that) and the outcome is a coin flip weighted by
// SuccessRate. A success purges the purchased ids from the cart; a failure
// leaves the cart untouched.
type Payments struct {
	Carts    *repo.Cart
	Sessions *repo.Sessions
	Stats    *repo.Stats
	Producer *events.Producer

	// SuccessRate defaults to 0.9. Rand is injectable for deterministic
	// tests and defaults to math/rand.
	SuccessRate float64
	Rand        func() float64
}

func (h *Payments) Register(r *sim.Router) {
	r.Handle(http.MethodPost, "/payments/process", h.Process)
}

func (h *Payments) Process(ctx context.Context, body json.RawMessage) sim.Envelope {
	l := logging.FromContext(ctx).With("handler", "payments.process")

	var req transport.PaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return sim.Fail(msgInvalidRequestBody)
	}

	rate := h.SuccessRate
	if rate == 0 {
		rate = 0.9
	}
	roll := rand.Float64
	if h.Rand != nil {
		roll = h.Rand
	}

	if roll() > rate {
		l.Warn("payment declined", "amount", req.Amount)
		return sim.Fail(msgPaymentFailed)
	}

	ids := make([]int64, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.ID)
	}
	if err := h.Carts.RemoveIDs(ctx, ids); err != nil {
		l.Error("cart purge error", "error", err)
		return sim.Fail(msgInternalServerError)
	}

	if identity, ok, err := h.Sessions.Current(ctx); err == nil && ok {
		if err := h.Stats.RecordPurchase(ctx, identity.ID, ids); err != nil {
			l.Error("purchase record error", "error", err)
		}
	}

	txn := models.Transaction{
		TransactionID: fmt.Sprintf("TXN_%d", time.Now().UnixMilli()),
		Status:        models.TransactionCompleted,
		Amount:        req.Amount,
		Message:       msgPaymentOK,
	}

	publish(ctx, h.Producer, events.TopicPaymentEvents, txn.TransactionID, map[string]any{
		"type":          "payment_completed",
		"transactionId": txn.TransactionID,
		"amount":        txn.Amount,
		"itemCount":     len(req.Items),
	})

	l.Info("payment completed", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	return sim.OK(txn)
}
