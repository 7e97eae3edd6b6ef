// Package store is the durability layer of the gallery backend. Every
// collection lives under a single versioned key as one JSON-encoded array;
// there is no per-record addressing.
package store

import (
	"context"
	"encoding/json"
)

// Keys are namespaced with an explicit schema version so a shape change can
// be detected instead of silently misreading old data.
const keyPrefix = "gallery:v1:"

// Prefix returns the fully qualified storage key for a logical key.
func Prefix(key string) string {
	return keyPrefix + key
}

// Store is a synchronous key-value text store. Implementations must treat a
// missing key as (value "", ok false, err nil).
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// GetJSON decodes the collection stored under key. A missing key or
// malformed stored text degrades to the zero value rather than failing:
// repositories always start from an empty collection.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var out T
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return out, err
	}
	if !ok || raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		var zero T
		return zero, nil
	}
	return out, nil
}

// SetJSON writes v as the full serialized collection under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(data))
}
