package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Keys under which the storefront persists its lists.
const (
	CartKey         = "suswaad_cart"
	ReservationsKey = "suswaad_reservations"
	PreordersKey    = "suswaad_preorders"
)

// Store is a whole-value key-value store. Values are replaced wholesale on Set.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// LoadList reads the JSON list stored under key. A missing key or a blob that
// does not decode yields an empty list; only backend failures are returned.
func LoadList[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		slog.WarnContext(ctx, "discarding malformed stored list", "key", key, "error", err)
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// SaveList writes list under key as a JSON array.
func SaveList[T any](ctx context.Context, s Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
