// Package cache holds the read cache shared by the room board. Values are
// opaque bytes; callers choose the encoding.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMiss is returned by Get when the key is not cached.
var ErrMiss = errors.New("cache miss")

// Store is a key/value cache with store-wide expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Resource names a cached tenant collection.
type Resource string

const (
	Rooms            Resource = "rooms"
	Reservations     Resource = "reservations"
	Folios           Resource = "folios"
	Payments         Resource = "payments"
	RoomAvailability Resource = "room-availability"
)

// MutationResources are the collections a front-desk write can make stale.
var MutationResources = []Resource{Rooms, Reservations, Folios, Payments, RoomAvailability}

const tenantKey = "tenant:%s:%s"

// Key returns the cache key of a tenant collection.
func Key(tenantID uuid.UUID, r Resource) string {
	return fmt.Sprintf(tenantKey, tenantID, r)
}
