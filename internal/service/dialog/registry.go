package dialog

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

// registry holds the open dialogs of this instance. Dialogs idle for longer
// than the TTL expire; the oldest one is evicted when the registry is full.
type registry struct {
	lru *expirable.LRU[uuid.UUID, *Controller]
}

func newRegistry(size int, idleTTL time.Duration) *registry {
	return &registry{lru: expirable.NewLRU[uuid.UUID, *Controller](size, nil, idleTTL)}
}

func (r *registry) add(c *Controller) {
	r.lru.Add(c.id, c)
}

// get returns the dialog if the caller opened it, and resets its idle timer.
func (r *registry) get(id ctxutil.Identity, dialogID uuid.UUID) (*Controller, bool) {
	c, ok := r.lru.Get(dialogID)
	if !ok || c.tenantID != id.TenantID || c.userID != id.UserID {
		return nil, false
	}
	r.lru.Add(dialogID, c)
	return c, true
}

func (r *registry) remove(dialogID uuid.UUID) {
	r.lru.Remove(dialogID)
}

func (r *registry) len() int {
	return r.lru.Len()
}
