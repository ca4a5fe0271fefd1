// Package loader provides per-request DataLoaders that batch folio lookups
// made while a board request is being served. Loaders call repositories
// directly; tenant scoping is enforced in the repository SQL.
package loader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type folioRepo interface {
	GetByReservationIDs(ctx context.Context, tenantID uuid.UUID, reservationIDs []uuid.UUID) ([]domain.FolioRow, error)
}

// Loaders contains the per-request DataLoaders.
type Loaders struct {
	FolioByReservationID *dataloader.Loader[uuid.UUID, *domain.FolioRow]
}

// NewLoaders creates a new set of DataLoaders. Must be called per request
// (loaders cache results within a single request).
func NewLoaders(folios folioRepo) *Loaders {
	return &Loaders{
		FolioByReservationID: newLoader(newFolioBatchFn(folios)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Folio by ReservationID (1:1 nullable)
// ---------------------------------------------------------------------------

func newFolioBatchFn(repo folioRepo) dataloader.BatchFunc[uuid.UUID, *domain.FolioRow] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.FolioRow] {
		tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.FolioRow](len(keys), domain.ErrUnauthorized)
		}

		rows, err := repo.GetByReservationIDs(ctx, tenantID, keys)
		if err != nil {
			return errorResults[*domain.FolioRow](len(keys), err)
		}

		byReservation := make(map[uuid.UUID]*domain.FolioRow, len(rows))
		for i := range rows {
			f := rows[i]
			byReservation[f.ReservationID] = &f
		}

		results := make([]*dataloader.Result[*domain.FolioRow], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.FolioRow]{Data: byReservation[key]}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, if the middleware installed them.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
