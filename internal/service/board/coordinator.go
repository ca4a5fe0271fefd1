package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/waspershola/africa-lodge-90-sub002/internal/cache"
)

// ErrRefetch marks a failed refetch after a successful mutation. Pending
// tiles stay in place until they expire or the next refetch succeeds.
var ErrRefetch = errors.New("board refetch failed")

// AfterMutation invalidates the tenant's cached collections and refetches
// rooms and reservations before returning.
func (s *Service) AfterMutation(ctx context.Context, tenantID uuid.UUID) error {
	started := s.clock.Now()

	invalidateErr := s.invalidate(ctx, tenantID)
	if invalidateErr != nil {
		s.log.ErrorContext(ctx, "cache invalidation failed",
			slog.String("tenant_id", tenantID.String()),
			slog.String("error", invalidateErr.Error()),
		)
	}

	if err := s.refetch(ctx, tenantID); err != nil {
		s.log.WarnContext(ctx, "board refetch failed",
			slog.String("tenant_id", tenantID.String()),
			slog.String("error", err.Error()),
		)
		return errors.Join(invalidateErr, fmt.Errorf("%w: %w", ErrRefetch, err))
	}

	s.confirm(tenantID, started)
	s.log.DebugContext(ctx, "board refreshed", slog.String("tenant_id", tenantID.String()))
	return invalidateErr
}

func (s *Service) invalidate(ctx context.Context, tenantID uuid.UUID) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range cache.MutationResources {
		key := cache.Key(tenantID, r)
		g.Go(func() error {
			if err := s.cache.Delete(gctx, key); err != nil {
				return fmt.Errorf("invalidate %s: %w", key, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) refetch(ctx context.Context, tenantID uuid.UUID) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.loadRooms(gctx, tenantID)
		if err != nil {
			return err
		}
		return s.fillFolios(gctx, tenantID, rows, true)
	})
	g.Go(func() error {
		_, err := s.loadReservations(gctx, tenantID)
		return err
	})
	return g.Wait()
}
