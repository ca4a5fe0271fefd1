// Package board serves the room grid. Reads go through the shared cache;
// optimistic projections from completed dialogs are shown as pending until
// the coordinator refetches confirmed state from the backend.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/waspershola/africa-lodge-90-sub002/internal/cache"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

type roomLister interface {
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.RoomRow, error)
}

type reservationLister interface {
	ListWindow(ctx context.Context, tenantID uuid.UUID, w domain.ReservationWindow) ([]domain.ReservationRow, error)
}

type folioSource interface {
	FoliosByReservation(ctx context.Context, tenantID uuid.UUID, reservationIDs []uuid.UUID) (map[uuid.UUID]domain.FolioRow, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Settings are the board's tunables.
type Settings struct {
	PendingTTL        time.Duration
	ReservationWindow time.Duration
}

// Service is the room board of every tenant served by this instance.
type Service struct {
	log          *slog.Logger
	clock        clockwork.Clock
	rooms        roomLister
	reservations reservationLister
	folios       folioSource
	cache        cacheStore
	settings     Settings

	mu      sync.Mutex
	pending map[uuid.UUID]map[uuid.UUID]pendingEntry // tenant -> room -> entry
}

// NewService creates a new board Service.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	rooms roomLister,
	reservations reservationLister,
	folios folioSource,
	store cacheStore,
	settings Settings,
) *Service {
	return &Service{
		log:          log.With("service", "board"),
		clock:        clock,
		rooms:        rooms,
		reservations: reservations,
		folios:       folios,
		cache:        store,
		settings:     settings,
		pending:      make(map[uuid.UUID]map[uuid.UUID]pendingEntry),
	}
}

// cached decodes a cache entry into dst. Cache failures degrade to a miss.
func (s *Service) cached(ctx context.Context, key string, dst any) bool {
	b, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		s.log.WarnContext(ctx, "cache entry corrupt", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (s *Service) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, b); err != nil {
		s.log.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
