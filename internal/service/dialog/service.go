// Package dialog runs the modal dialogs behind the room action menu. A dialog
// collects a form, previews its figures, submits it once and refreshes the
// board after the backend accepted the change.
package dialog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/board"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/frontdesk"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

type boardView interface {
	TenantRooms(ctx context.Context, tenantID uuid.UUID) ([]board.RoomState, error)
	ApplyPending(tenantID uuid.UUID, action domain.ActionKind, rooms ...domain.Room)
	AfterMutation(ctx context.Context, tenantID uuid.UUID) error
}

type configProvider interface {
	Get(ctx context.Context, tenantID uuid.UUID) (domain.HotelConfig, error)
}

// Settings bound dialog lifetimes.
type Settings struct {
	SubmitTimeout time.Duration
	IdleTTL       time.Duration
	MaxOpen       int
}

// CompletionFunc is called after a submit succeeded and before the board is
// refreshed.
type CompletionFunc func(ctx context.Context, kind domain.ActionKind, out frontdesk.Outcome)

// Service owns the open dialogs of this instance.
type Service struct {
	log      *slog.Logger
	clock    clockwork.Clock
	board    boardView
	hotel    configProvider
	actions  map[domain.ActionKind]frontdesk.Action
	settings Settings
	open     *registry

	mu          sync.RWMutex
	completions []CompletionFunc
}

// NewService creates a new dialog Service.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	board boardView,
	hotel configProvider,
	actions map[domain.ActionKind]frontdesk.Action,
	settings Settings,
) *Service {
	return &Service{
		log:      log.With("service", "dialog"),
		clock:    clock,
		board:    board,
		hotel:    hotel,
		actions:  actions,
		settings: settings,
		open:     newRegistry(settings.MaxOpen, settings.IdleTTL),
	}
}

// OnComplete registers fn to run after every successful submit.
func (s *Service) OnComplete(fn CompletionFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions = append(s.completions, fn)
}

func (s *Service) completed(ctx context.Context, kind domain.ActionKind, out frontdesk.Outcome) {
	s.mu.RLock()
	fns := s.completions
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(ctx, kind, out)
	}
}

// OpenCount reports how many dialogs are held by this instance.
func (s *Service) OpenCount() int {
	return s.open.len()
}

func identity(ctx context.Context) (ctxutil.Identity, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}

func (s *Service) lookup(ctx context.Context, dialogID uuid.UUID) (*Controller, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := s.open.get(id, dialogID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func busy(op string) error {
	return &domain.RemoteError{
		Kind:    domain.KindRoomConflict,
		Op:      op,
		Message: "the dialog is still processing",
		Err:     domain.ErrConflict,
	}
}
