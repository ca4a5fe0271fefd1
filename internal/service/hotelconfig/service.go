// Package hotelconfig is the owner configuration center: hotel profile,
// check-in times, tax settings and the logo.
package hotelconfig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

type hotelRepo interface {
	Get(ctx context.Context, tenantID uuid.UUID) (domain.HotelConfig, error)
	Upsert(ctx context.Context, cfg domain.HotelConfig) (domain.HotelConfig, error)
	SetLogo(ctx context.Context, tenantID uuid.UUID, logoURL string) error
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, body []byte) (string, error)
}

// Service reads and edits the configuration of the caller's hotel.
type Service struct {
	log          *slog.Logger
	clock        clockwork.Clock
	hotels       hotelRepo
	audit        auditLogger
	tx           txManager
	storage      uploader
	maxLogoBytes int64
}

// NewService creates a new hotel configuration Service. storage may be nil
// when logo uploads are not configured.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	hotels hotelRepo,
	audit auditLogger,
	tx txManager,
	storage uploader,
	maxLogoBytes int64,
) *Service {
	return &Service{
		log:          log.With("service", "hotelconfig"),
		clock:        clock,
		hotels:       hotels,
		audit:        audit,
		tx:           tx,
		storage:      storage,
		maxLogoBytes: maxLogoBytes,
	}
}

// Get returns the tenant's configuration. A tenant that never saved one gets
// the defaults.
func (s *Service) Get(ctx context.Context, tenantID uuid.UUID) (domain.HotelConfig, error) {
	cfg, err := s.hotels.Get(ctx, tenantID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultHotelConfig(tenantID), nil
	}
	if err != nil {
		return domain.HotelConfig{}, fmt.Errorf("get hotel config: %w", err)
	}
	return cfg, nil
}

// Current returns the configuration of the caller's hotel. Any member may read it.
func (s *Service) Current(ctx context.Context) (domain.HotelConfig, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.HotelConfig{}, domain.ErrUnauthorized
	}
	return s.Get(ctx, id.TenantID)
}

func privileged(ctx context.Context) (ctxutil.Identity, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	if !domain.UserRole(id.Role).IsPrivileged() {
		return ctxutil.Identity{}, domain.ErrForbidden
	}
	return id, nil
}
