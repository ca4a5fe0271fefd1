// Package onboarding runs the setup wizard a new owner completes before the
// hotel exists: profile, room types, rooms and tax settings.
package onboarding

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

type draftRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.OnboardingDraft, error)
	Save(ctx context.Context, draft domain.OnboardingDraft) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type provisioner interface {
	CreateTenant(ctx context.Context, t domain.Tenant) error
	AddMember(ctx context.Context, tenantID, userID uuid.UUID, role domain.UserRole) error
	CreateRoomTypes(ctx context.Context, types []domain.RoomType) error
	CreateRooms(ctx context.Context, rooms []domain.RoomSeed) error
}

type hotelRepo interface {
	Upsert(ctx context.Context, cfg domain.HotelConfig) (domain.HotelConfig, error)
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service drives the onboarding wizard of the calling user.
type Service struct {
	log      *slog.Logger
	clock    clockwork.Clock
	drafts   draftRepo
	tenants  provisioner
	hotels   hotelRepo
	audit    auditLogger
	tx       txManager
	validate *validator.Validate
}

// NewService creates a new onboarding Service.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	drafts draftRepo,
	tenants provisioner,
	hotels hotelRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:      log.With("service", "onboarding"),
		clock:    clock,
		drafts:   drafts,
		tenants:  tenants,
		hotels:   hotels,
		audit:    audit,
		tx:       tx,
		validate: newValidator(),
	}
}
