// Package frontdesk implements the room operations a receptionist performs
// from the room grid. Each operation issues its backend calls in a fixed
// order and undoes completed steps when a later one fails.
package frontdesk

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/actionmenu"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

type roomRepo interface {
	Get(ctx context.Context, tenantID, roomID uuid.UUID) (domain.RoomRow, error)
	UpdateStatus(ctx context.Context, tenantID, roomID uuid.UUID, status string) error
}

type reservationRepo interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (domain.ReservationRow, error)
	Create(ctx context.Context, r domain.ReservationRow) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status domain.ReservationStatus) error
	UpdateStay(ctx context.Context, tenantID, id uuid.UUID, checkOut time.Time, total decimal.Decimal) error
	AssignRoom(ctx context.Context, tenantID, id uuid.UUID, roomID *uuid.UUID) error
	UpdateDetails(ctx context.Context, tenantID, id uuid.UUID, changes domain.ReservationChanges) error
}

type folioRepo interface {
	GetByReservation(ctx context.Context, tenantID, reservationID uuid.UUID) (domain.FolioRow, error)
	PostCharge(ctx context.Context, charge domain.FolioCharge) error
	VoidCharge(ctx context.Context, tenantID, chargeID uuid.UUID) error
	RecordPayment(ctx context.Context, p domain.Payment) error
}

type procedures interface {
	CheckIn(ctx context.Context, req domain.CheckInRequest) (uuid.UUID, error)
	CancelReservation(ctx context.Context, req domain.CancelRequest) error
	ResolveFolio(ctx context.Context, tenantID, reservationID uuid.UUID) (uuid.UUID, error)
}

type housekeepingRepo interface {
	CreateTask(ctx context.Context, task domain.HousekeepingTask) error
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type notifier interface {
	Enqueue(ctx context.Context, ev domain.NotificationEvent) error
}

type configProvider interface {
	Get(ctx context.Context, tenantID uuid.UUID) (domain.HotelConfig, error)
}

// Service performs front-desk operations against the backend.
type Service struct {
	log          *slog.Logger
	clock        clockwork.Clock
	rooms        roomRepo
	reservations reservationRepo
	folios       folioRepo
	procs        procedures
	housekeeping housekeepingRepo
	audit        auditLogger
	notify       notifier
	hotel        configProvider
}

// NewService creates a new front-desk Service.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	rooms roomRepo,
	reservations reservationRepo,
	folios folioRepo,
	procs procedures,
	housekeeping housekeepingRepo,
	audit auditLogger,
	notify notifier,
	hotel configProvider,
) *Service {
	return &Service{
		log:          log.With("service", "frontdesk"),
		clock:        clock,
		rooms:        rooms,
		reservations: reservations,
		folios:       folios,
		procs:        procs,
		housekeeping: housekeeping,
		audit:        audit,
		notify:       notify,
		hotel:        hotel,
	}
}

// Outcome is the result of a successful operation: the optimistic
// projection of the room (and of any other room the operation touched).
type Outcome struct {
	Room     domain.Room   `json:"room"`
	Related  []domain.Room `json:"related,omitempty"`
	Message  string        `json:"message"`
	Warnings []string      `json:"warnings,omitempty"`
}

func (o *Outcome) warn(msg string) {
	o.Warnings = append(o.Warnings, msg)
}

func identity(ctx context.Context) (ctxutil.Identity, domain.UserRole, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return ctxutil.Identity{}, "", domain.ErrUnauthorized
	}
	return id, domain.UserRole(id.Role), nil
}

// allowed checks that the action is on the room's menu for the role.
func allowed(room domain.Room, role domain.UserRole, kind domain.ActionKind) error {
	if err := actionmenu.Check(room, role, kind); err != nil {
		return &domain.RemoteError{
			Kind:    kindForMenuError(err),
			Op:      kind.String(),
			Message: "room " + room.Number + " is " + room.Status.String(),
			Err:     err,
		}
	}
	return nil
}

func kindForMenuError(err error) domain.ErrorKind {
	if errors.Is(err, domain.ErrForbidden) {
		return domain.KindForbidden
	}
	return domain.KindRoomConflict
}

func reservationOf(room domain.Room, id uuid.UUID) error {
	if room.Reservation == nil || room.Reservation.ID != id {
		return domain.NewValidationError("reservation_id", "does not belong to room "+room.Number)
	}
	return nil
}

func (s *Service) taxSettings(ctx context.Context, tenantID uuid.UUID) (domain.TaxSettings, error) {
	cfg, err := s.hotel.Get(ctx, tenantID)
	if err != nil {
		return domain.TaxSettings{}, err
	}
	return cfg.Tax, nil
}

// record writes the audit entry for a completed operation. The operation has
// already taken effect on the backend, so a failure here is only reported.
func (s *Service) record(ctx context.Context, out *Outcome, id ctxutil.Identity, action domain.ActionKind,
	rt domain.ResourceType, resourceID uuid.UUID, description string, meta map[string]any,
) {
	entry := domain.AuditEntry{
		ID:           uuid.New(),
		TenantID:     id.TenantID,
		ActorID:      id.UserID,
		TerminalID:   ctxutil.TerminalIDFromCtx(ctx),
		Action:       action.String(),
		ResourceType: rt,
		ResourceID:   &resourceID,
		Description:  description,
		Metadata:     meta,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.audit.Log(ctx, entry); err != nil {
		s.log.ErrorContext(ctx, "audit log failed",
			slog.String("action", action.String()),
			slog.String("resource_id", resourceID.String()),
			slog.String("error", err.Error()),
		)
		out.warn("The action completed but could not be written to the audit log.")
	}
}

// send queues a notification. Delivery problems never fail the operation.
func (s *Service) send(ctx context.Context, ev domain.NotificationEvent) {
	ev.ID = uuid.New()
	ev.CreatedAt = s.clock.Now()
	if err := s.notify.Enqueue(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "notification enqueue failed",
			slog.String("event_type", ev.EventType),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) charge(tenantID, folioID, userID uuid.UUID, c domain.InitialCharge) domain.FolioCharge {
	return domain.FolioCharge{
		ID:            uuid.New(),
		TenantID:      tenantID,
		FolioID:       folioID,
		ChargeType:    c.ChargeType,
		Description:   c.Description,
		BaseAmount:    c.BaseAmount,
		VATAmount:     c.VATAmount,
		ServiceCharge: c.ServiceCharge,
		TotalAmount:   c.TotalAmount,
		PostedBy:      userID,
		CreatedAt:     s.clock.Now(),
	}
}

func (s *Service) payment(tenantID, folioID, userID uuid.UUID, amount decimal.Decimal, method domain.PaymentMethod, ref string) domain.Payment {
	return domain.Payment{
		ID:        uuid.New(),
		TenantID:  tenantID,
		FolioID:   folioID,
		Amount:    amount.Round(2),
		Method:    method,
		Status:    domain.PaymentStatusCompleted,
		Reference: ref,
		CreatedBy: userID,
		CreatedAt: s.clock.Now(),
	}
}

// vacated returns the projection of a room once its guest has left.
func vacated(room domain.Room, status domain.RoomStatus) domain.Room {
	room.Status = status
	room.PersistedStatus = status.String()
	room.Guest = nil
	room.Reservation = nil
	room.CheckIn = nil
	room.CheckOut = nil
	room.Folio = nil
	room.Alerts = domain.RoomAlerts{}
	return room
}

func withBalanceDelta(room domain.Room, delta decimal.Decimal) domain.Room {
	if room.Folio == nil {
		return room
	}
	room.Folio = domain.NewFolioSummary(room.Folio.ID, room.Folio.Balance.Add(delta))
	room.Alerts.DepositPending = !room.Folio.IsPaid
	return room
}
