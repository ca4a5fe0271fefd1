package frontdesk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// CancelReservation releases a reserved room through the atomic cancellation
// procedure. A success=false answer is returned as a soft failure carrying
// the server message, and the room keeps its reservation.
func (s *Service) CancelReservation(ctx context.Context, room domain.Room, in CancelReservationInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, domain.ActionCancelReservation); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	err = s.procs.CancelReservation(ctx, domain.CancelRequest{
		TenantID:      id.TenantID,
		ReservationID: in.ReservationID,
		CancelledBy:   id.UserID,
		Reason:        strings.TrimSpace(in.Reason),
		RefundAmount:  in.RefundAmount,
		Notes:         in.Notes,
		PaymentAction: in.paymentAction(),
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("cancel reservation: %w", err)
	}

	out := Outcome{Message: "Reservation cancelled; room " + room.Number + " is available"}

	meta := map[string]any{
		"room_id":        room.ID.String(),
		"reason":         strings.TrimSpace(in.Reason),
		"payment_action": in.paymentAction().String(),
	}
	if in.RefundAmount != nil {
		meta["refund_amount"] = in.RefundAmount.String()
	}
	s.record(ctx, &out, id, domain.ActionCancelReservation, domain.ResourceReservation, in.ReservationID,
		"Cancelled reservation for room "+room.Number, meta)

	folioID := uuid.Nil
	if room.Folio != nil {
		folioID = room.Folio.ID
	}
	out.Room = vacated(room, domain.RoomStatusAvailable)
	out.Room.Folio = domain.NewFolioSummary(folioID, decimal.Zero)

	s.log.InfoContext(ctx, "reservation cancelled",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("room_id", room.ID.String()),
		slog.String("reservation_id", in.ReservationID.String()),
		slog.String("payment_action", in.paymentAction().String()),
	)

	return out, nil
}
