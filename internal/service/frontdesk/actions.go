package frontdesk

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/roomview"
)

// Form is the editable state of an action dialog. Forms are pointers to the
// operation inputs so JSON patches merge into them.
type Form interface {
	Validate() error
}

// PreviewEnv is what a dialog knows without calling the backend.
type PreviewEnv struct {
	Settings domain.TaxSettings
	Now      time.Time
	// Room looks up another room of the board, e.g. a transfer target.
	Room func(id uuid.UUID) (domain.Room, bool)
}

// Action binds a menu action to its form, preview and operation.
type Action struct {
	Kind    domain.ActionKind
	NewForm func(room domain.Room) Form
	// Preview derives read-only figures from the form. Nil when the action
	// has nothing to preview.
	Preview func(room domain.Room, form Form, env PreviewEnv) any
	Submit  func(ctx context.Context, room domain.Room, form Form) (Outcome, error)
}

// Actions returns the dialog-backed actions keyed by kind.
func (s *Service) Actions() map[domain.ActionKind]Action {
	actions := []Action{
		{
			Kind:    domain.ActionWalkIn,
			NewForm: func(domain.Room) Form { return &WalkInInput{Nights: 1} },
			Preview: func(room domain.Room, f Form, env PreviewEnv) any {
				return QuoteWalkIn(room, *f.(*WalkInInput), env.Settings)
			},
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.WalkIn(ctx, room, *f.(*WalkInInput))
			},
		},
		{
			Kind: domain.ActionCheckIn,
			NewForm: func(room domain.Room) Form {
				in := &CheckInInput{ReservationID: reservationID(room)}
				if room.Guest != nil {
					in.IDNumber = room.Guest.IDNumber
				}
				return in
			},
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.CheckIn(ctx, room, *f.(*CheckInInput))
			},
		},
		{
			Kind:    domain.ActionCheckOut,
			NewForm: func(room domain.Room) Form { return &CheckOutInput{ReservationID: reservationID(room)} },
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.CheckOut(ctx, room, *f.(*CheckOutInput))
			},
		},
		{
			Kind:    domain.ActionForceCheckOut,
			NewForm: func(room domain.Room) Form { return &CheckOutInput{ReservationID: reservationID(room), Force: true} },
			Preview: func(room domain.Room, _ Form, env PreviewEnv) any {
				return map[string]any{"overstay_hours": roomview.OverstayHours(room, env.Now)}
			},
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				in := *f.(*CheckOutInput)
				in.Force = true
				return s.CheckOut(ctx, room, in)
			},
		},
		{
			Kind:    domain.ActionCancelReservation,
			NewForm: func(room domain.Room) Form { return &CancelReservationInput{ReservationID: reservationID(room)} },
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.CancelReservation(ctx, room, *f.(*CancelReservationInput))
			},
		},
		{
			Kind: domain.ActionExtendStay,
			NewForm: func(room domain.Room) Form {
				in := &ExtendStayInput{ReservationID: reservationID(room)}
				if room.CheckOut != nil {
					in.NewCheckOut = room.CheckOut.AddDate(0, 0, 1)
				}
				return in
			},
			Preview: func(room domain.Room, f Form, env PreviewEnv) any {
				q, err := QuoteExtendStay(room, *f.(*ExtendStayInput), env.Settings)
				if err != nil && q.Nights <= 0 {
					return nil
				}
				return q
			},
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.ExtendStay(ctx, room, *f.(*ExtendStayInput))
			},
		},
		{
			Kind:    domain.ActionTransferRoom,
			NewForm: func(room domain.Room) Form { return &TransferRoomInput{ReservationID: reservationID(room)} },
			Preview: func(room domain.Room, f Form, env PreviewEnv) any {
				in := f.(*TransferRoomInput)
				if env.Room == nil || in.TargetRoomID == uuid.Nil {
					return nil
				}
				target, ok := env.Room(in.TargetRoomID)
				if !ok {
					return nil
				}
				return QuoteTransfer(room, domain.RoomRow{ID: target.ID, Number: target.Number, Rate: target.Rate}, env.Settings)
			},
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.TransferRoom(ctx, room, *f.(*TransferRoomInput))
			},
		},
		{
			Kind: domain.ActionAddService,
			NewForm: func(room domain.Room) Form {
				return &AddServiceInput{ReservationID: reservationID(room), Quantity: 1}
			},
			Preview: func(_ domain.Room, f Form, env PreviewEnv) any {
				return QuoteService(*f.(*AddServiceInput), env.Settings)
			},
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.AddService(ctx, room, *f.(*AddServiceInput))
			},
		},
		{
			Kind:    domain.ActionApplyOverstayCharge,
			NewForm: func(room domain.Room) Form { return &OverstayChargeInput{ReservationID: reservationID(room)} },
			Preview: func(room domain.Room, f Form, env PreviewEnv) any {
				return QuoteOverstay(room, *f.(*OverstayChargeInput), env.Settings, env.Now)
			},
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.ApplyOverstayCharge(ctx, room, *f.(*OverstayChargeInput))
			},
		},
		{
			Kind:    domain.ActionPostPayment,
			NewForm: func(room domain.Room) Form { return &PostPaymentInput{ReservationID: reservationID(room)} },
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.PostPayment(ctx, room, *f.(*PostPaymentInput))
			},
		},
		{
			Kind:    domain.ActionAssignRoom,
			NewForm: func(domain.Room) Form { return &AssignRoomInput{} },
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.AssignRoom(ctx, room, *f.(*AssignRoomInput))
			},
		},
		{
			Kind:    domain.ActionReassignRoom,
			NewForm: func(room domain.Room) Form { return &ReassignRoomInput{ReservationID: reservationID(room)} },
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.ReassignRoom(ctx, room, *f.(*ReassignRoomInput))
			},
		},
		{
			Kind:    domain.ActionModifyReservation,
			NewForm: func(room domain.Room) Form { return &ModifyReservationInput{ReservationID: reservationID(room)} },
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				return s.ModifyReservation(ctx, room, *f.(*ModifyReservationInput))
			},
		},
	}

	out := make(map[domain.ActionKind]Action, len(actions)+len(roomStateTargets))
	for _, a := range actions {
		out[a.Kind] = a
	}
	for kind := range roomStateTargets {
		out[kind] = Action{
			Kind:    kind,
			NewForm: func(domain.Room) Form { return &RoomStateInput{Kind: kind} },
			Submit: func(ctx context.Context, room domain.Room, f Form) (Outcome, error) {
				in := *f.(*RoomStateInput)
				in.Kind = kind
				return s.ChangeRoomState(ctx, room, in)
			},
		}
	}
	return out
}

func reservationID(room domain.Room) uuid.UUID {
	if room.Reservation == nil {
		return uuid.Nil
	}
	return room.Reservation.ID
}
