// Package actionmenu lists the front-desk actions offered for a room.
package actionmenu

import (
	"slices"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// Option is one entry of a room's action menu.
type Option struct {
	Label       string            `json:"label"`
	Kind        domain.ActionKind `json:"kind"`
	Destructive bool              `json:"destructive"`
	privileged  bool
}

var table = map[domain.RoomStatus][]Option{
	domain.RoomStatusAvailable: {
		{Label: "Assign Room", Kind: domain.ActionAssignRoom},
		{Label: "Walk-in Check-in", Kind: domain.ActionWalkIn},
		{Label: "Set Out of Service", Kind: domain.ActionSetOutOfService, Destructive: true, privileged: true},
	},
	domain.RoomStatusOccupied: {
		{Label: "Check-Out", Kind: domain.ActionCheckOut},
		{Label: "Extend Stay", Kind: domain.ActionExtendStay},
		{Label: "Transfer Room", Kind: domain.ActionTransferRoom},
		{Label: "Add Service", Kind: domain.ActionAddService},
		{Label: "Post Payment", Kind: domain.ActionPostPayment},
	},
	domain.RoomStatusReserved: {
		{Label: "Check-In", Kind: domain.ActionCheckIn},
		{Label: "Cancel Reservation", Kind: domain.ActionCancelReservation, Destructive: true},
		{Label: "Modify Reservation", Kind: domain.ActionModifyReservation},
		{Label: "Reassign Room", Kind: domain.ActionReassignRoom},
	},
	domain.RoomStatusOverstay: {
		{Label: "Extend Stay", Kind: domain.ActionExtendStay},
		{Label: "Apply Overstay Charge", Kind: domain.ActionApplyOverstayCharge},
		{Label: "Check-Out", Kind: domain.ActionForceCheckOut, Destructive: true},
		{Label: "Transfer Room", Kind: domain.ActionTransferRoom},
	},
	domain.RoomStatusOutOfService: {
		{Label: "Return to Service", Kind: domain.ActionReturnToService},
	},
	domain.RoomStatusDirty: {
		{Label: "Mark Clean", Kind: domain.ActionMarkClean},
	},
	domain.RoomStatusClean: {
		{Label: "Walk-in Check-in", Kind: domain.ActionWalkIn},
		{Label: "Mark Available", Kind: domain.ActionMarkAvailable},
	},
	domain.RoomStatusMaintenance: {
		{Label: "Complete Maintenance", Kind: domain.ActionCompleteMaintenance},
	},
}

// Available returns the ordered actions the role may take on the room.
func Available(room domain.Room, role domain.UserRole) []Option {
	entries := table[room.Status]
	out := make([]Option, 0, len(entries))
	for _, o := range entries {
		if o.privileged && !role.IsPrivileged() {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Permits reports whether kind is on the room's menu for the role.
func Permits(room domain.Room, role domain.UserRole, kind domain.ActionKind) bool {
	return slices.ContainsFunc(Available(room, role), func(o Option) bool { return o.Kind == kind })
}

// Check explains why kind cannot be opened on the room: ErrForbidden when
// only the role is missing, ErrConflict when the room is in the wrong state.
func Check(room domain.Room, role domain.UserRole, kind domain.ActionKind) error {
	if Permits(room, role, kind) {
		return nil
	}
	if slices.ContainsFunc(table[room.Status], func(o Option) bool { return o.Kind == kind }) {
		return domain.ErrForbidden
	}
	return domain.ErrConflict
}

// IsDestructive reports whether the action needs an explicit confirmation.
func IsDestructive(kind domain.ActionKind) bool {
	switch kind {
	case domain.ActionCancelReservation, domain.ActionForceCheckOut, domain.ActionSetOutOfService:
		return true
	}
	return false
}
