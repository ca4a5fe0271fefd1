package domain

import "strings"

// RoomStatus is the display status of a room on the front-desk grid.
type RoomStatus string

const (
	RoomStatusAvailable    RoomStatus = "available"
	RoomStatusOccupied     RoomStatus = "occupied"
	RoomStatusReserved     RoomStatus = "reserved"
	RoomStatusOutOfService RoomStatus = "out_of_service"
	RoomStatusOverstay     RoomStatus = "overstay"
	RoomStatusDirty        RoomStatus = "dirty"
	RoomStatusClean        RoomStatus = "clean"
	RoomStatusMaintenance  RoomStatus = "maintenance"
)

func (s RoomStatus) String() string { return string(s) }

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusReserved, RoomStatusOutOfService,
		RoomStatusOverstay, RoomStatusDirty, RoomStatusClean, RoomStatusMaintenance:
		return true
	}
	return false
}

// IsVacant reports whether a guest can be placed in the room right away.
func (s RoomStatus) IsVacant() bool {
	return s == RoomStatusAvailable || s == RoomStatusClean
}

// persistedRoomStatus maps the backend's stored room status to a display status.
var persistedRoomStatus = map[string]RoomStatus{
	"available":      RoomStatusAvailable,
	"vacant":         RoomStatusAvailable,
	"occupied":       RoomStatusOccupied,
	"reserved":       RoomStatusReserved,
	"dirty":          RoomStatusDirty,
	"clean":          RoomStatusClean,
	"inspected":      RoomStatusClean,
	"maintenance":    RoomStatusMaintenance,
	"out_of_order":   RoomStatusOutOfService,
	"out_of_service": RoomStatusOutOfService,
	"oos":            RoomStatusOutOfService,
}

// RoomStatusFromPersisted maps a stored status through the fixed lookup table.
// Unknown values map to available.
func RoomStatusFromPersisted(s string) RoomStatus {
	if st, ok := persistedRoomStatus[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st
	}
	return RoomStatusAvailable
}

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

func (s ReservationStatus) String() string { return string(s) }

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the reservation currently holds its room.
func (s ReservationStatus) IsActive() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusCheckedIn
}

// FolioStatus is the state of a guest folio.
type FolioStatus string

const (
	FolioStatusOpen   FolioStatus = "open"
	FolioStatusClosed FolioStatus = "closed"
)

func (s FolioStatus) String() string { return string(s) }

// ActionKind identifies a front-desk action offered on a room.
type ActionKind string

const (
	ActionAssignRoom          ActionKind = "assign_room"
	ActionWalkIn              ActionKind = "walk_in_check_in"
	ActionCheckIn             ActionKind = "check_in"
	ActionCheckOut            ActionKind = "check_out"
	ActionForceCheckOut       ActionKind = "force_check_out"
	ActionExtendStay          ActionKind = "extend_stay"
	ActionTransferRoom        ActionKind = "transfer_room"
	ActionAddService          ActionKind = "add_service"
	ActionPostPayment         ActionKind = "post_payment"
	ActionCancelReservation   ActionKind = "cancel_reservation"
	ActionModifyReservation   ActionKind = "modify_reservation"
	ActionReassignRoom        ActionKind = "reassign_room"
	ActionApplyOverstayCharge ActionKind = "apply_overstay_charge"
	ActionSetOutOfService     ActionKind = "set_out_of_service"
	ActionReturnToService     ActionKind = "return_to_service"
	ActionMarkClean           ActionKind = "mark_clean"
	ActionMarkAvailable       ActionKind = "mark_available"
	ActionCompleteMaintenance ActionKind = "complete_maintenance"
)

func (k ActionKind) String() string { return string(k) }

func (k ActionKind) IsValid() bool {
	switch k {
	case ActionAssignRoom, ActionWalkIn, ActionCheckIn, ActionCheckOut, ActionForceCheckOut,
		ActionExtendStay, ActionTransferRoom, ActionAddService, ActionPostPayment,
		ActionCancelReservation, ActionModifyReservation, ActionReassignRoom,
		ActionApplyOverstayCharge, ActionSetOutOfService, ActionReturnToService,
		ActionMarkClean, ActionMarkAvailable, ActionCompleteMaintenance:
		return true
	}
	return false
}

// PaymentMethod is how a guest settles an amount.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodPOS      PaymentMethod = "pos"
	PaymentMethodCredit   PaymentMethod = "credit"
)

func (m PaymentMethod) String() string { return string(m) }

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodPOS, PaymentMethodCredit:
		return true
	}
	return false
}

// PaymentAction tells the cancellation procedure what to do with money already paid.
type PaymentAction string

const (
	PaymentActionNone    PaymentAction = "none"
	PaymentActionRefund  PaymentAction = "refund"
	PaymentActionCredit  PaymentAction = "credit"
	PaymentActionForfeit PaymentAction = "forfeit"
)

func (a PaymentAction) String() string { return string(a) }

func (a PaymentAction) IsValid() bool {
	switch a {
	case PaymentActionNone, PaymentActionRefund, PaymentActionCredit, PaymentActionForfeit:
		return true
	}
	return false
}

// ChargeType categorizes a folio charge for tax applicability.
type ChargeType string

const (
	ChargeTypeRoom        ChargeType = "room"
	ChargeTypeFood        ChargeType = "food"
	ChargeTypeBeverage    ChargeType = "beverage"
	ChargeTypeLaundry     ChargeType = "laundry"
	ChargeTypeMinibar     ChargeType = "minibar"
	ChargeTypeSpa         ChargeType = "spa"
	ChargeTypeTransport   ChargeType = "transport"
	ChargeTypeOverstay    ChargeType = "overstay"
	ChargeTypeTransferFee ChargeType = "transfer_fee"
	ChargeTypeOther       ChargeType = "other"
)

func (c ChargeType) String() string { return string(c) }

func (c ChargeType) IsValid() bool {
	switch c {
	case ChargeTypeRoom, ChargeTypeFood, ChargeTypeBeverage, ChargeTypeLaundry, ChargeTypeMinibar,
		ChargeTypeSpa, ChargeTypeTransport, ChargeTypeOverstay, ChargeTypeTransferFee, ChargeTypeOther:
		return true
	}
	return false
}

// UserRole is the acting staff member's role within a tenant.
type UserRole string

const (
	UserRoleOwner        UserRole = "OWNER"
	UserRoleManager      UserRole = "MANAGER"
	UserRoleFrontDesk    UserRole = "FRONT_DESK"
	UserRoleHousekeeping UserRole = "HOUSEKEEPING"
	UserRoleAccountant   UserRole = "ACCOUNTANT"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleManager, UserRoleFrontDesk, UserRoleHousekeeping, UserRoleAccountant:
		return true
	}
	return false
}

// IsPrivileged reports whether the role may change room availability and hotel settings.
func (r UserRole) IsPrivileged() bool {
	return r == UserRoleOwner || r == UserRoleManager
}

// ResourceType identifies the kind of record an audit entry refers to.
type ResourceType string

const (
	ResourceRoom        ResourceType = "room"
	ResourceReservation ResourceType = "reservation"
	ResourceFolio       ResourceType = "folio"
	ResourcePayment     ResourceType = "payment"
	ResourceHotelConfig ResourceType = "hotel_config"
	ResourceTenant      ResourceType = "tenant"
)

func (r ResourceType) String() string { return string(r) }

// NotificationChannel is the delivery route of a notification event.
type NotificationChannel string

const (
	ChannelEmail   NotificationChannel = "email"
	ChannelSMS     NotificationChannel = "sms"
	ChannelPrinter NotificationChannel = "printer"
)

func (c NotificationChannel) String() string { return string(c) }

// TaskType is the kind of housekeeping task.
type TaskType string

const (
	TaskTypeCleaning    TaskType = "cleaning"
	TaskTypeMaintenance TaskType = "maintenance"
	TaskTypeInspection  TaskType = "inspection"
)

// TaskPriority orders housekeeping work.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityHigh   TaskPriority = "high"
)
