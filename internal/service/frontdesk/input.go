package frontdesk

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

const (
	maxNights      = 365
	maxReasonLen   = 500
	maxQuantity    = 100
	maxDescription = 200
)

// GuestInput holds the guest details captured at walk-in.
type GuestInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
}

// WalkInInput holds the parameters for checking in a guest without a reservation.
type WalkInInput struct {
	Guest         GuestInput           `json:"guest"`
	Nights        int                  `json:"nights"`
	Rate          *decimal.Decimal     `json:"rate,omitempty"`
	DepositAmount decimal.Decimal      `json:"deposit_amount"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

// Validate checks all fields and collects all errors.
func (i WalkInInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Guest.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "guest.name", Message: "required"})
	}
	if strings.TrimSpace(i.Guest.Phone) == "" {
		errs = append(errs, domain.FieldError{Field: "guest.phone", Message: "required"})
	}
	if email := strings.TrimSpace(i.Guest.Email); email != "" && !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "guest.email", Message: "invalid format"})
	}
	if i.Nights < 1 {
		errs = append(errs, domain.FieldError{Field: "nights", Message: "must be at least 1"})
	}
	if i.Nights > maxNights {
		errs = append(errs, domain.FieldError{Field: "nights", Message: "max 365"})
	}
	if i.Rate != nil && !i.Rate.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "rate", Message: "must be positive"})
	}
	errs = append(errs, depositErrors(i.DepositAmount, i.PaymentMethod)...)

	return collect(errs)
}

// CheckInInput holds the parameters for checking in an existing reservation.
type CheckInInput struct {
	ReservationID uuid.UUID            `json:"reservation_id"`
	DepositAmount decimal.Decimal      `json:"deposit_amount"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	IDNumber      string               `json:"id_number"`
}

// Validate checks all fields and collects all errors.
func (i CheckInInput) Validate() error {
	var errs []domain.FieldError
	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	errs = append(errs, depositErrors(i.DepositAmount, i.PaymentMethod)...)
	return collect(errs)
}

// CheckOutInput holds the parameters for checking a guest out.
type CheckOutInput struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Force         bool      `json:"force"`
	Confirmed     bool      `json:"confirmed"`
	Notes         string    `json:"notes"`
}

// Validate checks all fields and collects all errors.
func (i CheckOutInput) Validate() error {
	var errs []domain.FieldError
	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	if i.Force && !i.Confirmed {
		errs = append(errs, domain.FieldError{Field: "confirmed", Message: "forced check-out must be confirmed"})
	}
	if len(i.Notes) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 500 characters"})
	}
	return collect(errs)
}

// CancelReservationInput holds the parameters for cancelling a reservation.
type CancelReservationInput struct {
	ReservationID uuid.UUID            `json:"reservation_id"`
	Reason        string               `json:"reason"`
	RefundAmount  *decimal.Decimal     `json:"refund_amount,omitempty"`
	Notes         string               `json:"notes"`
	PaymentAction domain.PaymentAction `json:"payment_action"`
	Confirmed     bool                 `json:"confirmed"`
}

// Validate checks all fields and collects all errors.
func (i CancelReservationInput) Validate() error {
	var errs []domain.FieldError

	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	if len(reason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 500 characters"})
	}
	if i.RefundAmount != nil && i.RefundAmount.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "refund_amount", Message: "must not be negative"})
	}
	action := i.paymentAction()
	if !action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payment_action", Message: "must be one of none, refund, credit, forfeit"})
	}
	if action == domain.PaymentActionRefund && (i.RefundAmount == nil || !i.RefundAmount.IsPositive()) {
		errs = append(errs, domain.FieldError{Field: "refund_amount", Message: "required for a refund"})
	}
	if !i.Confirmed {
		errs = append(errs, domain.FieldError{Field: "confirmed", Message: "cancellation must be confirmed"})
	}

	return collect(errs)
}

func (i CancelReservationInput) paymentAction() domain.PaymentAction {
	if i.PaymentAction == "" {
		return domain.PaymentActionNone
	}
	return i.PaymentAction
}

// ExtendStayInput holds the parameters for extending a stay.
type ExtendStayInput struct {
	ReservationID uuid.UUID            `json:"reservation_id"`
	NewCheckOut   time.Time            `json:"new_check_out"`
	Rate          *decimal.Decimal     `json:"rate,omitempty"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

// Validate checks the fields that do not depend on the room.
func (i ExtendStayInput) Validate() error {
	var errs []domain.FieldError
	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	if i.NewCheckOut.IsZero() {
		errs = append(errs, domain.FieldError{Field: "new_check_out", Message: "required"})
	}
	if i.Rate != nil && !i.Rate.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "rate", Message: "must be positive"})
	}
	if i.PaymentMethod != "" && !i.PaymentMethod.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payment_method", Message: "invalid value"})
	}
	return collect(errs)
}

// TransferRoomInput holds the parameters for moving a guest to another room.
type TransferRoomInput struct {
	ReservationID uuid.UUID            `json:"reservation_id"`
	TargetRoomID  uuid.UUID            `json:"target_room_id"`
	Reason        string               `json:"reason"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	PrintReceipt  bool                 `json:"print_receipt"`
}

// Validate checks all fields and collects all errors.
func (i TransferRoomInput) Validate() error {
	var errs []domain.FieldError
	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	if i.TargetRoomID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_room_id", Message: "required"})
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	if i.PaymentMethod != "" && !i.PaymentMethod.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payment_method", Message: "invalid value"})
	}
	return collect(errs)
}

// AddServiceInput holds the parameters for posting a service charge.
type AddServiceInput struct {
	ReservationID uuid.UUID         `json:"reservation_id"`
	ChargeType    domain.ChargeType `json:"charge_type"`
	Description   string            `json:"description"`
	UnitPrice     decimal.Decimal   `json:"unit_price"`
	Quantity      int               `json:"quantity"`
}

// Validate checks all fields and collects all errors.
func (i AddServiceInput) Validate() error {
	var errs []domain.FieldError
	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	if !i.ChargeType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "charge_type", Message: "invalid value"})
	}
	desc := strings.TrimSpace(i.Description)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(desc) > maxDescription {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 200 characters"})
	}
	if !i.UnitPrice.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "unit_price", Message: "must be positive"})
	}
	if i.Quantity < 1 || i.Quantity > maxQuantity {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be between 1 and 100"})
	}
	return collect(errs)
}

// Amount is the pre-tax amount of the service.
func (i AddServiceInput) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OverstayChargeInput holds the parameters for charging an overstayed guest.
type OverstayChargeInput struct {
	ReservationID uuid.UUID       `json:"reservation_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// Validate checks all fields and collects all errors.
func (i OverstayChargeInput) Validate() error {
	var errs []domain.FieldError
	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if len(i.Description) > maxDescription {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 200 characters"})
	}
	return collect(errs)
}

// PostPaymentInput holds the parameters for recording a payment.
type PostPaymentInput struct {
	ReservationID uuid.UUID            `json:"reservation_id"`
	Amount        decimal.Decimal      `json:"amount"`
	Method        domain.PaymentMethod `json:"method"`
	Reference     string               `json:"reference"`
}

// Validate checks all fields and collects all errors.
func (i PostPaymentInput) Validate() error {
	var errs []domain.FieldError
	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if !i.Method.IsValid() {
		errs = append(errs, domain.FieldError{Field: "method", Message: "required"})
	}
	return collect(errs)
}

// AssignRoomInput holds the parameters for placing a reservation in a room.
type AssignRoomInput struct {
	ReservationID uuid.UUID `json:"reservation_id"`
}

// Validate checks all fields and collects all errors.
func (i AssignRoomInput) Validate() error {
	if i.ReservationID == uuid.Nil {
		return domain.NewValidationError("reservation_id", "required")
	}
	return nil
}

// ReassignRoomInput holds the parameters for moving a reservation to another room.
type ReassignRoomInput struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	TargetRoomID  uuid.UUID `json:"target_room_id"`
}

// Validate checks all fields and collects all errors.
func (i ReassignRoomInput) Validate() error {
	var errs []domain.FieldError
	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	if i.TargetRoomID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_room_id", Message: "required"})
	}
	return collect(errs)
}

// ModifyReservationInput holds the fields to change on a reservation. Nil fields are kept.
type ModifyReservationInput struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	GuestName     *string    `json:"guest_name,omitempty"`
	GuestPhone    *string    `json:"guest_phone,omitempty"`
	GuestEmail    *string    `json:"guest_email,omitempty"`
	CheckIn       *time.Time `json:"check_in,omitempty"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i ModifyReservationInput) Validate() error {
	var errs []domain.FieldError
	if i.ReservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reservation_id", Message: "required"})
	}
	if i.GuestName == nil && i.GuestPhone == nil && i.GuestEmail == nil && i.CheckIn == nil && i.CheckOut == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.GuestName != nil && strings.TrimSpace(*i.GuestName) == "" {
		errs = append(errs, domain.FieldError{Field: "guest_name", Message: "must not be empty"})
	}
	if i.GuestEmail != nil && *i.GuestEmail != "" && !strings.Contains(*i.GuestEmail, "@") {
		errs = append(errs, domain.FieldError{Field: "guest_email", Message: "invalid format"})
	}
	if i.CheckIn != nil && i.CheckOut != nil && !i.CheckOut.After(*i.CheckIn) {
		errs = append(errs, domain.FieldError{Field: "check_out", Message: "must be after check-in"})
	}
	return collect(errs)
}

// RoomStateInput holds the parameters for a housekeeping or availability change.
type RoomStateInput struct {
	Kind      domain.ActionKind `json:"kind"`
	Reason    string            `json:"reason"`
	Confirmed bool              `json:"confirmed"`
}

// Validate checks all fields and collects all errors.
func (i RoomStateInput) Validate() error {
	var errs []domain.FieldError
	if _, ok := roomStateTargets[i.Kind]; !ok {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "not a room state change"})
	}
	if i.Kind == domain.ActionSetOutOfService {
		if strings.TrimSpace(i.Reason) == "" {
			errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
		}
		if !i.Confirmed {
			errs = append(errs, domain.FieldError{Field: "confirmed", Message: "taking a room out of service must be confirmed"})
		}
	}
	return collect(errs)
}

func depositErrors(amount decimal.Decimal, method domain.PaymentMethod) []domain.FieldError {
	var errs []domain.FieldError
	if amount.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "deposit_amount", Message: "must not be negative"})
	}
	if amount.IsPositive() && !method.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payment_method", Message: "required when a deposit is taken"})
	}
	return errs
}

func collect(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
