package frontdesk

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/roomview"
	"github.com/waspershola/africa-lodge-90-sub002/internal/tax"
)

// WalkInQuote is the derived part of a walk-in form.
type WalkInQuote struct {
	Nights     int             `json:"nights"`
	Rate       decimal.Decimal `json:"rate"`
	Tax        tax.Breakdown   `json:"tax"`
	Deposit    decimal.Decimal `json:"deposit"`
	BalanceDue decimal.Decimal `json:"balance_due"`
}

// QuoteWalkIn prices a walk-in stay. The rate defaults to the room rate.
func QuoteWalkIn(room domain.Room, in WalkInInput, s domain.TaxSettings) WalkInQuote {
	rate := room.Rate
	if in.Rate != nil {
		rate = *in.Rate
	}
	b := tax.Calculate(rate.Mul(decimal.NewFromInt(int64(in.Nights))), domain.ChargeTypeRoom, s)
	return WalkInQuote{
		Nights:     in.Nights,
		Rate:       rate,
		Tax:        b,
		Deposit:    in.DepositAmount,
		BalanceDue: b.TotalAmount.Sub(in.DepositAmount),
	}
}

// AdditionalNights counts the nights added by moving checkout, rounding
// partial days up. Zero means the new date is not after the current one.
func AdditionalNights(current, next time.Time) int {
	return domain.StayNights(current, next)
}

// ExtendQuote is the derived part of an extend-stay form.
type ExtendQuote struct {
	Nights int             `json:"nights"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
	Tax    tax.Breakdown   `json:"tax"`
}

// QuoteExtendStay prices an extension against the room's current checkout.
func QuoteExtendStay(room domain.Room, in ExtendStayInput, s domain.TaxSettings) (ExtendQuote, error) {
	if room.CheckOut == nil {
		return ExtendQuote{}, domain.NewValidationError("reservation_id", "room has no checkout date")
	}
	nights := AdditionalNights(*room.CheckOut, in.NewCheckOut)
	if nights <= 0 {
		return ExtendQuote{}, domain.NewValidationError("new_check_out", "must be after the current checkout")
	}
	rate := room.Rate
	if in.Rate != nil {
		rate = *in.Rate
	}
	amount := rate.Mul(decimal.NewFromInt(int64(nights)))
	q := ExtendQuote{
		Nights: nights,
		Rate:   rate,
		Amount: amount,
		Tax:    tax.Calculate(amount, domain.ChargeTypeRoom, s),
	}
	if amount.IsPositive() && !in.PaymentMethod.IsValid() {
		return q, domain.NewValidationError("payment_method", "required when an amount is due")
	}
	return q, nil
}

// TransferFee is what a guest pays to move to a dearer room. It is never negative.
func TransferFee(sourceRate, targetRate decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, targetRate.Sub(sourceRate))
}

// TransferQuote is the derived part of a transfer form.
type TransferQuote struct {
	TargetNumber string         `json:"target_number"`
	Fee          decimal.Decimal `json:"fee"`
	Tax          *tax.Breakdown  `json:"tax,omitempty"`
}

// QuoteTransfer prices a move from room to target.
func QuoteTransfer(room domain.Room, target domain.RoomRow, s domain.TaxSettings) TransferQuote {
	fee := TransferFee(room.Rate, target.Rate)
	q := TransferQuote{TargetNumber: target.Number, Fee: fee}
	if fee.IsPositive() {
		b := tax.Calculate(fee, domain.ChargeTypeTransferFee, s)
		q.Tax = &b
	}
	return q
}

// QuoteService is the tax preview of a service charge.
func QuoteService(in AddServiceInput, s domain.TaxSettings) tax.Breakdown {
	return tax.Calculate(in.Amount(), in.ChargeType, s)
}

// OverstayQuote is the derived part of an overstay-charge form.
type OverstayQuote struct {
	Hours       int           `json:"hours"`
	Description string        `json:"description"`
	Tax         tax.Breakdown `json:"tax"`
}

// QuoteOverstay is the tax preview of an overstay charge. The posted charge
// uses the same breakdown.
func QuoteOverstay(room domain.Room, in OverstayChargeInput, s domain.TaxSettings, now time.Time) OverstayQuote {
	hours := roomview.OverstayHours(room, now)
	desc := in.Description
	if desc == "" {
		desc = fmt.Sprintf("Overstay charge (%d hours)", hours)
	}
	return OverstayQuote{
		Hours:       hours,
		Description: desc,
		Tax:         tax.Calculate(in.Amount, domain.ChargeTypeOverstay, s),
	}
}
