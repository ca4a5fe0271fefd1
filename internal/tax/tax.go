// Package tax computes the VAT and service-charge breakdown of a folio charge.
// The same breakdown is shown in dialog previews and posted to the folio.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Breakdown is the split of an entered amount into base and taxes.
type Breakdown struct {
	BaseAmount    decimal.Decimal   `json:"base_amount"`
	VATAmount     decimal.Decimal   `json:"vat_amount"`
	ServiceCharge decimal.Decimal   `json:"service_charge"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	ChargeType    domain.ChargeType `json:"charge_type"`
}

// Calculate splits amount into base, VAT and service charge.
//
// A rate applies only when the charge type is in its applicability list (an
// empty list applies to every type). Exclusive rates are added on top of the
// base. Inclusive rates are already contained in amount: each inclusive tax is
// computed on amount / (1 + inclusive%) and the base is what remains of amount,
// so an all-inclusive total always equals the entered amount. All parts are
// rounded to 2 places and the total is their exact sum.
func Calculate(amount decimal.Decimal, ct domain.ChargeType, s domain.TaxSettings) Breakdown {
	vatRate := decimal.Zero
	if s.VATApplies(ct) {
		vatRate = s.VATRate
	}
	svcRate := decimal.Zero
	if s.ServiceApplies(ct) {
		svcRate = s.ServiceChargeRate
	}

	inclusive := decimal.Zero
	if s.VATInclusive {
		inclusive = inclusive.Add(vatRate)
	}
	if s.ServiceChargeInclusive {
		inclusive = inclusive.Add(svcRate)
	}

	entered := amount.Round(2)
	base := entered
	var vat, svc decimal.Decimal
	if inclusive.IsPositive() {
		net := amount.Div(decimal.NewFromInt(1).Add(inclusive.Div(hundred)))
		if s.VATInclusive {
			vat = percent(net, vatRate)
			base = base.Sub(vat)
		}
		if s.ServiceChargeInclusive {
			svc = percent(net, svcRate)
			base = base.Sub(svc)
		}
	}
	if !s.VATInclusive {
		vat = percent(base, vatRate)
	}
	if !s.ServiceChargeInclusive {
		svc = percent(base, svcRate)
	}

	return Breakdown{
		BaseAmount:    base,
		VATAmount:     vat,
		ServiceCharge: svc,
		TotalAmount:   base.Add(vat).Add(svc),
		ChargeType:    ct,
	}
}

func percent(v, rate decimal.Decimal) decimal.Decimal {
	return v.Mul(rate).Div(hundred).Round(2)
}

// Charge converts a breakdown into the folio charge shape used by check-in.
func (b Breakdown) Charge(description string) domain.InitialCharge {
	return domain.InitialCharge{
		ChargeType:    b.ChargeType,
		Description:   description,
		BaseAmount:    b.BaseAmount,
		VATAmount:     b.VATAmount,
		ServiceCharge: b.ServiceCharge,
		TotalAmount:   b.TotalAmount,
	}
}
