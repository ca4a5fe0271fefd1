package hotelconfig

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var (
	clockTime    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)
	hundred      = decimal.NewFromInt(100)
)

// UpdateInput replaces the editable configuration of the hotel.
type UpdateInput struct {
	HotelName    string             `json:"hotel_name"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Currency     string             `json:"currency"`
	Timezone     string             `json:"timezone"`
	CheckInTime  string             `json:"check_in_time"`
	CheckOutTime string             `json:"check_out_time"`
	Tax          domain.TaxSettings `json:"tax"`
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.HotelName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "hotel_name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "hotel_name", Message: "max 200 characters"})
	}
	if i.Email != "" {
		if _, err := mail.ParseAddress(i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}
	if !currencyCode.MatchString(i.Currency) {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "must be a 3-letter code"})
	}
	if i.Timezone == "" {
		errs = append(errs, domain.FieldError{Field: "timezone", Message: "required"})
	} else if _, err := time.LoadLocation(i.Timezone); err != nil {
		errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown timezone"})
	}
	if !clockTime.MatchString(i.CheckInTime) {
		errs = append(errs, domain.FieldError{Field: "check_in_time", Message: "must be HH:MM"})
	}
	if !clockTime.MatchString(i.CheckOutTime) {
		errs = append(errs, domain.FieldError{Field: "check_out_time", Message: "must be HH:MM"})
	}

	errs = append(errs, validateTax(i.Tax)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTax(t domain.TaxSettings) []domain.FieldError {
	var errs []domain.FieldError
	if t.VATRate.IsNegative() || t.VATRate.GreaterThan(hundred) {
		errs = append(errs, domain.FieldError{Field: "tax.vat_rate", Message: "must be between 0 and 100"})
	}
	if t.ServiceChargeRate.IsNegative() || t.ServiceChargeRate.GreaterThan(hundred) {
		errs = append(errs, domain.FieldError{Field: "tax.service_charge_rate", Message: "must be between 0 and 100"})
	}
	for _, ct := range t.VATApplicableTo {
		if !ct.IsValid() {
			errs = append(errs, domain.FieldError{Field: "tax.vat_applicable_to", Message: "unknown charge type " + ct.String()})
		}
	}
	for _, ct := range t.ServiceApplicableTo {
		if !ct.IsValid() {
			errs = append(errs, domain.FieldError{Field: "tax.service_applicable_to", Message: "unknown charge type " + ct.String()})
		}
	}
	return errs
}

// LogoInput is an uploaded logo file.
type LogoInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

func (i LogoInput) validate(maxBytes int64) error {
	var errs []domain.FieldError
	if _, ok := logoExtensions[i.ContentType]; !ok {
		errs = append(errs, domain.FieldError{Field: "logo", Message: "must be png, jpeg, webp or svg"})
	}
	switch {
	case len(i.Data) == 0:
		errs = append(errs, domain.FieldError{Field: "logo", Message: "file is empty"})
	case int64(len(i.Data)) > maxBytes:
		errs = append(errs, domain.FieldError{Field: "logo", Message: "file is too large"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
