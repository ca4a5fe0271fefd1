package onboarding

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// HotelProfileStep is the payload of the hotel_profile step.
type HotelProfileStep struct {
	HotelName    string `json:"hotel_name"     validate:"required,max=200"`
	Address      string `json:"address"        validate:"max=500"`
	Phone        string `json:"phone"          validate:"max=30"`
	Email        string `json:"email"          validate:"omitempty,email"`
	Currency     string `json:"currency"       validate:"required,iso4217"`
	Timezone     string `json:"timezone"       validate:"required,timezone"`
	CheckInTime  string `json:"check_in_time"  validate:"required,clock"`
	CheckOutTime string `json:"check_out_time" validate:"required,clock"`
}

// RoomTypeInput is one room type of the room_types step.
type RoomTypeInput struct {
	Name     string          `json:"name"      validate:"required,max=100"`
	BaseRate decimal.Decimal `json:"base_rate" validate:"gt=0"`
	Capacity int             `json:"capacity"  validate:"min=1,max=20"`
}

// RoomTypesStep is the payload of the room_types step.
type RoomTypesStep struct {
	RoomTypes []RoomTypeInput `json:"room_types" validate:"required,min=1,max=50,unique=Name,dive"`
}

// RoomInput is one room of the rooms step. RoomType names a type from the
// room_types step.
type RoomInput struct {
	Number   string `json:"number"    validate:"required,max=10"`
	RoomType string `json:"room_type" validate:"required"`
	Floor    int    `json:"floor"     validate:"min=0,max=200"`
}

// RoomsStep is the payload of the rooms step.
type RoomsStep struct {
	Rooms []RoomInput `json:"rooms" validate:"required,min=1,max=1000,unique=Number,dive"`
}

// TaxStep is the payload of the tax_settings step.
type TaxStep struct {
	VATRate                decimal.Decimal     `json:"vat_rate"                 validate:"gte=0,lte=100"`
	ServiceChargeRate      decimal.Decimal     `json:"service_charge_rate"      validate:"gte=0,lte=100"`
	VATInclusive           bool                `json:"vat_inclusive"`
	ServiceChargeInclusive bool                `json:"service_charge_inclusive"`
	VATApplicableTo        []domain.ChargeType `json:"vat_applicable_to"        validate:"dive,charge_type"`
	ServiceApplicableTo    []domain.ChargeType `json:"service_applicable_to"    validate:"dive,charge_type"`
}

// Settings converts the step into tax settings.
func (t TaxStep) Settings() domain.TaxSettings {
	return domain.TaxSettings{
		VATRate:                t.VATRate,
		ServiceChargeRate:      t.ServiceChargeRate,
		VATInclusive:           t.VATInclusive,
		ServiceChargeInclusive: t.ServiceChargeInclusive,
		VATApplicableTo:        t.VATApplicableTo,
		ServiceApplicableTo:    t.ServiceApplicableTo,
	}
}

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("charge_type", func(fl validator.FieldLevel) bool {
		return domain.ChargeType(fl.Field().String()).IsValid()
	})
	return v
}

// newPayload returns an empty payload for the step, or nil when the step
// carries no data.
func newPayload(step domain.OnboardingStep) any {
	switch step {
	case domain.StepHotelProfile:
		return &HotelProfileStep{}
	case domain.StepRoomTypes:
		return &RoomTypesStep{}
	case domain.StepRooms:
		return &RoomsStep{}
	case domain.StepTaxSettings:
		return &TaxStep{VATApplicableTo: []domain.ChargeType{}, ServiceApplicableTo: []domain.ChargeType{}}
	}
	return nil
}

// decode parses and validates a step payload.
func (s *Service) decode(step domain.OnboardingStep, payload json.RawMessage) (any, error) {
	dst := newPayload(step)
	if dst == nil {
		return nil, nil
	}
	if len(payload) == 0 {
		return nil, domain.NewValidationError(step.String(), "required")
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return nil, domain.NewValidationError(step.String(), "malformed data")
	}
	if err := s.validate.Struct(dst); err != nil {
		return nil, toValidationError(err)
	}
	return dst, nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return domain.NewValidationErrors(out)
}

// fieldPath drops the struct name from the namespace: "RoomsStep.rooms[2].number"
// becomes "rooms[2].number".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid email"
	case "iso4217":
		return "unknown currency code"
	case "timezone":
		return "unknown timezone"
	case "clock":
		return "must be HH:MM"
	case "charge_type":
		return "unknown charge type"
	case "unique":
		return "must be unique"
	case "max":
		if fe.Kind() == reflect.String {
			return "max " + fe.Param() + " characters"
		}
		if fe.Kind() == reflect.Slice {
			return "max " + fe.Param() + " entries"
		}
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return "at least " + fe.Param() + " required"
		}
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	}
	return "invalid"
}
