package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OnboardingStep is a page of the tenant setup wizard.
type OnboardingStep string

const (
	StepHotelProfile OnboardingStep = "hotel_profile"
	StepRoomTypes    OnboardingStep = "room_types"
	StepRooms        OnboardingStep = "rooms"
	StepTaxSettings  OnboardingStep = "tax_settings"
	StepReview       OnboardingStep = "review"
)

// OnboardingSteps lists the wizard pages in order.
var OnboardingSteps = []OnboardingStep{StepHotelProfile, StepRoomTypes, StepRooms, StepTaxSettings, StepReview}

func (s OnboardingStep) String() string { return string(s) }

func (s OnboardingStep) IsValid() bool {
	return s.Index() >= 0
}

// Index returns the position of the step, or -1.
func (s OnboardingStep) Index() int {
	for i, st := range OnboardingSteps {
		if st == s {
			return i
		}
	}
	return -1
}

// OnboardingDraft is the per-user wizard progress.
type OnboardingDraft struct {
	UserID      uuid.UUID                          `json:"user_id"`
	CurrentStep OnboardingStep                     `json:"current_step"`
	Completed   map[OnboardingStep]bool            `json:"completed"`
	Data        map[OnboardingStep]json.RawMessage `json:"data"`
	UpdatedAt   time.Time                          `json:"updated_at"`
}

// NewOnboardingDraft returns an empty draft positioned on the first step.
func NewOnboardingDraft(userID uuid.UUID) OnboardingDraft {
	return OnboardingDraft{
		UserID:      userID,
		CurrentStep: StepHotelProfile,
		Completed:   make(map[OnboardingStep]bool),
		Data:        make(map[OnboardingStep]json.RawMessage),
	}
}

// FirstIncomplete returns the earliest step not yet saved.
func (d OnboardingDraft) FirstIncomplete() OnboardingStep {
	for _, st := range OnboardingSteps {
		if !d.Completed[st] {
			return st
		}
	}
	return StepReview
}

// AllComplete reports whether every step before review has been saved.
func (d OnboardingDraft) AllComplete() bool {
	for _, st := range OnboardingSteps {
		if st == StepReview {
			continue
		}
		if !d.Completed[st] {
			return false
		}
	}
	return true
}
