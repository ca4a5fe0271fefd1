package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

// Get returns the caller's draft, or a fresh one positioned on the first step.
func (s *Service) Get(ctx context.Context) (domain.OnboardingDraft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.OnboardingDraft{}, domain.ErrUnauthorized
	}
	return s.load(ctx, userID)
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (domain.OnboardingDraft, error) {
	draft, err := s.drafts.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewOnboardingDraft(userID), nil
	}
	if err != nil {
		return domain.OnboardingDraft{}, fmt.Errorf("get draft: %w", err)
	}
	if draft.Completed == nil {
		draft.Completed = make(map[domain.OnboardingStep]bool)
	}
	if draft.Data == nil {
		draft.Data = make(map[domain.OnboardingStep]json.RawMessage)
	}
	return draft, nil
}

// SaveStep validates and stores the payload of a step, then advances the
// wizard. A step cannot be saved before every earlier step is.
func (s *Service) SaveStep(ctx context.Context, step domain.OnboardingStep, payload json.RawMessage) (domain.OnboardingDraft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.OnboardingDraft{}, domain.ErrUnauthorized
	}
	if !step.IsValid() {
		return domain.OnboardingDraft{}, domain.NewValidationError("step", "unknown step "+step.String())
	}

	draft, err := s.load(ctx, userID)
	if err != nil {
		return domain.OnboardingDraft{}, err
	}

	if first := draft.FirstIncomplete(); step.Index() > first.Index() {
		return domain.OnboardingDraft{}, domain.NewValidationError("step", "complete "+first.String()+" first")
	}

	parsed, err := s.decode(step, payload)
	if err != nil {
		return domain.OnboardingDraft{}, err
	}
	if rooms, ok := parsed.(*RoomsStep); ok {
		if err := checkRoomTypes(draft, rooms); err != nil {
			return domain.OnboardingDraft{}, err
		}
	}

	if parsed != nil {
		data, err := json.Marshal(parsed)
		if err != nil {
			return domain.OnboardingDraft{}, fmt.Errorf("encode %s: %w", step, err)
		}
		draft.Data[step] = data
	}
	draft.Completed[step] = true
	draft.CurrentStep = next(step)
	draft.UpdatedAt = s.clock.Now()

	if err := s.drafts.Save(ctx, draft); err != nil {
		return domain.OnboardingDraft{}, fmt.Errorf("save draft: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding step saved",
		slog.String("user_id", userID.String()),
		slog.String("step", step.String()),
	)

	return draft, nil
}

// Back moves the wizard one step back. Saved data is kept.
func (s *Service) Back(ctx context.Context) (domain.OnboardingDraft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.OnboardingDraft{}, domain.ErrUnauthorized
	}

	draft, err := s.load(ctx, userID)
	if err != nil {
		return domain.OnboardingDraft{}, err
	}

	if i := draft.CurrentStep.Index(); i > 0 {
		draft.CurrentStep = domain.OnboardingSteps[i-1]
		draft.UpdatedAt = s.clock.Now()
		if err := s.drafts.Save(ctx, draft); err != nil {
			return domain.OnboardingDraft{}, fmt.Errorf("save draft: %w", err)
		}
	}

	return draft, nil
}

func next(step domain.OnboardingStep) domain.OnboardingStep {
	i := step.Index()
	if i+1 >= len(domain.OnboardingSteps) {
		return step
	}
	return domain.OnboardingSteps[i+1]
}

// checkRoomTypes makes sure every room names a type saved in the room_types step.
func checkRoomTypes(draft domain.OnboardingDraft, rooms *RoomsStep) error {
	var types RoomTypesStep
	if err := json.Unmarshal(draft.Data[domain.StepRoomTypes], &types); err != nil {
		return domain.NewValidationError(domain.StepRoomTypes.String(), "complete room_types first")
	}
	known := make(map[string]bool, len(types.RoomTypes))
	for _, rt := range types.RoomTypes {
		known[rt.Name] = true
	}

	var errs []domain.FieldError
	for i, r := range rooms.Rooms {
		if !known[r.RoomType] {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("rooms[%d].room_type", i),
				Message: "unknown room type " + r.RoomType,
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
