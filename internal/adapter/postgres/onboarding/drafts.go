// Package onboarding stores wizard drafts and provisions the tenant the
// wizard creates.
package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var draftColumns = []string{"user_id", "current_step", "completed", "data", "updated_at"}

type draftRecord struct {
	UserID      uuid.UUID `db:"user_id"`
	CurrentStep string    `db:"current_step"`
	Completed   []byte    `db:"completed"`
	Data        []byte    `db:"data"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Drafts provides onboarding draft persistence backed by PostgreSQL.
type Drafts struct {
	db postgres.Querier
}

// NewDrafts creates a new draft repository.
func NewDrafts(db postgres.Querier) *Drafts {
	return &Drafts{db: db}
}

// Get returns the user's draft, or a not_found error when none was saved.
func (r *Drafts) Get(ctx context.Context, userID uuid.UUID) (domain.OnboardingDraft, error) {
	q := postgres.Builder.
		Select(draftColumns...).
		From("onboarding_drafts").
		Where("user_id = ?", userID)

	rec, err := postgres.Get[draftRecord](ctx, postgres.QuerierFromCtx(ctx, r.db), q, "onboarding_drafts.get")
	if err != nil {
		return domain.OnboardingDraft{}, err
	}

	d := domain.NewOnboardingDraft(rec.UserID)
	d.CurrentStep = domain.OnboardingStep(rec.CurrentStep)
	d.UpdatedAt = rec.UpdatedAt
	if err := json.Unmarshal(rec.Completed, &d.Completed); err != nil {
		return domain.OnboardingDraft{}, fmt.Errorf("onboarding draft %s: decode completed: %w", userID, err)
	}
	if err := json.Unmarshal(rec.Data, &d.Data); err != nil {
		return domain.OnboardingDraft{}, fmt.Errorf("onboarding draft %s: decode data: %w", userID, err)
	}
	return d, nil
}

// Save creates or replaces the user's draft.
func (r *Drafts) Save(ctx context.Context, d domain.OnboardingDraft) error {
	completed, err := json.Marshal(d.Completed)
	if err != nil {
		return fmt.Errorf("onboarding draft marshal completed: %w", err)
	}
	data, err := json.Marshal(d.Data)
	if err != nil {
		return fmt.Errorf("onboarding draft marshal data: %w", err)
	}

	q := postgres.Builder.
		Insert("onboarding_drafts").
		Columns("user_id", "current_step", "completed", "data").
		Values(d.UserID, d.CurrentStep.String(), completed, data).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			current_step = EXCLUDED.current_step,
			completed = EXCLUDED.completed,
			data = EXCLUDED.data,
			updated_at = now()`)

	_, err = postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "onboarding_drafts.save")
	return err
}

// Delete removes the user's draft. Deleting a missing draft is not an error.
func (r *Drafts) Delete(ctx context.Context, userID uuid.UUID) error {
	q := postgres.Builder.
		Delete("onboarding_drafts").
		Where("user_id = ?", userID)

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "onboarding_drafts.delete")
	return err
}
