package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

type onboardingService interface {
	Get(ctx context.Context) (domain.OnboardingDraft, error)
	SaveStep(ctx context.Context, step domain.OnboardingStep, payload json.RawMessage) (domain.OnboardingDraft, error)
	Back(ctx context.Context) (domain.OnboardingDraft, error)
	Complete(ctx context.Context) (domain.Tenant, error)
}

// OnboardingHandler serves the new-hotel setup wizard.
type OnboardingHandler struct {
	wizard onboardingService
	log    *slog.Logger
}

// NewOnboardingHandler creates an OnboardingHandler.
func NewOnboardingHandler(svc onboardingService, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{wizard: svc, log: logger.With("handler", "onboarding")}
}

// Get returns the caller's draft.
// GET /api/onboarding
func (h *OnboardingHandler) Get(w http.ResponseWriter, r *http.Request) {
	draft, err := h.wizard.Get(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// SaveStep stores one step's payload and advances the wizard.
// PUT /api/onboarding/steps/{step}
func (h *OnboardingHandler) SaveStep(w http.ResponseWriter, r *http.Request) {
	var payload json.RawMessage
	if err := decodeJSON(r, &payload); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	draft, err := h.wizard.SaveStep(r.Context(), domain.OnboardingStep(r.PathValue("step")), payload)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Back moves the wizard one step back.
// POST /api/onboarding/back
func (h *OnboardingHandler) Back(w http.ResponseWriter, r *http.Request) {
	draft, err := h.wizard.Back(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Complete provisions the hotel from the finished draft.
// POST /api/onboarding/complete
func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.wizard.Complete(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}
