package dialog

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/frontdesk"
)

// Collect merges a partial form into the dialog, revalidates it and refreshes
// the preview. Field problems are reported inline on the returned view.
func (s *Service) Collect(ctx context.Context, dialogID uuid.UUID, patch json.RawMessage) (View, error) {
	c, err := s.lookup(ctx, dialogID)
	if err != nil {
		return View{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseProcessing {
		return View{}, busy("dialog.collect")
	}

	if len(bytes.TrimSpace(patch)) > 0 {
		form, err := c.patched(patch)
		if err != nil {
			return View{}, domain.NewValidationError("form", "malformed form data")
		}
		c.form = form
	}

	_ = c.validate()
	c.clearError()
	c.refreshPreview(s.clock.Now())
	return c.view(), nil
}

// patched applies patch to a copy of the form, so a patch that fails halfway
// leaves the dialog untouched.
func (c *Controller) patched(patch json.RawMessage) (frontdesk.Form, error) {
	current, err := json.Marshal(c.form)
	if err != nil {
		return nil, err
	}
	form := c.action.NewForm(c.room)
	if err := json.Unmarshal(current, form); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(patch, form); err != nil {
		return nil, err
	}
	return form, nil
}
