package dialog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/frontdesk"
)

const refreshWarning = "The room grid could not be refreshed. It will update on the next reload."

// Result is returned by a successful submit.
type Result struct {
	Dialog  View              `json:"dialog"`
	Outcome frontdesk.Outcome `json:"outcome"`
}

// Submit validates the form and runs the action once. On failure the dialog
// stays open with the form intact and the error on the view. On success the
// affected rooms are shown as pending until the board is refetched.
func (s *Service) Submit(ctx context.Context, dialogID uuid.UUID) (Result, error) {
	c, err := s.lookup(ctx, dialogID)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	if c.phase == PhaseProcessing {
		c.mu.Unlock()
		return Result{}, busy("dialog.submit")
	}
	if err := c.validate(); err != nil {
		c.lastError = domain.UserMessage(err)
		c.errorKind = domain.KindValidation
		c.mu.Unlock()
		return Result{}, err
	}
	started := s.clock.Now()
	c.phase = PhaseProcessing
	c.processingStartedAt = &started
	c.clearError()
	room, form, action := c.room, c.form, c.action
	c.mu.Unlock()

	out, err := s.run(ctx, action, room, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.processingStartedAt = nil

	if err != nil {
		c.phase = PhaseOpen
		c.lastError = domain.UserMessage(err)
		c.errorKind = domain.KindOf(err)
		c.fieldErrors = fieldErrors(err)
		s.log.WarnContext(ctx, "dialog submit failed",
			slog.String("dialog_id", dialogID.String()),
			slog.String("kind", c.kind.String()),
			slog.String("error_kind", string(c.errorKind)),
			slog.String("error", err.Error()),
		)
		return Result{}, err
	}

	s.board.ApplyPending(c.tenantID, c.kind, append([]domain.Room{out.Room}, out.Related...)...)
	s.completed(ctx, c.kind, out)
	if err := s.board.AfterMutation(ctx, c.tenantID); err != nil {
		s.log.WarnContext(ctx, "board refresh after submit failed",
			slog.String("dialog_id", dialogID.String()),
			slog.String("error", err.Error()),
		)
		out.Warnings = append(out.Warnings, refreshWarning)
	}

	c.phase = PhaseClosed
	s.open.remove(dialogID)

	s.log.InfoContext(ctx, "dialog submitted",
		slog.String("dialog_id", dialogID.String()),
		slog.String("kind", c.kind.String()),
		slog.Int("warnings", len(out.Warnings)),
	)

	return Result{Dialog: c.view(), Outcome: out}, nil
}

// run executes the action under the submit timeout. A call cut short by the
// timeout is reported as a timeout whatever the backend returned.
func (s *Service) run(ctx context.Context, action frontdesk.Action, room domain.Room, form frontdesk.Form) (frontdesk.Outcome, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.settings.SubmitTimeout)
	defer cancel()

	out, err := action.Submit(runCtx, room, form)
	if err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) && domain.KindOf(err) != domain.KindTimeout {
		err = &domain.RemoteError{
			Kind:    domain.KindTimeout,
			Op:      action.Kind.String(),
			Message: "the request timed out",
			Err:     errors.Join(context.DeadlineExceeded, err),
		}
	}
	return out, err
}
