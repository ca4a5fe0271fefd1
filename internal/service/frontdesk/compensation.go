package frontdesk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const compensationTimeout = 15 * time.Second

type compensation struct {
	name string
	undo func(ctx context.Context) error
}

// compensations collects undo steps for a multi-step submission. They run in
// reverse registration order when a later step fails.
type compensations struct {
	log   *slog.Logger
	steps []compensation
}

func (s *Service) newCompensations() *compensations {
	return &compensations{log: s.log}
}

func (c *compensations) add(name string, undo func(ctx context.Context) error) {
	c.steps = append(c.steps, compensation{name: name, undo: undo})
}

// abort runs every registered undo step and returns cause, joined with any
// undo failures. Undo steps run even if ctx is already cancelled.
func (c *compensations) abort(ctx context.Context, cause error) error {
	if len(c.steps) == 0 {
		return cause
	}

	undoCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	var undoErrs []error
	for i := len(c.steps) - 1; i >= 0; i-- {
		step := c.steps[i]
		if err := step.undo(undoCtx); err != nil {
			c.log.ErrorContext(ctx, "compensation failed",
				slog.String("step", step.name),
				slog.String("error", err.Error()),
			)
			undoErrs = append(undoErrs, fmt.Errorf("undo %s: %w", step.name, err))
			continue
		}
		c.log.InfoContext(ctx, "compensation applied", slog.String("step", step.name))
	}
	c.steps = nil

	if len(undoErrs) == 0 {
		return cause
	}
	return errors.Join(append([]error{cause}, undoErrs...)...)
}
