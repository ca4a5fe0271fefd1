package dialog

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/actionmenu"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/frontdesk"
)

// Phase is the lifecycle state of a dialog.
type Phase string

const (
	PhaseClosed     Phase = "closed"
	PhaseOpen       Phase = "open"
	PhaseProcessing Phase = "processing"
)

// Controller is one open action dialog. It is a sequential state machine;
// every transition holds mu.
type Controller struct {
	mu sync.Mutex

	id       uuid.UUID
	tenantID uuid.UUID
	userID   uuid.UUID
	kind     domain.ActionKind
	action   frontdesk.Action
	room     domain.Room
	env      frontdesk.PreviewEnv

	form                frontdesk.Form
	phase               Phase
	processingStartedAt *time.Time
	lastError           string
	errorKind           domain.ErrorKind
	fieldErrors         []domain.FieldError
	preview             any
}

// View is the JSON snapshot of a dialog rendered by the terminal.
type View struct {
	ID                  uuid.UUID           `json:"id"`
	Kind                domain.ActionKind   `json:"kind"`
	Room                domain.Room         `json:"room"`
	Form                frontdesk.Form      `json:"form"`
	Phase               Phase               `json:"phase"`
	Destructive         bool                `json:"destructive"`
	ProcessingStartedAt *time.Time          `json:"processing_started_at,omitempty"`
	LastError           string              `json:"last_error,omitempty"`
	ErrorKind           domain.ErrorKind    `json:"error_kind,omitempty"`
	FieldErrors         []domain.FieldError `json:"field_errors,omitempty"`
	Preview             any                 `json:"preview,omitempty"`
}

// view must be called with mu held.
func (c *Controller) view() View {
	return View{
		ID:                  c.id,
		Kind:                c.kind,
		Room:                c.room,
		Form:                c.form,
		Phase:               c.phase,
		Destructive:         actionmenu.IsDestructive(c.kind),
		ProcessingStartedAt: c.processingStartedAt,
		LastError:           c.lastError,
		ErrorKind:           c.errorKind,
		FieldErrors:         c.fieldErrors,
		Preview:             c.preview,
	}
}

// validate runs the form's checks and records the field errors.
func (c *Controller) validate() error {
	err := c.form.Validate()
	c.fieldErrors = fieldErrors(err)
	return err
}

func (c *Controller) refreshPreview(now time.Time) {
	if c.action.Preview == nil {
		c.preview = nil
		return
	}
	env := c.env
	env.Now = now
	c.preview = c.action.Preview(c.room, c.form, env)
}

func (c *Controller) clearError() {
	c.lastError = ""
	c.errorKind = ""
}

func fieldErrors(err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return nil
}
