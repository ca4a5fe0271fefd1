package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/dialog"
)

type dialogService interface {
	Open(ctx context.Context, roomID uuid.UUID, kind domain.ActionKind) (dialog.View, error)
	Get(ctx context.Context, dialogID uuid.UUID) (dialog.View, error)
	Collect(ctx context.Context, dialogID uuid.UUID, patch json.RawMessage) (dialog.View, error)
	Submit(ctx context.Context, dialogID uuid.UUID) (dialog.Result, error)
	Close(ctx context.Context, dialogID uuid.UUID) error
}

// DialogHandler serves the action dialogs opened from the room grid.
type DialogHandler struct {
	dialogs dialogService
	log     *slog.Logger
}

// NewDialogHandler creates a DialogHandler.
func NewDialogHandler(svc dialogService, logger *slog.Logger) *DialogHandler {
	return &DialogHandler{dialogs: svc, log: logger.With("handler", "dialog")}
}

type openDialogRequest struct {
	Action domain.ActionKind `json:"action"`
}

// submitErrorResponse carries the dialog with its intact form next to the error,
// so the terminal can show the message without losing the operator's input.
type submitErrorResponse struct {
	ErrorResponse
	Dialog *dialog.View `json:"dialog,omitempty"`
}

// Open starts a dialog for an action on a room.
// POST /api/rooms/{id}/dialogs
func (h *DialogHandler) Open(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	var req openDialogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if !req.Action.IsValid() {
		writeServiceError(h.log, w, r, domain.NewValidationError("action", "unknown action"))
		return
	}

	view, err := h.dialogs.Open(r.Context(), roomID, req.Action)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get returns the current state of a dialog.
// GET /api/dialogs/{id}
func (h *DialogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	view, err := h.dialogs.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Collect merges a partial form into the dialog and returns the refreshed view.
// PATCH /api/dialogs/{id}
func (h *DialogHandler) Collect(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	var patch json.RawMessage
	if err := decodeJSON(r, &patch); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	view, err := h.dialogs.Collect(r.Context(), id, patch)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Submit runs the dialog's action.
// POST /api/dialogs/{id}/submit
func (h *DialogHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	res, err := h.dialogs.Submit(r.Context(), id)
	if err != nil {
		status, body := errorBody(h.log, r, err)
		resp := submitErrorResponse{ErrorResponse: body}
		if view, getErr := h.dialogs.Get(r.Context(), id); getErr == nil {
			resp.Dialog = &view
		}
		writeJSON(w, status, resp)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Close discards a dialog without running its action.
// DELETE /api/dialogs/{id}
func (h *DialogHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	if err := h.dialogs.Close(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
