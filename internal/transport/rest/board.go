package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/actionmenu"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/board"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

type boardService interface {
	Rooms(ctx context.Context) ([]board.RoomState, error)
	Room(ctx context.Context, roomID uuid.UUID) (board.RoomState, error)
	Reservations(ctx context.Context, w domain.ReservationWindow) ([]domain.ReservationRow, error)
}

// BoardHandler serves the room grid and the reservation list.
type BoardHandler struct {
	board boardService
	log   *slog.Logger
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(svc boardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{board: svc, log: logger.With("handler", "board")}
}

// RoomTile is a board tile together with the actions the caller may start on it.
type RoomTile struct {
	board.RoomState
	Actions []actionmenu.Option `json:"actions"`
}

// Rooms returns every room of the caller's hotel.
// GET /api/rooms
func (h *BoardHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	states, err := h.board.Rooms(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	role := callerRole(r.Context())
	tiles := make([]RoomTile, len(states))
	for i, st := range states {
		tiles[i] = tile(st, role)
	}
	writeJSON(w, http.StatusOK, tiles)
}

// Room returns one tile.
// GET /api/rooms/{id}
func (h *BoardHandler) Room(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	st, err := h.board.Room(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tile(st, callerRole(r.Context())))
}

// Reservations lists reservations overlapping [from, to). Both bounds are
// dates (YYYY-MM-DD); omitting both returns the default window.
// GET /api/reservations?from=2026-01-01&to=2026-01-15
func (h *BoardHandler) Reservations(w http.ResponseWriter, r *http.Request) {
	win, err := parseWindow(r)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	res, err := h.board.Reservations(r.Context(), win)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func tile(st board.RoomState, role domain.UserRole) RoomTile {
	actions := []actionmenu.Option{}
	// Pending tiles take no new actions until the backend confirms them.
	if st.Kind != board.StatePending {
		actions = actionmenu.Available(st.Room, role)
	}
	return RoomTile{RoomState: st, Actions: actions}
}

func callerRole(ctx context.Context) domain.UserRole {
	id, _ := ctxutil.IdentityFromCtx(ctx)
	return domain.UserRole(id.Role)
}

func parseWindow(r *http.Request) (domain.ReservationWindow, error) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" && to == "" {
		return domain.ReservationWindow{}, nil
	}

	var errs []domain.FieldError
	f, err := time.Parse(time.DateOnly, from)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be YYYY-MM-DD"})
	}
	t, err := time.Parse(time.DateOnly, to)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return domain.ReservationWindow{}, domain.NewValidationErrors(errs)
	}
	return domain.ReservationWindow{From: f, To: t}, nil
}
