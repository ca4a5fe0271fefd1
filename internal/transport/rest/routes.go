package rest

import "net/http"

// Handlers groups the handlers mounted under /api.
type Handlers struct {
	Board      *BoardHandler
	Dialogs    *DialogHandler
	Hotel      *HotelConfigHandler
	Onboarding *OnboardingHandler
}

// Register mounts the API routes on mux. Health probes are mounted separately
// so they skip auth and rate limiting.
func (h Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/rooms", h.Board.Rooms)
	mux.HandleFunc("GET /api/rooms/{id}", h.Board.Room)
	mux.HandleFunc("GET /api/reservations", h.Board.Reservations)

	mux.HandleFunc("POST /api/rooms/{id}/dialogs", h.Dialogs.Open)
	mux.HandleFunc("GET /api/dialogs/{id}", h.Dialogs.Get)
	mux.HandleFunc("PATCH /api/dialogs/{id}", h.Dialogs.Collect)
	mux.HandleFunc("DELETE /api/dialogs/{id}", h.Dialogs.Close)
	mux.HandleFunc("POST /api/dialogs/{id}/submit", h.Dialogs.Submit)

	mux.HandleFunc("GET /api/config", h.Hotel.Get)
	mux.HandleFunc("PUT /api/config", h.Hotel.Update)
	mux.HandleFunc("POST /api/config/logo", h.Hotel.UploadLogo)

	mux.HandleFunc("GET /api/onboarding", h.Onboarding.Get)
	mux.HandleFunc("PUT /api/onboarding/steps/{step}", h.Onboarding.SaveStep)
	mux.HandleFunc("POST /api/onboarding/back", h.Onboarding.Back)
	mux.HandleFunc("POST /api/onboarding/complete", h.Onboarding.Complete)
}
