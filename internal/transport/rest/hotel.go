package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/hotelconfig"
)

type hotelConfigService interface {
	Current(ctx context.Context) (domain.HotelConfig, error)
	Update(ctx context.Context, input hotelconfig.UpdateInput) (domain.HotelConfig, error)
	UploadLogo(ctx context.Context, input hotelconfig.LogoInput) (string, error)
}

// HotelConfigHandler serves the hotel settings screen.
type HotelConfigHandler struct {
	hotel        hotelConfigService
	maxLogoBytes int64
	log          *slog.Logger
}

// NewHotelConfigHandler creates a HotelConfigHandler. Logo uploads larger than
// maxLogoBytes are cut off before they reach the service.
func NewHotelConfigHandler(svc hotelConfigService, maxLogoBytes int64, logger *slog.Logger) *HotelConfigHandler {
	return &HotelConfigHandler{hotel: svc, maxLogoBytes: maxLogoBytes, log: logger.With("handler", "hotelconfig")}
}

// Get returns the configuration of the caller's hotel.
// GET /api/config
func (h *HotelConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.hotel.Current(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// Update replaces the editable configuration.
// PUT /api/config
func (h *HotelConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in hotelconfig.UpdateInput
	if err := decodeJSON(r, &in); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	cfg, err := h.hotel.Update(r.Context(), in)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// UploadLogo stores the multipart "logo" file.
// POST /api/config/logo
func (h *HotelConfigHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	// Headroom for the multipart envelope; the service enforces the exact limit.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxLogoBytes+64<<10)

	file, header, err := r.FormFile("logo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeServiceError(h.log, w, r, domain.NewValidationError("logo", "file is too large"))
			return
		}
		writeServiceError(h.log, w, r, domain.NewValidationError("logo", "a logo file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeServiceError(h.log, w, r, domain.NewValidationError("logo", "could not read file"))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	url, err := h.hotel.UploadLogo(r.Context(), hotelconfig.LogoInput{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"logo_url": url})
}
