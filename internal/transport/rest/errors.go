package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

const maxJSONBody = 1 << 20

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Kind   domain.ErrorKind    `json:"kind,omitempty"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusUnprocessableEntity
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindDuplicate, domain.KindRoomConflict, domain.KindConstraint:
		return http.StatusConflict
	case domain.KindTimeout:
		return http.StatusGatewayTimeout
	case domain.KindNetwork:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// errorBody builds the response for a service error. Unknown errors are
// logged and hidden behind a generic message. Soft failures are answers the
// backend gave on purpose: their message reaches the operator as is, and one
// without a known kind is reported as a conflict.
func errorBody(log *slog.Logger, r *http.Request, err error) (int, ErrorResponse) {
	kind := domain.KindOf(err)
	status := statusFor(kind)

	var re *domain.RemoteError
	soft := errors.As(err, &re) && re.Soft
	if soft && kind == domain.KindUnknown {
		status = http.StatusConflict
	}

	body := ErrorResponse{Error: domain.UserMessage(err), Kind: kind}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Fields = ve.Errors
	}

	switch {
	case soft:
		log.WarnContext(r.Context(), "request refused by backend",
			slog.String("path", r.URL.Path),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
	case status >= http.StatusInternalServerError:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		if status == http.StatusInternalServerError {
			body.Error = "internal server error"
		}
	}
	return status, body
}

func writeServiceError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorBody(log, r, err)
	writeJSON(w, status, body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeJSON reads a JSON request body into v. Unknown fields are rejected.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}
