package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// MapError converts pgx/pgconn errors into a *domain.RemoteError tagged with
// the ErrorKind the rest of the service branches on. op names the repository
// call, e.g. "rooms.update_status".
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	var re *domain.RemoteError
	if errors.As(err, &re) {
		return err
	}

	kind, message := classify(err)
	return &domain.RemoteError{Kind: kind, Op: op, Message: message, Err: err}
}

func classify(err error) (domain.ErrorKind, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.KindTimeout, ""
	}
	if errors.Is(err, context.Canceled) {
		return domain.KindNetwork, "request cancelled"
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.KindNotFound, ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return kindForCode(pgErr.Code), pgErr.Message
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) || pgconn.SafeToRetry(err) {
		return domain.KindNetwork, ""
	}

	return domain.KindUnknown, ""
}

func kindForCode(code string) domain.ErrorKind {
	switch code {
	case "23505": // unique_violation
		return domain.KindDuplicate
	case "23503", "23502", "23514": // foreign_key, not_null, check
		return domain.KindConstraint
	case "23P01", "40001", "40P01", "55P03": // exclusion, serialization, deadlock, lock_not_available
		return domain.KindRoomConflict
	case "42501": // insufficient_privilege (row level security)
		return domain.KindForbidden
	case "57014": // query_canceled by statement_timeout
		return domain.KindTimeout
	}
	switch {
	case strings.HasPrefix(code, "22"): // data exception
		return domain.KindValidation
	case strings.HasPrefix(code, "28"): // invalid authorization
		return domain.KindAuth
	case strings.HasPrefix(code, "08"): // connection exception
		return domain.KindNetwork
	}
	return domain.KindUnknown
}

// Procedure result codes written by the backend procedures.
const (
	CodeRoomUnavailable     = "ROOM_UNAVAILABLE"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeReservationNotFound = "RESERVATION_NOT_FOUND"
	CodeFolioNotFound       = "FOLIO_NOT_FOUND"
	CodeValidation          = "VALIDATION_ERROR"
	CodeDuplicate           = "DUPLICATE"
	CodeForbidden           = "FORBIDDEN"
)

// ProcedureKind maps a procedure result code to an ErrorKind.
func ProcedureKind(code string) domain.ErrorKind {
	switch code {
	case CodeRoomUnavailable, CodeInvalidStatus:
		return domain.KindRoomConflict
	case CodeReservationNotFound, CodeFolioNotFound:
		return domain.KindNotFound
	case CodeValidation:
		return domain.KindValidation
	case CodeDuplicate:
		return domain.KindDuplicate
	case CodeForbidden:
		return domain.KindForbidden
	}
	return domain.KindUnknown
}

// ProcedureResult decodes the JSON answer of a backend procedure. A result with
// success=false becomes a soft failure carrying the server message.
func ProcedureResult(op string, raw []byte) (domain.ProcedureResult, error) {
	var res domain.ProcedureResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return domain.ProcedureResult{}, &domain.RemoteError{
			Kind: domain.KindUnknown,
			Op:   op,
			Err:  fmt.Errorf("decode procedure result: %w", err),
		}
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "The operation was rejected."
		}
		return res, domain.NewSoftFailure(op, ProcedureKind(res.Code), msg)
	}
	return res, nil
}
