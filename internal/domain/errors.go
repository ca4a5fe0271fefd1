package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ErrorKind classifies a failure for the terminal operator.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindDuplicate    ErrorKind = "duplicate"
	KindAuth         ErrorKind = "auth"
	KindForbidden    ErrorKind = "forbidden"
	KindRoomConflict ErrorKind = "room_conflict"
	KindConstraint   ErrorKind = "constraint"
	KindNetwork      ErrorKind = "network"
	KindTimeout      ErrorKind = "timeout"
	KindNotFound     ErrorKind = "not_found"
	KindUnknown      ErrorKind = "unknown"
)

func (k ErrorKind) String() string { return string(k) }

// RemoteError is returned by the backend access layer. Soft failures
// (a procedure that answered success=false) carry the server message.
type RemoteError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Soft    bool
	Err     error
}

func (e *RemoteError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
	}
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Is lets callers match a RemoteError against the sentinel errors.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrAlreadyExists:
		return e.Kind == KindDuplicate
	case ErrUnauthorized:
		return e.Kind == KindAuth
	case ErrForbidden:
		return e.Kind == KindForbidden
	case ErrConflict:
		return e.Kind == KindRoomConflict || e.Kind == KindConstraint
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrValidation:
		return e.Kind == KindValidation
	}
	return false
}

// NewSoftFailure builds the error for a procedure that resolved with success=false.
func NewSoftFailure(op string, kind ErrorKind, message string) *RemoteError {
	if kind == "" {
		kind = KindUnknown
	}
	return &RemoteError{Kind: kind, Op: op, Message: message, Soft: true}
}

// KindOf classifies any error returned by a service call.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var re *RemoteError
	if errors.As(err, &re) {
		return re.Kind
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrUnauthorized):
		return KindAuth
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrAlreadyExists):
		return KindDuplicate
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindRoomConflict
	}
	return KindUnknown
}

// UserMessage returns the operator-facing text for an error. Soft failures
// and validation errors surface their own message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var re *RemoteError
	if errors.As(err, &re) && re.Soft && re.Message != "" {
		return re.Message
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		if len(ve.Errors) == 1 {
			return ve.Errors[0].Field + ": " + ve.Errors[0].Message
		}
		return "Please correct the highlighted fields."
	}

	switch KindOf(err) {
	case KindDuplicate:
		return "This record already exists. Refresh and try again."
	case KindAuth:
		return "Your session has expired. Please sign in again."
	case KindForbidden:
		return "You do not have permission to perform this action."
	case KindRoomConflict:
		return "The room status changed on another terminal. Refresh the room grid and try again."
	case KindConstraint:
		return "The request conflicts with existing data. Check the details and try again."
	case KindNetwork:
		return "Network problem. Check your connection and try again."
	case KindTimeout:
		return "The operation timed out. Refresh the room grid before trying again."
	case KindNotFound:
		return "The record no longer exists. Refresh and try again."
	}
	return "Something went wrong. Please try again."
}
