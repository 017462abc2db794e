package domain

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers map these to HTTP statuses; callers use
// errors.Is to classify a failure without parsing messages.
var (
	ErrValidation          = errors.New("validation error")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrInvalidMileage      = errors.New("invalid mileage")
	ErrInvalidInvoiceState = errors.New("invalid invoice state")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
)

// TransitionError reports an illegal lifecycle event. It identifies the
// current state and the requested event so the caller can surface both.
type TransitionError struct {
	From  RentalStatus
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot apply event %q in state %q", e.Event, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// ValidationError wraps ErrValidation with a field-specific message.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundError wraps ErrNotFound with the entity name and id.
func NotFoundError(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// ConflictError wraps ErrConflict with a description of the violated
// uniqueness rule.
func ConflictError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
