package lifecycle

import "errors"

var (
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrUnknownStatus        = errors.New("unknown assignment status")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotOwner             = errors.New("actor does not own the assignment")
	ErrCancelReasonRequired = errors.New("cancellation requires a reason note")
	ErrInvalidAssignmentID  = errors.New("invalid assignment id")
)
