package learnpath

import (
	"errors"
	"fmt"
)

// UnknownErrorDetail is reported when a failed response carries no detail.
const UnknownErrorDetail = "Unknown error"

// ValidationError indicates a request assembled client-side is malformed or
// incomplete. It is always recoverable locally and never reaches the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid request: %s", e.Reason)
	}
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// PlanGenerationError indicates the plan generator could not be reached or
// did not return a usable plan.
type PlanGenerationError struct {
	// Op is the operation that failed: "generate", "adapt" or "resources".
	Op string

	// Status is the HTTP status code, 0 for transport failures.
	Status int

	// Detail is the server-provided error detail, if any.
	Detail string

	Err error
}

func (e *PlanGenerationError) Error() string {
	switch {
	case e.Status != 0 && e.Detail != "":
		return fmt.Sprintf("%s failed (HTTP %d): %s", e.Op, e.Status, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%s failed: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("%s failed", e.Op)
}

func (e *PlanGenerationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRetryable reports whether the user should be offered a retry for err.
func IsRetryable(err error) bool {
	var pe *PlanGenerationError
	return errors.As(err, &pe)
}
