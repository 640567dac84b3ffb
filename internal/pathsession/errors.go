package pathsession

import (
	"errors"
	"fmt"

	"github.com/abhisek/pathfinder/internal/learnpath"
)

var (
	// ErrBusy is returned when a trigger fires while a request is in flight.
	ErrBusy = errors.New("a plan request is already in flight")

	// ErrNoFailure is returned by Retry when there is nothing to retry.
	ErrNoFailure = errors.New("no failed request to retry")

	// ErrStaleCall is returned when completing a call that is not the one
	// in flight.
	ErrStaleCall = errors.New("call is not in flight")
)

// Failure describes the last failed plan request. It carries enough of
// the original inputs to re-issue it.
type Failure struct {
	Op  string
	Err error

	// Role and WeeklyHours are set for generate failures.
	Role        string
	WeeklyHours int

	// Domain is set for adapt failures.
	Domain learnpath.Domain
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Retryable reports whether the failure should be offered a retry.
func (f *Failure) Retryable() bool {
	return learnpath.IsRetryable(f.Err)
}
