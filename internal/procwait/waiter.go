package procwait

import (
	"context"
	"errors"
)

const (
	processLookupFailedMessageConstant = "process lookup failed"
)

// ErrProcessLookupFailed reports that a process identifier could not be
// translated into a waitable reference, typically because the process exited
// before translation was attempted.
var ErrProcessLookupFailed = errors.New(processLookupFailedMessageConstant)

// ProcessWaiter blocks until a process identified by its native identifier terminates.
type ProcessWaiter interface {
	// WaitForExit blocks until the identified process exits or the supplied
	// context is cancelled. Cancellation abandons supervision without
	// affecting the process itself.
	WaitForExit(executionContext context.Context, processIdentifier int) error
}

// NewProcessWaiter constructs the waiter backed by the platform's native waitable facility.
func NewProcessWaiter() ProcessWaiter {
	return newPlatformProcessWaiter()
}
