//go:build darwin

package procwait

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

const (
	kqueueWaitTimeoutNanosecondsConstant      = 100 * 1000 * 1000
	kqueueRegistrationFailureTemplateConstant = "%w: kevent pid %d: %v"
)

// kqueueProcessWaiter waits on a kqueue NOTE_EXIT registration, the kernel's
// waitable reference to a process that need not be a child of the caller.
type kqueueProcessWaiter struct{}

func newPlatformProcessWaiter() ProcessWaiter {
	return kqueueProcessWaiter{}
}

// WaitForExit registers an EVFILT_PROC filter for the process and waits until
// its exit event is delivered. The queue is closed before returning on every path.
func (kqueueProcessWaiter) WaitForExit(executionContext context.Context, processIdentifier int) error {
	queueDescriptor, creationError := unix.Kqueue()
	if creationError != nil {
		return creationError
	}
	defer unix.Close(queueDescriptor)

	registration := unix.Kevent_t{
		Ident:  uint64(processIdentifier),
		Filter: unix.EVFILT_PROC,
		Flags:  unix.EV_ADD | unix.EV_ONESHOT,
		Fflags: unix.NOTE_EXIT,
	}
	if _, registrationError := unix.Kevent(queueDescriptor, []unix.Kevent_t{registration}, nil, nil); registrationError != nil {
		return fmt.Errorf(kqueueRegistrationFailureTemplateConstant, ErrProcessLookupFailed, processIdentifier, registrationError)
	}

	waitTimeout := unix.Timespec{Nsec: kqueueWaitTimeoutNanosecondsConstant}
	receivedEvents := make([]unix.Kevent_t, 1)
	for {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		eventCount, waitError := unix.Kevent(queueDescriptor, nil, receivedEvents, &waitTimeout)
		if waitError != nil && waitError != unix.EINTR {
			return waitError
		}
		if eventCount > 0 {
			return nil
		}
	}
}
