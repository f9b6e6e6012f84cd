//go:build linux

package procwait

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

const (
	pidfdPollTimeoutMillisecondsConstant = 100
	pidfdOpenFailureTemplateConstant     = "%w: pidfd_open pid %d: %v"
)

// pidfdProcessWaiter waits on a pidfd, the kernel's waitable reference to a
// process that need not be a child of the caller.
type pidfdProcessWaiter struct{}

func newPlatformProcessWaiter() ProcessWaiter {
	return pidfdProcessWaiter{}
}

// WaitForExit opens a pidfd for the process and polls it until the process
// terminates. The descriptor is closed before returning on every path.
func (pidfdProcessWaiter) WaitForExit(executionContext context.Context, processIdentifier int) error {
	processDescriptor, openError := unix.PidfdOpen(processIdentifier, 0)
	if openError != nil {
		return fmt.Errorf(pidfdOpenFailureTemplateConstant, ErrProcessLookupFailed, processIdentifier, openError)
	}
	defer unix.Close(processDescriptor)

	pollDescriptors := []unix.PollFd{{Fd: int32(processDescriptor), Events: unix.POLLIN}}
	for {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		readyCount, pollError := unix.Poll(pollDescriptors, pidfdPollTimeoutMillisecondsConstant)
		if pollError != nil && pollError != unix.EINTR {
			return pollError
		}
		if readyCount > 0 {
			return nil
		}
	}
}
