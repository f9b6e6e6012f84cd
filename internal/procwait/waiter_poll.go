//go:build unix && !linux && !darwin

package procwait

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

const (
	livenessPollIntervalConstant         = 25 * time.Millisecond
	livenessProbeFailureTemplateConstant = "%w: signal probe pid %d: %v"
)

// signalProbeProcessWaiter polls the process with signal zero at a fixed
// interval. Identifier recycling can in principle produce a false positive,
// which is why the pidfd and kqueue waiters are preferred where available.
type signalProbeProcessWaiter struct{}

func newPlatformProcessWaiter() ProcessWaiter {
	return signalProbeProcessWaiter{}
}

// WaitForExit probes the process with kill(pid, 0) until the identifier is no
// longer valid. EPERM still indicates a live process.
func (signalProbeProcessWaiter) WaitForExit(executionContext context.Context, processIdentifier int) error {
	if probeError := unix.Kill(processIdentifier, 0); probeError != nil {
		if probeError == unix.ESRCH {
			return fmt.Errorf(livenessProbeFailureTemplateConstant, ErrProcessLookupFailed, processIdentifier, probeError)
		}
		if probeError != unix.EPERM {
			return probeError
		}
	}

	for {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		time.Sleep(livenessPollIntervalConstant)

		probeError := unix.Kill(processIdentifier, 0)
		if probeError == unix.ESRCH {
			return nil
		}
		if probeError != nil && probeError != unix.EPERM {
			return probeError
		}
	}
}
