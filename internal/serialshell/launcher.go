package serialshell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/temirov/serialrun/internal/procwait"
)

// StatusSupervisionFailed is the distinguished status returned when the
// spawned task could not be supervised: the tracking artifact was unreadable
// or no waitable reference to the task could be obtained.
const StatusSupervisionFailed = -1

// Sentinel errors surfaced by the launcher.
var (
	ErrLoggerNotConfigured          = errors.New(loggerMissingMessageConstant)
	ErrCommandRunnerNotConfigured   = errors.New(runnerMissingMessageConstant)
	ErrProcessWaiterNotConfigured   = errors.New(waiterMissingMessageConstant)
	ErrTrackingArtifactUnreadable   = errors.New(trackingArtifactUnreadableMessageConstant)
	ErrWaitableReferenceUnavailable = errors.New(waitableReferenceUnavailableMessageConstant)
)

// CommandRunner is the underlying synchronous execution primitive: it hands
// the command text to a shell and blocks until the shell returns. The runner
// is assumed not to be safe for concurrent invocation.
type CommandRunner interface {
	Run(executionContext context.Context, commandText string) (int, error)
}

// SerializedLauncher coordinates concurrent callers of a non-reentrant
// execution primitive. It holds the process-wide launch lock and the
// monotonic counter used to name per-call tracking artifacts. A launcher is
// constructed once and shared for the lifetime of the process.
type SerializedLauncher struct {
	logger            *zap.Logger
	runner            CommandRunner
	waiter            procwait.ProcessWaiter
	artifactDirectory string
	launchMutex       sync.Mutex
	trackingCounter   atomic.Uint64
}

// NewSerializedLauncher validates the collaborators and assembles a launcher.
// An empty artifactDirectory selects the system temporary directory.
func NewSerializedLauncher(logger *zap.Logger, runner CommandRunner, waiter procwait.ProcessWaiter, artifactDirectory string) (*SerializedLauncher, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	if waiter == nil {
		return nil, ErrProcessWaiterNotConfigured
	}
	if len(artifactDirectory) == 0 {
		artifactDirectory = os.TempDir()
	}

	return &SerializedLauncher{
		logger:            logger,
		runner:            runner,
		waiter:            waiter,
		artifactDirectory: artifactDirectory,
	}, nil
}

// Run launches commandText through the intermediary shell and blocks until
// the spawned task terminates. The launch itself happens under the launch
// lock; the wait does not, so concurrent callers overlap their tasks' run time.
//
// The returned status is the execution primitive's result for the augmented
// launch command, not the spawned task's exit code. This matches the legacy
// run_serialized contract: a successfully launched task that later fails
// still yields the launch status. Supervision failures return
// StatusSupervisionFailed alongside an error identifying the failed step.
func (launcher *SerializedLauncher) Run(executionContext context.Context, commandText string) (int, error) {
	trackingToken := launcher.trackingCounter.Add(1)
	artifactPath := filepath.Join(
		launcher.artifactDirectory,
		fmt.Sprintf(trackingArtifactNameTemplateConstant, os.Getpid(), trackingToken),
	)
	augmentedCommand := fmt.Sprintf(augmentedCommandTemplateConstant, commandText, artifactPath)

	launcher.launchMutex.Lock()
	launcher.logger.Debug(
		launchStartedMessageConstant,
		zap.String(logFieldAugmentedCommandConstant, augmentedCommand),
		zap.String(logFieldTrackingArtifactConstant, artifactPath),
	)
	provisionalStatus, launchError := launcher.runner.Run(executionContext, augmentedCommand)
	launcher.launchMutex.Unlock()

	if launchError != nil {
		removeTrackingArtifact(artifactPath)
		return StatusSupervisionFailed, fmt.Errorf(launchFailureTemplateConstant, launchError)
	}

	launcher.logger.Debug(
		launchCompletedMessageConstant,
		zap.Int(logFieldProvisionalStatusConstant, provisionalStatus),
		zap.String(logFieldTrackingArtifactConstant, artifactPath),
	)

	spawnedProcessIdentifier, handOffError := readProcessIdentifier(artifactPath)
	if handOffError != nil {
		return StatusSupervisionFailed, fmt.Errorf(supervisionFailureTemplateConstant, ErrTrackingArtifactUnreadable, handOffError)
	}

	waitError := launcher.waiter.WaitForExit(executionContext, spawnedProcessIdentifier)
	switch {
	case waitError == nil:
	case errors.Is(waitError, procwait.ErrProcessLookupFailed):
		return StatusSupervisionFailed, fmt.Errorf(supervisionFailureTemplateConstant, ErrWaitableReferenceUnavailable, waitError)
	default:
		launcher.logger.Warn(
			supervisionAbandonedMessageConstant,
			zap.Int(logFieldProcessIdentifierConstant, spawnedProcessIdentifier),
			zap.Error(waitError),
		)
		return StatusSupervisionFailed, fmt.Errorf(waitInterruptedTemplateConstant, waitError)
	}

	launcher.logger.Debug(
		taskCompletedMessageConstant,
		zap.Int(logFieldProcessIdentifierConstant, spawnedProcessIdentifier),
	)

	return provisionalStatus, nil
}

// RunDirect invokes the execution primitive on the unmodified command with no
// locking, tracking, or supervision. It is the degenerate variant for
// platforms whose primitive is already reentrant.
func (launcher *SerializedLauncher) RunDirect(executionContext context.Context, commandText string) (int, error) {
	launcher.logger.Debug(directExecutionMessageConstant, zap.String(logFieldCommandConstant, commandText))
	return launcher.runner.Run(executionContext, commandText)
}
