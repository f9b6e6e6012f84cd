package serialshell

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/temirov/serialrun/internal/procwait"
)

var (
	defaultLauncherOnce     sync.Once
	defaultLauncherInstance *SerializedLauncher
)

// DefaultLauncher returns the shared process-wide launcher, constructing it
// exactly once on first use. The launcher lives for the remainder of the
// process and is never torn down; process exit reclaims it.
func DefaultLauncher() *SerializedLauncher {
	defaultLauncherOnce.Do(func() {
		launcher, constructionError := NewSerializedLauncher(zap.NewNop(), NewShellCommandRunner(), procwait.NewProcessWaiter(), "")
		if constructionError == nil {
			defaultLauncherInstance = launcher
		}
	})
	return defaultLauncherInstance
}

// RunSerialized runs commandText through the shared launcher and collapses
// every failure to StatusSupervisionFailed. It preserves the legacy
// status-only surface: callers cannot distinguish an unreadable tracking
// artifact from an unobtainable waitable reference.
func RunSerialized(commandText string) int {
	launcher := DefaultLauncher()
	if launcher == nil {
		return StatusSupervisionFailed
	}

	status, runError := launcher.Run(context.Background(), commandText)
	if runError != nil {
		return StatusSupervisionFailed
	}
	return status
}
