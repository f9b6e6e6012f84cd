package execcmd_test

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/serialrun/cmd/cli/execcmd"
	"github.com/temirov/serialrun/internal/utils"
)

const (
	testCommandTextConstant             = "true"
	testDirectFlagArgumentConstant      = "--direct"
	testArtifactFlagArgumentConstant    = "--artifact-dir"
	testSpawnedIdentifierConstant       = "12345"
	testNonZeroStatusConstant           = 9
	testBackgroundGlueMarkerConstant    = " & echo -n $! > "
	testArtifactFilePermissionsConstant = 0o600
)

type recordingCommandRunner struct {
	mutex            sync.Mutex
	status           int
	artifactContent  string
	recordedCommands []string
}

func (runner *recordingCommandRunner) Run(_ context.Context, commandText string) (int, error) {
	runner.mutex.Lock()
	runner.recordedCommands = append(runner.recordedCommands, commandText)
	runner.mutex.Unlock()

	if len(runner.artifactContent) > 0 {
		markerIndex := strings.LastIndex(commandText, testBackgroundGlueMarkerConstant)
		if markerIndex >= 0 {
			artifactPath := strings.TrimSpace(commandText[markerIndex+len(testBackgroundGlueMarkerConstant):])
			_ = os.WriteFile(artifactPath, []byte(runner.artifactContent), testArtifactFilePermissionsConstant)
		}
	}

	return runner.status, nil
}

type immediateProcessWaiter struct{}

func (immediateProcessWaiter) WaitForExit(context.Context, int) error {
	return nil
}

func buildExecCommand(testInstance *testing.T, runner *recordingCommandRunner) *cobra.Command {
	builder := execcmd.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return zap.NewNop()
		},
		CommandRunner: runner,
		ProcessWaiter: immediateProcessWaiter{},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetContext(context.Background())
	return command
}

func TestExecCommandDirectFlagBypassesAugmentation(testInstance *testing.T) {
	runner := &recordingCommandRunner{}
	command := buildExecCommand(testInstance, runner)
	command.SetArgs([]string{testDirectFlagArgumentConstant, testCommandTextConstant})

	require.NoError(testInstance, command.Execute())
	require.Equal(testInstance, []string{testCommandTextConstant}, runner.recordedCommands)
}

func TestExecCommandSerializedRunSupervisesTask(testInstance *testing.T) {
	runner := &recordingCommandRunner{artifactContent: testSpawnedIdentifierConstant}
	command := buildExecCommand(testInstance, runner)
	command.SetArgs([]string{testArtifactFlagArgumentConstant, testInstance.TempDir(), testCommandTextConstant})

	require.NoError(testInstance, command.Execute())
	require.Len(testInstance, runner.recordedCommands, 1)
	require.True(testInstance, strings.HasPrefix(runner.recordedCommands[0], testCommandTextConstant+testBackgroundGlueMarkerConstant))
}

func TestExecCommandUsesArtifactDirectoryFromContext(testInstance *testing.T) {
	artifactDirectory := testInstance.TempDir()
	runner := &recordingCommandRunner{artifactContent: testSpawnedIdentifierConstant}
	command := buildExecCommand(testInstance, runner)

	accessor := utils.NewCommandContextAccessor()
	command.SetContext(accessor.WithArtifactDirectory(context.Background(), artifactDirectory))
	command.SetArgs([]string{testCommandTextConstant})

	require.NoError(testInstance, command.Execute())
	require.Len(testInstance, runner.recordedCommands, 1)
	require.Contains(testInstance, runner.recordedCommands[0], artifactDirectory)
}

func TestExecCommandNonZeroStatusReturnsExitStatusError(testInstance *testing.T) {
	runner := &recordingCommandRunner{status: testNonZeroStatusConstant}
	command := buildExecCommand(testInstance, runner)
	command.SetArgs([]string{testDirectFlagArgumentConstant, testCommandTextConstant})

	executionError := command.Execute()
	require.Error(testInstance, executionError)

	exitStatusError, isExitStatusError := executionError.(execcmd.ExitStatusError)
	require.True(testInstance, isExitStatusError)
	require.Equal(testInstance, testNonZeroStatusConstant, exitStatusError.Status)
}

func TestExecCommandRequiresCommandText(testInstance *testing.T) {
	runner := &recordingCommandRunner{}
	command := buildExecCommand(testInstance, runner)
	command.SetArgs([]string{})

	require.Error(testInstance, command.Execute())
	require.Empty(testInstance, runner.recordedCommands)
}
