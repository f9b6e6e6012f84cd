package serialshell

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testArtifactFileNameConstant     = "serialrun_track.test"
	testArtifactIdentifierConstant   = "31337"
	testArtifactIdentifierValue      = 31337
	testArtifactGarbageContent       = "not-a-pid"
	testDelayedWriteIntervalConstant = 30 * time.Millisecond
	testArtifactFilePermissionsOctal = 0o600
)

func writeArtifactAfterDelay(artifactPath string, artifactContent string, delay time.Duration) {
	go func() {
		time.Sleep(delay)
		_ = os.WriteFile(artifactPath, []byte(artifactContent), testArtifactFilePermissionsOctal)
	}()
}

func TestReadProcessIdentifierReadsAndDeletes(testInstance *testing.T) {
	artifactPath := filepath.Join(testInstance.TempDir(), testArtifactFileNameConstant)
	require.NoError(testInstance, os.WriteFile(artifactPath, []byte(testArtifactIdentifierConstant), testArtifactFilePermissionsOctal))

	processIdentifier, readError := readProcessIdentifier(artifactPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, testArtifactIdentifierValue, processIdentifier)

	_, statError := os.Stat(artifactPath)
	require.True(testInstance, os.IsNotExist(statError))
}

func TestReadProcessIdentifierRetriesUntilArtifactAppears(testInstance *testing.T) {
	artifactPath := filepath.Join(testInstance.TempDir(), testArtifactFileNameConstant)
	writeArtifactAfterDelay(artifactPath, testArtifactIdentifierConstant, testDelayedWriteIntervalConstant)

	processIdentifier, readError := readProcessIdentifier(artifactPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, testArtifactIdentifierValue, processIdentifier)
}

func TestReadProcessIdentifierRetriesUntilArtifactPopulated(testInstance *testing.T) {
	artifactPath := filepath.Join(testInstance.TempDir(), testArtifactFileNameConstant)
	require.NoError(testInstance, os.WriteFile(artifactPath, nil, testArtifactFilePermissionsOctal))
	writeArtifactAfterDelay(artifactPath, testArtifactIdentifierConstant, testDelayedWriteIntervalConstant)

	processIdentifier, readError := readProcessIdentifier(artifactPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, testArtifactIdentifierValue, processIdentifier)
}

func TestReadProcessIdentifierMissingArtifactFails(testInstance *testing.T) {
	artifactPath := filepath.Join(testInstance.TempDir(), testArtifactFileNameConstant)

	_, readError := readProcessIdentifier(artifactPath)
	require.Error(testInstance, readError)
}

func TestReadProcessIdentifierGarbageContentFails(testInstance *testing.T) {
	artifactPath := filepath.Join(testInstance.TempDir(), testArtifactFileNameConstant)
	require.NoError(testInstance, os.WriteFile(artifactPath, []byte(testArtifactGarbageContent), testArtifactFilePermissionsOctal))

	_, readError := readProcessIdentifier(artifactPath)
	require.Error(testInstance, readError)

	_, statError := os.Stat(artifactPath)
	require.True(testInstance, os.IsNotExist(statError))
}
