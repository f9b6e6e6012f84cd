package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/serialrun/internal/utils"
)

const (
	testConfigurationFilePathConstant = "/tmp/serialrun/config.yaml"
	testArtifactDirectoryConstant     = "/tmp/serialrun/artifacts"
)

func TestCommandContextAccessorRoundTrip(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	decoratedContext := accessor.WithConfigurationFilePath(context.Background(), testConfigurationFilePathConstant)
	decoratedContext = accessor.WithArtifactDirectory(decoratedContext, testArtifactDirectoryConstant)

	configurationFilePath, configurationFilePathAvailable := accessor.ConfigurationFilePath(decoratedContext)
	require.True(testInstance, configurationFilePathAvailable)
	require.Equal(testInstance, testConfigurationFilePathConstant, configurationFilePath)

	artifactDirectory, artifactDirectoryAvailable := accessor.ArtifactDirectory(decoratedContext)
	require.True(testInstance, artifactDirectoryAvailable)
	require.Equal(testInstance, testArtifactDirectoryConstant, artifactDirectory)
}

func TestCommandContextAccessorMissingValues(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	_, configurationFilePathAvailable := accessor.ConfigurationFilePath(context.Background())
	require.False(testInstance, configurationFilePathAvailable)

	_, artifactDirectoryAvailable := accessor.ArtifactDirectory(context.Background())
	require.False(testInstance, artifactDirectoryAvailable)
}
