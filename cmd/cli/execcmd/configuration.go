package execcmd

const (
	directConfigurationKeySuffixConstant            = ".direct"
	artifactDirectoryConfigurationKeySuffixConstant = ".artifact_directory"
)

// CommandConfiguration captures persisted settings for the exec command.
type CommandConfiguration struct {
	Direct            bool   `mapstructure:"direct"`
	ArtifactDirectory string `mapstructure:"artifact_directory"`
}

// DefaultConfigurationValues returns configuration defaults keyed under the provided prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + directConfigurationKeySuffixConstant:            false,
		configurationKeyPrefix + artifactDirectoryConfigurationKeySuffixConstant: "",
	}
}
