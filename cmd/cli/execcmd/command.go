package execcmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/serialrun/internal/procwait"
	"github.com/temirov/serialrun/internal/serialshell"
	"github.com/temirov/serialrun/internal/utils"
)

const (
	commandUseConstant                   = "exec [flags] -- <command>"
	commandShortDescriptionConstant      = "Run a shell command through the serialized launcher"
	commandLongDescriptionConstant       = "exec hands the command text to the platform shell while serializing the non-reentrant launch, then blocks until the spawned task itself finishes. The process exits with the launch status."
	commandExampleConstant               = "serialrun exec -- 'make test'"
	directFlagNameConstant               = "direct"
	directFlagUsageConstant              = "Run the command directly without serialization or task supervision."
	artifactDirectoryFlagNameConstant    = "artifact-dir"
	artifactDirectoryFlagUsageConstant   = "Directory for per-call tracking files (defaults to the system temporary directory)."
	missingCommandMessageConstant        = "command text is required"
	exitStatusErrorTemplateConstant      = "command exited with status %d"
	commandArgumentJoinSeparatorConstant = " "
)

// ExitStatusError carries a non-zero launch status to the process exit path.
type ExitStatusError struct {
	Status int
}

// Error describes the carried status.
func (exitStatusError ExitStatusError) Error() string {
	return fmt.Sprintf(exitStatusErrorTemplateConstant, exitStatusError.Status)
}

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the exec command. Unset collaborators resolve to
// the operating system defaults.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	CommandRunner         serialshell.CommandRunner
	ProcessWaiter         procwait.ProcessWaiter

	commandContextAccessor utils.CommandContextAccessor
}

// Build constructs the exec command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MinimumNArgs(1),
		RunE:    builder.run,
	}

	command.Flags().Bool(directFlagNameConstant, false, directFlagUsageConstant)
	command.Flags().String(artifactDirectoryFlagNameConstant, "", artifactDirectoryFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	commandText := strings.TrimSpace(strings.Join(arguments, commandArgumentJoinSeparatorConstant))
	if len(commandText) == 0 {
		return errors.New(missingCommandMessageConstant)
	}

	directExecution := configuration.Direct
	if command.Flags().Changed(directFlagNameConstant) {
		flagValue, flagError := command.Flags().GetBool(directFlagNameConstant)
		if flagError != nil {
			return flagError
		}
		directExecution = flagValue
	}

	artifactDirectory := strings.TrimSpace(configuration.ArtifactDirectory)
	if len(artifactDirectory) == 0 {
		if contextDirectory, contextDirectoryAvailable := builder.commandContextAccessor.ArtifactDirectory(command.Context()); contextDirectoryAvailable {
			artifactDirectory = strings.TrimSpace(contextDirectory)
		}
	}
	if command.Flags().Changed(artifactDirectoryFlagNameConstant) {
		flagValue, flagError := command.Flags().GetString(artifactDirectoryFlagNameConstant)
		if flagError != nil {
			return flagError
		}
		artifactDirectory = strings.TrimSpace(flagValue)
	}

	launcher, creationError := serialshell.NewSerializedLauncher(
		builder.resolveLogger(),
		builder.resolveRunner(),
		builder.resolveWaiter(),
		artifactDirectory,
	)
	if creationError != nil {
		return creationError
	}

	var status int
	var runError error
	if directExecution {
		status, runError = launcher.RunDirect(command.Context(), commandText)
	} else {
		status, runError = launcher.Run(command.Context(), commandText)
	}
	if runError != nil {
		return runError
	}

	if status != 0 {
		return ExitStatusError{Status: status}
	}
	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider != nil {
		return builder.ConfigurationProvider()
	}
	return CommandConfiguration{}
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider != nil {
		if logger := builder.LoggerProvider(); logger != nil {
			return logger
		}
	}
	return zap.NewNop()
}

func (builder *CommandBuilder) resolveRunner() serialshell.CommandRunner {
	if builder.CommandRunner != nil {
		return builder.CommandRunner
	}
	return serialshell.NewShellCommandRunner()
}

func (builder *CommandBuilder) resolveWaiter() procwait.ProcessWaiter {
	if builder.ProcessWaiter != nil {
		return builder.ProcessWaiter
	}
	return procwait.NewProcessWaiter()
}
