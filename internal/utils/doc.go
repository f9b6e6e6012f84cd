// Package utils exposes reusable helpers consumed by the CLI entrypoint.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging, plus the context
// accessor used to thread configuration metadata through Cobra commands.
package utils
