// Package serialshell makes "run a shell command and wait for it" safe to
// invoke concurrently on platforms whose execution primitive is not reentrant.
//
// SerializedLauncher serializes only the launch of each command, recovers the
// backgrounded task's process identifier through a per-call tracking file, and
// blocks on a platform waitable reference until the task itself exits, so
// concurrent callers never serialize on each other's running work.
// ShellCommandRunner supplies the default shell-backed execution primitive,
// and RunSerialized exposes the legacy status-only surface.
package serialshell
