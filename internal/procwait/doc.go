// Package procwait blocks on the termination of processes that are not
// children of the current process.
//
// The tasks supervised by serialshell are grandchildren reachable only
// through an intermediary shell, so wait(2) is unavailable. Each platform
// supplies its closest native waitable reference: a pidfd on Linux, a kqueue
// EVFILT_PROC registration on Darwin, and signal-zero liveness polling on the
// remaining Unix platforms.
package procwait
