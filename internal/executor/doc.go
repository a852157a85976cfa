// Package executor abstracts spawning external commands.
//
// The Executor interface has a real implementation over os/exec and an
// Elevated decorator that prefixes commands with sudo (or a configured
// equivalent) on platforms where the caller lacks the required privileges.
// Services receive an Executor at construction, which keeps privilege
// handling in one place and makes command invocations recordable in tests.
package executor
