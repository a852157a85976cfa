// Package artifacts locates installation support files on disk.
//
// The Locator probes a fixed precedence list of directories (working
// directory, its per-release subdirectory, the program directory and its
// per-release subdirectory) and returns the first hit, so files placed next
// to the invocation override defaults shipped alongside the program.
package artifacts
