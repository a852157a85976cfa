// Package installer orchestrates a MATLAB installation run.
//
// It resolves the target release, locates support files with the artifacts
// locator, builds the vendor installer option list, checks whether the
// release is already installed, and spawns the installer executable through
// the privileged executor. When requested it also hands off to the symlink
// manager afterwards.
package installer
