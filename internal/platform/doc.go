// Package platform detects host capabilities the installer depends on.
//
// The Platform value answers the platform-conditional questions (installer
// file name, stock install locations, symlink support, privilege elevation)
// in one place so the services stay free of scattered GOOS checks and tests
// can exercise any OS combination on a single development machine.
package platform
