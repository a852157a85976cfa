// Package symlink maintains the system-wide MATLAB symlink on POSIX hosts.
//
// The Manager compares the existing link at a fixed path against the
// installed binary, removes and recreates it when it points elsewhere, and
// does nothing when it is already correct. On platforms without symlink
// support the operation reports and returns without error.
package symlink
