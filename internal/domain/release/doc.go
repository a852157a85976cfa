// Package release contains core domain types for MATLAB releases.
//
// It defines the Release identifier (year plus half-year letter, e.g. R2017a)
// with its total ordering, selection of the latest release among directory
// names, and validation of the file installation key read from disk.
package release
