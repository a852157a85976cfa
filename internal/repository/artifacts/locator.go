package artifacts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Support file names shipped next to the vendor installer.
const (
	// FileInstallKeyFilename holds the file installation key.
	FileInstallKeyFilename = "file_install_key.txt"

	// LicenseFilename is the MATLAB license file.
	LicenseFilename = "license.dat"
)

// ErrNotFound is returned when a support file exists in none of the
// candidate directories.
var ErrNotFound = errors.New("support file not found")

// Locator finds installation support files by probing a fixed list of
// candidate directories. Local files take precedence over files co-located
// with the program, and bare directories over per-release subdirectories.
type Locator struct {
	// workDir is the current working directory.
	workDir string
	// progDir is the directory of the running executable; may be empty.
	progDir string
	// release is the resolved release name, e.g. R2017a.
	release string
}

// NewLocator creates a locator for the given directories and release.
func NewLocator(workDir, progDir, release string) *Locator {
	return &Locator{
		workDir: workDir,
		progDir: progDir,
		release: release,
	}
}

// Find returns the full path of name in the first candidate directory that
// contains it, or an ErrNotFound-wrapped error when no candidate does.
func (l *Locator) Find(name string) (string, error) {
	for _, dir := range l.candidates() {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// candidates lists probe directories in precedence order. The program
// directory entries are omitted when it is empty or equal to the working
// directory, so the same directory is not probed twice.
func (l *Locator) candidates() []string {
	dirs := []string{
		l.workDir,
		filepath.Join(l.workDir, l.release),
	}

	if l.progDir != "" && l.progDir != "." && l.progDir != l.workDir {
		dirs = append(dirs,
			l.progDir,
			filepath.Join(l.progDir, l.release),
		)
	}

	return dirs
}
