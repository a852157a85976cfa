package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	osWindows = "windows"

	// windowsInstallRoot is the stock MATLAB location on Windows.
	windowsInstallRoot = `C:\Program Files\MATLAB`

	// posixInstallRoot is the stock MATLAB location on POSIX systems.
	posixInstallRoot = "/usr/local/MATLAB"
)

// Platform captures the host facts the installer cares about. It is detected
// once at startup and injected into the services so tests can substitute any
// OS or privilege combination.
type Platform struct {
	// OS is the runtime GOOS value.
	OS string
	// IsRoot reports whether the process runs with effective UID 0.
	IsRoot bool
}

// Detect inspects the current host and returns its Platform.
func Detect() Platform {
	return Platform{
		OS:     runtime.GOOS,
		IsRoot: os.Geteuid() == 0,
	}
}

// InstallerExecutable returns the vendor installer file name for this platform.
func (p Platform) InstallerExecutable() string {
	if p.OS == osWindows {
		return "setup.exe"
	}

	return "install"
}

// InstallPath returns the directory a release installs into. An empty root
// selects the stock per-platform location.
func (p Platform) InstallPath(root, release string) string {
	if p.OS == osWindows {
		if root == "" {
			root = windowsInstallRoot
		}

		return root + `\` + release
	}

	if root == "" {
		root = posixInstallRoot
	}

	return filepath.Join(root, release)
}

// MATLABBinary returns the path of the installed MATLAB executable inside
// installPath.
func (p Platform) MATLABBinary(installPath string) string {
	if p.OS == osWindows {
		return installPath + `\bin\matlab.exe`
	}

	return filepath.Join(installPath, "bin", "matlab")
}

// SupportsSymlinks reports whether symbolic link management applies on this
// platform.
func (p Platform) SupportsSymlinks() bool {
	return p.OS != osWindows
}

// NeedsElevation reports whether spawned commands must be prefixed with an
// elevation command to obtain the privileges the installer requires.
func (p Platform) NeedsElevation() bool {
	return p.OS != osWindows && !p.IsRoot
}
