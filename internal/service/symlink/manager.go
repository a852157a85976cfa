package symlink

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matlabutils/matlab-easy-install/internal/executor"
	"github.com/matlabutils/matlab-easy-install/internal/logger"
	"github.com/matlabutils/matlab-easy-install/internal/platform"
)

// Manager maintains the MATLAB symlink at a fixed system path. Link creation
// and removal go through the privileged executor because the link lives in a
// system directory.
type Manager struct {
	// plat answers platform capability questions.
	plat platform.Platform
	// exec spawns the privileged rm/ln commands.
	exec executor.Executor
	// linkPath is the symlink location, e.g. /usr/local/bin/matlab.
	linkPath string
}

// NewManager creates a manager for the given link path.
func NewManager(plat platform.Platform, exec executor.Executor, linkPath string) *Manager {
	return &Manager{
		plat:     plat,
		exec:     exec,
		linkPath: linkPath,
	}
}

// Ensure makes the link point at target, spawning privileged commands only
// when a change is required. A non-symlink occupant and an unsupported
// platform are reported and left untouched; neither is an error for the
// overall run.
func (m *Manager) Ensure(ctx context.Context, target string) error {
	if !m.plat.SupportsSymlinks() {
		logger.Infof(ctx, "Making a symbolic link to MATLAB is only supported on POSIX systems")
		return nil
	}

	info, err := os.Lstat(m.linkPath)

	linkExists := err == nil
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("inspect %s: %w", m.linkPath, err)
	}

	if linkExists {
		if info.Mode()&os.ModeSymlink == 0 {
			logger.Errorf(ctx, "%s is not a symbolic link, leaving it alone", m.linkPath)
			return nil
		}

		destination, readErr := os.Readlink(m.linkPath)
		if readErr != nil {
			return fmt.Errorf("read link %s: %w", m.linkPath, readErr)
		}

		if destination == target {
			logger.Infof(ctx, "%s has already been created", m.linkPath)
			return nil
		}

		logger.Infof(ctx, "%s is linked to another MATLAB release, relinking", m.linkPath)

		if err = m.exec.Run(ctx, "rm", "-f", m.linkPath); err != nil {
			return fmt.Errorf("remove old link: %w", err)
		}
	}

	if err = m.exec.Run(ctx, "ln", "-s", target, m.linkPath); err != nil {
		return fmt.Errorf("create link: %w", err)
	}

	logger.InfoKV(ctx, "Created symbolic link", "link", m.linkPath, "target", target)

	return nil
}
