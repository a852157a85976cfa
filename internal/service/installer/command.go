package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matlabutils/matlab-easy-install/internal/config"
	domain "github.com/matlabutils/matlab-easy-install/internal/domain/release"
	"github.com/matlabutils/matlab-easy-install/internal/executor"
	"github.com/matlabutils/matlab-easy-install/internal/logger"
	"github.com/matlabutils/matlab-easy-install/internal/platform"
	"github.com/matlabutils/matlab-easy-install/internal/repository/artifacts"
	"github.com/matlabutils/matlab-easy-install/internal/service/symlink"
)

// errReleaseDirectoryMissing is returned when an explicitly requested release
// has no matching directory in the working directory.
var errReleaseDirectoryMissing = errors.New("release directory not found")

// Options are inputs accepted by the installer entry point.
type Options struct {
	// ConfigPath is the optional path to the settings YAML file.
	ConfigPath string
	// Release is an explicit release name such as R2017a; empty means the
	// latest release directory found in the working directory.
	Release string
	// DestinationFolder overrides the install destination.
	DestinationFolder string
	// Batch runs the installer without GUI.
	Batch bool
	// Automate automates the GUI wizard with a timeout.
	Automate bool
	// Reinstall forces installation even when MATLAB is already present.
	Reinstall bool
	// MakeLink maintains the MATLAB symlink after installation (POSIX only).
	MakeLink bool
}

// runner holds the resolved state for a single installation run.
// It is intentionally unexported—call Run(ctx, Options) from callers.
type runner struct {
	cfg     *config.Config     // Settings loaded from YAML (or defaults).
	opts    *Options           // CLI inputs.
	plat    platform.Platform  // Host capabilities.
	exec    executor.Executor  // Spawns external commands, elevation applied.
	workDir string             // Current working directory.
	progDir string             // Directory of the running executable, may be empty.

	release     domain.Release     // Resolved release identifier.
	locator     *artifacts.Locator // Support file lookup for the release.
	installPath string             // Where the release is (or will be) installed.
}

// Run executes the installation workflow and is the public entry point for the CLI.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "matlab-easy-install")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	plat := platform.Detect()
	r := newRunner(cfg, opts, plat,
		executor.ForPlatform(executor.System{}, cfg.ElevateCommand, plat.NeedsElevation()),
		workDir, programDirectory())

	if err = r.Run(ctx); err != nil {
		logger.ErrorKV(ctx, "Installer run failed", "error", err)
		return err
	}

	return nil
}

// newRunner wires a runner from its collaborators; tests construct runners
// directly with a mock executor and a synthetic platform.
func newRunner(
	cfg *config.Config,
	opts *Options,
	plat platform.Platform,
	exec executor.Executor,
	workDir, progDir string,
) *runner {
	return &runner{
		cfg:     cfg,
		opts:    opts,
		plat:    plat,
		exec:    exec,
		workDir: workDir,
		progDir: progDir,
	}
}

// programDirectory returns the directory of the running executable, or empty
// when it cannot be determined or adds nothing over the working directory.
func programDirectory() string {
	executablePath, err := os.Executable()
	if err != nil {
		return ""
	}

	dir := filepath.Dir(executablePath)
	if dir == "." {
		return ""
	}

	return dir
}

// Run resolves the release, decides whether installation is needed, spawns
// the vendor installer, and finally maintains the symlink when requested.
func (r *runner) Run(ctx context.Context) error {
	if err := r.resolveRelease(ctx); err != nil {
		return err
	}

	r.locator = artifacts.NewLocator(r.workDir, r.progDir, r.release.String())
	r.installPath = r.opts.DestinationFolder
	if r.installPath == "" {
		r.installPath = r.plat.InstallPath(r.cfg.InstallRoot, r.release.String())
	}

	if err := r.installIfNeeded(ctx); err != nil {
		return err
	}

	if r.opts.MakeLink {
		manager := symlink.NewManager(r.plat, r.exec, r.cfg.LinkPath)
		if err := manager.Ensure(ctx, r.plat.MATLABBinary(r.installPath)); err != nil {
			return fmt.Errorf("maintain symlink: %w", err)
		}
	}

	return nil
}

// resolveRelease validates an explicit release or scans the working directory
// for the latest matching subdirectory.
func (r *runner) resolveRelease(ctx context.Context) error {
	if r.opts.Release != "" {
		parsed, err := domain.Parse(r.opts.Release)
		if err != nil {
			return err
		}

		info, err := os.Stat(filepath.Join(r.workDir, parsed.String()))
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%s: %w", parsed, errReleaseDirectoryMissing)
		}

		r.release = parsed

		return nil
	}

	entries, err := os.ReadDir(r.workDir)
	if err != nil {
		return fmt.Errorf("scan working directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	latest, err := domain.Latest(names)
	if err != nil {
		return err
	}

	r.release = latest
	logger.InfoKV(ctx, "Resolved latest MATLAB release", "release", latest.String())

	return nil
}

// installIfNeeded performs the already-installed check and spawns the vendor
// installer when installation is required.
func (r *runner) installIfNeeded(ctx context.Context) error {
	installed := r.alreadyInstalled()
	if installed && !r.opts.Reinstall {
		logger.Infof(ctx, "MATLAB %s has already been installed", r.release)
		return nil
	}

	if installed {
		warnIfMATLABRunning(ctx)
	}

	return r.invokeInstaller(ctx)
}

// alreadyInstalled tests for the overridden destination or, absent an
// override, the expected installed binary path.
func (r *runner) alreadyInstalled() bool {
	probe := r.plat.MATLABBinary(r.installPath)
	if r.opts.DestinationFolder != "" {
		probe = r.opts.DestinationFolder
	}

	_, err := os.Stat(probe)

	return err == nil
}

// invokeInstaller assembles the option list, resolves the installer
// executable and spawns it, waiting for completion.
func (r *runner) invokeInstaller(ctx context.Context) error {
	options, err := r.buildOptions()
	if err != nil {
		return err
	}

	installerPath, err := r.locator.Find(r.plat.InstallerExecutable())
	if err != nil {
		return fmt.Errorf("locate installer: %w", err)
	}

	args := Args(options)
	logger.InfoKV(ctx, "Starting MATLAB installer",
		"installer", installerPath, "release", r.release.String())
	logger.Debugf(ctx, "Installer arguments: %v", args)

	if err = r.exec.Run(ctx, installerPath, args...); err != nil {
		return fmt.Errorf("run installer: %w", err)
	}

	return nil
}

// buildOptions resolves the key and license artifacts and produces the
// ordered installer options.
func (r *runner) buildOptions() ([]Option, error) {
	keyPath, err := r.locator.Find(artifacts.FileInstallKeyFilename)
	if err != nil {
		return nil, fmt.Errorf("locate file install key: %w", err)
	}

	rawKey, err := os.ReadFile(filepath.Clean(keyPath))
	if err != nil {
		return nil, fmt.Errorf("read file install key: %w", err)
	}

	key, err := domain.ParseFileInstallKey(string(rawKey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyPath, err)
	}

	licensePath, err := r.locator.Find(artifacts.LicenseFilename)
	if err != nil {
		return nil, fmt.Errorf("locate license file: %w", err)
	}

	return BuildOptions(OptionInputs{
		Batch:                r.opts.Batch,
		Automate:             r.opts.Automate,
		AutomatedModeTimeout: r.cfg.AutomatedModeTimeout,
		FileInstallKey:       key,
		LicensePath:          licensePath,
		DestinationFolder:    r.opts.DestinationFolder,
	}), nil
}
