package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matlabutils/matlab-easy-install/internal/service/installer"
	"github.com/matlabutils/matlab-easy-install/internal/version"
)

var (
	// options collects the CLI inputs for the installer service.
	options installer.Options

	// rootCmd represents the base command for installing MATLAB.
	rootCmd = &cobra.Command{
		Use:   "matlab-easy-install",
		Short: "Install MATLAB from release directories on disk",
		Long: "Locate MATLAB installation artifacts (installer executable, license file, " +
			"file installation key) in the current or program directory, assemble the vendor " +
			"installer options and run the installer, optionally maintaining a MATLAB symlink.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return installer.Run(ctx, &options)
		},
	}
)

// Execute runs the matlab-easy-install CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&options.DestinationFolder, "to", "t", "", "path where MATLAB is installed")
	rootCmd.Flags().BoolVarP(&options.Batch, "batch", "b", false, "run the installer without GUI")
	rootCmd.Flags().BoolVarP(&options.Automate, "automate", "a", false, "automate the GUI wizard")
	rootCmd.Flags().BoolVarP(&options.Reinstall, "reinstall", "r", false, "reinstall MATLAB")
	rootCmd.Flags().BoolVarP(&options.MakeLink, "makelink", "l", false, "make a symbolic link (for POSIX)")
	rootCmd.Flags().StringVarP(&options.Release, "matlab-version", "m", "", "MATLAB release to install, e.g. R2017a")
	rootCmd.Flags().StringVarP(&options.ConfigPath, "config", "c", "", "path to configuration file")
}
