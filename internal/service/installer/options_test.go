package installer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// optionNames extracts the option names in order.
func optionNames(options []Option) []string {
	names := make([]string, 0, len(options))
	for _, option := range options {
		names = append(names, option.Name)
	}

	return names
}

// findOption returns the value of the named option and whether it is present.
func findOption(options []Option, name string) (string, bool) {
	for _, option := range options {
		if option.Name == name {
			return option.Value, true
		}
	}

	return "", false
}

// TestBuildOptionsBatch selects silent mode and omits the automated timeout.
func TestBuildOptionsBatch(t *testing.T) {
	t.Parallel()

	options := BuildOptions(OptionInputs{
		Batch:                true,
		Automate:             true, // Batch wins over Automate.
		AutomatedModeTimeout: 5000,
		FileInstallKey:       "12-34-56-78",
		LicensePath:          "/tmp/license.dat",
	})

	mode, ok := findOption(options, "mode")
	require.True(t, ok)
	require.Equal(t, "silent", mode)

	_, ok = findOption(options, "automatedModeTimeout")
	require.False(t, ok)
}

// TestBuildOptionsAutomated selects automated mode with the timeout.
func TestBuildOptionsAutomated(t *testing.T) {
	t.Parallel()

	options := BuildOptions(OptionInputs{
		Automate:             true,
		AutomatedModeTimeout: 5000,
		FileInstallKey:       "12-34-56-78",
		LicensePath:          "/tmp/license.dat",
	})

	mode, ok := findOption(options, "mode")
	require.True(t, ok)
	require.Equal(t, "automated", mode)

	timeout, ok := findOption(options, "automatedModeTimeout")
	require.True(t, ok)
	require.Equal(t, "5000", timeout)
}

// TestBuildOptionsInteractive is the default when neither flag is set.
func TestBuildOptionsInteractive(t *testing.T) {
	t.Parallel()

	options := BuildOptions(OptionInputs{
		FileInstallKey: "12-34-56-78",
		LicensePath:    "/tmp/license.dat",
	})

	mode, ok := findOption(options, "mode")
	require.True(t, ok)
	require.Equal(t, "interactive", mode)

	require.Equal(t,
		[]string{"agreeToLicense", "mode", "fileInstallationKey", "licensePath"},
		optionNames(options))
}

// TestBuildOptionsDestination includes destinationFolder only when overridden.
func TestBuildOptionsDestination(t *testing.T) {
	t.Parallel()

	in := OptionInputs{
		FileInstallKey: "12-34-56-78",
		LicensePath:    "/tmp/license.dat",
	}

	_, ok := findOption(BuildOptions(in), "destinationFolder")
	require.False(t, ok)

	in.DestinationFolder = "/opt/MATLAB/R2017a"
	destination, ok := findOption(BuildOptions(in), "destinationFolder")
	require.True(t, ok)
	require.Equal(t, "/opt/MATLAB/R2017a", destination)
}

// TestArgs flattens options into dash-prefixed name/value pairs in order.
func TestArgs(t *testing.T) {
	t.Parallel()

	args := Args([]Option{
		{Name: "agreeToLicense", Value: "yes"},
		{Name: "mode", Value: "silent"},
	})
	require.Equal(t, []string{"-agreeToLicense", "yes", "-mode", "silent"}, args)
}
