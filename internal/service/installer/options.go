package installer

import "strconv"

// Installer run modes from the vendor option vocabulary.
const (
	modeSilent      = "silent"
	modeAutomated   = "automated"
	modeInteractive = "interactive"
)

// Option is a single `-name value` pair passed to the vendor installer.
type Option struct {
	// Name is the option name without the leading dash.
	Name string
	// Value is the option value, always rendered as a string.
	Value string
}

// OptionInputs are the resolved facts the option builder works from.
type OptionInputs struct {
	// Batch requests a fully silent run without GUI.
	Batch bool
	// Automate requests an automated GUI run; ignored when Batch is set.
	Automate bool
	// AutomatedModeTimeout is forwarded in automated mode, in the
	// installer's own time unit.
	AutomatedModeTimeout int
	// FileInstallKey is the validated file installation key.
	FileInstallKey string
	// LicensePath is the resolved path of the license file.
	LicensePath string
	// DestinationFolder overrides the install destination; empty means the
	// installer default.
	DestinationFolder string
}

// BuildOptions deterministically assembles the vendor installer options.
// The result is an ordered slice so the flattened command line is stable
// between runs.
func BuildOptions(in OptionInputs) []Option {
	options := []Option{
		{Name: "agreeToLicense", Value: "yes"},
	}

	switch {
	case in.Batch:
		options = append(options, Option{Name: "mode", Value: modeSilent})
	case in.Automate:
		options = append(options,
			Option{Name: "mode", Value: modeAutomated},
			Option{Name: "automatedModeTimeout", Value: strconv.Itoa(in.AutomatedModeTimeout)},
		)
	default:
		options = append(options, Option{Name: "mode", Value: modeInteractive})
	}

	options = append(options,
		Option{Name: "fileInstallationKey", Value: in.FileInstallKey},
		Option{Name: "licensePath", Value: in.LicensePath},
	)

	if in.DestinationFolder != "" {
		options = append(options, Option{Name: "destinationFolder", Value: in.DestinationFolder})
	}

	return options
}

// Args flattens options into the `-name value` argument list the installer
// executable expects.
func Args(options []Option) []string {
	args := make([]string, 0, len(options)*2)
	for _, option := range options {
		args = append(args, "-"+option.Name, option.Value)
	}

	return args
}
