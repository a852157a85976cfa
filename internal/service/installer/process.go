package installer

import (
	"context"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/matlabutils/matlab-easy-install/internal/logger"
)

// warnIfMATLABRunning logs a warning when a MATLAB process is found before a
// reinstall. Best effort: enumeration failures are only logged at debug level.
func warnIfMATLABRunning(ctx context.Context) {
	processList, err := ps.Processes()
	if err != nil {
		logger.Debugf(ctx, "Unable to enumerate processes: %v", err)
		return
	}

	for _, process := range processList {
		name := strings.ToLower(process.Executable())
		if strings.TrimSuffix(name, ".exe") != "matlab" {
			continue
		}

		logger.Warnf(ctx,
			"MATLAB appears to be running (pid %d), reinstalling while it is open may fail",
			process.Pid())

		return
	}
}
