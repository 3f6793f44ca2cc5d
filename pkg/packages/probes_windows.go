// pkg/packages/probes_windows.go
//go:build windows

package packages

import (
	"os"
	"path/filepath"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// hostProbes returns the Windows probe table.
func hostProbes() []Probe {
	return []Probe{
		{readout.Scoop, countScoop},
		{readout.Cargo, func() (int, error) {
			if !which("cargo") {
				return 0, ErrNotDetected
			}
			return countCargo()
		}},
	}
}

// countScoop counts the apps Scoop has installed. The apps directory
// contains one directory per installed app plus Scoop's own "scoop"
// entry, which is excluded from the count.
func countScoop() (int, error) {
	root := os.Getenv("SCOOP")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return 0, ErrNotDetected
		}
		root = filepath.Join(home, "scoop")
	}

	return countDirEntries(filepath.Join(root, "apps"), withoutName("scoop"))
}
