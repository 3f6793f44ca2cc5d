// pkg/packages/probes_android.go
//go:build android

package packages

import (
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// hostProbes returns the Android probe table. The platform package
// manager `pm` is always present; dpkg and cargo show up inside Termux.
func hostProbes() []Probe {
	return []Probe{
		{readout.Android, func() (int, error) {
			return countOutputLines("pm", "list", "packages")
		}},
		{readout.Dpkg, func() (int, error) {
			if !which("dpkg") {
				return 0, ErrNotDetected
			}
			// Only "ii" rows are installed packages; the rest of the
			// listing is headers and removed-but-configured entries.
			return countOutputLinesMatching(func(line string) bool {
				return strings.HasPrefix(line, "ii ")
			}, "dpkg", "-l")
		}},
		{readout.Cargo, func() (int, error) {
			if !which("cargo") {
				return 0, ErrNotDetected
			}
			return countCargo()
		}},
	}
}
