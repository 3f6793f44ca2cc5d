// pkg/packages/probes_darwin.go
//go:build darwin

package packages

import (
	"path/filepath"
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// hostProbes returns the macOS probe table: Homebrew first, then MacPorts,
// nix, and cargo. Both Homebrew and MacPorts can coexist on one machine
// and both counts are reported.
func hostProbes() []Probe {
	return []Probe{
		{readout.Homebrew, countHomebrew},
		{readout.MacPorts, countMacPorts},
		{readout.Nix, func() (int, error) {
			return countNixStore("/nix/store")
		}},
		{readout.Cargo, func() (int, error) {
			if !which("cargo") {
				return 0, ErrNotDetected
			}
			return countCargo()
		}},
	}
}

// countHomebrew sums the Cellar and Caskroom entries of both Homebrew
// prefixes: /usr/local on Intel machines, /opt/homebrew on Apple Silicon.
// Enumerating the prefixes is far cheaper than `brew list`, which takes
// seconds. Hidden marker entries are skipped.
func countHomebrew() (int, error) {
	if !which("brew") {
		return 0, ErrNotDetected
	}

	total := 0
	for _, prefix := range []string{"/usr/local", "/opt/homebrew"} {
		for _, dir := range []string{"Cellar", "Caskroom"} {
			n, err := countDirEntries(filepath.Join(prefix, dir), withoutHidden())
			if err != nil {
				continue
			}
			total += n
		}
	}

	return total, nil
}

// countMacPorts counts the entries of `port installed`, skipping the
// header line that precedes the indented package records.
func countMacPorts() (int, error) {
	if !which("port") {
		return 0, ErrNotDetected
	}

	return countOutputLinesMatching(func(line string) bool {
		return strings.HasPrefix(line, " ")
	}, "port", "installed")
}
