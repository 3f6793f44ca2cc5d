// pkg/packages/probe.go

// Package packages implements the package manager detection and counting
// protocol. For every platform there is a fixed, priority-ordered table of
// probes; each probe independently detects one package manager and counts
// its installed packages. Probes are isolated from one another: a probe
// that fails, panics, or finds nothing never prevents the remaining probes
// from running.
package packages

import (
	"errors"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// ErrNotDetected is returned by a probe's count function when the package
// manager is not installed on this host. Absence is not a failure; the
// manager is simply omitted from the results.
var ErrNotDetected = errors.New("package manager not detected")

// Probe detects one package manager and counts its installed packages.
// Count performs its own presence detection: it returns ErrNotDetected for
// an absent manager, and any other error for a manager that is present but
// whose count could not be obtained. Both cases omit the manager from the
// result set.
type Probe struct {
	Manager readout.PackageManager
	Count   func() (int, error)
}

// Run executes every probe in order and collects the successful counts.
// The output preserves probe order, so the platform's priority order is
// the result order. Run never fails: probe errors and panics are swallowed
// at the probe boundary and the affected manager is skipped.
func Run(probes []Probe) []readout.PackageCount {
	counts := make([]readout.PackageCount, 0, len(probes))

	for _, p := range probes {
		n, err := runProbe(p)
		if err != nil || n < 0 {
			continue
		}
		counts = append(counts, readout.PackageCount{Manager: p.Manager, Count: n})
	}

	return counts
}

// runProbe invokes a single probe, downgrading panics to a skip so a
// malformed host assumption in one probe cannot abort the aggregate call.
func runProbe(p Probe) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, ErrNotDetected
		}
	}()

	return p.Count()
}
