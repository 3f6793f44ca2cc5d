// pkg/packages/readout.go
package packages

import "github.com/sysfacts/sysfacts/pkg/readout"

// Readout implements readout.PackageReadout using the platform's probe
// table. Construction is cheap and cannot fail, even on a host with no
// package managers at all.
type Readout struct {
	probes []Probe
}

// New builds the package readout for the current platform.
func New() *Readout {
	return &Readout{probes: hostProbes()}
}

// CountPkgs runs every probe in the platform's priority order and returns
// the detected (manager, count) pairs. Nothing is cached: every call
// re-probes the host.
func (r *Readout) CountPkgs() []readout.PackageCount {
	return Run(r.probes)
}
