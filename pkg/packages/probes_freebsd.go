// pkg/packages/probes_freebsd.go
//go:build freebsd

package packages

import "github.com/sysfacts/sysfacts/pkg/readout"

// hostProbes returns the FreeBSD probe table.
func hostProbes() []Probe {
	return []Probe{
		{readout.Pkg, func() (int, error) {
			if !which("pkg") {
				return 0, ErrNotDetected
			}
			return countSQLite("/var/db/pkg/local.sqlite",
				"SELECT COUNT(*) FROM packages")
		}},
		{readout.Cargo, countCargo},
	}
}
