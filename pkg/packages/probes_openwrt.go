// pkg/packages/probes_openwrt.go
//go:build linux && openwrt

package packages

import (
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// hostProbes returns the OpenWrt probe table. OpenWrt builds are selected
// with the `openwrt` build tag on top of GOOS=linux, mirroring how the
// rest of the platform matrix is chosen at compile time.
func hostProbes() []Probe {
	return []Probe{
		{readout.Opkg, func() (int, error) {
			// The status file holds one stanza per installed package,
			// each introduced by a "Package:" field.
			return countFileLinesMatching("/usr/lib/opkg/status", func(line string) bool {
				return strings.HasPrefix(line, "Package:")
			})
		}},
	}
}
