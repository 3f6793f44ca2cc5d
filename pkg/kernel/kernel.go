// pkg/kernel/kernel.go

// Package kernel reads the host kernel's name and release version.
package kernel

import (
	"github.com/sysfacts/sysfacts/pkg/readout"
)

// prettyKernel joins the kernel name and release into a single display
// string, dropping whichever half is missing.
func prettyKernel(osType, osRelease string) (string, error) {
	switch {
	case osType != "" && osRelease != "":
		return osType + " " + osRelease, nil
	case osType != "":
		return osType, nil
	case osRelease != "":
		return osRelease, nil
	}
	return "", readout.ErrMetricNotAvailable
}
