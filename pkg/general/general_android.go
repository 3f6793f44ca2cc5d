// pkg/general/general_android.go
//go:build android

package general

import (
	"os/exec"
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

func (r *Readout) Distribution() (string, error) {
	out, err := exec.Command("getprop", "ro.build.version.release").Output()
	if err != nil {
		return "", readout.Otherf("general", "getprop: %v", err)
	}
	release := strings.TrimSpace(string(out))
	if release == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return "Android " + release, nil
}

func (r *Readout) OSName() (string, error) {
	return r.Distribution()
}

func (r *Readout) WindowManager() (string, error) {
	return "", readout.ErrNotImplemented
}
