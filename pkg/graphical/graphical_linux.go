// pkg/graphical/graphical_linux.go
//go:build linux

package graphical

import (
	"os"
	"path/filepath"

	"github.com/sysfacts/sysfacts/internal/hostfs"
	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads session information from the environment and the
// kernel's backlight class.
type Readout struct {
	backlightDir string
}

func New() *Readout {
	return &Readout{backlightDir: "/sys/class/backlight"}
}

// Backlight reports the display brightness as a percentage of the
// panel's maximum. Desktops without a controllable panel have no
// backlight device.
func (r *Readout) Backlight() (int, error) {
	entries, err := os.ReadDir(r.backlightDir)
	if err != nil || len(entries) == 0 {
		return 0, readout.ErrMetricNotAvailable
	}
	device := filepath.Join(r.backlightDir, entries[0].Name())

	current, err := hostfs.ReadUint(filepath.Join(device, "brightness"))
	if err != nil {
		return 0, readout.Otherf("graphical", "read brightness: %v", err)
	}
	max, err := hostfs.ReadUint(filepath.Join(device, "max_brightness"))
	if err != nil || max == 0 {
		return 0, readout.Otherf("graphical", "read max_brightness: %v", err)
	}
	if current > max {
		current = max
	}
	return int(current * 100 / max), nil
}
