// pkg/battery/battery_linux.go
//go:build linux && !openwrt

// Package battery reads the host's battery charge, state and health.
package battery

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sysfacts/sysfacts/internal/hostfs"
	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads battery statistics from the power-supply class of sysfs.
type Readout struct {
	supplyDir string
}

func New() *Readout {
	return &Readout{supplyDir: "/sys/class/power_supply"}
}

// battery returns the sysfs directory of the first battery-like power
// supply. AC adapter entries (ADP*, AC*) are skipped.
func (r *Readout) battery() (string, error) {
	entries, err := os.ReadDir(r.supplyDir)
	if err != nil {
		return "", readout.Wrap("battery", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "ADP") || strings.HasPrefix(name, "AC") {
			continue
		}
		return filepath.Join(r.supplyDir, name), nil
	}

	return "", readout.Otherf("battery", "no batteries detected")
}

func (r *Readout) Percentage() (uint8, error) {
	dir, err := r.battery()
	if err != nil {
		return 0, err
	}

	text, err := hostfs.ReadTrimmed(filepath.Join(dir, "capacity"))
	if err != nil {
		return 0, readout.Wrap("battery.percentage", err)
	}

	pct, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return 0, readout.Otherf("battery.percentage", "could not parse %q as a percentage: %v", text, err)
	}

	return uint8(pct), nil
}

func (r *Readout) Status() (readout.BatteryState, error) {
	dir, err := r.battery()
	if err != nil {
		return "", err
	}

	text, err := hostfs.ReadTrimmed(filepath.Join(dir, "status"))
	if err != nil {
		return "", readout.Wrap("battery.status", err)
	}

	switch strings.ToLower(text) {
	case "charging":
		return readout.Charging, nil
	case "discharging", "full":
		return readout.Discharging, nil
	default:
		return "", readout.Otherf("battery.status", "unexpected battery status %q", text)
	}
}

func (r *Readout) Health() (uint64, error) {
	dir, err := r.battery()
	if err != nil {
		return 0, err
	}

	full, err := hostfs.ReadUint(filepath.Join(dir, "energy_full"))
	if err != nil {
		return 0, readout.Wrap("battery.health", err)
	}
	design, err := hostfs.ReadUint(filepath.Join(dir, "energy_full_design"))
	if err != nil {
		return 0, readout.Wrap("battery.health", err)
	}
	if design == 0 {
		return 0, readout.Otherf("battery.health", "designed capacity reads as zero")
	}

	// Fresh cells can report more than their designed capacity.
	if full > design {
		full = design
	}

	return full * 100 / design, nil
}
