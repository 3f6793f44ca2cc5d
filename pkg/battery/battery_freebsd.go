// pkg/battery/battery_freebsd.go
//go:build freebsd

// Package battery reads the host's battery charge, state and health.
package battery

import (
	"golang.org/x/sys/unix"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads battery statistics from the hw.acpi.battery sysctl tree.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func (r *Readout) Percentage() (uint8, error) {
	life, err := unix.SysctlUint32("hw.acpi.battery.life")
	if err != nil {
		return 0, readout.ErrMetricNotAvailable
	}
	if life > 100 {
		life = 100
	}
	return uint8(life), nil
}

func (r *Readout) Status() (readout.BatteryState, error) {
	state, err := unix.SysctlUint32("hw.acpi.battery.state")
	if err != nil {
		return "", readout.ErrMetricNotAvailable
	}

	// Bit 1 of hw.acpi.battery.state flags an active charge cycle.
	if state&2 != 0 {
		return readout.Charging, nil
	}
	return readout.Discharging, nil
}

func (r *Readout) Health() (uint64, error) {
	return 0, readout.ErrNotImplemented
}
