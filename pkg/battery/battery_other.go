// pkg/battery/battery_other.go
//go:build !linux && !darwin && !windows && !netbsd && !freebsd

// Package battery reads the host's battery charge, state and health.
package battery

import "github.com/sysfacts/sysfacts/pkg/readout"

// Readout is a stub for platforms without a battery backend.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func (r *Readout) Percentage() (uint8, error) {
	return 0, readout.ErrNotImplemented
}

func (r *Readout) Status() (readout.BatteryState, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) Health() (uint64, error) {
	return 0, readout.ErrNotImplemented
}
