// pkg/battery/battery_openwrt.go
//go:build linux && openwrt

// Package battery reads the host's battery charge, state and health.
package battery

import "github.com/sysfacts/sysfacts/pkg/readout"

// Readout is a stub: OpenWrt routers do not carry batteries.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func (r *Readout) Percentage() (uint8, error) {
	return 0, readout.ErrMetricNotAvailable
}

func (r *Readout) Status() (readout.BatteryState, error) {
	return "", readout.ErrMetricNotAvailable
}

func (r *Readout) Health() (uint64, error) {
	return 0, readout.ErrMetricNotAvailable
}
