// pkg/battery/battery_windows.go
//go:build windows

// Package battery reads the host's battery charge, state and health.
package battery

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemPowerStatus = kernel32.NewProc("GetSystemPowerStatus")
)

type systemPowerStatus struct {
	ACLineStatus        byte
	BatteryFlag         byte
	BatteryLifePercent  byte
	SystemStatusFlag    byte
	BatteryLifeTime     uint32
	BatteryFullLifeTime uint32
}

// Readout reads battery statistics through GetSystemPowerStatus.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func powerStatus() (*systemPowerStatus, error) {
	var status systemPowerStatus
	ret, _, err := procGetSystemPowerStatus.Call(uintptr(unsafe.Pointer(&status)))
	if ret == 0 {
		return nil, readout.Otherf("battery", "GetSystemPowerStatus failed: %v", err)
	}
	return &status, nil
}

func (r *Readout) Percentage() (uint8, error) {
	status, err := powerStatus()
	if err != nil {
		return 0, err
	}

	// 255 means the percentage is unknown, usually a desktop machine.
	if status.BatteryLifePercent == 255 {
		return 0, readout.ErrMetricNotAvailable
	}

	return status.BatteryLifePercent, nil
}

func (r *Readout) Status() (readout.BatteryState, error) {
	status, err := powerStatus()
	if err != nil {
		return "", err
	}

	// BatteryFlag bit 7 (128) means no system battery.
	if status.BatteryFlag&128 != 0 {
		return "", readout.ErrMetricNotAvailable
	}
	if status.ACLineStatus == 1 {
		return readout.Charging, nil
	}

	return readout.Discharging, nil
}

func (r *Readout) Health() (uint64, error) {
	return 0, readout.ErrNotImplemented
}
