// pkg/battery/battery_netbsd.go
//go:build netbsd

// Package battery reads the host's battery charge, state and health.
package battery

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads battery statistics from envstat(8).
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func envstat() (string, error) {
	out, err := exec.Command("envstat", "-d", "acpibat0").Output()
	if err != nil {
		return "", readout.Otherf("battery", "envstat: %v", err)
	}
	return string(out), nil
}

// envstatValue returns the value column for the named sensor row, e.g.
// "charge:   74.208%" yields "74.208%".
func envstatValue(out, sensor string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if strings.TrimSuffix(fields[0], ":") == sensor {
			return fields[len(fields)-1], true
		}
	}
	return "", false
}

func (r *Readout) Percentage() (uint8, error) {
	out, err := envstat()
	if err != nil {
		return 0, err
	}
	return parseEnvstatPercentage(out)
}

func parseEnvstatPercentage(out string) (uint8, error) {
	value, ok := envstatValue(out, "charge")
	if !ok {
		return 0, readout.ErrMetricNotAvailable
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
	if err != nil {
		return 0, readout.Otherf("battery", "parse charge %q: %v", value, err)
	}
	return uint8(pct), nil
}

func (r *Readout) Status() (readout.BatteryState, error) {
	out, err := envstat()
	if err != nil {
		return "", err
	}
	return parseEnvstatStatus(out)
}

func parseEnvstatStatus(out string) (readout.BatteryState, error) {
	value, ok := envstatValue(out, "charging")
	if !ok {
		return "", readout.ErrMetricNotAvailable
	}
	if strings.EqualFold(value, "TRUE") || strings.EqualFold(value, "ON") {
		return readout.Charging, nil
	}
	return readout.Discharging, nil
}

func (r *Readout) Health() (uint64, error) {
	return 0, readout.ErrNotImplemented
}
