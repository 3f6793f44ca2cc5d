// pkg/battery/battery_darwin.go
//go:build darwin

// Package battery reads the host's battery charge, state and health.
package battery

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads battery statistics from the power management subsystem
// through `pmset -g batt`.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func (r *Readout) Percentage() (uint8, error) {
	pct, _, err := pmsetBattery()
	return pct, err
}

func (r *Readout) Status() (readout.BatteryState, error) {
	_, state, err := pmsetBattery()
	return state, err
}

func (r *Readout) Health() (uint64, error) {
	return 0, readout.ErrNotImplemented
}

func pmsetBattery() (uint8, readout.BatteryState, error) {
	out, err := exec.Command("pmset", "-g", "batt").Output()
	if err != nil {
		return 0, "", readout.Wrap("battery", err)
	}

	return parsePmset(string(out))
}

// parsePmset extracts charge and state from a pmset battery listing,
// e.g. "-InternalBattery-0 (id=123)    87%; discharging; 4:32 remaining".
func parsePmset(out string) (uint8, readout.BatteryState, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "%") {
			continue
		}

		fields := strings.Split(line, ";")
		words := strings.Fields(fields[0])
		if len(words) == 0 {
			continue
		}
		pctText := strings.TrimSuffix(words[len(words)-1], "%")
		pct, err := strconv.ParseUint(pctText, 10, 8)
		if err != nil {
			return 0, "", readout.Otherf("battery", "could not parse %q as a percentage", pctText)
		}

		state := readout.Discharging
		if len(fields) > 1 && strings.Contains(fields[1], "charging") && !strings.Contains(fields[1], "discharging") {
			state = readout.Charging
		}

		return uint8(pct), state, nil
	}

	return 0, "", readout.Otherf("battery", "no batteries detected")
}
