// pkg/processor/processor.go

// Package processor reads CPU identity and utilization.
package processor

import (
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads CPU information through gopsutil.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func (r *Readout) ModelName() (string, error) {
	info, err := cpu.Info()
	if err != nil {
		return "", readout.Otherf("processor", "cpu info: %v", err)
	}
	if len(info) == 0 || info[0].ModelName == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return strings.TrimSpace(info[0].ModelName), nil
}

func (r *Readout) Cores() (int, error) {
	count, err := cpu.Counts(true)
	if err != nil {
		return 0, readout.Otherf("processor", "logical core count: %v", err)
	}
	return count, nil
}

func (r *Readout) PhysicalCores() (int, error) {
	count, err := cpu.Counts(false)
	if err != nil {
		return 0, readout.Otherf("processor", "physical core count: %v", err)
	}
	return count, nil
}

// Usage samples CPU utilization over a short window. The call blocks
// for the duration of the sample.
func (r *Readout) Usage() (int, error) {
	percent, err := cpu.Percent(500*time.Millisecond, false)
	if err != nil {
		return 0, readout.Otherf("processor", "cpu percent: %v", err)
	}
	if len(percent) == 0 {
		return 0, readout.ErrMetricNotAvailable
	}
	return int(percent[0] + 0.5), nil
}
