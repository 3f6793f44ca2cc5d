// pkg/memory/memory.go

// Package memory reads the host's physical memory statistics. All
// values are reported in kibibytes.
package memory

import (
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads memory statistics through gopsutil.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func virtualMemory() (*mem.VirtualMemoryStat, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, readout.Otherf("memory", "virtual memory: %v", err)
	}
	return vm, nil
}

func kib(bytes uint64) uint64 {
	return bytes / 1024
}

func (r *Readout) Total() (uint64, error) {
	vm, err := virtualMemory()
	if err != nil {
		return 0, err
	}
	return kib(vm.Total), nil
}

func (r *Readout) Free() (uint64, error) {
	vm, err := virtualMemory()
	if err != nil {
		return 0, err
	}
	return kib(vm.Free), nil
}

func (r *Readout) Used() (uint64, error) {
	vm, err := virtualMemory()
	if err != nil {
		return 0, err
	}
	return usedKiB(vm), nil
}
