// pkg/memory/memory_other.go
//go:build !linux

package memory

import (
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

func usedKiB(vm *mem.VirtualMemoryStat) uint64 {
	return kib(vm.Used)
}

func (r *Readout) Buffers() (uint64, error) {
	return 0, readout.ErrNotImplemented
}

func (r *Readout) Cached() (uint64, error) {
	return 0, readout.ErrNotImplemented
}

func (r *Readout) Reclaimable() (uint64, error) {
	return 0, readout.ErrNotImplemented
}
